package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func TestPostgresReportRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresReportRepository(db)

	report := &AnalysisReport{
		DocumentID:   uuid.New(),
		DocumentType: "nda",
		Confidence:   0.8,
		Result:       json.RawMessage(`{"classification":{"predicted_type":"nda"}}`),
	}

	mock.ExpectExec("INSERT INTO analysis_reports").
		WithArgs(sqlmock.AnyArg(), report.DocumentID, report.DocumentType, report.Confidence, []byte(report.Result), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Create(context.Background(), report)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if report.ID == uuid.Nil {
		t.Error("expected report ID to be generated")
	}

	if report.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresReportRepository_GetLatestByDocumentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresReportRepository(db)

	reportID := uuid.New()
	documentID := uuid.New()
	result := []byte(`{"classification":{"predicted_type":"nda"}}`)

	rows := sqlmock.NewRows([]string{"id", "document_id", "document_type", "confidence", "result", "created_at"}).
		AddRow(reportID, documentID, "nda", 0.8, result, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM analysis_reports WHERE document_id").
		WithArgs(documentID).
		WillReturnRows(rows)

	report, err := repo.GetLatestByDocumentID(context.Background(), documentID)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if report == nil {
		t.Fatal("expected report to be returned")
	}

	if report.ID != reportID {
		t.Errorf("expected ID %s, got %s", reportID, report.ID)
	}

	if report.DocumentType != "nda" {
		t.Errorf("expected document type nda, got %s", report.DocumentType)
	}

	if string(report.Result) != string(result) {
		t.Errorf("expected result payload %s, got %s", result, report.Result)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresReportRepository_GetLatestByDocumentID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresReportRepository(db)

	documentID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "document_id", "document_type", "confidence", "result", "created_at"})

	mock.ExpectQuery("SELECT (.+) FROM analysis_reports WHERE document_id").
		WithArgs(documentID).
		WillReturnRows(rows)

	report, err := repo.GetLatestByDocumentID(context.Background(), documentID)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if report != nil {
		t.Error("expected nil report for missing document")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresReportRepository_ListByDocumentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresReportRepository(db)

	documentID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "document_id", "document_type", "confidence", "result", "created_at"}).
		AddRow(uuid.New(), documentID, "nda", 0.8, []byte(`{}`), time.Now()).
		AddRow(uuid.New(), documentID, "unknown", 0.1, []byte(`{}`), time.Now().Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM analysis_reports WHERE document_id").
		WithArgs(documentID).
		WillReturnRows(rows)

	reports, err := repo.ListByDocumentID(context.Background(), documentID)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresDocumentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresDocumentRepository(db)

	document := &Document{
		ProjectID:   uuid.New(),
		Filename:    "contract.txt",
		FileType:    "txt",
		FileSize:    1024,
		Content:     "This agreement is made between the parties.",
		ContentHash: "abc123",
	}

	mock.ExpectExec("INSERT INTO documents").
		WithArgs(sqlmock.AnyArg(), document.ProjectID, document.Filename, document.FileType,
			document.FileSize, document.Content, document.ContentHash, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Create(context.Background(), document)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if document.ID == uuid.Nil {
		t.Error("expected document ID to be generated")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestPostgresDocumentRepository_GetByHash_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	defer db.Close()

	repo := NewPostgresDocumentRepository(db)

	projectID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM documents WHERE project_id (.+) content_hash").
		WithArgs(projectID, "missing").
		WillReturnError(sql.ErrNoRows)

	document, err := repo.GetByHash(context.Background(), projectID, "missing")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if document != nil {
		t.Error("expected nil document for missing hash")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
