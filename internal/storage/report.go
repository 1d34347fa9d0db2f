package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnalysisReport stores the outcome of one document analysis run. Result
// holds the full serialized analysis; DocumentType and Confidence are
// denormalized for listing without decoding the payload.
type AnalysisReport struct {
	ID           uuid.UUID
	DocumentID   uuid.UUID
	DocumentType string
	Confidence   float64
	Result       json.RawMessage
	CreatedAt    time.Time
}

// ReportRepository defines the interface for analysis report storage operations
type ReportRepository interface {
	Create(ctx context.Context, report *AnalysisReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*AnalysisReport, error)
	GetLatestByDocumentID(ctx context.Context, documentID uuid.UUID) (*AnalysisReport, error)
	ListByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*AnalysisReport, error)
	DeleteByDocumentID(ctx context.Context, documentID uuid.UUID) error
}

// PostgresReportRepository implements ReportRepository using PostgreSQL
type PostgresReportRepository struct {
	db *sql.DB
}

// NewPostgresReportRepository creates a new PostgresReportRepository
func NewPostgresReportRepository(db *sql.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

// Create inserts a new analysis report into the database
func (r *PostgresReportRepository) Create(ctx context.Context, report *AnalysisReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO analysis_reports (id, document_id, document_type, confidence, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.DocumentID,
		report.DocumentType,
		report.Confidence,
		[]byte(report.Result),
		report.CreatedAt,
	)

	return err
}

// GetByID retrieves an analysis report by its ID
func (r *PostgresReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*AnalysisReport, error) {
	query := `
		SELECT id, document_id, document_type, confidence, result, created_at
		FROM analysis_reports
		WHERE id = $1
	`

	report := &AnalysisReport{}
	var result []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&report.ID,
		&report.DocumentID,
		&report.DocumentType,
		&report.Confidence,
		&result,
		&report.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	report.Result = result
	return report, nil
}

// GetLatestByDocumentID retrieves the most recent report for a document
func (r *PostgresReportRepository) GetLatestByDocumentID(ctx context.Context, documentID uuid.UUID) (*AnalysisReport, error) {
	query := `
		SELECT id, document_id, document_type, confidence, result, created_at
		FROM analysis_reports
		WHERE document_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	report := &AnalysisReport{}
	var result []byte
	err := r.db.QueryRowContext(ctx, query, documentID).Scan(
		&report.ID,
		&report.DocumentID,
		&report.DocumentType,
		&report.Confidence,
		&result,
		&report.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	report.Result = result
	return report, nil
}

// ListByDocumentID retrieves all reports for a document, newest first
func (r *PostgresReportRepository) ListByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*AnalysisReport, error) {
	query := `
		SELECT id, document_id, document_type, confidence, result, created_at
		FROM analysis_reports
		WHERE document_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*AnalysisReport
	for rows.Next() {
		report := &AnalysisReport{}
		var result []byte
		err := rows.Scan(
			&report.ID,
			&report.DocumentID,
			&report.DocumentType,
			&report.Confidence,
			&result,
			&report.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		report.Result = result
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// DeleteByDocumentID removes all reports for a document
func (r *PostgresReportRepository) DeleteByDocumentID(ctx context.Context, documentID uuid.UUID) error {
	query := `DELETE FROM analysis_reports WHERE document_id = $1`
	_, err := r.db.ExecContext(ctx, query, documentID)
	return err
}
