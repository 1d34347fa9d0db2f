package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plainterms/legal-analyzer/internal/analyzer"
	"github.com/plainterms/legal-analyzer/internal/auth"
	"github.com/plainterms/legal-analyzer/internal/storage"
)

// AnalyzeRequest carries raw document text for stateless analysis.
type AnalyzeRequest struct {
	Text     string          `json:"text"`
	FileName string          `json:"file_name,omitempty"`
	FileType string          `json:"file_type,omitempty"`
	Options  *AnalyzeOptions `json:"options,omitempty"`
}

// AnalyzeOptions is the caller-tunable subset of analysis options.
type AnalyzeOptions struct {
	MaxClauses            *int  `json:"max_clauses,omitempty"`
	IncludeSimplification *bool `json:"include_simplification,omitempty"`
}

// QuickAnalyzeRequest carries a text snippet for quick analysis.
type QuickAnalyzeRequest struct {
	Text string `json:"text"`
}

func buildOptions(req *AnalyzeOptions) analyzer.Options {
	opts := analyzer.DefaultOptions()
	if req == nil {
		return opts
	}
	if req.MaxClauses != nil {
		opts.MaxClauses = *req.MaxClauses
	}
	if req.IncludeSimplification != nil {
		opts.IncludeSimplification = *req.IncludeSimplification
	}
	return opts
}

// handleAnalyzeText runs the full pipeline on raw text without persistence
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	fileType := req.FileType
	if fileType == "" {
		fileType = "txt"
	}

	result, err := s.analyzer.Analyze(r.Context(), analyzer.Document{
		Text:     req.Text,
		FileName: req.FileName,
		FileType: fileType,
		FileSize: len(req.Text),
	}, buildOptions(req.Options))
	if err != nil {
		s.respondAnalyzeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// handleQuickAnalyze runs classification and entity extraction only
func (s *Server) handleQuickAnalyze(w http.ResponseWriter, r *http.Request) {
	var req QuickAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Text == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	result, err := s.analyzer.QuickAnalyze(r.Context(), req.Text)
	if err != nil {
		s.respondAnalyzeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// handleAnalyzeDocument runs the full pipeline on a stored document and
// persists the report
func (s *Server) handleAnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.authorizedDocument(w, r)
	if !ok {
		return
	}

	var req struct {
		Options *AnalyzeOptions `json:"options,omitempty"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result, err := s.analyzer.Analyze(r.Context(), analyzer.Document{
		Text:     doc.Content,
		FileName: doc.Filename,
		FileType: doc.FileType,
		FileSize: doc.FileSize,
	}, buildOptions(req.Options))
	if err != nil {
		s.respondAnalyzeError(w, err)
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		s.logger.Error("failed to encode analysis result", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to encode analysis result")
		return
	}

	report := &storage.AnalysisReport{
		DocumentID:   doc.ID,
		DocumentType: result.Classification.PredictedType,
		Confidence:   result.Classification.Confidence,
		Result:       payload,
	}
	if err := s.reportRepo.Create(r.Context(), report); err != nil {
		s.logger.Error("failed to store analysis report", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to store analysis report")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"report_id": report.ID.String(),
		"result":    result,
	})
}

// handleGetReport returns the latest stored report for a document
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.authorizedDocument(w, r)
	if !ok {
		return
	}

	report, err := s.reportRepo.GetLatestByDocumentID(r.Context(), doc.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch report")
		return
	}

	if report == nil {
		respondError(w, http.StatusNotFound, "no report for document")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"report_id":     report.ID.String(),
		"document_type": report.DocumentType,
		"confidence":    report.Confidence,
		"created_at":    report.CreatedAt,
		"result":        json.RawMessage(report.Result),
	})
}

// handleListReports returns all stored reports for a document, newest first
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.authorizedDocument(w, r)
	if !ok {
		return
	}

	reports, err := s.reportRepo.ListByDocumentID(r.Context(), doc.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch reports")
		return
	}

	type reportSummary struct {
		ReportID     string  `json:"report_id"`
		DocumentType string  `json:"document_type"`
		Confidence   float64 `json:"confidence"`
		CreatedAt    string  `json:"created_at"`
	}

	response := make([]reportSummary, 0, len(reports))
	for _, rep := range reports {
		response = append(response, reportSummary{
			ReportID:     rep.ID.String(),
			DocumentType: rep.DocumentType,
			Confidence:   rep.Confidence,
			CreatedAt:    rep.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	respondJSON(w, http.StatusOK, response)
}

// authorizedDocument resolves the document named in the URL and checks the
// caller owns its project. A false return means the response is written.
func (s *Server) authorizedDocument(w http.ResponseWriter, r *http.Request) (*storage.Document, bool) {
	pid, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return nil, false
	}
	did, err := uuid.Parse(chi.URLParam(r, "documentID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid document id")
		return nil, false
	}

	project, err := s.projectRepo.GetByID(r.Context(), pid)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch project")
		return nil, false
	}
	if project == nil {
		respondError(w, http.StatusNotFound, "project not found")
		return nil, false
	}

	claims, ok := auth.GetUserFromContext(r.Context())
	if !ok || project.UserID.String() != claims.UserID {
		respondError(w, http.StatusForbidden, "access denied")
		return nil, false
	}

	doc, err := s.documentRepo.GetByID(r.Context(), did)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch document")
		return nil, false
	}
	if doc == nil || doc.ProjectID != pid {
		respondError(w, http.StatusNotFound, "document not found")
		return nil, false
	}

	return doc, true
}

func (s *Server) respondAnalyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analyzer.ErrInvalidOptions):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, analyzer.ErrEmptyDocument):
		respondError(w, http.StatusBadRequest, "document text is empty")
	default:
		s.logger.Error("analysis failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "analysis failed")
	}
}
