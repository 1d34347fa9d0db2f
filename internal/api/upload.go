package api

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/plainterms/legal-analyzer/internal/storage"
)

const maxUploadSize = 10 << 20 // 10 MB

// UploadResponse represents the response after file upload
type UploadResponse struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Hash       string `json:"hash"`
	Status     string `json:"status"`
}

// handleUpload handles document file uploads. Only plain text is accepted;
// binary formats must be decoded before upload.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	project, ok := s.authorizedProject(w, r)
	if !ok {
		return
	}

	// Limit upload size
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	// Parse multipart form
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	// Validate file extension
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".txt" {
		respondError(w, http.StatusBadRequest, "only .txt files are allowed")
		return
	}

	// Read file content
	content, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	// Calculate content hash
	hash := sha256.Sum256(content)
	hashStr := hex.EncodeToString(hash[:])

	// Check if document with same hash already exists
	existingDoc, err := s.documentRepo.GetByHash(r.Context(), project.ID, hashStr)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to check existing documents")
		return
	}

	if existingDoc != nil {
		respondJSON(w, http.StatusOK, UploadResponse{
			DocumentID: existingDoc.ID.String(),
			Filename:   existingDoc.Filename,
			Hash:       hashStr,
			Status:     "exists",
		})
		return
	}

	// Create new document
	doc := &storage.Document{
		ProjectID:   project.ID,
		Filename:    header.Filename,
		FileType:    strings.TrimPrefix(ext, "."),
		FileSize:    len(content),
		Content:     string(content),
		ContentHash: hashStr,
	}

	if err := s.documentRepo.Create(r.Context(), doc); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save document")
		return
	}

	respondJSON(w, http.StatusCreated, UploadResponse{
		DocumentID: doc.ID.String(),
		Filename:   doc.Filename,
		Hash:       hashStr,
		Status:     "created",
	})
}

// handleListDocuments lists all documents in a project
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	project, ok := s.authorizedProject(w, r)
	if !ok {
		return
	}

	docs, err := s.documentRepo.GetByProjectID(r.Context(), project.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch documents")
		return
	}

	type DocumentResponse struct {
		ID       string `json:"id"`
		Filename string `json:"filename"`
		FileType string `json:"file_type"`
		FileSize int    `json:"file_size"`
		Hash     string `json:"hash"`
	}

	response := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		response = append(response, DocumentResponse{
			ID:       doc.ID.String(),
			Filename: doc.Filename,
			FileType: doc.FileType,
			FileSize: doc.FileSize,
			Hash:     doc.ContentHash,
		})
	}

	respondJSON(w, http.StatusOK, response)
}

// handleDeleteDocument deletes a document and its reports
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	project, ok := s.authorizedProject(w, r)
	if !ok {
		return
	}

	did, err := uuid.Parse(chi.URLParam(r, "documentID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	doc, err := s.documentRepo.GetByID(r.Context(), did)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch document")
		return
	}
	if doc == nil || doc.ProjectID != project.ID {
		respondError(w, http.StatusNotFound, "document not found")
		return
	}

	// Delete reports first, then the document
	if err := s.reportRepo.DeleteByDocumentID(r.Context(), did); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete reports")
		return
	}

	if err := s.documentRepo.Delete(r.Context(), did); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete document")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
