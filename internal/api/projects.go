package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/plainterms/legal-analyzer/internal/auth"
	"github.com/plainterms/legal-analyzer/internal/storage"
)

// ProjectRequest represents a project creation request
type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func projectResponse(p *storage.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// handleListProjects returns all projects for the authenticated user
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	projects, err := s.projectRepo.GetByUserID(r.Context(), uid)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch projects")
		return
	}

	response := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		response = append(response, projectResponse(p))
	}

	respondJSON(w, http.StatusOK, response)
}

// handleCreateProject creates a new project
func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	project := &storage.Project{
		UserID:      uid,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.projectRepo.Create(r.Context(), project); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create project")
		return
	}

	respondJSON(w, http.StatusCreated, projectResponse(project))
}

// handleGetProject returns a specific project
func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, ok := s.authorizedProject(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, projectResponse(project))
}

// handleDeleteProject deletes a project with its documents
func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	project, ok := s.authorizedProject(w, r)
	if !ok {
		return
	}

	if err := s.documentRepo.DeleteByProjectID(r.Context(), project.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete documents")
		return
	}

	if err := s.projectRepo.Delete(r.Context(), project.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// authorizedProject resolves the project named in the URL and checks
// ownership. A false return means the response is written.
func (s *Server) authorizedProject(w http.ResponseWriter, r *http.Request) (*storage.Project, bool) {
	pid, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid project id")
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

	return project, true
}
