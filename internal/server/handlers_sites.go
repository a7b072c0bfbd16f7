package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/site-generator/internal/types"
)

// CreateSiteResponse is returned by POST /sites
type CreateSiteResponse struct {
	ProjectID  string                 `json:"project_id"`
	Sections   []string               `json:"sections"`
	Validation types.ValidationReport `json:"validation"`
}

// handleCreateSite generates, validates and stores a site for the posted profile
func (s *Server) handleCreateSite(w http.ResponseWriter, r *http.Request) {
	var profile types.BusinessProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, s.logger, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	site, err := s.orchestrator.GenerateSite(r.Context(), profile)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	report := s.orchestrator.Validate(site)

	projectID := uuid.New().String()
	if err := s.sites.Save(r.Context(), projectID, site); err != nil {
		writeError(w, s.logger, err)
		return
	}

	sections := make([]string, len(site.Structure.Sections))
	for i, section := range site.Structure.Sections {
		sections[i] = section.ID
	}

	s.logger.Info("site created",
		zap.String("project_id", projectID),
		zap.String("business", profile.Name),
		zap.Int("score", report.Score))

	w.Header().Set("Location", "/sites/"+projectID)
	writeJSON(w, s.logger, http.StatusCreated, CreateSiteResponse{
		ProjectID:  projectID,
		Sections:   sections,
		Validation: report,
	})
}

// loadSite loads the site named by the {id} path value, writing the error response on failure
func (s *Server) loadSite(w http.ResponseWriter, r *http.Request) (*types.GeneratedSite, bool) {
	site, err := s.sites.Load(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, s.logger, err)
		return nil, false
	}
	return site, true
}

// handleGetSite returns the stored site as JSON
func (s *Server) handleGetSite(w http.ResponseWriter, r *http.Request) {
	site, ok := s.loadSite(w, r)
	if !ok {
		return
	}
	writeJSON(w, s.logger, http.StatusOK, site)
}

// handleDeleteSite removes the stored site
func (s *Server) handleDeleteSite(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if err := s.sites.Delete(r.Context(), projectID); err != nil {
		writeError(w, s.logger, err)
		return
	}
	s.logger.Info("site deleted", zap.String("project_id", projectID))
	w.WriteHeader(http.StatusNoContent)
}

// handleGetDocument returns the stored HTML page
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	site, ok := s.loadSite(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(site.Document)); err != nil {
		s.logger.Error("failed to write document", zap.Error(err))
	}
}

// handleGetValidation re-validates the stored site
func (s *Server) handleGetValidation(w http.ResponseWriter, r *http.Request) {
	site, ok := s.loadSite(w, r)
	if !ok {
		return
	}
	writeJSON(w, s.logger, http.StatusOK, s.orchestrator.Validate(site))
}
