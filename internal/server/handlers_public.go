package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/profile-site/internal/profile"
	"github.com/jonathan/profile-site/internal/types"
)

// pageData is the template input for the profile page.
type pageData struct {
	Profile   *profile.PublicProfile
	ContactID string
	Preview   bool
}

// handlePublicPage renders the active profile as HTML
func (s *Server) handlePublicPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.PublicProfile(r.Context())
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.renderPage(w, view, false)
}

// handlePublicProfile returns the active profile as JSON
func (s *Server) handlePublicProfile(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.PublicProfile(r.Context())
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, view)
}

// handleContactReveal returns phone and email for a profile id
func (s *Server) handleContactReveal(w http.ResponseWriter, r *http.Request) {
	var req types.ContactRevealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, err)
		return
	}

	contact, err := s.svc.Contact(r.Context(), uuid.MustParse(req.ID))
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, contact)
}

// renderPage executes the page template into a buffer so a template error
// never leaves a half-written response.
func (s *Server) renderPage(w http.ResponseWriter, view *profile.PublicProfile, preview bool) {
	data := pageData{Profile: view, Preview: preview}
	if view.ProfileID != uuid.Nil {
		data.ContactID = view.ProfileID.String()
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		s.log.Error().Err(err).Msg("failed to render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
