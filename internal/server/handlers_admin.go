package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/profile-site/internal/profile"
	"github.com/jonathan/profile-site/internal/schemas"
	"github.com/jonathan/profile-site/internal/types"
)

// maxSubmissionBytes bounds an editor submission.
const maxSubmissionBytes = 4 << 20

// profileID parses the {id} path value.
func profileID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	return id, nil
}

// handleListProfiles lists all profiles, most recently modified first
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.ListProfiles(r.Context())
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if list == nil {
		list = []profile.Summary{}
	}
	s.jsonResponse(w, http.StatusOK, types.ProfileListResponse{Profiles: list, Count: len(list)})
}

// handleCreateProfile creates an inactive profile with the default layout
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, err)
		return
	}

	p, err := s.svc.CreateProfile(r.Context(), req.Title)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, p)
}

// handleEditorView returns the full tree and the detected skills
func (s *Server) handleEditorView(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	view, err := s.svc.EditorView(r.Context(), id)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, view)
}

// handleSaveProfile reconciles a full editor submission
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSubmissionBytes))
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "unreadable or too large"})
		return
	}
	if s.validateSchema {
		if err := schemas.ValidateSubmission(body); err != nil {
			s.errorResponse(w, err)
			return
		}
	}

	var incoming profile.Profile
	if err := json.Unmarshal(body, &incoming); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	resp, err := s.svc.SaveProfile(r.Context(), id, incoming)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleDeleteProfile deletes a profile and its whole tree
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if err := s.svc.DeleteProfile(r.Context(), id); err != nil {
		s.errorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleActivateProfile makes a profile the published one
func (s *Server) handleActivateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if err := s.svc.ActivateProfile(r.Context(), id); err != nil {
		s.errorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePreview renders any profile as the public page would
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	id, err := profileID(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	view, err := s.svc.PreviewProfile(r.Context(), id)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.renderPage(w, view, true)
}
