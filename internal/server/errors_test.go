package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/profile-site/internal/profile"
	"github.com/jonathan/profile-site/internal/schemas"
	"github.com/jonathan/profile-site/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	id := uuid.New()
	validateErr := (&types.ContactRevealRequest{}).Validate()
	require.Error(t, validateErr)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &profile.NotFoundError{ID: id}, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", &profile.NotFoundError{ID: id}), http.StatusNotFound},
		{"sentinel", profile.ErrNotFound, http.StatusNotFound},
		{"id conflict", &profile.IDConflictError{Kind: profile.KindSkill, ID: id, Reason: "submitted more than once"}, http.StatusConflict},
		{"domain validation", &profile.ValidationError{Field: "title", Message: "too long"}, http.StatusBadRequest},
		{"schema", &schemas.ValidationError{Errors: []schemas.FieldError{{Field: "sections", Message: "bad"}}}, http.StatusBadRequest},
		{"request", &ErrValidation{Field: "id", Message: "required"}, http.StatusBadRequest},
		{"validator", validateErr, http.StatusBadRequest},
		{"other", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestNewErrorBody(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, "invalid profile: "+id.String(), newErrorBody(&profile.NotFoundError{ID: id}).Error)
	assert.Equal(t, "internal server error", newErrorBody(errors.New("secret dsn leaked")).Error)

	body := newErrorBody(&schemas.ValidationError{Errors: []schemas.FieldError{{Field: "sections.0.sortOrder", Message: "Invalid type"}}})
	assert.Equal(t, "submission does not match the profile schema", body.Error)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "sections.0.sortOrder", body.Details[0].Field)
}
