// Package server provides the HTTP API and public page for the profile site.
package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/profile-site/internal/profile"
	"github.com/jonathan/profile-site/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Field + " - " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound    *profile.NotFoundError
		conflict    *profile.IDConflictError
		invalid     *profile.ValidationError
		schemaErr   *schemas.ValidationError
		requestErr  *ErrValidation
		validateErr validator.ValidationErrors
	)
	switch {
	case errors.As(err, &notFound), errors.Is(err, profile.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &invalid), errors.As(err, &schemaErr),
		errors.As(err, &requestErr), errors.As(err, &validateErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON error payload. Details lists schema violations.
type errorBody struct {
	Error   string               `json:"error"`
	Details []schemas.FieldError `json:"details,omitempty"`
}

func newErrorBody(err error) errorBody {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		return errorBody{Error: "internal server error"}
	}
	body := errorBody{Error: err.Error()}
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		body.Error = "submission does not match the profile schema"
		body.Details = schemaErr.Errors
	}
	return body
}
