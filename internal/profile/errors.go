package profile

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotFound is matched by every NotFoundError via errors.Is.
var ErrNotFound = errors.New("profile not found")

// NotFoundError indicates the requested profile does not exist.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("invalid profile: %s", e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IDConflictError reports a submitted id that cannot be matched safely:
// either it appears twice in one submission or it belongs to a different
// parent in the persisted tree.
type IDConflictError struct {
	Kind   Kind
	ID     uuid.UUID
	Reason string
}

func (e *IDConflictError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Kind, e.ID, e.Reason)
}

// ValidationError indicates a malformed request value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
