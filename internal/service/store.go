package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/profile-site/internal/profile"
)

// Store persists whole profile trees. Load methods return nil, nil when
// nothing matches. SaveProfile writes the tree and deletes the removed nodes
// (with their descendants) in one atomic unit.
type Store interface {
	LoadProfile(ctx context.Context, id uuid.UUID) (*profile.Profile, error)
	LoadActiveProfile(ctx context.Context) (*profile.Profile, error)
	ListProfiles(ctx context.Context) ([]profile.Summary, error)
	SaveProfile(ctx context.Context, p *profile.Profile, removed []profile.NodeRef) error
	// DeleteProfile reports whether the profile existed.
	DeleteProfile(ctx context.Context, id uuid.UUID) (bool, error)
	// ActivateProfile makes id the single active profile. It reports false
	// and changes nothing when id does not exist.
	ActivateProfile(ctx context.Context, id uuid.UUID) (bool, error)
}
