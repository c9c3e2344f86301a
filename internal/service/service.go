// Package service implements the profile operations on top of a Store: the
// editor's lifecycle and save flow, and the public read side.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/profile-site/internal/metrics"
	"github.com/jonathan/profile-site/internal/profile"
	"github.com/jonathan/profile-site/internal/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ProfileService coordinates the store with the pure profile algorithms.
type ProfileService struct {
	store Store
	log   zerolog.Logger
	now   func() time.Time
}

// New creates a ProfileService.
func New(store Store, log zerolog.Logger) *ProfileService {
	return &ProfileService{
		store: store,
		log:   log.With().Str("component", "profile_service").Logger(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// load fetches a profile or fails with a NotFoundError, materializing the
// config on first read.
func (s *ProfileService) load(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	p, err := s.store.LoadProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if p == nil {
		return nil, &profile.NotFoundError{ID: id}
	}
	if err := s.ensureConfig(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ensureConfig persists a default config the first time a profile without
// one is read.
func (s *ProfileService) ensureConfig(ctx context.Context, p *profile.Profile) error {
	if p.Config != nil {
		return nil
	}
	p.Config = &profile.Config{ID: uuid.New()}
	if err := s.store.SaveProfile(ctx, p, nil); err != nil {
		return fmt.Errorf("failed to create profile config: %w", err)
	}
	s.log.Info().Str("profile_id", p.ID.String()).Msg("created default config")
	return nil
}

// ListProfiles returns all profiles, most recently modified first.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]profile.Summary, error) {
	list, err := s.store.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return list, nil
}

// CreateProfile stores a new inactive profile with the default layout.
func (s *ProfileService) CreateProfile(ctx context.Context, title string) (*profile.Profile, error) {
	p := profile.NewProfile(title, s.now())
	if err := s.store.SaveProfile(ctx, &p, nil); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	s.log.Info().Str("profile_id", p.ID.String()).Str("title", p.Title).Msg("profile created")
	return &p, nil
}

// ActivateProfile makes id the only active profile.
func (s *ProfileService) ActivateProfile(ctx context.Context, id uuid.UUID) error {
	ok, err := s.store.ActivateProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to activate profile: %w", err)
	}
	if !ok {
		return &profile.NotFoundError{ID: id}
	}
	metrics.RecordActivation()
	s.log.Info().Str("profile_id", id.String()).Msg("profile activated")
	return nil
}

// DeleteProfile removes a profile and everything under it.
func (s *ProfileService) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	ok, err := s.store.DeleteProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if !ok {
		return &profile.NotFoundError{ID: id}
	}
	s.log.Info().Str("profile_id", id.String()).Msg("profile deleted")
	return nil
}

// GetProfile returns the stored tree as is.
func (s *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	return s.load(ctx, id)
}

// EditorView returns the ordered tree with hidden nodes and the detected
// skills. Both are pure reads of the same snapshot and run concurrently.
func (s *ProfileService) EditorView(ctx context.Context, id uuid.UUID) (*types.EditorView, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &types.EditorView{}
	var g errgroup.Group
	g.Go(func() error {
		view.Profile = profile.Sorted(*p)
		return nil
	})
	g.Go(func() error {
		view.DetectedSkills = profile.DetectUncatalogued(*p)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

// SaveProfile reconciles an editor submission into the stored profile and
// persists the result atomically.
func (s *ProfileService) SaveProfile(ctx context.Context, id uuid.UUID, incoming profile.Profile) (*types.SaveResponse, error) {
	start := time.Now()
	result := metrics.ResultError
	defer func() { metrics.ObserveSave(result, time.Since(start)) }()

	persisted, err := s.load(ctx, id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			result = metrics.ResultNotFound
		}
		return nil, err
	}

	merged, changes, err := profile.Reconcile(*persisted, incoming)
	if err != nil {
		var conflict *profile.IDConflictError
		if errors.As(err, &conflict) {
			result = metrics.ResultConflict
			s.log.Warn().Str("profile_id", id.String()).Err(err).Msg("save rejected")
		}
		return nil, err
	}
	merged.LastModified = s.now()

	if err := s.store.SaveProfile(ctx, &merged, changes.Removed); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	result = metrics.ResultOK
	metrics.RecordChanges(changes)
	s.log.Info().
		Str("profile_id", id.String()).
		Interface("inserted", changes.Inserted).
		Interface("updated", changes.Updated).
		Interface("deleted", changes.Deleted).
		Msg("profile saved")

	return &types.SaveResponse{Profile: profile.Sorted(merged), Changes: changes}, nil
}

// PublicProfile projects the active profile. With no active profile the
// result is an empty presentation, not an error.
func (s *ProfileService) PublicProfile(ctx context.Context) (*profile.PublicProfile, error) {
	p, err := s.store.LoadActiveProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active profile: %w", err)
	}
	if p == nil {
		return &profile.PublicProfile{Sections: []profile.SectionView{}}, nil
	}
	if err := s.ensureConfig(ctx, p); err != nil {
		return nil, err
	}
	view := profile.Present(*p)
	return &view, nil
}

// PreviewProfile projects any profile, active or not.
func (s *ProfileService) PreviewProfile(ctx context.Context, id uuid.UUID) (*profile.PublicProfile, error) {
	p, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	view := profile.Present(*p)
	return &view, nil
}

// Contact returns the phone and email of a profile. Unknown profiles and
// unset fields yield empty strings.
func (s *ProfileService) Contact(ctx context.Context, id uuid.UUID) (*types.ContactResponse, error) {
	p, err := s.store.LoadProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	resp := &types.ContactResponse{}
	if p != nil && p.Config != nil {
		resp.Phone = p.Config.Phone
		resp.Email = p.Config.Email
	}
	return resp, nil
}
