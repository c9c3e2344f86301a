// Package memstore keeps profile trees in process memory. It is used when no
// database is configured and as the store behind service and server tests.
package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/profile-site/internal/profile"
)

// Store holds one JSON snapshot per profile. Reads decode a private copy and
// writes replace the snapshot whole, so a save is never observed half done.
type Store struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID][]byte
	activeID uuid.UUID
}

// New returns an empty store.
func New() *Store {
	return &Store{profiles: make(map[uuid.UUID][]byte)}
}

func (s *Store) decode(id uuid.UUID) (*profile.Profile, error) {
	raw, ok := s.profiles[id]
	if !ok {
		return nil, nil
	}
	var p profile.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", id, err)
	}
	p.Active = id == s.activeID
	return &p, nil
}

// LoadProfile returns a copy of the profile, or nil if it does not exist.
func (s *Store) LoadProfile(_ context.Context, id uuid.UUID) (*profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.decode(id)
}

// LoadActiveProfile returns the selected profile, or nil if none is selected.
func (s *Store) LoadActiveProfile(_ context.Context) (*profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.activeID == uuid.Nil {
		return nil, nil
	}
	return s.decode(s.activeID)
}

// ListProfiles returns all profiles, most recently modified first.
func (s *Store) ListProfiles(_ context.Context) ([]profile.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]profile.Summary, 0, len(s.profiles))
	for id := range s.profiles {
		p, err := s.decode(id)
		if err != nil {
			return nil, err
		}
		out = append(out, profile.Summary{
			ID:           p.ID,
			Title:        p.Title,
			Active:       p.Active,
			LastModified: p.LastModified,
		})
	}
	slices.SortFunc(out, func(a, b profile.Summary) int {
		if c := b.LastModified.Compare(a.LastModified); c != 0 {
			return c
		}
		return strings.Compare(a.Title, b.Title)
	})
	return out, nil
}

// SaveProfile replaces the stored snapshot. Removed nodes are already absent
// from p, so they need no separate handling here.
func (s *Store) SaveProfile(_ context.Context, p *profile.Profile, _ []profile.NodeRef) error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("failed to save profile: missing id")
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = raw
	return nil
}

// DeleteProfile removes the profile and clears the selection if it pointed
// at it.
func (s *Store) DeleteProfile(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[id]; !ok {
		return false, nil
	}
	delete(s.profiles, id)
	if s.activeID == id {
		s.activeID = uuid.Nil
	}
	return true, nil
}

// ActivateProfile selects id as the active profile.
func (s *Store) ActivateProfile(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[id]; !ok {
		return false, nil
	}
	s.activeID = id
	return true, nil
}
