package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/profile-site/internal/memstore"
	"github.com/jonathan/profile-site/internal/profile"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*ProfileService, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	svc := New(store, zerolog.Nop())
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func editorSubmission(p *profile.Profile) profile.Profile {
	in := profile.Sorted(*p)
	in.Config.FullName = "Jane Doe"
	in.Config.Email = "jane@example.com"
	in.KeyRoles = []profile.KeyRole{{RoleContent: "Led payments", Visible: true}}
	in.SkillCategories = []profile.SkillCategory{{
		Name: "Backend", Visible: true,
		Skills: []profile.Skill{{Name: "Go", Visible: true}},
	}}
	in.Companies = []profile.Company{{
		Name: "Acme", Visible: true,
		Projects: []profile.Project{{
			Title: "Billing", Visible: true,
			MetaItems: []profile.MetaItem{{
				Kind: profile.MetaTechStackGroup, Visible: true,
				TechStacks: []profile.TechStack{
					{TechName: "Go", Visible: true},
					{TechName: "Kafka", Visible: true, SortOrder: 1},
				},
			}},
		}},
	}}
	return in
}

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	p, err := svc.CreateProfile(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, profile.DefaultTitle, p.Title)
	assert.False(t, p.Active)
	assert.NotNil(t, p.Config)
	assert.Len(t, p.Sections, 5)

	stored, err := store.LoadProfile(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, fixedNow, stored.LastModified)
}

func TestActivateProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	a, err := svc.CreateProfile(ctx, "A")
	require.NoError(t, err)
	b, err := svc.CreateProfile(ctx, "B")
	require.NoError(t, err)

	require.NoError(t, svc.ActivateProfile(ctx, a.ID))
	require.NoError(t, svc.ActivateProfile(ctx, b.ID))

	list, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	active := 0
	for _, s := range list {
		if s.Active {
			active++
			assert.Equal(t, b.ID, s.ID)
		}
	}
	assert.Equal(t, 1, active)

	err = svc.ActivateProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestDeleteProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	p, err := svc.CreateProfile(ctx, "Gone")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProfile(ctx, p.ID))
	assert.ErrorIs(t, svc.DeleteProfile(ctx, p.ID), profile.ErrNotFound)

	_, err = svc.EditorView(ctx, p.ID)
	var nf *profile.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, p.ID, nf.ID)
}

func TestEditorView_CreatesMissingConfig(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	p := profile.NewProfile("No config", fixedNow)
	p.Config = nil
	require.NoError(t, store.SaveProfile(ctx, &p, nil))

	view, err := svc.EditorView(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Profile.Config)

	stored, err := store.LoadProfile(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Config)
	assert.Equal(t, view.Profile.Config.ID, stored.Config.ID)
}

func TestSaveProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	created, err := svc.CreateProfile(ctx, "Backend")
	require.NoError(t, err)

	resp, err := svc.SaveProfile(ctx, created.ID, editorSubmission(created))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Changes.Inserted[profile.KindCompany])
	assert.Equal(t, 2, resp.Changes.Inserted[profile.KindTechStack])
	assert.Equal(t, 5, resp.Changes.Updated[profile.KindSection])
	assert.Equal(t, fixedNow, resp.Profile.LastModified)

	view, err := svc.EditorView(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", view.Profile.Config.FullName)
	assert.Equal(t, []string{"Kafka"}, view.DetectedSkills)

	// resubmitting the saved tree changes nothing structurally
	again, err := svc.SaveProfile(ctx, created.ID, view.Profile)
	require.NoError(t, err)
	assert.Zero(t, again.Changes.Inserted[profile.KindCompany])
	assert.Empty(t, again.Changes.Removed)
	assert.Equal(t, profile.Count(resp.Profile), profile.Count(again.Profile))
}

func TestSaveProfile_DeletesOmitted(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	created, err := svc.CreateProfile(ctx, "Backend")
	require.NoError(t, err)
	first, err := svc.SaveProfile(ctx, created.ID, editorSubmission(created))
	require.NoError(t, err)

	in := first.Profile
	in.Companies = nil
	resp, err := svc.SaveProfile(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Changes.Deleted[profile.KindCompany])
	assert.Equal(t, 2, resp.Changes.Deleted[profile.KindTechStack])

	view, err := svc.EditorView(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Profile.Companies)
	assert.Empty(t, view.DetectedSkills)
}

func TestSaveProfile_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.SaveProfile(ctx, uuid.New(), profile.Profile{})
	assert.ErrorIs(t, err, profile.ErrNotFound)

	created, err := svc.CreateProfile(ctx, "A")
	require.NoError(t, err)

	in := profile.Sorted(*created)
	in.Sections = append(in.Sections, in.Sections[0])
	_, err = svc.SaveProfile(ctx, created.ID, in)
	var conflict *profile.IDConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, profile.KindSection, conflict.Kind)

	// nothing was written
	view, err := svc.EditorView(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, view.Profile.Sections, 5)
}

func TestPublicProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	empty, err := svc.PublicProfile(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty.Sections)
	assert.Empty(t, empty.Sections)

	created, err := svc.CreateProfile(ctx, "Backend")
	require.NoError(t, err)
	_, err = svc.SaveProfile(ctx, created.ID, editorSubmission(created))
	require.NoError(t, err)

	// inactive profiles are only reachable through preview
	empty, err = svc.PublicProfile(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.Sections)

	preview, err := svc.PreviewProfile(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", preview.FullName)

	require.NoError(t, svc.ActivateProfile(ctx, created.ID))
	public, err := svc.PublicProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, public.ProfileID)
	assert.Len(t, public.Sections, 5)
}

func TestContact(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	created, err := svc.CreateProfile(ctx, "Backend")
	require.NoError(t, err)
	_, err = svc.SaveProfile(ctx, created.ID, editorSubmission(created))
	require.NoError(t, err)

	got, err := svc.Contact(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, "", got.Phone)

	missing, err := svc.Contact(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, missing.Email)
	assert.Empty(t, missing.Phone)
}

// failingStore wraps a working memory store and fails the calls whose
// error is set.
type failingStore struct {
	*memstore.Store
	listErr error
	saveErr error
}

var errBoom = errors.New("boom")

func (f *failingStore) ListProfiles(ctx context.Context) ([]profile.Summary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.Store.ListProfiles(ctx)
}

func (f *failingStore) SaveProfile(ctx context.Context, p *profile.Profile, removed []profile.NodeRef) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.Store.SaveProfile(ctx, p, removed)
}

func TestListProfiles_StoreError(t *testing.T) {
	svc := New(&failingStore{Store: memstore.New(), listErr: errBoom}, zerolog.Nop())
	_, err := svc.ListProfiles(context.Background())
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "failed to list profiles")
}

func TestSaveProfile_StoreFailureKeepsPreviousTree(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Store: memstore.New()}
	svc := New(store, zerolog.Nop())

	created, err := svc.CreateProfile(ctx, "Backend")
	require.NoError(t, err)
	_, err = svc.SaveProfile(ctx, created.ID, editorSubmission(created))
	require.NoError(t, err)

	before, err := svc.GetProfile(ctx, created.ID)
	require.NoError(t, err)

	in := profile.Sorted(*before)
	in.Config.FullName = "Someone Else"
	in.Companies = nil
	in.KeyRoles = append(in.KeyRoles, profile.KeyRole{RoleContent: "Ran on-call", Visible: true})

	store.saveErr = errBoom
	_, err = svc.SaveProfile(ctx, created.ID, in)
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "failed to save profile")

	after, err := svc.GetProfile(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, "Jane Doe", after.Config.FullName)
	require.Len(t, after.Companies, 1)
	assert.Len(t, after.KeyRoles, 1)
}
