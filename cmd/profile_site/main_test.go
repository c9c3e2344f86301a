package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/profile-site/internal/config"
	"github.com/jonathan/profile-site/internal/memstore"
	"github.com/jonathan/profile-site/internal/profile"
	"github.com/jonathan/profile-site/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// useMemStore makes every command in the test share one in-memory store.
func useMemStore(t *testing.T) *memstore.Store {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "error")
	store := memstore.New()
	prev := openStore
	openStore = func(context.Context, *config.Config, zerolog.Logger) (service.Store, func(), error) {
		return store, func() {}, nil
	}
	t.Cleanup(func() { openStore = prev })
	return store
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

var createdRe = regexp.MustCompile(`Created profile ([0-9a-f-]{36})`)

func createProfile(t *testing.T, title string) string {
	t.Helper()
	out, err := run(t, "", "create", "--title", title)
	require.NoError(t, err)
	m := createdRe.FindStringSubmatch(out)
	require.Len(t, m, 2, out)
	return m[1]
}

func TestCreateListActivate(t *testing.T) {
	useMemStore(t)

	first := createProfile(t, "Backend")
	createProfile(t, "Frontend")

	out, err := run(t, "", "activate", "--id", first)
	require.NoError(t, err)
	assert.Contains(t, out, "Activated profile "+first)

	out, err = run(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "* "+first+"  Backend")
	assert.Contains(t, out, "2 profiles, * = active")
}

func TestActivate_Errors(t *testing.T) {
	useMemStore(t)

	_, err := run(t, "", "activate", "--id", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile id")

	missing := uuid.NewString()
	_, err = run(t, "", "activate", "--id", missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestShowAndDelete(t *testing.T) {
	useMemStore(t)
	id := createProfile(t, "Backend")

	out, err := run(t, "", "show", "--id", id)
	require.NoError(t, err)
	assert.Contains(t, out, "PROFILE")
	assert.Contains(t, out, "About Me [ABOUT]")

	out, err = run(t, "", "delete", "--id", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted profile "+id)

	_, err = run(t, "", "show", "--id", id)
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestExportImport_YAML(t *testing.T) {
	store := useMemStore(t)
	id := createProfile(t, "Backend")
	path := filepath.Join(t.TempDir(), "out", "profile.yaml")

	out, err := run(t, "", "export", "--id", id, "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 6 nodes")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "title: Backend")

	// hide the about section, add a company without ids, omit visible
	doc = strings.Replace(doc, "companies: []", `companies:
    - name: Acme
      projects:
        - title: Billing
          metaItems:
            - kind: TECH_STACK_GROUP
              techStacks:
                - techName: Kafka`, 1)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	out, err = run(t, "", "import", "--id", id, "--in", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "SAVE SUMMARY")
	assert.Contains(t, out, "company")

	stored, err := store.LoadProfile(context.Background(), uuid.MustParse(id))
	require.NoError(t, err)
	require.Len(t, stored.Companies, 1)
	c := stored.Companies[0]
	assert.True(t, c.Visible, "visible defaults to true when omitted")
	assert.NotEqual(t, uuid.Nil, c.ID)
	require.Len(t, c.Projects, 1)
	assert.Equal(t, "Kafka", c.Projects[0].MetaItems[0].TechStacks[0].TechName)
	assert.Len(t, stored.Sections, 5, "sections keep their identity through the round trip")

	out, err = run(t, "", "show", "--id", id)
	require.NoError(t, err)
	assert.Contains(t, out, "DETECTED SKILLS")
	assert.Contains(t, out, "Kafka")
}

func TestImport_JSONSchemaViolation(t *testing.T) {
	useMemStore(t)
	id := createProfile(t, "Backend")
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sections":[{"visible":"yes"}]}`), 0644))

	_, err := run(t, "", "import", "--id", id, "--in", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestHashKey(t *testing.T) {
	out, err := run(t, "", "hash-key", "--cost", "4", "open-sesame")
	require.NoError(t, err)
	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("open-sesame")))

	out, err = run(t, "from-stdin\n", "hash-key", "--cost", "4")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out)), []byte("from-stdin")))

	_, err = run(t, "\n", "hash-key", "--cost", "4")
	assert.Error(t, err)
}

func TestMigrate_RequiresDatabase(t *testing.T) {
	useMemStore(t)
	_, err := run(t, "", "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL is required")
}
