package db

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/profile-site/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() profile.Profile {
	p := profile.NewProfile("Backend", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	p.SkillCategories = []profile.SkillCategory{{
		ID: uuid.New(), Name: "Backend", Visible: true,
		Skills: []profile.Skill{{ID: uuid.New(), Name: "Go", Visible: true}},
	}}
	p.Companies = []profile.Company{{
		ID: uuid.New(), Name: "Acme", Type: profile.CompanyWork, Visible: true,
		Projects: []profile.Project{{
			ID: uuid.New(), Title: "Billing", Visible: true,
			MetaItems: []profile.MetaItem{{
				ID: uuid.New(), Kind: profile.MetaContentGroup, Visible: true,
				TechStacks: []profile.TechStack{},
				Problems: []profile.Problem{{
					ID: uuid.New(), Title: "Slow", Visible: true,
					Solutions: []profile.Solution{{ID: uuid.New(), Content: "Batch", Visible: true}},
					Impacts:   []profile.Impact{{ID: uuid.New(), Content: "Fast", Visible: true}},
				}},
			}},
		}},
	}}
	return p
}

func indexOf(b *pgx.Batch, table string) int {
	for i, q := range b.QueuedQueries {
		if strings.Contains(q.SQL, "INSERT INTO "+table+" ") {
			return i
		}
	}
	return -1
}

func TestQueueUpserts_OneStatementPerNode(t *testing.T) {
	p := sampleTree()
	b := &pgx.Batch{}
	queueUpserts(b, &p)

	assert.Equal(t, profile.Count(p), b.Len())
}

func TestQueueUpserts_ParentsFirst(t *testing.T) {
	p := sampleTree()
	b := &pgx.Batch{}
	queueUpserts(b, &p)

	chain := []string{"companies", "projects", "project_meta_items", "problems", "solutions"}
	for i := 1; i < len(chain); i++ {
		parent, child := indexOf(b, chain[i-1]), indexOf(b, chain[i])
		require.NotEqual(t, -1, parent, chain[i-1])
		require.NotEqual(t, -1, child, chain[i])
		assert.Less(t, parent, child, "%s must be written before %s", chain[i-1], chain[i])
	}
	assert.Less(t, indexOf(b, "skill_categories"), indexOf(b, "skills"))
}

func TestQueueDeletes_GroupsByKindChildrenFirst(t *testing.T) {
	pid := uuid.New()
	removed := []profile.NodeRef{
		{Kind: profile.KindCompany, ID: uuid.New()},
		{Kind: profile.KindSolution, ID: uuid.New()},
		{Kind: profile.KindCompany, ID: uuid.New()},
	}

	b := &pgx.Batch{}
	queueDeletes(b, pid, removed)

	require.Equal(t, 2, b.Len())
	assert.Contains(t, b.QueuedQueries[0].SQL, "DELETE FROM solutions")
	assert.Contains(t, b.QueuedQueries[1].SQL, "DELETE FROM companies")
	assert.Len(t, b.QueuedQueries[1].Arguments[1], 2)
}

func TestNodeTables_CoverEveryKind(t *testing.T) {
	assert.Len(t, deleteOrder, len(nodeTables))
	for _, kind := range deleteOrder {
		assert.NotEmpty(t, nodeTables[kind], kind)
	}
}

func TestMigrationNames(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_profiles.sql", names[0])
}
