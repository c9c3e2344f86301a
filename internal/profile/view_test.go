package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSorted_KeepsHiddenAndOrdersEveryLevel(t *testing.T) {
	p := Profile{
		Sections: []Section{
			{Name: "b", SortOrder: 2, Visible: false},
			{Name: "a", SortOrder: 1, Visible: true},
		},
		Companies: []Company{{
			Name:    "Acme",
			Visible: true,
			Projects: []Project{{
				Title:   "Billing",
				Visible: true,
				MetaItems: []MetaItem{{
					Kind:    MetaContentGroup,
					Visible: true,
					Problems: []Problem{{
						Title:   "Slow",
						Visible: true,
						Impacts: []Impact{
							{Content: "second", SortOrder: 9, Visible: true},
							{Content: "first", SortOrder: 1, Visible: false},
						},
					}},
				}},
			}},
		}},
	}

	out := Sorted(p)
	require.Len(t, out.Sections, 2)
	assert.Equal(t, "a", out.Sections[0].Name)
	assert.Equal(t, "b", out.Sections[1].Name)

	impacts := out.Companies[0].Projects[0].MetaItems[0].Problems[0].Impacts
	require.Len(t, impacts, 2)
	assert.Equal(t, "first", impacts[0].Content)

	// input untouched
	assert.Equal(t, "b", p.Sections[0].Name)
	assert.Equal(t, "second", p.Companies[0].Projects[0].MetaItems[0].Problems[0].Impacts[0].Content)
}

func TestCount(t *testing.T) {
	p := NewProfile("x", testNow)
	assert.Equal(t, 6, Count(p))
}
