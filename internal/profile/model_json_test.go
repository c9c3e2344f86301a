package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal_VisibleDefaultsToTrue(t *testing.T) {
	payload := `{
		"title": "Backend",
		"keyRoles": [{"roleContent": "Led payments"}, {"roleContent": "Hidden", "visible": false}],
		"companies": [{
			"name": "Acme",
			"projects": [{
				"title": "Billing",
				"metaItems": [{
					"kind": "CONTENT_GROUP",
					"problems": [{"title": "Slow", "solutions": [{"content": "Batching"}], "impacts": [{"content": "Fast"}]}]
				}]
			}]
		}]
	}`

	var p Profile
	require.NoError(t, json.Unmarshal([]byte(payload), &p))

	assert.True(t, p.KeyRoles[0].Visible)
	assert.False(t, p.KeyRoles[1].Visible)
	assert.True(t, p.Companies[0].Visible)
	assert.True(t, p.Companies[0].Projects[0].Visible)
	problem := p.Companies[0].Projects[0].MetaItems[0].Problems[0]
	assert.True(t, problem.Visible)
	assert.True(t, problem.Solutions[0].Visible)
	assert.True(t, problem.Impacts[0].Visible)
}
