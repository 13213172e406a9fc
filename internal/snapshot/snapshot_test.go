package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/careeriq/internal/vault"
)

const yamlDoc = `
user_id: 7f1b6a52-3c1e-4a0e-9d55-0c7f3f4f2a10
target_roles:
  - "  VP of Engineering "
  - ""
items:
  - id: pp-1
    category: Metric
    text: "  Cut p95 latency by 40%  "
    tier: GOLD
    confidence: High
    last_updated: 2026-09-01T00:00:00Z
  - category: skill
    text: Go
    tier: assumed
    confidence: medium
`

func TestParseYAML(t *testing.T) {
	s, err := Parse([]byte(yamlDoc), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "7f1b6a52-3c1e-4a0e-9d55-0c7f3f4f2a10", s.UserID)
	assert.Equal(t, []string{"VP of Engineering"}, s.TargetRoles)
	require.Len(t, s.Items, 2)

	first := s.Items[0]
	assert.Equal(t, "pp-1", first.ID)
	assert.Equal(t, vault.CategoryMetric, first.Category)
	assert.Equal(t, vault.TierGold, first.Tier)
	assert.Equal(t, vault.ConfidenceHigh, first.Confidence)
	assert.Equal(t, "Cut p95 latency by 40%", first.Text)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), first.LastUpdated.UTC())

	_, err = uuid.Parse(s.Items[1].ID)
	assert.NoError(t, err, "missing IDs are filled with UUIDs")
	assert.True(t, s.Items[1].LastUpdated.IsZero())

	assert.True(t, strings.HasPrefix(s.Hash, "sha256:"))
}

func TestParseJSON(t *testing.T) {
	doc := `{"target_roles":["CTO"],"items":[{"id":"a","category":"tool","text":"Terraform","tier":"silver","confidence":"low","last_updated":"2025-01-02T03:04:05Z"}]}`
	s, err := Parse([]byte(doc), FormatJSON)
	require.NoError(t, err)
	require.Len(t, s.Items, 1)
	assert.Equal(t, vault.CategoryTool, s.Items[0].Category)
	assert.Equal(t, []string{"CTO"}, s.TargetRoles)
}

func TestParseDateOnlyTimestamps(t *testing.T) {
	jsonSnap, err := Parse([]byte(`{"items":[{"id":"a","category":"skill","text":"Go","tier":"bronze","confidence":"low","last_updated":"2026-01-01"}]}`), FormatJSON)
	require.NoError(t, err)
	yamlSnap, err := Parse([]byte("items:\n  - id: a\n    category: skill\n    text: Go\n    tier: bronze\n    confidence: low\n    last_updated: 2026-01-01\n"), FormatYAML)
	require.NoError(t, err)

	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, want.Equal(jsonSnap.Items[0].LastUpdated), "json: %v", jsonSnap.Items[0].LastUpdated)
	assert.True(t, want.Equal(yamlSnap.Items[0].LastUpdated), "yaml: %v", yamlSnap.Items[0].LastUpdated)

	_, err = Parse([]byte(`{"items":[{"category":"skill","text":"Go","last_updated":"January 2026"}]}`), FormatJSON)
	assert.ErrorContains(t, err, "last_updated")
}

func TestNormalizeKeepsCallerRoles(t *testing.T) {
	roles := []string{" ", "CTO", "  Director  "}
	s := &Snapshot{TargetRoles: roles}
	Normalize(s)

	assert.Equal(t, []string{"CTO", "Director"}, s.TargetRoles)
	assert.Equal(t, []string{" ", "CTO", "  Director  "}, roles)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("{not json"), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte("items: [oops"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte("{}"), Format("toml"))
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse([]byte("{}"), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, s.Items)
	assert.Empty(t, s.TargetRoles)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Source)
	assert.Len(t, s.Items, 2)

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.Hash, again.Hash, "hash is stable for identical content")

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatForPath("a.yaml"))
	assert.Equal(t, FormatYAML, FormatForPath("A.YML"))
	assert.Equal(t, FormatJSON, FormatForPath("a.json"))
	assert.Equal(t, FormatJSON, FormatForPath("a"))
}
