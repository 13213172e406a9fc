// Package snapshot loads a consistent, point-in-time view of a career vault
// from a JSON or YAML file.
package snapshot

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dshills/careeriq/internal/vault"
)

// Format is the encoding of a snapshot document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Snapshot holds the items and target roles scored in one invocation.
type Snapshot struct {
	Source      string       `json:"source,omitempty" yaml:"-"`
	Hash        string       `json:"hash,omitempty" yaml:"-"`
	UserID      string       `json:"user_id,omitempty" yaml:"user_id"`
	TargetRoles []string     `json:"target_roles,omitempty" yaml:"target_roles"`
	Items       []vault.Item `json:"items" yaml:"items" validate:"dive"`
}

// FormatForPath picks the format from a file extension. Unknown extensions are JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a snapshot file and computes its SHA-256 hash.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot.Load: %w", err)
	}
	s, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("snapshot.Load: %s: %w", path, err)
	}
	s.Source = path
	return s, nil
}

// Parse decodes a snapshot document and normalizes its items.
func Parse(data []byte, format Format) (*Snapshot, error) {
	var s Snapshot
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	case FormatJSON:
		err = json.Unmarshal(data, &s)
	default:
		return nil, fmt.Errorf("snapshot.Parse: unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot.Parse: %w", err)
	}
	h := sha256.Sum256(data)
	s.Hash = fmt.Sprintf("sha256:%x", h)
	Normalize(&s)
	return &s, nil
}

// Normalize lower-cases enum fields, trims text and roles, and assigns a
// random ID to items that lack one.
func Normalize(s *Snapshot) {
	for i := range s.Items {
		it := &s.Items[i]
		it.ID = strings.TrimSpace(it.ID)
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		it.Text = strings.TrimSpace(it.Text)
		it.Category = vault.Category(normalizeKey(string(it.Category)))
		it.Tier = vault.QualityTier(normalizeKey(string(it.Tier)))
		it.Confidence = vault.Confidence(normalizeKey(string(it.Confidence)))
	}
	var roles []string
	for _, r := range s.TargetRoles {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	s.TargetRoles = roles
}

func normalizeKey(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
