// Package profile loads scoring profiles: named threshold sets for the
// strength scorer and quick-win selection.
package profile

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/careeriq/internal/strength"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Profile is a named set of scoring thresholds.
type Profile struct {
	Name            string          `yaml:"name"`
	Version         int             `yaml:"version"`
	Description     string          `yaml:"description"`
	Thresholds      strength.Config `yaml:"thresholds"`
	QuickWinMinutes int             `yaml:"quick_win_minutes"`
}

// LoadBuiltin loads a built-in profile by name.
func LoadBuiltin(name string) (*Profile, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: unknown profile %q: %w", name, err)
	}
	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: parse %q: %w", name, err)
	}
	return p, nil
}

// LoadFile loads a profile from a YAML file on disk.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile.LoadFile: %w", err)
	}
	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile.LoadFile: parse %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(strings.TrimSuffix(filepath.Base(path), ".yaml"), ".yml")
	}
	return p, nil
}

func parse(data []byte) (*Profile, error) {
	p := Profile{Thresholds: strength.DefaultConfig()}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	p.Thresholds = p.Thresholds.WithDefaults()
	return &p, nil
}

// List returns the names of all available built-in profiles.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}

// Format renders a profile as a short human-readable block.
func Format(p *Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (v%d)\n", p.Name, p.Version)
	if p.Description != "" {
		fmt.Fprintf(&b, "  %s\n", strings.TrimSpace(p.Description))
	}
	fmt.Fprintf(&b, "  minimum score: %d\n", p.Thresholds.MinimumScore)
	fmt.Fprintf(&b, "  minimum claims: %d\n", p.Thresholds.MinimumClaims)
	fmt.Fprintf(&b, "  minimum categories: %d\n", p.Thresholds.MinimumCategories)
	if p.QuickWinMinutes > 0 {
		fmt.Fprintf(&b, "  quick wins: up to %d min\n", p.QuickWinMinutes)
	}
	return b.String()
}
