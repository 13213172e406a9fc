package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/careeriq/internal/strength"
)

func TestLoadBuiltinAll(t *testing.T) {
	tests := []struct {
		name string
		want strength.Config
	}{
		{"default", strength.Config{MinimumScore: 65, MinimumClaims: 10, MinimumCategories: 3}},
		{"executive", strength.Config{MinimumScore: 75, MinimumClaims: 15, MinimumCategories: 4}},
		{"early-career", strength.Config{MinimumScore: 50, MinimumClaims: 6, MinimumCategories: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := LoadBuiltin(tt.name)
			if err != nil {
				t.Fatalf("LoadBuiltin(%q): %v", tt.name, err)
			}
			if p.Name != tt.name {
				t.Errorf("name = %q, want %q", p.Name, tt.name)
			}
			if p.Thresholds != tt.want {
				t.Errorf("thresholds = %+v, want %+v", p.Thresholds, tt.want)
			}
			if p.QuickWinMinutes <= 0 {
				t.Error("quick_win_minutes not set")
			}
		})
	}
}

func TestDefaultProfileMatchesDefaults(t *testing.T) {
	p, err := LoadBuiltin("default")
	if err != nil {
		t.Fatal(err)
	}
	if p.Thresholds != strength.DefaultConfig() {
		t.Errorf("default profile %+v drifted from strength.DefaultConfig()", p.Thresholds)
	}
}

func TestLoadBuiltinNotFound(t *testing.T) {
	_, err := LoadBuiltin("nonexistent")
	if err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strict.yaml")
	doc := "thresholds:\n  minimum_score: 80\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "strict" {
		t.Errorf("name = %q, want strict", p.Name)
	}
	want := strength.Config{MinimumScore: 80, MinimumClaims: 10, MinimumCategories: 3}
	if p.Thresholds != want {
		t.Errorf("thresholds = %+v, want %+v", p.Thresholds, want)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFileMinimumScore(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want int
	}{
		{"omitted", "thresholds:\n  minimum_claims: 6\n", strength.DefaultMinimumScore},
		{"explicit zero", "thresholds:\n  minimum_score: 0\n", 0},
		{"negative", "thresholds:\n  minimum_score: -1\n", strength.DefaultMinimumScore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "p.yaml")
			if err := os.WriteFile(path, []byte(tt.doc), 0o600); err != nil {
				t.Fatal(err)
			}
			p, err := LoadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if p.Thresholds.MinimumScore != tt.want {
				t.Errorf("minimum score = %d, want %d", p.Thresholds.MinimumScore, tt.want)
			}
		})
	}
}

func TestList(t *testing.T) {
	names, err := List()
	if err != nil {
		t.Fatal(err)
	}
	required := map[string]bool{"default": false, "executive": false, "early-career": false}
	for _, n := range names {
		required[n] = true
	}
	for name, found := range required {
		if !found {
			t.Errorf("missing required profile: %s", name)
		}
	}
}

func TestFormat(t *testing.T) {
	p, err := LoadBuiltin("executive")
	if err != nil {
		t.Fatal(err)
	}
	text := Format(p)
	for _, want := range []string{"executive (v1)", "minimum score: 75", "minimum claims: 15", "minimum categories: 4", "quick wins: up to 20 min"} {
		if !strings.Contains(text, want) {
			t.Errorf("Format missing %q", want)
		}
	}
}
