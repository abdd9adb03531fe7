package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rljacobson/cps/internal/numeric"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bounds.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp fixture: %v", err)
	}
	return path
}

func TestLoadBoundsFromYAMLOverridesOnlySetFields(t *testing.T) {
	path := writeTempYAML(t, "maxint: 10\n")

	b, err := LoadBoundsFromYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.MaxInt != 10 {
		t.Fatalf("MaxInt = %d, want 10", b.MaxInt)
	}
	def := numeric.DefaultBounds()
	if b.MinInt != def.MinInt {
		t.Fatalf("MinInt = %d, want default %d (unset field)", b.MinInt, def.MinInt)
	}
}

func TestLoadBoundsFromYAMLAllFields(t *testing.T) {
	path := writeTempYAML(t, "minint: -8\nmaxint: 7\nminreal: -1.5\nmaxreal: 1.5\n")

	b, err := LoadBoundsFromYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.MinInt != -8 || b.MaxInt != 7 || b.MinReal != -1.5 || b.MaxReal != 1.5 {
		t.Fatalf("got %+v, want {-8 7 -1.5 1.5 ...}", b)
	}
}

func TestLoadBoundsFromYAMLMissingFile(t *testing.T) {
	_, err := LoadBoundsFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadBoundsFromYAMLMalformed(t *testing.T) {
	path := writeTempYAML(t, "maxint: [this is not an int\n")
	_, err := LoadBoundsFromYAML(path)
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}
