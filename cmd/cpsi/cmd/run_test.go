package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return buf.String()
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestRunFixtureIdentity(t *testing.T) {
	path := writeFixture(t, `{
		"formals": ["k", "x"],
		"args": [{"kind": "function"}, {"kind": "int", "value": 41}],
		"body": {
			"kind": "app",
			"fn": {"kind": "var", "name": "k"},
			"args": [{"kind": "var", "name": "x"}]
		}
	}`)

	boundsFile = ""
	locale = "en"
	verbose = false

	output := captureStdout(t, func() {
		if err := runFixture(nil, []string{path}); err != nil {
			t.Fatalf("runFixture failed: %v", err)
		}
	})

	snaps.MatchSnapshot(t, output)
}

func TestRunFixtureOverflow(t *testing.T) {
	path := writeFixture(t, `{
		"formals": ["k"],
		"args": [{"kind": "function"}],
		"body": {
			"kind": "primop",
			"op": "+",
			"args": [{"kind": "int", "value": 1073741823}, {"kind": "int", "value": 1}],
			"binders": ["w"],
			"arms": [{
				"kind": "app",
				"fn": {"kind": "var", "name": "k"},
				"args": [{"kind": "var", "name": "w"}]
			}]
		}
	}`)

	boundsFile = ""
	locale = "en"
	verbose = false

	output := captureStdout(t, func() {
		if err := runFixture(nil, []string{path}); err != nil {
			t.Fatalf("runFixture failed: %v", err)
		}
	})

	snaps.MatchSnapshot(t, output)
}

func TestRunFixtureMissingFile(t *testing.T) {
	boundsFile = ""
	err := runFixture(nil, []string{filepath.Join(t.TempDir(), "missing.json")})
	if err == nil {
		t.Fatal("expected an error for a missing fixture file")
	}
}
