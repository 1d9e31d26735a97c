package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devdonalds/cookbook/pkg/cookbook"
)

func writeCookbookFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "entries.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing cookbook file: %v", err)
	}
	return path
}

const testCookbook = `[
	{"type": "ingredient", "name": "egg", "cookTime": 10},
	{"type": "ingredient", "name": "flour", "cookTime": 0},
	{"type": "recipe", "name": "dough", "requiredItems": [{"name": "flour", "quantity": 2}]},
	{"type": "recipe", "name": "pasta", "requiredItems": [
		{"name": "dough", "quantity": 1},
		{"name": "egg", "quantity": 3}
	]}
]`

func TestRootCommandStructure(t *testing.T) {
	cmd := rootCmd()

	if cmd.Name != name {
		t.Errorf("Name = %q, want %q", cmd.Name, name)
	}

	want := map[string]bool{"serve": false, "summary": false, "parse": false, "validate": false}
	for _, sub := range cmd.Commands {
		if _, ok := want[sub.Name]; ok {
			want[sub.Name] = true
		}
	}
	for sub, found := range want {
		if !found {
			t.Errorf("missing %q subcommand", sub)
		}
	}
}

func TestSummaryCommand(t *testing.T) {
	path := writeCookbookFile(t, testCookbook)
	outPath := filepath.Join(t.TempDir(), "summary.json")

	cmd := summaryCmd()
	err := cmd.Run(context.Background(), []string{
		"summary",
		"--cookbook", path,
		"--name", "pasta",
		"--format", "json",
		"--output", outPath,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var summary cookbook.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if summary.Name != "pasta" || summary.CookTime != 30 {
		t.Errorf("summary = %+v, want pasta with cookTime 30", summary)
	}
}

func TestSummaryCommandErrors(t *testing.T) {
	path := writeCookbookFile(t, testCookbook)

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "missing cookbook file",
			args: []string{"summary", "--name", "pasta"},
		},
		{
			name: "unknown recipe",
			args: []string{"summary", "--cookbook", path, "--name", "ghost"},
		},
		{
			name: "unknown format",
			args: []string{"summary", "--cookbook", path, "--name", "pasta", "--format", "xml"},
		},
		{
			name: "nonexistent file",
			args: []string{"summary", "--cookbook", "/nonexistent/entries.json", "--name", "pasta"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := summaryCmd()
			if err := cmd.Run(context.Background(), tt.args); err == nil {
				t.Error("expected error but got nil")
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"punctuation and digits", "Riz@z RISO00tto!", "Rizz Risotto"},
		{"hyphens", "alpha-alpha", "Alpha Alpha"},
		{"plain word", "meatball", "Meatball"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cmd := parseCmd()
			cmd.Writer = &buf

			if err := cmd.Run(context.Background(), []string{"parse", tt.input}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.TrimSpace(buf.String()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no argument", []string{"parse"}},
		{"nothing left after cleaning", []string{"parse", "123!@#"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := parseCmd()
			cmd.Writer = &bytes.Buffer{}
			if err := cmd.Run(context.Background(), tt.args); err == nil {
				t.Error("expected error but got nil")
			}
		})
	}
}

func TestValidateCommand(t *testing.T) {
	path := writeCookbookFile(t, `[
		{"type": "ingredient", "name": "egg", "cookTime": 10},
		{"type": "ingredient", "name": "egg", "cookTime": 5},
		{"type": "ingredient", "name": "salt", "cookTime": 0}
	]`)
	outPath := filepath.Join(t.TempDir(), "report.json")

	cmd := validateCmd()
	err := cmd.Run(context.Background(), []string{
		"validate",
		"--cookbook", path,
		"--format", "json",
		"--output", outPath,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}

	var reports []cookbook.EntryReport
	if err := json.Unmarshal(data, &reports); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("got %d reports, want 3", len(reports))
	}
	if !reports[0].Accepted || reports[1].Accepted || !reports[2].Accepted {
		t.Errorf("unexpected acceptance pattern: %+v", reports)
	}
}

func TestValidateCommandFailOnError(t *testing.T) {
	path := writeCookbookFile(t, `[
		{"type": "ingredient", "name": "egg", "cookTime": 10},
		{"type": "potion", "name": "mana"}
	]`)
	outPath := filepath.Join(t.TempDir(), "report.json")

	cmd := validateCmd()
	err := cmd.Run(context.Background(), []string{
		"validate",
		"--cookbook", path,
		"--fail-on-error",
		"--format", "json",
		"--output", outPath,
	})
	if err == nil {
		t.Error("expected error with --fail-on-error and invalid entries")
	}
}

func TestServeCommandStructure(t *testing.T) {
	cmd := serveCmd()

	if cmd.Name != "serve" {
		t.Errorf("Name = %q, want %q", cmd.Name, "serve")
	}
	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}

	flagNames := make(map[string]bool)
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			flagNames[n] = true
		}
	}
	for _, want := range []string{"port", "cookbook"} {
		if !flagNames[want] {
			t.Errorf("missing %q flag", want)
		}
	}
}
