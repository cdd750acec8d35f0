package dropin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFind(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.conf", "a.yml", "c.txt", "A.INI", "10-x.toml"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "d.conf"), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	tests := []struct {
		name       string
		extensions []string
		expected   []string
	}{
		{
			name:       "several extensions",
			extensions: []string{".conf", ".ini", ".yml"},
			expected: []string{
				filepath.Join(dir, "A.INI"),
				filepath.Join(dir, "a.yml"),
				filepath.Join(dir, "b.conf"),
			},
		},
		{
			name:       "single extension",
			extensions: []string{".toml"},
			expected:   []string{filepath.Join(dir, "10-x.toml")},
		},
		{
			name:       "no match",
			extensions: []string{".json"},
			expected:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, err := Find(dir, tt.extensions...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, paths); diff != "" {
				t.Errorf("Find() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFind_MissingDir(t *testing.T) {
	paths, err := Find(filepath.Join(t.TempDir(), "config.d"), ".conf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paths != nil {
		t.Errorf("expected nil, got %v", paths)
	}
}

func TestFind_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.conf")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := Find(file, ".conf"); err == nil {
		t.Error("expected error but got none")
	}
}
