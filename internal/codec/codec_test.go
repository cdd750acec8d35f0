package codec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var sampleSections = []Section{
	{Name: DefaultSection, Entries: []Entry{{Key: "owner", Value: "me"}}},
	{Name: "MAIN", Entries: []Entry{
		{Key: "coreTopic", Value: "HouseIoT"},
		{Key: "devName", Value: "myDev"},
	}},
	{Name: "SERVER_TOPICS", Entries: []Entry{
		{Key: "Receiver", Value: "/rcvsrv"},
		{Key: "Quit", Value: "/quitsrv"},
	}},
	{Name: "EMPTY"},
}

func TestINI_Parse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    []Section
	}{
		{
			name: "sections and keys in order",
			input: `[MAIN]
coreTopic = HouseIoT
devName = myDev

[SERVER_TOPICS]
Receiver = /rcvsrv
`,
			expected: []Section{
				{Name: "MAIN", Entries: []Entry{
					{Key: "coreTopic", Value: "HouseIoT"},
					{Key: "devName", Value: "myDev"},
				}},
				{Name: "SERVER_TOPICS", Entries: []Entry{
					{Key: "Receiver", Value: "/rcvsrv"},
				}},
			},
		},
		{
			name: "keys before first header are defaults",
			input: `owner = me
[MAIN]
devName = myDev
`,
			expected: []Section{
				{Name: DefaultSection, Entries: []Entry{{Key: "owner", Value: "me"}}},
				{Name: "MAIN", Entries: []Entry{{Key: "devName", Value: "myDev"}}},
			},
		},
		{
			name: "inline hash is part of the value",
			input: `[MAIN]
color = #ff0000
`,
			expected: []Section{
				{Name: "MAIN", Entries: []Entry{{Key: "color", Value: "#ff0000"}}},
			},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:        "unclosed header",
			input:       "[MAIN\nkey = value\n",
			expectError: true,
		},
		{
			name:        "line without delimiter",
			input:       "[MAIN]\njust some words\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := INI{}.Parse([]byte(tt.input))

			if tt.expectError {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	codecs := map[string]Codec{
		"ini":  INI{},
		"yaml": YAML{},
	}

	tests := []struct {
		name     string
		sections []Section
	}{
		{
			name:     "sample",
			sections: sampleSections,
		},
		{
			name: "trailing backslash does not swallow the next key",
			sections: []Section{{Name: "S", Entries: []Entry{
				{Key: "dir", Value: `C:\temp\`},
				{Key: "next", Value: "kept"},
			}}},
		},
		{
			name: "surrounding quotes are kept",
			sections: []Section{{Name: "S", Entries: []Entry{
				{Key: "double", Value: `"quoted"`},
				{Key: "single", Value: `'single'`},
				{Key: "inner", Value: `say "hi" now`},
			}}},
		},
		{
			name: "comment and delimiter characters in values",
			sections: []Section{{Name: "S", Entries: []Entry{
				{Key: "hash", Value: "#ff0000"},
				{Key: "semicolon", Value: "a;b"},
				{Key: "equals", Value: "a=b:c"},
				{Key: "backtick", Value: "run `cmd`"},
				{Key: "empty", Value: ""},
			}}},
		},
		{
			name: "delimiters in keys",
			sections: []Section{{Name: "S", Entries: []Entry{
				{Key: "a=b", Value: "1"},
				{Key: "c:d", Value: "2"},
				{Key: "mid#dle", Value: "3"},
			}}},
		},
	}

	for name, c := range codecs {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				data, err := c.Serialize(tt.sections)
				if err != nil {
					t.Fatalf("Serialize() failed: %v", err)
				}
				result, err := c.Parse(data)
				if err != nil {
					t.Fatalf("Parse() failed: %v\n%s", err, data)
				}
				if diff := cmp.Diff(tt.sections, result); diff != "" {
					t.Errorf("round trip mismatch (-want +got):\n%s\n%s", diff, data)
				}
			})
		}
	}
}

func TestINI_SerializeRejectsUnrepresentable(t *testing.T) {
	tests := []struct {
		name    string
		section string
		entry   Entry
	}{
		{name: "empty key", section: "S", entry: Entry{Key: "", Value: "x"}},
		{name: "dash key", section: "S", entry: Entry{Key: "-", Value: "x"}},
		{name: "hash key", section: "S", entry: Entry{Key: "#x", Value: "x"}},
		{name: "semicolon key", section: "S", entry: Entry{Key: ";x", Value: "x"}},
		{name: "bracket key", section: "S", entry: Entry{Key: "[y", Value: "x"}},
		{name: "padded key", section: "S", entry: Entry{Key: " k", Value: "x"}},
		{name: "backtick key", section: "S", entry: Entry{Key: "a`b", Value: "x"}},
		{name: "padded value", section: "S", entry: Entry{Key: "k", Value: " x "}},
		{name: "multiline value", section: "S", entry: Entry{Key: "k", Value: "a\nb"}},
		{name: "triple quote value", section: "S", entry: Entry{Key: "k", Value: `"""x`}},
		{name: "padded section", section: " S", entry: Entry{Key: "k", Value: "x"}},
		{name: "default section key", section: DefaultSection, entry: Entry{Key: "#x", Value: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := INI{}.Serialize([]Section{{Name: tt.section, Entries: []Entry{tt.entry}}})
			if err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}

func TestYAML_Parse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    []Section
	}{
		{
			name: "scalars stay strings",
			input: `MAIN:
  port: 8080
  debug: true
  unset:
SERVER_TOPICS:
`,
			expected: []Section{
				{Name: "MAIN", Entries: []Entry{
					{Key: "port", Value: "8080"},
					{Key: "debug", Value: "true"},
					{Key: "unset", Value: ""},
				}},
				{Name: "SERVER_TOPICS"},
			},
		},
		{
			name:     "empty document",
			input:    "",
			expected: nil,
		},
		{
			name:        "top level list",
			input:       "- a\n- b\n",
			expectError: true,
		},
		{
			name:        "nested section",
			input:       "MAIN:\n  inner:\n    key: value\n",
			expectError: true,
		},
		{
			name:        "invalid syntax",
			input:       "MAIN: [unterminated\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := YAML{}.Parse([]byte(tt.input))

			if tt.expectError {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Codec
	}{
		{path: "/etc/confstore/store.conf", expected: INI{}},
		{path: "settings.ini", expected: INI{}},
		{path: "settings.yaml", expected: YAML{}},
		{path: "settings.YML", expected: YAML{}},
		{path: "noext", expected: INI{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := ForPath(tt.path); got != tt.expected {
				t.Errorf("ForPath(%q) = %T, want %T", tt.path, got, tt.expected)
			}
		})
	}
}
