package codec

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// INI reads and writes "[section]" headers followed by "key = value"
// lines. Keys that appear before the first header belong to the default
// section.
type INI struct{}

// Values are kept verbatim: "#" and ";" only start a comment at the
// beginning of a line, a trailing backslash is not a continuation and
// surrounding quotes are part of the value.
var iniOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

func (INI) Parse(data []byte) ([]Section, error) {
	f, err := ini.LoadSources(iniOptions, data)
	if err != nil {
		return nil, &ParseError{Format: "INI", Err: err}
	}

	var sections []Section
	for _, sec := range f.Sections() {
		s := Section{Name: sec.Name()}
		for _, key := range sec.Keys() {
			s.Entries = append(s.Entries, Entry{Key: key.Name(), Value: key.Value()})
		}
		// The library always reports a default section, even for input
		// that never mentions it.
		if s.Name == ini.DefaultSection && len(s.Entries) == 0 {
			continue
		}
		sections = append(sections, s)
	}
	return sections, nil
}

// Serialize fails for names and values that would not read back
// unchanged; see checkINI.
func (INI) Serialize(sections []Section) ([]byte, error) {
	f := ini.Empty(iniOptions)
	for _, s := range sections {
		sec := f.Section(ini.DefaultSection)
		if s.Name != DefaultSection {
			if err := checkINISection(s.Name); err != nil {
				return nil, err
			}
			var err error
			sec, err = f.NewSection(s.Name)
			if err != nil {
				return nil, fmt.Errorf("cannot add section %q: %w", s.Name, err)
			}
		}
		for _, e := range s.Entries {
			if err := checkINIEntry(e); err != nil {
				return nil, fmt.Errorf("section %q: %w", s.Name, err)
			}
			if _, err := sec.NewKey(e.Key, e.Value); err != nil {
				return nil, fmt.Errorf("cannot add key %q to section %q: %w", e.Key, s.Name, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("cannot encode INI: %w", err)
	}
	return buf.Bytes(), nil
}

// padded reports leading or trailing whitespace, which the parser trims.
func padded(s string) bool {
	return strings.TrimSpace(s) != s
}

func checkINISection(name string) error {
	if padded(name) || strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("section name %q cannot be written as INI", name)
	}
	return nil
}

func checkINIEntry(e Entry) error {
	switch {
	case e.Key == "":
		return fmt.Errorf("empty key name")
	// "-" is read back as an auto-numbered key, "#" and ";" start a
	// comment and "[" a section header.
	case e.Key == "-",
		strings.HasPrefix(e.Key, "#"),
		strings.HasPrefix(e.Key, ";"),
		strings.HasPrefix(e.Key, "["),
		padded(e.Key),
		strings.ContainsAny(e.Key, "`\r\n"):
		return fmt.Errorf("key %q cannot be written as INI", e.Key)
	// The writer quotes padded values, and quotes are kept on read.
	case padded(e.Value),
		strings.ContainsAny(e.Value, "\r\n"),
		strings.Contains(e.Value, `"""`):
		return fmt.Errorf("value of key %q cannot be written as INI", e.Key)
	}
	return nil
}
