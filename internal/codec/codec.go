package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultSection is the name of the fallback section. Its entries are
// visible to lookups performed against every other section.
const DefaultSection = "DEFAULT"

// Entry is a single key/value pair of a section.
type Entry struct {
	Key   string
	Value string
}

// Section is a named, ordered list of entries.
type Section struct {
	Name    string
	Entries []Entry
}

// Codec turns text into ordered sections and back.
type Codec interface {
	// Parse decodes data. Malformed input results in a *ParseError.
	Parse(data []byte) ([]Section, error)
	// Serialize encodes sections, honoring section and entry order.
	Serialize(sections []Section) ([]byte, error)
}

// ParseError reports input that is not well-formed for a codec.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ForPath returns the codec matching the extension of path. Files that
// are not YAML are treated as INI.
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML{}
	default:
		return INI{}
	}
}
