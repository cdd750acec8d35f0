package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/houseiot/confstore/internal/codec"
	"github.com/houseiot/confstore/internal/l10n"
)

// Store is an ordered collection of named sections plus the DEFAULT
// section.
type Store struct {
	chat    Channel
	console Channel
	codec   codec.Codec

	defaults *section
	sections []*section
	index    map[string]*section
	source   string
}

// New returns a Store that picks its codec from the extension of every
// path it reads or writes. When source is not empty it is loaded right
// away; a failure is reported through console and leaves the Store empty
// but usable.
func New(chat, console Channel, source string) *Store {
	return NewWithCodec(chat, console, nil, source)
}

// NewWithCodec is like New but uses c for every path. A nil c selects
// the codec by extension.
func NewWithCodec(chat, console Channel, c codec.Codec, source string) *Store {
	s := &Store{
		chat:     orDiscard(chat),
		console:  orDiscard(console),
		codec:    c,
		defaults: newSection(codec.DefaultSection),
		index:    make(map[string]*section),
	}
	if source != "" {
		if err := s.read(source); err != nil {
			s.console(l10n.T("Error initializing config from %v: %v. Moving on", source, err))
		}
	}
	return s
}

// Load reads source into the Store. Unless merge is set, a Store that
// already has sections is cleared first.
//
// Clearing removes explicit sections only. Values of the DEFAULT section
// survive a re-read and are overwritten only by DEFAULT values of the new
// source; call Reset before Load to drop them too.
//
// A failure is reported through the console channel. A source is applied
// only once it parsed completely, but a non-merge Load has already
// cleared the Store by then.
func (s *Store) Load(source string, merge bool) {
	if !merge && len(s.sections) > 0 {
		s.console(l10n.T("Re-reading config file"))
		s.clear()
	}
	if source == "" {
		s.console(l10n.T("No filename given to read configuration"))
		return
	}
	if err := s.read(source); err != nil {
		if merge {
			s.console(l10n.T("Error merging config %v: %v. Moving on", source, err))
		} else {
			s.console(l10n.T("Error loading config %v: %v. Moving on", source, err))
		}
	}
}

// Merge adds the contents of source to the Store.
func (s *Store) Merge(source string) {
	s.Load(source, true)
}

func (s *Store) read(source string) error {
	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	sections, err := s.codecFor(source).Parse(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	for _, cs := range sections {
		target := s.defaults
		if cs.Name != codec.DefaultSection {
			target = s.ensure(cs.Name)
		}
		for _, e := range cs.Entries {
			target.set(e.Key, e.Value)
		}
	}
	s.source = source
	return nil
}

func (s *Store) codecFor(path string) codec.Codec {
	if s.codec != nil {
		return s.codec
	}
	return codec.ForPath(path)
}

// ensure returns the named section, creating it when missing.
func (s *Store) ensure(name string) *section {
	if sec, ok := s.index[name]; ok {
		return sec
	}
	sec := newSection(name)
	s.sections = append(s.sections, sec)
	s.index[name] = sec
	return sec
}

// lookup resolves name to a section, DEFAULT included.
func (s *Store) lookup(name string) (*section, error) {
	if name == codec.DefaultSection {
		return s.defaults, nil
	}
	sec, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrSectionNotFound, name)
	}
	return sec, nil
}

func (s *Store) clear() {
	s.sections = nil
	s.index = make(map[string]*section)
}

// Reset erases every section, DEFAULT included.
func (s *Store) Reset() {
	s.clear()
	s.defaults = newSection(codec.DefaultSection)
}

// Source returns the path last loaded or persisted successfully.
func (s *Store) Source() string {
	return s.source
}

// SetValue sets key in section, creating the section when needed.
// Setting a key of DEFAULT changes the default section.
func (s *Store) SetValue(section, key, value string) {
	if section == codec.DefaultSection {
		s.defaults.set(key, value)
		return
	}
	s.ensure(section).set(key, value)
}

// GetValue returns the value of key in section, falling back to the
// DEFAULT section. It returns def when the section does not exist, the key
// does not resolve, or the resolved value is empty.
func (s *Store) GetValue(section, key, def string) string {
	sec, ok := s.index[section]
	if !ok {
		return def
	}
	if v, ok := s.resolve(sec, key); ok && v != "" {
		return v
	}
	return def
}

func (s *Store) resolve(sec *section, key string) (string, bool) {
	if v, ok := sec.get(key); ok {
		return v, true
	}
	return s.defaults.get(key)
}

// HasSection reports whether section exists. DEFAULT never does.
func (s *Store) HasSection(section string) bool {
	_, ok := s.index[section]
	return ok
}

// HasKey reports whether key resolves in section.
func (s *Store) HasKey(section, key string) bool {
	sec, ok := s.index[section]
	if !ok {
		return false
	}
	_, ok = s.resolve(sec, key)
	return ok
}

// Sections returns the names of all sections in order, DEFAULT excluded.
func (s *Store) Sections() []string {
	names := make([]string, 0, len(s.sections))
	for _, sec := range s.sections {
		names = append(names, sec.name)
	}
	return names
}

// Defaults returns a copy of the DEFAULT section.
func (s *Store) Defaults() map[string]string {
	out := make(map[string]string, s.defaults.size())
	for k, v := range s.defaults.values {
		out[k] = v
	}
	return out
}

// AddSection creates an empty section unless it already exists.
func (s *Store) AddSection(section string) {
	if s.HasSection(section) {
		return
	}
	if err := s.addSection(section); err != nil {
		s.console(l10n.T("Error adding config section %v: %v. Moving on", section, err))
	}
}

func (s *Store) addSection(section string) error {
	switch section {
	case "":
		return fmt.Errorf("%w: empty section name", ErrUnexpected)
	case codec.DefaultSection:
		return fmt.Errorf("%w: section name %v is reserved", ErrUnexpected, section)
	}
	s.ensure(section)
	return nil
}

// DeleteSection removes section. Removing a missing section is reported
// and otherwise ignored.
func (s *Store) DeleteSection(section string) {
	if err := s.deleteSection(section); err != nil {
		s.reportDelete(err, l10n.T("Removing non-existent section %v from config", section),
			l10n.T("Error deleting config section %v: %v. Moving on", section, err))
	}
}

func (s *Store) deleteSection(section string) error {
	if _, ok := s.index[section]; !ok {
		return fmt.Errorf("%w: %v", ErrSectionNotFound, section)
	}
	delete(s.index, section)
	for i, sec := range s.sections {
		if sec.name == section {
			s.sections = append(s.sections[:i], s.sections[i+1:]...)
			break
		}
	}
	return nil
}

// DeleteKey removes key from section. A missing section is reported, a
// missing key is not.
func (s *Store) DeleteKey(section, key string) {
	sec, err := s.lookup(section)
	if err != nil {
		s.reportDelete(err, l10n.T("Removing key %v from non-existent section %v", key, section),
			l10n.T("Error deleting key %v in section %v: %v. Moving on", key, section, err))
		return
	}
	sec.remove(key)
}

// reportDelete tells a missing section apart from any other failure.
func (s *Store) reportDelete(err error, notFound, generic string) {
	if errors.Is(err, ErrSectionNotFound) {
		s.console(notFound)
		return
	}
	s.console(generic)
}

// GetSectionSnapshot returns a copy of every key that resolves in
// section, or an empty map when the section does not exist.
func (s *Store) GetSectionSnapshot(section string) map[string]string {
	sec, ok := s.index[section]
	if !ok {
		return map[string]string{}
	}
	out := s.Defaults()
	for k, v := range sec.values {
		out[k] = v
	}
	return out
}

// Persist writes the whole Store to destination and reports whether it
// succeeded. After a failure the destination may be truncated or
// missing.
func (s *Store) Persist(destination string) bool {
	if err := s.persist(destination); err != nil {
		s.console(l10n.T("Failed writing config to %v: %v", destination, err))
		return false
	}
	return true
}

func (s *Store) persist(destination string) error {
	var sections []codec.Section
	if s.defaults.size() > 0 {
		sections = append(sections, codec.Section{Name: codec.DefaultSection, Entries: s.defaults.entries()})
	}
	for _, sec := range s.sections {
		sections = append(sections, codec.Section{Name: sec.name, Entries: sec.entries()})
	}

	data, err := s.codecFor(destination).Serialize(sections)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpected, err)
	}
	if err := os.WriteFile(destination, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrDestinationUnwritable, err)
	}
	s.source = destination
	return nil
}
