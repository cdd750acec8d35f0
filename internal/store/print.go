package store

import (
	"fmt"

	"github.com/houseiot/confstore/internal/l10n"
)

// PrintAll writes every section through the chat channel: a "[name]"
// header followed by one " key = value" line per key.
func (s *Store) PrintAll() {
	if len(s.sections) < 1 {
		s.console(l10n.T("Config is empty"))
		return
	}
	for _, sec := range s.sections {
		s.printSection(sec)
	}
}

// PrintSection writes a single section through the chat channel.
func (s *Store) PrintSection(section string) {
	sec, ok := s.index[section]
	if !ok {
		s.console(l10n.T("No section %v in config", section))
		return
	}
	s.printSection(sec)
}

// printSection lists own keys first, then the DEFAULT keys the section
// does not override.
func (s *Store) printSection(sec *section) {
	s.chat(fmt.Sprintf("[%s]", sec.name))
	for _, k := range sec.keys {
		s.chat(fmt.Sprintf(" %s = %s", k, sec.values[k]))
	}
	for _, k := range s.defaults.keys {
		if _, ok := sec.values[k]; ok {
			continue
		}
		s.chat(fmt.Sprintf(" %s = %s", k, s.defaults.values[k]))
	}
}
