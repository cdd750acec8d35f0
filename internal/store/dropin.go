package store

import (
	"fmt"

	"github.com/houseiot/confstore/internal/dropin"
	"github.com/houseiot/confstore/internal/l10n"
)

var dropInExtensions = []string{".conf", ".ini", ".yaml", ".yml"}

// LoadDropIns merges every configuration file of dir in lexicographic
// order, so later files override earlier ones. A missing directory is
// not a problem. A file that fails to load is reported and skipped.
func (s *Store) LoadDropIns(dir string) {
	paths, err := dropin.Find(dir, dropInExtensions...)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		s.console(l10n.T("Error reading drop-in directory %v: %v. Moving on", dir, err))
		return
	}
	for _, path := range paths {
		s.Merge(path)
	}
}
