package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/houseiot/confstore/internal/l10n"
	"github.com/houseiot/confstore/internal/store"
	"github.com/urfave/cli/v2"
)

// openStore loads the configured store file. Drop-ins are merged only when
// the command was given a drop-in directory; such a store must not be
// saved back.
func (r *runner) openStore(c *cli.Context) *store.Store {
	s := store.New(chatChannel(c.App.Writer), consoleChannel(), r.settings.StoreFile)
	if dir := c.String(cliDropInDir); dir != "" {
		s.LoadDropIns(dir)
	}
	return s
}

// openStoreForUpdate is like openStore but fails when the store file
// exists and could not be loaded, so that saving cannot replace it with
// a partial copy. A missing file starts an empty store.
func (r *runner) openStoreForUpdate(c *cli.Context) (*store.Store, error) {
	s := r.openStore(c)
	if s.Source() == r.settings.StoreFile {
		return s, nil
	}
	if _, err := os.Stat(r.settings.StoreFile); errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	return nil, cli.Exit(l10n.T("refusing to modify %v: it could not be loaded", r.settings.StoreFile), 1)
}

// save persists s to the file it was opened from.
func (r *runner) save(s *store.Store) error {
	if !s.Persist(r.settings.StoreFile) {
		return cli.Exit(l10n.T("cannot save configuration to %v", r.settings.StoreFile), 1)
	}
	slog.Debug("configuration saved", "file", r.settings.StoreFile)
	return nil
}

// update opens the store for update, applies change and saves the result.
func (r *runner) update(c *cli.Context, change func(s *store.Store)) error {
	s, err := r.openStoreForUpdate(c)
	if err != nil {
		return err
	}
	change(s)
	return r.save(s)
}

// requireArgs fails unless c has between minArgs and maxArgs arguments. A
// negative maxArgs means there is no upper bound.
func requireArgs(c *cli.Context, minArgs, maxArgs int) error {
	if c.NArg() < minArgs || (maxArgs >= 0 && c.NArg() > maxArgs) {
		return cli.Exit(l10n.T("usage: %v %v %v", c.App.Name, c.Command.Name, c.Command.ArgsUsage), 1)
	}
	return nil
}

func (r *runner) printAction(c *cli.Context) error {
	if err := requireArgs(c, 0, 1); err != nil {
		return err
	}
	s := r.openStore(c)
	if c.NArg() == 1 {
		s.PrintSection(c.Args().First())
	} else {
		s.PrintAll()
	}
	return nil
}

func (r *runner) sectionsAction(c *cli.Context) error {
	if err := requireArgs(c, 0, 0); err != nil {
		return err
	}
	names := r.openStore(c).Sections()
	for _, name := range names {
		fmt.Fprintln(c.App.Writer, name)
	}
	slog.Debug(l10n.TN("%v section", "%v sections", uint32(len(names)), len(names)))
	return nil
}

func (r *runner) getAction(c *cli.Context) error {
	if err := requireArgs(c, 2, 2); err != nil {
		return err
	}
	value := r.openStore(c).GetValue(c.Args().Get(0), c.Args().Get(1), c.String(cliDefault))
	fmt.Fprintln(c.App.Writer, value)
	return nil
}

func (r *runner) hasAction(c *cli.Context) error {
	if err := requireArgs(c, 1, 2); err != nil {
		return err
	}
	s := r.openStore(c)
	found := s.HasSection(c.Args().Get(0))
	if c.NArg() == 2 {
		found = s.HasKey(c.Args().Get(0), c.Args().Get(1))
	}
	if !found {
		return cli.Exit("", 1)
	}
	return nil
}

func (r *runner) setAction(c *cli.Context) error {
	if err := requireArgs(c, 3, 3); err != nil {
		return err
	}
	return r.update(c, func(s *store.Store) {
		s.SetValue(c.Args().Get(0), c.Args().Get(1), c.Args().Get(2))
	})
}

func (r *runner) addSectionAction(c *cli.Context) error {
	if err := requireArgs(c, 1, 1); err != nil {
		return err
	}
	return r.update(c, func(s *store.Store) {
		s.AddSection(c.Args().First())
	})
}

func (r *runner) deleteSectionAction(c *cli.Context) error {
	if err := requireArgs(c, 1, 1); err != nil {
		return err
	}
	return r.update(c, func(s *store.Store) {
		s.DeleteSection(c.Args().First())
	})
}

func (r *runner) deleteKeyAction(c *cli.Context) error {
	if err := requireArgs(c, 2, 2); err != nil {
		return err
	}
	return r.update(c, func(s *store.Store) {
		s.DeleteKey(c.Args().Get(0), c.Args().Get(1))
	})
}

func (r *runner) mergeAction(c *cli.Context) error {
	if err := requireArgs(c, 1, -1); err != nil {
		return err
	}
	return r.update(c, func(s *store.Store) {
		for _, source := range c.Args().Slice() {
			s.Merge(source)
		}
		slog.Info(l10n.TN("merged %v source", "merged %v sources", uint32(c.NArg()), c.NArg()))
	})
}

func (r *runner) exportAction(c *cli.Context) error {
	if err := requireArgs(c, 1, 1); err != nil {
		return err
	}
	destination := c.Args().First()
	if !r.openStore(c).Persist(destination) {
		return cli.Exit(l10n.T("cannot export configuration to %v", destination), 1)
	}
	return nil
}
