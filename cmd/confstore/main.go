package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/houseiot/confstore/internal/conf"
	"github.com/houseiot/confstore/internal/l10n"
	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

const (
	cliFile      = "file"
	cliSettings  = "settings"
	cliLogLevel  = "log-level"
	cliNoColor   = "no-color"
	cliDropInDir = "drop-in-dir"
	cliDefault   = "default"
)

// runner carries what beforeAction resolves to the command actions.
type runner struct {
	settings conf.Config
	logFile  io.Closer
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	r := &runner{}
	app := cli.NewApp()
	app.Name = "confstore"
	app.Version = Version
	app.Usage = l10n.T("inspect and change sectioned configuration files")
	app.HideHelpCommand = true

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    cliFile,
			Aliases: []string{"f"},
			Usage:   l10n.T("work on `FILE` instead of the configured store file"),
			EnvVars: []string{"CONFSTORE_FILE"},
		},
		&cli.StringFlag{
			Name:  cliSettings,
			Value: conf.DefaultPath,
			Usage: l10n.T("read command settings from `FILE`"),
		},
		&cli.StringFlag{
			Name:  cliLogLevel,
			Usage: l10n.T("override the configured log level (DEBUG, INFO, WARN, ERROR)"),
		},
		&cli.BoolFlag{
			Name:  cliNoColor,
			Usage: l10n.T("disable colored output"),
		},
	}

	readOnlyFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  cliDropInDir,
			Usage: l10n.T("merge configuration files from `DIR` after loading"),
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "print",
			Usage:     l10n.T("print all sections or a single one"),
			ArgsUsage: "[SECTION]",
			Flags:     readOnlyFlags,
			Action:    r.printAction,
		},
		{
			Name:   "sections",
			Usage:  l10n.T("list section names"),
			Flags:  readOnlyFlags,
			Action: r.sectionsAction,
		},
		{
			Name:      "get",
			Usage:     l10n.T("print the value of a key"),
			ArgsUsage: "SECTION KEY",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:  cliDefault,
					Usage: l10n.T("print `VALUE` when the key is missing or empty"),
				},
			}, readOnlyFlags...),
			Action: r.getAction,
		},
		{
			Name:      "has",
			Usage:     l10n.T("exit with status 1 unless a section or key exists"),
			ArgsUsage: "SECTION [KEY]",
			Flags:     readOnlyFlags,
			Action:    r.hasAction,
		},
		{
			Name:      "set",
			Usage:     l10n.T("set the value of a key and save"),
			ArgsUsage: "SECTION KEY VALUE",
			Action:    r.setAction,
		},
		{
			Name:      "add-section",
			Usage:     l10n.T("add an empty section and save"),
			ArgsUsage: "SECTION",
			Action:    r.addSectionAction,
		},
		{
			Name:      "del-section",
			Usage:     l10n.T("delete a section and save"),
			ArgsUsage: "SECTION",
			Action:    r.deleteSectionAction,
		},
		{
			Name:      "del-key",
			Usage:     l10n.T("delete a key and save"),
			ArgsUsage: "SECTION KEY",
			Action:    r.deleteKeyAction,
		},
		{
			Name:      "merge",
			Usage:     l10n.T("merge other configuration files and save"),
			ArgsUsage: "SOURCE...",
			Action:    r.mergeAction,
		},
		{
			Name:      "export",
			Usage:     l10n.T("write the configuration to another file, format chosen by extension"),
			ArgsUsage: "DESTINATION",
			Flags:     readOnlyFlags,
			Action:    r.exportAction,
		},
	}

	app.Before = r.beforeAction
	app.After = r.afterAction

	return app
}

// beforeAction resolves settings from the settings file and global flags,
// then sets up logging and colors.
func (r *runner) beforeAction(c *cli.Context) error {
	source := &conf.ConfigSource{
		Path:      c.String(cliSettings),
		DropInDir: c.String(cliSettings) + ".d",
	}
	config, err := source.Read()
	if err != nil {
		return cli.Exit(l10n.T("cannot load settings: %v", err), 1)
	}

	if c.IsSet(cliLogLevel) {
		level, err := conf.ParseLogLevel(c.String(cliLogLevel))
		if err != nil {
			return cli.Exit(err, 1)
		}
		config.LogLevel = level
	}
	if c.IsSet(cliFile) {
		config.StoreFile = c.String(cliFile)
	}
	if c.Bool(cliNoColor) {
		config.Color = conf.ColorNever
	}
	r.settings = config

	r.logFile = setupLogging(config.LogLevel, config.LogFile)
	setupColor(config.Color)
	slog.Debug("settings resolved", "store-file", config.StoreFile, "log-level", config.LogLevel)

	return nil
}

// afterAction closes the log file, if any.
func (r *runner) afterAction(c *cli.Context) error {
	if r.logFile == nil {
		return nil
	}
	return r.logFile.Close()
}
