package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/houseiot/confstore/internal/conf"
	"github.com/houseiot/confstore/internal/store"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

var sectionHeader = color.New(color.FgCyan, color.Bold).SprintFunc()

// chatChannel prints store output to w, highlighting section headers.
func chatChannel(w io.Writer) store.Channel {
	return func(msg string) {
		if strings.HasPrefix(msg, "[") {
			msg = sectionHeader(msg)
		}
		fmt.Fprintln(w, msg)
	}
}

// consoleChannel turns store diagnostics into warnings of the default
// logger.
func consoleChannel() store.Channel {
	return func(msg string) {
		slog.Warn(msg)
	}
}

// setupLogging installs the default logger. With a log file, output is
// rotated by lumberjack and the returned Closer must be closed when the
// command is done; otherwise output goes to stderr and the Closer is nil.
func setupLogging(level slog.Level, file string) io.Closer {
	var w io.Writer = os.Stderr
	var closer io.Closer
	if file != "" {
		logger := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		w, closer = logger, logger
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closer
}

func setupColor(mode conf.ColorMode) {
	switch mode {
	case conf.ColorAlways:
		color.NoColor = false
	case conf.ColorNever:
		color.NoColor = true
	default:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
}
