// Package logger owns the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures Log from LOG_LEVEL and LOG_FORMAT, defaulting to info
// and timestamped text. Call it once from main before anything logs.
func Init() {
	level, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		level = "info"
	}
	format := os.Getenv("LOG_FORMAT")
	if format == "" {
		format = "text"
	}
	Configure(level, format)
	Log.SetOutput(os.Stdout)
}

// Configure applies a level and format. An empty value keeps the current
// setting; an unparsable level falls back to info.
func Configure(level, format string) {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		Log.SetLevel(lvl)
	}

	switch strings.ToLower(format) {
	case "":
	case "json":
		Log.SetFormatter(&logrus.JSONFormatter{})
	default:
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// SetOutput redirects the logger, mostly for tests
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}
