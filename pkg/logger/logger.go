// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init with info level and text output.
var Log = logrus.New()

// Init configures the global logger. Call it once from main.
// Unknown levels fall back to info; format "json" selects the JSON formatter,
// anything else the text formatter.
func Init(level, format string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stderr)
}

// SetOutput redirects the global logger, e.g. to a file while the terminal
// is busy drawing the map
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}
