// Package logger builds the logrus logger shared by the pathviz commands.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to w at the given level.
// An unknown level falls back to info, and any format other than "json"
// selects the coloured text formatter. A nil w means os.Stderr.
func New(level, format string, w io.Writer) *logrus.Logger {
	log := logrus.New()

	// 1. Level; "info" unless the value parses.
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	// 2. Formatter: "json" for collectors, text for terminals.
	if strings.EqualFold(strings.TrimSpace(format), FormatJSON) {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   w == nil,
		})
	}

	// 3. Output. The window and CLI keep stdout for their own output.
	if w == nil {
		w = os.Stderr
	}
	log.SetOutput(w)

	return log
}

// Component returns an entry tagged with the component field.
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithField("component", name)
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)

	return log
}
