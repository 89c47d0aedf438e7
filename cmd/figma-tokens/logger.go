package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	figmatokens "github.com/kataras/figma-tokens"
)

// cliLogger implements figmatokens.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

// newLogrus returns a logrus logger writing to w in the configured format.
func newLogrus(w io.Writer, format string, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	if format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// newLogger picks the progress logger of the sync command.
// --quiet silences it, --log-format json switches to structured output.
func newLogger() figmatokens.Logger {
	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	if format := getStringWithFallback("log-format", "log-format", "text"); format == "json" {
		return newLogrus(os.Stderr, format, getBoolWithFallback("verbose", "verbose", false))
	}
	return &cliLogger{}
}
