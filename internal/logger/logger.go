package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// New returns a logger writing to w. Progress is logged at info level and
// only shows up when verbose is set.
func New(w io.Writer, verbose, noColor bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "CONTGEN",
	})

	l.SetLevel(log.WarnLevel)
	if verbose {
		l.SetLevel(log.InfoLevel)
	}

	l.SetColorProfile(termenv.ANSI256)
	if noColor {
		l.SetColorProfile(termenv.Ascii)
	}
	return l
}

// Init installs a stderr logger as the default and returns it.
func Init(verbose bool) *log.Logger {
	l := New(os.Stderr, verbose, false)
	log.SetDefault(l)
	return l
}
