// Package telemetry provides the interpreter's ambient diagnostic
// tracing — never the user-facing error or print channel (that's
// internal/reporter and the interpreter's stdout writer). Enabled with
// -trace on the CLI; silent otherwise.
package telemetry

import (
	"io"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableColors: false})
	log.SetLevel(logrus.InfoLevel)
}

// EnableTrace raises the logger to Debug level, turning on the
// per-phase tracing calls sprinkled through the driver.
func EnableTrace() {
	log.SetLevel(logrus.DebugLevel)
}

// SetOutput redirects where trace output is written. internal/driver
// calls this with its own stderr writer at the start of each run, so
// tracing follows whatever stream the caller (the CLI, or a test) wired
// up rather than always going to the process's real stderr.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Phase logs entry into one of the driver's pipeline phases (scan,
// parse, resolve, interpret) along with a few key/value fields.
func Phase(name string, fields logrus.Fields) {
	log.WithFields(fields).Debugf("phase: %s", name)
}
