// Package logging sets up the file-backed logger. The TUI owns stdout, so
// everything structured goes to a log file in the data directory.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Open returns a logger writing to duita.log under dataDir. If the file
// cannot be opened the logger discards output rather than failing the
// caller: logging is never a reason to stop the assistant.
func Open(dataDir string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	f, err := os.OpenFile(filepath.Join(dataDir, "duita.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	log.SetOutput(f)
	return log
}
