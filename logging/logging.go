// Package logging sets up the logrus logger used by the command line tool.
package logging

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

// Init points the logger at w and sets its level. An unknown level falls
// back to info.
func Init(w io.Writer, level string) {
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
}

// Logger returns the shared logger.
func Logger() *logrus.Logger {
	return logger
}
