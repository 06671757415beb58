// Package logging configures the shared logrus logger for propdesk.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the log level (debug, info, warn, error).
const LevelEnv = "PROPDESK_LOG_LEVEL"

// appNameHook prefixes every entry with the application name.
type appNameHook struct {
	appName string
}

// Levels implements logrus.Hook.
func (h *appNameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (h *appNameHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.appName + "] " + entry.Message
	return nil
}

// New returns a logger writing to out (stderr when nil) at the level named
// by PROPDESK_LOG_LEVEL, defaulting to info on an empty or invalid value.
func New(appName string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	levelStr := strings.ToLower(os.Getenv(LevelEnv))
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
		log.Warnf("invalid %s %q, defaulting to info", LevelEnv, levelStr)
	}
	log.SetLevel(level)

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	log.AddHook(&appNameHook{appName: appName})

	return log
}
