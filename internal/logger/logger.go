// Package logger provides the process-wide logrus logger.
package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	log  *logrus.Logger
)

// Get returns the singleton logger. The level starts at info and is adjusted
// once the configuration is loaded.
func Get() *logrus.Logger {
	once.Do(func() {
		log = logrus.New()
		log.Out = os.Stdout
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			PadLevelText:  true,
		})
	})
	return log
}

// SetLevel applies a textual log level; unparseable values fall back to info.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Get().SetLevel(parsed)
}
