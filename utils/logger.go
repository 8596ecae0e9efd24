package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogger configures the process-wide logrus logger. Production gets
// JSON lines for collectors; everything else stays human-readable.
func SetupLogger(environment string) {
	logrus.SetOutput(os.Stdout)
	if environment == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.SetLevel(logrus.DebugLevel)
}
