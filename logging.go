// File: lixenwraith/benchconf/logging.go
package benchconf

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Verbosity levels used by the benchmark (0-5)
const (
	VerbosePrompt  = 0
	VerboseStage   = 1
	VerboseError   = 2
	VerboseWarning = 3
	VerboseInfo    = 4
	VerboseDetails = 5
)

// LevelForVerbosity maps a benchmark verbosity level onto a logrus level
func LevelForVerbosity(verbosity int) logrus.Level {
	switch {
	case verbosity >= VerboseDetails:
		return logrus.DebugLevel
	case verbosity == VerboseInfo:
		return logrus.InfoLevel
	case verbosity == VerboseWarning:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// NewLogger returns a text logger writing to w at the level for verbosity
func NewLogger(w io.Writer, verbosity int) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(LevelForVerbosity(verbosity))
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logger
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
