package runner

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a logger writing to w. Unknown levels fall back to info;
// format "json" switches to the JSON formatter.
func NewLogger(levelStr, formatStr string, w io.Writer) *log.Logger {
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "itemsort",
	})
	if formatStr == "json" {
		logger.SetFormatter(log.JSONFormatter)
	}

	return logger
}
