package session

import (
	"github.com/nookmarket/nook-cli/internal/terminal"
)

// Logger receives the diagnostics of background session work,
// which is never surfaced to the user as a failure
type Logger interface {
	Print(logs ...terminal.Log)
}

type noopLogger struct{}

func (noopLogger) Print(logs ...terminal.Log) {}

func loggerOrNoop(logger Logger) Logger {
	if logger == nil {
		return noopLogger{}
	}
	return logger
}
