package preprocess

import (
	"github.com/baditaflorin/go_preprocess/internal/adapters/logger"
	"github.com/baditaflorin/go_preprocess/internal/ports"
)

// createDefaultLogger creates and returns a default logger instance.
func createDefaultLogger() (ports.Logger, error) {
	return logger.NewStdLogger()
}
