package logger

import (
	"os"

	"github.com/rs/zerolog"

	usecasecontract "github.com/bloghub/bloghub/internal/usecase/contract"
)

// ZeroLogger adapts zerolog to the application logger interface.
type ZeroLogger struct {
	log zerolog.Logger
}

// NewLogger creates a structured logger writing JSON to stderr.
func NewLogger() usecasecontract.IAppLogger {
	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	return &ZeroLogger{log: zl}
}

// Debugf logs a debug message.
func (l *ZeroLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

// Infof logs an info message.
func (l *ZeroLogger) Infof(format string, args ...interface{}) {
	l.log.Info().Msgf(format, args...)
}

// Warnf logs a warning message.
func (l *ZeroLogger) Warnf(format string, args ...interface{}) {
	l.log.Warn().Msgf(format, args...)
}

// Errorf logs an error message.
func (l *ZeroLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(format, args...)
}

// Fatalf logs a fatal message and exits.
func (l *ZeroLogger) Fatalf(format string, args ...interface{}) {
	l.log.Fatal().Msgf(format, args...)
}
