// Package stdlogger bridges printf style logger interfaces to the global zerolog logger.
package stdlogger

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gormlogger "gorm.io/gorm/logger"
)

// Logger implements Debugf, Infof, Warningf, Errorf and Printf on top of zerolog.
type Logger struct {
	zl zerolog.Logger
}

// New returns a Logger writing to the current global zerolog logger.
// Call it after logger.Init.
func New() *Logger {
	return &Logger{zl: log.Logger}
}

// With returns a copy of the logger tagged with the component name.
func (l *Logger) With(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger()}
}

// Debugf logs on debug level.
func (l *Logger) Debugf(format string, v ...any) {
	l.zl.Debug().Msgf(format, v...)
}

// Infof logs on info level.
func (l *Logger) Infof(format string, v ...any) {
	l.zl.Info().Msgf(format, v...)
}

// Warningf logs on warn level.
func (l *Logger) Warningf(format string, v ...any) {
	l.zl.Warn().Msgf(format, v...)
}

// Errorf logs on error level.
func (l *Logger) Errorf(format string, v ...any) {
	l.zl.Error().Msgf(format, v...)
}

// Printf implements gorm's logger.Writer. Gorm already filtered by level,
// so the statements are written on info level.
func (l *Logger) Printf(format string, v ...any) {
	l.zl.Info().Msgf(format, v...)
}

// NewGorm returns a gorm logger writing through zerolog.
// With debug set every statement is logged, otherwise only errors and slow queries.
func NewGorm(debug bool) gormlogger.Interface {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}

	return gormlogger.New(New().With("gorm"), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond, //nolint:mnd
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
