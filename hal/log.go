package hal

import "github.com/edaniels/golog"

// Logger is the leveled diagnostics sink used across the module. It is
// satisfied by golog.Logger, so callers can pass golog.NewTestLogger(t)
// in tests or hal.Discard where output is unwanted.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NewLogger returns a development-mode logger with the given name.
func NewLogger(name string) Logger {
	return golog.NewDevelopmentLogger(name)
}

// Discard drops all log output.
var Discard Logger = discard{}

type discard struct{}

func (discard) Debugf(string, ...interface{}) {}
func (discard) Infof(string, ...interface{})  {}
func (discard) Warnf(string, ...interface{})  {}
func (discard) Errorf(string, ...interface{}) {}
