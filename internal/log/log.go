// Package log is the shared logger for the samples, the CLI and the test
// tooling. It configures apex/log from the GOAWS_LOG environment variable.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/apex/log"
)

// EnvLevel names the variable holding the log level.
const EnvLevel = "GOAWS_LOG"

var (
	initialized  atomic.Bool
	traceEnabled bool
)

// InitLogger sets up apex/log with Handler writing to stderr and a level read
// from GOAWS_LOG. Without it only errors are written.
func InitLogger() {
	initLogger(os.Getenv(EnvLevel), os.Stderr)
}

func initLogger(envLevel string, w io.Writer) {
	envLevel = strings.ToLower(strings.TrimSpace(envLevel))
	if envLevel == "" {
		envLevel = "error"
	}
	traceEnabled = envLevel == "trace"

	var level log.Level
	switch envLevel {
	case "trace", "debug":
		level = log.DebugLevel
	case "info":
		level = log.InfoLevel
	case "warn":
		level = log.WarnLevel
	case "fatal":
		level = log.FatalLevel
	default:
		level = log.ErrorLevel
	}
	log.SetHandler(&Handler{w: w})
	log.SetLevel(level)
	initialized.Store(true)
}

func ensure() {
	if !initialized.Load() {
		InitLogger()
	}
}

// Handler formats entries as "timestamp LEVEL message key=value...".
type Handler struct {
	mu sync.Mutex
	w  io.Writer
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	message := e.Message
	level := "?"
	if strings.HasPrefix(message, "TRACE: ") {
		level = "T"
		message = message[7:]
	} else {
		switch e.Level {
		case log.DebugLevel:
			level = "D"
		case log.InfoLevel:
			level = "I"
		case log.WarnLevel:
			level = "W"
		case log.ErrorLevel:
			level = "E"
		case log.FatalLevel:
			level = "F"
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", time.Now().Format("2006-01-02 15:04:05"), level, message)
	for _, name := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// Tracef logs below debug level. Only written when GOAWS_LOG=trace.
func Tracef(format string, args ...interface{}) {
	ensure()
	if traceEnabled {
		log.Debug("TRACE: " + fmt.Sprintf(format, args...))
	}
}

// Debugf logs at debug level.
func Debugf(format string, args ...interface{}) {
	ensure()
	log.Debugf(format, args...)
}

// Infof logs at info level.
func Infof(format string, args ...interface{}) {
	ensure()
	log.Infof(format, args...)
}

// Warnf logs at warn level.
func Warnf(format string, args ...interface{}) {
	ensure()
	log.Warnf(format, args...)
}

// Errorf logs at error level.
func Errorf(format string, args ...interface{}) {
	ensure()
	log.Errorf(format, args...)
}

// WithError returns an entry carrying err.
func WithError(err error) *log.Entry {
	ensure()
	return log.WithError(err)
}

// WithField returns an entry carrying a single field.
func WithField(key string, value interface{}) *log.Entry {
	ensure()
	return log.WithField(key, value)
}
