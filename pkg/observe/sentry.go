package observe

import (
	"encoding/json"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap/zapcore"
)

const (
	_sentryFlushTimeout         = 5 * time.Second
	_sentryServerRequestTimeout = 5 * time.Second
)

// SentryWriter is an io.Writer for the zap multi-writer that forwards
// error-level (and above) log entries to sentry. Entries below error level
// are accepted and dropped.
type SentryWriter struct {
	appName string
	appEnv  string
}

func NewSentryWriter(dsn, appEnv, appName string) (*SentryWriter, error) {
	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout

	if err := sentry.Init(sentry.ClientOptions{
		AttachStacktrace: true,
		Dsn:              dsn,
		Environment:      appEnv,
		ServerName:       appName,
		Transport:        sentryTransport,
	}); err != nil {
		return nil, err
	}

	return &SentryWriter{
		appName: appName,
		appEnv:  appEnv,
	}, nil
}

func (w *SentryWriter) Write(p []byte) (n int, err error) {
	var entry struct {
		Level   string `json:"level"`
		Message string `json:"msg"`
		Error   string `json:"error"`
		Stack   string `json:"stack"`
	}

	if err := json.Unmarshal(p, &entry); err != nil {
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(entry.Level)
	if err != nil || level < zapcore.ErrorLevel || entry.Message == "" {
		return len(p), nil
	}

	event := sentry.NewEvent()
	event.Level = mapLevel(level)
	event.Environment = w.appEnv
	event.Message = entry.Message
	event.Extra["AppName"] = w.appName
	event.Extra["Error"] = entry.Error
	event.Extra["Stack"] = entry.Stack
	sentry.CaptureEvent(event)

	return len(p), nil
}

func (w *SentryWriter) Flush() {
	sentry.Flush(_sentryFlushTimeout)
}

func mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}
