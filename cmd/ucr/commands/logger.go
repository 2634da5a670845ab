package commands

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/fivetwenty-io/ucr-client/internal/constants"
	"github.com/fivetwenty-io/ucr-client/pkg/ucr"
)

// sensitiveKeys are attribute keys whose values are never logged.
var sensitiveKeys = map[string]bool{
	"api_key":       true,
	"apikey":        true,
	"api-key":       true,
	"x-api-key":     true,
	"authorization": true,
	"password":      true,
	"secret":        true,
	"token":         true,
}

// apiKeyInValue matches an unmasked api_key inside a query string or URL.
var apiKeyInValue = regexp.MustCompile(`(api_key=)[^&\s]+`)

// SecureHandler wraps an slog.Handler and masks secrets in attributes.
type SecureHandler struct {
	handler slog.Handler
}

// NewSecureHandler wraps handler.
func NewSecureHandler(handler slog.Handler) *SecureHandler {
	return &SecureHandler{handler: handler}
}

// Enabled delegates to the wrapped handler.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it on.
func (h *SecureHandler) Handle(ctx context.Context, record slog.Record) error {
	sanitized := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)

	record.Attrs(func(attr slog.Attr) bool {
		sanitized.AddAttrs(sanitizeAttr(attr))

		return true
	})

	return h.handler.Handle(ctx, sanitized)
}

// WithAttrs implements slog.Handler.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sanitized := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		sanitized[i] = sanitizeAttr(attr)
	}

	return &SecureHandler{handler: h.handler.WithAttrs(sanitized)}
}

// WithGroup implements slog.Handler.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{handler: h.handler.WithGroup(name)}
}

func sanitizeAttr(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() == slog.KindGroup {
		group := attr.Value.Group()
		sanitized := make([]slog.Attr, len(group))

		for i, member := range group {
			sanitized[i] = sanitizeAttr(member)
		}

		return slog.Attr{Key: attr.Key, Value: slog.GroupValue(sanitized...)}
	}

	if sensitiveKeys[strings.ToLower(attr.Key)] {
		return slog.String(attr.Key, constants.MaskedSecret)
	}

	if attr.Value.Kind() == slog.KindString {
		value := attr.Value.String()
		if masked := apiKeyInValue.ReplaceAllString(value, "${1}"+constants.MaskedSecret); masked != value {
			return slog.String(attr.Key, masked)
		}
	}

	return attr
}

// SlogLogger adapts a *slog.Logger to ucr.Logger.
type SlogLogger struct {
	logger *slog.Logger
}

var _ ucr.Logger = (*SlogLogger)(nil)

// NewLogger creates a text logger on w that masks secrets. verbose lowers
// the level to debug.
func NewLogger(w io.Writer, verbose bool) *SlogLogger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return &SlogLogger{logger: slog.New(NewSecureHandler(handler))}
}

// Debug implements ucr.Logger.Debug.
func (l *SlogLogger) Debug(msg string, fields map[string]interface{}) {
	l.log(slog.LevelDebug, msg, fields)
}

// Info implements ucr.Logger.Info.
func (l *SlogLogger) Info(msg string, fields map[string]interface{}) {
	l.log(slog.LevelInfo, msg, fields)
}

// Warn implements ucr.Logger.Warn.
func (l *SlogLogger) Warn(msg string, fields map[string]interface{}) {
	l.log(slog.LevelWarn, msg, fields)
}

// Error implements ucr.Logger.Error.
func (l *SlogLogger) Error(msg string, fields map[string]interface{}) {
	l.log(slog.LevelError, msg, fields)
}

func (l *SlogLogger) log(level slog.Level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(fields))
	for _, key := range keys {
		attrs = append(attrs, slog.Any(key, fields[key]))
	}

	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}
