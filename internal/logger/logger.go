package logger

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/edustream/videos-ms-go/internal/api_context"
)

var std *slog.Logger

// uidHandler stamps every record with the authenticated user, or "system"
// for worker tasks and unauthenticated reads.
type uidHandler struct{ next slog.Handler }

func (h uidHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.next.Enabled(ctx, lvl)
}

func (h uidHandler) Handle(ctx context.Context, r slog.Record) error {
	uid := "system"
	if id, ok := api_context.AuthUserIDFromContext(ctx); ok {
		uid = id
	}
	r.AddAttrs(slog.String("uid", uid))
	return h.next.Handle(ctx, r)
}

func (h uidHandler) WithAttrs(a []slog.Attr) slog.Handler {
	return uidHandler{next: h.next.WithAttrs(a)}
}

func (h uidHandler) WithGroup(n string) slog.Handler {
	return uidHandler{next: h.next.WithGroup(n)}
}

// Init configures the process-wide logger.
// ENV:
//
//	LOG_FORMAT    json|text (default: json)
//	LOG_LEVEL     debug|info|warn|error (default: info)
//	LOG_SOURCE    true|false (default: false)
func Init() {
	addSource, _ := strconv.ParseBool(envOr("LOG_SOURCE", "false"))
	opts := &slog.HandlerOptions{
		Level:     parseLevel(envOr("LOG_LEVEL", "info")),
		AddSource: addSource,
	}

	var base slog.Handler
	if strings.EqualFold(envOr("LOG_FORMAT", "json"), "text") {
		base = slog.NewTextHandler(os.Stdout, opts)
	} else {
		base = slog.NewJSONHandler(os.Stdout, opts)
	}

	std = slog.New(uidHandler{next: base}).With("svc", "videos-ms")
	slog.SetDefault(std)

	// route legacy log.Printf through the same handler (no ctx, no uid)
	log.SetFlags(0)
	log.SetOutput(slog.NewLogLogger(base, slog.LevelInfo).Writer())
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) slog.Leveler {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func active() *slog.Logger {
	if std != nil {
		return std
	}
	return slog.Default()
}

func Info(ctx context.Context, msg string, attrs ...any) {
	active().InfoContext(ctx, msg, attrs...)
}

func Warn(ctx context.Context, msg string, attrs ...any) {
	active().WarnContext(ctx, msg, attrs...)
}

func Error(ctx context.Context, msg string, attrs ...any) {
	active().ErrorContext(ctx, msg, attrs...)
}

func Infof(ctx context.Context, format string, a ...any) {
	active().InfoContext(ctx, fmt.Sprintf(format, a...))
}

func Warnf(ctx context.Context, format string, a ...any) {
	active().WarnContext(ctx, fmt.Sprintf(format, a...))
}

func Errorf(ctx context.Context, format string, a ...any) {
	active().ErrorContext(ctx, fmt.Sprintf(format, a...))
}
