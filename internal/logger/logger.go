package logger

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a structured logger writing to w with level and format from strings.
// An unrecognized level falls back to info and is reported on the new logger.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl, ok := ParseLevel(level)
	opts := &slog.HandlerOptions{Level: lvl, ReplaceAttr: renameLevels}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	log := slog.New(handler)
	if !ok {
		log.Warn("invalid log level; using INFO", "level", level)
	}
	return log
}

// ParseLevel maps a severity name to a slog level. Both the FINE/INFO/WARNING/SEVERE
// names and the debug/info/warn/error names are accepted, case-insensitively.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "FINE", "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARNING", "WARN":
		return slog.LevelWarn, true
	case "SEVERE", "ERROR":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// LevelName returns the severity name printed for l.
func LevelName(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return "FINE"
	case l < slog.LevelWarn:
		return "INFO"
	case l < slog.LevelError:
		return "WARNING"
	default:
		return "SEVERE"
	}
}

func renameLevels(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(LevelName(lvl))
		}
	}
	return a
}
