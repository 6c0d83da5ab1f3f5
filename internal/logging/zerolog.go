package logging

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/rs/zerolog"
)

// ZerologHandler renders slog records through a zerolog logger, which gives
// the human friendly zerolog.ConsoleWriter layout on terminals.
type ZerologHandler struct {
	logger zerolog.Logger
	level  slog.Leveler
	fields map[string]any
	prefix string
}

// NewZerologConsoleHandler writes console formatted records to w.
func NewZerologConsoleHandler(w io.Writer, level slog.Leveler, color bool) *ZerologHandler {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}
	return &ZerologHandler{
		logger: zerolog.New(out),
		level:  level,
	}
}

func (h *ZerologHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *ZerologHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]any, len(h.fields)+r.NumAttrs())
	for k, v := range h.fields {
		fields[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		addField(fields, h.prefix, a)
		return true
	})

	ev := h.logger.WithLevel(zerologLevel(r.Level))
	if !r.Time.IsZero() {
		ev = ev.Time(zerolog.TimestampFieldName, r.Time.UTC())
	}
	ev.Fields(fields).Msg(r.Message)
	return nil
}

func (h *ZerologHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make(map[string]any, len(h.fields)+len(attrs))
	for k, v := range h.fields {
		fields[k] = v
	}
	for _, a := range attrs {
		addField(fields, h.prefix, a)
	}
	return &ZerologHandler{logger: h.logger, level: h.level, fields: fields, prefix: h.prefix}
}

func (h *ZerologHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &ZerologHandler{logger: h.logger, level: h.level, fields: h.fields, prefix: h.prefix + name + "."}
}

// addField flattens a (possibly grouped) attribute into dotted keys.
func addField(fields map[string]any, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, ga := range v.Group() {
			addField(fields, p, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	fields[prefix+a.Key] = v.Any()
}

func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
