package logging

import (
	"context"
	"log/slog"
)

type ctxAttrsKey struct{}

// ContextWithAttrs returns a copy of ctx carrying attrs after any already
// attached. A ContextHandler adds them to every record logged with ctx.
func ContextWithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	prev := attrsFromContext(ctx)
	merged := make([]slog.Attr, 0, len(prev)+len(attrs))
	merged = append(merged, prev...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, ctxAttrsKey{}, merged)
}

func attrsFromContext(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	attrs, _ := ctx.Value(ctxAttrsKey{}).([]slog.Attr)
	return attrs
}

// ContextProvider returns attributes evaluated at the time of each record,
// such as the field currently queried.
type ContextProvider func(ctx context.Context) []slog.Attr

// ContextHandler stamps records with the attributes carried by their context
// and those returned by its provider, then hands them to next.
type ContextHandler struct {
	next     slog.Handler
	provider ContextProvider
}

// NewContextHandler wraps next. provider may be nil.
func NewContextHandler(next slog.Handler, provider ContextProvider) *ContextHandler {
	return &ContextHandler{next: next, provider: provider}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(attrsFromContext(ctx)...)
	if h.provider != nil {
		r.AddAttrs(h.provider(ctx)...)
	}
	return h.next.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.wrap(h.next.WithAttrs(attrs))
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.wrap(h.next.WithGroup(name))
}

func (h *ContextHandler) wrap(next slog.Handler) *ContextHandler {
	return &ContextHandler{next: next, provider: h.provider}
}
