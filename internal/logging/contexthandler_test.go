package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextHandler_EvaluatesPerRecord(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	h := NewContextHandler(slog.NewTextHandler(&buf, nil), func(context.Context) []slog.Attr {
		calls++
		return []slog.Attr{slog.Int("call", calls)}
	})
	logger := slog.New(h)

	logger.Info("one")
	logger.Info("two")

	assert.Equal(t, 2, calls)
	assert.Contains(t, buf.String(), "call=1")
	assert.Contains(t, buf.String(), "call=2")
}

func TestContextHandler_NilProvider(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewContextHandler(slog.NewTextHandler(&buf, nil), nil))

	logger.With("surface", "turf").WithGroup("g").Info("ok", "k", "v")

	assert.Contains(t, buf.String(), "surface=turf")
	assert.Contains(t, buf.String(), "g.k=v")
}

func TestContextHandler_ContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewContextHandler(slog.NewTextHandler(&buf, nil), func(ctx context.Context) []slog.Attr {
		return []slog.Attr{slog.Int("carried", len(attrsFromContext(ctx)))}
	}))

	ctx := ContextWithAttrs(context.Background(), slog.String("command", "locate"))
	ctx = ContextWithAttrs(ctx, slog.String("zone", "playing_field"))
	logger.InfoContext(ctx, "located")

	assert.Contains(t, buf.String(), "command=locate zone=playing_field carried=2")

	buf.Reset()
	logger.Info("no context attrs")
	assert.Contains(t, buf.String(), "carried=0")
	assert.NotContains(t, buf.String(), "command=")
}

func TestContextWithAttrs_DoesNotAliasParent(t *testing.T) {
	parent := ContextWithAttrs(context.Background(), slog.String("a", "1"))
	left := ContextWithAttrs(parent, slog.String("b", "2"))
	right := ContextWithAttrs(parent, slog.String("c", "3"))

	assert.Len(t, attrsFromContext(parent), 1)
	assert.Equal(t, "b", attrsFromContext(left)[1].Key)
	assert.Equal(t, "c", attrsFromContext(right)[1].Key)
}
