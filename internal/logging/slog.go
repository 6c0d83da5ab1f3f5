package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// Console formats.
const (
	FormatText    = "text"
	FormatConsole = "console"
)

// Options configures SlogManager.Setup.
type Options struct {
	// Level is a level name understood by ParseLevel.
	Level string
	// Format selects the console layout: FormatText (slog text) or
	// FormatConsole (zerolog console writer).
	Format string
	// Console receives console output; os.Stdout when nil.
	Console io.Writer
	// File optionally receives a plain text copy of every record.
	File io.Writer
	// GraylogAddress enables the GELF sink when non-empty.
	GraylogAddress string
	// Provider enables the OTel bridge when non-nil.
	Provider *sdklog.LoggerProvider
	// Context adds dynamic attributes to each record.
	Context ContextProvider
}

// SlogManager manages slog-based logging with optional OTel integration.
type SlogManager struct {
	logger  *slog.Logger
	closers []io.Closer
}

// NewSlogManager creates a new slog-based logging manager.
func NewSlogManager() *SlogManager {
	return &SlogManager{}
}

// Setup builds the logger from opts, replacing any previous one. Sink
// failures (Graylog) are reported but leave the other sinks working.
func (m *SlogManager) Setup(opts Options) error {
	_ = m.Close()

	lvl := ParseLevel(opts.Level)

	handlerOpts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	var handlers []slog.Handler
	if opts.Format == FormatConsole {
		handlers = append(handlers, NewZerologConsoleHandler(console, lvl, console == os.Stdout))
	} else {
		handlers = append(handlers, slog.NewTextHandler(console, handlerOpts))
	}

	if opts.File != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.File, handlerOpts))
	}

	var setupErr error
	if opts.GraylogAddress != "" {
		h, closer, err := NewGELFHandler(opts.GraylogAddress, handlerOpts)
		if err != nil {
			setupErr = err
		} else {
			handlers = append(handlers, h)
			m.closers = append(m.closers, closer)
		}
	}

	if opts.Provider != nil {
		handlers = append(handlers, otelslog.NewHandler("fieldgeo", otelslog.WithLoggerProvider(opts.Provider)))
	}

	m.logger = slog.New(NewContextHandler(NewMultiHandler(handlers...), opts.Context))
	m.logger.Debug("Logging initialized", "level", lvl.String(), "format", opts.Format)
	return setupErr
}

// Logger returns the configured slog.Logger.
func (m *SlogManager) Logger() *slog.Logger {
	if m.logger == nil {
		return slog.Default()
	}
	return m.logger
}

// Close releases network sinks.
func (m *SlogManager) Close() error {
	var errs []error
	for _, c := range m.closers {
		errs = append(errs, c.Close())
	}
	m.closers = nil
	return errors.Join(errs...)
}
