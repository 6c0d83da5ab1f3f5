package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gridiron-sim/fieldgeo/internal/config"
	"github.com/gridiron-sim/fieldgeo/internal/locator"
	"github.com/gridiron-sim/fieldgeo/internal/logging"
	intOtel "github.com/gridiron-sim/fieldgeo/internal/otel"
	"github.com/gridiron-sim/fieldgeo/pkg/field"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// BuildVersion can be set at build time via ldflags
var (
	BuildVersion = "0.0.1"
	AppName      = "fieldgeo"
)

const usage = `usage: fieldgeo [--config dir] [--log-level level] <command> [args]

commands:
  info                          print the configured field
  locate x,y [x,y ...]          report zone, position and distances
  validate x,y                  check a coordinate against the field
  transform op x,y              apply mirrorx|mirrory|rotate180|clamp|spot|feet|meters
  position yardLine x           coordinate of a yard line
  path '[[x,y],...]'            summarize a path
  georef lon lat bearing [x,y]  place the field on the globe

Coordinates are x,y in yards. Wrap negative values in parentheses, (-1,5),
or put them after -- so they are not read as flags.
`

// errUsage marks invocation mistakes, reported with the usage text.
var errUsage = errors.New("invalid usage")

type app struct {
	out     io.Writer
	logger  *slog.Logger
	field   *field.Field
	locator *locator.Service
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	configDir := fs.StringP("config", "c", ".", "directory containing "+config.FileName)
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-format", "text", "console layout: text or console")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	configErr := config.Load(*configDir)
	_ = viper.BindPFlag("logLevel", fs.Lookup("log-level"))
	_ = viper.BindPFlag("logFormat", fs.Lookup("log-format"))

	ctx := context.Background()
	sessionStart := time.Now()
	logCfg := config.GetLoggingConfig()
	otelCfg := config.GetOTelConfig()

	var logFile *os.File
	if logCfg.Dir != "" {
		if err := os.MkdirAll(logCfg.Dir, 0755); err != nil {
			fmt.Fprintf(stderr, "failed to create logs dir: %v\n", err)
			return 1
		}
		var err error
		logFile, err = os.OpenFile(logging.LogFilePath(logCfg.Dir, AppName, sessionStart), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(stderr, "failed to open log file: %v\n", err)
			return 1
		}
		defer logFile.Close()
	}

	otelProvider, err := intOtel.New(ctx, intOtel.Config{
		Enabled:      otelCfg.Enabled,
		ServiceName:  otelCfg.ServiceName,
		BatchTimeout: otelCfg.BatchTimeout,
		LogWriter:    writerOrNil(logFile),
		Endpoint:     otelCfg.Endpoint,
		Insecure:     otelCfg.Insecure,
	})
	if err != nil {
		fmt.Fprintf(stderr, "failed to set up OTel: %v\n", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = otelProvider.Shutdown(shutdownCtx)
	}()

	f, fieldErr := config.GetFieldConfig().Build()
	if fieldErr != nil {
		f = field.New()
	}

	graylogAddr := ""
	if logCfg.GraylogEnabled {
		graylogAddr = logCfg.GraylogAddress
	}
	slogManager := logging.NewSlogManager()
	defer slogManager.Close()
	if err := slogManager.Setup(logging.Options{
		Level:          logCfg.Level,
		Format:         logCfg.Format,
		Console:        stderr,
		File:           writerOrNil(logFile),
		GraylogAddress: graylogAddr,
		Provider:       otelProvider.LoggerProvider(),
		Context: func(context.Context) []slog.Attr {
			return []slog.Attr{slog.String("field", f.Name)}
		},
	}); err != nil {
		slogManager.Logger().Warn("Graylog sink disabled", "error", err)
	}
	logger := slogManager.Logger()

	if configErr != nil {
		logger.Warn("Failed to load config, using defaults!", "error", configErr)
	}
	if fieldErr != nil {
		logger.Warn("Invalid field config, using regulation field", "error", fieldErr)
	}
	logger.Debug("Starting up", "version", BuildVersion, "field", f.String(), "otel", otelProvider.Enabled())

	loc, err := locator.New(locator.Dependencies{
		Field:  f,
		Logger: logger,
		Meter:  otelProvider.Meter(locator.InstrumentationName),
	})
	if err != nil {
		logger.Error("Failed to create locator", "error", err)
		return 1
	}

	a := &app{out: stdout, logger: logger, field: f, locator: loc}
	code := 0
	if err := a.dispatch(ctx, fs.Arg(0), fs.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "%v\n\n%s", err, usage)
			code = 2
		} else {
			fmt.Fprintf(stderr, "%v\n", err)
			code = 1
		}
	}

	// exporter failures are still reportable through the console sink here
	if err := otelProvider.Flush(ctx); err != nil {
		logger.Warn("Failed to flush OTel logs", "error", err)
	}
	return code
}

// writerOrNil avoids handing a typed nil *os.File to an io.Writer field.
func writerOrNil(f *os.File) io.Writer {
	if f == nil {
		return nil
	}
	return f
}
