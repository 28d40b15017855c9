// Package logger configures the global zerolog logger of the site.
package logger

import (
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelWriter splits log output by level:
// trace, warn and error (fatal, panic) get their own writer, debug and info share one.
type LevelWriter struct {
	io.Writer
	ErrorWriter io.Writer
	InfoWriter  io.Writer
	TraceWriter io.Writer
	WarnWriter  io.Writer
}

// WriteLevel routes p to the writer responsible for level l.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l == zerolog.Disabled {
		return 0, nil
	}

	w := lw.InfoWriter

	switch {
	case l == zerolog.TraceLevel:
		w = lw.TraceWriter
	case l == zerolog.WarnLevel:
		w = lw.WarnWriter
	case l > zerolog.WarnLevel:
		w = lw.ErrorWriter
	}

	if w == nil {
		return len(p), nil
	}

	return w.Write(p) //nolint:wrapcheck
}

// Writer returns the lumberjack logger of r inside dir.
func (r Rotation) Writer(dir string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path.Join(dir, r.Name),
		MaxSize:    r.MaxSize,
		MaxAge:     r.MaxAge,
		MaxBackups: r.MaxBackups,
	}
}

// Init replaces the global zerolog logger.
// Depending on cfg it writes to the console, to rolling files, both or nowhere.
func Init(cfg Log) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(ErrLogLevel, "%q: %v", cfg.LogLevel, err)
	}

	switch {
	case cfg.ServiceName == "":
		return ErrServiceNameIsEmpty
	case cfg.AppName == "":
		return ErrAppNameIsEmpty
	}

	withStack := level == zerolog.TraceLevel
	if withStack {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
	}

	zerolog.SetGlobalLevel(level)
	zerolog.ErrorHandler = writeFailed //nolint:reassign

	logCtx := zerolog.New(zerolog.MultiLevelWriter(outputs(cfg)...)).
		Hook(NewPrometheusHook(cfg.ServiceName)).
		With().Timestamp().Str("app", cfg.AppName)

	if cfg.ReportCaller {
		if withStack {
			logCtx = logCtx.Stack()
		} else {
			logCtx = logCtx.Caller()
		}
	}

	log.Logger = logCtx.Logger()

	return nil
}

func outputs(cfg Log) []io.Writer {
	var writers []io.Writer

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		if fw := newRollingLevelFile(cfg.File); fw != nil {
			writers = append(writers, fw)
		}
	}

	return writers
}

// newRollingLevelFile returns nil when the log directory can not be created.
func newRollingLevelFile(f LogFile) io.Writer {
	if err := os.MkdirAll(f.Path, 0o750); err != nil { //nolint:mnd
		log.Error().Err(err).Str("path", f.Path).Msg("can't create log directory")

		return nil
	}

	return &LevelWriter{
		ErrorWriter: f.Error.Writer(f.Path),
		InfoWriter:  f.Info.Writer(f.Path),
		TraceWriter: f.Trace.Writer(f.Path),
		WarnWriter:  f.Warn.Writer(f.Path),
	}
}

// NewConsoleWriter sends info and debug to stdout and everything else to stderr.
// Output is JSON lines unless Console.UseConsoleWriter is set.
func NewConsoleWriter(cfg Log) io.Writer {
	wrap := func(out io.Writer) io.Writer { return out }

	if cfg.Console.UseConsoleWriter {
		wrap = func(out io.Writer) io.Writer {
			return zerolog.ConsoleWriter{Out: out, TimeFormat: zerolog.TimeFieldFormat}
		}
	}

	return &LevelWriter{
		ErrorWriter: wrap(os.Stderr),
		InfoWriter:  wrap(os.Stdout),
		TraceWriter: wrap(os.Stderr),
		WarnWriter:  wrap(os.Stderr),
	}
}
