// Package logging installs the process-wide hlog logger, backed by zerolog.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzzerolog "github.com/hertz-contrib/logger/zerolog"
	"github.com/rs/zerolog"

	"cadastro-pessoas/pkg/common/config"
)

// Setup replaces the default hlog logger. Call once at boot.
func Setup(cfg config.LogConfig) {
	hlog.SetLogger(New(cfg, os.Stdout))
}

// New builds a logger writing to out. Format "console" is human readable,
// anything else is one JSON object per line.
func New(cfg config.LogConfig, out io.Writer) hlog.FullLogger {
	w := out
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return hertzzerolog.New(
		hertzzerolog.WithOutput(w),
		hertzzerolog.WithLevel(ParseLevel(cfg.Level)),
		hertzzerolog.WithTimestamp(),
	)
}

func ParseLevel(level string) hlog.Level {
	switch level {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "notice":
		return hlog.LevelNotice
	case "warn":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	case "fatal":
		return hlog.LevelFatal
	default:
		return hlog.LevelInfo
	}
}
