package logger

import (
	"Daybook/internal/api/config"
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer

func InitLogger() {
	cfg := config.Cfg.Log

	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	var finalHandler log.Handler = hStdout
	LogWriter = os.Stdout

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			hFile := log.NewJSONHandler(f, &log.HandlerOptions{Level: log.LevelInfo})
			finalHandler = &TeeHandler{
				handlers: []log.Handler{hStdout, hFile},
			}
			LogWriter = io.MultiWriter(os.Stdout, f)
		} else {
			log.Warn("Failed to open log file, logging to stdout only", "err", err)
		}
	}

	logger := log.New(&ContextHandler{finalHandler})
	log.SetDefault(logger)
}
