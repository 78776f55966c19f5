package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/lmittmann/tint"
)

func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    color.NoColor,
	})).With("run", uuid.NewString()[:8])

	slog.SetDefault(logger)
	return logger
}
