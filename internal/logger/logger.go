// Package logger provides the process-wide structured logger. It keeps the
// map-based field form at call sites and emits JSON lines via slog.
package logger

import (
	"log/slog"
	"os"
)

var log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init() {
	log = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)
	log.Info("logger initialized")
}

func fields(m map[string]any) []any {
	args := make([]any, 0, len(m)*2)
	for k, v := range m {
		args = append(args, k, v)
	}
	return args
}

func Info(msg string, f map[string]any) {
	log.Info(msg, fields(f)...)
}

func Warn(msg string, f map[string]any) {
	log.Warn(msg, fields(f)...)
}

func Error(msg string, f map[string]any) {
	log.Error(msg, fields(f)...)
}

func Fatal(msg string, f map[string]any) {
	log.Error(msg, fields(f)...)
	os.Exit(1)
}
