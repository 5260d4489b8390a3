package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init initializes the global logger with a console sink on stderr and,
// when a log directory is available, a rotating file sink. Every line
// carries a run-scoped id so interleaved cron runs stay distinguishable.
func Init(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal,
	}

	writers := []io.Writer{consoleWriter}

	if logDir := resolveLogDir(); logDir != "" {
		if err := os.MkdirAll(logDir, 0755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   filepath.Join(logDir, "gardener.log"),
				MaxSize:    16, // megabytes
				MaxBackups: 8,
				MaxAge:     90, // days
				Compress:   true,
			})
		}
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Str("run", uuid.NewString()[:8]).
		Logger()
}

// resolveLogDir picks the file-sink directory: GARDENER_LOGS wins, then the
// user cache dir. Empty means console-only logging.
func resolveLogDir() string {
	if dir := os.Getenv("GARDENER_LOGS"); dir != "" {
		return dir
	}
	if cache, err := os.UserCacheDir(); err == nil && cache != "" {
		return filepath.Join(cache, "gardener")
	}
	return ""
}
