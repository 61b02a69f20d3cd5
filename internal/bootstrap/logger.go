package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/osse101/TextRealm_Go/internal/config"
	"github.com/osse101/TextRealm_Go/internal/logger"
)

// SetupLogger installs the default logger writing to stdout and a rotating
// file under cfg.LogDir. The returned closer flushes the file.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	return setupLogger(cfg, os.Stdout)
}

func setupLogger(cfg *config.Config, console io.Writer) (io.Closer, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, LogFileName),
		MaxSize:    LogFileMaxSizeMB,
		MaxBackups: LogFileMaxBackups,
		MaxAge:     LogFileMaxAgeDays,
	}

	addSource := cfg.Environment == logger.EnvironmentDev
	lcfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, cfg.Version, cfg.Environment, addSource)
	logger.InitLoggerWithWriter(lcfg, io.MultiWriter(console, file))

	slog.Info(LogMsgLoggingInitialized, "level", lcfg.LogLevel(), "file", file.Filename)
	slog.Info(LogMsgStartingServer,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_driver", cfg.DBDriver,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"timezone", cfg.Timezone,
		"port", cfg.Port)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}

	return file, nil
}
