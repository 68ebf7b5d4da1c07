package utils

import (
	"log"

	"fitbook/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger, built once from the loaded config.
var Logger *zap.Logger

// InitializeLogger builds the logger: JSON at info level in production,
// colored console output at debug level otherwise. LOG_LEVEL overrides the
// level in either mode.
func InitializeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	level := zapcore.DebugLevel
	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
		level = zapcore.InfoLevel
	}
	if config.AppConfig.LogLevel != "" {
		parsed, err := zapcore.ParseLevel(config.AppConfig.LogLevel)
		if err != nil {
			log.Fatalf("invalid LOG_LEVEL %q: %v", config.AppConfig.LogLevel, err)
		}
		level = parsed
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
}

// GetLogger returns the global logger, initializing it on first use.
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
