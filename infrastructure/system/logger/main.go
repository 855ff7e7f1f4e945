package logger

import (
	"github.com/rotisserie/eris"
	"github.com/t-kuni/aspa/domain/repository/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger writing to stderr so it never mixes with command output.
func NewLogger(cfg config.Log) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
	}

	level := zapcore.WarnLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, eris.Wrapf(err, "invalid log level: %s", cfg.Level)
		}
		level = parsed
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, eris.Wrap(err, "failed to build logger")
	}
	return logger, nil
}
