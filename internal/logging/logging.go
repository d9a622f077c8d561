// Package logging builds the zap logger and adapts it to the assembly
// observer so every screen build shows up in the log.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jask/discovery/internal/config"
)

// New creates the application logger. Output goes to cfg.Path; stdout is never
// used because the console owns the terminal.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info", "":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, fmt.Errorf("unknown log level %q", cfg.Level)
	}

	if cfg.Path == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	zapConfig.OutputPaths = []string{cfg.Path}
	zapConfig.ErrorOutputPaths = []string{cfg.Path}
	zapConfig.EncoderConfig.TimeKey = "ts"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapConfig.Build()
}

// Observer logs builds at debug level and build failures at error level.
type Observer struct {
	log *zap.Logger
}

func NewObserver(log *zap.Logger) *Observer {
	return &Observer{log: log.Named("assembly")}
}

func (o *Observer) Built(component string, elapsed time.Duration) {
	o.log.Debug("built", zap.String("component", component), zap.Duration("elapsed", elapsed))
}

func (o *Observer) Failed(component string, err error) {
	o.log.Error("build failed", zap.String("component", component), zap.Error(err))
}
