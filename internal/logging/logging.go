// Package logging builds the zap logger shared by the dock components.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a sugared logger. debug selects zap's development
// config (console encoding, debug level); otherwise production JSON at info.
func NewLogger(debug bool) *zap.SugaredLogger {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar().Named("dockstar")
}
