package logger

import (
	"go-outreach/internal/config"

	"go.uber.org/zap"
)

// NewLogger builds the application logger. Every entry also lands in the
// in-memory LogBuffer served by the debug endpoint.
func NewLogger(cfg *config.Config, buffer *LogBuffer) (*zap.Logger, error) {

	// 1. Setup Base Config (Console/JSON)
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Important: Enable Caller to get Function Name
	zapConfig.EncoderConfig.FunctionKey = "func"

	// Build the base logger
	baseLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	// 2. Wrap the Core
	// We replace the logger's core with our "Tee" core (sends to both console and buffer)
	finalCore := NewBufferCore(baseLogger.Core(), buffer)

	// 3. Return new Logger with AddCaller enabled
	return zap.New(finalCore, zap.AddCaller()), nil
}
