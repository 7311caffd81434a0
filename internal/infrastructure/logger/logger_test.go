package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/infrastructure/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
	}{
		{"json format", config.LogConfig{Level: "info", Format: "json"}},
		{"console format", config.LogConfig{Level: "debug", Format: "console"}},
		{"invalid level defaults to info", config.LogConfig{Level: "invalid", Format: "json"}},
		{"error level", config.LogConfig{Level: "error", Format: "json"}},
		{"warn level", config.LogConfig{Level: "warn", Format: "console"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(&tt.cfg)

			assert.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}
