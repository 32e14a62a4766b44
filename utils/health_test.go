package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestHealthy(t *testing.T) {
	up, down := true, false

	assert.True(t, HealthStatus{Mongo: true}.Healthy())
	assert.True(t, HealthStatus{Mongo: true, Redis: &up}.Healthy())
	assert.False(t, HealthStatus{Mongo: true, Redis: &down}.Healthy())
	assert.False(t, HealthStatus{Mongo: false}.Healthy())
}

func TestCheckHealthWithoutClients(t *testing.T) {
	status := CheckHealth(context.Background(), nil, nil)
	assert.False(t, status.Mongo)
	assert.Nil(t, status.Redis)
	assert.False(t, status.CheckedAt.IsZero())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.DebugLevel, parseLevel(""), "development default")
	assert.Equal(t, zapcore.DebugLevel, parseLevel("loud"))
}
