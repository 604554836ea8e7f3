package server

import (
	"context"
	"errors"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomonto/payments/internal/pkg/logger"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()

	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	require.NoError(t, err)
	return zapLogger
}

func TestShutdownManager_RunsAllCleanupsInOrder(t *testing.T) {
	sm := NewShutdownManager(testLogger(t))

	var order []string
	sm.Register(func(context.Context) error {
		order = append(order, "postgres")
		return nil
	})
	sm.Register(func(context.Context) error {
		order = append(order, "redis")
		return errors.New("connection already closed")
	})
	sm.Register(func(context.Context) error {
		order = append(order, "nsq")
		return nil
	})

	err := sm.Shutdown(context.Background())

	// A failing component must not stop the remaining cleanups
	assert.NoError(t, err)
	assert.Equal(t, []string{"postgres", "redis", "nsq"}, order)
}

func TestGracefulServer_ShutdownRunsRegisteredCleanups(t *testing.T) {
	zapLogger := testLogger(t)
	sm := NewShutdownManager(zapLogger)

	cleaned := false
	sm.Register(func(context.Context) error {
		cleaned = true
		return nil
	})

	srv := NewGracefulServer(echo.New(), zapLogger, 0, sm)

	require.NoError(t, srv.Shutdown())
	assert.True(t, cleaned)
}

func TestGracefulServer_ShutdownWithoutManager(t *testing.T) {
	srv := NewGracefulServer(echo.New(), testLogger(t), 0, nil)
	assert.NoError(t, srv.Shutdown())
}
