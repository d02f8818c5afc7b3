// Package testutil provides testing utilities for the arrays module
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ajitpratap0/arrays/pkg/errors"
	"github.com/ajitpratap0/arrays/pkg/logger"
)

// TestLogger creates a test logger that writes to the test output.
// The logger is automatically cleaned up when the test completes.
func TestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}

// ObserveLogs installs an in-memory logger as the global logger for the
// duration of the test and returns the captured entries.
func ObserveLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Get()
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(prev) })
	return logs
}

// TestContext creates a test context with a 30-second timeout.
// The caller must call the returned cancel function to avoid leaks.
func TestContext(_ *testing.T) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// RequireErrorType fails the test unless err is a structured error of the
// given type.
func RequireErrorType(t testing.TB, err error, errType errors.ErrorType) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, errors.IsType(err, errType), "expected %s error, got %v", errType, err)
}

// RequireDetail fails the test unless err carries detail key with value want.
func RequireDetail(t testing.TB, err error, key string, want interface{}) {
	t.Helper()

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	got, ok := e.Detail(key)
	require.Truef(t, ok, "error %v has no %q detail", err, key)
	require.EqualValues(t, want, got)
}
