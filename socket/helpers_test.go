package socket

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func zapTestLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t)
}
