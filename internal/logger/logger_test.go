package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yanizio/apidemo/internal/config"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "verbose"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}

func TestNewWritesRotatingFile(t *testing.T) {
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })
	dir := t.TempDir()

	log, err := New(config.LogConfig{Level: "info", Dir: dir, Environment: "test"}, false)
	require.NoError(t, err)

	log.Infow("hello", "k", "v")
	log.Debugw("filtered out")
	_ = log.Sync()

	raw, err := os.ReadFile(filepath.Join(dir, time.Now().Format("2006-01-02")+".log"))
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"service":"apidemo"`)
	assert.Contains(t, out, `"environment":"test"`)
	assert.NotContains(t, out, "filtered out")

	assert.Same(t, log.Desugar(), zap.L(), "logger is installed globally")
}

func TestBuildAddsServiceFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := build(core, "production")

	log.Warnw("careful", "count", 2)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, ServiceName, ctx["service"])
	assert.Equal(t, "production", ctx["environment"])
	assert.Equal(t, int64(2), ctx["count"])
}
