package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit_ReplacesGlobals(t *testing.T) {
	before := zap.L()

	flush, err := Init(config.Logger{Mode: "production"})
	require.NoError(t, err)

	assert.NotSame(t, before, zap.L())
	flush()
	assert.Same(t, before, zap.L())
}

func TestInit_WritesRotatedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.log")

	flush, err := Init(config.Logger{Mode: "development", FileEnable: true, Filename: file})
	require.NoError(t, err)
	zap.S().Infow("catalog ready", "products", 3)
	flush()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"catalog ready"`)
	assert.Contains(t, string(data), `"products":3`)
}
