package app

import (
	"context"
	"testing"

	"campwise/internal/async"
	"campwise/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger("loud")
	assert.Error(t, err)
}

func TestNewContainer(t *testing.T) {
	cfg := config.Default()
	c, err := New(context.Background(), &cfg, async.Immediate{}, zap.NewNop())
	require.NoError(t, err)
	defer c.Close()

	profile, err := c.Profiles.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.Profile.Name, profile.Name)
	assert.NotNil(t, c.Handler())
}

func TestNewContainerBadDriver(t *testing.T) {
	cfg := config.Default()
	cfg.DB.Driver = "oracle"
	_, err := New(context.Background(), &cfg, async.Immediate{}, zap.NewNop())
	assert.Error(t, err)
}
