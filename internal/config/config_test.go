package config

import (
	"testing"
	"time"

	"github.com/minaorangina/klondike/game"
	utils "github.com/minaorangina/klondike/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, Default(), cfg)
		assert.Equal(t, ":8000", cfg.Addr())
		assert.Equal(t, game.Basic, cfg.GameVariant())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("KLONDIKE_HOST", "127.0.0.1")
		t.Setenv("KLONDIKE_PORT", "9090")
		t.Setenv("KLONDIKE_VARIANT", "Whitehead")
		t.Setenv("KLONDIKE_CASCADES", "5")
		t.Setenv("KLONDIKE_DRAW", "1")
		t.Setenv("KLONDIKE_SHUFFLE", "false")
		t.Setenv("KLONDIKE_DEBUG", "true")
		t.Setenv("KLONDIKE_ALLOWED_ORIGINS", "http://a.example;http://b.example")
		t.Setenv("KLONDIKE_SHUTDOWN_TIMEOUT", "3s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
		assert.Equal(t, game.Whitehead, cfg.GameVariant())
		assert.Equal(t, 5, cfg.Cascades)
		assert.Equal(t, 1, cfg.Draw)
		assert.False(t, cfg.Shuffle)
		assert.True(t, cfg.Debug)
		assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	})

	invalid := []struct {
		name, key, value string
	}{
		{"unknown variant", "KLONDIKE_VARIANT", "spider"},
		{"zero cascades", "KLONDIKE_CASCADES", "0"},
		{"negative draw", "KLONDIKE_DRAW", "-3"},
		{"port out of range", "KLONDIKE_PORT", "70000"},
		{"not a number", "KLONDIKE_PORT", "eighty"},
		{"not a bool", "KLONDIKE_SHUFFLE", "nope"},
		{"not a duration", "KLONDIKE_SHUTDOWN_TIMEOUT", "soon"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			utils.AssertErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
