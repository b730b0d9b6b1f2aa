package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Default(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0x8000, cfg.ROMLoadAddr)
	assert.Equal(t, 16, cfg.DisassemblyWindow)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 640, cfg.Monitor.Width)
}

func Test_Load_NoFile_ReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func Test_Load_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("SIX_LOG_LEVEL", "debug")
	t.Setenv("SIX_ROM_LOAD_ADDR", "32768")

	cfg, err := Load("")

	assert.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 32768, cfg.ROMLoadAddr)
}

func Test_Load_ConfigFileOverridesDefaults(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "sixctl-*.yaml")
	assert.NoError(t, err)
	_, err = f.WriteString("log_level: warn\ndisassembly_window: 32\n")
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	cfg, err := Load(f.Name())

	assert.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 32, cfg.DisassemblyWindow)
}
