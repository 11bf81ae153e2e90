//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  &Config{Remote: "origin"},
			wantErr: false,
		},
		{
			name:    "custom remote",
			config:  &Config{Remote: "upstream"},
			wantErr: false,
		},
		{
			name:    "empty remote",
			config:  &Config{Remote: ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("remote: upstream\n"), 0644))

	manager := NewManager()
	cfg, err := manager.LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, "upstream", cfg.Remote)
}

func TestLoadConfig_NotFound(t *testing.T) {
	manager := NewManager()
	_, err := manager.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("remote: [unclosed\n"), 0644))

	manager := NewManager()
	_, err := manager.LoadConfig(configPath)
	assert.Error(t, err)
}

func TestLoadConfigWithFallback(t *testing.T) {
	// Missing file falls back to defaults
	cfg := LoadConfigWithFallback(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, DefaultRemote, cfg.Remote)
}

func TestDefaultConfig(t *testing.T) {
	cfg := NewManager().DefaultConfig()
	assert.Equal(t, "origin", cfg.Remote)
}
