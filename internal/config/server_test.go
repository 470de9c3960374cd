package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerConfig_DefaultValues(t *testing.T) {
	// Save original values
	originalPort := os.Getenv("PORT")
	originalRead := os.Getenv("SERVER_READ_TIMEOUT")
	defer func() {
		if originalPort != "" {
			os.Setenv("PORT", originalPort)
		} else {
			os.Unsetenv("PORT")
		}
		if originalRead != "" {
			os.Setenv("SERVER_READ_TIMEOUT", originalRead)
		} else {
			os.Unsetenv("SERVER_READ_TIMEOUT")
		}
	}()

	os.Unsetenv("PORT")
	os.Unsetenv("SERVER_READ_TIMEOUT")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
}

func TestNewServerConfig_FromEnvironment(t *testing.T) {
	// Save original values
	originalPort := os.Getenv("PORT")
	originalRead := os.Getenv("SERVER_READ_TIMEOUT")
	defer func() {
		if originalPort != "" {
			os.Setenv("PORT", originalPort)
		} else {
			os.Unsetenv("PORT")
		}
		if originalRead != "" {
			os.Setenv("SERVER_READ_TIMEOUT", originalRead)
		} else {
			os.Unsetenv("SERVER_READ_TIMEOUT")
		}
	}()

	os.Setenv("PORT", "9000")
	os.Setenv("SERVER_READ_TIMEOUT", "15s")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
}

func TestNewServerConfig_UnparseableEnvFallsBack(t *testing.T) {
	originalPort := os.Getenv("PORT")
	defer func() {
		if originalPort != "" {
			os.Setenv("PORT", originalPort)
		} else {
			os.Unsetenv("PORT")
		}
	}()

	os.Setenv("PORT", "not-a-number")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestServerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  ServerConfig
		wantErr bool
	}{
		{
			name: "valid config",
			config: ServerConfig{
				Port:         8080,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			},
		},
		{
			name: "port zero rejected",
			config: ServerConfig{
				Port:         0,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			},
			wantErr: true,
		},
		{
			name: "port above range rejected",
			config: ServerConfig{
				Port:         70000,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			},
			wantErr: true,
		},
		{
			name: "zero timeout rejected",
			config: ServerConfig{
				Port:         8080,
				ReadTimeout:  0,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			},
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
