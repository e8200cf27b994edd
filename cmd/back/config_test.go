package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
driver: memory
host: ":8081"
timeout: 2s
faucet: true
rent:
  lamports_per_byte_year: 10
  exemption_threshold: 1
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Driver)
	assert.Equal(t, ":8081", cfg.Host)
	assert.Equal(t, ":9000", cfg.HostGRPC)
	assert.Equal(t, 2*time.Second, cfg.TimeOut)
	assert.Equal(t, 5*time.Minute, cfg.TokenMaxTTL)
	assert.True(t, cfg.Faucet)
	assert.Equal(t, uint64(10), cfg.Rent.LamportsPerByteYear)
	assert.Equal(t, uint64(1504*10), cfg.Rent.MinimumBalance(1376))

	key, err := cfg.ProgramKey()
	require.NoError(t, err)
	assert.Equal(t, defaultProgramID, key.String())
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"postgres without dsn": "driver: postgres\n",
		"unknown driver":       "driver: mysql\n",
		"bad program id":       "driver: memory\nprogram_id: nope\n",
		"zero ttl":             "driver: memory\ntoken_max_ttl: 0s\n",
		"not yaml":             "driver: [",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
