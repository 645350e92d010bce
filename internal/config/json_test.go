package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJson_OverlaysValues(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempConfig(t, `{
		"secret_key": "json-secret",
		"access_token_validity_duration": "15m",
		"refresh_token_validity_duration": "48h"
	}`)
	os.Args = []string{"testbin", "-c", path}

	config := &Config{}
	config.LoadDefaults()
	parseJson(config)

	assert.Equal(t, "json-secret", config.SecretKey)
	assert.Equal(t, 15*time.Minute, config.AccessTokenValidityDuration)
	assert.Equal(t, 48*time.Hour, config.RefreshTokenValidityDuration)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempConfig(t, `{"secret_key": "only-secret"}`)
	os.Args = []string{"testbin", "-c", path}

	config := &Config{}
	config.LoadDefaults()
	parseJson(config)

	assert.Equal(t, "only-secret", config.SecretKey)
	assert.Equal(t, 1*time.Hour, config.AccessTokenValidityDuration)
	assert.Equal(t, 7*24*time.Hour, config.RefreshTokenValidityDuration)
}

func TestParseJson_NoFileNamed(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	config := &Config{}
	config.LoadDefaults()
	parseJson(config)

	assert.Equal(t, "dev-secret-key", config.SecretKey)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempConfig(t, `{not json`)
	os.Args = []string{"testbin", "-c", path}

	config := &Config{}
	config.LoadDefaults()

	assert.Panics(t, func() { parseJson(config) })
}
