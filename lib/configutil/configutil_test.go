package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl string `json:"baseUrl"`
	Port    int    `json:"port"`
}

func writeFile(t *testing.T, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")
	writeFile(t, name, `{baseUrl: "https://example.com", port: 8000}`)

	{
		cfg, err := ReadConfig[testConfig](name)
		require.NoError(t, err)
		require.Equal(t, "https://example.com", cfg.BaseUrl)
		require.Equal(t, 8000, cfg.Port)
	}

	writeFile(t, filepath.Join(dir, "config.local.json5"), `{port: 9000}`)
	{
		cfg, err := ReadConfig[testConfig](name)
		require.NoError(t, err)
		// local layers override field by field
		require.Equal(t, "https://example.com", cfg.BaseUrl)
		require.Equal(t, 9000, cfg.Port)
	}

	{
		_, err := ReadConfig[testConfig](filepath.Join(dir, "missing.json5"))
		require.ErrorIs(t, err, os.ErrNotExist)
	}
}
