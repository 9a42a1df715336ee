package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/strnum/anagram"
	"github.com/katalvlaran/strnum/internal/config"
	"github.com/katalvlaran/strnum/lcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_MissingFileUsesDefaults returns DefaultConfig for an absent file.
func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
	assert.Equal(t, lcp.Vertical, cfg.Strategy())
	assert.Empty(t, cfg.AnagramOptions())
}

// TestLoad_File reads every documented key.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strnum.yaml")
	body := `
permute:
  max_length: 6
anagram:
  case_fold: true
  strip_whitespace: true
  nfc: true
lcp:
  strategy: sorted
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Permute.MaxLength)
	assert.Equal(t, lcp.Sorted, cfg.Strategy())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	ok, err := anagram.IsAnagram("Dormitory", "dirty room", cfg.AnagramOptions()...)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestLoad_EnvOverrides applies environment variables over the file.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvStrategy, "binary")
	t.Setenv(config.EnvMaxLength, "4")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, lcp.BinarySearch, cfg.Strategy())
	assert.Equal(t, 4, cfg.Permute.MaxLength)

	t.Setenv(config.EnvMaxLength, "many")
	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// TestLoad_Invalid rejects bad values and malformed YAML.
func TestLoad_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"zero max length": "permute:\n  max_length: 0\n",
		"bad strategy":    "lcp:\n  strategy: trie\n",
		"bad level":       "log:\n  level: loud\n",
		"bad format":      "log:\n  format: xml\n",
		"malformed":       "permute: [",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "strnum.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := config.Load(path)
			assert.Error(t, err)
		})
	}
}

// TestResolvePath prefers the flag, then the environment, then the default.
func TestResolvePath(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	assert.Equal(t, config.DefaultPath, config.ResolvePath(""))

	t.Setenv(config.EnvConfigPath, "/etc/strnum.yaml")
	assert.Equal(t, "/etc/strnum.yaml", config.ResolvePath(""))
	assert.Equal(t, "x.yaml", config.ResolvePath("x.yaml"))
}

// TestSave_RoundTrip writes a config and loads it back.
func TestSave_RoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Anagram.CaseFold = true
	cfg.LCP.Strategy = "divide"

	path := filepath.Join(t.TempDir(), "nested", "strnum.yaml")
	require.NoError(t, cfg.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
