package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty working directory and home with no
// configuration in the environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{"TOKEN", "GUILD", "ROSTUI_TOKEN", "ROSTUI_GUILD", "ROSTUI_CONFIG", "ROSTUI_DEBUG", "ROSTUI_FETCH_LIMIT"} {
		t.Setenv(k, "")
	}
	return dir
}

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("rostui", pflag.ContinueOnError)
	Flags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(flags(t))
	require.NoError(t, err)

	assert.Equal(t, Config{FetchLimit: MaxFetchLimit}, cfg)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingToken)
}

func TestLoadFlags(t *testing.T) {
	isolate(t)

	cfg, err := Load(flags(t, "--token", "abc", "--guild", "42", "--fetch-limit", "50", "--debug", "--log-file", "/tmp/x.log"))
	require.NoError(t, err)

	assert.Equal(t, "abc", cfg.Token)
	assert.Equal(t, "42", cfg.Guild)
	assert.Equal(t, 50, cfg.FetchLimit)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/x.log", cfg.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TOKEN", "plain")
	t.Setenv("ROSTUI_GUILD", "7")

	cfg, err := Load(flags(t))
	require.NoError(t, err)

	assert.Equal(t, "plain", cfg.Token)
	assert.Equal(t, "7", cfg.Guild)
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TOKEN=from-dotenv\nGUILD=1\n"), 0o600))
	t.Setenv("TOKEN", "from-env")

	cfg, err := Load(flags(t))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Token)
	assert.Equal(t, "1", cfg.Guild)

	cfg, err = Load(flags(t, "--token", "from-flag"))
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Token)
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, ".config", "rostui", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("guild = \"99\"\ntheme = \"monochrome\"\n"), 0o600))

	cfg, err := Load(flags(t))
	require.NoError(t, err)

	assert.Equal(t, "99", cfg.Guild)
	assert.Equal(t, "monochrome", cfg.Theme)
}

func TestLoadBadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("guild = "), 0o600))
	t.Setenv("ROSTUI_CONFIG", path)

	_, err := Load(flags(t))
	assert.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"missing token", Config{Guild: "1", FetchLimit: 10}, ErrMissingToken},
		{"missing guild", Config{Token: "t", FetchLimit: 10}, ErrMissingGuild},
		{"ok", Config{Token: "t", Guild: "1", FetchLimit: 10}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("fetch limit out of range", func(t *testing.T) {
		err := Config{Token: "t", Guild: "1", FetchLimit: 500}.Validate()
		assert.ErrorContains(t, err, "out of range")
	})
}
