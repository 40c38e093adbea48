// Package config resolves the startup configuration from flags, the
// environment, a .env file in the working directory and an optional
// config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configDirName = ".config"
	appDirName    = "rostui"
	envFileName   = ".env"

	// MaxFetchLimit is the largest page the message store serves in one request
	MaxFetchLimit = 100
)

var (
	// ErrMissingToken is returned when no bot token is configured.
	ErrMissingToken = errors.New("missing bot token: pass --token or set TOKEN")
	// ErrMissingGuild is returned when no guild id is configured.
	ErrMissingGuild = errors.New("missing guild id: pass --guild or set GUILD")
)

// Config holds the startup configuration.
type Config struct {
	Token      string
	Guild      string
	LogFile    string
	FetchLimit int
	Debug      bool
	Theme      string
}

// Flags registers the command line flags on fs.
func Flags(fs *pflag.FlagSet) {
	fs.String("token", "", "bot token (env TOKEN or ROSTUI_TOKEN)")
	fs.String("guild", "", "guild id to browse (env GUILD or ROSTUI_GUILD)")
	fs.String("log-file", "", "write JSON logs to this file; logging is off when empty")
	fs.Int("fetch-limit", MaxFetchLimit, "recent messages fetched per topic")
	fs.Bool("debug", false, "log at debug level")
	fs.String("theme", "", "color theme")
}

// Load resolves the configuration. Flags must have been registered with
// Flags. Missing values are reported by Validate, not Load.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("fetch-limit", MaxFetchLimit)

	if path := os.Getenv("ROSTUI_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, configDirName, appDirName))
		}
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if err := mergeDotEnv(v, envFileName); err != nil {
		return Config{}, err
	}

	v.SetEnvPrefix("ROSTUI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"token", "guild"} {
		if err := v.BindEnv(key, "ROSTUI_"+strings.ToUpper(key), strings.ToUpper(key)); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	return Config{
		Token:      strings.TrimSpace(v.GetString("token")),
		Guild:      strings.TrimSpace(v.GetString("guild")),
		LogFile:    v.GetString("log-file"),
		FetchLimit: v.GetInt("fetch-limit"),
		Debug:      v.GetBool("debug"),
		Theme:      v.GetString("theme"),
	}, nil
}

// mergeDotEnv layers the TOKEN and GUILD entries of a dotenv file over the
// config file. A missing file is not an error.
func mergeDotEnv(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	env := viper.New()
	env.SetConfigFile(path)
	env.SetConfigType("env")
	if err := env.ReadInConfig(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	values := make(map[string]any)
	for _, key := range []string{"token", "guild"} {
		if env.IsSet(key) {
			values[key] = env.GetString(key)
		}
	}
	if err := v.MergeConfigMap(values); err != nil {
		return fmt.Errorf("merge %s: %w", path, err)
	}
	return nil
}

// Validate reports the first configuration problem that prevents startup.
func (c Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.Guild == "" {
		return ErrMissingGuild
	}
	if c.FetchLimit < 1 || c.FetchLimit > MaxFetchLimit {
		return fmt.Errorf("fetch limit %d out of range 1-%d", c.FetchLimit, MaxFetchLimit)
	}
	return nil
}
