package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/sandfix/pkg/errors"
)

// EnvConfigFile overrides the user config file location.
const EnvConfigFile = "SANDFIX_CONFIG"

// Config holds sandbox defaults applied when a sandbox is created
// without explicit options.
type Config struct {
	// TempRoot is the directory under which owned sandboxes are
	// allocated. Empty means the system temp directory.
	TempRoot string `koanf:"temp_root"`

	// Ignore lists regular expressions filtered out of listings and
	// comparisons by default.
	Ignore []string `koanf:"ignore"`
}

// Load builds the effective configuration from three layers, each
// overriding the previous one: embedded defaults, the user config file
// (SANDFIX_CONFIG or $XDG_CONFIG_HOME/sandfix/sandfix.toml), and
// SANDFIX_* environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	// 2. User config file, when present
	if path := userConfigPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse,
					"failed to load config from %s", path)
			}
		}
	}

	// 3. Environment: SANDFIX_IGNORE, SANDFIX_TEMP_ROOT map onto
	// sandbox.ignore, sandbox.temp_root. Env values are plain strings;
	// the comma decode hook below turns SANDFIX_IGNORE into a list.
	// File- and default-sourced lists arrive as real TOML arrays and
	// pass through untouched, so patterns may contain commas.
	err := k.Load(env.Provider("SANDFIX_", ".", func(s string) string {
		return "sandbox." + strings.ToLower(strings.TrimPrefix(s, "SANDFIX_"))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("sandbox", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// userConfigPath returns the config file location, preferring the
// SANDFIX_CONFIG override.
func userConfigPath() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path
	}
	return filepath.Join(xdg.ConfigHome, "sandfix", "sandfix.toml")
}
