package config

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/frece/pkg/errors"
	"github.com/arthur-debert/frece/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FRECE_"

// LoadOptions selects the user configuration file.
type LoadOptions struct {
	// Path is an explicit file; it must exist. Empty means DefaultPath,
	// which may be absent.
	Path string
	// NoUserFile loads no file at all, even an explicit Path.
	NoUserFile bool
	// NoEnv ignores FRECE_* variables.
	NoEnv bool
}

// DefaultPath is the user configuration file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "frece", "config.toml")
}

// Default returns the embedded defaults alone.
func Default() *Config {
	cfg, err := Load(LoadOptions{NoUserFile: true, NoEnv: true})
	if err != nil {
		// The embedded file is covered by tests; a failure here is a build defect.
		panic(err)
	}
	return cfg
}

// Load builds the effective configuration.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	path, explicit := opts.Path, opts.Path != ""
	if !explicit {
		path = DefaultPath()
	}
	if !opts.NoUserFile {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
					WithDetail("path", path)
			}
			warnUnknownKeys(path)
			logger.Debug().Str("path", path).Msg("Loaded user configuration")
		} else if explicit {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", path).
				WithDetail("path", path)
		}
	}

	// 3. Environment
	if !opts.NoEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 5. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps FRECE_RECOVERY_ON_COLLISION to recovery.on_collision: the
// first underscore separates the section from the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// warnUnknownKeys logs keys in the user file that no setting reads, which
// are usually typos.
func warnUnknownKeys(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	dec := gotoml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var probe Config
	err = dec.Decode(&probe)

	var strict *gotoml.StrictMissingError
	if stderrors.As(err, &strict) {
		logger := logging.GetLogger("config")
		logger.Warn().
			Str("path", path).
			Str("details", strict.String()).
			Msg("Configuration file contains unknown keys")
	}
}
