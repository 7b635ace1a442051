// Package config loads frece's configuration.
//
// Values are layered, later layers winning:
//
//  1. embedded/defaults.toml, compiled into the binary
//  2. the user file, $XDG_CONFIG_HOME/frece/config.toml or --config
//  3. environment variables FRECE_<SECTION>_<KEY>
//
// Loading uses github.com/knadh/koanf/v2 and decodes with
// github.com/go-viper/mapstructure/v2; Generate writes the effective
// configuration back out with github.com/pelletier/go-toml/v2.
package config
