// Package config loads cmd/sixctl and cmd/sixmon settings: viper merges a
// YAML default document, an optional config file, and CLI-prefixed
// environment variables, in that order. The core packages (cpu, memory,
// rom) never depend on this package — they take plain Go values.
package config

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvVarPrefix is the prefix for environment-variable overrides, e.g.
// SIX_LOG_LEVEL, SIX_DISASSEMBLY_WINDOW.
const EnvVarPrefix = "SIX"

const (
	defaultROMLoadAddr    = 0x8000
	defaultDisasmWindow   = 16
	defaultLogLevel       = "info"
	defaultMonitorWidth   = 640
	defaultMonitorHeight  = 480
)

var replacer = strings.NewReplacer(".", "_")

// Config is the merged configuration for the sixctl/sixmon binaries.
type Config struct {
	ROMLoadAddr      int    `mapstructure:"rom_load_addr"`
	DisassemblyWindow int   `mapstructure:"disassembly_window"`
	LogLevel         string `mapstructure:"log_level"`
	Monitor          *Monitor `mapstructure:"monitor"`
}

// Monitor holds cmd/sixmon's window geometry.
type Monitor struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Default returns the built-in configuration, before any file or
// environment overrides are merged in.
func Default() *Config {
	return &Config{
		ROMLoadAddr:       defaultROMLoadAddr,
		DisassemblyWindow: defaultDisasmWindow,
		LogLevel:          defaultLogLevel,
		Monitor: &Monitor{
			Width:  defaultMonitorWidth,
			Height: defaultMonitorHeight,
		},
	}
}

// Load merges Default() with cfgFile (if it exists) and then with
// SIX_-prefixed environment variables, environment taking precedence.
// cfgFile may be empty, in which case only defaults and the environment
// apply.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	cfg := Default()

	defaultsYAML, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal defaults: %w", err)
	}
	if err := v.MergeConfig(bytes.NewReader(defaultsYAML)); err != nil {
		return nil, fmt.Errorf("config: merge defaults: %w", err)
	}

	if cfgFile != "" {
		if fi, statErr := os.Stat(cfgFile); statErr == nil && !fi.IsDir() {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.MergeInConfig(); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", cfgFile, err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvVarPrefix)
	v.SetEnvKeyReplacer(replacer)
	bindEnvVars(v, reflect.TypeOf(*cfg), "")

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// bindEnvVars walks cfg's mapstructure tags so viper picks up
// SIX_-prefixed environment variables even when no config file sets the
// corresponding key (a Viper quirk: AutomaticEnv alone only sees keys
// already known to Viper).
func bindEnvVars(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}
		key := prefix + tag

		switch {
		case field.Type.Kind() == reflect.Struct:
			bindEnvVars(v, field.Type, key+".")
		case field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct:
			bindEnvVars(v, field.Type.Elem(), key+".")
		default:
			_ = v.BindEnv(key)
		}
	}
}
