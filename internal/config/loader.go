package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. MKBRANCH_HASH_LENGTH.
const EnvPrefix = "MKBRANCH"

// LoadOptions selects the files merged over DefaultConfig.
type LoadOptions struct {
	// ExplicitPath, when set, is the only file read and must exist.
	ExplicitPath string
	// GlobalPath is read first when present.
	GlobalPath string
	// ProjectDir holds an optional .mkbranch.yaml that overrides the global file.
	ProjectDir string
}

// Load merges the configured files and MKBRANCH_* environment variables
// over the defaults. Lists replace the default list wholesale.
func Load(opts LoadOptions) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, path := range opts.files() {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) && path != opts.ExplicitPath {
				continue
			}
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		cfg.Sources = append(cfg.Sources, path)
	}

	if err := apply(v, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (o LoadOptions) files() []string {
	if o.ExplicitPath != "" {
		return []string{o.ExplicitPath}
	}
	var files []string
	if o.GlobalPath != "" {
		files = append(files, o.GlobalPath)
	}
	if o.ProjectDir != "" {
		files = append(files, ProjectConfigPath(o.ProjectDir))
	}
	return files
}

// keys lists every setting so MKBRANCH_* variables are seen by Unmarshal
// even when no file mentions them.
var keys = []string{
	"prefixes",
	"usernames",
	"environments",
	"environment_prefixes",
	"separators",
	"hash_length",
	"checkout",
	"manual_label",
	"log_level",
}

// apply decodes the merged settings over cfg. Keys that are not set keep
// their current value; lists replace the current list wholesale.
func apply(v *viper.Viper, cfg *Config) error {
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}

	err := v.Unmarshal(cfg,
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToSliceHookFunc(","),
			stringToChoiceHook,
		)),
		func(dc *mapstructure.DecoderConfig) { dc.ZeroFields = true },
	)
	if err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

var choiceType = reflect.TypeOf(Choice{})

// stringToChoiceHook lets a list entry be a bare value instead of a
// {value, description} map.
func stringToChoiceHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != choiceType {
		return data, nil
	}
	return Choice{Value: strings.TrimSpace(data.(string))}, nil
}
