package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	CONFIG_NAME = "config"
	CONFIG_TYPE = "yaml"
	ENV_PREFIX  = "GITLET"

	LogLevelKey = "log.level"
	ColorKey    = "color"
	PagerKey    = "pager"
)

var defaults = map[string]interface{}{
	LogLevelKey: "warn",
	ColorKey:    "auto",
	PagerKey:    true,
}

var validators = map[string]func(string) error{
	LogLevelKey: oneOf("debug", "info", "warn", "error"),
	ColorKey:    oneOf("auto", "always", "never"),
	PagerKey: func(value string) error {
		_, err := strconv.ParseBool(value)
		return err
	},
}

type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("unknown config key '%s'", e.Key)
}

// Config resolves settings from, in rising priority, built in defaults,
// <gitPath>/config.yaml, GITLET_* environment variables and command line
// flags. Only values set through Set are written back to the file.
type Config struct {
	merged *viper.Viper
	file   *viper.Viper
	path   string
}

// Load reads the config file under gitPath if there is one. gitPath may be
// empty, in which case only defaults, environment and flags apply.
func Load(gitPath string) (*Config, error) {
	c := &Config{
		merged: viper.New(),
		file:   viper.New(),
	}

	for key, value := range defaults {
		c.merged.SetDefault(key, value)
	}
	c.merged.SetEnvPrefix(ENV_PREFIX)
	c.merged.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.merged.AutomaticEnv()

	if gitPath == "" {
		return c, nil
	}
	c.path = filepath.Join(gitPath, CONFIG_NAME+"."+CONFIG_TYPE)

	for _, v := range []*viper.Viper{c.merged, c.file} {
		v.SetConfigName(CONFIG_NAME)
		v.SetConfigType(CONFIG_TYPE)
		v.AddConfigPath(gitPath)

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrapf(err, "reading %s", c.path)
			}
		}
	}

	return c, nil
}

// BindFlags lets flags that were given on the command line override every
// other source.
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		LogLevelKey: "log-level",
		ColorKey:    "color",
	}
	for key, name := range bindings {
		if flag := flags.Lookup(name); flag != nil {
			if err := c.merged.BindPFlag(key, flag); err != nil {
				return errors.Wrapf(err, "binding --%s", name)
			}
		}
	}

	if flag := flags.Lookup("no-pager"); flag != nil && flag.Changed {
		c.merged.Set(PagerKey, false)
	}
	return nil
}

func (c *Config) LogLevel() string {
	return c.merged.GetString(LogLevelKey)
}

func (c *Config) Color() string {
	return c.merged.GetString(ColorKey)
}

func (c *Config) Pager() bool {
	return c.merged.GetBool(PagerKey)
}

func (c *Config) Get(key string) (string, error) {
	if _, ok := validators[key]; !ok {
		return "", &InvalidKeyError{Key: key}
	}
	return c.merged.GetString(key), nil
}

// Set validates value and records it for the next Save.
func (c *Config) Set(key, value string) error {
	validate, ok := validators[key]
	if !ok {
		return &InvalidKeyError{Key: key}
	}
	if err := validate(value); err != nil {
		return errors.Wrapf(err, "invalid value for %s", key)
	}

	var typed interface{} = value
	if key == PagerKey {
		typed, _ = strconv.ParseBool(value)
	}
	c.file.Set(key, typed)
	c.merged.Set(key, typed)
	return nil
}

func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("no repository to save configuration in")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	return c.file.WriteConfigAs(c.path)
}

func Keys() []string {
	keys := make([]string, 0, len(validators))
	for key := range validators {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func oneOf(values ...string) func(string) error {
	return func(value string) error {
		for _, v := range values {
			if v == value {
				return nil
			}
		}
		return errors.Errorf("want one of %s, but got %q", strings.Join(values, ", "), value)
	}
}
