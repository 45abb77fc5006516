package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "IMGSIM"

// envKeys may be overridden from IMGSIM_* variables. select is not among them: it
// answers the delete prompt and must come from the command line.
var envKeys = []string{"log_level", "threshold", "workers", "progress"}

type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	Threshold int    `mapstructure:"threshold"`
	Workers   int    `mapstructure:"workers"`
	Select    string `mapstructure:"select"`
	Progress  bool   `mapstructure:"progress"`

	// Positional arguments, not bound to viper.
	Image     string `mapstructure:"-"`
	Directory string `mapstructure:"-"`
}

func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("log_level", "INFO", "Log level {INFO|DEBUG|WARNING|ERROR}")
	fs.IntP("threshold", "t", 10, "Maximum (exclusive) Hamming distance for images to be similar")
	fs.IntP("workers", "w", 1, "Number of images fingerprinted concurrently")
	fs.StringP("select", "s", "", "Indices to delete (e.g. 1,2,4-6 or exit) instead of asking")
	fs.Bool("progress", false, "Show scan progress bar")
}

// Bind makes viper read fs, falling back to IMGSIM_* environment variables for the
// envKeys flags that were not set explicitly.
func Bind(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("binding env for %s: %w", key, err)
		}
	}
	return nil
}

func Get() (*Config, error) {
	return Load(viper.GetViper())
}

func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	logrus.Debugf("Got config: %+v", cfg)
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Image == "" {
		return fmt.Errorf("image path is required")
	}
	if c.Directory == "" {
		return fmt.Errorf("directory path is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
