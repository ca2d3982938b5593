package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "FLUENTUTILS"
	ConfigName = "fluentutils"
)

type Config struct {
	LogLevel         string `mapstructure:"log_level"`
	Debug            bool   `mapstructure:"debug"`
	Verbose          bool   `mapstructure:"verbose"`
	ServiceName      string `mapstructure:"service_name"`
	MetricsNamespace string `mapstructure:"metrics_namespace"`
	PageLimit        int    `mapstructure:"page_limit"`
}

// RegisterFlags declares the flags Load understands on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Path to a fluentutils.yaml configuration file")
	flags.Bool("debug", false, "Enable debugging mode")
	flags.Bool("verbose", false, "Enable verbose logging")
	flags.String("log-level", "info", "Log level for the request pipeline")
	flags.String("service-name", "fluentutils", "Service name reported by metrics and traces")
	flags.String("metrics-namespace", "fluentutils", "Prometheus namespace of the pipeline metrics")
	flags.Int("page-limit", 10, "Default page size")
}

// Load resolves the configuration from defaults, the config file, the
// environment and finally the flags that were set explicitly.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("debug", false)
	v.SetDefault("verbose", false)
	v.SetDefault("service_name", "fluentutils")
	v.SetDefault("metrics_namespace", "fluentutils")
	v.SetDefault("page_limit", 10)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := os.Getenv(EnvPrefix + "_CONFIG")
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Changed {
			path = f.Value.String()
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.Visit(func(f *pflag.Flag) {
			if f.Name == "config" {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.PageLimit < 1 {
		return nil, fmt.Errorf("invalid page_limit %d: must be positive", config.PageLimit)
	}

	return config, nil
}
