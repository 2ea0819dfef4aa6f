// Package config loads the application configuration from an optional YAML
// file and NLPDEMO_-prefixed environment variables, with defaults matching
// the deployed MEMORISE service endpoints.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Services ServicesConfig `mapstructure:"services"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// ServicesConfig holds the base URLs of the three remote NLP services and the
// shared outbound request timeout.
type ServicesConfig struct {
	SemtagURL string        `mapstructure:"semtag_url"`
	NERURL    string        `mapstructure:"ner_url"`
	MTURL     string        `mapstructure:"mt_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from configFile when given, otherwise from an
// optional ./config.yaml. Environment variables (NLPDEMO_SERVER_PORT etc.)
// take precedence over the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NLPDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an unreadable explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 7860)
	v.SetDefault("services.semtag_url", "https://semtag-api.dev.memorise.sdu.dk/semtag")
	v.SetDefault("services.ner_url", "https://semtag-api.dev.memorise.sdu.dk/ner")
	v.SetDefault("services.mt_url", "https://quest.ms.mff.cuni.cz/dimbu")
	v.SetDefault("services.timeout", 30*time.Second)
	v.SetDefault("log.level", "info")
}
