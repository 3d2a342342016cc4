package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	DbPath          string        `mapstructure:"db_path"`
	FileBaseURL     string        `mapstructure:"file_base_url"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("addr", "localhost:4000")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("db_path", "weekreport.db")
	v.SetDefault("file_base_url", "http://localhost:4000/api/v1")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	return &cfg, nil
}
