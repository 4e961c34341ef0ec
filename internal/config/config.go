package config

import (
	"github.com/spf13/viper"
)

// Config holds the configuration for the application.
type Config struct {
	DB struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		SSLMode  string `mapstructure:"sslmode"`
	} `mapstructure:"db"`
	HTTP struct {
		Addr        string   `mapstructure:"addr"`
		CORSOrigins []string `mapstructure:"cors_origins"`
	} `mapstructure:"http"`
	Dashboard struct {
		LiveFeedLimit int `mapstructure:"live_feed_limit"`
	} `mapstructure:"dashboard"`
}

// LoadConfig loads the configuration from a file and the environment. An
// extra search directory may be supplied for deployments that keep the
// config outside the working tree.
func LoadConfig(extraPath string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	if extraPath != "" {
		viper.AddConfigPath(extraPath)
	}
	viper.AutomaticEnv()

	viper.SetDefault("db.port", 5432)
	viper.SetDefault("db.sslmode", "disable")
	viper.SetDefault("http.addr", ":8080")
	viper.SetDefault("http.cors_origins", []string{"*"})
	viper.SetDefault("dashboard.live_feed_limit", 10)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
