/**
 * @description
 * Configuration for the akahu-demo binary. Uses Viper to read settings from
 * environment variables, with an optional .env file for local development.
 *
 * The library itself takes its configuration through constructor arguments;
 * this package only serves the demo.
 *
 * @dependencies
 * - github.com/spf13/viper: environment/file configuration binding.
 */
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the demo's settings, loaded from environment variables.
type Config struct {
	AppToken  string `mapstructure:"AKAHU_APP_TOKEN"`
	AppSecret string `mapstructure:"AKAHU_APP_SECRET"`
	UserToken string `mapstructure:"AKAHU_USER_TOKEN"`
	BaseURL   string `mapstructure:"AKAHU_BASE_URL"`

	// HTTPTimeoutSeconds bounds each request made by the default transport.
	HTTPTimeoutSeconds int `mapstructure:"HTTP_TIMEOUT_SECONDS"`

	// MaxInFlight caps concurrent requests via the gate transport.
	MaxInFlight int64 `mapstructure:"MAX_IN_FLIGHT_REQUESTS"`

	// LookbackDays is how far back the transaction listing reaches.
	LookbackDays int `mapstructure:"LOOKBACK_DAYS"`
}

// LoadConfig reads configuration from environment variables, consulting an
// optional .env file at the given path.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("AKAHU_BASE_URL", "")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)
	viper.SetDefault("MAX_IN_FLIGHT_REQUESTS", 4)
	viper.SetDefault("LOOKBACK_DAYS", 30)

	// Bind explicitly so the variables appear in Unmarshal even when no
	// .env file exists.
	_ = viper.BindEnv("AKAHU_APP_TOKEN")
	_ = viper.BindEnv("AKAHU_APP_SECRET")
	_ = viper.BindEnv("AKAHU_USER_TOKEN")
	_ = viper.BindEnv("AKAHU_BASE_URL")
	_ = viper.BindEnv("HTTP_TIMEOUT_SECONDS")
	_ = viper.BindEnv("MAX_IN_FLIGHT_REQUESTS")
	_ = viper.BindEnv("LOOKBACK_DAYS")

	if err = viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
		// No .env file; environment variables alone are fine.
		err = nil
	}

	if err = viper.Unmarshal(&config); err != nil {
		return Config{}, err
	}

	if config.AppToken == "" {
		return Config{}, errors.New("AKAHU_APP_TOKEN is required")
	}
	if config.UserToken == "" {
		return Config{}, errors.New("AKAHU_USER_TOKEN is required")
	}
	if config.MaxInFlight < 1 {
		return Config{}, errors.New("MAX_IN_FLIGHT_REQUESTS must be at least 1")
	}
	return config, nil
}
