package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/i474232898/weather-widget/internal/weather/providers"
)

type AppConfig struct {
	WeatherAPIKey     string
	WeatherAPIBaseURL string

	// HTTPTimeout bounds each outbound lookup (0 = no timeout).
	HTTPTimeout time.Duration

	Port string

	LogLevel  string
	LogFormat string
	LogFile   string
}

// NewViper returns a viper instance reading WEATHER_* variables, with defaults
// for every key Load understands. Command-line flags are bound on top by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("weather")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("api-base-url", providers.DefaultWeatherAPIBaseURL)
	v.SetDefault("http-timeout", "10s")
	v.SetDefault("port", "8080")
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "text")

	// The key keeps working under the name the web widget used.
	_ = v.BindEnv("api-key", "WEATHER_API_KEY", "NEXT_PUBLIC_WEATHER_API_KEY")
	_ = v.BindEnv("port", "WEATHER_PORT", "PORT")

	return v
}

// Load reads configuration from .env, the environment and bound flags.
func Load(v *viper.Viper) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	cfg := &AppConfig{}

	cfg.WeatherAPIKey = v.GetString("api-key")
	cfg.WeatherAPIBaseURL = v.GetString("api-base-url")

	timeout, err := time.ParseDuration(v.GetString("http-timeout"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid http-timeout")
	}
	if timeout < 0 {
		return nil, errors.Errorf("invalid http-timeout: %s is negative", timeout)
	}
	cfg.HTTPTimeout = timeout

	cfg.Port = v.GetString("port")
	cfg.LogLevel = v.GetString("log-level")
	cfg.LogFormat = v.GetString("log-format")
	cfg.LogFile = v.GetString("log-file")

	if cfg.WeatherAPIKey == "" {
		log.Warn().Msg("WEATHER_API_KEY is not set, every lookup will fail")
	}

	return cfg, nil
}
