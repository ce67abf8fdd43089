package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-widget/internal/weather"
)

var validate = validator.New()

// DefaultWeatherAPIBaseURL is the WeatherAPI.com current-conditions endpoint.
const DefaultWeatherAPIBaseURL = "https://api.weatherapi.com/v1/current.json"

// WeatherAPIProvider implements the weather.Provider interface for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// Option customizes a WeatherAPIProvider.
type Option func(*WeatherAPIProvider)

// WithBaseURL points the provider at another endpoint (a test server, a proxy).
func WithBaseURL(baseURL string) Option {
	return func(p *WeatherAPIProvider) {
		if baseURL != "" {
			p.baseURL = baseURL
		}
	}
}

func NewWeatherAPIProvider(client *http.Client, apiKey string, opts ...Option) *WeatherAPIProvider {
	p := &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: DefaultWeatherAPIBaseURL,
		client:  client,
		circuit: newCircuitBreaker("weatherapi"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

// Current fetches the current conditions for a free-text location.
// The snapshot is always in Celsius.
func (p *WeatherAPIProvider) Current(ctx context.Context, location string) (weather.Snapshot, error) {
	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return weather.Snapshot{}, errors.Wrap(err, "failed to create request")
	}

	resp, err := doRequest(ctx, p.client, p.circuit, req)
	if err != nil {
		return weather.Snapshot{}, errors.Wrapf(err, "%s lookup for %q", p.name, location)
	}
	defer resp.Body.Close()

	var payload struct {
		Location *struct {
			Name string `json:"name" validate:"required"`
		} `json:"location" validate:"required"`
		Current *struct {
			TempC     *float64 `json:"temp_c" validate:"required"`
			Condition *struct {
				Text string `json:"text"`
			} `json:"condition" validate:"required"`
		} `json:"current" validate:"required"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Snapshot{}, errors.Wrap(err, "failed to parse response")
	}
	// a 200 without location/current (null, {}, an error object) is as bad as broken JSON
	if err := validate.Struct(payload); err != nil {
		return weather.Snapshot{}, errors.Wrap(err, "incomplete response")
	}

	log.Debug().
		Str("provider", p.name).
		Str("query", location).
		Str("resolved", payload.Location.Name).
		Float64("temp_c", *payload.Current.TempC).
		Msg("fetched current weather")

	return weather.Snapshot{
		Temperature: *payload.Current.TempC,
		Description: payload.Current.Condition.Text,
		Location:    payload.Location.Name,
		Unit:        weather.Celsius,
	}, nil
}

var _ weather.Provider = (*WeatherAPIProvider)(nil)
