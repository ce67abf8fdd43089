package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/weather-widget/internal/weather"
	"github.com/i474232898/weather-widget/internal/weather/weathertest"
	"github.com/i474232898/weather-widget/internal/widget"
)

var paris = weather.Snapshot{Temperature: 15, Description: "Overcast", Location: "Paris", Unit: weather.Celsius}

func noon() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
}

func newTestApp(p weather.Provider) *fiber.App {
	return NewApp(p, noon)
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealth(t *testing.T) {
	resp, body := get(t, newTestApp(weathertest.NewProvider()), "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok","service":"weather-widget"}`, string(body))
}

func TestWeatherEndpoint(t *testing.T) {
	app := newTestApp(weathertest.NewProvider().Set("Paris", paris))

	resp, body := get(t, app, "/api/v1/weather?location=%20Paris%20")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Temperature float64  `json:"temperature"`
		Description string   `json:"description"`
		Location    string   `json:"location"`
		Unit        string   `json:"unit"`
		Lines       []string `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(body, &got))

	assert.Equal(t, 15.0, got.Temperature)
	assert.Equal(t, "Overcast", got.Description)
	assert.Equal(t, "Paris", got.Location)
	assert.Equal(t, "C", got.Unit)
	assert.Equal(t, []string{
		"Paris during the day",
		"The temperature is 15°C. Comfortable for a light jacket.",
		"The sky is overcast",
	}, got.Lines)
}

func TestWeatherEndpointBlankLocation(t *testing.T) {
	p := weathertest.NewProvider()
	app := newTestApp(p)

	for _, target := range []string{"/api/v1/weather", "/api/v1/weather?location=", "/api/v1/weather?location=%20%09"} {
		resp, body := get(t, app, target)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)
		assert.Contains(t, string(body), widget.MsgInvalidLocation)
	}
	assert.Empty(t, p.Calls())
}

func TestWeatherEndpointNotFound(t *testing.T) {
	app := newTestApp(weathertest.NewProvider())

	resp, body := get(t, app, "/api/v1/weather?location=Atlantis")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, true, got["error"])
	assert.Equal(t, widget.MsgNotFound, got["message"])
}

func TestWidgetPage(t *testing.T) {
	app := newTestApp(weathertest.NewProvider().Set("Paris", paris))

	resp, body := get(t, app, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "Weather Widget")
	assert.Contains(t, string(body), "Get real-time weather updates")
	assert.NotContains(t, string(body), widget.MsgInvalidLocation)

	_, body = get(t, app, "/?location="+url.QueryEscape("Paris"))
	assert.Contains(t, string(body), "Paris during the day")
	assert.Contains(t, string(body), "The temperature is 15°C. Comfortable for a light jacket.")
	assert.Contains(t, string(body), "The sky is overcast")

	_, body = get(t, app, "/?location=")
	assert.Contains(t, string(body), widget.MsgInvalidLocation)

	_, body = get(t, app, "/?location=Atlantis")
	assert.Contains(t, string(body), "City not found. Please try again.")
	assert.NotContains(t, string(body), "class=\"result\"")
}

func TestAccessLogGoesToZerolog(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = log.Output(&buf)
	defer func() { log.Logger = saved }()

	resp, _ := get(t, newTestApp(weathertest.NewProvider()), "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Contains(t, buf.String(), "/health")
	assert.Contains(t, buf.String(), "200")
}
