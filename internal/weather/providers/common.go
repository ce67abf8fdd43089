package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
)

var (
	// ErrNotFound is returned for any non-2xx answer. WeatherAPI reports unknown
	// locations as 400, so client errors are not told apart from missing cities.
	ErrNotFound = errors.New("location not found")
	// ErrCircuitOpen is returned without touching the network while the breaker is open.
	ErrCircuitOpen  = errors.New("circuit breaker open")
	errServerError  = errors.New("server error")
	errNoHTTPClient = errors.New("http client not configured")
)

// newCircuitBreaker trips on consecutive transport or 5xx failures only.
// A 4xx for a misspelled city is a normal answer and must not lock the widget out.
func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})
}

// doRequest executes a single attempt through the circuit breaker. There is no retry:
// a failed lookup is reported to the user, who can submit again.
func doRequest(
	ctx context.Context,
	client *http.Client,
	cb *gobreaker.CircuitBreaker,
	req *http.Request,
) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req.WithContext(ctx))
		if execErr != nil {
			return nil, execErr
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			return nil, errors.Wrapf(errServerError, "status %d", resp.StatusCode)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, errors.Wrapf(ErrNotFound, "status %d", resp.StatusCode)
		}

		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.Wrap(ErrCircuitOpen, err.Error())
		}
		return nil, err
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, errors.New("unexpected result type from circuit breaker")
	}
	return resp, nil
}
