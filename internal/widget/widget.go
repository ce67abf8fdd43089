// Package widget holds the UI-independent part of the weather widget: the
// query, submit validation and the Idle/Loading/Success/Failed state machine.
// Front ends (terminal, HTTP) own a Widget and feed it fetch results.
package widget

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/i474232898/weather-widget/internal/format"
	"github.com/i474232898/weather-widget/internal/weather"
)

const (
	// MsgInvalidLocation is shown for an empty or whitespace-only query.
	MsgInvalidLocation = "Please enter a valid location"
	// MsgNotFound is shown for every failed fetch, whatever the cause.
	MsgNotFound = "City not found. Please try again."

	LabelSearch  = "Search"
	LabelLoading = "Loading..."
)

// ErrInvalidLocation is returned by Submit when the trimmed query is empty.
var ErrInvalidLocation = errors.New("invalid location")

var validate = validator.New()

type submitQuery struct {
	Location string `validate:"required"`
}

// Request is a fetch the front end must perform exactly once.
type Request struct {
	ID       uuid.UUID
	Location string
}

// Result is the outcome of performing a Request.
type Result struct {
	RequestID uuid.UUID
	Snapshot  weather.Snapshot
	Err       error
}

// Widget is not safe for concurrent use; it belongs to one event loop.
type Widget struct {
	query string
	state State
}

func New() *Widget {
	return &Widget{state: Idle{}}
}

func (w *Widget) SetQuery(q string) {
	w.query = q
}

func (w *Widget) Query() string {
	return w.query
}

func (w *Widget) State() State {
	return w.state
}

// Loading reports whether a request is in flight.
func (w *Widget) Loading() bool {
	_, ok := w.state.(Loading)
	return ok
}

// ButtonLabel is the submit control's label. The control itself stays enabled.
func (w *Widget) ButtonLabel() string {
	if w.Loading() {
		return LabelLoading
	}
	return LabelSearch
}

// Submit validates the trimmed query and, if valid, moves to Loading with a new
// request id. Any earlier in-flight request becomes stale.
func (w *Widget) Submit() (Request, error) {
	q := submitQuery{Location: strings.TrimSpace(w.query)}
	if err := validate.Struct(q); err != nil {
		w.state = Failed{Message: MsgInvalidLocation}
		return Request{}, ErrInvalidLocation
	}

	req := Request{ID: uuid.New(), Location: q.Location}
	w.state = Loading{RequestID: req.ID, Location: req.Location}
	return req, nil
}

// Resolve applies a fetch result. Results for anything but the pending request
// are dropped and false is returned.
func (w *Widget) Resolve(res Result) bool {
	pending, ok := w.state.(Loading)
	if !ok || pending.RequestID != res.RequestID {
		log.Debug().Str("request_id", res.RequestID.String()).Msg("discarding stale weather result")
		return false
	}

	if res.Err != nil {
		log.Debug().Err(res.Err).
			Str("request_id", res.RequestID.String()).
			Str("location", pending.Location).
			Msg("weather lookup failed")
		w.state = Failed{Message: MsgNotFound}
		return true
	}

	w.state = Success{Snapshot: res.Snapshot}
	return true
}

// Lines renders the result card for a Success state, or nil.
// now is read at render time, so the day/night phrase follows the clock.
func (w *Widget) Lines(now time.Time) []string {
	s, ok := w.state.(Success)
	if !ok {
		return nil
	}
	return Lines(s.Snapshot, now)
}

// ErrorMessage returns the message of a Failed state, or "".
func (w *Widget) ErrorMessage() string {
	if f, ok := w.state.(Failed); ok {
		return f.Message
	}
	return ""
}

// Lines renders a snapshot as the location, temperature and condition lines.
func Lines(s weather.Snapshot, now time.Time) []string {
	return []string{
		format.Location(s.Location, now),
		format.Temperature(s.Temperature, s.Unit),
		format.Condition(s.Description),
	}
}

// Fetch performs a request against a provider.
func Fetch(ctx context.Context, p weather.Provider, req Request) Result {
	snap, err := p.Current(ctx, req.Location)
	return Result{RequestID: req.ID, Snapshot: snap, Err: err}
}

// Lookup runs one submit/fetch/resolve cycle synchronously and returns the
// resulting state.
func (w *Widget) Lookup(ctx context.Context, p weather.Provider) State {
	req, err := w.Submit()
	if err != nil {
		return w.state
	}
	w.Resolve(Fetch(ctx, p, req))
	return w.state
}
