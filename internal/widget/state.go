package widget

import (
	"github.com/google/uuid"

	"github.com/i474232898/weather-widget/internal/weather"
)

// State is one of Idle, Loading, Success or Failed. A result and an error
// message can never be shown together.
type State interface {
	isState()
}

// Idle is the state before the first submit.
type Idle struct{}

// Loading holds the request whose result the widget is waiting for.
type Loading struct {
	RequestID uuid.UUID
	Location  string
}

// Success holds the last fetched snapshot.
type Success struct {
	Snapshot weather.Snapshot
}

// Failed holds the message shown under the form.
type Failed struct {
	Message string
}

func (Idle) isState()    {}
func (Loading) isState() {}
func (Success) isState() {}
func (Failed) isState()  {}
