// Package weathertest provides a scripted weather.Provider for tests.
package weathertest

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/i474232898/weather-widget/internal/weather"
)

// ErrUnknownLocation is returned for queries that were never Set.
var ErrUnknownLocation = errors.New("unknown location")

// Provider answers from a fixed table and records every lookup.
type Provider struct {
	mu        sync.Mutex
	snapshots map[string]weather.Snapshot
	err       error
	calls     []string
}

func NewProvider() *Provider {
	return &Provider{snapshots: make(map[string]weather.Snapshot)}
}

// Set registers the answer for a query.
func (p *Provider) Set(query string, snap weather.Snapshot) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshots[query] = snap
	return p
}

// Fail makes every lookup return err.
func (p *Provider) Fail(err error) *Provider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
	return p
}

func (p *Provider) Name() string {
	return "fake"
}

func (p *Provider) Current(ctx context.Context, location string) (weather.Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, location)

	if err := ctx.Err(); err != nil {
		return weather.Snapshot{}, err
	}
	if p.err != nil {
		return weather.Snapshot{}, p.err
	}
	snap, ok := p.snapshots[location]
	if !ok {
		return weather.Snapshot{}, ErrUnknownLocation
	}
	return snap, nil
}

// Calls returns the queries seen so far.
func (p *Provider) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

var _ weather.Provider = (*Provider)(nil)
