package weather

import "context"

// Provider abstracts the current-conditions source (WeatherAPI.com in production).
type Provider interface {
	Name() string
	Current(ctx context.Context, location string) (Snapshot, error)
}
