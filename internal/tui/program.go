package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/i474232898/weather-widget/internal/weather"
)

// Run shows the widget until the user quits.
func Run(ctx context.Context, provider weather.Provider, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(New(ctx, provider), opts...)
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "weather widget")
	}
	return nil
}
