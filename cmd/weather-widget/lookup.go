package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/i474232898/weather-widget/internal/widget"
)

// errLookupFailed is returned after the user-facing message was already printed.
var errLookupFailed = errors.New("lookup failed")

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <location...>",
		Short: "Print the widget lines for a location and exit",
		Example: `  weather-widget lookup Paris
  weather-widget lookup New York`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := widget.New()
			w.SetQuery(strings.Join(args, " "))

			switch s := w.Lookup(cmd.Context(), a.provider()).(type) {
			case widget.Success:
				for _, line := range widget.Lines(s.Snapshot, time.Now()) {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			case widget.Failed:
				fmt.Fprintln(cmd.ErrOrStderr(), s.Message)
				return errLookupFailed
			default:
				return errors.Errorf("unexpected widget state %T", s)
			}
		},
	}
}
