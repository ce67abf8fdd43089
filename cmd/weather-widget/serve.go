package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/weather-widget/internal/api/http"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the widget page and JSON API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := httpapi.NewApp(a.provider(), time.Now)

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("port", a.cfg.Port).Msg("serving weather widget")
				errCh <- server.Listen(":" + a.cfg.Port)
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.ShutdownWithContext(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("error during shutdown")
			}
			return nil
		},
	}

	cmd.Flags().String("port", "8080", "listen port (env PORT)")
	cobra.CheckErr(a.v.BindPFlag("port", cmd.Flags().Lookup("port")))
	return cmd
}
