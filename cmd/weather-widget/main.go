package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/i474232898/weather-widget/internal/config"
	"github.com/i474232898/weather-widget/internal/logging"
	"github.com/i474232898/weather-widget/internal/tui"
	"github.com/i474232898/weather-widget/internal/weather/providers"
)

// app carries what every sub-command needs once flags are parsed.
type app struct {
	v   *viper.Viper
	cfg *config.AppConfig
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:           "weather-widget",
		Short:         "Look up the current weather for a location",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("the interactive widget needs a terminal, use the lookup command instead")
			}
			return tui.Run(cmd.Context(), a.provider())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("api-key", "", "WeatherAPI.com key (env WEATHER_API_KEY)")
	flags.String("api-base-url", providers.DefaultWeatherAPIBaseURL, "current-conditions endpoint")
	flags.String("http-timeout", "10s", "timeout of a lookup, 0 to disable")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "text", "log format on stderr (text, json)")
	flags.String("log-file", "", "also write logs to this file")
	cobra.CheckErr(a.v.BindPFlags(flags))

	rootCmd.AddCommand(newLookupCmd(a), newServeCmd(a))
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// the terminal UI owns stdout/stderr, so it only logs to a file
	interactive := cmd.Parent() == nil
	return logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Quiet:  interactive,
	})
}

func (a *app) provider() *providers.WeatherAPIProvider {
	httpClient := &http.Client{
		Timeout: a.cfg.HTTPTimeout,
	}
	return providers.NewWeatherAPIProvider(httpClient, a.cfg.WeatherAPIKey,
		providers.WithBaseURL(a.cfg.WeatherAPIBaseURL))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, errLookupFailed) {
			os.Exit(1)
		}
		log.Error().Err(err).Msg("weather-widget failed")
		os.Exit(1)
	}
}
