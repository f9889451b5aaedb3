package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/neexbeast/weatherdash/internal/config"
	"github.com/neexbeast/weatherdash/internal/search"
	"github.com/neexbeast/weatherdash/internal/weather"
)

// cli holds the flags and the dependencies built from them.
type cli struct {
	apiKey      string
	baseURL     string
	defaultCity string
	timeout     time.Duration
	verbose     bool

	orchestrator *search.Orchestrator
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the root command and its subcommands.
func NewRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "weather",
		Short:         "Current weather and a 5-day forecast in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.apiKey, "api-key", "", "OpenWeatherMap API key (default $OPENWEATHER_API_KEY)")
	root.PersistentFlags().StringVar(&c.baseURL, "base-url", "", "OpenWeatherMap base URL (default $OPENWEATHER_BASE_URL)")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "give up on a search after this long")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log search steps to stderr")

	root.AddCommand(cityCmd(c), coordsCmd(c))
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	c.defaultCity = "London"
	if c.apiKey == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		c.apiKey = cfg.WeatherAPIKey
		c.defaultCity = cfg.DefaultCity
		if c.baseURL == "" {
			c.baseURL = cfg.WeatherBaseURL
		}
	}
	if c.baseURL == "" {
		c.baseURL = weather.DefaultBaseURL
	}

	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	client := weather.NewClientWithURL(c.baseURL, c.apiKey)
	c.orchestrator = search.NewOrchestrator(client, nil, log)
	return nil
}

func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.timeout)
}
