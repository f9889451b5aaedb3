package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/neexbeast/weatherdash/internal/search"
	"github.com/neexbeast/weatherdash/internal/weather"
)

func coordsCmd(c *cli) *cobra.Command {
	var lat, lon string

	cmd := &cobra.Command{
		Use:   "coords",
		Short: "Show the weather at a latitude/longitude",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a position there is nothing to locate with.
			var loc search.Locator
			if lat != "" || lon != "" {
				loc = search.LocatorFunc(func(context.Context) (weather.Coordinates, error) {
					return weather.ParseCoordinates(lat, lon)
				})
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			_, err := c.orchestrator.SearchByLocation(ctx, newTerminalDisplay(cmd), "", loc)
			return err
		},
	}

	cmd.Flags().StringVar(&lat, "lat", "", "latitude in decimal degrees")
	cmd.Flags().StringVar(&lon, "lon", "", "longitude in decimal degrees")
	return cmd
}
