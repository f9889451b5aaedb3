package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func cityCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "city [name]",
		Short: "Show the weather for a city (default $DEFAULT_CITY)",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := c.defaultCity
			if len(args) > 0 {
				// Unquoted multi-word names arrive as separate args.
				name = strings.Join(args, " ")
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			_, err := c.orchestrator.SearchByName(ctx, newTerminalDisplay(cmd), "", name)
			return err
		},
	}
	return cmd
}
