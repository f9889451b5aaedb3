package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neexbeast/weatherdash/internal/view"
)

// terminalDisplay prints search results to stdout and progress and errors to stderr.
type terminalDisplay struct {
	out    io.Writer
	errOut io.Writer
}

func newTerminalDisplay(cmd *cobra.Command) *terminalDisplay {
	return &terminalDisplay{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}
}

func (d *terminalDisplay) SetBusy(busy bool) {
	if busy {
		fmt.Fprintln(d.errOut, "Loading...")
	}
}

func (d *terminalDisplay) Render(v view.View) {
	fmt.Fprintln(d.out, v.Place)
	fmt.Fprintln(d.out, v.Date)
	fmt.Fprintf(d.out, "%s  %s\n", v.Temperature, v.Description)
	fmt.Fprintf(d.out, "Feels like %s  Humidity %s  Wind %s\n", v.FeelsLike, v.Humidity, v.Wind)

	if len(v.Forecast) == 0 {
		return
	}
	days := make([]string, 0, len(v.Forecast))
	for _, day := range v.Forecast {
		days = append(days, fmt.Sprintf("%s %s", day.Day, day.Temperature))
	}
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, strings.Join(days, "  "))
}

func (d *terminalDisplay) ShowError(msg string) {
	fmt.Fprintln(d.errOut, "Error:", msg)
}
