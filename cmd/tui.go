// Package cmd command line
package cmd

import (
	"context"
	"fmt"
	"os"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	glog "github.com/Laisky/go-utils/v6/log"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Laisky/weather-widget/cmd/tui"
	"github.com/Laisky/weather-widget/library/config"
	"github.com/Laisky/weather-widget/library/log"
)

var tuiCMD = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive weather widget",
	Long: `Launch the interactive weather widget.

Type a city name and press Enter, or Tab to the search button and press Enter.

Keyboard shortcuts:
  Tab         Switch between input and button
  Enter       Search
  Esc/Ctrl+C  Quit`,
	Args: gcmd.NoExtraArgs,
	PreRun: preRunInitialize,
	Run:    runWidget,
}

func init() {
	rootCMD.AddCommand(tuiCMD)
}

func runWidget(cmd *cobra.Command, args []string) {
	if err := runTUI(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the interactive widget and returns any start/run error.
func runTUI(ctx context.Context) error {
	w, err := newWidget(config.LoadSettings())
	if err != nil {
		return errors.Wrap(err, "new widget")
	}

	controller, err := w.newController()
	if err != nil {
		return errors.Wrap(err, "new lookup controller")
	}

	// console logs would tear the alternate screen
	if !gconfig.Shared.GetBool("debug") {
		if err := log.Logger.ChangeLevel(glog.Level("error")); err != nil {
			fmt.Fprintf(os.Stderr, "change log level: %v\n", err)
		}
	}

	p := tea.NewProgram(
		tui.NewModel(ctx, controller),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	return errors.WithStack(err)
}
