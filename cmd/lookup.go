package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/spf13/cobra"

	"github.com/Laisky/weather-widget/internal/lookup"
	"github.com/Laisky/weather-widget/internal/web"
	"github.com/Laisky/weather-widget/library/config"
)

var lookupCMD = &cobra.Command{
	Use:   "lookup <city>",
	Short: "Print the current weather for a city and exit",
	Long: `Look up the current weather for a city once and print it.

The exit status is non-zero when the lookup fails.

Example:
  weather-widget lookup Taipei
  weather-widget lookup --json --lang en New York`,
	Args:   cobra.MinimumNArgs(1),
	PreRun: preRunInitialize,
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := runLookup(cmd.Context(), strings.Join(args, " "),
			gconfig.Shared.GetBool("json"), os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(1)
		}
	},
}

func init() {
	lookupCMD.Flags().Bool("json", false, "print the result as JSON")
	rootCMD.AddCommand(lookupCMD)
}

func runLookup(ctx context.Context, city string, asJSON bool, out io.Writer) (bool, error) {
	w, err := newWidget(config.LoadSettings())
	if err != nil {
		return false, errors.Wrap(err, "new widget")
	}

	controller, err := w.newController()
	if err != nil {
		return false, errors.Wrap(err, "new lookup controller")
	}

	return lookupOnce(ctx, controller, city, asJSON, out)
}

// lookupOnce runs a single search and writes the settled view to out.
// It reports false when the view is not a result.
func lookupOnce(ctx context.Context, controller *lookup.Controller, city string, asJSON bool, out io.Writer) (bool, error) {
	controller.UpdateQuery(city)
	state := controller.Search(ctx)
	messages := controller.Messages()

	if asJSON {
		_, body := web.NewWeatherResponse(state, messages)
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(body); err != nil {
			return false, errors.Wrap(err, "encode response")
		}
		return state.View() == lookup.ViewResult, nil
	}

	var text string
	switch state.View() {
	case lookup.ViewResult:
		result, _ := state.Result()
		text = lookup.NewCard(*result).String()
	case lookup.ViewError:
		text, _ = state.ErrorText()
	default:
		text = messages.Prompt
	}

	if _, err := fmt.Fprintln(out, text); err != nil {
		return false, errors.Wrap(err, "write output")
	}
	return state.View() == lookup.ViewResult, nil
}
