package cmd

import (
	"os"
	"os/signal"
	"syscall"

	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/Laisky/weather-widget/internal/mcp"
	"github.com/Laisky/weather-widget/internal/web"
	"github.com/Laisky/weather-widget/library/config"
	"github.com/Laisky/weather-widget/library/log"
)

var apiCMD = &cobra.Command{
	Use:   "api",
	Short: "api",
	Long: `HTTP API for weather lookups.

Routes:
  GET /health
  GET /weather?q=<city>&lang=<zh-TW|en>
  ANY /mcp     MCP streamable HTTP, tool current_weather`,
	Args:   gcmd.NoExtraArgs,
	PreRun: preRunInitialize,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w, err := newWidget(config.LoadSettings())
		if err != nil {
			log.Logger.Panic("new widget", zap.Error(err))
		}

		mcpServer, err := mcp.NewServer(w.client, w.messages, log.Logger)
		if err != nil {
			log.Logger.Panic("new mcp server", zap.Error(err))
		}

		router, err := web.NewRouter(web.Options{
			Provider: w.client,
			Language: w.settings.UI.Language,
			MCP:      mcpServer.Handler(),
			Metrics:  gconfig.Shared.GetBool("metrics"),
			Logger:   log.Logger,
		})
		if err != nil {
			log.Logger.Panic("new router", zap.Error(err))
		}

		if err = web.RunServer(ctx, gconfig.Shared.GetString("listen"), router); err != nil {
			log.Logger.Panic("http server exit", zap.Error(err))
		}
	},
}

func init() {
	apiCMD.Flags().String("listen", "localhost:8080", "like `localhost:8080`")
	apiCMD.Flags().Bool("metrics", false, "expose metrics and pprof endpoints")
	rootCMD.AddCommand(apiCMD)
}
