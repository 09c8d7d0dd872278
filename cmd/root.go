package cmd

import (
	"context"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/Laisky/weather-widget/library/config"
	"github.com/Laisky/weather-widget/library/log"
)

var rootCMD = &cobra.Command{
	Use:   "weather-widget",
	Short: "weather-widget",
	Long: `Current weather for a city, in the terminal, over HTTP or as an MCP tool.

Running without a sub-command launches the interactive widget.`,
	Args:   gcmd.NoExtraArgs,
	PreRun: preRunInitialize,
	Run:    runWidget,
}

// preRunInitialize is the PreRun hook shared by every command.
func preRunInitialize(cmd *cobra.Command, args []string) {
	if err := initialize(cmd.Context(), cmd); err != nil {
		log.Logger.Panic("init", zap.Error(err))
	}
}

func initialize(ctx context.Context, cmd *cobra.Command) error {
	if err := gconfig.Shared.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind pflags")
	}

	setupSettings(ctx)
	setupLogger(ctx)

	if err := validateStartupConfig(); err != nil {
		return errors.Wrap(err, "validate configuration")
	}

	return nil
}

func setupSettings(ctx context.Context) {
	// mode
	if gconfig.Shared.GetBool("debug") {
		gconfig.Shared.Set("log-level", "debug")
	}

	// load configuration
	cfgPath := gconfig.Shared.GetString("config")
	config.LoadFromFile(cfgPath)
}

func setupLogger(ctx context.Context) {
	lvl := gconfig.Shared.GetString("log-level")
	if err := log.Logger.ChangeLevel(glog.Level(lvl)); err != nil {
		log.Logger.Panic("change log level", zap.Error(err), zap.String("level", lvl))
	}
}

func init() {
	rootCMD.PersistentFlags().Bool("debug", false, "run in debug mode")
	rootCMD.PersistentFlags().StringP("config", "c", "/etc/weather-widget/settings.yml", "config file path")
	rootCMD.PersistentFlags().String("log-level", "info", "`debug/info/warn/error`")
	rootCMD.PersistentFlags().String("api-key", "", "weather provider API key, overrides $"+config.APIKeyEnv)
	rootCMD.PersistentFlags().String("lang", "", "message language, `zh-TW/en`")
}

// Execute execute root command
func Execute() {
	if err := rootCMD.Execute(); err != nil {
		glog.Shared.Panic("start", zap.Error(err))
	}
}
