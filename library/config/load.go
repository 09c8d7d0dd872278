// Package config loads weather-widget settings.
package config

import (
	"os"
	"path/filepath"

	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"

	"github.com/Laisky/weather-widget/library/log"
)

// LoadFromFile loads cfgPath into the shared configuration.
// A missing file is not an error, the tool runs on flags and environment alone.
func LoadFromFile(cfgPath string) {
	if cfgPath == "" {
		return
	}
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Logger.Debug("configuration file not found, skip",
			zap.String("config", cfgPath))
		return
	}

	gconfig.Shared.Set("cfg_dir", filepath.Dir(cfgPath))
	if err := gconfig.Shared.LoadFromFile(cfgPath); err != nil {
		log.Logger.Panic("load configuration",
			zap.Error(err),
			zap.String("config", cfgPath))
	}

	log.Logger.Info("load configuration",
		zap.String("config", cfgPath))
}
