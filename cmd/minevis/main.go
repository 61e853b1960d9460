package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/minevis/internal/config"
	"github.com/philipparndt/minevis/internal/logger"
	"github.com/philipparndt/minevis/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "minevis",
	Short: "A CLI tool for inspecting mining visualization datasets",
	Long: `minevis analyzes the spatial datasets behind mine planning dashboards:
triangulated survey surfaces, block-model grids, section profiles and
material-flow graphs. It reports the renderable geometry each dataset
produces without opening a viewer window.`,
	Version: version.GetVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a minevis.yaml config file")
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
