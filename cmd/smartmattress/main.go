package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/medicalheatmap/smartmattress/internal/config"
	"github.com/medicalheatmap/smartmattress/internal/log"
	"github.com/medicalheatmap/smartmattress/internal/tui"
)

var (
	configPath string
	debug      bool
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "smartmattress",
	Short: "Smart mattress monitor",
	Long:  "Terminal demo client for a smart mattress: pressure heatmap, AI prediction, history and temperature control",
	Args:  cobra.NoArgs,
	Run:   runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default $XDG_CONFIG_HOME/smartmattress/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config and points the logger at the configured file.
func loadConfig() config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if logFile != "" {
		cfg.Log.File = logFile
	}
	if debug {
		cfg.Log.Level = "debug"
	}

	if err := log.SetLevelString(cfg.Log.Level); err != nil {
		log.Fatalf("Invalid log level %q: %v", cfg.Log.Level, err)
	}
	if cfg.Log.File != "" {
		if err := log.OpenFile(cfg.Log.File); err != nil {
			log.Fatalf("Error opening log file: %v", err)
		}
	}
	return cfg
}

func runRoot(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	defer log.Close()

	log.Info("starting", "version", Version, "splash_delay", cfg.Timing.SplashDelay, "loading_tick", cfg.Timing.LoadingTick)
	if err := tui.Run(cfg); err != nil {
		log.Error("program exited with error", "err", err)
		log.Close()
		log.Fatalf("Error running UI: %v", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
