package main

import (
	"fmt"
	"os"

	"p2p-offerbook/config"
	"p2p-offerbook/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var configPath string

// rootCmd is the base command of the offer book node.
var rootCmd = &cobra.Command{
	Use:   "offerbook",
	Short: "Live filterable offer book of a p2p exchange node",
	Long: `offerbook serves the BUY and SELL offer book views of a peer-to-peer
exchange node over HTTP and websocket, keeps them in sync with the offers
stored in PostgreSQL and publishes the selected market currency to Redis.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./config.yaml or ./config/config.yaml)")
}

// loadConfig reads the configuration and builds the logger.
func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	return cfg, logger.New(cfg.Log.Level, cfg.Log.Pretty), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
