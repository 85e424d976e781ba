package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"IndicatorScope/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "scope",
	Short: "World Bank indicator analysis",
	Long: `scope fetches World Bank development indicators for a country and year
range, derives one of eight predefined analyses and renders the result as
charts or a text report.

Example usage:
  scope kinds                                   # List the analyses
  scope run --kind 3 --country CAN --from 2015 --to 2016 --viewer report
  scope shell                                   # Interactive session
  scope watch --viewer line                     # Recompute on a schedule`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $CONFIG_PATH or configs/config.yaml)")
	rootCmd.AddCommand(runCmd, shellCmd, watchCmd, kindsCmd)
}

func initConfig() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	path := cfgFile
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}

	var err error
	cfg, err = config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}
