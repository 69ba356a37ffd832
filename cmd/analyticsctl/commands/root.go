package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/config"
	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "analyticsctl",
	Short: "Administrative tasks for the e-commerce analytics service",
	Long: `analyticsctl runs maintenance tasks against the analytics database.

Examples:
  analyticsctl migrate --config config/local.yaml
  analyticsctl createuser --username analyst --password 's3cret-pass'
  analyticsctl report --year 2024 --month 3 --out march.xlsx
  analyticsctl churn --end 2024-12-31`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML config file (defaults to CONFIG_PATH)")
}

func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env, nil
	}

	return "", errors.New("config path is not set: pass --config or set CONFIG_PATH")
}

func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	path, err := resolveConfigPath(configPath)
	if err != nil {
		return nil, err
	}

	return config.LoadConfigFromPath(path)
}

// openRepository loads the config and connects to Postgres. Callers close
// the returned repository.
func openRepository() (*config.Config, *repository.Repository, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	repos, err := repository.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, repos, nil
}
