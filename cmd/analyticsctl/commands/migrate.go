package commands

import (
	"fmt"

	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, repos, err := openRepository()
		if err != nil {
			return err
		}
		defer repos.Close()

		if err := repository.Migrate(cmd.Context(), repos.DB); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
