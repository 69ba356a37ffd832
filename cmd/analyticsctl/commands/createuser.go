package commands

import (
	"fmt"

	service "github.com/aaravmahajanofficial/ecommerce-analytics/internal/services"
	"github.com/spf13/cobra"
)

var (
	username string
	password string
)

var createUserCmd = &cobra.Command{
	Use:   "createuser",
	Short: "Create an API user that can request tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, repos, err := openRepository()
		if err != nil {
			return err
		}
		defer repos.Close()

		user, err := service.NewAuthService(repos.User, nil, cfg.Security).CreateUser(cmd.Context(), username, password)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Created user %q (id %d)\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	createUserCmd.Flags().StringVar(&username, "username", "", "Username")
	createUserCmd.Flags().StringVar(&password, "password", "", "Password (at least 8 characters)")
	_ = createUserCmd.MarkFlagRequired("username")
	_ = createUserCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(createUserCmd)
}
