package commands

import (
	"fmt"

	service "github.com/aaravmahajanofficial/ecommerce-analytics/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils"
	"github.com/spf13/cobra"
)

var churnEnd string

var churnCmd = &cobra.Command{
	Use:   "churn",
	Short: "Print the churn rate evaluated at a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		end, err := utils.ParseDate("end", churnEnd)
		if err != nil {
			return err
		}

		cfg, repos, err := openRepository()
		if err != nil {
			return err
		}
		defer repos.Close()

		analytics := service.NewAnalyticsService(repos.Sales, nil, cfg.Analytics.ChurnWindow)

		rate, err := analytics.ComputeChurnRate(cmd.Context(), end)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Churn rate at %s: %.2f%%\n", end.Format("2006-01-02"), rate)
		return nil
	},
}

func init() {
	churnCmd.Flags().StringVar(&churnEnd, "end", "", "Evaluation date (YYYY-MM-DD)")
	_ = churnCmd.MarkFlagRequired("end")

	rootCmd.AddCommand(churnCmd)
}
