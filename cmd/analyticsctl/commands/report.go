package commands

import (
	"fmt"
	"os"

	service "github.com/aaravmahajanofficial/ecommerce-analytics/internal/services"
	"github.com/spf13/cobra"
)

var (
	reportYear  int
	reportMonth int
	reportOut   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the monthly sales workbook to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, repos, err := openRepository()
		if err != nil {
			return err
		}
		defer repos.Close()

		report, err := service.NewReportService(repos.Sales).MonthlySalesReport(cmd.Context(), reportYear, reportMonth)
		if err != nil {
			return err
		}

		out := reportOut
		if out == "" {
			out = report.Filename
		}

		if err := os.WriteFile(out, report.Body, 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Report written to %s\n", out)
		return nil
	},
}

func init() {
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "Report year")
	reportCmd.Flags().IntVar(&reportMonth, "month", 0, "Report month (1-12)")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "Output file (defaults to the generated file name)")
	_ = reportCmd.MarkFlagRequired("year")
	_ = reportCmd.MarkFlagRequired("month")

	rootCmd.AddCommand(reportCmd)
}
