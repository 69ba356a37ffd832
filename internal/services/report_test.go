package service_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/ecommerce-analytics/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestMonthWindow(t *testing.T) {
	t.Run("December rolls into the next year", func(t *testing.T) {
		start, end, err := service.MonthWindow(2023, 12)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), end)
	})

	for _, month := range []int{0, 13} {
		_, _, err := service.MonthWindow(2024, month)
		assertCode(t, err, appErrors.ErrCodeValidation)
	}
}

func TestMonthlySalesReport(t *testing.T) {
	ctx := t.Context()
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success - Workbook rows and total", func(t *testing.T) {
		sales := mocks.NewSalesRepository(t)
		sales.On("MonthlySales", mock.Anything, start, end).Return([]models.MonthlySalesLine{
			{ProductName: "Cable <USB-C> & Lamp", Quantity: 2, PriceAtTimeOfOrder: decimal.RequireFromString("10.50")},
			{ProductName: "Desk", Quantity: 1, PriceAtTimeOfOrder: decimal.RequireFromString("100")},
		}, nil).Once()

		report, err := service.NewReportService(sales).MonthlySalesReport(ctx, 2024, 3)

		require.NoError(t, err)
		assert.Equal(t, "monthly_sales_report_2024_03.xlsx", report.Filename)
		assert.Equal(t, service.XLSXContentType, report.ContentType)

		f, err := excelize.OpenReader(bytes.NewReader(report.Body))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Sales Report 2024-03")
		require.NoError(t, err)
		require.Len(t, rows, 4)

		assert.Equal(t, []string{"Product Name", "Quantity Sold", "Price at Time of Order", "Total Revenue"}, rows[0])
		assert.Equal(t, "Cable <USB-C> & Lamp", rows[1][0])
		assert.Equal(t, "2", rows[1][1])
		assert.Equal(t, "21", rows[1][3])
		assert.Equal(t, "Total Revenue", rows[3][0])
		assert.Equal(t, "121", rows[3][3])
	})

	t.Run("Failure - Empty month", func(t *testing.T) {
		sales := mocks.NewSalesRepository(t)
		sales.On("MonthlySales", mock.Anything, start, end).Return([]models.MonthlySalesLine{}, nil).Once()

		report, err := service.NewReportService(sales).MonthlySalesReport(ctx, 2024, 3)

		assert.Nil(t, report)
		assertCode(t, err, appErrors.ErrCodeNotFound)
		assert.EqualError(t, err, "No sales found for 2024-03")
	})

	t.Run("Failure - Invalid month skips the repository", func(t *testing.T) {
		sales := mocks.NewSalesRepository(t)

		_, err := service.NewReportService(sales).MonthlySalesReport(ctx, 2024, 13)

		assertCode(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Database error", func(t *testing.T) {
		sales := mocks.NewSalesRepository(t)
		sales.On("MonthlySales", mock.Anything, start, end).Return(nil, errors.New("timeout")).Once()

		_, err := service.NewReportService(sales).MonthlySalesReport(ctx, 2024, 3)

		assertCode(t, err, appErrors.ErrCodeDatabaseError)
	})
}
