package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/metrics"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var reportHeader = []any{"Product Name", "Quantity Sold", "Price at Time of Order", "Total Revenue"}

type ReportService interface {
	MonthlySalesReport(ctx context.Context, year, month int) (*models.MonthlyReport, error)
}

type reportService struct {
	sales repository.SalesRepository
}

func NewReportService(sales repository.SalesRepository) ReportService {
	return &reportService{sales: sales}
}

// MonthWindow returns the half-open range [first of month, first of next
// month) in UTC.
func MonthWindow(year, month int) (time.Time, time.Time, error) {

	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, errors.ValidationError("Month must be between 1 and 12")
	}

	if year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, errors.ValidationError("Year must be between 1 and 9999")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	return start, start.AddDate(0, 1, 0), nil
}

func ReportFilename(year, month int) string {
	return fmt.Sprintf("monthly_sales_report_%d_%02d.xlsx", year, month)
}

func (s *reportService) MonthlySalesReport(ctx context.Context, year, month int) (*models.MonthlyReport, error) {

	start, end, err := MonthWindow(year, month)
	if err != nil {
		return nil, err
	}

	lines, err := s.sales.MonthlySales(ctx, start, end)
	if err != nil {
		metrics.ReportsGenerated.WithLabelValues("error").Inc()
		return nil, errors.DatabaseError("Failed to load monthly sales").WithError(err)
	}

	if len(lines) == 0 {
		metrics.ReportsGenerated.WithLabelValues("empty").Inc()
		return nil, errors.NotFoundError(fmt.Sprintf("No sales found for %d-%02d", year, month))
	}

	body, err := s.render(fmt.Sprintf("Sales Report %d-%02d", year, month), lines)
	if err != nil {
		metrics.ReportsGenerated.WithLabelValues("error").Inc()
		return nil, errors.InternalError("Failed to build spreadsheet").WithError(err)
	}

	metrics.ReportsGenerated.WithLabelValues("ok").Inc()

	return &models.MonthlyReport{
		Filename:    ReportFilename(year, month),
		ContentType: XLSXContentType,
		Body:        body,
	}, nil
}

func (s *reportService) render(sheet string, lines []models.MonthlySalesLine) ([]byte, error) {

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheet, "A1", &reportHeader); err != nil {
		return nil, err
	}

	total := decimal.Zero

	for i, line := range lines {

		revenue := line.Revenue()
		total = total.Add(revenue)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		row := []any{
			line.ProductName,
			line.Quantity,
			line.PriceAtTimeOfOrder.InexactFloat64(),
			revenue.InexactFloat64(),
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	cell, err := excelize.CoordinatesToCellName(1, len(lines)+2)
	if err != nil {
		return nil, err
	}

	totalRow := []any{"Total Revenue", nil, nil, total.InexactFloat64()}
	if err := f.SetSheetRow(sheet, cell, &totalRow); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
