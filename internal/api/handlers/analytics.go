package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/errors"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	service "github.com/aaravmahajanofficial/ecommerce-analytics/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/utils/response"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	reportService    service.ReportService
	now              func() time.Time
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService, reportService service.ReportService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService, reportService: reportService, now: time.Now}
}

// SalesData godoc
//	@Summary		Per-product sales totals
//	@Description	Total quantity sold and revenue for every product that has been ordered.
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{array}		models.ProductSales		"Sales per product"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/sales-data/ [get]
func (h *AnalyticsHandler) SalesData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "sales data")
		if !ok {
			return
		}

		data, err := h.analyticsService.SalesData(r.Context())
		if err != nil {
			logger.Error("Failed to fetch sales data", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, data)
	}
}

// Overview godoc
//	@Summary		Analytics overview for a customer
//	@Description	Revenue by category, top products per country and churn rate for a date window, plus recommendations for the given customer. The window defaults to the current calendar year and the end date is inclusive.
//	@Tags			Analytics
//	@Produce		json
//	@Param			customer_id	query		int							true	"Customer ID"
//	@Param			start_date	query		string						false	"Window start (YYYY-MM-DD)"
//	@Param			end_date	query		string						false	"Window end, inclusive (YYYY-MM-DD)"
//	@Success		200			{object}	models.AnalyticsOverview	"Overview"
//	@Failure		400			{object}	response.ErrorResponse		"Invalid customer id or dates"
//	@Failure		401			{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse		"Customer not found"
//	@Failure		500			{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/analytics-overview/ [get]
func (h *AnalyticsHandler) Overview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "analytics overview")
		if !ok {
			return
		}

		query := r.URL.Query()

		customerID, err := strconv.ParseInt(query.Get("customer_id"), 10, 64)
		if err != nil || customerID <= 0 {
			logger.Warn("Invalid customer id", slog.String("customer_id", query.Get("customer_id")))
			response.Error(w, errors.AddValidationError("customer_id", "must be a positive integer"))
			return
		}

		window, err := h.window(query.Get("start_date"), query.Get("end_date"))
		if err != nil {
			logger.Warn("Invalid analytics window", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		overview, err := h.analyticsService.Overview(r.Context(), customerID, window)
		if err != nil {
			logger.Error("Failed to build analytics overview", slog.Int64("customerID", customerID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, overview)
	}
}

// window defaults to the current calendar year. The end date covers its
// whole day.
func (h *AnalyticsHandler) window(rawStart, rawEnd string) (models.DateRange, error) {

	year := h.now().UTC().Year()

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var err error

	if rawStart != "" {
		if start, err = utils.ParseDate("start_date", rawStart); err != nil {
			return models.DateRange{}, err
		}
	}

	if rawEnd != "" {
		if end, err = utils.ParseDate("end_date", rawEnd); err != nil {
			return models.DateRange{}, err
		}
	}

	return models.DateRange{Start: start, End: utils.EndOfDay(end)}, nil
}

// MonthlySalesReport godoc
//	@Summary		Monthly sales spreadsheet
//	@Description	Streams an xlsx workbook with every item sold in the month and a revenue total.
//	@Tags			Analytics
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Param			year	path		int						true	"Year"
//	@Param			month	path		int						true	"Month (1-12)"
//	@Success		200		{file}		file					"Workbook"
//	@Failure		400		{object}	response.ErrorResponse	"Invalid year or month"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"No sales in the month"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/generate-monthly-sales-report/{year}/{month}/ [get]
func (h *AnalyticsHandler) MonthlySalesReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger, ok := authenticated(w, r, "monthly sales report")
		if !ok {
			return
		}

		year, err := strconv.Atoi(r.PathValue("year"))
		if err != nil {
			response.Error(w, errors.AddValidationError("year", "must be an integer"))
			return
		}

		month, err := strconv.Atoi(r.PathValue("month"))
		if err != nil {
			response.Error(w, errors.AddValidationError("month", "must be an integer"))
			return
		}

		logger = logger.With(slog.Int("year", year), slog.Int("month", month))

		report, err := h.reportService.MonthlySalesReport(r.Context(), year, month)
		if err != nil {
			logger.Warn("Monthly report not generated", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Monthly report generated", slog.Int("bytes", len(report.Body)))
		response.Attachment(w, report.Filename, report.ContentType, report.Body)
	}
}
