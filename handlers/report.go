package handlers

import (
	"net/http"
	"time"

	"restaurant-pos-api/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

const dateLayout = "2006-01-02"

// DailySales reports on a single calendar day; ?date=YYYY-MM-DD, default today.
func (h *ReportHandler) DailySales(c *gin.Context) {
	date := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.ParseInLocation(dateLayout, q, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	report, err := h.reports.DailySales(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "Report not found")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) ItemSales(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	rows, err := h.reports.ItemSales(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err, "Report not found")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) PaymentSummary(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	rows, err := h.reports.PaymentSummary(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err, "Report not found")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// parseDateRange reads the optional startDate/endDate query parameters. On a
// malformed value it writes the 400 response itself and returns ok=false.
func parseDateRange(c *gin.Context) (start, end *time.Time, ok bool) {
	if q := c.Query("startDate"); q != "" {
		parsed, err := time.ParseInLocation(dateLayout, q, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate, expected YYYY-MM-DD"})
			return nil, nil, false
		}
		start = &parsed
	}
	if q := c.Query("endDate"); q != "" {
		parsed, err := time.ParseInLocation(dateLayout, q, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate, expected YYYY-MM-DD"})
			return nil, nil, false
		}
		end = &parsed
	}
	return start, end, true
}
