package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dbelyakov/finbook/internal/common"
	"github.com/dbelyakov/finbook/internal/server/export"
)

// handleExport streams an aggregated report for a year. The format query
// parameter selects csv (default) or xlsx.
func (s *HTTPServer) handleExport(c *gin.Context) {
	id, ok := pathID(c, "yearID")
	if !ok {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	year, rows, report, err := s.reports.ReportRows(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("report_%d.csv", year.Year)))
		c.Status(http.StatusOK)
		if err := export.WriteCSV(c.Writer, rows); err != nil {
			s.logger.Error(c.Request.Context(), "CSV export failed", "error", err.Error())
		}
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("report_%d.xlsx", year.Year)))
		c.Status(http.StatusOK)
		if err := export.WriteXLSX(c.Writer, year.Year, rows, report); err != nil {
			s.logger.Error(c.Request.Context(), "XLSX export failed", "error", err.Error())
		}
	}
}
