package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dbelyakov/finbook/internal/common"
)

// pathID parses a numeric path parameter; 0 and false when it is not a
// valid id.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type createYearRequest struct {
	Year int `json:"year"`
}

func (s *HTTPServer) handleListYears(c *gin.Context) {
	years, err := s.years.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": years})
}

func (s *HTTPServer) handleCreateYear(c *gin.Context) {
	var req createYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	year, err := s.years.Create(c.Request.Context(), req.Year)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Year created", "year", year.Year)
	c.JSON(http.StatusCreated, gin.H{"message": "Year created successfully", "data": year})
}

func (s *HTTPServer) handleDeleteYear(c *gin.Context) {
	id, ok := pathID(c, "yearID")
	if !ok {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	if err := s.years.Delete(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Year deleted successfully"})
}

func (s *HTTPServer) handleProfit(c *gin.Context) {
	id, ok := pathID(c, "yearID")
	if !ok {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	report, err := s.reports.ComputeProfit(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
