package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dbelyakov/finbook/internal/common"
	"github.com/dbelyakov/finbook/internal/server/models"
)

type createEntryRequest struct {
	Revenue    float64 `json:"revenue"`
	Cost       float64 `json:"cost"`
	Date       int64   `json:"date"`
	FileID     *int64  `json:"file_id"`
	CategoryID int64   `json:"category_id"`
}

// handleListEntries returns the entries of a year. Deliberately no check
// that the year still exists: entries orphaned by a year deletion stay
// listable.
func (s *HTTPServer) handleListEntries(c *gin.Context) {
	yearID, ok := pathID(c, "yearID")
	if !ok {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	entries, err := s.entries.ListByYear(c.Request.Context(), yearID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (s *HTTPServer) handleCreateEntry(c *gin.Context) {
	yearID, ok := pathID(c, "yearID")
	if !ok {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	entry := &models.Entry{
		Revenue:    req.Revenue,
		Cost:       req.Cost,
		Date:       req.Date,
		FileID:     req.FileID,
		YearID:     yearID,
		CategoryID: req.CategoryID,
	}

	created, err := s.entries.Create(c.Request.Context(), entry)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Entry created successfully", "data": created})
}

func (s *HTTPServer) handleGetEntry(c *gin.Context) {
	entryID, ok := pathID(c, "entryID")
	if !ok {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	entry, err := s.entries.Get(c.Request.Context(), entryID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entry})
}

func (s *HTTPServer) handleUpdateEntry(c *gin.Context) {
	entryID, ok := pathID(c, "entryID")
	if !ok {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	var patch models.EntryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	updated, err := s.entries.Update(c.Request.Context(), entryID, patch)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry updated successfully", "data": updated})
}

func (s *HTTPServer) handleDeleteEntry(c *gin.Context) {
	entryID, ok := pathID(c, "entryID")
	if !ok {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	if err := s.entries.Delete(c.Request.Context(), entryID); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}
