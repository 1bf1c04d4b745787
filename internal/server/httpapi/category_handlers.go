package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dbelyakov/finbook/internal/common"
	"github.com/dbelyakov/finbook/internal/server/models"
)

type createCategoryRequest struct {
	Name             string `json:"name"`
	ShortDescription string `json:"short_description"`
}

func (s *HTTPServer) handleListCategories(c *gin.Context) {
	categories, err := s.categories.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func (s *HTTPServer) handleCreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	category, err := s.categories.Create(c.Request.Context(), req.Name, req.ShortDescription)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "data": category})
}

func (s *HTTPServer) handleUpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "categoryID")
	if !ok {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	var patch models.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	category, err := s.categories.Update(c.Request.Context(), id, patch)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "data": category})
}

func (s *HTTPServer) handleDeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "categoryID")
	if !ok {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	if err := s.categories.Delete(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
