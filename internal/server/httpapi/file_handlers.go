package httpapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dbelyakov/finbook/internal/common"
)

func (s *HTTPServer) handleListFiles(c *gin.Context) {
	files, err := s.files.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": files})
}

// handleUploadFile accepts a multipart upload. The declared content type is
// checked before anything is written; only PNG, JPEG, and PDF pass.
func (s *HTTPServer) handleUploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	src, err := header.Open()
	if err != nil {
		s.writeError(c, common.ErrorBadInput)
		return
	}
	defer src.Close()

	mimeType := header.Header.Get("Content-Type")

	file, err := s.files.Upload(c.Request.Context(), currentUser(c), header.Filename, mimeType, src)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "File uploaded", "file_id", file.ID, "name", file.Name)
	c.JSON(http.StatusCreated, gin.H{"message": "File uploaded successfully", "data": file})
}

func (s *HTTPServer) handleDownloadFile(c *gin.Context) {
	id, ok := pathID(c, "fileID")
	if !ok {
		s.writeError(c, common.ErrorBadInput)
		return
	}

	file, rc, err := s.files.Open(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Type", file.MimeType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}
