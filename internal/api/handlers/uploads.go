// internal/api/handlers/uploads.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobboard-api/internal/transport/dto"
	"jobboard-api/internal/uploads"

	"github.com/gin-gonic/gin"
)

// maxResumeSize caps resume uploads at 10 MiB.
const maxResumeSize = 10 << 20

// UploadHandler holds dependencies for resume uploads.
type UploadHandler struct {
	uploader uploads.ResumeUploader
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploader uploads.ResumeUploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// UploadResume accepts a multipart resume file, streams it to the blob store
// and returns the durable URL to use as the application's resume link. An
// upload failure blocks only this step; the caller retries it independently
// of the rest of the form.
func (h *UploadHandler) UploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing resume file: " + err.Error()})
		return
	}
	if fileHeader.Size > maxResumeSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume file exceeds the 10 MB limit"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := uploads.ValidateContentType(contentType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume must be a PDF, DOC or DOCX file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("UploadResume: Error opening multipart file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read resume file"})
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), contentType, fileHeader.Size, file,
		func(written, total int64) {
			log.Printf("UploadResume: %s %d/%d bytes", fileHeader.Filename, written, total)
		})
	if err != nil {
		if errors.Is(err, uploads.ErrUnsupportedType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Resume must be a PDF, DOC or DOCX file"})
		} else {
			log.Printf("UploadResume: Upload failed for %s: %v", fileHeader.Filename, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Resume upload failed, please retry"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ResumeUploadResponse{ResumeLink: url})
}
