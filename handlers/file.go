package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filedepot/models"
	"filedepot/schemas"
	"filedepot/services"
)

type FileHandler struct {
	files *services.FileService
}

func NewFileHandler(files *services.FileService) *FileHandler {
	return &FileHandler{files: files}
}

// Upload accepts a multipart `file` field, validates its metadata and
// stores the payload in the blob column.
func (h *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	meta := schemas.UploadMeta{
		Name:     fileHeader.Filename,
		Mimetype: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
	}
	if err := meta.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		respondInternal(c, err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		respondInternal(c, err)
		return
	}

	// The declared size got the request past validation; the stored size
	// is the length of what was actually read.
	meta.Size = int64(len(data))
	if err := meta.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	file, err := h.files.Upload(c.Request.Context(), &meta, data)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "File uploaded successfully",
		"data": gin.H{
			"id":       file.ID,
			"name":     file.Name,
			"mimetype": file.Mimetype,
			"size":     file.Size,
		},
	})
}

// List returns every file, or a pagination envelope when page/limit/
// orderBy/direction are present. Both paths share shapeRecords, so the
// per-record fields cannot diverge.
func (h *FileHandler) List(c *gin.Context) {
	pagination, err := schemas.ParsePagination(c.Request.URL.Query())
	if err != nil {
		respondValidation(c, err)
		return
	}

	files, total, err := h.files.List(c.Request.Context(), pagination)
	if err != nil {
		respondInternal(c, err)
		return
	}

	records := shapeRecords(c, files)

	if pagination == nil {
		c.JSON(http.StatusOK, gin.H{
			"amount": len(records),
			"data":   records,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        records,
		"totalFiles":  total,
		"currentPage": pagination.Page,
		"limit":       pagination.Limit,
		"totalPages":  pagination.TotalPages(total),
	})
}

// Download serves the payload as an attachment.
func (h *FileHandler) Download(c *gin.Context) {
	h.serve(c, "attachment")
}

// Preview serves the payload inline.
func (h *FileHandler) Preview(c *gin.Context) {
	h.serve(c, "inline")
}

func (h *FileHandler) serve(c *gin.Context, disposition string) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	file, err := h.files.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not Found make sure to send correct id"})
			return
		}
		respondInternal(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, file.Name))
	c.Data(http.StatusOK, file.Mimetype, file.Data)
}

func (h *FileHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.files.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not Found make sure to send correct id"})
			return
		}
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("File deleted %d successfully", id),
	})
}

// parseID validates the :id path parameter as a positive integer and
// writes the 400 itself when it is not.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID. ID must be a positive integer."})
		return 0, false
	}
	return uint(id), true
}

func shapeRecords(c *gin.Context, files []models.File) []models.FileRecord {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	base := fmt.Sprintf("%s://%s/api/v1/file/manager", scheme, c.Request.Host)

	records := make([]models.FileRecord, 0, len(files))
	for _, f := range files {
		records = append(records, models.FileRecord{
			ID:          f.ID,
			Name:        f.Name,
			Mimetype:    f.Mimetype,
			Size:        f.Size,
			UploadedAt:  f.UploadedAt,
			DownloadURL: fmt.Sprintf("%s/download/%d", base, f.ID),
			PreviewURL:  fmt.Sprintf("%s/preview/%d", base, f.ID),
		})
	}
	return records
}
