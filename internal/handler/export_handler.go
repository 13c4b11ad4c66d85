package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docassist/internal/domain"
	"docassist/internal/export"
	"docassist/internal/service"
)

// ExportHandler serves filled field sheets.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export handles POST /api/v1/assistant/export
// @Summary Export filled fields
// @Description Render filled fields as a CSV or XLSX download, or store it and return a presigned URL when store=true
// @Tags assistant
// @Accept json
// @Produce octet-stream
// @Produce json
// @Param format query string false "csv or xlsx" default(csv)
// @Param store query bool false "Upload to object storage instead of downloading" default(false)
// @Param body body ExportRequest true "Fields to export"
// @Success 200 {file} file "Field sheet"
// @Success 201 {object} service.StoredExport "Stored sheet"
// @Failure 400 {object} ErrorResponseBody "Missing fields or unsupported format"
// @Failure 501 {object} ErrorResponseBody "Export storage not configured"
// @Router /assistant/export [post]
func (h *ExportHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", "csv"))
	if err != nil {
		HandleError(c, err)
		return
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleError(c, &domain.ValidationError{Field: "body", Message: "Request body must be a JSON object."})
		return
	}

	if store, _ := strconv.ParseBool(c.Query("store")); store {
		stored, err := h.exportService.Store(c.Request.Context(), req.FilledFields, format, req.Name)
		if err != nil {
			HandleError(c, err)
			return
		}
		c.JSON(http.StatusCreated, stored)
		return
	}

	file, err := h.exportService.Render(req.FilledFields, format, req.Name)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
