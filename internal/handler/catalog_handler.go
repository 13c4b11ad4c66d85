package handler

import (
	"github.com/gin-gonic/gin"

	"docassist/internal/domain"
	"docassist/internal/prompt"
)

// CatalogHandler exposes the static tables the mobile client renders.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Languages handles GET /api/v1/assistant/languages
// @Summary List supported languages
// @Tags catalog
// @Produce json
// @Success 200 {object} Response{data=[]domain.Language}
// @Router /assistant/languages [get]
func (h *CatalogHandler) Languages(c *gin.Context) {
	RespondOK(c, domain.SupportedLanguages())
}

// Icons handles GET /api/v1/assistant/icons
// @Summary List icon names the assistant may suggest
// @Tags catalog
// @Produce json
// @Success 200 {object} Response{data=[]string}
// @Router /assistant/icons [get]
func (h *CatalogHandler) Icons(c *gin.Context) {
	RespondOK(c, prompt.IconVocabulary)
}
