package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "docassist/docs" // registers the OpenAPI spec with swag
	"docassist/internal/handler"
	"docassist/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Assistant *handler.AssistantHandler
	Export    *handler.ExportHandler
	Catalog   *handler.CatalogHandler
	Health    *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(h Handlers, allowedOrigins []string, log *zap.Logger) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Caller attestation is enforced by the hosting layer in front of these routes.
	assistant := v1.Group("/assistant")
	assistant.POST("/extract", h.Assistant.ExtractDocument)
	assistant.POST("/chat", h.Assistant.AnswerAboutDocument)
	assistant.POST("/analyze-for-filling", h.Assistant.AnalyzeForFilling)
	assistant.POST("/fill-field", h.Assistant.FillField)
	assistant.POST("/summarize", h.Assistant.SummarizeFilled)
	assistant.POST("/pictogram-help", h.Assistant.PictogramHelp)
	assistant.POST("/export", h.Export.Export)
	assistant.GET("/languages", h.Catalog.Languages)
	assistant.GET("/icons", h.Catalog.Icons)

	return r
}
