package frontend

import (
	"log/slog"
	"net/http"
	"text/template"

	"github.com/labstack/echo/v4"

	"github.com/jo-hoe/visittrack/internal/backend/storage"
	"github.com/jo-hoe/visittrack/internal/core"
)

const (
	MainPageName = "index.html"
	mimePNG      = "image/png"
)

type FrontendService struct {
	coreService *core.CoreService
	config      *core.ServiceConfig
}

func NewFrontendService(config *core.ServiceConfig, coreService *core.CoreService) *FrontendService {
	return &FrontendService{
		coreService: coreService,
		config:      config,
	}
}

// rootRedirectHandler redirects root path to index.html
func (service *FrontendService) rootRedirectHandler(ctx echo.Context) error {
	return ctx.Redirect(http.StatusMovedPermanently, "/"+MainPageName)
}

func (service *FrontendService) SetRoutes(e *echo.Echo) {
	// Create template renderer
	e.Renderer = &Template{
		templates: template.Must(template.New("").ParseFS(assetsFS, viewsPattern)),
	}

	e.GET("/", service.rootRedirectHandler) // Redirect root to index.html
	e.GET("/"+MainPageName, service.indexHandler)

	e.GET("/static/app.js", service.assetHandler("views/app.js", "application/javascript"))
	e.GET("/static/styles.css", service.assetHandler("views/styles.css", "text/css"))

	// Stored photographs, served read-only
	e.Static("/uploads", service.coreService.UploadDir())
	e.GET("/uploads/thumb/:name", service.thumbnailHandler)
}

func (service *FrontendService) indexHandler(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, MainPageName, nil)
}

func (service *FrontendService) assetHandler(path, contentType string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		data, err := assetsFS.ReadFile(path)
		if err != nil {
			slog.Error("assetHandler: failed to read embedded asset",
				"status", http.StatusInternalServerError, "asset", path, "error", err)
			return ctx.String(http.StatusInternalServerError, "Failed to load asset")
		}
		// Cache for 1 hour
		ctx.Response().Header().Set("Cache-Control", "public, max-age=3600")
		return ctx.Blob(http.StatusOK, contentType, data)
	}
}

func (service *FrontendService) thumbnailHandler(ctx echo.Context) error {
	name := ctx.Param("name")
	if name == "" {
		slog.Warn("thumbnailHandler: missing file name",
			"status", http.StatusBadRequest,
			"route", "/uploads/thumb/:name")
		return ctx.String(http.StatusBadRequest, "Missing file name")
	}

	photo, err := service.coreService.Photograph(name)
	if err != nil || len(photo) == 0 {
		slog.Warn("thumbnailHandler: photograph not available",
			"status", http.StatusNotFound, "file_name", name, "error", err)
		return ctx.String(http.StatusNotFound, "Photograph not available")
	}

	thumbnail, err := storage.Thumbnail(photo, service.coreService.ThumbnailWidth())
	if err != nil || len(thumbnail) == 0 {
		slog.Warn("thumbnailHandler: thumbnail not available",
			"status", http.StatusNotFound, "file_name", name, "error", err)
		return ctx.String(http.StatusNotFound, "Thumbnail not available")
	}

	return ctx.Blob(http.StatusOK, mimePNG, thumbnail)
}
