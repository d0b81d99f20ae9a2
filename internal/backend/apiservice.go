package backend

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jo-hoe/visittrack/internal/common"
	"github.com/jo-hoe/visittrack/internal/core"
)

// photographField is the required multipart file field of a submission.
const photographField = "photograph"

// coordinateFields is validated separately because coordinates are
// optional but must be numeric lat/long values when present.
type coordinateFields struct {
	Latitude  string `validate:"omitempty,latitude"`
	Longitude string `validate:"omitempty,longitude"`
}

type APIService struct {
	config      *core.ServiceConfig
	coreService *core.CoreService
}

// SubmitResponse is the uniform envelope returned by the submission
// endpoint on every outcome.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func NewAPIService(config *core.ServiceConfig, coreService *core.CoreService) *APIService {
	return &APIService{
		config:      config,
		coreService: coreService,
	}
}

func (service *APIService) SetRoutes(e *echo.Echo) {
	e.POST("/api/submit", service.submitHandler)
	e.GET("/api/recent", service.recentHandler)

	// Probe route, skipped by the request logger
	e.GET("/probe", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "ok")
	})
}

// submitHandler ingests one multipart submission: photograph plus the
// visit text fields. All failures are converted to the JSON envelope
// here; nothing below this handler writes an HTTP response.
func (service *APIService) submitHandler(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile(photographField)
	if err != nil {
		slog.Warn("submitHandler: photograph file field missing",
			"status", http.StatusBadRequest, "error", err)
		return ctx.JSON(http.StatusBadRequest, SubmitResponse{
			Success: false,
			Message: "Photograph is required.",
		})
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		slog.Warn("submitHandler: failed to parse multipart form",
			"status", http.StatusBadRequest, "error", err)
		return ctx.JSON(http.StatusBadRequest, SubmitResponse{
			Success: false,
			Message: "Invalid form payload.",
		})
	}

	fields := &core.SubmissionFields{
		SRName:           ctx.FormValue("srName"),
		StoreName:        ctx.FormValue("storeName"),
		VisitType:        ctx.FormValue("visitType"),
		Category:         ctx.FormValue("category"),
		Phone:            ctx.FormValue("phone"),
		LeadType:         ctx.FormValue("leadType"),
		FollowUpDate:     ctx.FormValue("followUpDate"),
		Products:         form.Value["products"],
		OrderDetails:     ctx.FormValue("orderDetails"),
		LocationRecorded: ctx.FormValue("locationRecorded"),
		Latitude:         ctx.FormValue("latitude"),
		Longitude:        ctx.FormValue("longitude"),
		LocationLink:     ctx.FormValue("locationLink"),
		Remarks:          ctx.FormValue("remarks"),
	}

	coordinates := &coordinateFields{Latitude: fields.Latitude, Longitude: fields.Longitude}
	if err := ctx.Validate(coordinates); err != nil {
		slog.Warn("submitHandler: invalid coordinate values",
			"status", http.StatusBadRequest, "error", err)
		return ctx.JSON(http.StatusBadRequest, SubmitResponse{
			Success: false,
			Message: "Latitude and longitude must be valid coordinates.",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		slog.Error("submitHandler: failed to open uploaded photograph",
			"status", http.StatusInternalServerError, "error", err, "filename", fileHeader.Filename)
		return ctx.JSON(http.StatusInternalServerError, SubmitResponse{
			Success: false,
			Message: "Failed to read uploaded photograph.",
		})
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			slog.Error("submitHandler: failed to close uploaded photograph reader",
				"error", cerr, "filename", fileHeader.Filename)
		}
	}()

	record, err := service.coreService.SubmitVisit(
		ctx.Request().Context(), fields, src, fileHeader.Filename, service.baseURL(ctx))
	if err != nil {
		return service.submitFailure(ctx, err)
	}

	slog.Info("submission accepted",
		"store", record.StoreName, "sr", record.SRName, "image_url", record.ImageURL)
	return ctx.JSON(http.StatusOK, SubmitResponse{
		Success: true,
		Message: "Data submitted successfully!",
	})
}

func (service *APIService) submitFailure(ctx echo.Context, err error) error {
	var validationErr *common.ValidationError
	if errors.As(err, &validationErr) {
		slog.Warn("submitHandler: submission rejected",
			"status", http.StatusBadRequest, "error", err)
		return ctx.JSON(http.StatusBadRequest, SubmitResponse{
			Success: false,
			Message: validationErr.Message,
		})
	}

	slog.Error("submitHandler: submission failed",
		"status", http.StatusInternalServerError, "error", err)
	return ctx.JSON(http.StatusInternalServerError, SubmitResponse{
		Success: false,
		Message: err.Error(),
	})
}

func (service *APIService) recentHandler(ctx echo.Context) error {
	records, err := service.coreService.RecentSubmissions(ctx.Request().Context())
	if err != nil {
		slog.Error("recentHandler: failed to list recent submissions",
			"status", http.StatusInternalServerError, "error", err)
		return ctx.String(http.StatusInternalServerError, "Failed to list recent submissions")
	}
	return ctx.JSON(http.StatusOK, records)
}

// baseURL prefers the configured public base URL and otherwise derives
// scheme and host from the incoming request.
func (service *APIService) baseURL(ctx echo.Context) string {
	if service.config.PublicBaseURL != "" {
		return service.config.PublicBaseURL
	}
	return fmt.Sprintf("%s://%s", ctx.Scheme(), ctx.Request().Host)
}
