package handler

import (
	"io"
	"log/slog"
	"mime"
	"net/http"

	"serviceability/internal/delivery/api/response"
	"serviceability/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// csvFileField is the multipart field carrying the import file.
const csvFileField = "csv_file"

// OnboardingHandlerParams holds dependencies for OnboardingHandler, injected by Fx.
type OnboardingHandlerParams struct {
	fx.In

	IngestionUC usecase.IngestionUsecase
	Logger      *slog.Logger
}

// OnboardingHandler holds dependencies for merchant onboarding handlers
type OnboardingHandler struct {
	ingestionUC usecase.IngestionUsecase
	logger      *slog.Logger
}

// NewOnboardingHandler is the constructor for OnboardingHandler
func NewOnboardingHandler(params OnboardingHandlerParams) *OnboardingHandler {
	return &OnboardingHandler{
		ingestionUC: params.IngestionUC,
		logger:      params.Logger,
	}
}

// BulkOnboardingRequest represents the request body for structured bulk onboarding
type BulkOnboardingRequest struct {
	Merchants []usecase.MerchantPayload `json:"merchants" validate:"required,min=1"`
}

// CreateMerchant handles onboarding of one merchant
func (h *OnboardingHandler) CreateMerchant(c echo.Context) error {
	var req usecase.MerchantPayload
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant input")
	}

	report, err := h.ingestionUC.Onboard(c.Request().Context(), usecase.SingleOnboarding(req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, report.Records[0])
}

// BulkCreateMerchants handles onboarding of an ordered list of merchants.
// Per-record failures are reported in the body; the call itself succeeds.
func (h *OnboardingHandler) BulkCreateMerchants(c echo.Context) error {
	var req BulkOnboardingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk onboarding input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err.Error())
	}

	report, err := h.ingestionUC.Onboard(c.Request().Context(), usecase.BulkOnboarding(req.Merchants))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// ImportMerchants handles onboarding from a CSV document, sent either as the
// csv_file field of a multipart form or as a raw text/csv body.
func (h *OnboardingHandler) ImportMerchants(c echo.Context) error {
	mediaType, _, err := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
	if err != nil {
		return response.Error(c, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be multipart/form-data or text/csv", nil)
	}

	var (
		file     io.Reader
		fileName string
	)
	switch mediaType {
	case echo.MIMEMultipartForm:
		header, err := c.FormFile(csvFileField)
		if err != nil {
			return response.ValidationError(c, "multipart field "+csvFileField+" is required")
		}
		opened, err := header.Open()
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Unreadable upload")
		}
		defer opened.Close()

		file, fileName = opened, header.Filename

	case "text/csv", echo.MIMETextPlain, echo.MIMEOctetStream:
		file, fileName = c.Request().Body, "request-body"

	default:
		return response.Error(c, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "Content-Type must be multipart/form-data or text/csv", nil)
	}

	report, err := h.ingestionUC.Onboard(c.Request().Context(), usecase.FileOnboarding(fileName, file))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
