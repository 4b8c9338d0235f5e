package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"serviceability/internal/delivery/api/response"
	"serviceability/internal/domain/entity"
	"serviceability/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServiceabilityHandlerParams holds dependencies for ServiceabilityHandler, injected by Fx.
type ServiceabilityHandlerParams struct {
	fx.In

	QueryUC usecase.QueryUsecase
	Logger  *slog.Logger
}

// ServiceabilityHandler serves pincode lookups
type ServiceabilityHandler struct {
	queryUC usecase.QueryUsecase
	logger  *slog.Logger
}

// NewServiceabilityHandler is the constructor for ServiceabilityHandler
func NewServiceabilityHandler(params ServiceabilityHandlerParams) *ServiceabilityHandler {
	return &ServiceabilityHandler{
		queryUC: params.QueryUC,
		logger:  params.Logger,
	}
}

// QueryServiceability handles GET /serviceability?pincodes=110001,110002[&detail=true].
// The pincodes parameter may also be repeated.
func (h *ServiceabilityHandler) QueryServiceability(c echo.Context) error {
	pincodes := make([]string, 0)
	for _, value := range c.QueryParams()["pincodes"] {
		pincodes = append(pincodes, entity.SplitPincodes(value)...)
	}
	if len(pincodes) == 0 {
		return response.ValidationError(c, "pincodes query parameter is required")
	}

	detail := false
	if raw := c.QueryParam("detail"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.ValidationError(c, "detail must be a boolean")
		}
		detail = parsed
	}

	ctx := c.Request().Context()
	if detail {
		resolved, err := h.queryUC.ResolveServiceability(ctx, pincodes)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, resolved)
	}

	raw, err := h.queryUC.Query(ctx, pincodes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, raw)
}

// GetMerchantDetail handles retrieving one merchant with its pincodes
func (h *ServiceabilityHandler) GetMerchantDetail(c echo.Context) error {
	id, err := entity.ParseMerchantID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	merchant, err := h.queryUC.Detail(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, merchant)
}
