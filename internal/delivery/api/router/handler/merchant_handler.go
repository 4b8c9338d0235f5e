package handler

import (
	"log/slog"
	"net/http"

	"serviceability/internal/delivery/api/response"
	"serviceability/internal/domain/entity"
	"serviceability/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MerchantHandlerParams holds dependencies for MerchantHandler, injected by Fx.
type MerchantHandlerParams struct {
	fx.In

	MerchantUC usecase.MerchantUsecase
	Logger     *slog.Logger
}

// MerchantHandler holds dependencies for merchant management handlers
type MerchantHandler struct {
	merchantUC usecase.MerchantUsecase
	logger     *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler
func NewMerchantHandler(params MerchantHandlerParams) *MerchantHandler {
	return &MerchantHandler{
		merchantUC: params.MerchantUC,
		logger:     params.Logger,
	}
}

// PincodesRequest represents the request body for adding or removing pincodes.
// Pincodes may be a JSON array or a comma-separated string.
type PincodesRequest struct {
	Pincodes entity.PincodeList `json:"pincodes" validate:"required,min=1"`
}

// ListMerchants handles listing merchant summaries
func (h *MerchantHandler) ListMerchants(c echo.Context) error {
	merchants, err := h.merchantUC.ListMerchants(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, merchants)
}

// UpdateMerchant handles partial updates of the merchant's descriptive fields
func (h *MerchantHandler) UpdateMerchant(c echo.Context) error {
	id, err := entity.ParseMerchantID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	var req entity.MerchantPatch
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merchant input")
	}

	merchant, err := h.merchantUC.UpdateMerchant(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, merchant)
}

// DeleteMerchant handles merchant removal
func (h *MerchantHandler) DeleteMerchant(c echo.Context) error {
	id, err := entity.ParseMerchantID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	if err := h.merchantUC.DeleteMerchant(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id, "deleted": true})
}

// AddPincodes handles adding serviced pincodes
func (h *MerchantHandler) AddPincodes(c echo.Context) error {
	id, req, err := h.bindPincodes(c)
	if err != nil || req == nil {
		return err
	}

	output, err := h.merchantUC.AddPincodes(c.Request().Context(), id, req.Pincodes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// RemovePincodes handles removing serviced pincodes
func (h *MerchantHandler) RemovePincodes(c echo.Context) error {
	id, req, err := h.bindPincodes(c)
	if err != nil || req == nil {
		return err
	}

	output, err := h.merchantUC.RemovePincodes(c.Request().Context(), id, req.Pincodes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// bindPincodes reads the id and body of a pincode request. A nil request
// means the error response has already been written.
func (h *MerchantHandler) bindPincodes(c echo.Context) (entity.MerchantID, *PincodesRequest, error) {
	id, err := entity.ParseMerchantID(c.Param("id"))
	if err != nil {
		return 0, nil, response.BadRequest(c, "INVALID_ID", "Invalid merchant ID")
	}

	var req PincodesRequest
	if err := c.Bind(&req); err != nil {
		return 0, nil, response.BindingError(c, "INVALID_INPUT", "Invalid pincodes input")
	}
	if err := c.Validate(&req); err != nil {
		return 0, nil, response.ValidationError(c, err.Error())
	}

	return id, &req, nil
}
