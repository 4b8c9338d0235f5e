package handler

import (
	"context"
	"net/http"
	"testing"

	"serviceability/internal/domain/entity"
	domainerrors "serviceability/internal/domain/errors"
	mockUsecase "serviceability/internal/mocks/usecase"
	"serviceability/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMerchantTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockMerchantUsecase) {
	merchantUC := mockUsecase.NewMockMerchantUsecase(t)
	h := NewMerchantHandler(MerchantHandlerParams{MerchantUC: merchantUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/merchants", h.ListMerchants)
	e.PATCH("/merchants/:id", h.UpdateMerchant)
	e.DELETE("/merchants/:id", h.DeleteMerchant)
	e.PUT("/merchants/:id/pincodes", h.AddPincodes)
	e.DELETE("/merchants/:id/pincodes", h.RemovePincodes)

	return e, merchantUC
}

func TestMerchantHandler_ListMerchants(t *testing.T) {
	e, merchantUC := newMerchantTestEcho(t)
	merchantUC.EXPECT().
		ListMerchants(mock.Anything).
		Return([]entity.MerchantSummary{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil)

	rec := serve(e, http.MethodGet, "/merchants", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []entity.MerchantSummary
	decodeData(t, rec, &summaries)
	assert.Equal(t, []entity.MerchantSummary{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, summaries)
}

func TestMerchantHandler_ListMerchants_RequestCanceled(t *testing.T) {
	e, merchantUC := newMerchantTestEcho(t)
	merchantUC.EXPECT().
		ListMerchants(mock.Anything).
		Return(nil, domainerrors.Canceled(context.Canceled))

	rec := serve(e, http.MethodGet, "/merchants", "", "")

	requireErrorCode(t, rec, domainerrors.StatusClientClosedRequest, "REQUEST_CANCELED")
	assert.Empty(t, rec.Header().Get(echo.HeaderRetryAfter))
}

func TestMerchantHandler_UpdateMerchant(t *testing.T) {
	e, merchantUC := newMerchantTestEcho(t)
	merchantUC.EXPECT().
		UpdateMerchant(mock.Anything, entity.MerchantID(7), mock.MatchedBy(func(patch *entity.MerchantPatch) bool {
			return patch.Name == nil && patch.Email != nil && *patch.Email == "a@b.example"
		})).
		Return(&entity.Merchant{ID: 7, Name: "Acme", Email: "a@b.example"}, nil)

	rec := serve(e, http.MethodPatch, "/merchants/7", echo.MIMEApplicationJSON, `{"email":"a@b.example"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var merchant entity.Merchant
	decodeData(t, rec, &merchant)
	assert.Equal(t, "a@b.example", merchant.Email)
}

func TestMerchantHandler_UpdateMerchant_ValidationDetails(t *testing.T) {
	e, merchantUC := newMerchantTestEcho(t)
	merchantUC.EXPECT().
		UpdateMerchant(mock.Anything, entity.MerchantID(7), mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("name must not be blank"))

	rec := serve(e, http.MethodPatch, "/merchants/7", echo.MIMEApplicationJSON, `{"name":" "}`)

	errInfo := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Equal(t, "name must not be blank", errInfo.Details)
}

func TestMerchantHandler_InvalidID(t *testing.T) {
	e, _ := newMerchantTestEcho(t)

	rec := serve(e, http.MethodDelete, "/merchants/abc", "", "")

	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_ID")
}

func TestMerchantHandler_DeleteMerchant(t *testing.T) {
	e, merchantUC := newMerchantTestEcho(t)
	merchantUC.EXPECT().DeleteMerchant(mock.Anything, entity.MerchantID(3)).Return(nil)

	rec := serve(e, http.MethodDelete, "/merchants/3", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMerchantHandler_DeleteMerchant_NotFound(t *testing.T) {
	e, merchantUC := newMerchantTestEcho(t)
	merchantUC.EXPECT().
		DeleteMerchant(mock.Anything, entity.MerchantID(3)).
		Return(domainerrors.ErrMerchantNotFound)

	rec := serve(e, http.MethodDelete, "/merchants/3", "", "")

	requireErrorCode(t, rec, http.StatusNotFound, "MERCHANT_NOT_FOUND")
}

func TestMerchantHandler_AddPincodes_CommaSeparated(t *testing.T) {
	e, merchantUC := newMerchantTestEcho(t)
	merchantUC.EXPECT().
		AddPincodes(mock.Anything, entity.MerchantID(5), []string{"110001", "110002"}).
		Return(&usecase.PincodeChangeOutput{
			Merchant: &entity.Merchant{ID: 5, Pincodes: []string{"110001", "110002"}},
			Applied:  []string{"110001", "110002"},
		}, nil)

	rec := serve(e, http.MethodPut, "/merchants/5/pincodes", echo.MIMEApplicationJSON, `{"pincodes":" 110001, ,110002 "}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var output usecase.PincodeChangeOutput
	decodeData(t, rec, &output)
	assert.Equal(t, []string{"110001", "110002"}, output.Applied)
}

func TestMerchantHandler_AddPincodes_MissingBody(t *testing.T) {
	e, _ := newMerchantTestEcho(t)

	rec := serve(e, http.MethodPut, "/merchants/5/pincodes", echo.MIMEApplicationJSON, `{"pincodes":[]}`)

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestMerchantHandler_RemovePincodes_DependencyUnavailable(t *testing.T) {
	e, merchantUC := newMerchantTestEcho(t)
	merchantUC.EXPECT().
		RemovePincodes(mock.Anything, entity.MerchantID(5), []string{"110001"}).
		Return(nil, domainerrors.ErrDependencyUnavailable.WithDetails("remove pincodes: timeout"))

	rec := serve(e, http.MethodDelete, "/merchants/5/pincodes", echo.MIMEApplicationJSON, `{"pincodes":["110001"]}`)

	errInfo := requireErrorCode(t, rec, http.StatusServiceUnavailable, "DEPENDENCY_UNAVAILABLE")
	assert.Nil(t, errInfo.Details)
	assert.Equal(t, "1", rec.Header().Get(echo.HeaderRetryAfter))
}
