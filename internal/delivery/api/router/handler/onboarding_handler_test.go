package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
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

const sampleCSV = "name,business_category,phone_number,email,pincodes\nAcme,grocery,,,\"110001,110002\"\n"

func newOnboardingTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockIngestionUsecase) {
	ingestionUC := mockUsecase.NewMockIngestionUsecase(t)
	h := NewOnboardingHandler(OnboardingHandlerParams{IngestionUC: ingestionUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/merchants", h.CreateMerchant)
	e.POST("/merchants/bulk", h.BulkCreateMerchants)
	e.POST("/merchants/bulk/file", h.ImportMerchants)

	return e, ingestionUC
}

func idPtr(id entity.MerchantID) *entity.MerchantID {
	return &id
}

// expectFileImport captures the uploaded document and reports one success.
func expectFileImport(ingestionUC *mockUsecase.MockIngestionUsecase, content *string, name *string) {
	ingestionUC.EXPECT().
		Onboard(mock.Anything, mock.MatchedBy(func(req usecase.OnboardingRequest) bool {
			return req.Kind == usecase.OnboardingFile
		})).
		RunAndReturn(func(_ context.Context, req usecase.OnboardingRequest) (*usecase.OnboardingReport, error) {
			data, err := io.ReadAll(req.File)
			if err != nil {
				return nil, err
			}
			*content = string(data)
			*name = req.FileName

			return &usecase.OnboardingReport{Kind: usecase.OnboardingFile, Total: 1, Succeeded: 1}, nil
		})
}

func TestOnboardingHandler_CreateMerchant(t *testing.T) {
	e, ingestionUC := newOnboardingTestEcho(t)
	ingestionUC.EXPECT().
		Onboard(mock.Anything, mock.MatchedBy(func(req usecase.OnboardingRequest) bool {
			return req.Kind == usecase.OnboardingSingle &&
				req.Merchant.Name == "Acme" &&
				assert.ObjectsAreEqual(entity.PincodeList{"110001", "110002"}, req.Merchant.Pincodes)
		})).
		Return(&usecase.OnboardingReport{
			Kind:      usecase.OnboardingSingle,
			Total:     1,
			Succeeded: 1,
			Records: []usecase.RecordOutcome{{
				Status:           usecase.RecordSucceeded,
				MerchantID:       idPtr(1),
				RejectedPincodes: []string{"abc"},
			}},
		}, nil)

	rec := serve(e, http.MethodPost, "/merchants", echo.MIMEApplicationJSON,
		`{"name":"Acme","pincodes":["110001","110002"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var outcome usecase.RecordOutcome
	decodeData(t, rec, &outcome)
	require.NotNil(t, outcome.MerchantID)
	assert.Equal(t, entity.MerchantID(1), *outcome.MerchantID)
	assert.Equal(t, []string{"abc"}, outcome.RejectedPincodes)
}

func TestOnboardingHandler_CreateMerchant_ValidationFailed(t *testing.T) {
	e, ingestionUC := newOnboardingTestEcho(t)
	ingestionUC.EXPECT().
		Onboard(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("name is required"))

	rec := serve(e, http.MethodPost, "/merchants", echo.MIMEApplicationJSON, `{"pincodes":"110001"}`)

	errInfo := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Equal(t, "name is required", errInfo.Details)
}

func TestOnboardingHandler_CreateMerchant_MalformedJSON(t *testing.T) {
	e, _ := newOnboardingTestEcho(t)

	rec := serve(e, http.MethodPost, "/merchants", echo.MIMEApplicationJSON, `{"name":`)

	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
}

func TestOnboardingHandler_BulkCreateMerchants(t *testing.T) {
	e, ingestionUC := newOnboardingTestEcho(t)
	ingestionUC.EXPECT().
		Onboard(mock.Anything, mock.MatchedBy(func(req usecase.OnboardingRequest) bool {
			return req.Kind == usecase.OnboardingBulk && len(req.Merchants) == 3
		})).
		Return(&usecase.OnboardingReport{Kind: usecase.OnboardingBulk, Total: 3, Succeeded: 2, Failed: 1}, nil)

	rec := serve(e, http.MethodPost, "/merchants/bulk", echo.MIMEApplicationJSON,
		`{"merchants":[{"name":"A"},{"pincodes":"110002"},{"name":"C"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var report usecase.OnboardingReport
	decodeData(t, rec, &report)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
}

func TestOnboardingHandler_BulkCreateMerchants_Empty(t *testing.T) {
	e, _ := newOnboardingTestEcho(t)

	rec := serve(e, http.MethodPost, "/merchants/bulk", echo.MIMEApplicationJSON, `{"merchants":[]}`)

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestOnboardingHandler_ImportMerchants_Multipart(t *testing.T) {
	e, ingestionUC := newOnboardingTestEcho(t)
	var content, name string
	expectFileImport(ingestionUC, &content, &name)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(csvFileField, "merchants.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/merchants/bulk/file", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, sampleCSV, content)
	assert.Equal(t, "merchants.csv", name)
}

func TestOnboardingHandler_ImportMerchants_RawCSV(t *testing.T) {
	e, ingestionUC := newOnboardingTestEcho(t)
	var content, name string
	expectFileImport(ingestionUC, &content, &name)

	rec := serve(e, http.MethodPost, "/merchants/bulk/file", "text/csv; charset=utf-8", sampleCSV)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, sampleCSV, content)
}

func TestOnboardingHandler_ImportMerchants_MissingField(t *testing.T) {
	e, _ := newOnboardingTestEcho(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("other", "value"))
	require.NoError(t, writer.Close())

	rec := serve(e, http.MethodPost, "/merchants/bulk/file", writer.FormDataContentType(), body.String())

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestOnboardingHandler_ImportMerchants_UnsupportedMediaType(t *testing.T) {
	e, _ := newOnboardingTestEcho(t)

	rec := serve(e, http.MethodPost, "/merchants/bulk/file", echo.MIMEApplicationJSON, `{}`)

	requireErrorCode(t, rec, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE")
}
