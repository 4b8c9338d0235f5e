package impl

import (
	"context"
	"strings"
	"testing"
	"testing/iotest"

	"serviceability/internal/domain/entity"
	domainerrors "serviceability/internal/domain/errors"
	"serviceability/internal/domain/service"
	"serviceability/internal/errors"
	"serviceability/internal/infra/metrics"
	mockService "serviceability/internal/mocks/service"
	"serviceability/internal/serviceability"
	"serviceability/internal/usecase"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ingestionServiceFixtures holds all test dependencies for ingestion service tests.
type ingestionServiceFixtures struct {
	service   usecase.IngestionUsecase
	registry  *serviceability.Registry
	publisher *mockService.MockEventPublisher
	metrics   *metrics.Metrics
}

// createTestIngestionService uses one worker so ids follow input order.
func createTestIngestionService(t *testing.T, maxRecords int) ingestionServiceFixtures {
	registry := newTestRegistry(t)
	publisher := mockService.NewMockEventPublisher(t)
	m := newTestMetrics()

	return ingestionServiceFixtures{
		service:   NewIngestionService(registry, publisher, m, newIngestionConfig(1, maxRecords), newDiscardLogger()),
		registry:  registry,
		publisher: publisher,
		metrics:   m,
	}
}

func (fx ingestionServiceFixtures) expectPublish() {
	fx.publisher.EXPECT().
		PublishMerchantOnboarded(mock.Anything, mock.AnythingOfType("*service.MerchantOnboardedEvent")).
		Return(nil)
}

func idPtr(id entity.MerchantID) *entity.MerchantID {
	return &id
}

func TestIngestionService_Single(t *testing.T) {
	fx := createTestIngestionService(t, 0)

	var published *service.MerchantOnboardedEvent
	fx.publisher.EXPECT().
		PublishMerchantOnboarded(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.MerchantOnboardedEvent) {
			published = event
		}).
		Return(nil).
		Once()

	report, err := fx.service.Onboard(context.Background(), usecase.SingleOnboarding(usecase.MerchantPayload{
		Name:     "Acme Foods",
		Email:    "orders@acme.example",
		Pincodes: entity.PincodeList{"110001", "11O001"},
	}))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, []entity.MerchantID{1}, report.MerchantIDs)
	assert.Equal(t, usecase.RecordOutcome{
		Index:            0,
		Status:           usecase.RecordSucceeded,
		MerchantID:       idPtr(1),
		RejectedPincodes: []string{"11O001"},
	}, report.Records[0])

	require.NotNil(t, published)
	assert.Equal(t, "1", published.MerchantID)
	assert.Equal(t, "single", published.Source)
	assert.Equal(t, []string{"110001"}, published.Pincodes)
	assert.NotEmpty(t, published.EventID)

	assert.Equal(t, map[string][]entity.MerchantID{"110001": {1}}, fx.registry.Query([]string{"110001"}))
}

func TestIngestionService_Single_InvalidPropagates(t *testing.T) {
	fx := createTestIngestionService(t, 0)

	report, err := fx.service.Onboard(context.Background(), usecase.SingleOnboarding(usecase.MerchantPayload{
		Pincodes: entity.PincodeList{"110001"},
	}))

	require.Error(t, err)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Empty(t, fx.registry.List())
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.OnboardingRecords.WithLabelValues("single", metrics.OutcomeFailure)))
}

func TestIngestionService_Single_MissingPayload(t *testing.T) {
	fx := createTestIngestionService(t, 0)

	_, err := fx.service.Onboard(context.Background(), usecase.OnboardingRequest{Kind: usecase.OnboardingSingle})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestIngestionService_UnknownKind(t *testing.T) {
	fx := createTestIngestionService(t, 0)

	_, err := fx.service.Onboard(context.Background(), usecase.OnboardingRequest{Kind: "fax"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestIngestionService_Bulk_IsolatesFailedRecord(t *testing.T) {
	fx := createTestIngestionService(t, 0)
	fx.expectPublish()

	report, err := fx.service.Onboard(context.Background(), usecase.BulkOnboarding([]usecase.MerchantPayload{
		{Name: "A", Pincodes: entity.PincodeList{"110001"}},
		{Pincodes: entity.PincodeList{"110002"}},
		{Name: "C", Pincodes: entity.PincodeList{"110001", "110003"}},
	}))
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, []entity.MerchantID{1, 2}, report.MerchantIDs)

	require.Len(t, report.Records, 3)
	assert.Equal(t, usecase.RecordSucceeded, report.Records[0].Status)
	assert.Equal(t, usecase.RecordFailed, report.Records[1].Status)
	assert.Equal(t, 1, report.Records[1].Index)
	assert.Equal(t, "VALIDATION_FAILED", report.Records[1].Error.Code)
	assert.Contains(t, report.Records[1].Error.Message, "name is required")
	assert.Equal(t, usecase.RecordSucceeded, report.Records[2].Status)

	assert.Equal(t, map[string][]entity.MerchantID{
		"110001": {1, 2},
		"110002": {},
		"110003": {2},
	}, fx.registry.Query([]string{"110001", "110002", "110003"}))
	assert.Equal(t, 2.0, testutil.ToFloat64(fx.metrics.OnboardingRecords.WithLabelValues("bulk", metrics.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.OnboardingRecords.WithLabelValues("bulk", metrics.OutcomeFailure)))
}

func TestIngestionService_Bulk_Empty(t *testing.T) {
	fx := createTestIngestionService(t, 0)

	_, err := fx.service.Onboard(context.Background(), usecase.BulkOnboarding(nil))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestIngestionService_Bulk_RecordLimit(t *testing.T) {
	fx := createTestIngestionService(t, 2)
	fx.expectPublish()

	report, err := fx.service.Onboard(context.Background(), usecase.BulkOnboarding([]usecase.MerchantPayload{
		{Name: "A"},
		{Name: "B"},
		{Name: "C"},
	}))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Contains(t, report.Records[2].Error.Message, "record limit of 2 exceeded")
	assert.Len(t, fx.registry.List(), 2)
}

func TestIngestionService_Bulk_ConcurrentWorkers(t *testing.T) {
	registry := newTestRegistry(t)
	srv := NewIngestionService(registry, nil, newTestMetrics(), newIngestionConfig(8, 0), newDiscardLogger())

	payloads := make([]usecase.MerchantPayload, 40)
	for i := range payloads {
		payloads[i] = usecase.MerchantPayload{Name: "Merchant", Pincodes: entity.PincodeList{"110001"}}
	}

	report, err := srv.Onboard(context.Background(), usecase.BulkOnboarding(payloads))
	require.NoError(t, err)

	assert.Equal(t, 40, report.Succeeded)
	assert.ElementsMatch(t, report.MerchantIDs, registry.Query([]string{"110001"})["110001"])
	for i, record := range report.Records {
		assert.Equal(t, i, record.Index)
	}
}

func TestIngestionService_PublishFailureDoesNotFailRecord(t *testing.T) {
	fx := createTestIngestionService(t, 0)
	fx.publisher.EXPECT().
		PublishMerchantOnboarded(mock.Anything, mock.Anything).
		Return(errors.New("broker down"))

	report, err := fx.service.Onboard(context.Background(), usecase.SingleOnboarding(usecase.MerchantPayload{Name: "A"}))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.PublishFailures))
}

func TestIngestionService_File(t *testing.T) {
	fx := createTestIngestionService(t, 0)
	fx.expectPublish()

	file := strings.Join([]string{
		"Name,business_category,phone_number,email,pincodes",
		`Acme Foods,grocery,9876543210,orders@acme.example,"110001, 110002"`,
		",grocery,9876543210,,110003",
		"Too,Few,Columns",
		"Beta Mart,grocery,,,400001",
	}, "\n")

	report, err := fx.service.Onboard(context.Background(), usecase.FileOnboarding("merchants.csv", strings.NewReader(file)))
	require.NoError(t, err)

	assert.Equal(t, usecase.OnboardingFile, report.Kind)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, []entity.MerchantID{1, 2}, report.MerchantIDs)

	assert.Equal(t, 2, report.Records[0].Line)
	assert.Equal(t, usecase.RecordSucceeded, report.Records[0].Status)
	assert.Equal(t, 3, report.Records[1].Line)
	assert.Contains(t, report.Records[1].Error.Message, "name is required")
	assert.Equal(t, 4, report.Records[2].Line)
	assert.Contains(t, report.Records[2].Error.Message, "expected 5 columns")
	assert.Equal(t, 5, report.Records[3].Line)

	merchant, err := fx.registry.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"110001", "110002"}, merchant.Pincodes)
	assert.Equal(t, "orders@acme.example", merchant.Email)
}

func TestIngestionService_File_WithoutHeader(t *testing.T) {
	fx := createTestIngestionService(t, 0)
	fx.expectPublish()

	report, err := fx.service.Onboard(context.Background(),
		usecase.FileOnboarding("merchants.csv", strings.NewReader("Acme Foods,grocery,,,110001\n")))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Records[0].Line)
}

func TestIngestionService_File_BOMHeader(t *testing.T) {
	fx := createTestIngestionService(t, 0)
	fx.expectPublish()

	file := "\ufeffname,business_category,phone_number,email,pincodes\n" +
		"Acme,grocery,1,a@x.com,\"110001, 110002\"\n"

	report, err := fx.service.Onboard(context.Background(), usecase.FileOnboarding("f.csv", strings.NewReader(file)))
	require.NoError(t, err)

	require.Equal(t, 1, report.Total)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 0, report.Records[0].Index)
	assert.Equal(t, 2, report.Records[0].Line)
}

func TestIngestionService_File_BOMWithoutHeader(t *testing.T) {
	fx := createTestIngestionService(t, 0)
	fx.expectPublish()

	report, err := fx.service.Onboard(context.Background(),
		usecase.FileOnboarding("f.csv", strings.NewReader("\ufeffAcme,grocery,,,110001\n")))
	require.NoError(t, err)

	require.Equal(t, 1, report.Succeeded)
	merchant, err := fx.registry.Get(*report.Records[0].MerchantID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", merchant.Name)
}

func TestIngestionService_File_MerchantNamedName(t *testing.T) {
	fx := createTestIngestionService(t, 0)
	fx.expectPublish()

	report, err := fx.service.Onboard(context.Background(),
		usecase.FileOnboarding("f.csv", strings.NewReader("Name,grocery,,,110001\nBeta,grocery,,,110002\n")))
	require.NoError(t, err)

	require.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Records[0].Line)

	merchant, err := fx.registry.Get(*report.Records[0].MerchantID)
	require.NoError(t, err)
	assert.Equal(t, "Name", merchant.Name)
}

func TestIngestionService_File_HeaderOnly(t *testing.T) {
	fx := createTestIngestionService(t, 0)

	_, err := fx.service.Onboard(context.Background(),
		usecase.FileOnboarding("merchants.csv", strings.NewReader("name,business_category,phone_number,email,pincodes\n")))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestIngestionService_File_Unreadable(t *testing.T) {
	fx := createTestIngestionService(t, 0)

	_, err := fx.service.Onboard(context.Background(),
		usecase.FileOnboarding("merchants.csv", iotest.ErrReader(errors.New("connection reset"))))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Empty(t, fx.registry.List())
}

func TestIngestionService_File_Missing(t *testing.T) {
	fx := createTestIngestionService(t, 0)

	_, err := fx.service.Onboard(context.Background(), usecase.OnboardingRequest{Kind: usecase.OnboardingFile})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
