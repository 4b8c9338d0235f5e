package impl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"serviceability/config"
	deliverycontext "serviceability/internal/delivery/context"
	"serviceability/internal/domain/entity"
	domainerrors "serviceability/internal/domain/errors"
	"serviceability/internal/domain/service"
	"serviceability/internal/infra/metrics"
	"serviceability/internal/serviceability"
	"serviceability/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// csvColumns is the fixed column contract of merchant import files.
var csvColumns = []string{"name", "business_category", "phone_number", "email", "pincodes"}

// utf8BOM is written ahead of the first cell by spreadsheet "CSV UTF-8" exports.
const utf8BOM = "\ufeff"

const (
	defaultIngestionWorkers    = 8
	defaultIngestionMaxRecords = 10000
)

// ingestionRecord is one merchant on its way through the pipeline. A record
// that failed before reaching the registry carries err.
type ingestionRecord struct {
	index   int
	line    int
	payload usecase.MerchantPayload
	err     error
}

// ingestionService implements the IngestionUsecase interface.
type ingestionService struct {
	registry   *serviceability.Registry
	publisher  service.EventPublisher
	metrics    *metrics.Metrics
	logger     *slog.Logger
	workers    int
	maxRecords int
}

// NewIngestionService is the constructor for ingestionService.
func NewIngestionService(
	registry *serviceability.Registry,
	publisher service.EventPublisher,
	metrics *metrics.Metrics,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.IngestionUsecase {
	srv := &ingestionService{
		registry:   registry,
		publisher:  publisher,
		metrics:    metrics,
		logger:     logger,
		workers:    defaultIngestionWorkers,
		maxRecords: defaultIngestionMaxRecords,
	}
	if cfg != nil && cfg.Ingestion != nil {
		if cfg.Ingestion.Workers > 0 {
			srv.workers = cfg.Ingestion.Workers
		}
		if cfg.Ingestion.MaxRecords > 0 {
			srv.maxRecords = cfg.Ingestion.MaxRecords
		}
	}

	return srv
}

func (srv *ingestionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Onboard converts the request into records and applies them on one path.
func (srv *ingestionService) Onboard(ctx context.Context, request usecase.OnboardingRequest) (*usecase.OnboardingReport, error) {
	records, err := srv.records(request)
	if err != nil {
		return nil, err
	}

	source := string(request.Kind)
	srv.metrics.OnboardingBatches.WithLabelValues(source).Observe(float64(len(records)))
	srv.log(ctx).Debug("Onboarding started",
		slog.String("kind", source),
		slog.String("file", request.FileName),
		slog.Int("records", len(records)),
	)

	outcomes := make([]usecase.RecordOutcome, len(records))
	if request.Kind == usecase.OnboardingSingle {
		outcome, err := srv.apply(ctx, source, records[0])
		if err != nil {
			return nil, err
		}
		outcomes[0] = outcome
	} else {
		srv.applyAll(ctx, source, records, outcomes)
	}

	report := buildReport(request.Kind, outcomes)
	srv.log(ctx).Info("Onboarding finished",
		slog.String("kind", source),
		slog.Int("total", report.Total),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

func (srv *ingestionService) records(request usecase.OnboardingRequest) ([]ingestionRecord, error) {
	switch request.Kind {
	case usecase.OnboardingSingle:
		if request.Merchant == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("merchant payload is required")
		}

		return []ingestionRecord{{payload: *request.Merchant}}, nil

	case usecase.OnboardingBulk:
		if len(request.Merchants) == 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("merchants must not be empty")
		}
		records := make([]ingestionRecord, 0, len(request.Merchants))
		for i, payload := range request.Merchants {
			record := ingestionRecord{index: i, payload: payload}
			if i >= srv.maxRecords {
				record.err = srv.limitError()
			}
			records = append(records, record)
		}

		return records, nil

	case usecase.OnboardingFile:
		if request.File == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("file is required")
		}
		records, err := srv.parseFile(request.File)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("file contains no merchant rows")
		}

		return records, nil

	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown onboarding kind %q", request.Kind))
	}
}

func (srv *ingestionService) limitError() error {
	return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("record limit of %d exceeded", srv.maxRecords))
}

// parseFile reads merchant rows from CSV text. Malformed rows become failed
// records; only an unreadable stream fails the whole file.
func (srv *ingestionService) parseFile(file io.Reader) ([]ingestionRecord, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records := make([]ingestionRecord, 0)
	first := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			first = false
			records = append(records, ingestionRecord{
				index: len(records),
				line:  parseErr.StartLine,
				err:   domainerrors.ErrValidationFailed.WithDetails(parseErr.Error()),
			})

			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read merchant file")
		}

		line, _ := reader.FieldPos(0)
		if first {
			first = false
			if len(row) > 0 {
				row[0] = strings.TrimPrefix(row[0], utf8BOM)
			}
			if isHeaderRow(row) {
				continue
			}
		}

		record := ingestionRecord{index: len(records), line: line}
		switch {
		case len(records) >= srv.maxRecords:
			record.err = srv.limitError()
		case len(row) != len(csvColumns):
			record.err = domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("expected %d columns (%s), got %d", len(csvColumns), strings.Join(csvColumns, ","), len(row)),
			)
		default:
			record.payload = usecase.MerchantPayload{
				Name:             strings.TrimSpace(row[0]),
				BusinessCategory: strings.TrimSpace(row[1]),
				PhoneNumber:      strings.TrimSpace(row[2]),
				Email:            strings.TrimSpace(row[3]),
				Pincodes:         entity.SplitPincodes(row[4]),
			}
		}
		records = append(records, record)
	}

	return records, nil
}

// isHeaderRow reports whether every cell names its column, ignoring case.
func isHeaderRow(row []string) bool {
	if len(row) != len(csvColumns) {
		return false
	}
	for i, cell := range row {
		if !strings.EqualFold(strings.TrimSpace(cell), csvColumns[i]) {
			return false
		}
	}

	return true
}

// applyAll applies records concurrently. A failing record never affects the
// others; every outcome lands at its record's position.
func (srv *ingestionService) applyAll(
	ctx context.Context,
	source string,
	records []ingestionRecord,
	outcomes []usecase.RecordOutcome,
) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(srv.workers)

	for i, record := range records {
		g.Go(func() error {
			outcomes[i], _ = srv.apply(gctx, source, record)

			return nil
		})
	}

	_ = g.Wait()
}

// apply creates one merchant with its pincodes as a single atomic step.
func (srv *ingestionService) apply(ctx context.Context, source string, record ingestionRecord) (usecase.RecordOutcome, error) {
	outcome := usecase.RecordOutcome{Index: record.index, Line: record.line}

	err := record.err
	var result *serviceability.CreateResult
	if err == nil {
		result, err = srv.registry.Create(ctx, serviceability.NewMerchant{
			Profile:  record.payload.Profile(),
			Pincodes: record.payload.Pincodes,
		})
	}
	srv.metrics.OnboardingRecords.WithLabelValues(source, metrics.Outcome(err)).Inc()

	if err != nil {
		outcome.Status = usecase.RecordFailed
		outcome.Error = toRecordError(err)
		srv.log(ctx).Debug("Onboarding record failed",
			slog.Int("index", record.index),
			slog.Int("line", record.line),
			slog.Any("error", err),
		)

		return outcome, err
	}

	id := result.Merchant.ID
	outcome.Status = usecase.RecordSucceeded
	outcome.MerchantID = &id
	outcome.RejectedPincodes = result.Rejected

	srv.publishOnboarded(ctx, source, result.Merchant)

	return outcome, nil
}

// publishOnboarded emits the onboarding event. Failures are logged and counted only.
func (srv *ingestionService) publishOnboarded(ctx context.Context, source string, merchant *entity.Merchant) {
	if srv.publisher == nil {
		return
	}

	event := &service.MerchantOnboardedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		MerchantID: merchant.ID.String(),
		Name:       merchant.Name,
		Email:      merchant.Email,
		Pincodes:   merchant.Pincodes,
		Source:     source,
	}
	if err := srv.publisher.PublishMerchantOnboarded(ctx, event); err != nil {
		srv.metrics.PublishFailures.Inc()
		srv.log(ctx).Warn("Failed to publish merchant onboarded event",
			slog.String("merchant_id", event.MerchantID),
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)
	}
}

func toRecordError(err error) *usecase.RecordError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		message := appErr.Message()
		if details := appErr.Details(); details != "" {
			message = details
		}

		return &usecase.RecordError{Code: appErr.ErrorCode(), Message: message}
	}

	return &usecase.RecordError{Code: domainerrors.ErrInternalError.ErrorCode(), Message: err.Error()}
}

func buildReport(kind usecase.OnboardingKind, outcomes []usecase.RecordOutcome) *usecase.OnboardingReport {
	report := &usecase.OnboardingReport{
		Kind:        kind,
		Total:       len(outcomes),
		MerchantIDs: make([]entity.MerchantID, 0, len(outcomes)),
		Records:     outcomes,
	}
	for _, outcome := range outcomes {
		if outcome.Status == usecase.RecordSucceeded {
			report.Succeeded++
			report.MerchantIDs = append(report.MerchantIDs, *outcome.MerchantID)
		} else {
			report.Failed++
		}
	}

	return report
}
