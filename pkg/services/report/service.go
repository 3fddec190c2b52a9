package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/NBR-24/PothuHole/pkg/adapters"
	"github.com/NBR-24/PothuHole/pkg/models/domain"
	"github.com/NBR-24/PothuHole/pkg/observability"
	"github.com/NBR-24/PothuHole/pkg/services/geocode"
	reportstore "github.com/NBR-24/PothuHole/pkg/store/report"
)

// ErrInvalidSubmission marks Submit failures caused by the caller's input,
// as opposed to upstream failures such as a store write going wrong.
var ErrInvalidSubmission = errors.New("invalid submission")

// Service is the application surface for pothole reports: a single write
// operation and the aggregate read views built on top of one bulk read.
type Service interface {
	Submit(ctx context.Context, submission domain.NewReport) (string, error)
	List(ctx context.Context, criteria domain.QueryCriteria) (domain.ReportPage, error)
	Leaderboard(ctx context.Context) (domain.Summary, error)
	Get(ctx context.Context, id string) (*domain.Report, error)
}

type reportService struct {
	store    reportstore.Store
	geocoder geocode.Geocoder
	clock    clockwork.Clock
	metrics  *observability.Metrics
}

func NewService(
	store reportstore.Store,
	geocoder geocode.Geocoder,
	clock clockwork.Clock,
	metrics *observability.Metrics,
) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("report store is nil")
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &reportService{
		store:    store,
		geocoder: geocoder,
		clock:    clock,
		metrics:  metrics,
	}, nil
}

func (s *reportService) Submit(ctx context.Context, submission domain.NewReport) (string, error) {
	if submission.DangerLevel < domain.MinDangerLevel || submission.DangerLevel > domain.MaxDangerLevel {
		return "", fmt.Errorf("%w: danger level must be between %d and %d, got %d",
			ErrInvalidSubmission, domain.MinDangerLevel, domain.MaxDangerLevel, submission.DangerLevel)
	}
	if submission.Lat < -90 || submission.Lat > 90 {
		return "", fmt.Errorf("%w: latitude must be between -90 and 90, got %g", ErrInvalidSubmission, submission.Lat)
	}
	if submission.Lng < -180 || submission.Lng > 180 {
		return "", fmt.Errorf("%w: longitude must be between -180 and 180, got %g", ErrInvalidSubmission, submission.Lng)
	}

	report := domain.Report{
		ID:          uuid.NewString(),
		DangerLevel: submission.DangerLevel,
		Description: submission.Description,
		Location: domain.Location{
			Lat:      submission.Lat,
			Lng:      submission.Lng,
			District: domain.UnknownLocation,
		},
		ImageData: submission.ImageData,
		CreatedAt: s.clock.Now().UTC(),
	}
	s.resolveLocation(ctx, &report)

	if err := s.store.Add(ctx, adapters.MapDomainReportToStoreRecord(report)); err != nil {
		return "", fmt.Errorf("store report: %w", err)
	}

	if s.metrics != nil {
		s.metrics.ReportsSubmitted.Inc()
	}
	zerolog.Ctx(ctx).Info().
		Str("id", report.ID).
		Str("district", report.Location.District).
		Int("danger_level", report.DangerLevel).
		Msg("report submitted")

	return report.ID, nil
}

// resolveLocation enriches the report with reverse-geocoded place details.
// A geocoder failure never blocks submission; the report keeps the
// "Unknown Location" district.
func (s *reportService) resolveLocation(ctx context.Context, report *domain.Report) {
	if s.geocoder == nil {
		return
	}

	result, err := s.geocoder.ReverseGeocode(ctx, report.Location.Lat, report.Location.Lng)
	if err != nil {
		s.countGeocode("error")
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Float64("lat", report.Location.Lat).
			Float64("lng", report.Location.Lng).
			Msg("reverse geocoding failed")
		return
	}
	if result.District == "" && result.FormattedAddress == "" {
		s.countGeocode("empty")
		return
	}

	s.countGeocode("success")
	report.Location.FormattedAddress = result.FormattedAddress
	if result.District != "" {
		report.Location.District = result.District
	} else {
		report.Location.District = domain.UnknownDistrict
	}
}

func (s *reportService) countGeocode(outcome string) {
	if s.metrics != nil {
		s.metrics.GeocodeRequests.WithLabelValues(outcome).Inc()
	}
}

func (s *reportService) List(ctx context.Context, criteria domain.QueryCriteria) (domain.ReportPage, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return domain.ReportPage{}, fmt.Errorf("list reports: %w", err)
	}

	page, err := Query(Normalize(records), criteria)
	if err != nil {
		return domain.ReportPage{}, err
	}

	s.countView("list")
	return page, nil
}

func (s *reportService) Leaderboard(ctx context.Context) (domain.Summary, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("list reports: %w", err)
	}

	s.countView("leaderboard")
	return Summarize(Normalize(records)), nil
}

func (s *reportService) Get(ctx context.Context, id string) (*domain.Report, error) {
	record, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	report := adapters.MapStoreRecordToDomainReport(*record)
	s.countView("detail")
	return &report, nil
}

func (s *reportService) countView(view string) {
	if s.metrics != nil {
		s.metrics.ReportViews.WithLabelValues(view).Inc()
	}
}
