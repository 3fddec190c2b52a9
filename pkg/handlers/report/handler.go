package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/NBR-24/PothuHole/pkg/adapters"
	"github.com/NBR-24/PothuHole/pkg/models/api"
	"github.com/NBR-24/PothuHole/pkg/models/domain"
	reportsvc "github.com/NBR-24/PothuHole/pkg/services/report"
	reportstore "github.com/NBR-24/PothuHole/pkg/store/report"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// Compressed client-side before upload; anything bigger is rejected.
	maxImageBytes = 1 << 20
)

type Handler struct {
	reports reportsvc.Service
}

func NewHandler(reports reportsvc.Service) *Handler {
	return &Handler{reports: reports}
}

func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.ImageData) > maxImageBytes {
		http.Error(w, "image data too large", http.StatusBadRequest)
		return
	}

	id, err := h.reports.Submit(ctx, domain.NewReport{
		DangerLevel: req.DangerLevel,
		Description: req.Description,
		Lat:         req.Lat,
		Lng:         req.Lng,
		ImageData:   req.ImageData,
	})
	if errors.Is(err, reportsvc.ErrInvalidSubmission) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("failed to submit report")
		http.Error(w, "failed to submit report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(api.CreateReportResponse{ID: id}); err != nil {
		logger.Error().Err(err).Msg("failed to encode create response")
	}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	criteria, err := parseCriteria(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.reports.List(ctx, criteria)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list reports")
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportPageDomainToApi(page)); err != nil {
		logger.Error().Err(err).Msg("failed to encode report page")
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	id := chi.URLParam(r, "id")

	report, err := h.reports.Get(ctx, id)
	if errors.Is(err, reportstore.ErrNotFound) {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to get report")
		http.Error(w, "failed to get report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(*report)); err != nil {
		logger.Error().Err(err).Str("id", id).Msg("failed to encode report")
	}
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	summary, err := h.reports.Leaderboard(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build leaderboard")
		http.Error(w, "failed to build leaderboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapSummaryDomainToApi(summary)); err != nil {
		logger.Error().Err(err).Msg("failed to encode leaderboard")
	}
}

func parseCriteria(r *http.Request) (domain.QueryCriteria, error) {
	q := r.URL.Query()

	criteria := domain.QueryCriteria{
		Search:   q.Get("search"),
		SortBy:   domain.SortNewest,
		Page:     1,
		PageSize: defaultPageSize,
	}

	switch sort := q.Get("sort"); sort {
	case "", string(domain.SortNewest):
	case string(domain.SortOldest):
		criteria.SortBy = domain.SortOldest
	case string(domain.SortMostDangerous):
		criteria.SortBy = domain.SortMostDangerous
	default:
		return domain.QueryCriteria{}, fmt.Errorf("unknown sort order %q", sort)
	}

	page, err := parseIntParam(q.Get("page"), 1)
	if err != nil || page < 1 {
		return domain.QueryCriteria{}, fmt.Errorf("invalid 'page' parameter")
	}
	criteria.Page = page

	pageSize, err := parseIntParam(q.Get("pageSize"), defaultPageSize)
	if err != nil || pageSize < 1 || pageSize > maxPageSize {
		return domain.QueryCriteria{}, fmt.Errorf("invalid 'pageSize' parameter")
	}
	criteria.PageSize = pageSize

	minStr, maxStr := q.Get("minDanger"), q.Get("maxDanger")
	if minStr != "" || maxStr != "" {
		min, err := parseIntParam(minStr, domain.MinDangerLevel)
		if err != nil {
			return domain.QueryCriteria{}, fmt.Errorf("invalid 'minDanger' parameter")
		}
		max, err := parseIntParam(maxStr, domain.MaxDangerLevel)
		if err != nil {
			return domain.QueryCriteria{}, fmt.Errorf("invalid 'maxDanger' parameter")
		}
		if min > max {
			return domain.QueryCriteria{}, fmt.Errorf("'minDanger' must not exceed 'maxDanger'")
		}
		criteria.DangerRange = &domain.DangerRange{Min: min, Max: max}
	}

	return criteria, nil
}

func parseIntParam(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}
