package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NBR-24/PothuHole/pkg/models/api"
	"github.com/NBR-24/PothuHole/pkg/models/domain"
	reportsvc "github.com/NBR-24/PothuHole/pkg/services/report"
	reportstore "github.com/NBR-24/PothuHole/pkg/store/report"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Submit(ctx context.Context, submission domain.NewReport) (string, error) {
	args := m.Called(ctx, submission)
	return args.String(0), args.Error(1)
}

func (m *mockService) List(ctx context.Context, criteria domain.QueryCriteria) (domain.ReportPage, error) {
	args := m.Called(ctx, criteria)
	return args.Get(0).(domain.ReportPage), args.Error(1)
}

func (m *mockService) Leaderboard(ctx context.Context) (domain.Summary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Summary), args.Error(1)
}

func (m *mockService) Get(ctx context.Context, id string) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func TestCreateReport(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mockService)
		expectedStatus int
	}{
		{
			name: "successful submission",
			body: `{"danger_level":8,"description":"axle breaker","lat":9.9312,"lng":76.2673}`,
			setupMock: func(m *mockService) {
				m.On("Submit", mock.Anything, domain.NewReport{
					DangerLevel: 8,
					Description: "axle breaker",
					Lat:         9.9312,
					Lng:         76.2673,
				}).Return("new-id", nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed body",
			body:           `{not json`,
			setupMock:      func(m *mockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "validation failure",
			body: `{"danger_level":99,"lat":9.9,"lng":76.2}`,
			setupMock: func(m *mockService) {
				m.On("Submit", mock.Anything, mock.Anything).
					Return("", fmt.Errorf("%w: danger level out of range", reportsvc.ErrInvalidSubmission))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"danger_level":5,"lat":9.9,"lng":76.2}`,
			setupMock: func(m *mockService) {
				m.On("Submit", mock.Anything, mock.Anything).
					Return("", fmt.Errorf("store report: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			tt.setupMock(svc)
			handler := NewHandler(svc)

			req := httptest.NewRequest("POST", "/api/v1/reports", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.CreateReport(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusCreated {
				var resp api.CreateReportResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "new-id", resp.ID)
			}
			if tt.expectedStatus == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "connection refused")
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestCreateReport_RejectsOversizedImage(t *testing.T) {
	svc := new(mockService)
	handler := NewHandler(svc)

	body, err := json.Marshal(api.CreateReportRequest{
		DangerLevel: 5,
		Lat:         9.9,
		Lng:         76.2,
		ImageData:   strings.Repeat("A", maxImageBytes+1),
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/reports", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()

	handler.CreateReport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestListReports(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		query          string
		setupMock      func(*mockService)
		expectedStatus int
	}{
		{
			name:  "defaults",
			query: "",
			setupMock: func(m *mockService) {
				m.On("List", mock.Anything, domain.QueryCriteria{
					SortBy:   domain.SortNewest,
					Page:     1,
					PageSize: defaultPageSize,
				}).Return(domain.ReportPage{
					Items: []domain.Report{{
						ID:          "r1",
						DangerLevel: 7,
						Location:    domain.Location{District: "Kochi"},
						CreatedAt:   createdAt,
					}},
					Page:       1,
					PageSize:   defaultPageSize,
					TotalPages: 1,
					TotalItems: 1,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "full criteria",
			query: "?search=bridge&sort=mostDangerous&minDanger=7&maxDanger=10&page=2&pageSize=5",
			setupMock: func(m *mockService) {
				m.On("List", mock.Anything, domain.QueryCriteria{
					Search:      "bridge",
					SortBy:      domain.SortMostDangerous,
					DangerRange: &domain.DangerRange{Min: 7, Max: 10},
					Page:        2,
					PageSize:    5,
				}).Return(domain.ReportPage{Items: []domain.Report{}, Page: 2, PageSize: 5}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown sort order",
			query:          "?sort=sideways",
			setupMock:      func(m *mockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid page",
			query:          "?page=zero",
			setupMock:      func(m *mockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "page size over limit",
			query:          "?pageSize=5000",
			setupMock:      func(m *mockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "inverted danger range",
			query:          "?minDanger=9&maxDanger=2",
			setupMock:      func(m *mockService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			tt.setupMock(svc)
			handler := NewHandler(svc)

			req := httptest.NewRequest("GET", "/api/v1/reports"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.ListReports(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestGetReport(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setupMock      func(*mockService)
		expectedStatus int
	}{
		{
			name: "found",
			id:   "r1",
			setupMock: func(m *mockService) {
				m.On("Get", mock.Anything, "r1").Return(&domain.Report{ID: "r1", DangerLevel: 5}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func(m *mockService) {
				m.On("Get", mock.Anything, "missing").Return(nil, reportstore.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			tt.setupMock(svc)
			handler := NewHandler(svc)

			req := httptest.NewRequest("GET", "/api/v1/reports/"+tt.id, nil)
			rec := httptest.NewRecorder()

			// Set up chi context with URL parameters
			ctx := chi.NewRouteContext()
			ctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))

			handler.GetReport(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestGetLeaderboard(t *testing.T) {
	svc := new(mockService)
	svc.On("Leaderboard", mock.Anything).Return(domain.Summary{
		Leaderboard: []domain.DistrictSummary{
			{District: "Kochi", Count: 2, AvgDanger: 6},
			{District: "Palakkad", Count: 1, AvgDanger: 6},
		},
		TotalReports:   3,
		TotalDistricts: 2,
		AvgDangerLevel: 6.0,
	}, nil)

	handler := NewHandler(svc)
	req := httptest.NewRequest("GET", "/api/v1/leaderboard", nil)
	rec := httptest.NewRecorder()

	handler.GetLeaderboard(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp api.Summary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, api.Summary{
		Leaderboard: []api.DistrictSummary{
			{District: "Kochi", Count: 2, AvgDanger: 6},
			{District: "Palakkad", Count: 1, AvgDanger: 6},
		},
		TotalReports:   3,
		TotalDistricts: 2,
		AvgDangerLevel: 6.0,
	}, resp)
}
