package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	internalhttp "behavior-insights/internal/http"
	"behavior-insights/internal/models"
	refreshermocks "behavior-insights/internal/refresher/mocks"
	"behavior-insights/internal/shared/loggers"
	"behavior-insights/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testSnapshot() *models.AnalyticsSnapshot {
	return &models.AnalyticsSnapshot{
		GeneratedAt: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		WindowDays:  3,
		Totals: models.SnapshotTotals{
			TotalSessions:   150,
			TotalUsers:      105,
			TotalDeadClicks: 15,
		},
		DeviceBreakdowns: []models.DimensionBreakdown{
			{DimensionValue: "Mobile", Sessions: 120, Users: 80},
			{DimensionValue: "PC", Sessions: 30, Users: 25},
		},
		TopCountries: []models.RankedEntry{
			{Label: "United States", Value: 120},
		},
		Trend: models.TrendSeries{
			Synthetic: true,
			Points:    []models.RankedEntry{{Label: "Mar 15", Value: 150}},
		},
	}
}

func newTestServer(t *testing.T, provider *refreshermocks.MockSnapshotProvider) *httptest.Server {
	t.Helper()

	logger, err := loggers.New("error")
	require.NoError(t, err)

	server := httptest.NewServer(internalhttp.NewRouter(provider, logger))
	t.Cleanup(server.Close)
	return server
}

func TestDashboardOverview_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := refreshermocks.NewMockSnapshotProvider(ctrl)
	provider.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot(), nil)

	server := newTestServer(t, provider)

	resp, err := http.Get(server.URL + "/dashboard/overview")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var overview internalhttp.OverviewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&overview))

	assert.Equal(t, 3, overview.WindowDays)
	assert.Equal(t, int64(150), overview.Totals.TotalSessions)
	assert.Equal(t, int64(105), overview.Totals.TotalUsers)
	require.Len(t, overview.TopCountries, 1)
	assert.Equal(t, "United States", overview.TopCountries[0].Label)
	assert.True(t, overview.Trend.Synthetic)
}

func TestDashboardTraffic_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := refreshermocks.NewMockSnapshotProvider(ctrl)
	provider.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot(), nil)

	server := newTestServer(t, provider)

	resp, err := http.Get(server.URL + "/dashboard/traffic")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var traffic internalhttp.TrafficResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&traffic))

	require.Len(t, traffic.DeviceBreakdowns, 2)
	assert.Equal(t, "Mobile", traffic.DeviceBreakdowns[0].DimensionValue)
	assert.Equal(t, int64(120), traffic.DeviceBreakdowns[0].Sessions)
}

func TestDashboardIssues_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := refreshermocks.NewMockSnapshotProvider(ctrl)
	provider.EXPECT().Snapshot(gomock.Any()).Return(testSnapshot(), nil)

	server := newTestServer(t, provider)

	resp, err := http.Get(server.URL + "/dashboard/issues")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var issues internalhttp.IssuesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&issues))

	assert.Equal(t, int64(15), issues.TotalDeadClicks)
	assert.Zero(t, issues.TotalRageClicks)
}

func TestDashboard_FeedUnavailable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := refreshermocks.NewMockSnapshotProvider(ctrl)
	feedErr := svcerrors.NewUnavailableError("FEED_9000", "metric feed unavailable", assert.AnError)
	provider.EXPECT().Snapshot(gomock.Any()).Return(nil, feedErr)

	server := newTestServer(t, provider)

	resp, err := http.Get(server.URL + "/dashboard/overview")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var errorResponse internalhttp.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errorResponse))

	assert.Equal(t, "unavailable", errorResponse.ErrorCategory)
	assert.Equal(t, "FEED_9000", errorResponse.ErrorCode)
	assert.NotEmpty(t, errorResponse.RequestID)
}
