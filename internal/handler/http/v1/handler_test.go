package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/sentinel_monitoring_system/internal/config"
	"github.com/shenikar/sentinel_monitoring_system/internal/models"
	"github.com/shenikar/sentinel_monitoring_system/internal/replay"
	replaymocks "github.com/shenikar/sentinel_monitoring_system/internal/replay/mocks"
	"github.com/shenikar/sentinel_monitoring_system/internal/service/mocks"
	"github.com/shenikar/sentinel_monitoring_system/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
// и контроллером воспроизведения поверх мокированного загрузчика истории
func newTestHandler(t *testing.T) (*mocks.MockMonitorService, *replaymocks.MockHistoryFetcher, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockMonitorService(ctrl)
	mockFetcher := replaymocks.NewMockHistoryFetcher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	replayCtrl := replay.NewController(mockFetcher, logger, 6, 100*time.Millisecond)
	handler := NewHandler(mockService, replayCtrl, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return mockService, mockFetcher, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", "test-api-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetPositions_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	battery := 42.0
	mockService.EXPECT().Positions("ALL").Return([]models.PositionRecord{
		{
			DeviceID:     "dev-1",
			Timestamp:    100,
			Location:     models.GeoPoint{Lat: 55.7, Lng: 37.6},
			Speed:        1.5,
			BatteryLevel: &battery,
			Risk:         &models.RiskInfo{Score: 72},
		},
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/monitor/positions", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []PositionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "dev-1", resp[0].DeviceID)
	assert.Equal(t, 42.0, resp[0].BatteryLevel)
	assert.Equal(t, 72.0, resp[0].RiskScore)
}

func TestGetPositions_FilterPassedThrough(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().Positions("HIGH_RISK").Return([]models.PositionRecord{}, nil)

	w := makeRequest(router, "GET", "/api/v1/monitor/positions?filter=HIGH_RISK", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetPositions_UnknownFilter(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().Positions("BOGUS").Return(nil, errors.New("service: unknown position filter"))

	w := makeRequest(router, "GET", "/api/v1/monitor/positions?filter=BOGUS", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown filter value")
}

func TestGetAlerts_CriticalExposed(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().OrderedAlerts().Return([]models.AlertRecord{
		{AlertID: "a-1", Severity: models.SeverityCritical, Timestamp: 20},
		{AlertID: "a-2", Severity: models.SeverityInfo, Timestamp: 30},
	})

	w := makeRequest(router, "GET", "/api/v1/monitor/alerts", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.True(t, resp[0].IsCritical)
	assert.False(t, resp[1].IsCritical)
	// Пустой статус наружу отдается как DETECTED
	assert.Equal(t, models.StatusDetected, resp[0].Status)
}

func TestGetStats(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().Stats().Return(store.Stats{Active: 5, Safe: 3, Danger: 2})

	w := makeRequest(router, "GET", "/api/v1/monitor/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, StatsResponse{Active: 5, Safe: 3, Danger: 2}, resp)
}

func TestAcknowledgeAlert_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().AcknowledgeAlert(gomock.Any(), "a-1").Return(nil)

	w := makeRequest(router, "POST", "/api/v1/alerts/a-1/acknowledge", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAcknowledgeAlert_BackendError(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().AcknowledgeAlert(gomock.Any(), "a-1").Return(errors.New("backend down"))

	w := makeRequest(router, "POST", "/api/v1/alerts/a-1/acknowledge", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestResolveAlert_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ResolveAlert(gomock.Any(), "a-1").Return(nil)

	w := makeRequest(router, "POST", "/api/v1/alerts/a-1/resolve", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClaimIncident_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ClaimIncident(gomock.Any(), "a-1", "operator-7").Return(nil)

	body, _ := json.Marshal(ClaimRequest{OwnerID: "operator-7"})
	w := makeRequest(router, "POST", "/api/v1/alerts/a-1/claim", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClaimIncident_MissingOwner(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ClaimIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/alerts/a-1/claim", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttestAlert_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().AttestAlert(gomock.Any(), "a-1").Return(nil)

	w := makeRequest(router, "POST", "/api/v1/alerts/a-1/attest", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReplayLifecycle(t *testing.T) {
	_, mockFetcher, router := newTestHandler(t)

	frames := []models.ReplayFrame{
		{Timestamp: 10},
		{Timestamp: 20},
		{Timestamp: 30},
	}
	mockFetcher.EXPECT().FetchHistory(gomock.Any(), "dev-1", 6).Return(frames, nil)

	// Изначально контроллер в IDLE
	w := makeRequest(router, "GET", "/api/v1/replay/status", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var status ReplayStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, string(replay.StateIdle), status.State)

	// Выбор устройства грузит кадры, указатель на последнем кадре
	body, _ := json.Marshal(ReplaySelectRequest{DeviceID: "dev-1"})
	w = makeRequest(router, "POST", "/api/v1/replay/select", bytes.NewBuffer(body))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, string(replay.StatePaused), status.State)
	assert.Equal(t, 3, status.FrameCount)
	assert.Equal(t, 2, status.Index)
	require.NotNil(t, status.Frame)
	assert.Equal(t, 30.0, status.Frame.Timestamp)

	// Перемотка на первый кадр
	seekBody, _ := json.Marshal(ReplaySeekRequest{Index: 0})
	w = makeRequest(router, "POST", "/api/v1/replay/seek", bytes.NewBuffer(seekBody))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, 0, status.Index)

	// Запуск и пауза
	w = makeRequest(router, "POST", "/api/v1/replay/play", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, string(replay.StatePlaying), status.State)

	w = makeRequest(router, "POST", "/api/v1/replay/pause", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, string(replay.StatePaused), status.State)

	// Закрытие сбрасывает контроллер
	w = makeRequest(router, "DELETE", "/api/v1/replay", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, string(replay.StateIdle), status.State)
	assert.Equal(t, 0, status.FrameCount)
}

func TestReplaySelect_FetchFails(t *testing.T) {
	_, mockFetcher, router := newTestHandler(t)

	mockFetcher.EXPECT().FetchHistory(gomock.Any(), "dev-1", 6).Return(nil, errors.New("backend down"))

	body, _ := json.Marshal(ReplaySelectRequest{DeviceID: "dev-1"})
	w := makeRequest(router, "POST", "/api/v1/replay/select", bytes.NewBuffer(body))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestReplayPlay_WithoutFrames(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/replay/play", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetJournal(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	recordedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	mockService.EXPECT().RecentJournal(gomock.Any(), 10).Return([]models.JournalEntry{
		{
			AlertID:    "a-1",
			DeviceID:   "dev-1",
			Severity:   models.SeverityCritical,
			Source:     models.JournalSourceStream,
			EventTime:  100,
			RecordedAt: recordedAt,
		},
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/journal/alerts?limit=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []JournalEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "a-1", resp[0].AlertID)
	assert.Equal(t, models.JournalSourceStream, resp[0].Source)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
