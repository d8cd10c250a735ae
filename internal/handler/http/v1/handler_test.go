package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/airspace_alert_system/internal/config"
	"github.com/shenikar/airspace_alert_system/internal/models"
	"github.com/shenikar/airspace_alert_system/internal/service/mocks"
)

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

type fakeSnapshotReader struct {
	snapshot *models.Snapshot
	err      error
}

func (f *fakeSnapshotReader) Latest(context.Context) (*models.Snapshot, error) {
	return f.snapshot, f.err
}

type fakeStream struct {
	clients int
}

func (f *fakeStream) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("stream"))
}

func (f *fakeStream) ClientCount() int {
	return f.clients
}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T, stream StreamHandler, snapshots SnapshotReader) (*Handler, *mocks.MockSimulationService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSimulationService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg, stream, snapshots)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testFleet() []models.Aircraft {
	return []models.Aircraft{
		{ID: "ac-0", X: 10, Y: 10, Callsign: "AV-123", Passengers: 150, PilotName: "Ana P.", Origin: "JFK", Destination: "LAX", Severity: models.SeverityWarning},
		{ID: "ac-1", X: 10, Y: 17, Callsign: "BA-456", Passengers: 80, PilotName: "Luis T.", Origin: "CDG", Destination: "FRA", Severity: models.SeverityWarning},
	}
}

func TestListAircraft_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)

	mockService.EXPECT().ListAircraft(gomock.Any()).Return(testFleet(), nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/aircraft", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AircraftResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "ac-0", resp[0].ID)
	assert.Equal(t, "warning", resp[0].CollisionState)
	assert.Equal(t, "Ana P.", resp[0].PilotName)
}

func TestListAircraft_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)

	mockService.EXPECT().ListAircraft(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/aircraft", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListHistory_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)
	runID := uuid.New()
	record := models.NewHistoryRecord(runID, testFleet()[0], models.SeverityCollision, 9, time.Now())

	mockService.EXPECT().ListHistory(gomock.Any()).Return([]models.HistoryRecord{record}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/history", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []HistoryRecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, runID, resp[0].RunID)
	assert.Equal(t, "ac-0", resp[0].AircraftID)
	assert.Equal(t, "collision", resp[0].FinalCollisionState)
	assert.Equal(t, uint64(9), resp[0].Tick)
}

func TestListHistory_Empty(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)

	mockService.EXPECT().ListHistory(gomock.Any()).Return([]models.HistoryRecord{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/history", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)
	stats := &models.Stats{
		RunID:    uuid.New(),
		Tick:     42,
		Aircraft: 15,
		Counts: map[models.Severity]int{
			models.SeveritySafe:      11,
			models.SeverityCollision: 4,
		},
		Collisions: 4,
	}

	mockService.EXPECT().GetStats(gomock.Any()).Return(stats, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/simulation/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(42), resp.Tick)
	assert.Equal(t, 11, resp.Counts["safe"])
	assert.Equal(t, 0, resp.Counts["warning"])
	assert.Equal(t, 4, resp.Counts["collision"])
	assert.Equal(t, 4, resp.Collisions)
}

func TestResetSimulation_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)

	mockService.EXPECT().Reset(gomock.Any(), 2).Return(testFleet(), nil).Times(1)

	body, _ := json.Marshal(ResetSimulationRequest{Count: 2})
	w := makeRequest(router, "POST", "/api/v1/simulation/reset", bytes.NewBuffer(body), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ResetSimulationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Aircraft, 2)
}

func TestResetSimulation_EmptyBodyMeansRandom(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)

	mockService.EXPECT().Reset(gomock.Any(), 0).Return(testFleet(), nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/simulation/reset", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResetSimulation_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)

	mockService.EXPECT().Reset(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/simulation/reset", bytes.NewBufferString(`{"count": 500}`), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Count' failed on the 'lte' tag")
}

func TestResetSimulation_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)

	mockService.EXPECT().Reset(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/simulation/reset", bytes.NewBufferString(`{"count": `), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestResetSimulation_Unauthorized(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)

	mockService.EXPECT().Reset(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/simulation/reset", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, "POST", "/api/v1/simulation/reset", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestResetSimulation_BearerToken(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)

	mockService.EXPECT().Reset(gomock.Any(), 0).Return(testFleet(), nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/simulation/reset", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStepSimulation_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)
	report := &models.TickReport{
		RunID:      uuid.New(),
		Tick:       5,
		Alerts:     []models.Alert{{Priority: 3}, {Priority: 3}},
		NewRecords: []models.HistoryRecord{{AircraftID: "ac-0"}, {AircraftID: "ac-1"}},
		Counts:     map[models.Severity]int{models.SeverityCollision: 2},
	}

	mockService.EXPECT().Step(gomock.Any()).Return(report, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/simulation/tick", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp TickResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(5), resp.Tick)
	assert.Equal(t, 2, resp.Alerts)
	assert.Equal(t, 2, resp.NewCollisions)
	assert.Equal(t, 2, resp.Counts["collision"])
}

func TestStepSimulation_SinkErrorStillOK(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)
	report := &models.TickReport{Tick: 6, Counts: map[models.Severity]int{}}

	mockService.EXPECT().Step(gomock.Any()).Return(report, errors.New("redis down")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/simulation/tick", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStepSimulation_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t, nil, nil)

	mockService.EXPECT().Step(gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/simulation/tick", nil, apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStream_Disabled(t *testing.T) {
	_, _, router := newTestHandler(t, nil, nil)

	w := makeRequest(router, "GET", "/api/v1/stream", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestStream_DelegatesToHub(t *testing.T) {
	_, _, router := newTestHandler(t, &fakeStream{}, nil)

	w := makeRequest(router, "GET", "/api/v1/stream", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "stream", w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	tick := uint64(12)
	_, _, router := newTestHandler(t, &fakeStream{clients: 3}, &fakeSnapshotReader{snapshot: &models.Snapshot{Tick: tick}})

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","stream_clients":3,"cached_tick":12}`, w.Body.String())
}

func TestHealthCheck_CacheDown(t *testing.T) {
	_, _, router := newTestHandler(t, nil, &fakeSnapshotReader{err: errors.New("dial tcp: refused")})

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"degraded","stream_clients":0}`, w.Body.String())
}
