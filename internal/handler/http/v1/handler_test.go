package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/uav_fleet_system/internal/apperror"
	"github.com/shenikar/uav_fleet_system/internal/config"
	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/shenikar/uav_fleet_system/internal/pagination"
	"github.com/shenikar/uav_fleet_system/internal/service/mocks"
	"github.com/shenikar/uav_fleet_system/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	drone    *mocks.MockDroneService
	mission  *mocks.MockMissionService
	incident *mocks.MockIncidentService
	event    *mocks.MockEventService
	user     *mocks.MockUserService
	log      *mocks.MockLogService
}

// newTestHandler создает роутер с мокированными сервисами
func newTestHandler(t *testing.T) (*serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		drone:    mocks.NewMockDroneService(ctrl),
		mission:  mocks.NewMockMissionService(ctrl),
		incident: mocks.NewMockIncidentService(ctrl),
		event:    mocks.NewMockEventService(ctrl),
		user:     mocks.NewMockUserService(ctrl),
		log:      mocks.NewMockLogService(ctrl),
	}

	cfg := &config.Config{LogExportLimit: 100}
	handler := NewHandler(Services{
		Drone:    m.drone,
		Mission:  m.mission,
		Incident: m.incident,
		Event:    m.event,
		User:     m.user,
		Log:      m.log,
	}, logger.NewNop(), cfg)

	gin.SetMode(gin.TestMode)
	return m, NewRouter(handler)
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response[json.RawMessage] {
	t.Helper()
	var resp Response[json.RawMessage]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestDroneLifecycle(t *testing.T) {
	m, router := newTestHandler(t)
	created := &models.Drone{}

	// POST /api/drones
	m.drone.EXPECT().CreateDrone(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Drone) error {
			d.ID = "d1"
			*created = *d
			return nil
		})
	w := makeRequest(router, http.MethodPost, "/api/drones", strings.NewReader(`{"name":"D1","model":"M1","status":"Idle","battery":80}`))
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeSuccess, resp.Code)
	assert.JSONEq(t, "null", string(resp.Data))
	assert.Equal(t, "D1", created.Name)
	assert.Equal(t, 80, created.Battery)
	assert.True(t, created.Activate)

	// GET /api/drones?page=1&size=5
	m.drone.EXPECT().ListDrones(gomock.Any(), models.DroneFilter{}, pagination.Params{Page: 1, Size: 5}).
		Return(pagination.NewPage(pagination.Params{Page: 1, Size: 5}, 1, []*models.Drone{created}), nil)
	w = makeRequest(router, http.MethodGet, "/api/drones?page=1&size=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page Response[pagination.Page[models.Drone]]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Data.Total)
	require.Len(t, page.Data.Items, 1)
	assert.Equal(t, "D1", page.Data.Items[0].Name)
	assert.Equal(t, 80, page.Data.Items[0].Battery)

	// PUT /api/drones/d1 {battery:50}
	m.drone.EXPECT().UpdateDrone(gomock.Any(), "d1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd models.DroneUpdate) error {
			assert.Nil(t, upd.Name)
			require.NotNil(t, upd.Battery)
			assert.Equal(t, 50, *upd.Battery)
			return nil
		})
	w = makeRequest(router, http.MethodPut, "/api/drones/d1", strings.NewReader(`{"battery":50}`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, CodeSuccess, decode(t, w).Code)

	// DELETE /api/drones/d1
	m.drone.EXPECT().DeleteDrone(gomock.Any(), "d1").Return(nil)
	w = makeRequest(router, http.MethodDelete, "/api/drones/d1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, CodeSuccess, decode(t, w).Code)

	// GET /api/drones/d1 -> бизнес-ошибка
	m.drone.EXPECT().GetDrone(gomock.Any(), "d1").Return(nil, apperror.Biz("Drone id d1 not found"))
	w = makeRequest(router, http.MethodGet, "/api/drones/d1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode(t, w)
	assert.Equal(t, CodeFailure, resp.Code)
	assert.Equal(t, "Drone id d1 not found", resp.Message)
	assert.JSONEq(t, "null", string(resp.Data))
}

func TestCreateDrone_ValidationFailureIsBiz(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/drones", strings.NewReader(`{"name":"D1","model":"M1","battery":300}`))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeFailure, resp.Code)
	assert.Contains(t, resp.Message, "Battery")
}

func TestCreateDrone_MalformedBody(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/drones", strings.NewReader(`{"name":`))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeFailure, resp.Code)
	assert.Contains(t, resp.Message, "invalid request body")
}

func TestUpdateDrone_ZeroBatteryIsPresent(t *testing.T) {
	m, router := newTestHandler(t)

	m.drone.EXPECT().UpdateDrone(gomock.Any(), "d1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd models.DroneUpdate) error {
			require.NotNil(t, upd.Battery)
			assert.Equal(t, 0, *upd.Battery)
			require.NotNil(t, upd.Activate)
			assert.False(t, *upd.Activate)
			return nil
		})

	w := makeRequest(router, http.MethodPut, "/api/drones/d1", strings.NewReader(`{"battery":0,"activate":false}`))
	assert.Equal(t, CodeSuccess, decode(t, w).Code)
}

func TestListDrones_InvalidPagination(t *testing.T) {
	m, router := newTestHandler(t)
	m.drone.EXPECT().ListDrones(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, query := range []string{"page=abc", "page=0", "size=0", "size=101", "page=-1", "page=100000000000000000&size=100"} {
		w := makeRequest(router, http.MethodGet, "/api/drones?"+query, nil)
		require.Equal(t, http.StatusOK, w.Code, query)
		assert.Equal(t, CodeFailure, decode(t, w).Code, query)
	}
}

func TestListDrones_DefaultPagination(t *testing.T) {
	m, router := newTestHandler(t)

	m.drone.EXPECT().ListDrones(gomock.Any(), models.DroneFilter{}, pagination.Default()).
		Return(pagination.NewPage[*models.Drone](pagination.Default(), 0, nil), nil)

	w := makeRequest(router, http.MethodGet, "/api/drones", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":0,"message":"ok","data":{"page":1,"size":5,"total":0,"items":[]}}`, w.Body.String())
}

func TestListAvailableDrones(t *testing.T) {
	m, router := newTestHandler(t)

	m.drone.EXPECT().ListDrones(gomock.Any(), models.DroneFilter{OnlyActive: true}, pagination.Params{Page: 2, Size: 3}).
		Return(pagination.NewPage(pagination.Params{Page: 2, Size: 3}, 4, []*models.Drone{{ID: "d4", Activate: true}}), nil)

	w := makeRequest(router, http.MethodGet, "/api/drones/available?page=2&size=3", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, CodeSuccess, decode(t, w).Code)
}

func TestDroneStatus(t *testing.T) {
	m, router := newTestHandler(t)

	m.drone.EXPECT().StatusSummary(gomock.Any()).
		Return([]models.StatusCount{{Status: "Idle", Count: 3}, {Status: "Charging", Count: 1}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/drones/status", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"code":0,"message":"ok","data":{"categories":[{"status":"Idle","count":3},{"status":"Charging","count":1}]}}`,
		w.Body.String())
}

func TestDatabaseErrorIs500(t *testing.T) {
	m, router := newTestHandler(t)

	m.mission.EXPECT().GetMission(gomock.Any(), "m1").Return(nil, apperror.Database(errors.New("connection refused")))

	w := makeRequest(router, http.MethodGet, "/api/missions/m1", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeFailure, resp.Code)
	assert.Equal(t, "Database error: connection refused", resp.Message)
	assert.JSONEq(t, "null", string(resp.Data))
}

func TestUnmatchedRoute(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/unknown", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":1,"message":"Not Found","data":null}`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/system/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":0,"message":"ok","data":{"status":"ok"}}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestCreateMission_DecimalCoordinates(t *testing.T) {
	m, router := newTestHandler(t)

	m.mission.EXPECT().CreateMission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, mission *models.Mission) error {
			assert.Equal(t, "u1", mission.UserID)
			assert.True(t, decimal.RequireFromString("55.7522200").Equal(mission.TargetLat))
			assert.True(t, decimal.RequireFromString("37.61556").Equal(mission.TargetLng))
			return nil
		})

	w := makeRequest(router, http.MethodPost, "/api/missions",
		strings.NewReader(`{"user_id":"u1","drone_id":"d1","target_lat":55.75222,"target_lng":"37.61556"}`))

	assert.Equal(t, CodeSuccess, decode(t, w).Code)
}

func TestUpdateMission_Timestamps(t *testing.T) {
	m, router := newTestHandler(t)

	m.mission.EXPECT().UpdateMission(gomock.Any(), "m1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd models.MissionUpdate) error {
			require.NotNil(t, upd.StartedAt)
			assert.True(t, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC).Equal(*upd.StartedAt))
			assert.Nil(t, upd.CompletedAt)
			return nil
		})

	w := makeRequest(router, http.MethodPut, "/api/missions/m1", strings.NewReader(`{"started_at":"2025-05-01T10:00:00Z"}`))
	assert.Equal(t, CodeSuccess, decode(t, w).Code)
}

func TestUpdateMission_NaiveTimestampIsUTC(t *testing.T) {
	m, router := newTestHandler(t)

	m.mission.EXPECT().UpdateMission(gomock.Any(), "m1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd models.MissionUpdate) error {
			require.NotNil(t, upd.StartedAt)
			assert.True(t, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC).Equal(*upd.StartedAt))
			require.NotNil(t, upd.CompletedAt)
			assert.True(t, time.Date(2025, 3, 1, 9, 30, 0, 500000000, time.UTC).Equal(*upd.CompletedAt))
			return nil
		})

	w := makeRequest(router, http.MethodPut, "/api/missions/m1",
		strings.NewReader(`{"started_at":"2025-03-01T08:00:00","completed_at":"2025-03-01 09:30:00.5"}`))
	assert.Equal(t, CodeSuccess, decode(t, w).Code)
}

func TestUpdateMission_InvalidTimestampIsBiz(t *testing.T) {
	m, router := newTestHandler(t)
	m.mission.EXPECT().UpdateMission(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPut, "/api/missions/m1", strings.NewReader(`{"started_at":"01.03.2025"}`))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, CodeFailure, resp.Code)
	assert.Contains(t, resp.Message, "invalid timestamp")
}

func TestOutOfRangeValuesAreBiz(t *testing.T) {
	m, router := newTestHandler(t)
	m.mission.EXPECT().CreateMission(gomock.Any(), gomock.Any()).Times(0)
	m.mission.EXPECT().UpdateMission(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.incident.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)
	m.incident.EXPECT().UpdateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.event.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Times(0)

	tests := []struct {
		name   string
		method string
		url    string
		body   string
		field  string
	}{
		{"mission lat", http.MethodPost, "/api/missions", `{"user_id":"u1","drone_id":"d1","target_lat":1000,"target_lng":37}`, "TargetLat"},
		{"mission lng", http.MethodPost, "/api/missions", `{"user_id":"u1","drone_id":"d1","target_lat":55,"target_lng":-2000}`, "TargetLng"},
		{"mission lat as string", http.MethodPost, "/api/missions", `{"user_id":"u1","drone_id":"d1","target_lat":"90.5","target_lng":37}`, "TargetLat"},
		{"mission drone id too long", http.MethodPost, "/api/missions", `{"user_id":"u1","drone_id":"` + strings.Repeat("d", 21) + `","target_lat":55,"target_lng":37}`, "DroneID"},
		{"mission update lat", http.MethodPut, "/api/missions/m1", `{"target_lat":-91}`, "TargetLat"},
		{"mission update lng", http.MethodPut, "/api/missions/m1", `{"target_lng":180.0001}`, "TargetLng"},
		{"incident severity", http.MethodPost, "/api/incidents", `{"title":"T","lat":55,"lng":37,"severity":40000,"created_by":"u1"}`, "Severity"},
		{"incident lat", http.MethodPost, "/api/incidents", `{"title":"T","lat":5000,"lng":37,"severity":1,"created_by":"u1"}`, "Lat"},
		{"incident lng", http.MethodPost, "/api/incidents", `{"title":"T","lat":55,"lng":181,"severity":1,"created_by":"u1"}`, "Lng"},
		{"incident update severity", http.MethodPut, "/api/incidents/i1", `{"severity":32768}`, "Severity"},
		{"incident update lat", http.MethodPut, "/api/incidents/i1", `{"lat":"-90.01"}`, "Lat"},
		{"event mission id too long", http.MethodPost, "/api/events", `{"mission_id":"` + strings.Repeat("m", 21) + `","event_type":"Takeoff"}`, "MissionID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, tt.method, tt.url, strings.NewReader(tt.body))

			require.Equal(t, http.StatusOK, w.Code)
			resp := decode(t, w)
			assert.Equal(t, CodeFailure, resp.Code)
			assert.Contains(t, resp.Message, tt.field)
		})
	}
}

func TestBoundaryValuesAreAccepted(t *testing.T) {
	m, router := newTestHandler(t)

	m.mission.EXPECT().CreateMission(gomock.Any(), gomock.Any()).Return(nil)
	m.incident.EXPECT().UpdateIncident(gomock.Any(), "i1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd models.IncidentUpdate) error {
			require.NotNil(t, upd.Severity)
			assert.Equal(t, 32767, *upd.Severity)
			return nil
		})

	w := makeRequest(router, http.MethodPost, "/api/missions",
		strings.NewReader(`{"user_id":"u1","drone_id":"d1","target_lat":-90,"target_lng":180}`))
	assert.Equal(t, CodeSuccess, decode(t, w).Code)

	w = makeRequest(router, http.MethodPut, "/api/incidents/i1", strings.NewReader(`{"severity":32767,"lat":90,"lng":-180}`))
	assert.Equal(t, CodeSuccess, decode(t, w).Code)
}

func TestCreateIncident(t *testing.T) {
	m, router := newTestHandler(t)

	m.incident.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			assert.Equal(t, "Пожар", incident.Title)
			assert.Equal(t, 3, incident.Severity)
			return nil
		})

	w := makeRequest(router, http.MethodPost, "/api/incidents", jsonBody(t, map[string]any{
		"title": "Пожар", "lat": 55.1, "lng": 37.2, "radius": 150.5, "severity": 3, "created_by": "u1",
	}))
	assert.Equal(t, CodeSuccess, decode(t, w).Code)
}

func TestCreateEvent_InvalidType(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/events", strings.NewReader(`{"mission_id":"m1","event_type":"Crash"}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, CodeFailure, decode(t, w).Code)
}

func TestCreateUser_PasswordPassedSeparately(t *testing.T) {
	m, router := newTestHandler(t)

	m.user.EXPECT().CreateUser(gomock.Any(), gomock.Any(), "s3cret!").
		DoAndReturn(func(_ context.Context, user *models.User, _ string) error {
			assert.Equal(t, "alice", user.Name)
			assert.Equal(t, models.RoleOperator, user.Role)
			assert.Empty(t, user.PasswordHash)
			return nil
		})

	w := makeRequest(router, http.MethodPost, "/api/users", strings.NewReader(`{"name":"alice","password":"s3cret!","role":"Operator"}`))
	assert.Equal(t, CodeSuccess, decode(t, w).Code)
}

func TestGetUser_HidesPasswordHash(t *testing.T) {
	m, router := newTestHandler(t)

	m.user.EXPECT().GetUser(gomock.Any(), "u1").
		Return(&models.User{ID: "u1", Name: "alice", PasswordHash: "$2a$10$secret", Role: models.RoleAdmin}, nil)

	w := makeRequest(router, http.MethodGet, "/api/users/u1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLogs_NoUpdateOrDelete(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodDelete, "/api/logs/l1", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateLog(t *testing.T) {
	m, router := newTestHandler(t)

	m.log.EXPECT().CreateLog(gomock.Any(), &models.Log{LogType: models.LogWarn, Message: "battery low"}).Return(nil)

	w := makeRequest(router, http.MethodPost, "/api/logs", strings.NewReader(`{"log_type":"Warn","message":"battery low"}`))
	assert.Equal(t, CodeSuccess, decode(t, w).Code)
}

func TestExportLogs(t *testing.T) {
	m, router := newTestHandler(t)

	m.log.EXPECT().RecentLogs(gomock.Any(), 100).Return([]*models.Log{
		{ID: "l1", LogType: models.LogInfo, Message: "User u1 created", CreatedAt: time.Now()},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/logs/export", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Logs")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
