package http_test

import (
	"bestevents/config"
	"bestevents/di"
	"bestevents/shared/constant"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "bestevents-test"
	cfg.Storage.Driver = constant.StorageDriverMemory
	cfg.Storage.Format = "json"
	cfg.Storage.Collections.Employees = "employees"
	cfg.Storage.Collections.Clients = "clients_events"
	cfg.Storage.Collections.Events = "events"
	cfg.Storage.Collections.Suppliers = "suppliers"
	cfg.Storage.Collections.Guests = "guests"
	cfg.Storage.Collections.Venues = "venues"
	cfg.Metrics.Enable = true
	cfg.Metrics.Path = "/metrics"

	return cfg
}

func newServer(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()

	server, cleanup, err := di.InitializeService(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return server
}

func do(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body.Data
}

func TestHealthAndMetrics(t *testing.T) {
	server := newServer(t, testConfig())

	rec := do(t, server, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))

	do(t, server, http.MethodPost, "/v1/guests/", `{"first_name":"Ada","last_name":"Lovelace","contact_details":"ada@example.com"}`)

	rec = do(t, server, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `bestevents_collection_mutations_total{collection="guests",operation="add"} 1`)
}

func TestRequestIDIsEchoed(t *testing.T) {
	server := newServer(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "0b5c1a52-4a8e-4a1c-9a43-3c1e3c0f3b0e")

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "0b5c1a52-4a8e-4a1c-9a43-3c1e3c0f3b0e", rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestEmployeeLifecycle(t *testing.T) {
	server := newServer(t, testConfig())

	rec := do(t, server, http.MethodPost, "/v1/employees/", `{"name":"Alice","department":"Sales","job_title":"Salesperson","salary":50000}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	alice := decodeData(t, rec)
	assert.EqualValues(t, 1, alice["id"])
	assert.Equal(t, "salesperson", alice["job_title"])

	rec = do(t, server, http.MethodPost, "/v1/employees/", `{"name":"Bob","department":"Sales","job_title":"sales_manager"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	bob := decodeData(t, rec)
	assert.EqualValues(t, 2, bob["id"])

	rec = do(t, server, http.MethodPost, "/v1/employees/2/subordinates", `{"employee_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []any{float64(1)}, decodeData(t, rec)["subordinates"])

	rec = do(t, server, http.MethodPost, "/v1/employees/1/subordinates", `{"employee_id":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, server, http.MethodPatch, "/v1/employees/1", `{"salary":55000}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 55000, decodeData(t, rec)["salary"])

	rec = do(t, server, http.MethodDelete, "/v1/employees/2/subordinates/1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, decodeData(t, rec)["subordinates"])

	rec = do(t, server, http.MethodDelete, "/v1/employees/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, server, http.MethodGet, "/v1/employees/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, server, http.MethodPost, "/v1/employees/", `{"name":"Carol","department":"Design","job_title":"Designer"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.EqualValues(t, 3, decodeData(t, rec)["id"], "removed keys are not handed out again")

	rec = do(t, server, http.MethodGet, "/v1/employees/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeData(t, rec)
	assert.EqualValues(t, 2, list["total_data"])
}

func TestErrorMapping(t *testing.T) {
	server := newServer(t, testConfig())

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
	}{
		{name: "invalid id", method: http.MethodGet, path: "/v1/venues/abc", wantCode: http.StatusBadRequest},
		{name: "missing record", method: http.MethodGet, path: "/v1/venues/99", wantCode: http.StatusNotFound},
		{name: "update missing record", method: http.MethodPatch, path: "/v1/events/99", body: `{"theme":"Jazz"}`, wantCode: http.StatusNotFound},
		{name: "delete missing record", method: http.MethodDelete, path: "/v1/suppliers/99", wantCode: http.StatusNotFound},
		{name: "empty update", method: http.MethodPatch, path: "/v1/guests/1", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "unknown field", method: http.MethodPost, path: "/v1/clients/", body: `{"colour":"red"}`, wantCode: http.StatusBadRequest},
		{
			name:     "inverted guest range",
			method:   http.MethodPost,
			path:     "/v1/venues/",
			body:     `{"name":"Hall","address":"1 Road","contact_details":"555","min_guests":90,"max_guests":10}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, server, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestListWithHugePage(t *testing.T) {
	server := newServer(t, testConfig())

	rec := do(t, server, http.MethodPost, "/v1/guests/", `{"first_name":"Ada","last_name":"Lovelace","contact_details":"ada@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, server, http.MethodGet, "/v1/guests/?page=4611686018427387904&limit=4", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	list := decodeData(t, rec)
	assert.Empty(t, list["guests"])
	assert.EqualValues(t, 1, list["total_data"])
}

func TestExport(t *testing.T) {
	server := newServer(t, testConfig())

	rec := do(t, server, http.MethodPost, "/v1/clients/", `{"type":"Wedding","date":"2024-06-01","time":"14:00","duration":6,"venue":"Venue A"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, server, http.MethodGet, "/v1/clients/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeXLSX, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="clients.xlsx"`, rec.Header().Get(constant.RequestHeaderDisposition))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"), "xlsx files are zip archives")
}

func TestCORS(t *testing.T) {
	cfg := testConfig()
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://bestevents.example"}

	server := newServer(t, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/v1/guests/", nil)
	req.Header.Set("Origin", "https://bestevents.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "https://bestevents.example", rec.Header().Get("Access-Control-Allow-Origin"))
}
