package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postValidate(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Validate(rec, req)
	return rec
}

func TestHandlerHealth(t *testing.T) {
	h := NewHandler("test")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHandlerVersion(t *testing.T) {
	h := NewHandler("1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)
	rec := httptest.NewRecorder()
	h.Version(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1.2.3", resp.Version)
}

func TestHandlerValidate(t *testing.T) {
	h := NewHandler("test")

	tests := []struct {
		name        string
		request     ValidateRequest
		valid       bool
		uri         string
		messagePart string
	}{
		{
			name: "valid configuration",
			request: ValidateRequest{
				Schema: `port required (int);`,
				Config: `port = 8080;`,
			},
			valid: true,
		},
		{
			name: "missing required setting",
			request: ValidateRequest{
				Schema: `port required (int);`,
				Config: `other = 1;`,
			},
			valid:       false,
			uri:         "/",
			messagePart: "Missing required attribute 'port'",
		},
		{
			name: "strict typo detection",
			request: ValidateRequest{
				Schema: `port (int);`,
				Config: `portt = 8080;`,
				Strict: true,
			},
			valid:       false,
			uri:         "/",
			messagePart: "not found in schema (strict validation)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(tt.request)
			require.NoError(t, err)

			rec := postValidate(t, h, string(body))
			require.Equal(t, http.StatusOK, rec.Code)

			var resp ValidateResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.valid, resp.Valid)
			assert.Equal(t, tt.uri, resp.URI)
			assert.Contains(t, resp.Message, tt.messagePart)
		})
	}
}

func TestHandlerValidateBadRequests(t *testing.T) {
	h := NewHandler("test")

	tests := []struct {
		name        string
		body        string
		status      int
		messagePart string
	}{
		{
			name:        "malformed json",
			body:        `{not json`,
			status:      http.StatusBadRequest,
			messagePart: "invalid request body",
		},
		{
			name:        "empty schema",
			body:        `{"schema": "", "config": "a = 1;"}`,
			status:      http.StatusBadRequest,
			messagePart: "schema must not be empty",
		},
		{
			name:        "broken schema",
			body:        `{"schema": "port (int)", "config": "port = 1;"}`,
			status:      http.StatusBadRequest,
			messagePart: "invalid schema",
		},
		{
			name:        "broken config",
			body:        `{"schema": "port (int);", "config": "port = ;"}`,
			status:      http.StatusBadRequest,
			messagePart: "invalid configuration",
		},
		{
			name:        "mistyped schema attribute",
			body:        `{"schema": "l min = \"two\" (list) { (int) };", "config": "l = (1);"}`,
			status:      http.StatusUnprocessableEntity,
			messagePart: "schema error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postValidate(t, h, tt.body)
			require.Equal(t, tt.status, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.messagePart)
		})
	}
}

func TestServerRoutes(t *testing.T) {
	server := NewServer(ServerConfig{Port: 0, Version: "test"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/missing", nil)
	rec = httptest.NewRecorder()
	server.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
