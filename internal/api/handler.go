package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jasal82/cconfig/pkg/config"
	"github.com/jasal82/cconfig/pkg/schema"
)

// Handler implements the API endpoints.
type Handler struct {
	version string
}

// NewHandler creates a new API handler
func NewHandler(version string) *Handler {
	return &Handler{version: version}
}

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// VersionResponse is the version endpoint payload.
type VersionResponse struct {
	Version string `json:"version"`
}

// ValidateRequest carries a schema and a configuration to check against it,
// both as source text.
type ValidateRequest struct {
	Schema string `json:"schema"`
	Config string `json:"config"`
	Strict bool   `json:"strict"`
}

// ValidateResponse is the outcome of a validation request. URI and Message
// are only set when the configuration is invalid.
type ValidateResponse struct {
	Valid   bool   `json:"valid"`
	URI     string `json:"uri,omitempty"`
	Message string `json:"message,omitempty"`
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Version handles GET /api/v1/version
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, VersionResponse{Version: h.version})
}

// Validate handles POST /api/v1/validate. Malformed schema or configuration
// source is a client error; a well-formed but invalid configuration is a
// successful response with Valid set to false.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Schema == "" {
		respondError(w, http.StatusBadRequest, "schema must not be empty")
		return
	}

	s, err := schema.Parse(req.Schema)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid schema: "+err.Error())
		return
	}

	f, err := config.Parse(req.Config)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid configuration: "+err.Error())
		return
	}

	result, err := safeValidate(s, f, req.Strict)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "schema error: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, ValidateResponse{
		Valid:   result.Valid,
		URI:     resultURI(result),
		Message: result.Message,
	})
}

// safeValidate converts schema-definition panics into errors so one bad
// request cannot take down the worker goroutine.
func safeValidate(s *schema.Schema, f *config.File, strict bool) (result schema.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	return s.Validate(f, strict), nil
}

func resultURI(r schema.Result) string {
	if r.Valid {
		return ""
	}
	return r.URI
}
