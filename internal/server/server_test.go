package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"github.com/jonathan/site-generator/internal/config"
	"github.com/jonathan/site-generator/internal/pipeline"
	"github.com/jonathan/site-generator/internal/rendering"
	"github.com/jonathan/site-generator/internal/store"
	"github.com/jonathan/site-generator/internal/types"
)

const testPassword = "correct horse battery staple"

type failingGenerator struct{}

func (failingGenerator) GenerateContent(context.Context, types.SiteStructure, types.BusinessProfile) (types.SiteContent, error) {
	return nil, errors.New("model unavailable")
}

func newTestServer(t *testing.T, opts pipeline.Options) (*Server, store.Store) {
	t.Helper()

	passwords := &config.PasswordConfig{BcryptCost: bcrypt.MinCost}
	hash, err := passwords.HashPassword(testPassword)
	require.NoError(t, err)
	passwords.AdminHash = hash

	logger := zaptest.NewLogger(t)
	opts.Logger = logger
	sites := store.NewMemory()

	s, err := New(Config{
		Orchestrator: pipeline.NewOrchestrator(opts),
		Store:        sites,
		Passwords:    passwords,
		JWT: &config.JWTConfig{
			Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
			ExpirationHours: 1,
			Issuer:          config.DefaultJWTIssuer,
		},
		Logger: logger,
	})
	require.NoError(t, err)
	return s, sites
}

func do(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func login(t *testing.T, s *Server) string {
	t.Helper()
	w := do(t, s, http.MethodPost, "/auth/login", "", LoginRequest{Password: testPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	s, _ := newTestServer(t, pipeline.Options{})

	w := do(t, s, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t, pipeline.Options{})
	do(t, s, http.MethodGet, "/health", "", nil)

	w := do(t, s, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `sitegen_http_requests_total{method="GET",route="GET /health",status="200"}`)
}

func TestLogin(t *testing.T) {
	s, _ := newTestServer(t, pipeline.Options{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"wrong password", LoginRequest{Password: "nope"}, http.StatusUnauthorized},
		{"missing password", map[string]string{}, http.StatusBadRequest},
		{"invalid json", "{", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/auth/login", "", tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}

	assert.NotEmpty(t, login(t, s))
}

func TestSitesRequireAuth(t *testing.T) {
	s, _ := newTestServer(t, pipeline.Options{})

	for _, path := range []string{"/sites/abc", "/sites/abc/document", "/sites/abc/validation"} {
		assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodGet, path, "", nil).Code, path)
		assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodGet, path, "forged", nil).Code, path)
	}
	assert.Equal(t, http.StatusUnauthorized, do(t, s, http.MethodPost, "/sites", "", types.BusinessProfile{}).Code)
}

func TestCreateAndFetchSite(t *testing.T) {
	s, sites := newTestServer(t, pipeline.Options{})
	token := login(t, s)

	w := do(t, s, http.MethodPost, "/sites", token, types.BusinessProfile{
		Name:           "Luna Bistro",
		Industry:       "restaurant",
		Description:    "family-owned Italian restaurant",
		TargetAudience: "local families",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created CreateSiteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ProjectID)
	assert.Equal(t, "/sites/"+created.ProjectID, w.Header().Get("Location"))
	assert.Equal(t, []string{"hero", "menu", "about", "reservations", "contact"}, created.Sections)
	assert.True(t, created.Validation.IsValid)
	assert.Equal(t, 100, created.Validation.Score)

	stored, err := sites.Load(context.Background(), created.ProjectID)
	require.NoError(t, err)

	t.Run("site json", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/sites/"+created.ProjectID, token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var site types.GeneratedSite
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &site))
		assert.Equal(t, stored.Document, site.Document)
		assert.Equal(t, stored.Stylesheet, site.Stylesheet)
	})

	t.Run("document", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/sites/"+created.ProjectID+"/document", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
		assert.Equal(t, stored.Document, w.Body.String())

		outline, err := rendering.Outline(w.Body.String())
		require.NoError(t, err)
		assert.Equal(t, created.Sections, outline)
	})

	t.Run("validation", func(t *testing.T) {
		w := do(t, s, http.MethodGet, "/sites/"+created.ProjectID+"/validation", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"is_valid": true, "issues": [], "score": 100}`, w.Body.String())
	})
}

func TestCreateSite_MalformedProfile(t *testing.T) {
	s, _ := newTestServer(t, pipeline.Options{})
	token := login(t, s)

	w := do(t, s, http.MethodPost, "/sites", token, types.BusinessProfile{Industry: "restaurant"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "malformed profile: name is required"}`, w.Body.String())
}

func TestCreateSite_StageFailure(t *testing.T) {
	s, _ := newTestServer(t, pipeline.Options{ContentGenerator: failingGenerator{}})
	token := login(t, s)

	w := do(t, s, http.MethodPost, "/sites", token, types.BusinessProfile{Name: "Luna Bistro", Industry: "restaurant"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "internal server error"}`, w.Body.String())
}

func TestGetSite_NotFound(t *testing.T) {
	s, _ := newTestServer(t, pipeline.Options{})
	token := login(t, s)

	w := do(t, s, http.MethodGet, "/sites/missing", token, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "site not found"}`, w.Body.String())
}

func TestDeleteSite(t *testing.T) {
	s, sites := newTestServer(t, pipeline.Options{})
	token := login(t, s)

	w := do(t, s, http.MethodPost, "/sites", token, types.BusinessProfile{Name: "Luna Bistro", Industry: "restaurant"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created CreateSiteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do(t, s, http.MethodDelete, "/sites/"+created.ProjectID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, s, http.MethodDelete, "/sites/"+created.ProjectID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	_, err := sites.Load(context.Background(), created.ProjectID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	w = do(t, s, http.MethodDelete, "/sites/"+created.ProjectID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "site not found"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	s, _ := newTestServer(t, pipeline.Options{})

	w := do(t, s, http.MethodOptions, "/sites", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
