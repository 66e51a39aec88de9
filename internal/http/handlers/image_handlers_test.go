package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/imagify-art/imagify-backend/internal/config"
	"github.com/imagify-art/imagify-backend/internal/http/handlers"
	"github.com/imagify-art/imagify-backend/internal/http/routes"
	"github.com/imagify-art/imagify-backend/internal/models"
	"github.com/imagify-art/imagify-backend/internal/services/generator"
	"github.com/imagify-art/imagify-backend/internal/services/stats"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := handlers.NewImageHandler(
		generator.NewGenerator(),
		nil,
		stats.NewService(cfg.Redis, zap.NewNop()),
		zap.NewNop(),
		cfg,
	)
	return routes.NewRouter(handler, zap.NewNop()).SetupRoutes()
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpoint(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	w := postJSON(router, "/api/generate",
		`{"prompt":"a cat","aspect":"16:9","resolution":"512×512","count":2}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, []string{
		"https://image.pollinations.ai/prompt/a cat?width=910&height=512&seed=1000&nologo=true",
		"https://image.pollinations.ai/prompt/a cat?width=910&height=512&seed=1001&nologo=true",
	}, resp.Images)
}

func TestGenerateEndpointDefaults(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	w := postJSON(router, "/api/generate",
		`{"prompt":"sunset over water","art_type":"digital","style":"realistic","model":"Pollination AI"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Images, 6)
	for i, url := range resp.Images {
		require.Equal(t, fmt.Sprintf(
			"https://image.pollinations.ai/prompt/sunset over water?width=512&height=512&seed=%d&nologo=true",
			1000+i,
		), url)
	}
}

func TestGenerateEndpointUnknownAspect(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	w := postJSON(router, "/api/generate", `{"prompt":"a cat","aspect":"7:5","count":1}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t,
		`{"images":["https://image.pollinations.ai/prompt/a cat?width=512&height=512&seed=1000&nologo=true"]}`,
		w.Body.String())
}

func TestGenerateEndpointShortPrompt(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	// Long enough before trimming, too short after.
	w := postJSON(router, "/api/generate", `{"prompt":"  a  "}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"success":false,"error":"Prompt is too short."}`, w.Body.String())
}

func TestGenerateEndpointRejectsInvalidBody(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	tests := []struct {
		name string
		body string
	}{
		{"missing prompt", `{}`},
		{"two character prompt", `{"prompt":"ab"}`},
		{"count zero", `{"prompt":"a cat","count":0}`},
		{"count too high", `{"prompt":"a cat","count":10}`},
		{"malformed json", `{"prompt":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/generate", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp models.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.False(t, resp.Success)
			require.NotEmpty(t, resp.Error)
		})
	}
}

func TestGenerateEndpointRequiresJSON(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader("prompt=a+cat"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	require.JSONEq(t, `{"success":false,"error":"Content-Type must be application/json"}`, w.Body.String())
}

func TestRootEndpoint(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	w := get(router, "/")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Imagify.art Backend Running"}`, w.Body.String())
}

func TestHelloEndpoint(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	w := get(router, "/api/hello")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Hello from the backend API!"}`, w.Body.String())
}

func TestSecurityHeaders(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	w := get(router, "/")

	require.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t, &config.Config{})

	w := get(router, "/")
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, "caller-supplied-id", w.Header().Get("X-Request-ID"))
}
