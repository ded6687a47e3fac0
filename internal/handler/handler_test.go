package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deppfellow/go-blog/internal/config"
	"github.com/deppfellow/go-blog/internal/middleware"
	"github.com/deppfellow/go-blog/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

func (r *echoRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{Config: config.Default(), Logger: &logger}
}

func TestNewRequestIsFresh(t *testing.T) {
	prototype := &echoRequest{Name: "stale"}

	first := newRequest(prototype)
	second := newRequest(prototype)

	assert.NotSame(t, prototype, first)
	assert.NotSame(t, first, second)
	assert.Empty(t, first.Name)
}

func TestHandleDoesNotLeakFieldsBetweenRequests(t *testing.T) {
	e := echo.New()
	h := NewHandler(newTestServer())

	e.POST("/echo", Handle(h, func(c echo.Context, req *echoRequest) (*echoRequest, error) {
		return req, nil
	}, http.StatusCreated, &echoRequest{}))

	post := func(body string) echoRequest {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var out echoRequest
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		return out
	}

	assert.Equal(t, echoRequest{Name: "a", Tag: "first"}, post(`{"name":"a","tag":"first"}`))
	assert.Equal(t, echoRequest{Name: "b"}, post(`{"name":"b"}`))
}

func TestHandleReturnsValidationError(t *testing.T) {
	s := newTestServer()
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	h := NewHandler(s)
	called := false

	e.POST("/echo", Handle(h, func(c echo.Context, req *echoRequest) (*echoRequest, error) {
		called = true
		return req, nil
	}, http.StatusOK, &echoRequest{}))

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	run := func(checks ...dependencyCheck) (*httptest.ResponseRecorder, map[string]interface{}) {
		h := NewHealthHandler(newTestServer())
		h.checks = checks

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)
		require.NoError(t, h.CheckHealth(c))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return rec, body
	}

	t.Run("Healthy", func(t *testing.T) {
		rec, body := run(
			dependencyCheck{name: "database", required: true, ping: ok},
			dependencyCheck{name: "redis", ping: ok},
		)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", body["status"])
		assert.Len(t, body["checks"], 2)
	})

	t.Run("DatabaseDown", func(t *testing.T) {
		rec, body := run(dependencyCheck{name: "database", required: true, ping: down})
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unhealthy", body["status"])

		database := body["checks"].(map[string]interface{})["database"].(map[string]interface{})
		assert.Equal(t, "connection refused", database["error"])
	})

	t.Run("RedisDownIsReportedOnly", func(t *testing.T) {
		rec, body := run(
			dependencyCheck{name: "database", required: true, ping: ok},
			dependencyCheck{name: "redis", ping: down},
		)
		assert.Equal(t, http.StatusOK, rec.Code)

		redis := body["checks"].(map[string]interface{})["redis"].(map[string]interface{})
		assert.Equal(t, "unhealthy", redis["status"])
	})
}

func TestNewHealthHandlerSkipsMissingDependencies(t *testing.T) {
	assert.Empty(t, NewHealthHandler(newTestServer()).checks)
}

func TestServeOpenAPIUI(t *testing.T) {
	page := filepath.Join(t.TempDir(), "openapi.html")
	require.NoError(t, os.WriteFile(page, []byte("<html>docs</html>"), 0o600))

	h := NewOpenAPIHandler(newTestServer())
	h.uiPath = page

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), rec)
	require.NoError(t, h.ServeOpenAPIUI(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "docs")

	h.uiPath = filepath.Join(t.TempDir(), "missing.html")
	assert.Error(t, h.ServeOpenAPIUI(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), httptest.NewRecorder())))
}
