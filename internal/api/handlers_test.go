package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing_page_server/internal/generator"
	"landing_page_server/internal/logging"
	"landing_page_server/internal/metrics"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T, maxLen int) (*gin.Engine, *APIHandler, *metrics.Recorder) {
	t.Helper()
	logger := logging.NewNop()
	recorder := metrics.NewRecorder(nil)
	h := NewAPIHandler(logger, recorder, maxLen)
	return NewRouter(h, logger, recorder), h, recorder
}

func post(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestGenerate(t *testing.T) {
	router, _, recorder := newTestRouter(t, 0)

	rec := post(router, "/api/generate", `{"prompt": "Introducing Acme, a dark SaaS with pricing"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	want, err := generator.Generate("Introducing Acme, a dark SaaS with pricing")
	require.NoError(t, err)
	assert.Equal(t, want, resp.HTML)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.Generated("dark")))
}

func TestGenerateRejectsMissingPrompt(t *testing.T) {
	router, _, recorder := newTestRouter(t, 0)

	for _, body := range []string{"", `{}`, `{"prompt": ""}`, `{"prompt": "   \n\t"}`} {
		rec := post(router, "/api/generate", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Equal(t, "Prompt is required", decodeError(t, rec), "body %q", body)
	}
	assert.Equal(t, 4.0, testutil.ToFloat64(recorder.Rejected(metrics.ReasonMissingPrompt)))
}

func TestGenerateRejectsInvalidBody(t *testing.T) {
	router, _, _ := newTestRouter(t, 0)

	for _, body := range []string{"not json", `{"prompt": 42}`} {
		rec := post(router, "/api/generate", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Equal(t, "Invalid request body", decodeError(t, rec))
	}
}

func TestGenerateRejectsLongPrompt(t *testing.T) {
	router, _, recorder := newTestRouter(t, 10)

	rec := post(router, "/api/generate", `{"prompt": "ÉÉÉÉÉÉÉÉÉÉ"}`)
	assert.Equal(t, http.StatusOK, rec.Code, "ten runes is within the limit")

	rec = post(router, "/api/generate", `{"prompt": "eleven runes"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Prompt is too long", decodeError(t, rec))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.Rejected(metrics.ReasonTooLong)))
}

func TestGenerateSurfacesComposeError(t *testing.T) {
	router, h, recorder := newTestRouter(t, 0)
	h.compose = func(generator.Signals) (string, error) {
		return "", errors.New("render landing page: broken template")
	}

	rec := post(router, "/api/generate", `{"prompt": "anything"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "render landing page: broken template", decodeError(t, rec))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.Rejected(metrics.ReasonInternal)))
}

func TestGenerateRecoversFromPanic(t *testing.T) {
	router, h, recorder := newTestRouter(t, 0)
	h.extract = func(string) generator.Signals { panic("unexpected") }

	rec := post(router, "/api/generate", `{"prompt": "anything"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to generate landing page", decodeError(t, rec))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.Rejected(metrics.ReasonInternal)))
}

func TestDownload(t *testing.T) {
	router, _, _ := newTestRouter(t, 0)

	rec := post(router, "/api/generate/download", `{"prompt": "green agency"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="landing-page.html"`, rec.Header().Get("Content-Disposition"))

	want, err := generator.Generate("green agency")
	require.NoError(t, err)
	assert.Equal(t, want, rec.Body.String())

	rec = post(router, "/api/generate/download", `{"prompt": " "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	router, _, _ := newTestRouter(t, 0)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestIndexAndMetrics(t *testing.T) {
	router, _, _ := newTestRouter(t, 0)
	post(router, "/api/generate", `{"prompt": "purple reviews"}`)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<textarea id="prompt"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `landing_pages_generated_total{scheme="purple"} 1`)
	assert.Contains(t, rec.Body.String(), `landing_sections_rendered_total{section="testimonials"} 1`)
}

func TestMetricsDisabled(t *testing.T) {
	logger := logging.NewNop()
	router := NewRouter(NewAPIHandler(logger, nil, 0), logger, nil)

	rec := post(router, "/api/generate", `{"prompt": "blue"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
