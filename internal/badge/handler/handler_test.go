package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"badgeforge/internal/badge"
	dErrors "badgeforge/pkg/domain-errors"
)

type stubService struct {
	renderFn func(ctx context.Context, req badge.Request) (badge.Artifact, error)
	sendFn   func(ctx context.Context, req badge.Request) error
	renders  int
	sends    int
}

func (s *stubService) Render(ctx context.Context, req badge.Request) (badge.Artifact, error) {
	s.renders++
	return s.renderFn(ctx, req)
}

func (s *stubService) Send(ctx context.Context, req badge.Request) error {
	s.sends++
	return s.sendFn(ctx, req)
}

func okArtifact(req badge.Request) (badge.Artifact, error) {
	id := badge.Normalize(req)
	return badge.Artifact{Bytes: []byte("png-bytes"), Filename: id.Filename()}, nil
}

func newRouter(svc *stubService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	New(svc, logger).Register(r)
	return r
}

func TestGenerateInlineGET(t *testing.T) {
	svc := &stubService{renderFn: func(_ context.Context, req badge.Request) (badge.Artifact, error) {
		return okArtifact(req)
	}}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/generate-badge?email=jane@example.com&name=Jane+Doe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
	assert.Equal(t, "0", w.Header().Get("Expires"))
	assert.Empty(t, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "png-bytes", w.Body.String())
}

func TestGenerateInlineIsHeaderIdempotent(t *testing.T) {
	svc := &stubService{renderFn: func(_ context.Context, req badge.Request) (badge.Artifact, error) {
		return okArtifact(req)
	}}
	router := newRouter(svc)

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/generate-badge?email=jane@example.com", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first, second := do(), do()
	assert.Equal(t, first.Header(), second.Header())
	assert.Empty(t, first.Header().Get("Content-Disposition"))
}

func TestGenerateDownloadFlagAddsDisposition(t *testing.T) {
	svc := &stubService{renderFn: func(_ context.Context, req badge.Request) (badge.Artifact, error) {
		return okArtifact(req)
	}}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/generate-badge?email=jane@example.com&name=Jane+Doe&download=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, `attachment; filename=jane_doe_badge.png`, w.Header().Get("Content-Disposition"))
}

func TestGeneratePOSTAlwaysDownloads(t *testing.T) {
	svc := &stubService{renderFn: func(_ context.Context, req badge.Request) (badge.Artifact, error) {
		return okArtifact(req)
	}}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-badge", strings.NewReader(`{"email":"jane@example.com"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename=guest_badge.png`, w.Header().Get("Content-Disposition"))
}

func TestGenerateValidationFailureNeverRenders(t *testing.T) {
	svc := &stubService{renderFn: func(context.Context, badge.Request) (badge.Artifact, error) {
		return badge.Artifact{}, nil
	}}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/generate-badge?name=Jane", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, svc.renders)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["errors"])
}

func TestGenerateFailureYieldsGeneric500(t *testing.T) {
	svc := &stubService{renderFn: func(context.Context, badge.Request) (badge.Artifact, error) {
		return badge.Artifact{}, dErrors.Wrap(dErrors.CodeGeneration, "failed to generate badge", errors.New("secret detail"))
	}}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/generate-badge?email=jane@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret detail")
	assert.Contains(t, w.Body.String(), "failed to generate badge")
}

func TestSendBadge(t *testing.T) {
	var sent badge.Request
	svc := &stubService{sendFn: func(_ context.Context, req badge.Request) error {
		sent = req
		return nil
	}}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/send-badge", strings.NewReader(`{"email":"jane@example.com","name":"Jane"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jane@example.com", sent.Email)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["message"], "jane@example.com")
}

func TestSendBadgeValidation(t *testing.T) {
	svc := &stubService{sendFn: func(context.Context, badge.Request) error { return nil }}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/send-badge", strings.NewReader(`{"name":"Jane"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, svc.sends)
}

func TestSendBadgeDispatchFailure(t *testing.T) {
	svc := &stubService{sendFn: func(context.Context, badge.Request) error {
		return dErrors.Wrap(dErrors.CodeDispatch, "failed to send badge email", errors.New("smtp down"))
	}}
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/send-badge", strings.NewReader(`{"email":"jane@example.com"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "smtp down")
}
