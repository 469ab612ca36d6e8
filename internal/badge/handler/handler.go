// Package handler exposes the badge pipeline over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"badgeforge/internal/badge"
	"badgeforge/pkg/platform/httputil"
	"badgeforge/pkg/requestcontext"
)

// Service defines the delivery operations the handler needs.
type Service interface {
	Render(ctx context.Context, req badge.Request) (badge.Artifact, error)
	Send(ctx context.Context, req badge.Request) error
}

// Handler handles the badge endpoints.
type Handler struct {
	logger *slog.Logger
	badges Service
}

// New creates a badge Handler.
func New(badges Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		badges: badges,
	}
}

// Register registers the badge routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/generate-badge", h.handleGenerate)
	r.Post("/api/generate-badge", h.handleGenerate)
	r.Post("/api/send-badge", h.handleSend)
}

// handleGenerate returns the badge inline. A POST, or download=true on a
// GET, signals download intent and adds the attachment disposition.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req badge.Request
	var download bool
	var err error
	if r.Method == http.MethodPost {
		download = true
		req, err = badge.ParseJSON(r.Body)
	} else {
		download, _ = strconv.ParseBool(r.URL.Query().Get("download"))
		req, err = badge.ParseQuery(r.URL.Query())
	}
	if err != nil {
		h.logger.WarnContext(ctx, "invalid badge request",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	artifact, err := h.badges.Render(ctx, req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	header := w.Header()
	header.Set("Content-Type", "image/png")
	header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	header.Set("Pragma", "no-cache")
	header.Set("Expires", "0")
	if download {
		header.Set("Content-Disposition", `attachment; filename=`+artifact.Filename)
	}
	_, _ = w.Write(artifact.Bytes)
}

// handleSend generates the badge and emails it; the response carries only
// the envelope, never binary content.
func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := badge.ParseJSON(r.Body)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid badge request",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	if err := h.badges.Send(ctx, req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, "Badge sent to "+req.Email)
}
