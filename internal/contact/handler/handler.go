// Package handler exposes the contact-form endpoint.
package handler

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"badgeforge/internal/contact"
	"badgeforge/internal/platform/metrics"
	dErrors "badgeforge/pkg/domain-errors"
	"badgeforge/pkg/platform/httputil"
	"badgeforge/pkg/requestcontext"
)

// Handler handles contact submissions.
type Handler struct {
	logger  *slog.Logger
	sink    contact.Sink
	metrics *metrics.Metrics
}

// New creates a contact Handler.
func New(sink contact.Sink, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		sink:    sink,
		metrics: m,
	}
}

// Register registers the contact route with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/contact", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sub, err := contact.ParseSubmission(r.Body)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid contact submission",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	if err := h.sink.Record(ctx, sub); err != nil {
		h.logger.ErrorContext(ctx, "contact sink failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeSink, "failed to record submission", err))
		return
	}

	h.metrics.IncContactSubmission()
	httputil.WriteSuccess(w, "Message received")
}
