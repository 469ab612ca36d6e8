// Package service routes validated badge requests through a single
// generation call and into one of the two delivery branches.
package service

import (
	"context"
	"log/slog"

	"badgeforge/internal/badge"
	"badgeforge/internal/platform/metrics"
	dErrors "badgeforge/pkg/domain-errors"
	"badgeforge/pkg/requestcontext"
)

// Generator produces the badge PNG for a normalized identity.
type Generator interface {
	Generate(ctx context.Context, id badge.Identity) ([]byte, error)
}

// Dispatcher delivers a rendered badge to the identity's address. It
// receives the exact artifact an inline caller would have gotten.
type Dispatcher interface {
	Send(ctx context.Context, id badge.Identity, artifact badge.Artifact) error
}

// Service is the delivery router. Both branches share the
// normalize-then-generate front half; delivery differs per entry point.
type Service struct {
	logger     *slog.Logger
	generator  Generator
	dispatcher Dispatcher
	metrics    *metrics.Metrics
}

func New(logger *slog.Logger, generator Generator, dispatcher Dispatcher, m *metrics.Metrics) *Service {
	return &Service{
		logger:     logger,
		generator:  generator,
		dispatcher: dispatcher,
		metrics:    m,
	}
}

// Render generates the badge for inline delivery.
func (s *Service) Render(ctx context.Context, req badge.Request) (badge.Artifact, error) {
	artifact, _, err := s.generate(ctx, req)
	if err != nil {
		return badge.Artifact{}, err
	}
	s.metrics.IncBadgeRendered("inline")
	return artifact, nil
}

// Send generates the badge once and hands identity plus artifact to the
// email dispatcher.
func (s *Service) Send(ctx context.Context, req badge.Request) error {
	artifact, id, err := s.generate(ctx, req)
	if err != nil {
		return err
	}

	if err := s.dispatcher.Send(ctx, id, artifact); err != nil {
		s.logger.ErrorContext(ctx, "badge email dispatch failed",
			"request_id", requestcontext.RequestID(ctx),
			"email", id.Email,
			"error", err.Error(),
		)
		s.metrics.IncBadgeFailure("dispatch")
		return dErrors.Wrap(dErrors.CodeDispatch, "failed to send badge email", err)
	}

	s.metrics.IncBadgeRendered("email")
	return nil
}

func (s *Service) generate(ctx context.Context, req badge.Request) (badge.Artifact, badge.Identity, error) {
	id := badge.Normalize(req)

	bytes, err := s.generator.Generate(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "badge generation failed",
			"request_id", requestcontext.RequestID(ctx),
			"email", id.Email,
			"error", err.Error(),
		)
		s.metrics.IncBadgeFailure("generation")
		return badge.Artifact{}, id, dErrors.Wrap(dErrors.CodeGeneration, "failed to generate badge", err)
	}

	return badge.Artifact{Bytes: bytes, Filename: id.Filename()}, id, nil
}
