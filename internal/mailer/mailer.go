// Package mailer delivers rendered badges over SMTP.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	mail "github.com/wneessen/go-mail"

	"badgeforge/internal/badge"
	"badgeforge/internal/platform/config"
	pkgemail "badgeforge/pkg/email"
	"badgeforge/pkg/requestcontext"
)

// Mailer sends badge emails through an SMTP relay.
type Mailer struct {
	logger *slog.Logger
	client *mail.Client
	from   string
}

// New builds a Mailer from SMTP config. Auth is only negotiated when a
// username is configured, so a local relay works without credentials.
func New(cfg config.SMTP, logger *slog.Logger) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &Mailer{
		logger: logger,
		client: client,
		from:   cfg.From,
	}, nil
}

// Send emails the rendered badge to the identity's address. The attachment
// carries the same bytes and filename an inline download would have used.
func (m *Mailer) Send(ctx context.Context, id badge.Identity, artifact badge.Artifact) error {
	msg, err := m.buildMessage(id, artifact)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send badge email: %w", err)
	}

	m.logger.InfoContext(ctx, "badge email sent",
		"request_id", requestcontext.RequestID(ctx),
		"email", id.Email,
	)
	return nil
}

func (m *Mailer) buildMessage(id badge.Identity, artifact badge.Artifact) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(id.Email); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}

	msg.Subject("Your badge is ready")
	msg.SetBodyString(mail.TypeTextPlain, greetingBody(id))
	if err := msg.AttachReader(artifact.Filename, bytes.NewReader(artifact.Bytes)); err != nil {
		return nil, fmt.Errorf("attach badge: %w", err)
	}
	return msg, nil
}

func greetingBody(id badge.Identity) string {
	name := id.Name
	if name == badge.DefaultName {
		// A defaulted name reads cold in an email; derive something warmer
		// from the address local part.
		name = pkgemail.DeriveDisplayName(id.Email)
	}
	return fmt.Sprintf("Hi %s,\n\nThanks for stopping by. Your badge is attached.\n\n— The badgeforge team\n", name)
}
