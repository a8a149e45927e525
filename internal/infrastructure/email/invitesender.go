// Package email sends invitation mail over SMTP when the identity
// provider's invitation API is not configured.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "helpdesk/internal/shared/config"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SMTPInviteSender struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Interface
}

func NewSMTPInviteSender(cfg sharedConfig.EmailConfig, logger logger.Interface) *SMTPInviteSender {
	return &SMTPInviteSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

func (s *SMTPInviteSender) SendInvite(ctx context.Context, email, roleHint string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "You have been invited to the helpdesk")

	body := "You have been invited to join the helpdesk."
	if roleHint != "" {
		body = fmt.Sprintf("You have been invited to join the helpdesk as %s.", roleHint)
	}
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Errorw("failed to send invitation email", "error", err, "email", email)
		return apperrors.NewUpstreamError("failed to send invitation email")
	}
	return nil
}
