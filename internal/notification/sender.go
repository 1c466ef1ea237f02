package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

// Sender delivers one plain text email.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPSender sends through an SMTP relay, authenticating when a user is
// configured.
type SMTPSender struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPSender(config utils.EmailConfig) *SMTPSender {
	host := strings.TrimSpace(config.Host)

	var auth smtp.Auth
	if config.User != "" {
		auth = smtp.PlainAuth("", config.User, config.Password, host)
	}

	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", host, config.Port),
		from: strings.TrimSpace(config.From),
		auth: auth,
	}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)

	// net/smtp has no context support; give up waiting when ctx ends
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		strings.ReplaceAll(body, "\n", "\r\n"),
	)
}

// LogSender only logs, for environments without a mail relay.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.With(zap.String("sender", "log"))}
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	s.log.Info("Email suppressed",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
