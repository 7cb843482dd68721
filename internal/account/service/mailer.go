package service

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	apperrors "github.com/setlistify/setlistify/internal/errors"
)

// Mailer delivers password-reset codes out-of-band.
type Mailer interface {
	SendPasswordResetCode(ctx context.Context, to, code string) error
}

// smtpMailer delivers through a plain SMTP relay with a bounded dial+send.
type smtpMailer struct {
	addr    string
	from    string
	timeout time.Duration
}

// NewSMTPMailer creates a Mailer that sends through the relay at addr (host:port).
func NewSMTPMailer(addr, from string, timeout time.Duration) Mailer {
	return &smtpMailer{addr: addr, from: from, timeout: timeout}
}

func (m *smtpMailer) SendPasswordResetCode(ctx context.Context, to, code string) error {
	deadline := time.Now().Add(m.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	conn, err := net.DialTimeout("tcp", m.addr, time.Until(deadline))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrUpstream, "failed to dial smtp relay: "+err.Error())
	}
	_ = conn.SetDeadline(deadline)

	host := m.addr
	if h, _, splitErr := net.SplitHostPort(m.addr); splitErr == nil {
		host = h
	}

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		_ = conn.Close()
		return apperrors.Wrap(apperrors.ErrUpstream, "failed to create smtp client: "+err.Error())
	}
	defer func() { _ = client.Close() }()

	if err := m.send(client, to, code); err != nil {
		return apperrors.Wrap(apperrors.ErrUpstream, "failed to send reset email: "+err.Error())
	}
	return client.Quit()
}

func (m *smtpMailer) send(client *smtp.Client, to, code string) error {
	if err := client.Mail(m.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: Your password reset code",
		"",
		fmt.Sprintf("Your password reset code is %s. It expires in 10 minutes.", code),
		"",
	}, "\r\n")

	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	return w.Close()
}

// logMailer logs codes instead of sending them. Development only.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a Mailer that writes codes to the log instead of
// delivering email. Used when no SMTP relay is configured.
func NewLogMailer(logger *slog.Logger) Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendPasswordResetCode(_ context.Context, to, code string) error {
	m.logger.Info("password reset code issued",
		slog.String("to", to),
		slog.String("code", code),
	)
	return nil
}
