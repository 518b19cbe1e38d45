// Package mailer sends the service's account emails over SMTP. All sends
// are best-effort from the caller's point of view; the service logs and
// drops any error returned here.
package mailer

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer       *gomail.Dialer
	from         string
	resetBaseURL string
}

func New(host string, port int, username, password, resetBaseURL string) *Mailer {
	return &Mailer{
		dialer:       gomail.NewDialer(host, port, username, password),
		from:         username,
		resetBaseURL: resetBaseURL,
	}
}

func (m *Mailer) AccountCreated(ctx context.Context, email, username string) error {
	body := fmt.Sprintf("Welcome %s!\r\n\r\nYour account has been created.", username)
	return m.send(ctx, email, "Account created", body)
}

func (m *Mailer) ResetLink(ctx context.Context, email, username, token string) error {
	link := fmt.Sprintf("%s/reset_password/%s?username=%s", m.resetBaseURL, token, username)
	body := fmt.Sprintf("Hello %s,\r\n\r\nFollow this link to reset your password:\r\n%s\r\n\r\nThe link expires in one hour.", username, link)
	return m.send(ctx, email, "Password reset", body)
}

func (m *Mailer) PasswordChanged(ctx context.Context, email, username string) error {
	body := fmt.Sprintf("Hello %s,\r\n\r\nYour password was just reset. If this wasn't you, contact support.", username)
	return m.send(ctx, email, "Password was reset", body)
}

func (m *Mailer) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send %q to %s: %w", subject, to, err)
	}
	return nil
}
