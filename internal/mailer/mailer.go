package mailer

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/bglit/lunch-backend/internal/config"
	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("mailer: SMTP is not configured")

// Mailer sends verification and password-reset mail over SMTP.
type Mailer struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
}

func New(cfg *config.Config) *Mailer {
	m := &Mailer{
		from:    cfg.MailFrom,
		baseURL: cfg.AppBaseURL,
	}
	if cfg.SMTPHost != "" {
		m.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return m
}

// SendVerificationEmail mails the 24-hour verification link.
func (m *Mailer) SendVerificationEmail(email, token, username string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s&email=%s", m.baseURL, token, url.QueryEscape(email))

	body := fmt.Sprintf(`<h1>Welcome to Lunch App, %s!</h1>
<p>Please verify your email address by clicking the link below:</p>
<p><a href="%s">Verify Email</a></p>
<p>Or copy and paste this link:</p>
<p>%s</p>
<p>This link will expire in 24 hours.</p>`, username, link, link)

	return m.send(email, "Verify your Lunch App email", body)
}

// SendPasswordResetEmail mails the 1-hour reset link.
func (m *Mailer) SendPasswordResetEmail(email, token, username string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s", m.baseURL, token, url.QueryEscape(email))

	body := fmt.Sprintf(`<h1>Password Reset Request</h1>
<p>Hi %s,</p>
<p>We received a request to reset your password. Click the link below to create a new password:</p>
<p><a href="%s">Reset Password</a></p>
<p>Or copy and paste this link:</p>
<p>%s</p>
<p>This link will expire in 1 hour.</p>
<p>If you didn't request this, please ignore this email.</p>`, username, link, link)

	return m.send(email, "Reset your Lunch App password", body)
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	if m.dialer == nil {
		return ErrNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
