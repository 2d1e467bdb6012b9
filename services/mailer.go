package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog"

	"venue-backend/config"
)

// OutboundEmail is one fully addressed notification ready for dispatch.
type OutboundEmail struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
	RefID   string
}

// Mailer delivers a single message per call.
type Mailer interface {
	Send(ctx context.Context, email *OutboundEmail) error
}

// SMTPMailer sends through a plain SMTP account, opening a fresh connection
// per call.
type SMTPMailer struct {
	cfg config.SMTPConfig
	log zerolog.Logger
}

func NewSMTPMailer(cfg config.SMTPConfig, log zerolog.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg: cfg,
		log: log.With().Str("component", "mailer").Logger(),
	}
}

func (m *SMTPMailer) Send(ctx context.Context, email *OutboundEmail) error {
	msg := m.buildMessage(email)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" || m.cfg.Password != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	var err error
	if m.cfg.Secure {
		err = m.sendTLS(addr, auth, email.To, msg)
	} else {
		err = smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{email.To}, msg)
	}
	if err != nil {
		m.log.Error().Err(err).Str("to", email.To).Str("ref_id", email.RefID).Msg("smtp dispatch failed")
		return fmt.Errorf("send mail: %w", err)
	}

	m.log.Info().Str("to", email.To).Str("ref_id", email.RefID).Msg("notification sent")
	return nil
}

// sendTLS covers implicit-TLS ports (465); STARTTLS-capable ports go through
// smtp.SendMail above.
func (m *SMTPMailer) sendTLS(addr string, auth smtp.Auth, to string, msg []byte) error {
	tlsCfg := &tls.Config{
		ServerName: m.cfg.Host,
		MinVersion: tls.VersionTLS12,
	}
	conn, err := tls.Dial("tcp", addr, tlsCfg)
	if err != nil {
		return fmt.Errorf("dial tls: %w", err)
	}

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer c.Close()

	if auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(auth); err != nil {
				return fmt.Errorf("auth: %w", err)
			}
		}
	}
	if err := c.Mail(m.cfg.FromEmail); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}
	return c.Quit()
}

// buildMessage assembles a multipart/alternative message carrying both the
// plain-text and HTML renderings.
func (m *SMTPMailer) buildMessage(email *OutboundEmail) []byte {
	from := fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.FromEmail)
	boundary := "----=_INQUIRY_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", email.To))
	if email.ReplyTo != "" {
		sb.WriteString(fmt.Sprintf("Reply-To: %s\r\n", email.ReplyTo))
	}
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(email.Subject)))
	if email.RefID != "" {
		sb.WriteString(fmt.Sprintf("X-Entity-Ref-ID: %s\r\n", email.RefID))
	}
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(email.Text + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(email.HTML + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return []byte(sb.String())
}

func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
