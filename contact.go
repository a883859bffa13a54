package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/observability"
	"github.com/Zachkp/portfolio/internal/store"
)

var errSMTPNotConfigured = errors.New("SMTP credentials not configured")

// storeTimeout bounds each contact message write on its own.
var storeTimeout = 5 * time.Second

type contactMessage struct {
	Name    string
	Email   string
	Message string
}

type mailer interface {
	Send(msg contactMessage) error
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

func (m smtpMailer) Send(msg contactMessage) error {
	if !m.cfg.Configured() {
		return errSMTPNotConfigured
	}
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	if err := smtp.SendMail(addr, auth, m.cfg.User, []string{m.cfg.To}, composeEmail(m.cfg, msg)); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}

func composeEmail(cfg config.SMTPConfig, msg contactMessage) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", msg.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	return []byte("To: " + cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// validateContact trims the form and rejects anything that could not be
// answered. Header-breaking characters are refused outright.
func validateContact(name, email, message string) (contactMessage, bool) {
	msg := contactMessage{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Message: strings.TrimSpace(message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return msg, false
	}
	if strings.ContainsAny(msg.Name+msg.Email, "\r\n") {
		return msg, false
	}
	addr, err := mail.ParseAddress(msg.Email)
	if err != nil || addr.Address != msg.Email {
		return msg, false
	}
	return msg, true
}

func (s *server) handleContact(c *gin.Context) {
	view := s.page(c)
	msg, ok := validateContact(c.PostForm("fullName"), c.PostForm("email"), c.PostForm("message"))
	if !ok {
		view.Flash = view.T("contact.invalid")
		c.HTML(http.StatusUnprocessableEntity, "contact-error.html", view)
		return
	}

	saveCtx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	id, err := s.store.SaveMessage(saveCtx, store.Message{Name: msg.Name, Email: msg.Email, Body: msg.Message, Lang: view.Lang})
	cancel()
	if err != nil {
		s.log.Error().Err(err).Msg("save contact message")
	}

	if err := s.mailer.Send(msg); err != nil {
		s.log.Error().Err(err).Msg("send contact email")
		observability.RecordContact(false)
		view.Flash = view.T("contact.error")
		c.HTML(http.StatusOK, "contact-error.html", view)
		return
	}
	observability.RecordContact(true)
	if id > 0 {
		// The mail is out; record it even if the client has gone away.
		markCtx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), storeTimeout)
		if err := s.store.MarkDelivered(markCtx, id); err != nil {
			s.log.Error().Err(err).Int64("message", id).Msg("mark contact delivered")
		}
		cancel()
	}

	s.log.Info().Str("name", msg.Name).Msg("contact email sent")
	view.Flash = view.T("contact.success")
	c.HTML(http.StatusOK, "contact-success.html", view)
}
