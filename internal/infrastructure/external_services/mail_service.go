package external_services

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"golang.org/x/net/html"

	"github.com/ireporter/api/internal/domain/contract"
)

// EmailService sends transactional mail over SMTP. Messages carry an HTML
// body plus a plain-text alternative derived from it.
type EmailService struct {
	Host        string
	Port        string
	Username    string
	AppPassword string
	From        string
}

// EmailService factory
func NewEmailService(host, port, username, appPassword, from string) *EmailService {
	return &EmailService{
		Host:        host,
		Port:        port,
		Username:    username,
		AppPassword: appPassword,
		From:        from,
	}
}

var _ contract.IEmailService = (*EmailService)(nil)

func (es *EmailService) SendVerification(ctx context.Context, to, link string) error {
	subject := "Complete Your Sign-Up for iReporter"
	body := fmt.Sprintf(
		"<p>Welcome to iReporter!</p>"+
			"<p>Please click the link below to complete your registration. "+
			"The link is valid for 24 hours.</p>"+
			"<p><a href=%q>%s</a></p>"+
			"<p>If you did not sign up, please ignore this email.</p>",
		link, link,
	)
	return es.send(to, subject, body)
}

func (es *EmailService) SendPasswordReset(ctx context.Context, to, link string) error {
	subject := "Your password reset token (valid for only 10 minutes)"
	body := fmt.Sprintf(
		"<p>Forgot your password? Click the link below to set a new one.</p>"+
			"<p><a href=%q>%s</a></p>"+
			"<p>If you didn't request a password reset, please ignore this email.</p>",
		link, link,
	)
	return es.send(to, subject, body)
}

func (es *EmailService) SendReportStatusUpdate(ctx context.Context, to, reportTitle, status, link string) error {
	subject := "Your report status has been updated"
	body := fmt.Sprintf(
		"<p>The status of your report <strong>%s</strong> is now <strong>%s</strong>.</p>"+
			"<p><a href=%q>View your report</a></p>",
		reportTitle, status, link,
	)
	return es.send(to, subject, body)
}

// send builds a multipart/alternative message (text + HTML) and submits it.
func (es *EmailService) send(to, subject, htmlBody string) error {
	const boundary = "ireporter-mail-boundary"
	textBody := htmlToText(htmlBody)

	var msg strings.Builder
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "From: iReporter <%s>\r\n", es.From)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	fmt.Fprintf(&msg, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)
	fmt.Fprintf(&msg, "--%s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n", boundary, textBody)
	fmt.Fprintf(&msg, "--%s\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n", boundary, htmlBody)
	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	auth := smtp.PlainAuth("", es.Username, es.AppPassword, es.Host)
	addr := fmt.Sprintf("%s:%s", es.Host, es.Port)
	if err := smtp.SendMail(addr, auth, es.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}

// htmlToText produces the plain-text alternative by collecting text nodes.
func htmlToText(s string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var out strings.Builder
	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return strings.TrimSpace(out.String())
		case html.TextToken:
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text != "" {
				if out.Len() > 0 {
					out.WriteString("\n")
				}
				out.WriteString(text)
			}
		}
	}
}
