// Package email: pengirim email transaksional (SendGrid), fallback ke log kalau API key kosong.
package email

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"madrasa_backend/internals/configs"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// diganti di test
var sendgridAPI = sendgrid.API

type Message struct {
	ToName  string
	ToEmail string
	Subject string
	Text    string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSenderFromEnv: SENDGRID_API_KEY ada → SendGrid, selain itu console.
func NewSenderFromEnv() Sender {
	appName := configs.GetEnv("APP_NAME", "Madrasa Admin")
	from := configs.GetEnv("MAIL_FROM", "no-reply@madrasa.local")
	key := strings.TrimSpace(configs.GetEnv("SENDGRID_API_KEY"))
	if key == "" {
		log.Println("[INFO] SENDGRID_API_KEY kosong, email hanya ditulis ke log")
		return &ConsoleSender{SubjectPrefix: "[" + appName + "] "}
	}
	return NewSendGridSender(key, appName, from)
}

/* ===================== SendGrid ===================== */

type SendGridSender struct {
	key        string
	from       *sgmail.Email
	subjPrefix string
}

func NewSendGridSender(key, appName, fromEmail string) *SendGridSender {
	return &SendGridSender{
		key:        key,
		from:       sgmail.NewEmail(appName, fromEmail),
		subjPrefix: "[" + appName + "] ",
	}
}

func (s *SendGridSender) prepare(msg Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = s.subjPrefix + msg.Subject
	p.AddTos(sgmail.NewEmail(msg.ToName, msg.ToEmail))

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.Text))
	if msg.HTML != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}
	return m
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.ToEmail) == "" {
		return fmt.Errorf("email tujuan kosong")
	}
	req := sendgrid.GetRequest(s.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(msg))

	// sendgrid.API tidak menerima context: tunggu di goroutine, ctx yang menentukan batas
	type result struct {
		status int
		body   string
		err    error
	}
	done := make(chan result, 1)
	go func() {
		res, err := sendgridAPI(req)
		if err != nil {
			done <- result{err: err}
			return
		}
		done <- result{status: res.StatusCode, body: res.Body}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("sendgrid: %w", ctx.Err())
	case r := <-done:
		if r.err != nil {
			return r.err
		}
		if r.status >= http.StatusBadRequest {
			return fmt.Errorf("sendgrid status %d: %s", r.status, r.body)
		}
		return nil
	}
}

/* ===================== Console ===================== */

type ConsoleSender struct {
	SubjectPrefix string
}

func (s *ConsoleSender) Send(_ context.Context, msg Message) error {
	log.Printf("[INFO] 📧 email to=%s subject=%q\n%s", msg.ToEmail, s.SubjectPrefix+msg.Subject, msg.Text)
	return nil
}
