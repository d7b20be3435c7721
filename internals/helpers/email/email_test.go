package email

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/sendgrid/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubAPI(t *testing.T, fn func(rest.Request) (*rest.Response, error)) {
	t.Helper()
	orig := sendgridAPI
	sendgridAPI = fn
	t.Cleanup(func() { sendgridAPI = orig })
}

func TestSendGridPrepare(t *testing.T) {
	s := NewSendGridSender("SG.test", "Madrasa", "office@madrasa.test")
	m := s.prepare(Message{ToName: "Donor", ToEmail: "donor@mail.test", Subject: "Kuitansi", Text: "terima kasih", HTML: "<p>terima kasih</p>"})

	require.Len(t, m.Personalizations, 1)
	assert.Equal(t, "[Madrasa] Kuitansi", m.Personalizations[0].Subject)
	require.Len(t, m.Personalizations[0].To, 1)
	assert.Equal(t, "donor@mail.test", m.Personalizations[0].To[0].Address)
	assert.Len(t, m.Content, 2)
	assert.Equal(t, "office@madrasa.test", m.From.Address)
}

func TestSendGridRejectsEmptyRecipient(t *testing.T) {
	s := NewSendGridSender("SG.test", "Madrasa", "office@madrasa.test")
	assert.Error(t, s.Send(context.Background(), Message{Subject: "x"}))
}

func TestConsoleSender(t *testing.T) {
	assert.NoError(t, (&ConsoleSender{}).Send(context.Background(), Message{ToEmail: "a@b.c", Subject: "hi"}))
}

func TestSendGridSend(t *testing.T) {
	s := NewSendGridSender("SG.test", "Madrasa", "office@madrasa.test")
	msg := Message{ToEmail: "donor@mail.test", Subject: "Kuitansi", Text: "terima kasih"}

	t.Run("diterima", func(t *testing.T) {
		var got rest.Request
		stubAPI(t, func(req rest.Request) (*rest.Response, error) {
			got = req
			return &rest.Response{StatusCode: http.StatusAccepted}, nil
		})
		require.NoError(t, s.Send(context.Background(), msg))
		assert.Equal(t, rest.Method(http.MethodPost), got.Method)
		assert.Equal(t, "https://api.sendgrid.com/v3/mail/send", got.BaseURL)
		assert.Contains(t, string(got.Body), "donor@mail.test")
	})

	t.Run("status error", func(t *testing.T) {
		stubAPI(t, func(rest.Request) (*rest.Response, error) {
			return &rest.Response{StatusCode: http.StatusUnauthorized, Body: "bad key"}, nil
		})
		err := s.Send(context.Background(), msg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("ctx habis sebelum API selesai", func(t *testing.T) {
		release := make(chan struct{})
		stubAPI(t, func(rest.Request) (*rest.Response, error) {
			<-release
			return &rest.Response{StatusCode: http.StatusAccepted}, nil
		})
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := s.Send(ctx, msg)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}
