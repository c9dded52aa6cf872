package mail_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ybordev/site-content/pkg/sitecontent/mail"
)

func testMessage() mail.Message {
	return mail.Message{
		From:    "forms@site.test",
		To:      "sales@site.test",
		ReplyTo: "dana@acme.com",
		Subject: "Contact request",
		Text:    "hello",
	}
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	c, err := mail.NewClient(mail.Config{})
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestSendFailsClosedWithoutAPIKey(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c, err := mail.NewClient(mail.Config{Endpoint: srv.URL})
	require.NoError(t, err)

	err = c.Send(context.Background(), testMessage())
	assert.ErrorIs(t, err, mail.ErrMissingAPIKey)
	assert.Equal(t, int32(0), calls.Load(), "missing credential must not produce a request")
}

func TestSendRequiresRecipient(t *testing.T) {
	c, err := mail.NewClient(mail.Config{Endpoint: "https://mail.test", APIKey: "key"})
	require.NoError(t, err)

	msg := testMessage()
	msg.To = ""
	assert.ErrorIs(t, c.Send(context.Background(), msg), mail.ErrMissingRecipient)
}

func TestSendPostsMessage(t *testing.T) {
	var (
		gotAuth string
		gotBody mail.Message
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"id":"msg-1"}`))
	}))
	defer srv.Close()

	c, err := mail.NewClient(mail.Config{Endpoint: srv.URL, APIKey: "secret-key"})
	require.NoError(t, err)

	require.NoError(t, c.Send(context.Background(), testMessage()))
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "sales@site.test", gotBody.To)
	assert.Equal(t, "dana@acme.com", gotBody.ReplyTo)
}

func TestSendProviderErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c, err := mail.NewClient(mail.Config{Endpoint: srv.URL, APIKey: "key"})
	require.NoError(t, err)

	err = c.Send(context.Background(), testMessage())
	require.Error(t, err)

	var serr *mail.SendError
	assert.ErrorAs(t, err, &serr)
	assert.Equal(t, int32(1), calls.Load(), "a failed send must not be retried")
}

func TestRecorder(t *testing.T) {
	r := mail.NewRecorder()

	require.NoError(t, r.Send(context.Background(), testMessage()))
	require.Len(t, r.Sent(), 1)
	assert.Equal(t, "sales@site.test", r.Sent()[0].To)

	r.FailWith(mail.ErrMissingAPIKey)
	assert.Error(t, r.Send(context.Background(), testMessage()))
	assert.Len(t, r.Sent(), 1)
}
