package mail

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chirp/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewMailgunMailer(t *testing.T) {
	t.Run("disabled mailer needs no credentials", func(t *testing.T) {
		mailer, err := NewMailgunMailer(&config.Config{}, discardLogger())
		require.NoError(t, err)
		assert.NotNil(t, mailer)
	})

	t.Run("enabled mailer requires credentials", func(t *testing.T) {
		cfg := &config.Config{
			Mailgun: &config.MailgunConfig{Enabled: true},
		}

		mailer, err := NewMailgunMailer(cfg, discardLogger())
		assert.Error(t, err)
		assert.Nil(t, mailer)
	})
}

func TestSendConfirmationEmail(t *testing.T) {
	t.Run("disabled mailer logs and succeeds", func(t *testing.T) {
		mailer, err := NewMailgunMailer(&config.Config{}, discardLogger())
		require.NoError(t, err)

		err = mailer.SendConfirmationEmail(context.Background(), "a@example.com", "https://example.com/confirm/tok")
		assert.NoError(t, err)
	})

	t.Run("posts form to the messages endpoint", func(t *testing.T) {
		var gotPath, gotTo, gotFrom string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotPath = r.URL.Path
			gotTo = r.FormValue("to")
			gotFrom = r.FormValue("from")

			_, _, ok := r.BasicAuth()
			assert.True(t, ok)

			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		cfg := &config.Config{
			Mailgun: &config.MailgunConfig{
				Enabled: true,
				Domain:  "mail.example.com",
				APIKey:  "key-test",
				Sender:  "noreply@mail.example.com",
				BaseURL: srv.URL,
			},
		}

		mailer, err := NewMailgunMailer(cfg, discardLogger())
		require.NoError(t, err)

		err = mailer.SendConfirmationEmail(context.Background(), "a@example.com", "https://example.com/confirm/tok")
		require.NoError(t, err)

		assert.Equal(t, "/mail.example.com/messages", gotPath)
		assert.Equal(t, "a@example.com", gotTo)
		assert.Equal(t, "noreply@mail.example.com", gotFrom)
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "forbidden", http.StatusUnauthorized)
		}))
		defer srv.Close()

		cfg := &config.Config{
			Mailgun: &config.MailgunConfig{
				Enabled: true,
				Domain:  "mail.example.com",
				APIKey:  "key-test",
				BaseURL: srv.URL,
			},
		}

		mailer, err := NewMailgunMailer(cfg, discardLogger())
		require.NoError(t, err)

		err = mailer.SendConfirmationEmail(context.Background(), "a@example.com", "https://example.com/confirm/tok")
		assert.Error(t, err)
	})
}
