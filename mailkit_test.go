package mailkit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bluelinetech/mailkit/pkg/mailer"
)

// stubSender records delivered messages.
type stubSender struct {
	sent []*mailer.Email
	err  error
}

func (s *stubSender) Send(_ context.Context, email *mailer.Email) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, email)
	return nil
}

func TestNew_MissingHost(t *testing.T) {
	clearEmailEnv(t)

	_, err := New()

	require.ErrorIs(t, err, ErrMissingHost)
}

func TestNew_CustomSenderSkipsSMTPConfig(t *testing.T) {
	clearEmailEnv(t)

	client, err := New(WithSender(&stubSender{}))

	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestClient_SendMail(t *testing.T) {
	clearEmailEnv(t)
	t.Setenv("DEFAULT_FROM_EMAIL", "bids@bluelinetech.org")

	sender := &stubSender{}
	client, err := New(WithSender(sender))
	require.NoError(t, err)

	err = client.SendMail(context.Background(),
		"Test Email",
		"This is a test email from the bid sheet system.",
		"",
		[]string{"someone@example.com"},
	)

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	sent := sender.sent[0]
	require.Equal(t, "Test Email", sent.Subject)
	require.Equal(t, "This is a test email from the bid sheet system.", sent.Text)
	require.Equal(t, "bids@bluelinetech.org", sent.From)
	require.Equal(t, []string{"someone@example.com"}, sent.To)
}

func TestClient_SendMail_NoRecipients(t *testing.T) {
	clearEmailEnv(t)
	t.Setenv("DEFAULT_FROM_EMAIL", "bids@bluelinetech.org")

	sender := &stubSender{}
	client, err := New(WithSender(sender))
	require.NoError(t, err)

	err = client.SendMail(context.Background(), "Test", "body", "", nil)

	require.ErrorIs(t, err, mailer.ErrInvalidMessage)
	require.ErrorIs(t, err, mailer.ErrNoRecipient)
	require.Empty(t, sender.sent)
}

func TestClient_WithFailSilently(t *testing.T) {
	clearEmailEnv(t)
	t.Setenv("DEFAULT_FROM_EMAIL", "bids@bluelinetech.org")

	sender := &stubSender{err: errors.New("relay down")}
	client, err := New(WithSender(sender), WithFailSilently())
	require.NoError(t, err)

	err = client.SendMail(context.Background(), "Test", "body", "",
		[]string{"someone@example.com"})

	require.NoError(t, err)
}

func TestClient_Send_WithoutRenderer(t *testing.T) {
	clearEmailEnv(t)
	t.Setenv("DEFAULT_FROM_EMAIL", "bids@bluelinetech.org")

	sender := &stubSender{}
	client, err := New(WithSender(sender))
	require.NoError(t, err)

	require.NotPanics(t, func() {
		err = client.Send(context.Background(), mailer.SendParams{
			To:       "customer@example.com",
			Template: "quote.md",
		})
	})

	require.ErrorIs(t, err, mailer.ErrRenderFailed)
	require.Empty(t, sender.sent)
}

func TestNew_WithConfig(t *testing.T) {
	clearEmailEnv(t)

	cfg := Config{Mailer: mailer.Config{DefaultFrom: "helpdesk@bluelinetech.org"}}
	sender := &stubSender{}
	client, err := New(WithConfig(cfg), WithSender(sender))
	require.NoError(t, err)

	err = client.SendMail(context.Background(), "Ticket", "body", "",
		[]string{"someone@example.com"})

	require.NoError(t, err)
	require.Equal(t, "helpdesk@bluelinetech.org", sender.sent[0].From)
}

func TestSendMail_TopLevel_MissingHost(t *testing.T) {
	clearEmailEnv(t)

	err := SendMail(context.Background(), "Test", "body",
		"bids@bluelinetech.org", []string{"someone@example.com"})

	require.ErrorIs(t, err, ErrMissingHost)
}
