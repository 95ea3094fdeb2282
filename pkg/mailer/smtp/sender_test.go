package smtp

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bluelinetech/mailkit/pkg/mailer"
)

// testServerOptions controls the behavior of the fake relay.
type testServerOptions struct {
	advertiseStartTLS bool
	advertiseAuth     bool
	rejectAuth        bool
	dropAfterData     bool // close the connection after accepting DATA
}

// testServerRecord captures what the relay observed.
type testServerRecord struct {
	mu       sync.Mutex
	commands []string
	data     []string // one entry per completed DATA transaction
}

func (r *testServerRecord) add(cmd string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
}

func (r *testServerRecord) addData(body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, body)
}

func (r *testServerRecord) sawCommand(prefix string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cmd := range r.commands {
		if strings.HasPrefix(cmd, prefix) {
			return true
		}
	}
	return false
}

func (r *testServerRecord) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.data...)
}

// startTestSMTPServer starts a minimal SMTP relay on a random port. It
// implements only the commands the sender tests need and records everything
// it sees. It never actually upgrades to TLS; STARTTLS support is tested
// via the negative path only.
func startTestSMTPServer(t *testing.T, opts testServerOptions) (host string, port int, record *testServerRecord, stop func()) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	record = &testServerRecord{}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		fmt.Fprintf(conn, "220 localhost Test SMTP Service Ready\r\n")
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			line = strings.TrimSpace(line)
			record.add(line)

			switch {
			case strings.HasPrefix(line, "EHLO"), strings.HasPrefix(line, "HELO"):
				fmt.Fprintf(conn, "250-localhost Hello\r\n")
				if opts.advertiseStartTLS {
					fmt.Fprintf(conn, "250-STARTTLS\r\n")
				}
				if opts.advertiseAuth {
					fmt.Fprintf(conn, "250-AUTH PLAIN LOGIN\r\n")
				}
				fmt.Fprintf(conn, "250 OK\r\n")
			case strings.HasPrefix(line, "AUTH"):
				if opts.rejectAuth {
					fmt.Fprintf(conn, "535 5.7.8 Authentication credentials invalid\r\n")
				} else {
					fmt.Fprintf(conn, "235 2.7.0 Authentication successful\r\n")
				}
			case strings.HasPrefix(line, "MAIL FROM:"), strings.HasPrefix(line, "RCPT TO:"):
				fmt.Fprintf(conn, "250 OK\r\n")
			case strings.HasPrefix(line, "DATA"):
				fmt.Fprintf(conn, "354 End data with <CR><LF>.<CR><LF>\r\n")
				var body strings.Builder
				for {
					dline, derr := r.ReadString('\n')
					if derr != nil {
						return
					}
					if strings.TrimSpace(dline) == "." {
						break
					}
					body.WriteString(dline)
				}
				record.addData(body.String())
				fmt.Fprintf(conn, "250 OK: queued as 12345\r\n")
				if opts.dropAfterData {
					return
				}
			case strings.HasPrefix(line, "QUIT"):
				fmt.Fprintf(conn, "221 Bye\r\n")
				return
			default:
				fmt.Fprintf(conn, "250 OK\r\n")
			}
		}
	}()

	tcpAddr := ln.Addr().(*net.TCPAddr)
	stop = func() {
		ln.Close()
		wg.Wait()
	}
	return "127.0.0.1", tcpAddr.Port, record, stop
}

func TestSender_Send_HappyPath_RoundTrip(t *testing.T) {
	host, port, record, stop := startTestSMTPServer(t, testServerOptions{})
	defer stop()

	sender := New(Config{Host: host, Port: port, UseTLS: false})

	err := sender.Send(context.Background(), &mailer.Email{
		From:    "bids@bluelinetech.org",
		To:      []string{"customer@example.com"},
		Subject: "Service Quote #2041",
		Text:    "Please find attached our service quote for your review.",
	})
	require.NoError(t, err)
	stop()

	require.True(t, record.sawCommand("MAIL FROM:<bids@bluelinetech.org>"))
	require.True(t, record.sawCommand("RCPT TO:<customer@example.com>"))
	require.True(t, record.sawCommand("QUIT"))

	messages := record.messages()
	require.Len(t, messages, 1, "exactly one transmission per call")
	msg := messages[0]
	require.Contains(t, msg, "Subject: Service Quote #2041")
	require.Contains(t, msg, "From: bids@bluelinetech.org")
	require.Contains(t, msg, "To: customer@example.com")
	require.Contains(t, msg, "Please find attached our service quote for your review.")
	require.Contains(t, msg, "Message-ID: <")
	require.NotContains(t, msg, "Bcc:")
}

func TestSender_Send_DisplayNameSender(t *testing.T) {
	host, port, record, stop := startTestSMTPServer(t, testServerOptions{})
	defer stop()

	sender := New(Config{Host: host, Port: port, UseTLS: false})

	err := sender.Send(context.Background(), &mailer.Email{
		From:    "Blue Line Technologies <bids@bluelinetech.org>",
		To:      []string{"customer@example.com"},
		Subject: "Quote",
		Text:    "body",
	})
	require.NoError(t, err)
	stop()

	// Envelope uses the bare address; the display name stays in headers.
	require.True(t, record.sawCommand("MAIL FROM:<bids@bluelinetech.org>"))
}

func TestSender_Send_BccEnvelopeOnly(t *testing.T) {
	host, port, record, stop := startTestSMTPServer(t, testServerOptions{})
	defer stop()

	sender := New(Config{Host: host, Port: port, UseTLS: false})

	err := sender.Send(context.Background(), &mailer.Email{
		From:    "bids@bluelinetech.org",
		To:      []string{"customer@example.com"},
		BCC:     []string{"archive@bluelinetech.org"},
		Subject: "Quote",
		Text:    "body",
	})
	require.NoError(t, err)
	stop()

	require.True(t, record.sawCommand("RCPT TO:<archive@bluelinetech.org>"))
	messages := record.messages()
	require.Len(t, messages, 1)
	require.NotContains(t, messages[0], "archive@bluelinetech.org")
}

func TestSender_Send_StartTLSNotAdvertised(t *testing.T) {
	host, port, record, stop := startTestSMTPServer(t, testServerOptions{
		advertiseStartTLS: false,
	})
	defer stop()

	sender := New(Config{Host: host, Port: port, UseTLS: true})

	err := sender.Send(context.Background(), &mailer.Email{
		From:    "bids@bluelinetech.org",
		To:      []string{"customer@example.com"},
		Subject: "Quote",
		Text:    "body",
	})

	require.ErrorIs(t, err, mailer.ErrTLSRequired)
	stop()

	// No plaintext fallback: the message must never reach MAIL FROM.
	require.False(t, record.sawCommand("MAIL FROM:"))
	require.Empty(t, record.messages())
}

func TestSender_Send_AuthRejected(t *testing.T) {
	host, port, record, stop := startTestSMTPServer(t, testServerOptions{
		advertiseAuth: true,
		rejectAuth:    true,
	})
	defer stop()

	sender := New(Config{
		Host:     host,
		Port:     port,
		UseTLS:   false,
		Username: "bids@bluelinetech.org",
		Password: "wrong-app-password",
	})

	err := sender.Send(context.Background(), &mailer.Email{
		From:    "bids@bluelinetech.org",
		To:      []string{"customer@example.com"},
		Subject: "Quote",
		Text:    "body",
	})

	require.ErrorIs(t, err, mailer.ErrAuthFailed)

	// stop blocks until the server handler observed the closed connection,
	// so returning here means the client released it.
	stop()
	require.False(t, record.sawCommand("MAIL FROM:"))
	require.Empty(t, record.messages())
}

func TestSender_Send_AuthNotAdvertised(t *testing.T) {
	host, port, _, stop := startTestSMTPServer(t, testServerOptions{
		advertiseAuth: false,
	})
	defer stop()

	sender := New(Config{
		Host:     host,
		Port:     port,
		UseTLS:   false,
		Username: "bids@bluelinetech.org",
		Password: "app-password",
	})

	err := sender.Send(context.Background(), &mailer.Email{
		From:    "bids@bluelinetech.org",
		To:      []string{"customer@example.com"},
		Subject: "Quote",
		Text:    "body",
	})

	require.ErrorIs(t, err, mailer.ErrAuthFailed)
}

func TestSender_Send_QuitFailureAfterAccept(t *testing.T) {
	host, port, record, stop := startTestSMTPServer(t, testServerOptions{
		dropAfterData: true,
	})
	defer stop()

	sender := New(Config{Host: host, Port: port, UseTLS: false})

	// The relay accepts DATA and then drops the connection, so QUIT fails.
	// The message was delivered; the caller must not see an error.
	err := sender.Send(context.Background(), &mailer.Email{
		From:    "bids@bluelinetech.org",
		To:      []string{"customer@example.com"},
		Subject: "Quote",
		Text:    "body",
	})
	require.NoError(t, err)
	stop()

	require.Len(t, record.messages(), 1)
}

func TestSender_Send_ConnectionRefused(t *testing.T) {
	t.Parallel()

	// Grab a free port, then close the listener so nothing accepts.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	sender := New(Config{Host: "127.0.0.1", Port: port, UseTLS: false})

	sendErr := sender.Send(context.Background(), &mailer.Email{
		From:    "bids@bluelinetech.org",
		To:      []string{"customer@example.com"},
		Subject: "Quote",
		Text:    "body",
	})

	require.ErrorIs(t, sendErr, mailer.ErrConnectionFailed)
}

func TestSender_Send_AuthAccepted(t *testing.T) {
	host, port, record, stop := startTestSMTPServer(t, testServerOptions{
		advertiseAuth: true,
	})
	defer stop()

	sender := New(Config{
		Host:     host,
		Port:     port,
		UseTLS:   false,
		Username: "bids@bluelinetech.org",
		Password: "app-password",
	})

	err := sender.Send(context.Background(), &mailer.Email{
		From:    "bids@bluelinetech.org",
		To:      []string{"customer@example.com"},
		Subject: "Quote",
		Text:    "body",
	})
	require.NoError(t, err)
	stop()

	require.True(t, record.sawCommand("AUTH PLAIN"))
	require.Len(t, record.messages(), 1)
}
