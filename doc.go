// Package mailkit is the outbound mail layer for the Blue Line
// Technologies bid-sheet platform: it submits quote, estimate, and
// helpdesk notification mail to the company's Microsoft 365 mailbox over
// SMTP with STARTTLS.
//
// Configuration comes from the environment, using the same keys as the
// host application's settings:
//
//	EMAIL_HOST=smtp.office365.com
//	EMAIL_PORT=587
//	EMAIL_USE_TLS=True
//	EMAIL_HOST_USER=bids@bluelinetech.org
//	EMAIL_HOST_PASSWORD=<app password>
//	DEFAULT_FROM_EMAIL=bids@bluelinetech.org
//
// A .env file is loaded when present; real environment variables win.
//
// # Sending
//
// The quickest path mirrors the relay verification step:
//
//	err := mailkit.SendMail(ctx,
//		"Test Email",
//		"This is a test email from the bid sheet system.",
//		"bids@bluelinetech.org",
//		[]string{"your-personal-email@example.com"},
//	)
//
// For anything beyond a one-off, construct a Client once and share it:
//
//	client, err := mailkit.New(
//		mailkit.WithLogger(logger.New(logger.MessageIDExtractor)),
//	)
//	if err != nil {
//		return err
//	}
//	err = client.SendMessage(ctx, &mailer.Email{
//		To:      []string{"customer@example.com"},
//		Subject: "Service Quote #2041",
//		Text:    body,
//		Attachments: []mailer.Attachment{
//			{Filename: "bid_2041.pdf", ContentType: "application/pdf", Content: pdf},
//		},
//	})
//
// Every send is a single synchronous attempt: the provider dials the
// relay, negotiates STARTTLS, authenticates, transmits, and closes the
// connection. There is no queueing and no retry; failures surface as the
// error taxonomy in pkg/mailer unless fail-silently is explicitly
// requested.
//
// # Providers
//
// The default provider is pkg/mailer/smtp. Swap it with WithSender:
// pkg/mailer/console writes messages to stdout for development, and
// pkg/mailer/resend relays through the Resend HTTP API.
//
// # Preflight
//
// pkg/dnsverify checks that the sender domain publishes the MX, SPF, and
// DKIM records a Microsoft 365 relay setup depends on.
package mailkit
