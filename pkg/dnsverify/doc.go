// Package dnsverify checks that an outbound sender domain has the DNS
// records a mail relay setup depends on: MX records, an SPF policy
// authorizing the relay, and DKIM selector keys.
//
// It is a read-only preflight for going live with a new relay: run it
// after publishing records (for Microsoft 365: the SPF include for
// spf.protection.outlook.com and the selector1/selector2 DKIM CNAMEs) to
// confirm they resolve.
//
//	v := dnsverify.New()
//	report, err := v.VerifySenderDomain(ctx, "bluelinetech.org")
//	if errors.Is(err, dnsverify.ErrNoSPFRecord) {
//		// SPF record missing or not yet propagated
//	}
package dnsverify
