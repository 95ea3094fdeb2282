package dnsverify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	ErrInvalidDomain   = errors.New("invalid domain")
	ErrDNSLookupFailed = errors.New("dns lookup failed")
	ErrNoMXRecords     = errors.New("no mx records found")
	ErrNoSPFRecord     = errors.New("no spf record found")
	ErrNoDKIMRecord    = errors.New("no dkim record found")
)

// DefaultDKIMSelectors are the selectors Microsoft 365 publishes signing
// keys under.
var DefaultDKIMSelectors = []string{"selector1", "selector2"}

// Resolver is the subset of net.Resolver used for record lookups.
type Resolver interface {
	LookupTXT(ctx context.Context, name string) ([]string, error)
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// Verifier checks that a sender domain has the DNS records an outbound
// relay setup depends on: MX, an SPF policy, and DKIM selector keys. It
// only reads records; publishing them is an operator task.
type Verifier struct {
	resolver Resolver
}

// New creates a Verifier using the default system resolver.
func New() *Verifier {
	return NewWithResolver(&net.Resolver{})
}

// NewWithResolver creates a Verifier with a custom resolver.
func NewWithResolver(r Resolver) *Verifier {
	return &Verifier{resolver: r}
}

// Report summarizes the records found for a sender domain.
type Report struct {
	Domain        string
	MXHosts       []string // mail exchanger hosts, preference order
	SPFRecord     string   // the "v=spf1 ..." TXT record
	DKIMSelectors []string // selectors with a published key
}

// VerifySenderDomain checks MX, SPF, and DKIM for domain. Selectors
// defaults to DefaultDKIMSelectors when empty. The returned error joins
// every missing-record condition so callers can match individual ones with
// errors.Is; the report always describes what was found.
func (v *Verifier) VerifySenderDomain(ctx context.Context, domain string, selectors ...string) (*Report, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" || strings.ContainsAny(domain, " @/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}
	if len(selectors) == 0 {
		selectors = DefaultDKIMSelectors
	}

	report := &Report{Domain: domain}
	var errs []error

	hosts, err := v.CheckMX(ctx, domain)
	if err != nil {
		errs = append(errs, err)
	}
	report.MXHosts = hosts

	spf, err := v.CheckSPF(ctx, domain)
	if err != nil {
		errs = append(errs, err)
	}
	report.SPFRecord = spf

	for _, selector := range selectors {
		if err := v.CheckDKIM(ctx, domain, selector); err == nil {
			report.DKIMSelectors = append(report.DKIMSelectors, selector)
		}
	}
	if len(report.DKIMSelectors) == 0 {
		errs = append(errs, fmt.Errorf("%w: selectors %s", ErrNoDKIMRecord, strings.Join(selectors, ", ")))
	}

	if len(errs) > 0 {
		return report, errors.Join(errs...)
	}
	return report, nil
}

// CheckMX returns the domain's mail exchanger hosts sorted by preference.
func (v *Verifier) CheckMX(ctx context.Context, domain string) ([]string, error) {
	records, err := v.resolver.LookupMX(ctx, domain)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoMXRecords, domain)
		}
		return nil, fmt.Errorf("%w: %v", ErrDNSLookupFailed, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMXRecords, domain)
	}

	hosts := make([]string, len(records))
	for i, mx := range records {
		hosts[i] = strings.TrimSuffix(mx.Host, ".")
	}
	return hosts, nil
}

// CheckSPF returns the domain's SPF policy TXT record.
func (v *Verifier) CheckSPF(ctx context.Context, domain string) (string, error) {
	records, err := v.resolver.LookupTXT(ctx, domain)
	if err != nil {
		if isNotFound(err) {
			return "", fmt.Errorf("%w: %s", ErrNoSPFRecord, domain)
		}
		return "", fmt.Errorf("%w: %v", ErrDNSLookupFailed, err)
	}

	for _, record := range records {
		if strings.HasPrefix(strings.TrimSpace(record), "v=spf1") {
			return record, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoSPFRecord, domain)
}

// CheckDKIM verifies a DKIM key is published under
// <selector>._domainkey.<domain>. The lookup follows CNAMEs, so delegated
// keys (as Microsoft 365 publishes them) resolve too.
func (v *Verifier) CheckDKIM(ctx context.Context, domain, selector string) error {
	name := selector + "._domainkey." + domain
	records, err := v.resolver.LookupTXT(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %s", ErrNoDKIMRecord, name)
		}
		return fmt.Errorf("%w: %v", ErrDNSLookupFailed, err)
	}

	for _, record := range records {
		if strings.Contains(record, "v=DKIM1") || strings.Contains(record, "p=") {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNoDKIMRecord, name)
}

func isNotFound(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && dnsErr.IsNotFound
}
