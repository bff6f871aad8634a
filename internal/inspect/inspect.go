package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/volkh4n/scandeck/internal/logging"
)

// DefaultResolver is the DNS over HTTPS endpoint used for lookups.
const DefaultResolver = "https://cloudflare-dns.com/dns-query"

// securityHeaders is the fixed review list, with the note reported when a
// header is absent.
var securityHeaders = []struct {
	name       string
	absentNote string
}{
	{"Strict-Transport-Security", "missing (HTTPS downgrade risk)"},
	{"Content-Security-Policy", "missing"},
	{"X-Content-Type-Options", "missing (MIME sniffing risk)"},
	{"X-Frame-Options", "missing (clickjacking risk)"},
	{"Referrer-Policy", "missing"},
	{"Permissions-Policy", "missing"},
}

// HeaderFinding is one security header's entry in an audit.
type HeaderFinding struct {
	Header  string `json:"header"`
	Present bool   `json:"present"`
	Value   string `json:"value,omitempty"`
	Note    string `json:"note,omitempty"`
}

// HeaderAudit is the response-header review for one URL.
type HeaderAudit struct {
	URL        string          `json:"url"`
	StatusCode int             `json:"statusCode"`
	Findings   []HeaderFinding `json:"findings"`
	CheckedAt  time.Time       `json:"checkedAt"`
}

// DNSAnswer is one record returned by the resolver.
type DNSAnswer struct {
	Name string `json:"name"`
	Type int    `json:"type"`
	TTL  int    `json:"ttl"`
	Data string `json:"data"`
}

// Inspector performs lightweight in-process checks that complement the
// external tools: a security-header review and a passive DNS lookup.
type Inspector struct {
	client   *http.Client
	resolver string
	logger   logging.Logger
}

func New(client *http.Client, logger logging.Logger) *Inspector {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Inspector{
		client:   client,
		resolver: DefaultResolver,
		logger:   logger,
	}
}

// AuditHeaders fetches rawURL and reviews the response headers against the
// fixed list. The body is never read; only the header block matters here.
func (i *Inspector) AuditHeaders(ctx context.Context, rawURL string) (*HeaderAudit, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	audit := &HeaderAudit{
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		CheckedAt:  time.Now().UTC(),
	}
	for _, h := range securityHeaders {
		finding := HeaderFinding{Header: h.name}
		if value := resp.Header.Get(h.name); value != "" {
			finding.Present = true
			finding.Value = value
			finding.Note = weaknessNote(h.name, value)
		} else {
			finding.Note = h.absentNote
		}
		audit.Findings = append(audit.Findings, finding)
	}

	i.logger.Debug("header audit finished",
		logging.Field{Key: "url", Value: rawURL},
		logging.Field{Key: "status_code", Value: resp.StatusCode},
	)
	return audit, nil
}

// weaknessNote flags weak values on headers that are present.
func weaknessNote(name, value string) string {
	if name != "Content-Security-Policy" {
		return ""
	}
	lower := strings.ToLower(value)
	switch {
	case strings.Contains(lower, "unsafe-inline"):
		return "allows 'unsafe-inline'"
	case strings.Contains(lower, "unsafe-eval"):
		return "allows 'unsafe-eval'"
	}
	return ""
}

// DNSLookup resolves name through the DNS over HTTPS endpoint and returns
// the answer records. recordType defaults to A.
func (i *Inspector) DNSLookup(ctx context.Context, name, recordType string) ([]DNSAnswer, error) {
	if recordType == "" {
		recordType = "A"
	}

	query := url.Values{}
	query.Set("name", name)
	query.Set("type", recordType)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.resolver+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/dns-json")

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query resolver: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resolver returned status %d", resp.StatusCode)
	}

	var payload struct {
		Status int `json:"Status"`
		Answer []struct {
			Name string `json:"name"`
			Type int    `json:"type"`
			TTL  int    `json:"TTL"`
			Data string `json:"data"`
		} `json:"Answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode resolver response: %w", err)
	}
	if payload.Status != 0 {
		return nil, fmt.Errorf("resolver answered with rcode %d for %s", payload.Status, name)
	}

	answers := make([]DNSAnswer, 0, len(payload.Answer))
	for _, a := range payload.Answer {
		answers = append(answers, DNSAnswer{Name: a.Name, Type: a.Type, TTL: a.TTL, Data: a.Data})
	}
	return answers, nil
}
