// Package risk screens contact data against the bank's blacklist service.
package risk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"alta/internal/domain"
)

// Screener answers whether an email address is blacklisted for an identity.
// A screening fault is an infrastructure error; the workflow does not guess.
type Screener interface {
	IsMailBlacklisted(ctx context.Context, email string, id domain.EntityIdentity) (bool, error)
}

// HTTPScreener calls the risk service over HTTP.
type HTTPScreener struct {
	baseURL string
	client  *http.Client
}

func NewHTTPScreener(baseURL string, timeout time.Duration) *HTTPScreener {
	return &HTTPScreener{baseURL: baseURL, client: &http.Client{Timeout: timeout}}
}

func (s *HTTPScreener) IsMailBlacklisted(ctx context.Context, email string, id domain.EntityIdentity) (bool, error) {
	endpoint := fmt.Sprintf("%s/blacklist/mail?address=%s&document=%s",
		s.baseURL, url.QueryEscape(email), url.QueryEscape(id.BusinessDocument))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build blacklist request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("blacklist lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("blacklist lookup: unexpected status %d", resp.StatusCode)
	}
	var body struct {
		Blacklisted bool `json:"blacklisted"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decode blacklist response: %w", err)
	}
	return body.Blacklisted, nil
}

// StaticScreener is a deterministic screener for development and tests.
type StaticScreener struct {
	Blacklisted map[string]bool
}

func (s StaticScreener) IsMailBlacklisted(_ context.Context, email string, _ domain.EntityIdentity) (bool, error) {
	return s.Blacklisted[email], nil
}
