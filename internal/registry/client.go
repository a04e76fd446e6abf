// Package registry queries the DGI registry for sole-proprietorship business
// information. Mock implementations use deterministic data and a configurable
// latency to mimic real-world calls.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"alta/internal/domain"
)

// Client fetches the registry snapshot for a business document. Fetches are
// fresh per search operation; caching sits in front as a decorator.
type Client interface {
	FetchBusinessInformation(ctx context.Context, rut string) (domain.BusinessInformation, error)
}

// Error reports a registry lookup failure for a specific RUT.
type Error struct {
	RUT   string
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("registry lookup for rut %s failed: %v", e.RUT, e.cause)
}

func (e *Error) Unwrap() error { return e.cause }

// HTTPClient calls the DGI registry over HTTP.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type businessInformationDTO struct {
	LegalName      string `json:"legalName"`
	LegalAddress   string `json:"legalAddress"`
	RUT            string `json:"rut"`
	ExpirationDate string `json:"expirationDate"`
}

func (c *HTTPClient) FetchBusinessInformation(ctx context.Context, rut string) (domain.BusinessInformation, error) {
	endpoint := fmt.Sprintf("%s/business-information/%s", c.baseURL, url.PathEscape(rut))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.BusinessInformation{}, &Error{RUT: rut, cause: err}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return domain.BusinessInformation{}, &Error{RUT: rut, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.BusinessInformation{}, &Error{RUT: rut, cause: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var dto businessInformationDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return domain.BusinessInformation{}, &Error{RUT: rut, cause: fmt.Errorf("decode response: %w", err)}
	}
	return domain.BusinessInformation{
		LegalName:      dto.LegalName,
		LegalAddress:   dto.LegalAddress,
		RUT:            dto.RUT,
		ExpirationDate: dto.ExpirationDate,
	}, nil
}

// MockClient returns deterministic registry data for local development.
type MockClient struct {
	Latency   time.Duration
	LegalName string
}

func (c MockClient) FetchBusinessInformation(_ context.Context, rut string) (domain.BusinessInformation, error) {
	time.Sleep(c.Latency)
	name := c.LegalName
	if name == "" {
		name = "PEREZ JUAN"
	}
	return domain.BusinessInformation{
		LegalName:      name,
		LegalAddress:   "18 DE JULIO 1234, MONTEVIDEO",
		RUT:            rut,
		ExpirationDate: time.Now().AddDate(1, 0, 0).Format("02/01/2006"),
	}, nil
}
