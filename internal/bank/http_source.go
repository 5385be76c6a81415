package bank

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

// HTTPSource fetches bank files from a static site, "<base_url>/<subject>.json".
// Server errors are retried with backoff; client errors fail immediately.
type HTTPSource struct {
	httpClient       *resty.Client
	baseURL          string
	maxRetryAttempts uint
}

// NewHTTPSource creates an HTTPSource for the given base URL.
func NewHTTPSource(baseURL string, retryAttempts uint) *HTTPSource {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	return &HTTPSource{
		httpClient:       client,
		baseURL:          strings.TrimSuffix(baseURL, "/"),
		maxRetryAttempts: retryAttempts,
	}
}

// Close releases the underlying HTTP client.
func (s *HTTPSource) Close() error {
	return s.httpClient.Close()
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context, subjectName string) ([]byte, error) {
	bankURL := s.baseURL + "/" + url.PathEscape(subjectName) + ".json"

	var payload []byte
	if err := retry.Do(
		func() error {
			response, err := s.httpClient.R().
				SetContext(ctx).
				Get(bankURL)
			if err != nil {
				return fmt.Errorf("httpClient.Get(%s) > %w", bankURL, err)
			}
			if response.IsError() {
				err := fmt.Errorf("response error %d for %s", response.StatusCode(), bankURL)
				if response.StatusCode() < 500 {
					return retry.Unrecoverable(err)
				}
				return err
			}
			payload = response.Bytes()
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}
	return payload, nil
}
