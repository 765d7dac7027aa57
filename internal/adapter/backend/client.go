package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
	"github.com/srgjo27/ticketing_client/internal/platform/metrics"
)

// Client talks to the ticketing backend REST API. Authentication rides on
// the session cookie set by POST /login, kept in the client's cookie jar.
type Client struct {
	// baseURL is the API root, e.g. http://localhost:3000/api.
	baseURL string

	// hc carries the cookie jar and the request timeout.
	hc *http.Client

	logger *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", baseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		logger: logger,
	}, nil
}

// call describes one backend request.
type call struct {
	operation      string
	method         string
	path           string
	body           interface{}
	idempotencyKey string

	// notFound is the sentinel a 404 maps to for this operation.
	notFound error
}

// do performs c and decodes a 2xx JSON body into out when out is non-nil.
// Non-2xx responses come back as *domain.BackendError, network failures
// wrap domain.ErrTransport.
func (c *Client) do(ctx context.Context, rc call, out interface{}) error {
	var body io.Reader
	if rc.body != nil {
		payload, err := json.Marshal(rc.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", rc.operation, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, rc.method, c.baseURL+rc.path, body)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", rc.operation, domain.ErrTransport, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rc.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", rc.idempotencyKey)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		metrics.ObserveBackendCall(rc.operation, "error", time.Since(start))
		c.logger.WithError(err).WithField("operation", rc.operation).Warn("backend request failed")
		return fmt.Errorf("%s: %w: %w", rc.operation, domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	metrics.ObserveBackendCall(rc.operation, strconv.Itoa(resp.StatusCode), time.Since(start))

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w: %w", rc.operation, domain.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		backendErr := decodeError(resp.StatusCode, payload, rc.notFound)
		c.logger.WithFields(logrus.Fields{
			"operation": rc.operation,
			"status":    resp.StatusCode,
		}).Debug(backendErr.Message)
		return backendErr
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%s: decode response: %w: %w", rc.operation, domain.ErrTransport, err)
	}

	return nil
}
