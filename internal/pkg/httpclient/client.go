// internal/pkg/httpclient/client.go
package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Response is the normalized result of an outbound request.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Client wraps outbound HTTP calls to auxiliary services. A failed
// transport never propagates to the caller; the error is logged and a
// synthetic empty success is returned so checkout keeps working when a
// partner endpoint is down.
type Client struct {
	http   *http.Client
	logger *logrus.Logger
}

// New creates a client with a bounded request timeout.
func New(timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Request performs an HTTP request with a JSON body and returns the
// response. Transport failures and unreadable bodies degrade to a
// synthetic 200 with an empty JSON object.
func (c *Client) Request(ctx context.Context, method, url string, body []byte) Response {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		c.logger.WithError(err).WithField("url", url).Warn("Failed to build outbound request")
		return syntheticOK()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"method": method,
			"url":    url,
		}).Warn("Outbound request failed, returning synthetic success")
		return syntheticOK()
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.WithError(err).WithField("url", url).Warn("Failed to read outbound response body")
		return syntheticOK()
	}

	return Response{StatusCode: resp.StatusCode, Body: data}
}

func syntheticOK() Response {
	return Response{StatusCode: http.StatusOK, Body: []byte("{}")}
}
