// internal/pkg/httpclient/client_test.go
package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestRequestReturnsUpstreamResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"serviceable":true}`))
	}))
	defer srv.Close()

	c := New(time.Second, quietLogger())
	resp := c.Request(context.Background(), http.MethodPost, srv.URL, []byte(`{"pincode":"560001"}`))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"serviceable":true}`, string(resp.Body))
	assert.True(t, resp.OK())
}

func TestRequestDegradesOnTransportFailure(t *testing.T) {
	c := New(100*time.Millisecond, quietLogger())
	resp := c.Request(context.Background(), http.MethodGet, "http://127.0.0.1:1/unreachable", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{}`, string(resp.Body))
}
