package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scan-io-git/isaval/internal/config"
)

func fastConfig() *config.Config {
	return &config.Config{HTTPClient: config.HTTPClient{
		RetryCount:       1,
		RetryWaitTime:    time.Millisecond,
		RetryMaxWaitTime: 2 * time.Millisecond,
		Timeout:          5 * time.Second,
	}}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/isa.json":
			_, _ = w.Write([]byte(`{"identifier": "i1"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(nil, fastConfig())

	body, err := c.Fetch(context.Background(), srv.URL+"/isa.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"identifier": "i1"}`, string(body))

	_, err = c.Fetch(context.Background(), srv.URL+"/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	body, err := New(nil, fastConfig()).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetchCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil, fastConfig()).Fetch(ctx, srv.URL)
	assert.Error(t, err)
}

func TestApplyHTTPClientConfig(t *testing.T) {
	defaults := config.DefaultRestyConfig()
	assert.Equal(t, defaults, applyHTTPClientConfig(nil))

	verify := false
	got := applyHTTPClientConfig(&config.HTTPClient{
		RetryCount:      7,
		TLSClientConfig: config.TLSClientConfig{Verify: &verify},
		Proxy:           config.Proxy{Host: "http://proxy.local", Port: 3128},
	})
	assert.Equal(t, 7, got.RetryCount)
	assert.Equal(t, defaults.Timeout, got.Timeout)
	assert.True(t, got.TLSClientConfig.InsecureSkipVerify)
	assert.Equal(t, "http://proxy.local:3128", got.Proxy)
	assert.False(t, got.Debug)
}
