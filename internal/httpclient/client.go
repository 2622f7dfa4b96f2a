package httpclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/isaval/internal/config"
)

// HclogAdapter adapts an hclog.Logger to be compatible with the resty Logger interface.
type HclogAdapter struct {
	logger hclog.Logger
}

// NewHclogAdapter creates a new adapter that will forward messages to a hclog.Logger.
func NewHclogAdapter(logger hclog.Logger) resty.Logger {
	return &HclogAdapter{logger: logger}
}

// Errorf logs a message at error level.
func (a *HclogAdapter) Errorf(format string, v ...interface{}) {
	a.logger.Error(fmt.Sprintf(format, v...))
}

// Warnf logs a message at warning level.
func (a *HclogAdapter) Warnf(format string, v ...interface{}) {
	a.logger.Warn(fmt.Sprintf(format, v...))
}

// Infof logs a message at info level.
func (a *HclogAdapter) Infof(format string, v ...interface{}) {
	a.logger.Info(fmt.Sprintf(format, v...))
}

// Debugf logs a message at debug level.
func (a *HclogAdapter) Debugf(format string, v ...interface{}) {
	a.logger.Debug(fmt.Sprintf(format, v...))
}

// Client downloads documents over HTTP(S).
type Client struct {
	httpc  *resty.Client
	logger hclog.Logger
}

// New creates a Client configured from the http_client section of cfg.
func New(logger hclog.Logger, cfg *config.Config) *Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Client{
		httpc:  InitializeRestyClient(logger, cfg),
		logger: logger,
	}
}

// InitializeRestyClient initializes and configures a resty client based on the provided configuration.
// Server errors are retried.
func InitializeRestyClient(logger hclog.Logger, cfg *config.Config) *resty.Client {
	client := resty.New()
	if logger != nil {
		client.SetLogger(NewHclogAdapter(logger))
	}

	var httpConfig *config.HTTPClient
	if cfg != nil {
		httpConfig = &cfg.HTTPClient
	}
	restyConfig := applyHTTPClientConfig(httpConfig)
	client.
		SetDebug(restyConfig.Debug).
		SetRetryCount(restyConfig.RetryCount).
		SetRetryWaitTime(restyConfig.RetryWaitTime).
		SetRetryMaxWaitTime(restyConfig.RetryMaxWaitTime).
		SetTimeout(restyConfig.Timeout).
		SetTLSClientConfig(restyConfig.TLSClientConfig).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return r != nil && r.StatusCode() >= http.StatusInternalServerError
		})
	if restyConfig.Proxy != "" {
		client.SetProxy(restyConfig.Proxy)
	}

	return client
}

// applyHTTPClientConfig applies the HTTPClient configuration or uses default values.
func applyHTTPClientConfig(httpConfig *config.HTTPClient) config.RestyHTTPClientConfig {
	defaults := config.DefaultRestyConfig()
	if httpConfig == nil {
		return defaults
	}

	cfg := config.RestyHTTPClientConfig{
		BaseHTTPConfig: config.BaseHTTPConfig{
			RetryCount:       config.SetThen(httpConfig.RetryCount, defaults.RetryCount),
			RetryWaitTime:    config.SetThen(httpConfig.RetryWaitTime, defaults.RetryWaitTime),
			RetryMaxWaitTime: config.SetThen(httpConfig.RetryMaxWaitTime, defaults.RetryMaxWaitTime),
			Timeout:          config.SetThen(httpConfig.Timeout, defaults.Timeout),
			TLSClientConfig: &tls.Config{
				MinVersion:         tls.VersionTLS12,
				InsecureSkipVerify: !config.GetBoolValue(httpConfig.TLSClientConfig, "Verify", true),
			},
		},
		Debug: config.GetBoolValue(httpConfig, "Debug", defaults.Debug),
	}

	if httpConfig.Proxy.Host != "" && httpConfig.Proxy.Port != 0 {
		cfg.Proxy = fmt.Sprintf("%s:%d", httpConfig.Proxy.Host, httpConfig.Proxy.Port)
	}
	return cfg
}

// Fetch downloads the document at url. Any status other than 200 is an error.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	c.logger.Debug("fetching document", "url", url)
	resp, err := c.httpc.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %q: %w", url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%d on fetching %q", resp.StatusCode(), url)
	}
	c.logger.Debug("document fetched", "url", url, "size", len(resp.Body()), "duration", resp.Time())
	return resp.Body(), nil
}
