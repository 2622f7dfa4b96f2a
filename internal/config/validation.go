package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ValidateConfig checks if the global configurations have valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := ValidateLoggerConfig(&cfg.Logger); err != nil {
		return fmt.Errorf("YAML global config: logger directive is invalid: %w", err)
	}
	if err := ValidateHTTPConfig(&cfg.HTTPClient); err != nil {
		return fmt.Errorf("YAML global config: http_client directive is invalid: %w", err)
	}
	if err := ValidateValidatorConfig(&cfg.Validator); err != nil {
		return fmt.Errorf("YAML global config: validator directive is invalid: %w", err)
	}
	return nil
}

// ValidateLoggerConfig checks the configured log level name.
func ValidateLoggerConfig(loggerConfig *Logger) error {
	if loggerConfig == nil {
		return fmt.Errorf("logger configuration is nil")
	}
	switch strings.ToUpper(loggerConfig.Level) {
	case "", "TRACE", "DEBUG", "INFO", "WARN", "ERROR":
		return nil
	default:
		return fmt.Errorf("unknown level %q", loggerConfig.Level)
	}
}

// ValidateHTTPConfig checks if the HTTP configurations have valid values.
func ValidateHTTPConfig(httpConfig *HTTPClient) error {
	if httpConfig == nil {
		return fmt.Errorf("HTTP configuration is nil")
	}
	if httpConfig.RetryCount < 0 || httpConfig.RetryCount > 20 {
		return fmt.Errorf("retry_count must be between 0 and 20: %d", httpConfig.RetryCount)
	}

	durations := map[string]time.Duration{
		"RetryMaxWaitTime": httpConfig.RetryMaxWaitTime,
		"RetryWaitTime":    httpConfig.RetryWaitTime,
		"Timeout":          httpConfig.Timeout,
	}
	for name, duration := range durations {
		if err := validateDuration(duration, name, 100*time.Second); err != nil {
			return err
		}
	}

	return validateProxy(&httpConfig.Proxy)
}

// ValidateValidatorConfig checks the validate command defaults.
func ValidateValidatorConfig(validatorConfig *Validator) error {
	if validatorConfig == nil {
		return fmt.Errorf("validator configuration is nil")
	}
	return ValidateOutputFormat(validatorConfig.OutputFormat)
}

// ValidateOutputFormat accepts the supported report formats and the empty string.
func ValidateOutputFormat(format string) error {
	switch format {
	case "", OutputLog, OutputJSON, OutputSARIF:
		return nil
	default:
		return fmt.Errorf("output format %q is not one of %s, %s, %s", format, OutputLog, OutputJSON, OutputSARIF)
	}
}

// validateDuration checks that a time.Duration is valid and within a specified maximum duration.
func validateDuration(d time.Duration, name string, max time.Duration) error {
	if d < 0 {
		return fmt.Errorf("invalid duration for %q: %v cannot be negative", name, d)
	}
	if d > max {
		return fmt.Errorf("%q duration is too long: %v exceeds maximum of %v", name, d, max)
	}
	return nil
}

// validateProxy checks if the given Proxy settings are valid.
func validateProxy(proxy *Proxy) error {
	if proxy == nil {
		return fmt.Errorf("proxy configuration is nil")
	}

	// If host or port is not set, skip further validation
	if proxy.Host == "" || proxy.Port == 0 {
		return nil
	}

	if err := validateHost(&proxy.Host); err != nil {
		return err
	}
	return validatePort(proxy.Port)
}

// validateHost ensures the host includes a scheme; adds "http" if missing.
func validateHost(host *string) error {
	if host == nil {
		return fmt.Errorf("host string pointer is nil")
	}

	if !strings.Contains(*host, "://") {
		*host = "http://" + *host
	}
	*host = strings.TrimRight(*host, "/")

	u, err := url.Parse(*host)
	if err != nil {
		return fmt.Errorf("invalid host URL: %w", err)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("invalid host URL %q: empty host", *host)
	}
	return nil
}

// validatePort checks if the port part of the proxy configuration is valid.
func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}
	return nil
}
