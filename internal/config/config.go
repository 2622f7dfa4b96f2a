package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// DefaultConfigPath is read when no --config flag is given. It may be absent.
const DefaultConfigPath = "config.yml"

// Output formats of a validation report.
const (
	OutputLog   = "log"
	OutputJSON  = "json"
	OutputSARIF = "sarif"
)

type Config struct {
	Logger     Logger     `yaml:"logger"`
	HTTPClient HTTPClient `yaml:"http_client"`
	Validator  Validator  `yaml:"validator"`
}

type Logger struct {
	Level           string `yaml:"level"`
	JSONFormat      *bool  `yaml:"json_format"`
	DisableTime     *bool  `yaml:"disable_time"`
	IncludeLocation *bool  `yaml:"include_location"`
}

type HTTPClient struct {
	Debug            *bool           `yaml:"debug"`
	RetryCount       int             `yaml:"retry_count"`
	RetryWaitTime    time.Duration   `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration   `yaml:"retry_max_wait_time"`
	Timeout          time.Duration   `yaml:"timeout"`
	TLSClientConfig  TLSClientConfig `yaml:"tls_client_config"`
	Proxy            Proxy           `yaml:"proxy"`
}

type TLSClientConfig struct {
	Verify *bool `yaml:"verify"`
}

type Proxy struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Validator holds defaults for the validate command. Command line flags take precedence.
type Validator struct {
	SchemaPath     string `yaml:"schema_path"`
	DataDir        string `yaml:"data_dir"`
	SkipFileChecks *bool  `yaml:"skip_file_checks"`
	OutputFormat   string `yaml:"output_format"`
	FailOnWarnings *bool  `yaml:"fail_on_warnings"`
}

// ValidateConfigPath checks that path names a file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// NewConfig reads the configuration file at configPath.
func NewConfig(configPath string) (*Config, error) {
	cfg := &Config{}
	if err := LoadYAML(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %q: %w", configPath, err)
	}
	return cfg, nil
}

// LoadConfig reads configPath. A missing file at the default path yields an empty
// configuration so the tool runs without one; any other path must exist.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	if configPath == DefaultConfigPath {
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
	}
	return NewConfig(configPath)
}
