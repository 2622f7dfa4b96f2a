package validator

import (
	"github.com/hashicorp/go-hclog"
)

// Option configures a Validator.
type Option func(*options)

type options struct {
	fileExists func(string) bool
	baseDir    string
	schemaPath string
	source     string
	skipFiles  bool
	logger     hclog.Logger
}

func defaultOptions() options {
	return options{logger: hclog.NewNullLogger()}
}

// WithFileExists replaces the data file existence check.
func WithFileExists(fn func(name string) bool) Option {
	return func(o *options) {
		o.fileExists = fn
	}
}

// WithBaseDir sets the directory data file names are resolved against.
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}

// WithSchema validates against the schema file at path instead of the embedded one.
func WithSchema(path string) Option {
	return func(o *options) {
		o.schemaPath = path
	}
}

// WithSource names the input in parse errors.
func WithSource(name string) Option {
	return func(o *options) {
		o.source = name
	}
}

// WithLogger sets the logger used for pass level diagnostics.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithoutFileChecks disables the data file existence check.
func WithoutFileChecks() Option {
	return func(o *options) {
		o.skipFiles = true
	}
}
