package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"

	"github.com/scan-io-git/isaval/internal/config"
	"github.com/scan-io-git/isaval/internal/httpclient"
	"github.com/scan-io-git/isaval/internal/report"
	isaerrors "github.com/scan-io-git/isaval/pkg/errors"
	"github.com/scan-io-git/isaval/pkg/files"
	"github.com/scan-io-git/isaval/pkg/validator"
)

const stdinSource = "-"

// Result statuses of the JSON envelope.
const (
	StatusOK     = "OK"
	StatusFailed = "FAILED"
)

// ValidateResult is the JSON envelope written by --format json.
type ValidateResult struct {
	RunID      string                `json:"run_id"`
	Args       RunOptionsValidate    `json:"args"`
	Result     *report.Structured    `json:"result"`
	Violations []isaerrors.Violation `json:"violations,omitempty"`
	Status     string                `json:"status"`
	Message    string                `json:"message"`
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// applyConfigDefaults fills options the user did not set on the command line from the validator section.
func applyConfigDefaults(options *RunOptionsValidate, cfg *config.Config, flags *pflag.FlagSet) {
	if cfg == nil {
		return
	}
	if !flags.Changed("format") {
		options.OutputFormat = config.SetThen(options.OutputFormat, cfg.Validator.OutputFormat)
	}
	if !flags.Changed("schema") {
		options.SchemaPath = config.SetThen(options.SchemaPath, cfg.Validator.SchemaPath)
	}
	if !flags.Changed("skip-file-checks") {
		options.SkipFileChecks = config.GetBoolValue(cfg, "Validator.SkipFileChecks", options.SkipFileChecks)
	}
	if !flags.Changed("data-dir") && !options.SkipFileChecks {
		options.DataDir = config.SetThen(options.DataDir, cfg.Validator.DataDir)
	}
	if !flags.Changed("fail-on-warnings") {
		options.FailOnWarnings = config.GetBoolValue(cfg, "Validator.FailOnWarnings", options.FailOnWarnings)
	}
}

// readInput loads the document and returns the directory its data files are relative to.
// Documents from stdin or a URL resolve data files against the working directory.
func readInput(ctx context.Context, source string, stdin io.Reader, logger hclog.Logger) ([]byte, string, error) {
	switch {
	case source == stdinSource:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, "", nil
	case isURL(source):
		if ctx == nil {
			ctx = context.Background()
		}
		data, err := httpclient.New(logger, AppConfig).Fetch(ctx, source)
		return data, "", err
	default:
		path, err := files.ExpandPath(source)
		if err != nil {
			return nil, "", fmt.Errorf("failed to expand path %q: %w", source, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read %q: %w", path, err)
		}
		return data, filepath.Dir(path), nil
	}
}

func validatorOptions(options *RunOptionsValidate, logger hclog.Logger) []validator.Option {
	opts := []validator.Option{
		validator.WithSource(options.Source),
		validator.WithLogger(logger.Named("validator")),
	}
	if options.SchemaPath != "" {
		opts = append(opts, validator.WithSchema(options.SchemaPath))
	}
	if options.SkipFileChecks {
		opts = append(opts, validator.WithoutFileChecks())
	} else {
		opts = append(opts, validator.WithBaseDir(options.DataDir))
	}
	return opts
}

// renderOutput renders the report in the requested format. On a hard failure only the
// JSON format produces output, the other formats have nothing to report.
func renderOutput(options *RunOptionsValidate, runID string, rep *report.Report, validationErr error) ([]byte, error) {
	format := config.SetThen(options.OutputFormat, config.OutputLog)

	if format == config.OutputJSON {
		result := ValidateResult{
			RunID:  runID,
			Args:   *options,
			Status: StatusOK,
		}
		if validationErr != nil {
			result.Status = StatusFailed
			result.Message = validationErr.Error()
			var schemaErr *isaerrors.SchemaError
			if errors.As(validationErr, &schemaErr) {
				result.Violations = schemaErr.Violations
			}
		} else {
			structured := rep.Structured()
			result.Result = &structured
			result.Message = fmt.Sprintf("%d errors, %d warnings", len(structured.Errors), len(structured.Warnings))
		}
		return json.MarshalIndent(result, "", "  ")
	}

	if validationErr != nil {
		return nil, nil
	}

	switch format {
	case config.OutputSARIF:
		var buf bytes.Buffer
		if err := rep.WriteSARIF(&buf, options.Source); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return []byte(rep.Log()), nil
	}
}

// writeOutput writes the rendered report to the output path, or to stdout when no path is set.
func writeOutput(output []byte, options *RunOptionsValidate, stdout io.Writer) error {
	if output == nil {
		return nil
	}
	if options.OutputPath == "" {
		_, err := stdout.Write(output)
		return err
	}

	path, _, err := files.DetermineFileFullPath(options.OutputPath, outputFileName(options.OutputFormat))
	if err != nil {
		return err
	}
	return files.WriteFile(path, output)
}

func outputFileName(format string) string {
	switch format {
	case config.OutputJSON:
		return "isaval-report.json"
	case config.OutputSARIF:
		return "isaval-report.sarif"
	default:
		return "isaval-report.log"
	}
}

// exitStatus maps a report to the command result.
func exitStatus(rep *report.Report, failOnWarnings bool) error {
	if rep.HasErrors() || (failOnWarnings && rep.HasWarnings()) {
		return ErrFindings
	}
	return nil
}
