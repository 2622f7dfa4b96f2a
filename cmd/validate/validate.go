package validate

import (
	"errors"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/scan-io-git/isaval/internal/config"
	"github.com/scan-io-git/isaval/internal/logger"
	"github.com/scan-io-git/isaval/pkg/validator"
)

// RunOptionsValidate holds the arguments for the validate command.
type RunOptionsValidate struct {
	Source         string `json:"source"`
	OutputFormat   string `json:"output_format"`
	OutputPath     string `json:"output_path,omitempty"`
	DataDir        string `json:"data_dir,omitempty"`
	SchemaPath     string `json:"schema_path,omitempty"`
	SkipFileChecks bool   `json:"skip_file_checks"`
	FailOnWarnings bool   `json:"fail_on_warnings"`
}

// ErrFindings is returned when the report contains errors, or warnings with --fail-on-warnings.
var ErrFindings = errors.New("the document did not pass validation")

// Global variables for configuration and command arguments
var (
	AppConfig            *config.Config
	validateOptions      RunOptionsValidate
	exampleValidateUsage = `  # Validating a local document, data files are looked up next to it
  isaval validate /path/to/investigation.json

  # Validating a document with data files stored elsewhere
  isaval validate --data-dir /path/to/raw_data /path/to/investigation.json

  # Writing a SARIF report to a directory
  isaval validate --format sarif --output /path/to/reports/ /path/to/investigation.json

  # Validating a remote document without data file checks
  isaval validate --format json --skip-file-checks https://example.org/isa/investigation.json

  # Reading the document from stdin and failing on warnings as well
  cat investigation.json | isaval validate --fail-on-warnings -`
)

// ValidateCmd represents the validate command.
var ValidateCmd = &cobra.Command{
	Use:                   "validate [--format/-f log|json|sarif] [--output/-o PATH] [--data-dir DIR] [--schema PATH] [--skip-file-checks] [--fail-on-warnings] {PATH | URL | -}",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleValidateUsage,
	Short:                 "Validates an ISA-JSON investigation document",
	Long: `Validates an ISA-JSON investigation document.

Input that is not JSON or does not conform to the ISA-JSON schema fails immediately.
Otherwise every reference, usage and field format check runs and all findings are reported.`,
	RunE: runValidateCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runValidateCommand executes the validate command.
func runValidateCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	logger := logger.NewLoggerWithOutput(AppConfig, "core-validate", os.Stderr)

	options := validateOptions
	applyConfigDefaults(&options, AppConfig, cmd.Flags())
	if err := validateValidateArgs(&options, args); err != nil {
		logger.Error("invalid validate arguments", "error", err)
		return err
	}

	runID := uuid.New().String()
	logger.Debug("validation started", "run_id", runID, "source", options.Source)

	data, baseDir, err := readInput(cmd.Context(), options.Source, cmd.InOrStdin(), logger)
	if err != nil {
		logger.Error("failed to read input", "source", options.Source, "error", err)
		return err
	}
	if options.DataDir == "" {
		options.DataDir = baseDir
	}

	v, err := validator.New(validatorOptions(&options, logger)...)
	if err != nil {
		logger.Error("failed to prepare validator", "error", err)
		return err
	}

	rep, validationErr := v.ValidateBytes(data)
	if validationErr != nil {
		logger.Error("document could not be validated", "source", options.Source, "error", validationErr)
	}

	output, err := renderOutput(&options, runID, rep, validationErr)
	if err != nil {
		logger.Error("failed to render report", "error", err)
		return err
	}
	if err := writeOutput(output, &options, cmd.OutOrStdout()); err != nil {
		logger.Error("failed to write report", "error", err)
		return err
	}

	if validationErr != nil {
		return validationErr
	}

	logger.Info("validate command completed",
		"run_id", runID,
		"errors", len(rep.Errors()),
		"warnings", len(rep.Warnings()))
	return exitStatus(rep, options.FailOnWarnings)
}

// Initialize flags for the validate command.
func init() {
	ValidateCmd.Flags().StringVarP(&validateOptions.OutputFormat, "format", "f", "", "Format of the report: log, json or sarif (default log).")
	ValidateCmd.Flags().BoolP("help", "h", false, "Show help for the validate command.")
	ValidateCmd.Flags().StringVarP(&validateOptions.OutputPath, "output", "o", "", "Path to the output file or directory where the report will be saved. Prints to stdout when empty.")
	ValidateCmd.Flags().StringVar(&validateOptions.DataDir, "data-dir", "", "Directory data file names are resolved against. Defaults to the document's directory.")
	ValidateCmd.Flags().StringVar(&validateOptions.SchemaPath, "schema", "", "Path to a JSON schema replacing the embedded ISA investigation schema.")
	ValidateCmd.Flags().BoolVar(&validateOptions.SkipFileChecks, "skip-file-checks", false, "Do not check that data files exist.")
	ValidateCmd.Flags().BoolVar(&validateOptions.FailOnWarnings, "fail-on-warnings", false, "Exit with a non-zero code when the report has warnings.")
}
