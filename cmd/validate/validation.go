package validate

import (
	"fmt"
	"os"

	"github.com/scan-io-git/isaval/internal/config"
	"github.com/scan-io-git/isaval/pkg/files"
)

// validateValidateArgs validates the arguments provided to the validate command.
func validateValidateArgs(options *RunOptionsValidate, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one document must be specified, got %d", len(args))
	}
	options.Source = args[0]

	if err := config.ValidateOutputFormat(options.OutputFormat); err != nil {
		return err
	}

	if options.DataDir != "" {
		if options.SkipFileChecks {
			return fmt.Errorf("you cannot use a 'data-dir' flag and a 'skip-file-checks' flag at the same time")
		}
		info, err := os.Stat(options.DataDir)
		if err != nil {
			return fmt.Errorf("the data directory is not accessible: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("the data directory %q is not a directory", options.DataDir)
		}
	}

	if options.SchemaPath != "" {
		if err := files.ValidatePath(options.SchemaPath); err != nil {
			return fmt.Errorf("the schema file is not accessible: %w", err)
		}
	}

	switch {
	case options.Source == stdinSource, isURL(options.Source):
		return nil
	default:
		if err := files.ValidatePath(options.Source); err != nil {
			return fmt.Errorf("the document is not accessible: %w", err)
		}
	}
	return nil
}
