package version

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/isaval/internal/config"
	"github.com/scan-io-git/isaval/internal/structural"
)

var (
	AppConfig     *config.Config
	CoreVersion   = "unknown"
	GolangVersion = "unknown"
	BuildTime     = "unknown"
)

// Versions holds build information for the binary.
type Versions struct {
	Version       string `json:"version"`
	GolangVersion string `json:"golang_version"`
	BuildTime     string `json:"build_time"`
	Schema        string `json:"schema"`
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// NewVersionCmd creates a new cobra.Command for the version command.
func NewVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:                   "version [--json]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Print the version number of the application",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printVersionInfo(cmd.OutOrStdout(), currentVersions(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version information as JSON.")
	return cmd
}

func currentVersions() Versions {
	schema := structural.SchemaURL
	if AppConfig != nil && AppConfig.Validator.SchemaPath != "" {
		schema = AppConfig.Validator.SchemaPath
	}
	return Versions{
		Version:       CoreVersion,
		GolangVersion: GolangVersion,
		BuildTime:     BuildTime,
		Schema:        schema,
	}
}

// printVersionInfo prints the version information.
func printVersionInfo(w io.Writer, versions Versions, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(versions)
	}
	fmt.Fprintf(w, "Core Version: v%s\n", versions.Version)
	fmt.Fprintf(w, "Go Version: %s\n", versions.GolangVersion)
	fmt.Fprintf(w, "Build Time: %s\n", versions.BuildTime)
	fmt.Fprintf(w, "Schema: %s\n", versions.Schema)
	return nil
}
