package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scan-io-git/isaval/cmd/validate"
	"github.com/scan-io-git/isaval/cmd/version"
	"github.com/scan-io-git/isaval/internal/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "isaval [command]",
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		Short:                 "isaval validates ISA-JSON investigation documents.",
		Long: `isaval validates ISA-JSON investigation documents.

Besides schema conformance it checks that every link between samples, sources, materials,
data files, processes, protocols, parameters, factors and term sources resolves, that
declared protocols, factors and term sources are used, and that dates, DOIs, PubMed IDs
and data files are valid.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml when present)")
	rootCmd.AddCommand(validate.ValidateCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing config file function is crashed - %v \n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	validate.Init(AppConfig)
	version.Init(AppConfig)
}
