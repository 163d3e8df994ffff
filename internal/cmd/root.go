package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "gotiny <source file>",
		Short:        "gotiny",
		SilenceUsage: true,
		Long:         `Lexical scanner for the TINY teaching language. Scans a source file (".tny" is appended to names without an extension) and prints a listing of the token stream.`,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(args[0])
		},
	}

	noEcho  bool
	noTrace bool
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noEcho, "no-echo", false, "do not echo source lines to the listing")
	rootCmd.PersistentFlags().BoolVar(&noTrace, "no-trace", false, "do not print scanned tokens to the listing")
}
