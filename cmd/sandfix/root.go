package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/sandfix/pkg/logging"
)

var (
	version = "dev"

	verbosity int

	rootCmd = &cobra.Command{
		Use:   "sandfix",
		Short: "Inspect and verify directory trees used as test fixtures",
		Long: `sandfix lists and compares directory trees the same way the sandfix
library does in tests: recursive listings mark directories with a
trailing slash, and ignore patterns are regular expressions matched
anywhere in each entry's relative path.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				pterm.DisableColor()
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(diffCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sandfix version %s\n", version)
	},
}
