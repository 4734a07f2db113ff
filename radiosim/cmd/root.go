// Package cmd provides the command-line interface of radiosim.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "radiosim",
		Short: "Radiosim simulates radios sharing a wireless medium.",
		Long: `Radiosim simulates radios sharing a wireless medium. It runs ` +
			`scenario files, checks them, and inspects the recorded traces.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCmd(),
		newValidateCmd(),
		newInspectCmd(),
		newModesCmd(),
	)

	return root
}

// Execute adds all child commands to the root command and sets flags
// appropriately. The process exits through atexit so that the recorders are
// flushed.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
