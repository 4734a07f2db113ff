package cmd

import (
	"fmt"

	"github.com/sarchlab/radiosim/config"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scenario files]",
		Short: "Check scenario files.",
		Long: "`validate [scenario files]` loads the scenarios and reports " +
			"the first error of each file.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0

			for _, path := range args {
				s, err := config.Load(path)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %v\n", err)
					failed++

					continue
				}

				packets := 0
				for _, f := range s.Flows {
					packets += f.Count
				}

				fmt.Fprintf(cmd.OutOrStdout(),
					"ok   %s: %d radios, %d loopbacks, %d flows, %d packets\n",
					path, len(s.Radios), len(s.Loopbacks), len(s.Flows), packets)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d scenarios are invalid",
					failed, len(args))
			}

			return nil
		},
	}
}
