package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/sarchlab/radiosim/phy/ieee80211"
	"github.com/sarchlab/radiosim/phy/unit"
	"github.com/spf13/cobra"
)

var modeSetNames = []string{"a", "a-10MHz", "a-5MHz", "ht"}

func newModesCmd() *cobra.Command {
	var length int

	c := &cobra.Command{
		Use:   "modes [mode set]",
		Short: "List the transmission modes.",
		Long: "`modes [mode set]` lists the modes of a built-in mode set, " +
			"with the airtime of a frame. Without argument, it lists the " +
			"mode sets.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range modeSetNames {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}

				return nil
			}

			s, found := ieee80211.ModeSetByName(args[0])
			if !found {
				return fmt.Errorf("unknown mode set %q", args[0])
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "Mode\tModulation\tBandwidth\tBitrate\tStreams\t"+
				"Airtime of %d B (s)\n", length)

			for _, m := range s.Modes() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%.9f\n",
					m.Name(), m.Modulation(), m.Bandwidth(), m.NetBitrate(),
					m.NumberOfSpatialStreams(), m.Duration(unit.Byte(length)))
			}

			return tw.Flush()
		},
	}

	c.Flags().IntVarP(&length, "length", "l", 1500,
		"Payload length used for the airtime")

	return c
}
