package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarnvik/changegear/tpibox"
)

// newTpiboxCmd sizes the inch-fold gearbox that hangs behind the
// spindle, the companion computation to the main train search.
func newTpiboxCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tpibox",
		Short: "Size the inch-fold gearbox for exact fractional-inch ratios",
		RunE: func(_ *cobra.Command, _ []string) error {
			logger, err := resultLogger(output)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			out, err := tpibox.Search(tpibox.DefaultLimits())
			if err != nil {
				return err
			}

			fmt.Printf("\nTPI gearbox calculation.\n\nVisited %d candidate sizings.\n", out.Visited)
			logger.Info("Lathe TPI box inch-fractional gear combinations.\n")
			for _, s := range out.Sets {
				logger.Info(fmt.Sprintf("P=%-3d I=%d M=%-3d N=%-3d Q=%-3d O=%-2d effective=%.6f",
					s.Primary, s.InchFold, s.Cluster, s.Secondary, s.Idler, s.Output, s.Effective))
			}
			fmt.Printf("Of which %d are inch-fractional.\n", len(out.Sets))
			if len(out.Sets) > 0 {
				best := out.Sets[0]
				fmt.Printf("Smallest primary gear: P=%d (effective %.6f).\n", best.Primary, best.Effective)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "tpi_box_rationals", "result log file")

	return cmd
}
