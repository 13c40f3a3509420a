package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/simaogato/worth-backend/internal/adapter/repository/file"
	"github.com/simaogato/worth-backend/internal/usecase/aggregator"
)

func totalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "total <holdings.csv|holdings.json>",
		Short: "Print the total worth of a holdings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			holdings, err := file.NewHoldingSource(args[0]).Holdings(cmd.Context())
			if err != nil {
				return err
			}

			total := aggregator.CalculateTotalWorth(slices.Values(holdings))
			a.log.WithField("holdings", len(holdings)).Debug("Total worth calculated")

			fmt.Fprintln(cmd.OutOrStdout(), total.String())
			return nil
		},
	}
}
