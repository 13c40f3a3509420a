package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/simaogato/worth-backend/internal/adapter/repository/file"
	"github.com/simaogato/worth-backend/internal/logger"
	"github.com/simaogato/worth-backend/internal/usecase/report"
)

func reportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report <holdings.csv|holdings.json>",
		Short: "Print an auditable worth report with per-kind subtotals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := report.NewReportService(
				file.NewHoldingSource(args[0]),
				logger.WithComponent(a.log, "report"),
			)

			r, err := service.Generate(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Report:\t%s\n", r.ID)
			fmt.Fprintf(w, "Generated:\t%s\n", r.GeneratedAt.UTC().Format(time.RFC3339))
			fmt.Fprintf(w, "Holdings:\t%d\n", r.HoldingCount)
			for _, line := range r.Lines() {
				fmt.Fprintf(w, "%s\t%s\n", line.Kind, line.Worth)
			}
			fmt.Fprintf(w, "TOTAL\t%s\n", r.Total)
			return w.Flush()
		},
	}
}
