package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brightfold/agency-ops/pkg/core/services"
)

// UtilizationCmd creates the utilization command
func UtilizationCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "utilization",
		Short: "Show this week's utilization across the team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.TeamUtilization(app.Ctx, app.Database, app.Logger, time.Now())
			if err != nil {
				return fmt.Errorf("failed to build utilization report: %w", err)
			}

			fmt.Printf("\n📊 Team Utilization (week of %s)\n\n", result.Week.Format("2006-01-02"))

			for _, row := range result.Staff {
				fmt.Printf("  %-24s booked %5.1fh / %5.1fh   upcoming %5.1fh   share %5.1fh\n",
					row.Name,
					row.Utilization.Booked,
					row.Utilization.Total,
					row.Utilization.Upcoming,
					row.ShareHours,
				)
			}

			fmt.Printf("\nTeam: %.1fh booked of %.1fh capacity (%.1f%%)\n",
				result.TotalBooked, result.TotalCapacity, result.BookedPercent)

			if len(result.OverbookedIDs) > 0 {
				fmt.Printf("⚠️  Overbooked staff: %d\n", len(result.OverbookedIDs))
			}
			fmt.Println()

			return nil
		},
	}
}
