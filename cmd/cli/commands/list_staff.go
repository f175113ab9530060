package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brightfold/agency-ops/pkg/core/services"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listStaff",
		Short: "List staff with their remaining available hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")

			overviews, err := services.ListStaff(app.Ctx, app.Database, app.Logger, !all)
			if err != nil {
				return fmt.Errorf("failed to list staff: %w", err)
			}

			fmt.Printf("\nFound %d staff:\n\n", len(overviews))
			for _, overview := range overviews {
				flag := ""
				if overview.Overcommitted {
					flag = " ⚠️  overbooked"
				}
				fmt.Printf("- %s %s (%s) - %s - %d briefs - %.1fh available%s\n",
					overview.Staff.FirstName,
					overview.Staff.LastName,
					overview.Staff.ID,
					overview.Staff.Status,
					overview.AssignedBriefs,
					overview.AvailableHours,
					flag,
				)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Include inactive staff")

	return cmd
}
