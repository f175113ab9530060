package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brightfold/agency-ops/pkg/core/services"
)

// AssignStaffCmd creates the assignStaff command
func AssignStaffCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignStaff <brief_id> <staff_id>",
		Short: "Assign a staff member to a brief after a capacity check",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			result, err := services.AssignStaff(app.Ctx, app.Database, app.Logger, args[0], args[1], force)
			if err != nil {
				return err
			}

			fmt.Printf("\n✅ Assigned %s to brief %s\n", result.StaffName, result.BriefID)
			fmt.Printf("Brief requires %.1fh, %s had %.1fh available.\n",
				result.RequiredHours, result.StaffName, result.AvailableHours)
			if result.Forced {
				fmt.Println("⚠️  Assignment was forced over capacity.")
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Assign even when the staff member lacks the hours")

	return cmd
}

// UnassignStaffCmd creates the unassignStaff command
func UnassignStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unassignStaff <brief_id> <staff_id>",
		Short: "Remove a staff member from a brief",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.UnassignStaff(app.Ctx, app.Database, app.Logger, args[0], args[1]); err != nil {
				return err
			}

			fmt.Printf("\n✅ Removed staff %s from brief %s\n\n", args[1], args[0])
			return nil
		},
	}
}
