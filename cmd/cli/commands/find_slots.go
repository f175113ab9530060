package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brightfold/agency-ops/pkg/core/model"
	"github.com/brightfold/agency-ops/pkg/core/services"
)

// FindSlotsCmd creates the findSlots command
func FindSlotsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "findSlots <brief_id> <phase>",
		Short: "Find ranked candidate slots for one phase of a brief",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			briefID := args[0]
			phase := model.Phase(args[1])
			remaining, _ := cmd.Flags().GetFloat64("remaining")
			limit, _ := cmd.Flags().GetInt("limit")

			app.Logger.Debug("findSlots command",
				zap.String("brief_id", briefID),
				zap.String("phase", string(phase)))

			result, err := services.PlanBriefBooking(app.Ctx, app.Database, app.Cfg, app.Logger, services.PlanBookingArgs{
				BriefID:        briefID,
				Phase:          phase,
				RemainingHours: remaining,
			})
			if err != nil {
				return fmt.Errorf("slot search failed: %w", err)
			}

			fmt.Printf("\n🔍 Candidate slots for %q (%s, %.1fh remaining)\n\n",
				result.Brief.Title, result.Phase, result.RemainingHours)

			if len(result.Slots) == 0 {
				fmt.Println("No slots available before the due date. Try widening the search window or freeing up calendars.")
				fmt.Println()
				return nil
			}

			printSlots(result.Slots, limit)
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Float64("remaining", 0, "Hours still needed (defaults to the full phase estimate)")
	cmd.Flags().Int("limit", 10, "Maximum slots to display")

	return cmd
}

// printSlots displays slots in ranked order, numbered from 1
func printSlots(slots []model.TimeSlot, limit int) {
	if limit > 0 && len(slots) > limit {
		slots = slots[:limit]
	}
	for i, slot := range slots {
		fmt.Printf("  %2d. %s  %s-%s  %.0fh  staff %s\n",
			i+1,
			slot.Date.Format("Mon 2006-01-02"),
			slot.Start.Format("15:04"),
			slot.End.Format("15:04"),
			slot.DurationHours,
			slot.StaffID,
		)
	}
}
