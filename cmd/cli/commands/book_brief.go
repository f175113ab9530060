package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/brightfold/agency-ops/pkg/core/model"
	"github.com/brightfold/agency-ops/pkg/core/scheduling"
	"github.com/brightfold/agency-ops/pkg/core/services"
)

// BookBriefCmd creates the bookBrief command, an interactive session
// that walks through slot selection for both phases and commits the
// booking once everything is covered.
func BookBriefCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "bookBrief <brief_id>",
		Short: "Interactively book shoot and edit slots for a brief",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			briefID := args[0]

			briefRecord, err := app.Database.GetBriefByID(app.Ctx, briefID)
			if err != nil {
				return fmt.Errorf("failed to fetch brief: %w", err)
			}

			estimate := model.EstimatedHours{
				Shoot: briefRecord.ShootHours,
				Edit:  briefRecord.EditHours,
			}
			session := scheduling.NewSession(briefID, estimate)
			scanner := bufio.NewScanner(os.Stdin)

			fmt.Printf("\n📋 Booking %q (shoot %.1fh, edit %.1fh, due %s)\n",
				briefRecord.Title, estimate.Shoot, estimate.Edit,
				briefRecord.DueDate.Format("2006-01-02"))

			for _, phase := range []model.Phase{model.PhaseShoot, model.PhaseEdit} {
				if err := selectPhaseSlots(app, session, phase, scanner); err != nil {
					return err
				}
			}

			if shortfalls := session.Shortfalls(); len(shortfalls) > 0 {
				fmt.Println("\n❌ Booking abandoned, not everything was covered:")
				for _, shortfall := range shortfalls {
					fmt.Printf("  • %s: %.1fh still needed\n", shortfall.Phase, shortfall.RemainingHours)
				}
				fmt.Println("Nothing was saved.")
				return nil
			}

			fmt.Print("\nCommit this booking? [y/N] ")
			if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
				fmt.Println("Nothing was saved.")
				return nil
			}

			result, err := services.CommitBooking(app.Ctx, app.Database, app.Logger, session)
			if err != nil {
				return fmt.Errorf("failed to commit booking: %w", err)
			}

			fmt.Printf("\n✅ Booked %.1fh across %d calendar entries.\n\n",
				result.TotalHours, len(result.EntryIDs))

			return nil
		},
	}
}

// selectPhaseSlots loops slot search and selection until the phase is
// covered or the user skips it.
func selectPhaseSlots(app *AppContext, session *scheduling.Session, phase model.Phase, scanner *bufio.Scanner) error {
	for {
		remaining := session.RemainingHours(phase)
		if remaining <= 0 {
			return nil
		}

		fmt.Printf("\n— %s phase: %.1fh remaining —\n", phase, remaining)

		result, err := services.PlanBriefBooking(app.Ctx, app.Database, app.Cfg, app.Logger, services.PlanBookingArgs{
			BriefID:        session.BriefID,
			Phase:          phase,
			RemainingHours: remaining,
			// Every tentative selection blocks its staff member's time
			OtherPhaseSlots: session.AllSelected(),
		})
		if err != nil {
			return fmt.Errorf("slot search failed: %w", err)
		}

		if len(result.Slots) == 0 {
			fmt.Println("No slots available before the due date for this phase.")
			return nil
		}

		printSlots(result.Slots, 10)
		fmt.Print("Pick a slot number ('s' to skip this phase, 'q' to abort): ")

		if !scanner.Scan() {
			return nil
		}
		input := strings.TrimSpace(scanner.Text())

		switch input {
		case "s":
			return nil
		case "q":
			return fmt.Errorf("booking aborted")
		}

		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > len(result.Slots) {
			fmt.Println("❌ Not a valid slot number.")
			continue
		}

		slot := result.Slots[choice-1]
		if err := session.Select(slot); err != nil {
			// Conflict and overflow guards reject the pick, the session
			// stays usable
			fmt.Printf("❌ %v\n", err)
			continue
		}

		app.Logger.Debug("Slot selected",
			zap.String("staff_id", slot.StaffID),
			zap.String("phase", string(phase)),
			zap.Float64("hours", slot.DurationHours))

		fmt.Printf("✓ Selected %s %s-%s with staff %s\n",
			slot.Date.Format("Mon 2006-01-02"),
			slot.Start.Format("15:04"),
			slot.End.Format("15:04"),
			slot.StaffID)
	}
}
