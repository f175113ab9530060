package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brightfold/agency-ops/pkg/core/services"
)

// CancelBookingCmd creates the cancelBooking command
func CancelBookingCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cancelBooking <entry_id>",
		Short: "Cancel a booked calendar entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.CancelBooking(app.Ctx, app.Database, app.Logger, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✅ Cancelled booking %s\n\n", args[0])
			return nil
		},
	}
}
