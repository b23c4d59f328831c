package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopipy/posctl/internal/api"
	"github.com/shopipy/posctl/internal/tui"
)

var reservationCmd = &cobra.Command{
	Use:   "reservation",
	Short: "Manage service reservations",
	Long: `Manage service reservations.

Subcommands:
  list    List reservations with optional filters
  show    Show one reservation
  create  Book a service slot for a customer
  update  Update a reservation
  cancel  Cancel a reservation`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var reservationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reservations",
	Long: `List reservations, filterable by service or customer.

Examples:
  posctl reservation list
  posctl reservation list --service Haircut --customer-phone +37060000000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var filter api.ReservationFilter
		filter.ServiceName, _ = cmd.Flags().GetString("service")
		filter.CustomerName, _ = cmd.Flags().GetString("customer-name")
		filter.CustomerEmail, _ = cmd.Flags().GetString("customer-email")
		filter.CustomerPhone, _ = cmd.Flags().GetString("customer-phone")
		filter.AppointedAt, _ = cmd.Flags().GetString("appointed-at")
		filter.Offset, filter.Limit = pageValues(cmd)

		page, err := client.ListReservations(cmd.Context(), filter)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.ReservationTable(page))
		return nil
	},
}

var reservationShowCmd = &cobra.Command{
	Use:   "show <reservation-id>",
	Short: "Show one reservation",
	Args:  uuidArgs("reservation"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		res, err := client.GetReservation(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printOut(cmd, fmt.Sprintf("%s for %s %s at %s (employee %s)\n",
			res.ServiceName, res.FirstName, res.LastName, res.AppointedAt, res.EmployeeFullName))
		return nil
	},
}

var reservationCreateCmd = &cobra.Command{
	Use:   "create <service-id>",
	Short: "Book a service slot for a customer",
	Long: `Book a service slot for a customer.

The day's free slots are fetched for the chosen employee and one is
picked interactively; pass --at with an exact slot start time to skip
the picker. Slot times are the backend's own timestamps and are sent
back unchanged.

Examples:
  posctl reservation create <service-id> --date 2026-09-01 \
    --first-name Ona --last-name K. --phone +37060000000
  posctl reservation create <service-id> --at 2026-09-01T09:30:00 \
    --employee <user-id> --first-name Ona --last-name K. --phone +37060000000`,
	Args: uuidArgs("service"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, identity, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var req api.CreateReservationRequest
		req.ServiceID = args[0]
		req.FirstName, _ = cmd.Flags().GetString("first-name")
		req.LastName, _ = cmd.Flags().GetString("last-name")
		req.Phone, _ = cmd.Flags().GetString("phone")
		req.AppointedAt, _ = cmd.Flags().GetString("at")

		req.EmployeeID, _ = cmd.Flags().GetString("employee")
		if req.EmployeeID == "" {
			req.EmployeeID = identity.ID
		} else if err := validateID("user", req.EmployeeID); err != nil {
			return err
		}

		if req.FirstName == "" || req.LastName == "" || req.Phone == "" {
			return fmt.Errorf("--first-name, --last-name, and --phone are required")
		}

		if req.AppointedAt == "" {
			date, _ := cmd.Flags().GetString("date")
			if err := validateSlotDate(date); err != nil {
				return err
			}
			if !tui.ShouldPrompt() {
				return fmt.Errorf("pass --at <slot-start> when not running interactively")
			}

			slots, err := client.AvailableSlots(cmd.Context(), req.ServiceID, date, req.EmployeeID)
			if err != nil {
				return err
			}
			if len(slots) == 0 {
				return fmt.Errorf("no free slots on %s", date)
			}

			chosen, err := pickSlot(slots)
			if err != nil {
				return err
			}
			req.AppointedAt = chosen
		}

		res, err := client.CreateReservation(cmd.Context(), req)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Booked %s for %s %s at %s\n",
			res.ServiceName, res.FirstName, res.LastName, res.AppointedAt)))
		return nil
	},
}

func pickSlot(slots []api.Slot) (string, error) {
	options := make([]string, len(slots))
	for i, s := range slots {
		options[i] = s.StartTime
	}
	return tui.SelectString("Choose a slot", options)
}

var reservationUpdateCmd = &cobra.Command{
	Use:   "update <reservation-id>",
	Short: "Update a reservation",
	Args:  uuidArgs("reservation"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var req api.UpdateReservationRequest
		req.FirstName, _ = cmd.Flags().GetString("first-name")
		req.LastName, _ = cmd.Flags().GetString("last-name")
		req.Phone, _ = cmd.Flags().GetString("phone")
		req.AppointedAt, _ = cmd.Flags().GetString("at")

		res, err := client.UpdateReservation(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Updated reservation %s\n", res.ID)))
		return nil
	},
}

var reservationCancelCmd = &cobra.Command{
	Use:   "cancel <reservation-id>",
	Short: "Cancel a reservation",
	Args:  uuidArgs("reservation"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		if err := client.CancelReservation(cmd.Context(), args[0]); err != nil {
			return err
		}

		printOut(cmd, renderer.Success("Reservation cancelled\n"))
		return nil
	},
}

func init() {
	reservationListCmd.Flags().String("service", "", "filter by service name")
	reservationListCmd.Flags().String("customer-name", "", "filter by customer name")
	reservationListCmd.Flags().String("customer-email", "", "filter by customer email")
	reservationListCmd.Flags().String("customer-phone", "", "filter by customer phone")
	reservationListCmd.Flags().String("appointed-at", "", "filter by appointment time")
	pageFlags(reservationListCmd, 20)

	reservationCreateCmd.Flags().String("date", "", "day to book, YYYY-MM-DD")
	reservationCreateCmd.Flags().String("at", "", "exact slot start time")
	reservationCreateCmd.Flags().String("employee", "", "employee user id (defaults to yourself)")
	reservationCreateCmd.Flags().String("first-name", "", "customer first name")
	reservationCreateCmd.Flags().String("last-name", "", "customer last name")
	reservationCreateCmd.Flags().String("phone", "", "customer phone")

	reservationUpdateCmd.Flags().String("first-name", "", "new customer first name")
	reservationUpdateCmd.Flags().String("last-name", "", "new customer last name")
	reservationUpdateCmd.Flags().String("phone", "", "new customer phone")
	reservationUpdateCmd.Flags().String("at", "", "new appointment time")

	reservationCmd.AddCommand(reservationListCmd)
	reservationCmd.AddCommand(reservationShowCmd)
	reservationCmd.AddCommand(reservationCreateCmd)
	reservationCmd.AddCommand(reservationUpdateCmd)
	reservationCmd.AddCommand(reservationCancelCmd)

	rootCmd.AddCommand(reservationCmd)
}
