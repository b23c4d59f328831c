package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopipy/posctl/internal/api"
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Manage bookable services",
	Long: `Manage the bookable services of the bound merchant.

Subcommands:
  list    List services with optional filters
  show    Show one service
  create  Create a service
  update  Update a service
  delete  Delete a service
  slots   List free booking slots for a service on a day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var serviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List services",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var filter api.ServiceFilter
		filter.Name, _ = cmd.Flags().GetString("name")
		filter.Price, _ = cmd.Flags().GetString("price")
		filter.Duration, _ = cmd.Flags().GetString("duration")
		filter.Offset, filter.Limit = pageValues(cmd)

		page, err := client.ListServices(cmd.Context(), filter)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.ServiceTable(page))
		return nil
	},
}

var serviceShowCmd = &cobra.Command{
	Use:   "show <service-id>",
	Short: "Show one service",
	Args:  uuidArgs("service"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		service, err := client.GetService(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printOut(cmd, fmt.Sprintf("%s  %.2f  (%d min)\n", service.Name, service.Price, service.Duration))
		return nil
	},
}

var serviceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a service",
	Long: `Create a bookable service.

Examples:
  posctl service create --name "Haircut" --price 25 --duration 30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var req api.CreateServiceRequest
		req.Name, _ = cmd.Flags().GetString("name")
		req.Price, _ = cmd.Flags().GetFloat64("price")
		req.Duration, _ = cmd.Flags().GetInt("duration")

		if req.Name == "" {
			return fmt.Errorf("--name is required")
		}
		if req.Duration <= 0 {
			return fmt.Errorf("--duration must be a positive number of minutes")
		}

		service, err := client.CreateService(cmd.Context(), req)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Created service %s (%s)\n", service.Name, service.ID)))
		return nil
	},
}

var serviceUpdateCmd = &cobra.Command{
	Use:   "update <service-id>",
	Short: "Update a service",
	Args:  uuidArgs("service"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var req api.CreateServiceRequest
		req.Name, _ = cmd.Flags().GetString("name")
		req.Price, _ = cmd.Flags().GetFloat64("price")
		req.Duration, _ = cmd.Flags().GetInt("duration")

		service, err := client.UpdateService(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Updated service %s\n", service.Name)))
		return nil
	},
}

var serviceDeleteCmd = &cobra.Command{
	Use:   "delete <service-id>",
	Short: "Delete a service",
	Args:  uuidArgs("service"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		if err := client.DeleteService(cmd.Context(), args[0]); err != nil {
			return err
		}

		printOut(cmd, renderer.Success("Service deleted\n"))
		return nil
	},
}

var serviceSlotsCmd = &cobra.Command{
	Use:   "slots <service-id>",
	Short: "List free booking slots for a service on a day",
	Long: `List the free booking slots of a service for a given employee and day.
Past days are rejected before the backend is asked.

Examples:
  posctl service slots <service-id> --date 2026-09-01 --employee <user-id>`,
	Args: uuidArgs("service"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, identity, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		date, _ := cmd.Flags().GetString("date")
		if err := validateSlotDate(date); err != nil {
			return err
		}

		employee, _ := cmd.Flags().GetString("employee")
		if employee == "" {
			employee = identity.ID
		} else if err := validateID("user", employee); err != nil {
			return err
		}

		slots, err := client.AvailableSlots(cmd.Context(), args[0], date, employee)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.SlotList(slots))
		return nil
	},
}

func serviceFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "service name")
	cmd.Flags().Float64("price", 0, "price")
	cmd.Flags().Int("duration", 0, "duration in minutes")
}

func init() {
	serviceListCmd.Flags().String("name", "", "filter by name")
	serviceListCmd.Flags().String("price", "", "filter by price")
	serviceListCmd.Flags().String("duration", "", "filter by duration")
	pageFlags(serviceListCmd, 10)

	serviceFormFlags(serviceCreateCmd)
	serviceFormFlags(serviceUpdateCmd)

	serviceSlotsCmd.Flags().String("date", "", "day to check, YYYY-MM-DD")
	serviceSlotsCmd.Flags().String("employee", "", "employee user id (defaults to yourself)")

	serviceCmd.AddCommand(serviceListCmd)
	serviceCmd.AddCommand(serviceShowCmd)
	serviceCmd.AddCommand(serviceCreateCmd)
	serviceCmd.AddCommand(serviceUpdateCmd)
	serviceCmd.AddCommand(serviceDeleteCmd)
	serviceCmd.AddCommand(serviceSlotsCmd)

	rootCmd.AddCommand(serviceCmd)
}
