package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopipy/posctl/internal/api"
	"github.com/shopipy/posctl/internal/binding"
	"github.com/shopipy/posctl/internal/session"
	"github.com/shopipy/posctl/internal/tui"
)

var merchantCmd = &cobra.Command{
	Use:   "merchant",
	Short: "Manage merchants and the session's merchant binding",
	Long: `Manage merchants and the merchant the current session operates on.

Most catalog and checkout operations are scoped to the bound merchant.
Use 'merchant select' after signing in to pick one (it also re-points an
existing binding), and 'merchant unassign' to drop it.

Subcommands:
  list      List all merchants
  show      Show one merchant
  create    Create a merchant
  select    Pick (or create) a merchant and bind it to your account
  assign    Bind a specific merchant id to your account
  unassign  Remove the merchant binding
  update    Update a merchant
  delete    Delete a merchant`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var merchantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all merchants",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		merchants, err := client.ListMerchants(cmd.Context())
		if err != nil {
			return err
		}

		printOut(cmd, renderer.MerchantTable(merchants))
		return nil
	},
}

var merchantShowCmd = &cobra.Command{
	Use:   "show <merchant-id>",
	Short: "Show one merchant",
	Args:  uuidArgs("merchant"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		merchant, err := client.GetMerchant(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printOut(cmd, renderer.MerchantCard(merchant)+"\n")
		return nil
	},
}

var merchantCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a merchant",
	Long: `Create a merchant without binding it to your account.

With no flags an interactive form collects the business details.

Examples:
  posctl merchant create
  posctl merchant create --name "Corner Cafe" --currency EUR --email cafe@example.com \
    --address "Pilies g. 1" --city Vilnius --country LT --postcode 01123`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		req, err := merchantRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		merchant, err := client.CreateMerchant(cmd.Context(), *req)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Created merchant %s (%s)\n", merchant.Name, merchant.ID)))
		return nil
	},
}

var merchantSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Pick a merchant and bind it to your account",
	Long: `Pick a merchant from the list and bind it to your account.

Merchant owners additionally get a "create a new merchant" option; the
new merchant is created and bound in one step. If the creation succeeds
but the binding fails, the merchant id is reported so it can be assigned
or deleted by hand.

Examples:
  posctl merchant select`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, identity, landing, err := resumeSession(cmd)
		if err != nil {
			return err
		}
		if !tui.ShouldPrompt() {
			return fmt.Errorf("merchant select is interactive; use 'posctl merchant assign <merchant-id>' instead")
		}

		wf := binding.New(client, identity)
		if wf.State() == binding.StateBound {
			if err := wf.Switch(cmd.Context()); err != nil {
				return err
			}
		} else if err := wf.Begin(cmd.Context()); err != nil {
			return err
		}

		allowCreate := landing == session.LandingOwner || landing == session.LandingAdmin
		chosen, err := tui.SelectMerchant(wf.Merchants(), allowCreate)
		if err != nil {
			return err
		}

		if chosen == "" {
			var req api.CreateMerchantRequest
			if err := tui.RunMerchantForm(&req); err != nil {
				return err
			}
			if err := wf.CreateAndBind(cmd.Context(), req); err != nil {
				return err
			}
		} else if err := wf.Select(cmd.Context(), chosen); err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Now operating as %s\n", wf.Merchant().Name)))
		return nil
	},
}

var merchantAssignCmd = &cobra.Command{
	Use:   "assign <merchant-id>",
	Short: "Bind a specific merchant to your account",
	Long: `Bind the given merchant id to your account without going through the
interactive picker. Also the recovery path when a created merchant was
left unbound.

Examples:
  posctl merchant assign 0d4f3c5e-8a3b-4f43-9a95-1f8d14c2ab01`,
	Args: uuidArgs("merchant"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, identity, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		wf := binding.New(client, identity)
		if wf.State() == binding.StateBound {
			if err := wf.Switch(cmd.Context()); err != nil {
				return err
			}
		} else if err := wf.Begin(cmd.Context()); err != nil {
			return err
		}

		if err := wf.Select(cmd.Context(), args[0]); err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Now operating as %s\n", wf.Merchant().Name)))
		return nil
	},
}

var merchantUnassignCmd = &cobra.Command{
	Use:   "unassign",
	Short: "Remove the merchant binding",
	Long: `Remove the merchant binding from your account. Running this while no
merchant is bound is a no-op.

Examples:
  posctl merchant unassign`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, identity, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		wf := binding.New(client, identity)
		if err := wf.Unbind(cmd.Context()); err != nil {
			return err
		}

		printOut(cmd, "Merchant binding removed.\n")
		return nil
	},
}

var merchantUpdateCmd = &cobra.Command{
	Use:   "update <merchant-id>",
	Short: "Update a merchant",
	Args:  uuidArgs("merchant"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		req, err := merchantRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		merchant, err := client.UpdateMerchant(cmd.Context(), args[0], *req)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Updated merchant %s\n", merchant.Name)))
		return nil
	},
}

var merchantDeleteCmd = &cobra.Command{
	Use:   "delete <merchant-id>",
	Short: "Delete a merchant",
	Args:  uuidArgs("merchant"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		if tui.ShouldPrompt() {
			ok, err := tui.Confirm(fmt.Sprintf("Delete merchant %s?", args[0]), false)
			if err != nil {
				return err
			}
			if !ok {
				printOut(cmd, "Aborted.\n")
				return nil
			}
		}

		if err := client.DeleteMerchant(cmd.Context(), args[0]); err != nil {
			return err
		}

		printOut(cmd, renderer.Success("Merchant deleted\n"))
		return nil
	},
}

func merchantRequestFromFlags(cmd *cobra.Command) (*api.CreateMerchantRequest, error) {
	var req api.CreateMerchantRequest
	req.Name, _ = cmd.Flags().GetString("name")
	req.Phone, _ = cmd.Flags().GetString("phone")
	req.Email, _ = cmd.Flags().GetString("email")
	req.Currency, _ = cmd.Flags().GetString("currency")
	req.Address, _ = cmd.Flags().GetString("address")
	req.City, _ = cmd.Flags().GetString("city")
	req.Country, _ = cmd.Flags().GetString("country")
	req.Postcode, _ = cmd.Flags().GetString("postcode")

	if req.Name == "" {
		if !tui.ShouldPrompt() {
			return nil, fmt.Errorf("--name is required when not running interactively")
		}
		if err := tui.RunMerchantForm(&req); err != nil {
			return nil, err
		}
	}
	return &req, nil
}

func merchantFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "business name")
	cmd.Flags().String("phone", "", "contact phone")
	cmd.Flags().String("email", "", "contact email")
	cmd.Flags().String("currency", "", "settlement currency, e.g. EUR")
	cmd.Flags().String("address", "", "street address")
	cmd.Flags().String("city", "", "city")
	cmd.Flags().String("country", "", "country")
	cmd.Flags().String("postcode", "", "postal code")
}

func init() {
	merchantFormFlags(merchantCreateCmd)
	merchantFormFlags(merchantUpdateCmd)

	merchantCmd.AddCommand(merchantListCmd)
	merchantCmd.AddCommand(merchantShowCmd)
	merchantCmd.AddCommand(merchantCreateCmd)
	merchantCmd.AddCommand(merchantSelectCmd)
	merchantCmd.AddCommand(merchantAssignCmd)
	merchantCmd.AddCommand(merchantUnassignCmd)
	merchantCmd.AddCommand(merchantUpdateCmd)
	merchantCmd.AddCommand(merchantDeleteCmd)

	rootCmd.AddCommand(merchantCmd)
}
