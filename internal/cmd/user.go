package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopipy/posctl/internal/api"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
	Long: `Manage user accounts.

Subcommands:
  me      Show the signed-in user
  list    List users, optionally filtered by name or email
  show    Show one user
  update  Update a user
  delete  Delete a user`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var userMeCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, identity, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}
		printOut(cmd, renderer.IdentityCard(identity)+"\n")
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Long: `List users, optionally filtered by name or email.

Examples:
  posctl user list
  posctl user list --email ona@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var filter api.UserFilter
		filter.FirstName, _ = cmd.Flags().GetString("first-name")
		filter.LastName, _ = cmd.Flags().GetString("last-name")
		filter.Email, _ = cmd.Flags().GetString("email")

		users, err := client.ListUsers(cmd.Context(), filter)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.UserTable(users))
		return nil
	},
}

var userShowCmd = &cobra.Command{
	Use:   "show <user-id>",
	Short: "Show one user",
	Args:  uuidArgs("user"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		user, err := client.GetUser(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printOut(cmd, renderer.IdentityCard(user)+"\n")
		return nil
	},
}

var userUpdateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Update a user",
	Args:  uuidArgs("user"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var req api.UpdateUserRequest
		req.FirstName, _ = cmd.Flags().GetString("first-name")
		req.LastName, _ = cmd.Flags().GetString("last-name")
		req.Email, _ = cmd.Flags().GetString("email")
		if role, _ := cmd.Flags().GetString("role"); role != "" {
			r := api.Role(role)
			if !r.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}
			req.Role = r
		}

		user, err := client.UpdateUser(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Updated %s\n", user.Email)))
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a user",
	Args:  uuidArgs("user"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		if err := client.DeleteUser(cmd.Context(), args[0]); err != nil {
			return err
		}

		printOut(cmd, renderer.Success("User deleted\n"))
		return nil
	},
}

func init() {
	userListCmd.Flags().String("first-name", "", "filter by first name")
	userListCmd.Flags().String("last-name", "", "filter by last name")
	userListCmd.Flags().String("email", "", "filter by email")

	userUpdateCmd.Flags().String("first-name", "", "new first name")
	userUpdateCmd.Flags().String("last-name", "", "new last name")
	userUpdateCmd.Flags().String("email", "", "new email")
	userUpdateCmd.Flags().String("role", "", "new role: SUPER_ADMIN, MERCHANT_OWNER, EMPLOYEE")

	userCmd.AddCommand(userMeCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userShowCmd)
	userCmd.AddCommand(userUpdateCmd)
	userCmd.AddCommand(userDeleteCmd)

	rootCmd.AddCommand(userCmd)
}
