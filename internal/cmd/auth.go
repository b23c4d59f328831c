package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopipy/posctl/internal/session"
	"github.com/shopipy/posctl/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the backend",
	Long: `Sign in to the Shopipy backend with your email and password.

Starting a login always discards any existing session first, so a failed
attempt never leaves you half signed in as the previous user. On success
the token is persisted and your role decides which workspace you land in.

Examples:
  posctl login
  posctl login --email owner@example.com --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Entering login invalidates whatever session existed before.
		if err := newStore().Clear(); err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || password == "" {
			if !tui.ShouldPrompt() {
				return fmt.Errorf("--email and --password are required when not running interactively")
			}
			form := tui.LoginForm{Email: email, Password: password}
			if err := form.Run(); err != nil {
				return err
			}
			email, password = form.Email, form.Password
		}

		client := newClient()
		identity, landing, err := newGate(client).Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Signed in as %s (%s workspace)\n", identity.Email, landing)))
		printOut(cmd, renderer.IdentityCard(identity)+"\n")
		if !identity.Bound() {
			printOut(cmd, "\nNo merchant selected yet. Run 'posctl merchant select' to choose one.\n")
		}
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	Long: `Create a new account and sign in with it.

Accounts are created as employees by default; pass --owner (or choose
Owner in the interactive form) to register a merchant owner instead.
The password must be entered twice and the two entries are compared
locally before anything is sent to the backend.

Examples:
  posctl register
  posctl register --first-name Ona --last-name K. --email ona@example.com \
    --password secret --repeat-password secret --owner`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newStore().Clear(); err != nil {
			return err
		}

		form := session.RegisterForm{}
		form.FirstName, _ = cmd.Flags().GetString("first-name")
		form.LastName, _ = cmd.Flags().GetString("last-name")
		form.Email, _ = cmd.Flags().GetString("email")
		form.Password, _ = cmd.Flags().GetString("password")
		form.RepeatPassword, _ = cmd.Flags().GetString("repeat-password")
		form.Owner, _ = cmd.Flags().GetBool("owner")

		if form.Email == "" || form.Password == "" {
			if !tui.ShouldPrompt() {
				return fmt.Errorf("registration flags are required when not running interactively")
			}
			if err := tui.RunRegisterForm(&form); err != nil {
				return err
			}
		}

		client := newClient()
		identity, landing, err := newGate(client).Register(cmd.Context(), form)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Registered %s as %s (%s workspace)\n", identity.Email, identity.Role, landing)))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		if err := newGate(client).Logout(); err != nil {
			return err
		}
		printOut(cmd, "Signed out.\n")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	Long: `Show who is signed in, which workspace their role maps to, and which
merchant the session is bound to.

Examples:
  posctl status`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, identity, landing, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.IdentityCard(identity)+"\n")
		printOut(cmd, fmt.Sprintf("Workspace: %s\n", landing))
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")

	registerCmd.Flags().String("first-name", "", "first name")
	registerCmd.Flags().String("last-name", "", "last name")
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "account password")
	registerCmd.Flags().String("repeat-password", "", "password repeated for confirmation")
	registerCmd.Flags().Bool("owner", false, "register as a merchant owner instead of an employee")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
}
