package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopipy/posctl/internal/api"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage product categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List product categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		categories, err := client.ListCategories(cmd.Context())
		if err != nil {
			return err
		}

		printOut(cmd, renderer.CategoryTable(categories))
		return nil
	},
}

var categoryCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a product category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, identity, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		category, err := client.CreateCategory(cmd.Context(), api.CreateCategoryRequest{
			Name:       args[0],
			MerchantID: identity.MerchantID,
		})
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Created category %s (%s)\n", category.Name, category.ID)))
		return nil
	},
}

var categoryShowCmd = &cobra.Command{
	Use:   "show <category-id>",
	Short: "Show one product category",
	Args:  uuidArgs("category"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		category, err := client.GetCategory(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printOut(cmd, fmt.Sprintf("%s  %s\n", category.ID, category.Name))
		return nil
	},
}

var categoryUpdateCmd = &cobra.Command{
	Use:   "update <category-id> <name>",
	Short: "Rename a product category",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("expected <category-id> and <name>")
		}
		return validateID("category", args[0])
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		category, err := client.UpdateCategory(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Renamed category to %s\n", category.Name)))
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <category-id>",
	Short: "Delete a product category",
	Args:  uuidArgs("category"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		if err := client.DeleteCategory(cmd.Context(), args[0]); err != nil {
			return err
		}

		printOut(cmd, renderer.Success("Category deleted\n"))
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryShowCmd)
	categoryCmd.AddCommand(categoryCreateCmd)
	categoryCmd.AddCommand(categoryUpdateCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)

	rootCmd.AddCommand(categoryCmd)
}
