package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopipy/posctl/internal/api"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalog",
	Long: `Manage the product catalog of the bound merchant.

Subcommands:
  list       List products with optional filters
  show       Show one product
  create     Create a product
  update     Update a product
  delete     Delete a product
  adjust     Adjust a product's stock by a delta
  variation  Manage a product's variations`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	Long: `List products, filtered by name, price, or category.

Examples:
  posctl product list
  posctl product list --name latte --limit 50
  posctl product list --category 0d4f3c5e-8a3b-4f43-9a95-1f8d14c2ab01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var filter api.ProductFilter
		filter.Name, _ = cmd.Flags().GetString("name")
		filter.Price, _ = cmd.Flags().GetString("price")
		filter.CategoryID, _ = cmd.Flags().GetString("category")
		filter.Offset, filter.Limit = pageValues(cmd)

		page, err := client.ListProducts(cmd.Context(), filter)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.ProductTable(page))
		return nil
	},
}

var productShowCmd = &cobra.Command{
	Use:   "show <product-id>",
	Short: "Show one product and its variations",
	Args:  uuidArgs("product"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		product, err := client.GetProduct(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printOut(cmd, fmt.Sprintf("%s  %.2f  (stock %d)\n", product.Name, product.Price, product.Quantity))

		variations, err := client.ListVariations(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(variations) > 0 {
			printOut(cmd, "\nVariations:\n"+renderer.VariationTable(variations))
		}
		return nil
	},
}

var productCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	Long: `Create a product in the bound merchant's catalog.

Examples:
  posctl product create --name "Latte" --price 3.50 --quantity 100
  posctl product create --name "Latte" --price 3.50 --category <category-id>`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var req api.CreateProductRequest
		req.Name, _ = cmd.Flags().GetString("name")
		req.Price, _ = cmd.Flags().GetFloat64("price")
		req.Quantity, _ = cmd.Flags().GetInt("quantity")
		req.CategoryID, _ = cmd.Flags().GetString("category")

		if req.Name == "" {
			return fmt.Errorf("--name is required")
		}
		if req.CategoryID != "" {
			if err := validateID("category", req.CategoryID); err != nil {
				return err
			}
		}

		product, err := client.CreateProduct(cmd.Context(), req)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Created product %s (%s)\n", product.Name, product.ID)))
		return nil
	},
}

var productUpdateCmd = &cobra.Command{
	Use:   "update <product-id>",
	Short: "Update a product",
	Args:  uuidArgs("product"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var req api.CreateProductRequest
		req.Name, _ = cmd.Flags().GetString("name")
		req.Price, _ = cmd.Flags().GetFloat64("price")
		req.Quantity, _ = cmd.Flags().GetInt("quantity")
		req.CategoryID, _ = cmd.Flags().GetString("category")

		product, err := client.UpdateProduct(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Updated product %s\n", product.Name)))
		return nil
	},
}

var productDeleteCmd = &cobra.Command{
	Use:   "delete <product-id>",
	Short: "Delete a product",
	Args:  uuidArgs("product"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		if err := client.DeleteProduct(cmd.Context(), args[0]); err != nil {
			return err
		}

		printOut(cmd, renderer.Success("Product deleted\n"))
		return nil
	},
}

var productAdjustCmd = &cobra.Command{
	Use:   "adjust <product-id>",
	Short: "Adjust a product's stock by a delta",
	Long: `Adjust a product's stock by a positive or negative delta.

Examples:
  posctl product adjust <product-id> --by 10
  posctl product adjust <product-id> --by -3`,
	Args: uuidArgs("product"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		delta, _ := cmd.Flags().GetInt("by")
		if delta == 0 {
			return fmt.Errorf("--by must be a non-zero delta")
		}

		product, err := client.AdjustProductQuantity(cmd.Context(), args[0], delta)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("%s stock is now %d\n", product.Name, product.Quantity)))
		return nil
	},
}

var variationCmd = &cobra.Command{
	Use:   "variation",
	Short: "Manage a product's variations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var variationListCmd = &cobra.Command{
	Use:   "list <product-id>",
	Short: "List a product's variations",
	Args:  uuidArgs("product"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		variations, err := client.ListVariations(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printOut(cmd, renderer.VariationTable(variations))
		return nil
	},
}

var variationShowCmd = &cobra.Command{
	Use:   "show <product-id> <variation-id>",
	Short: "Show one variation",
	Args:  uuidArgs("product", "variation"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		variation, err := client.GetVariation(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		printOut(cmd, fmt.Sprintf("%s  %.2f  (stock %d)\n", variation.Name, variation.Price, variation.Quantity))
		return nil
	},
}

var variationCreateCmd = &cobra.Command{
	Use:   "create <product-id>",
	Short: "Add a variation to a product",
	Args:  uuidArgs("product"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var req api.CreateVariationRequest
		req.Name, _ = cmd.Flags().GetString("name")
		req.Price, _ = cmd.Flags().GetFloat64("price")
		req.Quantity, _ = cmd.Flags().GetInt("quantity")

		if req.Name == "" {
			return fmt.Errorf("--name is required")
		}

		variation, err := client.CreateVariation(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Created variation %s (%s)\n", variation.Name, variation.ID)))
		return nil
	},
}

var variationUpdateCmd = &cobra.Command{
	Use:   "update <product-id> <variation-id>",
	Short: "Update a variation",
	Args:  uuidArgs("product", "variation"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var req api.CreateVariationRequest
		req.Name, _ = cmd.Flags().GetString("name")
		req.Price, _ = cmd.Flags().GetFloat64("price")
		req.Quantity, _ = cmd.Flags().GetInt("quantity")

		variation, err := client.UpdateVariation(cmd.Context(), args[0], args[1], req)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Updated variation %s\n", variation.Name)))
		return nil
	},
}

var variationDeleteCmd = &cobra.Command{
	Use:   "delete <product-id> <variation-id>",
	Short: "Delete a variation",
	Args:  uuidArgs("product", "variation"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		if err := client.DeleteVariation(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		printOut(cmd, renderer.Success("Variation deleted\n"))
		return nil
	},
}

var variationAdjustCmd = &cobra.Command{
	Use:   "adjust <product-id> <variation-id>",
	Short: "Adjust a variation's stock by a delta",
	Args:  uuidArgs("product", "variation"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		delta, _ := cmd.Flags().GetInt("by")
		if delta == 0 {
			return fmt.Errorf("--by must be a non-zero delta")
		}

		variation, err := client.AdjustVariationQuantity(cmd.Context(), args[0], args[1], delta)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("%s stock is now %d\n", variation.Name, variation.Quantity)))
		return nil
	},
}

func productFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "product name")
	cmd.Flags().Float64("price", 0, "unit price")
	cmd.Flags().Int("quantity", 0, "initial stock")
	cmd.Flags().String("category", "", "category id")
}

func variationFormFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "variation name")
	cmd.Flags().Float64("price", 0, "unit price")
	cmd.Flags().Int("quantity", 0, "initial stock")
}

func init() {
	productListCmd.Flags().String("name", "", "filter by name")
	productListCmd.Flags().String("price", "", "filter by price")
	productListCmd.Flags().String("category", "", "filter by category id")
	pageFlags(productListCmd, 20)

	productFormFlags(productCreateCmd)
	productFormFlags(productUpdateCmd)
	productAdjustCmd.Flags().Int("by", 0, "stock delta, may be negative")

	variationFormFlags(variationCreateCmd)
	variationFormFlags(variationUpdateCmd)
	variationAdjustCmd.Flags().Int("by", 0, "stock delta, may be negative")

	variationCmd.AddCommand(variationListCmd)
	variationCmd.AddCommand(variationShowCmd)
	variationCmd.AddCommand(variationCreateCmd)
	variationCmd.AddCommand(variationUpdateCmd)
	variationCmd.AddCommand(variationDeleteCmd)
	variationCmd.AddCommand(variationAdjustCmd)

	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productShowCmd)
	productCmd.AddCommand(productCreateCmd)
	productCmd.AddCommand(productUpdateCmd)
	productCmd.AddCommand(productDeleteCmd)
	productCmd.AddCommand(productAdjustCmd)
	productCmd.AddCommand(variationCmd)

	rootCmd.AddCommand(productCmd)
}
