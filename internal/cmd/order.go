package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopipy/posctl/internal/api"
	"github.com/shopipy/posctl/internal/tui"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage orders, line items, and payments",
	Long: `Manage orders, their line items, and payment transactions.

Subcommands:
  list     List orders, with totals fetched per order
  create   Open a new empty order
  total    Show an order's total price
  items    Manage an order's line items
  pay      Record a payment transaction against an order
  tx       Inspect, complete, or refund transactions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	Long: `List orders. Totals are not part of the list payload; with --totals
each order's total is fetched concurrently and joined into the table.

Examples:
  posctl order list
  posctl order list --status OPEN --totals`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var filter api.OrderFilter
		filter.Status, _ = cmd.Flags().GetString("status")
		filter.DateFrom, _ = cmd.Flags().GetString("from")
		filter.DateTo, _ = cmd.Flags().GetString("to")
		filter.Offset, filter.Limit = pageValues(cmd)

		var page *api.Page[api.Order]
		var totals map[string]float64

		withTotals, _ := cmd.Flags().GetBool("totals")
		err = tui.RunWithLoader(cmd.Context(), "Loading orders...", func(ctx context.Context) error {
			var err error
			page, err = client.ListOrders(ctx, filter)
			if err != nil {
				return err
			}
			if withTotals {
				totals, err = client.OrderTotals(ctx, page.Items)
			}
			return err
		})
		if err != nil {
			return err
		}

		printOut(cmd, renderer.OrderTable(page, totals))
		return nil
	},
}

var orderCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a new empty order",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		order, err := client.CreateOrder(cmd.Context())
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Opened order %s\n", order.ID)))
		return nil
	},
}

var orderTotalCmd = &cobra.Command{
	Use:   "total <order-id>",
	Short: "Show an order's total price",
	Args:  uuidArgs("order"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		total, err := client.OrderTotal(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printOut(cmd, fmt.Sprintf("%.2f\n", total))
		return nil
	},
}

var orderItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage an order's line items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var orderItemsListCmd = &cobra.Command{
	Use:   "list <order-id>",
	Short: "List an order's line items",
	Args:  uuidArgs("order"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		items, err := client.ListOrderItems(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printOut(cmd, renderer.OrderItemTable(items))
		return nil
	},
}

var orderItemsAddCmd = &cobra.Command{
	Use:   "add <order-id>",
	Short: "Add a product or variation line to an order",
	Long: `Add a line to an order. Exactly one of --product or --variation must
be given; a variation line carries the variation id only.

Examples:
  posctl order items add <order-id> --product <product-id> --quantity 2
  posctl order items add <order-id> --variation <variation-id>`,
	Args: uuidArgs("order"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var req api.AddOrderItemRequest
		req.ProductID, _ = cmd.Flags().GetString("product")
		req.ProductVariationID, _ = cmd.Flags().GetString("variation")
		req.Quantity, _ = cmd.Flags().GetInt("quantity")

		if (req.ProductID == "") == (req.ProductVariationID == "") {
			return fmt.Errorf("pass exactly one of --product or --variation")
		}
		if req.ProductID != "" {
			if err := validateID("product", req.ProductID); err != nil {
				return err
			}
		}
		if req.ProductVariationID != "" {
			if err := validateID("variation", req.ProductVariationID); err != nil {
				return err
			}
		}
		if req.Quantity <= 0 {
			req.Quantity = 1
		}

		item, err := client.AddOrderItem(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Added item %s (x%d)\n", item.ID, item.Quantity)))
		return nil
	},
}

var orderItemsUpdateCmd = &cobra.Command{
	Use:   "update <order-id> <item-id>",
	Short: "Change a line item's quantity",
	Args:  uuidArgs("order", "item"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		quantity, _ := cmd.Flags().GetInt("quantity")
		if quantity <= 0 {
			return fmt.Errorf("--quantity must be positive")
		}

		item, err := client.UpdateOrderItem(cmd.Context(), args[0], args[1], quantity)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Item %s is now x%d\n", item.ID, item.Quantity)))
		return nil
	},
}

var orderItemsRemoveCmd = &cobra.Command{
	Use:   "remove <order-id> <item-id>",
	Short: "Remove a line item from an order",
	Args:  uuidArgs("order", "item"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		if err := client.DeleteOrderItem(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}

		printOut(cmd, renderer.Success("Item removed\n"))
		return nil
	},
}

var orderPayCmd = &cobra.Command{
	Use:   "pay <order-id>",
	Short: "Record a payment transaction against an order",
	Long: `Record a payment transaction against an order.

Examples:
  posctl order pay <order-id> --method CASH --amount 12.50
  posctl order pay <order-id> --method CARD --amount 30`,
	Args: uuidArgs("order"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		var req api.CreateTransactionRequest
		req.PaymentMethodType, _ = cmd.Flags().GetString("method")
		req.Amount, _ = cmd.Flags().GetFloat64("amount")

		if req.PaymentMethodType == "" {
			return fmt.Errorf("--method is required")
		}
		if req.Amount <= 0 {
			return fmt.Errorf("--amount must be positive")
		}

		tx, err := client.CreateTransaction(cmd.Context(), args[0], req)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Transaction %s: %s %.2f (%s)\n",
			tx.ID, tx.PaymentMethodType, tx.Amount, tx.Status)))
		return nil
	},
}

var orderTxCmd = &cobra.Command{
	Use:   "tx",
	Short: "Inspect, complete, or refund transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var orderTxListCmd = &cobra.Command{
	Use:   "list <order-id>",
	Short: "List an order's transactions",
	Args:  uuidArgs("order"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		offset, limit := pageValues(cmd)
		page, err := client.ListOrderTransactions(cmd.Context(), args[0], offset, limit)
		if err != nil {
			return err
		}

		printOut(cmd, renderer.TransactionTable(page.Items))
		return nil
	},
}

var orderTxShowCmd = &cobra.Command{
	Use:   "show <order-id> <transaction-id>",
	Short: "Show one transaction",
	Args:  uuidArgs("order", "transaction"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		tx, err := client.GetTransaction(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		printOut(cmd, fmt.Sprintf("%s  %s  %.2f  %s\n", tx.ID, tx.PaymentMethodType, tx.Amount, tx.Status))
		return nil
	},
}

var orderTxCompleteCmd = &cobra.Command{
	Use:   "complete <order-id> <transaction-id>",
	Short: "Mark a transaction as completed",
	Args:  uuidArgs("order", "transaction"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		tx, err := client.CompleteTransaction(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Transaction %s is %s\n", tx.ID, tx.Status)))
		return nil
	},
}

var orderTxRefundCmd = &cobra.Command{
	Use:   "refund <order-id> <transaction-id>",
	Short: "Refund a transaction",
	Args:  uuidArgs("order", "transaction"),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, _, err := resumeSession(cmd)
		if err != nil {
			return err
		}

		if tui.ShouldPrompt() {
			ok, err := tui.Confirm(fmt.Sprintf("Refund transaction %s?", args[1]), false)
			if err != nil {
				return err
			}
			if !ok {
				printOut(cmd, "Aborted.\n")
				return nil
			}
		}

		tx, err := client.RefundTransaction(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}

		printOut(cmd, renderer.Success(fmt.Sprintf("Transaction %s is %s\n", tx.ID, tx.Status)))
		return nil
	},
}

func init() {
	orderListCmd.Flags().String("status", "", "filter by status")
	orderListCmd.Flags().String("from", "", "filter by creation date, inclusive")
	orderListCmd.Flags().String("to", "", "filter by creation date, inclusive")
	orderListCmd.Flags().Bool("totals", false, "fetch each order's total concurrently")
	pageFlags(orderListCmd, 20)

	orderItemsAddCmd.Flags().String("product", "", "product id")
	orderItemsAddCmd.Flags().String("variation", "", "product variation id")
	orderItemsAddCmd.Flags().Int("quantity", 1, "line quantity")
	orderItemsUpdateCmd.Flags().Int("quantity", 0, "new line quantity")

	orderPayCmd.Flags().String("method", "", "payment method, e.g. CASH or CARD")
	orderPayCmd.Flags().Float64("amount", 0, "payment amount")

	pageFlags(orderTxListCmd, 20)

	orderItemsCmd.AddCommand(orderItemsListCmd)
	orderItemsCmd.AddCommand(orderItemsAddCmd)
	orderItemsCmd.AddCommand(orderItemsUpdateCmd)
	orderItemsCmd.AddCommand(orderItemsRemoveCmd)

	orderTxCmd.AddCommand(orderTxListCmd)
	orderTxCmd.AddCommand(orderTxShowCmd)
	orderTxCmd.AddCommand(orderTxCompleteCmd)
	orderTxCmd.AddCommand(orderTxRefundCmd)

	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderCreateCmd)
	orderCmd.AddCommand(orderTotalCmd)
	orderCmd.AddCommand(orderItemsCmd)
	orderCmd.AddCommand(orderPayCmd)
	orderCmd.AddCommand(orderTxCmd)

	rootCmd.AddCommand(orderCmd)
}
