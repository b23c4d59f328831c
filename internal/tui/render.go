package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopipy/posctl/internal/api"
	poserrors "github.com/shopipy/posctl/internal/errors"
)

// Renderer turns API values into styled terminal output
type Renderer struct {
	styles Styles
}

// NewRenderer creates a renderer with the default styles
func NewRenderer() *Renderer {
	return &Renderer{styles: DefaultStyles()}
}

// Table renders headers and rows as aligned columns
func (r *Renderer) Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(r.styles.Header.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			b.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func (r *Renderer) field(label, value string) string {
	return r.styles.Label.Render(label+": ") + r.styles.Value.Render(value) + "\n"
}

// IdentityCard renders the signed-in user
func (r *Renderer) IdentityCard(id *api.Identity) string {
	var b strings.Builder
	b.WriteString(r.field("Name", id.FullName()))
	b.WriteString(r.field("Email", id.Email))
	b.WriteString(r.field("Role", string(id.Role)))
	if id.Bound() {
		b.WriteString(r.field("Merchant", id.MerchantID))
	} else {
		b.WriteString(r.field("Merchant", "none"))
	}
	return r.styles.Border.Render(strings.TrimRight(b.String(), "\n"))
}

// MerchantCard renders a single merchant
func (r *Renderer) MerchantCard(m *api.Merchant) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(m.Name))
	b.WriteString("\n")
	b.WriteString(r.field("ID", m.ID))
	b.WriteString(r.field("Currency", m.Currency))
	if m.Phone != "" {
		b.WriteString(r.field("Phone", m.Phone))
	}
	if m.Email != "" {
		b.WriteString(r.field("Email", m.Email))
	}
	address := strings.TrimSpace(fmt.Sprintf("%s, %s %s, %s", m.Address, m.Postcode, m.City, m.Country))
	b.WriteString(r.field("Address", address))
	return r.styles.Border.Render(strings.TrimRight(b.String(), "\n"))
}

// MerchantTable renders the merchant list
func (r *Renderer) MerchantTable(merchants []api.Merchant) string {
	rows := make([][]string, len(merchants))
	for i, m := range merchants {
		rows[i] = []string{m.ID, m.Name, m.City, m.Currency}
	}
	return r.Table([]string{"ID", "NAME", "CITY", "CURRENCY"}, rows)
}

// UserTable renders the user list
func (r *Renderer) UserTable(users []api.Identity) string {
	rows := make([][]string, len(users))
	for i, u := range users {
		rows[i] = []string{u.ID, u.FullName(), u.Email, string(u.Role)}
	}
	return r.Table([]string{"ID", "NAME", "EMAIL", "ROLE"}, rows)
}

// ProductTable renders a product page
func (r *Renderer) ProductTable(page *api.Page[api.Product]) string {
	rows := make([][]string, len(page.Items))
	for i, p := range page.Items {
		rows[i] = []string{p.ID, p.Name, formatPrice(p.Price), fmt.Sprintf("%d", p.Quantity)}
	}
	return r.Table([]string{"ID", "NAME", "PRICE", "QTY"}, rows) + r.pageLine(page.Total, page.Offset, page.Limit)
}

// VariationTable renders a product's variations
func (r *Renderer) VariationTable(variations []api.ProductVariation) string {
	rows := make([][]string, len(variations))
	for i, v := range variations {
		rows[i] = []string{v.ID, v.Name, formatPrice(v.Price), fmt.Sprintf("%d", v.Quantity)}
	}
	return r.Table([]string{"ID", "NAME", "PRICE", "QTY"}, rows)
}

// CategoryTable renders the category list
func (r *Renderer) CategoryTable(categories []api.Category) string {
	rows := make([][]string, len(categories))
	for i, c := range categories {
		rows[i] = []string{c.ID, c.Name}
	}
	return r.Table([]string{"ID", "NAME"}, rows)
}

// ServiceTable renders a service page
func (r *Renderer) ServiceTable(page *api.Page[api.Service]) string {
	rows := make([][]string, len(page.Items))
	for i, s := range page.Items {
		rows[i] = []string{s.ID, s.Name, formatPrice(s.Price), fmt.Sprintf("%d min", s.Duration)}
	}
	return r.Table([]string{"ID", "NAME", "PRICE", "DURATION"}, rows) + r.pageLine(page.Total, page.Offset, page.Limit)
}

// SlotList renders the free time slots of a day
func (r *Renderer) SlotList(slots []api.Slot) string {
	if len(slots) == 0 {
		return r.styles.Muted.Render("No free slots.") + "\n"
	}
	var b strings.Builder
	for _, s := range slots {
		b.WriteString(fmt.Sprintf("%s - %s\n", s.StartTime, s.EndTime))
	}
	return b.String()
}

// ReservationTable renders a reservation page
func (r *Renderer) ReservationTable(page *api.Page[api.Reservation]) string {
	rows := make([][]string, len(page.Items))
	for i, res := range page.Items {
		customer := strings.TrimSpace(res.FirstName + " " + res.LastName)
		rows[i] = []string{res.ID, res.ServiceName, customer, res.AppointedAt}
	}
	return r.Table([]string{"ID", "SERVICE", "CUSTOMER", "APPOINTED"}, rows) + r.pageLine(page.Total, page.Offset, page.Limit)
}

// OrderTable renders an order page, joining in the totals fetched
// separately per order. Orders without a fetched total show a dash.
func (r *Renderer) OrderTable(page *api.Page[api.Order], totals map[string]float64) string {
	rows := make([][]string, len(page.Items))
	for i, o := range page.Items {
		total := "-"
		if v, ok := totals[o.ID]; ok {
			total = formatPrice(v)
		}
		rows[i] = []string{o.ID, o.Status, o.CreatedAt, total}
	}
	return r.Table([]string{"ID", "STATUS", "CREATED", "TOTAL"}, rows) + r.pageLine(page.Total, page.Offset, page.Limit)
}

// OrderItemTable renders the line items of an order
func (r *Renderer) OrderItemTable(items []api.OrderItem) string {
	rows := make([][]string, len(items))
	for i, it := range items {
		ref := it.ProductID
		if it.ProductVariationID != "" {
			ref = it.ProductVariationID
		}
		rows[i] = []string{it.ID, ref, fmt.Sprintf("%d", it.Quantity)}
	}
	return r.Table([]string{"ID", "PRODUCT", "QTY"}, rows)
}

// TransactionTable renders an order's transactions
func (r *Renderer) TransactionTable(transactions []api.Transaction) string {
	rows := make([][]string, len(transactions))
	for i, tx := range transactions {
		rows[i] = []string{tx.ID, tx.PaymentMethodType, formatPrice(tx.Amount), tx.Status}
	}
	return r.Table([]string{"ID", "PAYMENT", "AMOUNT", "STATUS"}, rows)
}

// Error renders an error with its suggestions when present
func (r *Renderer) Error(err error) string {
	var b strings.Builder
	b.WriteString(r.styles.Error.Render("Error: ") + err.Error())
	b.WriteString("\n")

	var posErr *poserrors.PosError
	if errors.As(err, &posErr) {
		for _, s := range posErr.Suggestions {
			b.WriteString(r.styles.Muted.Render("  → " + s))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Success renders a confirmation line
func (r *Renderer) Success(message string) string {
	return r.styles.Success.Render("✓ ") + message + "\n"
}

func (r *Renderer) pageLine(total, offset, limit int) string {
	if total == 0 {
		return r.styles.Muted.Render("No results.") + "\n"
	}
	return r.styles.Muted.Render(fmt.Sprintf("showing %d-%d of %d", offset+1, min(offset+limit, total), total)) + "\n"
}

func formatPrice(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
