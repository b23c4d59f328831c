package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopipy/posctl/internal/api"
	poserrors "github.com/shopipy/posctl/internal/errors"
)

func TestTableAlignsColumns(t *testing.T) {
	r := NewRenderer()

	out := r.Table(
		[]string{"ID", "NAME"},
		[][]string{
			{"m1", "Corner Cafe"},
			{"m2-long-id", "Harbor"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	// The short id is padded to the widest cell in its column.
	assert.Contains(t, lines[1], "m1          Corner Cafe")
}

func TestOrderTableJoinsTotals(t *testing.T) {
	r := NewRenderer()

	page := &api.Page[api.Order]{
		Total: 2, Offset: 0, Limit: 20,
		Items: []api.Order{
			{ID: "o1", Status: "OPEN", CreatedAt: "2026-08-30T10:00:00"},
			{ID: "o2", Status: "CLOSED", CreatedAt: "2026-08-30T11:00:00"},
		},
	}
	totals := map[string]float64{"o1": 12.5}

	out := r.OrderTable(page, totals)
	assert.Contains(t, out, "12.50")
	// The order without a fetched total shows a placeholder.
	assert.Contains(t, out, "-")
	assert.Contains(t, out, "showing 1-2 of 2")
}

func TestErrorRendersSuggestions(t *testing.T) {
	r := NewRenderer()

	err := poserrors.NewOrphanedMerchantError("m-new", assert.AnError)
	out := r.Error(err)

	assert.Contains(t, out, "m-new")
	assert.Contains(t, out, "posctl merchant assign m-new")
	assert.Contains(t, out, "posctl merchant delete m-new")
}

func TestErrorPlain(t *testing.T) {
	r := NewRenderer()

	out := r.Error(assert.AnError)
	assert.Contains(t, out, assert.AnError.Error())
}

func TestSlotListEmpty(t *testing.T) {
	r := NewRenderer()
	assert.Contains(t, r.SlotList(nil), "No free slots")
}

func TestSlotListRendersIntervals(t *testing.T) {
	r := NewRenderer()
	out := r.SlotList([]api.Slot{
		{StartTime: "2026-09-01T09:00:00", EndTime: "2026-09-01T09:30:00"},
	})
	assert.Contains(t, out, "2026-09-01T09:00:00 - 2026-09-01T09:30:00")
}

func TestIdentityCardUnbound(t *testing.T) {
	r := NewRenderer()
	out := r.IdentityCard(&api.Identity{
		FirstName: "Ona", LastName: "Kazlauskiene",
		Email: "ona@shopipy.dev", Role: api.RoleEmployee,
	})
	assert.Contains(t, out, "Ona Kazlauskiene")
	assert.Contains(t, out, "none")
}

func TestPageLineEmpty(t *testing.T) {
	r := NewRenderer()
	out := r.ProductTable(&api.Page[api.Product]{})
	assert.Contains(t, out, "No results")
}
