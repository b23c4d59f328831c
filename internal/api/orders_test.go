package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderSendsEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		json.NewEncoder(w).Encode(Order{ID: "o1", Status: "OPEN"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	order, err := client.CreateOrder(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
}

func TestOrderTotalsMergesByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// path: /orders/{id}/totalPrice
		parts := strings.Split(r.URL.Path, "/")
		require.Len(t, parts, 4)
		switch parts[2] {
		case "o1":
			json.NewEncoder(w).Encode(10.5)
		case "o2":
			json.NewEncoder(w).Encode(2.0)
		default:
			t.Errorf("unexpected order id %q", parts[2])
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	totals, err := client.OrderTotals(context.Background(), []Order{{ID: "o1"}, {ID: "o2"}})

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"o1": 10.5, "o2": 2.0}, totals)
}

func TestOrderTotalsFirstErrorWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "bad") {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "totals unavailable"})
			return
		}
		json.NewEncoder(w).Encode(1.0)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.OrderTotals(context.Background(), []Order{{ID: "o1"}, {ID: "bad"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "totals unavailable")
}

func TestOrderTotalsEmptyList(t *testing.T) {
	client := NewClient("http://127.0.0.1:0")
	totals, err := client.OrderTotals(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, totals)
}

func TestAddOrderItemVariantExclusivity(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(OrderItem{ID: "i1", Quantity: 2})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.AddOrderItem(context.Background(), "o1", AddOrderItemRequest{
		ProductVariationID: "v1",
		Quantity:           2,
	})

	require.NoError(t, err)
	assert.Equal(t, "v1", got["productVariationId"])
	_, hasProduct := got["productId"]
	assert.False(t, hasProduct, "productId must be omitted when a variation is set")
}

func TestTransactionLifecycle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/orders/o1/transactions":
			json.NewEncoder(w).Encode(Transaction{ID: "t1", Status: "PENDING", Amount: 9.99})
		case r.Method == http.MethodPatch && r.URL.Path == "/orders/o1/transactions/t1/complete":
			json.NewEncoder(w).Encode(Transaction{ID: "t1", Status: "COMPLETED", Amount: 9.99})
		case r.Method == http.MethodPatch && r.URL.Path == "/orders/o1/transactions/t1/refund":
			json.NewEncoder(w).Encode(Transaction{ID: "t1", Status: "REFUNDED", Amount: 9.99})
		default:
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	tx, err := client.CreateTransaction(ctx, "o1", CreateTransactionRequest{PaymentMethodType: "CASH", Amount: 9.99})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", tx.Status)

	tx, err = client.CompleteTransaction(ctx, "o1", "t1")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", tx.Status)

	tx, err = client.RefundTransaction(ctx, "o1", "t1")
	require.NoError(t, err)
	assert.Equal(t, "REFUNDED", tx.Status)
}
