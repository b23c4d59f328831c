package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	poserrors "github.com/shopipy/posctl/internal/errors"
)

func TestLoginSuccessSetsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req.Email)
		assert.Equal(t, "x", req.Password)

		json.NewEncoder(w).Encode(map[string]string{"jwt-token": "tok-123"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	token, err := client.Login(context.Background(), "a@b.com", "x")

	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, "tok-123", client.Token())
}

func TestLoginFailureSurfacesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), "a@b.com", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
	assert.Empty(t, client.Token(), "no partial token on failed login")

	var posErr *poserrors.PosError
	require.ErrorAs(t, err, &posErr)
	assert.Equal(t, poserrors.ErrCodeAuthFailed, posErr.Code)
}

func TestRegister(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)

		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, RoleEmployee, req.Role)

		json.NewEncoder(w).Encode(map[string]string{"jwt-token": "tok-reg"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	token, err := client.Register(context.Background(), RegisterRequest{
		FirstName: "Jo",
		LastName:  "Doe",
		Email:     "jo@x.com",
		Password:  "pw",
		Role:      RoleEmployee,
	})

	require.NoError(t, err)
	assert.Equal(t, "tok-reg", token)
}

func TestBearerTokenAttached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		json.NewEncoder(w).Encode(Identity{ID: "u1", Role: RoleEmployee})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok-abc")

	identity, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", identity.ID)
}

func TestMeDecodesIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/me", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id":         "u1",
			"firstName":  "Ada",
			"lastName":   "Lovelace",
			"email":      "ada@x.com",
			"role":       "EMPLOYEE",
			"merchantId": nil,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	identity, err := client.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, RoleEmployee, identity.Role)
	assert.False(t, identity.Bound(), "null merchantId means unbound")
	assert.Equal(t, "Ada Lovelace", identity.FullName())
}

func TestSwitchMerchant(t *testing.T) {
	tests := []struct {
		name       string
		merchantID string
		wantQuery  string
	}{
		{"switch to merchant", "m1", "m1"},
		{"unbind omits the parameter", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPatch, r.Method)
				require.Equal(t, "/users/switch-merchant", r.URL.Path)
				gotQuery = r.URL.Query().Get("merchantId")
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := NewClient(server.URL)
			require.NoError(t, client.SwitchMerchant(context.Background(), tt.merchantID))
			assert.Equal(t, tt.wantQuery, gotQuery)
		})
	}
}

func TestRequestFailureKeepsBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "merchant has open orders"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.DeleteMerchant(context.Background(), "m1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "merchant has open orders")
}

func TestMalformedBodyIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Me(context.Background())

	require.Error(t, err)
	var posErr *poserrors.PosError
	require.ErrorAs(t, err, &posErr)
	assert.Equal(t, poserrors.ErrCodeDecodeFailed, posErr.Code)
}

func TestContextCancellationDropsRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL)
	_, err := client.Me(ctx)
	require.Error(t, err)
}

func TestListProductsPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("offset"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "mug", r.URL.Query().Get("name"))
		json.NewEncoder(w).Encode(Page[Product]{
			Total:  1,
			Offset: 5,
			Limit:  10,
			Items:  []Product{{ID: "p1", Name: "mug", Price: 4.5}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	page, err := client.ListProducts(context.Background(), ProductFilter{Name: "mug", Offset: 5, Limit: 10})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "mug", page.Items[0].Name)
}

func TestAvailableSlots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/services/s1/availableSlots", r.URL.Path)
		assert.Equal(t, "2026-09-01", r.URL.Query().Get("date"))
		assert.Equal(t, "u1", r.URL.Query().Get("userId"))
		json.NewEncoder(w).Encode(SlotList{Items: []Slot{
			{StartTime: "2026-09-01T10:00:00", EndTime: "2026-09-01T10:30:00"},
		}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	slots, err := client.AvailableSlots(context.Background(), "s1", "2026-09-01", "u1")

	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "2026-09-01T10:00:00", slots[0].StartTime)
}
