package binding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopipy/posctl/internal/api"
	poserrors "github.com/shopipy/posctl/internal/errors"
)

// merchantBackend fakes the merchant and user endpoints with a mutable
// binding so transitions can be confirmed end to end.
type merchantBackend struct {
	mu        sync.Mutex
	merchants []api.Merchant
	boundID   string

	failAssign bool
	failSwitch bool
	createHits int
	assignHits int
	switchHits int

	server *httptest.Server
}

func newMerchantBackend(t *testing.T) *merchantBackend {
	t.Helper()

	b := &merchantBackend{
		merchants: []api.Merchant{
			{ID: "m1", Name: "Corner Cafe", Currency: "EUR"},
			{ID: "m2", Name: "Harbor Salon", Currency: "USD"},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /merchants", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		json.NewEncoder(w).Encode(b.merchants)
	})
	mux.HandleFunc("POST /merchants", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.createHits++
		var req api.CreateMerchantRequest
		json.NewDecoder(r.Body).Decode(&req)
		created := api.Merchant{ID: "m-new", Name: req.Name, Currency: req.Currency}
		b.merchants = append(b.merchants, created)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	})
	mux.HandleFunc("GET /merchants/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, m := range b.merchants {
			if m.ID == r.PathValue("id") {
				json.NewEncoder(w).Encode(m)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Merchant not found"})
	})
	mux.HandleFunc("POST /users/{id}/merchant", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.assignHits++
		if b.failAssign {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "Assignment failed"})
			return
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		b.boundID = body["merchantId"]
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("PATCH /users/switch-merchant", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.switchHits++
		if b.failSwitch {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "Switch failed"})
			return
		}
		b.boundID = r.URL.Query().Get("merchantId")
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		identity := api.Identity{
			ID:    "u1",
			Email: "owner@shopipy.dev",
			Role:  api.RoleMerchantOwner,
		}
		identity.MerchantID = b.boundID
		json.NewEncoder(w).Encode(identity)
	})

	b.server = httptest.NewServer(mux)
	t.Cleanup(b.server.Close)
	return b
}

func (b *merchantBackend) client(t *testing.T) *api.Client {
	t.Helper()
	client := api.NewClient(b.server.URL)
	client.SetToken("tok")
	return client
}

func unboundIdentity() *api.Identity {
	return &api.Identity{ID: "u1", Email: "owner@shopipy.dev", Role: api.RoleMerchantOwner}
}

func boundIdentity(merchantID string) *api.Identity {
	id := unboundIdentity()
	id.MerchantID = merchantID
	return id
}

func TestBeginUnboundEntersSelecting(t *testing.T) {
	backend := newMerchantBackend(t)
	wf := New(backend.client(t), unboundIdentity())

	require.Equal(t, StateUnbound, wf.State())
	require.NoError(t, wf.Begin(context.Background()))

	assert.Equal(t, StateSelecting, wf.State())
	assert.Len(t, wf.Merchants(), 2)
	assert.Nil(t, wf.Merchant())
}

func TestBeginBoundLoadsMerchant(t *testing.T) {
	backend := newMerchantBackend(t)
	backend.boundID = "m2"
	wf := New(backend.client(t), boundIdentity("m2"))

	require.Equal(t, StateBound, wf.State())
	require.NoError(t, wf.Begin(context.Background()))

	require.NotNil(t, wf.Merchant())
	assert.Equal(t, "Harbor Salon", wf.Merchant().Name)
}

func TestSelectBindsAndConfirms(t *testing.T) {
	backend := newMerchantBackend(t)
	wf := New(backend.client(t), unboundIdentity())
	require.NoError(t, wf.Begin(context.Background()))

	require.NoError(t, wf.Select(context.Background(), "m1"))

	assert.Equal(t, StateBound, wf.State())
	assert.Equal(t, "m1", wf.Identity().MerchantID)
	require.NotNil(t, wf.Merchant())
	assert.Equal(t, "Corner Cafe", wf.Merchant().Name)
	assert.Equal(t, 1, backend.assignHits)
	assert.Zero(t, backend.switchHits)
}

func TestSelectFailureStaysSelecting(t *testing.T) {
	backend := newMerchantBackend(t)
	backend.failAssign = true
	wf := New(backend.client(t), unboundIdentity())
	require.NoError(t, wf.Begin(context.Background()))

	err := wf.Select(context.Background(), "m1")
	require.Error(t, err)

	var posErr *poserrors.PosError
	require.ErrorAs(t, err, &posErr)
	assert.Equal(t, poserrors.ErrCodeBindFailed, posErr.Code)
	assert.Equal(t, StateSelecting, wf.State())
	assert.Empty(t, wf.Identity().MerchantID)
}

func TestSelectRequiresSelection(t *testing.T) {
	backend := newMerchantBackend(t)
	wf := New(backend.client(t), unboundIdentity())

	err := wf.Select(context.Background(), "m1")
	require.Error(t, err)
	assert.Equal(t, StateUnbound, wf.State())
	assert.Zero(t, backend.assignHits)
}

func TestSwitchReentersSelectionKeepingBinding(t *testing.T) {
	backend := newMerchantBackend(t)
	backend.boundID = "m1"
	wf := New(backend.client(t), boundIdentity("m1"))
	require.NoError(t, wf.Begin(context.Background()))

	require.NoError(t, wf.Switch(context.Background()))
	assert.Equal(t, StateSelecting, wf.State())
	require.NotNil(t, wf.Merchant())
	assert.Equal(t, "m1", wf.Merchant().ID)

	// Re-binding an already bound identity goes through switch-merchant.
	require.NoError(t, wf.Select(context.Background(), "m2"))
	assert.Equal(t, StateBound, wf.State())
	assert.Equal(t, "m2", wf.Identity().MerchantID)
	assert.Equal(t, 1, backend.switchHits)
	assert.Zero(t, backend.assignHits)
}

func TestCreateAndBind(t *testing.T) {
	backend := newMerchantBackend(t)
	wf := New(backend.client(t), unboundIdentity())
	require.NoError(t, wf.Begin(context.Background()))

	err := wf.CreateAndBind(context.Background(), api.CreateMerchantRequest{
		Name:     "New Bistro",
		Currency: "EUR",
	})
	require.NoError(t, err)

	assert.Equal(t, StateBound, wf.State())
	assert.Equal(t, "m-new", wf.Identity().MerchantID)
	assert.Equal(t, "New Bistro", wf.Merchant().Name)
}

func TestCreateAndBindOrphanOnBindFailure(t *testing.T) {
	backend := newMerchantBackend(t)
	backend.failAssign = true
	wf := New(backend.client(t), unboundIdentity())
	require.NoError(t, wf.Begin(context.Background()))

	err := wf.CreateAndBind(context.Background(), api.CreateMerchantRequest{
		Name:     "New Bistro",
		Currency: "EUR",
	})
	require.Error(t, err)

	var posErr *poserrors.PosError
	require.ErrorAs(t, err, &posErr)
	assert.Equal(t, poserrors.ErrCodeOrphanedMerchant, posErr.Code)
	assert.Contains(t, posErr.Message, "m-new")
	assert.Equal(t, 1, backend.createHits)
	assert.Equal(t, StateSelecting, wf.State())
}

func TestUnbind(t *testing.T) {
	backend := newMerchantBackend(t)
	backend.boundID = "m1"
	wf := New(backend.client(t), boundIdentity("m1"))
	require.NoError(t, wf.Begin(context.Background()))

	require.NoError(t, wf.Unbind(context.Background()))

	assert.Equal(t, StateUnbound, wf.State())
	assert.Nil(t, wf.Merchant())
	assert.Empty(t, wf.Identity().MerchantID)
	assert.Equal(t, 1, backend.switchHits)
}

func TestUnbindWhileUnboundIsNoop(t *testing.T) {
	backend := newMerchantBackend(t)
	wf := New(backend.client(t), unboundIdentity())

	require.NoError(t, wf.Unbind(context.Background()))
	assert.Equal(t, StateUnbound, wf.State())
	assert.Zero(t, backend.switchHits)
}

func TestUnbindFailureStaysBound(t *testing.T) {
	backend := newMerchantBackend(t)
	backend.boundID = "m1"
	backend.failSwitch = true
	wf := New(backend.client(t), boundIdentity("m1"))
	require.NoError(t, wf.Begin(context.Background()))

	err := wf.Unbind(context.Background())
	require.Error(t, err)

	var posErr *poserrors.PosError
	require.ErrorAs(t, err, &posErr)
	assert.Equal(t, poserrors.ErrCodeUnbindFailed, posErr.Code)
	assert.Equal(t, StateBound, wf.State())
	require.NotNil(t, wf.Merchant())
}
