package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopipy/posctl/internal/api"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	assert.Empty(t, store.Get(), "fresh store holds no token")

	require.NoError(t, store.Set("tok-1"))
	assert.Equal(t, "tok-1", store.Get())

	require.NoError(t, store.SetRole(api.RoleEmployee))
	assert.Equal(t, api.RoleEmployee, store.Role())
	assert.Equal(t, "tok-1", store.Get(), "caching the role keeps the token")
}

func TestStoreSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := NewStore(path)
	require.NoError(t, first.Set("tok-1"))
	require.NoError(t, first.SetRole(api.RoleSuperAdmin))

	second := NewStore(path)
	assert.Equal(t, "tok-1", second.Get())
	assert.Equal(t, api.RoleSuperAdmin, second.Role())
}

func TestStorePersistedKeys(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("tok-1"))
	require.NoError(t, store.SetRole(api.RoleEmployee))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	var raw map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "tok-1", raw["jwt-token"])
	assert.Equal(t, "EMPLOYEE", raw["user-role"])
}

func TestSetDropsStaleRole(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("tok-1"))
	require.NoError(t, store.SetRole(api.RoleSuperAdmin))

	// A new login starts a new session; the old role must not leak in.
	require.NoError(t, store.Set("tok-2"))
	assert.Equal(t, "tok-2", store.Get())
	assert.Empty(t, string(store.Role()))
}

func TestClearRemovesTokenAndRole(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("tok-1"))
	require.NoError(t, store.SetRole(api.RoleEmployee))

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Get())
	assert.Empty(t, string(store.Role()))
}

func TestClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func TestCorruptSessionFileReadsAsEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("garbage"), 0o600))

	assert.Empty(t, store.Get())
	assert.Empty(t, string(store.Role()))
}
