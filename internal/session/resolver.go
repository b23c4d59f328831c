package session

import (
	"context"

	"github.com/shopipy/posctl/internal/api"
	"github.com/shopipy/posctl/internal/errors"
	"github.com/shopipy/posctl/internal/log"
)

// Landing identifies the role-specific entry view
type Landing string

const (
	LandingAdmin    Landing = "admin"
	LandingOwner    Landing = "owner"
	LandingEmployee Landing = "employee"
)

// Dispatch maps a role to its landing view. The mapping is total over the
// three known variants; any other role returns ok=false, but such values
// never reach dispatch because the resolver rejects them first.
func Dispatch(role api.Role) (Landing, bool) {
	switch role {
	case api.RoleSuperAdmin:
		return LandingAdmin, true
	case api.RoleMerchantOwner:
		return LandingOwner, true
	case api.RoleEmployee:
		return LandingEmployee, true
	}
	return "", false
}

// Resolver classifies the authenticated identity into one of the known
// role variants
type Resolver struct {
	client *api.Client
	store  *Store
	logger *log.Logger
}

// NewResolver creates a Resolver
func NewResolver(client *api.Client, store *Store) *Resolver {
	return &Resolver{
		client: client,
		store:  store,
		logger: log.DefaultLogger(),
	}
}

// Resolve fetches the current identity and validates its role. A role
// outside the known set is a terminal error: it is neither retried nor
// defaulted. On success the role is cached into the store.
func (r *Resolver) Resolve(ctx context.Context) (*api.Identity, error) {
	identity, err := r.client.Me(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRoleResolve, "fetch current identity", err)
	}

	if !identity.Role.Valid() {
		return nil, errors.NewUnknownRoleError(string(identity.Role))
	}

	if err := r.store.SetRole(identity.Role); err != nil {
		// Cached role is an optimization; losing it is not fatal.
		r.logger.WithError(err).Warn("failed to cache role")
	}

	return identity, nil
}
