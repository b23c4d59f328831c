package session

import (
	"context"

	"github.com/shopipy/posctl/internal/api"
	"github.com/shopipy/posctl/internal/errors"
)

// Gate exchanges credentials for a session, then hands off to the resolver.
// A failed exchange leaves the store untouched: no partial token is ever
// persisted.
type Gate struct {
	client   *api.Client
	store    *Store
	resolver *Resolver
}

// NewGate creates a Gate
func NewGate(client *api.Client, store *Store) *Gate {
	return &Gate{
		client:   client,
		store:    store,
		resolver: NewResolver(client, store),
	}
}

// Login authenticates with email and password, persists the token, resolves
// the role and returns the identity with its landing view.
func (g *Gate) Login(ctx context.Context, email, password string) (*api.Identity, Landing, error) {
	token, err := g.client.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	if err := g.store.Set(token); err != nil {
		return nil, "", err
	}

	return g.resolve(ctx)
}

// RegisterForm carries the registration fields. Owner selects the
// "create a business" path, which is a pure client-side role decision.
type RegisterForm struct {
	FirstName      string
	LastName       string
	Email          string
	Password       string
	RepeatPassword string
	Owner          bool
}

// Role returns the default role implied by the form's business toggle
func (f RegisterForm) Role() api.Role {
	if f.Owner {
		return api.RoleMerchantOwner
	}
	return api.RoleEmployee
}

// Register creates an account and logs the session in. The password
// equality precondition fails locally before any network call.
func (g *Gate) Register(ctx context.Context, form RegisterForm) (*api.Identity, Landing, error) {
	if form.Password != form.RepeatPassword {
		return nil, "", errors.NewPasswordMismatchError()
	}

	token, err := g.client.Register(ctx, api.RegisterRequest{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
		Role:      form.Role(),
	})
	if err != nil {
		return nil, "", err
	}

	if err := g.store.Set(token); err != nil {
		return nil, "", err
	}

	return g.resolve(ctx)
}

// Resume rehydrates a session from the store without re-authenticating.
// Fails when no token is persisted.
func (g *Gate) Resume(ctx context.Context) (*api.Identity, Landing, error) {
	token := g.store.Get()
	if token == "" {
		return nil, "", errors.NewSessionMissingError()
	}

	g.client.SetToken(token)
	return g.resolve(ctx)
}

func (g *Gate) resolve(ctx context.Context) (*api.Identity, Landing, error) {
	identity, err := g.resolver.Resolve(ctx)
	if err != nil {
		return nil, "", err
	}

	landing, ok := Dispatch(identity.Role)
	if !ok {
		// Unreachable: the resolver validates the role first.
		return nil, "", errors.NewUnknownRoleError(string(identity.Role))
	}

	return identity, landing, nil
}

// Logout destroys the persisted session. Safe to call when not logged in.
func (g *Gate) Logout() error {
	g.client.SetToken("")
	return g.store.Clear()
}
