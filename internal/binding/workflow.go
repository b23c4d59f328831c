package binding

import (
	"context"

	"github.com/shopipy/posctl/internal/api"
	"github.com/shopipy/posctl/internal/errors"
	"github.com/shopipy/posctl/internal/log"
)

// State is the merchant binding state of the current identity
type State string

const (
	// StateUnbound means the identity has no merchant association
	StateUnbound State = "UNBOUND"
	// StateSelecting means a merchant list has been loaded and a choice
	// is pending
	StateSelecting State = "SELECTING"
	// StateBound means the identity is associated with a merchant
	StateBound State = "BOUND"
)

// Workflow drives the merchant binding state machine for a landing view.
// Transitions: UNBOUND → SELECTING → BOUND, BOUND → SELECTING (switch),
// and BOUND → UNBOUND (unbind). Every failed transition leaves the machine
// in its prior state; there are no optimistic transitions and no retries.
type Workflow struct {
	client   *api.Client
	identity *api.Identity
	state    State

	merchants []api.Merchant
	merchant  *api.Merchant

	logger *log.Logger
}

// New creates a Workflow for the given identity. The initial state follows
// the identity's merchant association.
func New(client *api.Client, identity *api.Identity) *Workflow {
	state := StateUnbound
	if identity.Bound() {
		state = StateBound
	}
	return &Workflow{
		client:   client,
		identity: identity,
		state:    state,
		logger:   log.DefaultLogger(),
	}
}

// State returns the current binding state
func (w *Workflow) State() State {
	return w.state
}

// Identity returns the most recently fetched identity
func (w *Workflow) Identity() *api.Identity {
	return w.identity
}

// Merchant returns the bound merchant, or nil while unbound
func (w *Workflow) Merchant() *api.Merchant {
	return w.merchant
}

// Merchants returns the selection list loaded for the SELECTING state.
// It is a transient read-only copy; ownership stays server-side.
func (w *Workflow) Merchants() []api.Merchant {
	return w.merchants
}

// Begin enters the workflow. An unbound identity immediately transitions
// to SELECTING by fetching the full merchant list; a bound one loads its
// merchant for display and settles in BOUND.
func (w *Workflow) Begin(ctx context.Context) error {
	if w.identity.Bound() {
		merchant, err := w.client.GetMerchant(ctx, w.identity.MerchantID)
		if err != nil {
			return err
		}
		w.merchant = merchant
		w.state = StateBound
		return nil
	}

	return w.loadSelection(ctx)
}

func (w *Workflow) loadSelection(ctx context.Context) error {
	merchants, err := w.client.ListMerchants(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeMerchantList, "load merchant list", err)
	}
	w.merchants = merchants
	w.state = StateSelecting
	return nil
}

// Select binds the chosen merchant to the current identity and confirms
// the association by re-fetching the identity. Only then does the machine
// transition to BOUND and load the merchant for display.
func (w *Workflow) Select(ctx context.Context, merchantID string) error {
	if w.state != StateSelecting {
		return errors.New(errors.ErrCodeBindFailed, "no merchant selection in progress")
	}
	if merchantID == "" {
		return errors.New(errors.ErrCodeBindFailed, "no merchant selected")
	}

	if err := w.bind(ctx, merchantID); err != nil {
		return err
	}

	return w.confirm(ctx)
}

// bind uses the assignment endpoint for a first binding and the
// switch-merchant endpoint when re-pointing an existing one.
func (w *Workflow) bind(ctx context.Context, merchantID string) error {
	if w.identity.Bound() {
		if err := w.client.SwitchMerchant(ctx, merchantID); err != nil {
			return errors.Wrap(errors.ErrCodeBindFailed, "switch merchant", err)
		}
		return nil
	}
	if err := w.client.AssignMerchant(ctx, w.identity.ID, merchantID); err != nil {
		return errors.Wrap(errors.ErrCodeBindFailed, "assign merchant", err)
	}
	return nil
}

// confirm re-fetches the identity and the bound merchant, then settles
// the machine in BOUND.
func (w *Workflow) confirm(ctx context.Context) error {
	identity, err := w.client.Me(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeBindFailed, "confirm binding", err)
	}
	if !identity.Bound() {
		return errors.New(errors.ErrCodeBindFailed, "binding did not take effect")
	}

	merchant, err := w.client.GetMerchant(ctx, identity.MerchantID)
	if err != nil {
		return errors.Wrap(errors.ErrCodeBindFailed, "load bound merchant", err)
	}

	w.identity = identity
	w.merchant = merchant
	w.state = StateBound
	w.logger.DebugContext(ctx, "merchant binding confirmed",
		"merchant_id", merchant.ID, "merchant_name", merchant.Name)
	return nil
}

// CreateAndBind is the owner path: create a merchant from the form, then
// bind the new id to the current identity, treated as one logical step.
// There is no backend transaction: when the bind fails after the create
// succeeded, the created merchant is reported as orphaned with its id so
// the user can recover by assigning or deleting it.
func (w *Workflow) CreateAndBind(ctx context.Context, req api.CreateMerchantRequest) error {
	if w.state != StateSelecting {
		return errors.New(errors.ErrCodeBindFailed, "no merchant selection in progress")
	}

	merchant, err := w.client.CreateMerchant(ctx, req)
	if err != nil {
		return err
	}

	if err := w.bind(ctx, merchant.ID); err != nil {
		return errors.NewOrphanedMerchantError(merchant.ID, err)
	}

	if err := w.confirm(ctx); err != nil {
		return errors.NewOrphanedMerchantError(merchant.ID, err)
	}
	return nil
}

// Switch re-enters merchant selection from BOUND. The current binding is
// kept until a new one is confirmed by Select.
func (w *Workflow) Switch(ctx context.Context) error {
	if w.state != StateBound {
		return errors.New(errors.ErrCodeBindFailed, "not bound to a merchant")
	}
	return w.loadSelection(ctx)
}

// Unbind removes the merchant association and returns to UNBOUND.
// Unbinding while already unbound is a no-op, not an error.
func (w *Workflow) Unbind(ctx context.Context) error {
	if !w.identity.Bound() {
		w.state = StateUnbound
		return nil
	}

	if err := w.client.SwitchMerchant(ctx, ""); err != nil {
		return errors.Wrap(errors.ErrCodeUnbindFailed, "unbind merchant", err)
	}

	identity, err := w.client.Me(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeUnbindFailed, "confirm unbind", err)
	}

	w.identity = identity
	if identity.Bound() {
		// Backend kept the association; stay where we were.
		w.state = StateBound
		return errors.New(errors.ErrCodeUnbindFailed, "unbind did not take effect")
	}

	w.state = StateUnbound
	w.merchant = nil
	w.merchants = nil
	return nil
}
