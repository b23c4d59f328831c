package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shopipy/posctl/internal/api"
	"github.com/shopipy/posctl/internal/errors"
	"github.com/shopipy/posctl/internal/session"
	"github.com/shopipy/posctl/internal/tui"
)

var renderer = tui.NewRenderer()

func newClient() *api.Client {
	return api.NewClient(cfg.APIURL, api.WithTimeout(cfg.Timeout))
}

func newStore() *session.Store {
	return session.NewStore(cfg.SessionFile)
}

func newGate(client *api.Client) *session.Gate {
	return session.NewGate(client, newStore())
}

// resumeSession rehydrates the persisted token and resolves the identity.
// Commands that need an authenticated client go through here.
func resumeSession(cmd *cobra.Command) (*api.Client, *api.Identity, session.Landing, error) {
	client := newClient()
	identity, landing, err := newGate(client).Resume(cmd.Context())
	if err != nil {
		return nil, nil, "", err
	}
	return client, identity, landing, nil
}

// validateID rejects arguments that are not UUIDs before they reach the
// backend, so typos fail fast with a usage error instead of a 404.
func validateID(kind, arg string) error {
	if _, err := uuid.Parse(arg); err != nil {
		return errors.NewInvalidIDError(kind, arg)
	}
	return nil
}

// uuidArgs returns a cobra args validator requiring exactly n UUID
// positional arguments of the named kinds.
func uuidArgs(kinds ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != len(kinds) {
			return fmt.Errorf("expected %d argument(s): %v", len(kinds), kinds)
		}
		for i, arg := range args {
			if err := validateID(kinds[i], arg); err != nil {
				return err
			}
		}
		return nil
	}
}

// validateSlotDate checks the YYYY-MM-DD shape and rejects past days
// before any network call.
func validateSlotDate(arg string) error {
	day, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidID, fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", arg))
	}
	today := time.Now().Truncate(24 * time.Hour)
	if day.Before(today) {
		return errors.New(errors.ErrCodeInvalidID, fmt.Sprintf("date %s is in the past", arg))
	}
	return nil
}

func pageFlags(cmd *cobra.Command, defaultLimit int) {
	cmd.Flags().Int("offset", 0, "number of results to skip")
	cmd.Flags().Int("limit", defaultLimit, "maximum results per page")
}

func pageValues(cmd *cobra.Command) (offset, limit int) {
	offset, _ = cmd.Flags().GetInt("offset")
	limit, _ = cmd.Flags().GetInt("limit")
	return offset, limit
}

func printOut(cmd *cobra.Command, s string) {
	fmt.Fprint(cmd.OutOrStdout(), s)
}
