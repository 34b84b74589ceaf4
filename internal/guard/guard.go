// Package guard gates protected commands on the session state, the way a
// protected route redirects to login in a web client.
package guard

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/chriskampolis/tably/internal/session"
)

// Decision is the guard's verdict for one protected navigation.
type Decision int

const (
	// Checking means the initial token check has not resolved yet; render a
	// placeholder, never the protected content and never a redirect.
	Checking Decision = iota
	// Denied means the user must log in.
	Denied
	// Allowed means the protected content may render.
	Allowed
)

// ErrLoginRequired is returned by Require when the session is not
// authenticated.
var ErrLoginRequired = errors.New(`not logged in — run "tably login" first`)

// Check maps the session status to a decision. The guard holds no state of
// its own; it is re-evaluated from the store on every protected command.
func Check(st session.Status) Decision {
	if st.Loading {
		return Checking
	}
	if !st.Authenticated {
		return Denied
	}
	return Allowed
}

// Require returns a cobra pre-run hook that resolves the session (running
// the initial token check if it has not happened yet) and blocks the
// command unless the guard allows it.
func Require(store *session.Store) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if Check(store.Status()) == Checking {
			if err := store.Initialize(cmd.Context()); err != nil {
				return err
			}
		}

		if Check(store.Status()) != Allowed {
			return ErrLoginRequired
		}
		return nil
	}
}
