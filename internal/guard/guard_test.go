package guard

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriskampolis/tably/internal/session"
)

func TestCheckWhileLoadingNeverAllowsOrDenies(t *testing.T) {
	assert.Equal(t, Checking, Check(session.Status{Loading: true}))
	assert.Equal(t, Checking, Check(session.Status{Loading: true, Authenticated: true}))
}

func TestCheckResolvedStates(t *testing.T) {
	assert.Equal(t, Denied, Check(session.Status{}))
	assert.Equal(t, Allowed, Check(session.Status{Authenticated: true}))
}

func TestRequireDeniesWithoutToken(t *testing.T) {
	store := session.New(t.TempDir(), nil)

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	err := Require(store)(cmd, nil)
	require.ErrorIs(t, err, ErrLoginRequired)
	// The guard resolved the session on the way.
	assert.False(t, store.Status().Loading)
}

func TestRequireAllowsAfterLogin(t *testing.T) {
	store := session.New(t.TempDir(), nil)
	require.NoError(t, store.Login("access", ""))

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	assert.NoError(t, Require(store)(cmd, nil))
}
