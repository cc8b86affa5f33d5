package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsure_Flags(t *testing.T) {
	cmd := Ensure()
	flags := cmd.Flags()

	for _, name := range []string{
		"name", "state", "dry-run", "output", "metrics-file", "verbose",
		"domain", "account", "project",
		"config", "api-key", "api-secret", "api-url", "api-http-method", "api-timeout",
	} {
		assert.NotNil(t, flags.Lookup(name), "flag %s", name)
	}

	state := flags.Lookup("state")
	assert.Equal(t, "present", state.DefValue)
	assert.Equal(t, "json", flags.Lookup("output").DefValue)
}

func TestEnsure_RequiresName(t *testing.T) {
	cmd := Ensure()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "name" not set`)
}

func TestEnsure_RejectsUnknownOutput(t *testing.T) {
	cmd := Ensure()
	cmd.SetArgs([]string{"--name", "web", "--output", "yaml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid --output "yaml"`)
}

func TestScopeFlags_OnlyGivenFlagsAreSet(t *testing.T) {
	cmd := &cobra.Command{Use: "probe"}
	var scope scopeFlags
	addScopeFlags(cmd.Flags(), &scope)
	require.NoError(t, cmd.Flags().Parse([]string{"--domain", "engineering", "--project", ""}))

	got := scope.scope(cmd)

	require.NotNil(t, got.Domain)
	assert.Equal(t, "engineering", *got.Domain)
	assert.Nil(t, got.Account)
	require.NotNil(t, got.Project)
	assert.Empty(t, *got.Project)
}
