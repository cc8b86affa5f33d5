package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Flags(t *testing.T) {
	cmd := List()

	assert.Equal(t, "table", cmd.Flags().Lookup("output").DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("domain"))
	assert.NotNil(t, cmd.Flags().Lookup("api-url"))
}

func TestList_RejectsUnknownOutput(t *testing.T) {
	cmd := List()
	cmd.SetArgs([]string{"--output", "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid --output "text"`)
}

func TestModule_Args(t *testing.T) {
	cmd := Module()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}
