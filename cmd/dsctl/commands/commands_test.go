package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_RegistersCommands(t *testing.T) {
	root := Root()

	want := []string{"init", "bootstrap", "deploy", "status", "render", "version", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "command %q not registered", name)
	}
}

func TestBootstrap_Flags(t *testing.T) {
	cmd := Bootstrap()

	configFlag := cmd.Flags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "", configFlag.DefValue)

	dryRunFlag := cmd.Flags().Lookup("dry-run")
	require.NotNil(t, dryRunFlag)
	assert.Equal(t, "false", dryRunFlag.DefValue)
}

func TestDeploy_Flags(t *testing.T) {
	cmd := Deploy()

	require.NotNil(t, cmd.Flags().Lookup("config"))
	require.NotNil(t, cmd.Flags().Lookup("skip-build"))
	require.NotNil(t, cmd.Flags().Lookup("dry-run"))

	timeoutFlag := cmd.Flags().Lookup("timeout")
	require.NotNil(t, timeoutFlag)
	assert.Equal(t, (5 * time.Minute).String(), timeoutFlag.DefValue)
}

func TestInit_Flags(t *testing.T) {
	cmd := Init()

	outputFlag := cmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Equal(t, "dsctl.yaml", outputFlag.DefValue)
}

func TestDeploy_ParsesFlags(t *testing.T) {
	cmd := Deploy()

	require.NoError(t, cmd.Flags().Parse([]string{"-c", "production.yaml", "--skip-build", "--timeout", "10m"}))

	configPath, err := cmd.Flags().GetString("config")
	require.NoError(t, err)
	assert.Equal(t, "production.yaml", configPath)

	skipBuild, err := cmd.Flags().GetBool("skip-build")
	require.NoError(t, err)
	assert.True(t, skipBuild)

	timeout, err := cmd.Flags().GetDuration("timeout")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, timeout)
}
