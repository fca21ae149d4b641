package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func parseOptions(t *testing.T, args []string) *Options {
	t.Helper()
	var got *Options
	app := &cli.App{
		Name:  "test",
		Flags: Flags,
		Action: func(c *cli.Context) error {
			got = FromContext(c)
			return nil
		},
	}
	require.NoError(t, app.Run(args))
	return got
}

func TestFromContextDefaults(t *testing.T) {
	o := parseOptions(t, []string{"test"})
	assert.Nil(t, o.Digests)
	assert.Nil(t, o.ForceModule)
	assert.Equal(t, 0, o.MinModules)
	assert.False(t, o.NoCompare)
}

func TestFromContextAllowSets(t *testing.T) {
	o := parseOptions(t, []string{"test", "--digests", "SHA-256", "--digests", "MD5"})
	require.NotNil(t, o.Digests)
	assert.True(t, o.Digests["SHA-256"])
	assert.True(t, o.Digests["MD5"])
	assert.False(t, o.Digests["SHA1"])
}

func TestFromContextForceModule(t *testing.T) {
	o := parseOptions(t, []string{"test", "--force-module", "42"})
	require.NotNil(t, o.ForceModule)
	assert.Equal(t, uint64(42), *o.ForceModule)
}

func TestFromContextDisableModules(t *testing.T) {
	o := parseOptions(t, []string{"test", "--disable-modules", "1", "--disable-modules", "2"})
	assert.True(t, o.IsModuleDisabled(1))
	assert.True(t, o.IsModuleDisabled(2))
	assert.False(t, o.IsModuleDisabled(3))
}

func TestFromContextToggles(t *testing.T) {
	o := parseOptions(t, []string{"test", "--no-compare", "--debug", "--min-modules", "2"})
	assert.True(t, o.NoCompare)
	assert.True(t, o.Debug)
	assert.Equal(t, 2, o.MinModules)
}
