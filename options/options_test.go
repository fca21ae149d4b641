package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOptionsIsUnrestricted(t *testing.T) {
	o := New()
	assert.True(t, o.AllowsDigest("SHA-256"))
	assert.True(t, o.AllowsCipher("AES-256-GCM"))
	assert.True(t, o.AllowsCurve("secp256k1"))
	assert.True(t, o.AllowsCalcOp("Add"))
	assert.False(t, o.IsModuleDisabled(1))
}

func TestAllowSetRestrictsToMembers(t *testing.T) {
	o := New()
	o.Digests = map[string]bool{"SHA-256": true}
	assert.True(t, o.AllowsDigest("SHA-256"))
	assert.False(t, o.AllowsDigest("MD5"))
}

func TestIsModuleDisabled(t *testing.T) {
	o := New()
	o.DisableModules = map[uint64]bool{2: true}
	assert.True(t, o.IsModuleDisabled(2))
	assert.False(t, o.IsModuleDisabled(1))
}
