package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/cryptofuzz-core/datasource"
	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
)

type pubkeyModule struct {
	module.Base
}

func (pubkeyModule) ID() uint64   { return 1 }
func (pubkeyModule) Name() string { return "pubkey" }

func (pubkeyModule) OpECCPrivateToPublic(o *op.ECCPrivateToPublic) (op.Result, bool) {
	return op.ECCPublicKey{X: append([]byte{0x01}, o.PrivateKey...), Y: append([]byte{0x02}, o.PrivateKey...)}, true
}

func baseAlwaysFails(ds datasource.Datasource, modifier []byte) (op.Operation, error) {
	return nil, datasource.ErrInsufficientData
}

func TestNewECDHDeriveConstructorFallsBackWhenNotSynthesizing(t *testing.T) {
	registry := module.NewRegistry()
	registry.Register(pubkeyModule{})

	calledBase := false
	base := func(ds datasource.Datasource, modifier []byte) (op.Operation, error) {
		calledBase = true
		return &op.ECDHDerive{Curve: "secp256r1"}, nil
	}

	constructor := NewECDHDeriveConstructor(base, registry)
	ds := datasource.NewByteStream([]byte{0x00}) // GetBool -> false
	o, err := constructor(ds, nil)
	require.NoError(t, err)
	assert.True(t, calledBase)
	_, ok := o.(*op.ECDHDerive)
	assert.True(t, ok)
}

func TestNewECDHDeriveConstructorSynthesizesFromTwoPubkeys(t *testing.T) {
	registry := module.NewRegistry()
	registry.Register(pubkeyModule{})

	constructor := NewECDHDeriveConstructor(baseAlwaysFails, registry)

	buf := []byte{0x01} // GetBool -> true (synthesize)
	buf = append(buf, lenPrefixed([]byte("secp256r1"))...)
	buf = append(buf, lenPrefixed([]byte{0x11})...)
	buf = append(buf, lenPrefixed([]byte{0x22})...)
	ds := datasource.NewByteStream(buf)

	o, err := constructor(ds, nil)
	require.NoError(t, err)
	synth, ok := o.(*op.ECDHDerive)
	require.True(t, ok)
	assert.Equal(t, "secp256r1", synth.Curve)
	assert.Equal(t, []byte{0x01, 0x11}, synth.PublicKey1X)
	assert.Equal(t, []byte{0x01, 0x22}, synth.PublicKey2X)
}

func TestNewECDHDeriveConstructorFallsBackWhenSynthesisFails(t *testing.T) {
	registry := module.NewRegistry() // no modules loaded

	calledBase := false
	base := func(ds datasource.Datasource, modifier []byte) (op.Operation, error) {
		calledBase = true
		return &op.ECDHDerive{Curve: "secp256r1"}, nil
	}

	constructor := NewECDHDeriveConstructor(base, registry)
	ds := datasource.NewByteStream([]byte{0x01})
	_, err := constructor(ds, nil)
	require.NoError(t, err)
	assert.True(t, calledBase)
}

func lenPrefixed(b []byte) []byte {
	n := len(b)
	prefix := []byte{byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	return append(prefix, b...)
}
