package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/cryptofuzz-core/corpus"
	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
	"github.com/ethereum/cryptofuzz-core/options"
)

// fakeModule answers every operation with a deterministic, observable
// result so guard/postprocess behavior can be asserted without a real
// backend.
type fakeModule struct {
	module.Base
	name                string
	modularBignum       bool
	decryptFails        bool
	lastDecryptWasCalled bool
}

func (m *fakeModule) ID() uint64                        { return 1 }
func (m *fakeModule) Name() string                      { return m.name }
func (m *fakeModule) SupportsModularBignumCalc() bool    { return m.modularBignum }

func (m *fakeModule) OpDigest(o *op.Digest) (op.Result, bool) {
	return op.Digest{Value: append([]byte{}, o.Cleartext...)}, true
}

func (m *fakeModule) OpBignumCalc(o *op.BignumCalc) (op.Result, bool) {
	return op.Bignum{Value: o.BN0}, true
}

func (m *fakeModule) OpSymmetricEncrypt(o *op.SymmetricEncrypt) (op.Result, bool) {
	return op.Ciphertext{CT: append([]byte{}, o.Cleartext...), Tag: []byte{0x01}}, true
}

func (m *fakeModule) OpSymmetricDecrypt(o *op.SymmetricDecrypt) (op.Result, bool) {
	m.lastDecryptWasCalled = true
	if m.decryptFails {
		return nil, false
	}
	return op.Cleartext{Value: append([]byte{}, o.Ciphertext...)}, true
}

func TestCallModuleDigestAllowSet(t *testing.T) {
	mod := &fakeModule{name: "fake"}
	opts := options.New()
	opts.Digests = map[string]bool{"SHA-256": true}

	d := &op.Digest{Algorithm: "SHA-256", Cleartext: []byte("hi")}
	res, ok := CallModule(mod, d, opts)
	require.True(t, ok)
	assert.Equal(t, op.Digest{Value: []byte("hi")}, res)

	blocked := &op.Digest{Algorithm: "MD5", Cleartext: []byte("hi")}
	_, ok = CallModule(mod, blocked, opts)
	assert.False(t, ok)
}

func TestCallModuleRejectsModularBignumWhenUnsupported(t *testing.T) {
	mod := &fakeModule{name: "fake", modularBignum: false}
	opts := options.New()
	modulus := "7"
	b := &op.BignumCalc{CalcOp: op.CalcAdd, BN0: "1", BN1: "2", Modulo: &modulus}
	_, ok := CallModule(mod, b, opts)
	assert.False(t, ok)
}

func TestCallModuleAllowsModularBignumWhenSupported(t *testing.T) {
	mod := &fakeModule{name: "fake", modularBignum: true}
	opts := options.New()
	modulus := "7"
	b := &op.BignumCalc{CalcOp: op.CalcAdd, BN0: "1", BN1: "2", Modulo: &modulus}
	_, ok := CallModule(mod, b, opts)
	assert.True(t, ok)
}

func TestCallModuleBignumTighterCapOnExp(t *testing.T) {
	mod := &fakeModule{name: "fake", modularBignum: true}
	opts := options.New()
	b := &op.BignumCalc{CalcOp: op.CalcExp, BN0: "123456", BN1: "12"}
	_, ok := CallModule(mod, b, opts)
	assert.False(t, ok, "BN0 exceeds the 5-byte tighter cap for CalcExp")
}

func TestDontCompareSkipsNondeterministicOps(t *testing.T) {
	assert.True(t, DontCompare(&op.ECCGenerateKeyPair{}))
	assert.True(t, DontCompare(&op.BLSGenerateKeyPair{}))
	assert.True(t, DontCompare(&op.Misc{}))
	assert.False(t, DontCompare(&op.Digest{}))
}

func TestDontCompareRandCalcOp(t *testing.T) {
	assert.True(t, DontCompare(&op.BignumCalc{CalcOp: op.CalcRand}))
	assert.False(t, DontCompare(&op.BignumCalc{CalcOp: op.CalcAdd}))
}

func TestPostprocessRoundTripSuccess(t *testing.T) {
	mod := &fakeModule{name: "fake"}
	opts := options.New()
	pools := corpus.NewPools()

	enc := &op.SymmetricEncrypt{Cleartext: []byte("hello"), Cipher: "AES-256-GCM"}
	ct := op.Ciphertext{CT: []byte("hello"), Tag: []byte{0x01}}

	err := Postprocess(mod, enc, ct, true, opts, pools)
	assert.NoError(t, err)
	assert.True(t, mod.lastDecryptWasCalled)
}

func TestPostprocessRoundTripFailureAborts(t *testing.T) {
	mod := &fakeModule{name: "fake", decryptFails: true}
	opts := options.New()
	pools := corpus.NewPools()

	enc := &op.SymmetricEncrypt{Cleartext: []byte("hello"), Cipher: "AES-256-GCM"}
	ct := op.Ciphertext{CT: []byte("hello"), Tag: []byte{0x01}}

	err := Postprocess(mod, enc, ct, true, opts, pools)
	require.Error(t, err)
	var abortErr *AbortError
	require.ErrorAs(t, err, &abortErr)
	assert.Equal(t, "SymmetricEncrypt", abortErr.OpName)
}

func TestPostprocessSkipsRoundTripWhenNoDecrypt(t *testing.T) {
	mod := &fakeModule{name: "fake", decryptFails: true}
	opts := options.New()
	opts.NoDecrypt = true
	pools := corpus.NewPools()

	enc := &op.SymmetricEncrypt{Cleartext: []byte("hello"), Cipher: "AES-256-GCM"}
	ct := op.Ciphertext{CT: []byte("hello"), Tag: []byte{0x01}}

	err := Postprocess(mod, enc, ct, true, opts, pools)
	assert.NoError(t, err)
	assert.False(t, mod.lastDecryptWasCalled)
}

func TestPostprocessFeedsBignumPool(t *testing.T) {
	mod := &fakeModule{name: "fake"}
	opts := options.New()
	pools := corpus.NewPools()

	b := &op.BignumCalc{CalcOp: op.CalcAdd, BN0: "3", BN1: "4"}
	err := Postprocess(mod, b, op.Bignum{Value: "007"}, true, opts, pools)
	require.NoError(t, err)
	assert.True(t, pools.Bignums.Has("7"))
}
