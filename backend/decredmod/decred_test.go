package decredmod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/cryptofuzz-core/op"
)

func TestIdentity(t *testing.T) {
	m := New()
	assert.Equal(t, ID, m.ID())
	assert.Equal(t, "decred", m.Name())
}

func TestOpECCPrivateToPublicRejectsWrongCurve(t *testing.T) {
	m := New()
	_, ok := m.OpECCPrivateToPublic(&op.ECCPrivateToPublic{Curve: "secp256r1", PrivateKey: []byte{1}})
	assert.False(t, ok)
}

func TestOpECDSASignThenVerifyRoundTrip(t *testing.T) {
	m := New()
	priv := []byte{0x01}
	sigRes, ok := m.OpECDSASign(&op.ECDSASign{Curve: curveName, PrivateKey: priv, Cleartext: []byte("msg")})
	require.True(t, ok)
	sig := sigRes.(op.ECDSASignature)

	verRes, ok := m.OpECDSAVerify(&op.ECDSAVerify{
		Curve:     curveName,
		PublicX:   sig.PublicKeyX,
		PublicY:   sig.PublicKeyY,
		Cleartext: []byte("msg"),
		R:         sig.R,
		S:         sig.S,
	})
	require.True(t, ok)
	assert.Equal(t, op.Bool{Value: true}, verRes)
}

func TestOpECCValidatePubkeyAcceptsOwnDerivedKey(t *testing.T) {
	m := New()
	pubRes, ok := m.OpECCPrivateToPublic(&op.ECCPrivateToPublic{Curve: curveName, PrivateKey: []byte{0x01}})
	require.True(t, ok)
	pub := pubRes.(op.ECCPublicKey)

	res, ok := m.OpECCValidatePubkey(&op.ECCValidatePubkey{Curve: curveName, X: pub.X, Y: pub.Y})
	require.True(t, ok)
	assert.Equal(t, op.Bool{Value: true}, res)
}
