package blsmod

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/cryptofuzz-core/op"
)

func TestKilicIdentity(t *testing.T) {
	m := NewKilic()
	assert.Equal(t, KilicID, m.ID())
	assert.Equal(t, "kilic", m.Name())
}

func TestBlstIdentity(t *testing.T) {
	m := NewBlst()
	assert.Equal(t, BlstID, m.ID())
	assert.Equal(t, "blst", m.Name())
}

func TestKilicRejectsWrongCurve(t *testing.T) {
	m := NewKilic()
	_, ok := m.OpBLSPrivateToPublic(&op.BLSPrivateToPublic{Curve: "BLS12_377", PrivateKey: "1"})
	assert.False(t, ok)
}

func TestKilicPrivateToPublicThenSignVerifyRoundTrip(t *testing.T) {
	m := NewKilic()
	priv := "12345"

	pubRes, ok := m.OpBLSPrivateToPublic(&op.BLSPrivateToPublic{Curve: curveBLS12381, PrivateKey: priv})
	require.True(t, ok)
	pub := pubRes.(op.G1Point)

	sigRes, ok := m.OpBLSSign(&op.BLSSign{Curve: curveBLS12381, PrivateKey: priv, Cleartext: []byte("msg")})
	require.True(t, ok)
	sig := sigRes.(op.BLSSignature)

	verRes, ok := m.OpBLSVerify(&op.BLSVerify{
		Curve:     curveBLS12381,
		PubX:      decString(pub.X),
		PubY:      decString(pub.Y),
		SigX0:     decString(sig.X0),
		SigX1:     decString(sig.X1),
		SigY0:     decString(sig.Y0),
		SigY1:     decString(sig.Y1),
		Cleartext: []byte("msg"),
	})
	require.True(t, ok)
	assert.Equal(t, op.Bool{Value: true}, verRes)
}

// TestKilicAndBlstAgreeOnPrivateToPublic exercises the exact scenario the
// comparator relies on: two independent backends asked to derive the public
// key for the same scalar must produce byte-identical G1 coordinates.
func TestKilicAndBlstAgreeOnPrivateToPublic(t *testing.T) {
	priv := "999999999999"
	kRes, ok := NewKilic().OpBLSPrivateToPublic(&op.BLSPrivateToPublic{Curve: curveBLS12381, PrivateKey: priv})
	require.True(t, ok)
	bRes, ok := NewBlst().OpBLSPrivateToPublic(&op.BLSPrivateToPublic{Curve: curveBLS12381, PrivateKey: priv})
	require.True(t, ok)
	assert.True(t, kRes.Equal(bRes))
}

// TestKilicAndBlstSignaturesCompareEqualWhenTheyMatch pins down the
// BLSSignature.Equal override: a G2Point-embedding result must compare
// against another BLSSignature, not silently fail the type assertion.
func TestKilicAndBlstSignaturesCompareEqualWhenTheyMatch(t *testing.T) {
	priv := "42"
	kRes, ok := NewKilic().OpBLSSign(&op.BLSSign{Curve: curveBLS12381, PrivateKey: priv, Cleartext: []byte("hello")})
	require.True(t, ok)
	bRes, ok := NewBlst().OpBLSSign(&op.BLSSign{Curve: curveBLS12381, PrivateKey: priv, Cleartext: []byte("hello")})
	require.True(t, ok)
	assert.True(t, kRes.Equal(bRes))
	assert.True(t, bRes.Equal(kRes))
}

func TestKilicHashToG1IsOnCurve(t *testing.T) {
	m := NewKilic()
	res, ok := m.OpBLSHashToG1(&op.BLSHashToG1{Curve: curveBLS12381, Cleartext: []byte("msg"), DST: []byte("dst")})
	require.True(t, ok)
	p := res.(op.G1Point)

	onCurve, ok := m.OpBLSIsG1OnCurve(&op.BLSIsG1OnCurve{Curve: curveBLS12381, X: decString(p.X), Y: decString(p.Y)})
	require.True(t, ok)
	assert.Equal(t, op.Bool{Value: true}, onCurve)
}

func TestKilicCompressDecompressG1RoundTrip(t *testing.T) {
	m := NewKilic()
	pubRes, ok := m.OpBLSPrivateToPublic(&op.BLSPrivateToPublic{Curve: curveBLS12381, PrivateKey: "7"})
	require.True(t, ok)
	pub := pubRes.(op.G1Point)

	compRes, ok := m.OpBLSCompressG1(&op.BLSCompressG1{Curve: curveBLS12381, X: decString(pub.X), Y: decString(pub.Y)})
	require.True(t, ok)
	comp := compRes.(op.Digest)

	decompRes, ok := m.OpBLSDecompressG1(&op.BLSDecompressG1{
		Curve:      curveBLS12381,
		Compressed: decString(comp.Value),
	})
	require.True(t, ok)
	assert.Equal(t, pub, decompRes)
}

func decString(b []byte) string {
	return new(big.Int).SetBytes(b).String()
}
