package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestEqual(t *testing.T) {
	a := Digest{Value: []byte{1, 2, 3}}
	b := Digest{Value: []byte{1, 2, 3}}
	c := Digest{Value: []byte{1, 2, 4}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestEqualRejectsMismatchedType(t *testing.T) {
	a := Digest{Value: []byte{1}}
	b := Bignum{Value: "1"}
	assert.False(t, a.Equal(b))
}

func TestCiphertextEqualComparesTagToo(t *testing.T) {
	a := Ciphertext{CT: []byte{1}, Tag: []byte{9}}
	b := Ciphertext{CT: []byte{1}, Tag: []byte{9}}
	c := Ciphertext{CT: []byte{1}, Tag: []byte{8}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestBignumEqualIsStringEquality(t *testing.T) {
	assert.True(t, Bignum{Value: "007"}.Equal(Bignum{Value: "007"}))
	assert.False(t, Bignum{Value: "7"}.Equal(Bignum{Value: "007"}))
}

func TestG2PointBytesConcatenatesAllLimbs(t *testing.T) {
	p := G2Point{X0: []byte{1}, X1: []byte{2}, Y0: []byte{3}, Y1: []byte{4}}
	assert.Equal(t, []byte{1, 2, 3, 4}, p.Bytes())
}

func TestBLSSignatureEmbedsG2PointEquality(t *testing.T) {
	a := BLSSignature{G2Point{X0: []byte{1}, X1: []byte{2}, Y0: []byte{3}, Y1: []byte{4}}}
	b := BLSSignature{G2Point{X0: []byte{1}, X1: []byte{2}, Y0: []byte{3}, Y1: []byte{4}}}
	assert.True(t, a.Equal(b))
}

func TestBoolEqual(t *testing.T) {
	assert.True(t, Bool{Value: true}.Equal(Bool{Value: true}))
	assert.False(t, Bool{Value: true}.Equal(Bool{Value: false}))
}
