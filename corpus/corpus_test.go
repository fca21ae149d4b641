package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolSetAndHas(t *testing.T) {
	p := NewPool()
	assert.False(t, p.Has("x"))
	p.Set("x")
	assert.True(t, p.Has("x"))
	assert.Equal(t, 1, p.Len())
}

func TestNewPoolsIsEmpty(t *testing.T) {
	pools := NewPools()
	assert.Equal(t, 0, pools.Bignums.Len())
	assert.Equal(t, 0, pools.DHKeys.Len())
}

func TestSetBignumRejectsOversized(t *testing.T) {
	pools := NewPools()
	oversized := strings.Repeat("9", KMaxBignumSize+1)
	pools.SetBignum(oversized)
	assert.False(t, pools.Bignums.Has(oversized))
	assert.Equal(t, 0, pools.Bignums.Len())
}

func TestSetBignumAcceptsWithinBound(t *testing.T) {
	pools := NewPools()
	pools.SetBignum("12345")
	assert.True(t, pools.Bignums.Has("12345"))
}

func TestCurveKeyDistinguishesCurve(t *testing.T) {
	pools := NewPools()
	pools.CurvePrivateKeys.Set(CurveKey{Curve: "secp256k1", Value: "01"})
	assert.True(t, pools.CurvePrivateKeys.Has(CurveKey{Curve: "secp256k1", Value: "01"}))
	assert.False(t, pools.CurvePrivateKeys.Has(CurveKey{Curve: "secp256r1", Value: "01"}))
}
