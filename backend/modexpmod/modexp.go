// Package modexpmod wires three independent implementations of modular
// exponentiation into the Module interface, each backing only
// BignumCalc(Exp) under a non-nil modulus: the teacher's pure math/big
// implementation, its cgo/GMP implementation, and the common/math
// binary-exponentiation-by-squaring helper. Three backends on one operation
// is deliberate: it is the comparator's best chance of catching a modexp
// divergence that a single implementation could never expose.
package modexpmod

import (
	"math/big"

	bigmath "github.com/ethereum/cryptofuzz-core/common/math"
	"github.com/ethereum/cryptofuzz-core/crypto/modexp/bigint"
	gmp "github.com/ethereum/cryptofuzz-core/crypto/modexp/gmp/cwrapper"
	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
)

const (
	BigIntID uint64 = 10
	GMPID    uint64 = 11
	FastExpID uint64 = 12
)

// BigInt backs BignumCalc(Exp) with crypto/modexp/bigint.
type BigInt struct{ module.Base }

func NewBigInt() *BigInt { return &BigInt{} }

func (*BigInt) ID() uint64   { return BigIntID }
func (*BigInt) Name() string { return "bigintmodexp" }

func (*BigInt) OpBignumCalc(o *op.BignumCalc) (op.Result, bool) {
	base, exp, mod, ok := decodeExp(o)
	if !ok {
		return nil, false
	}
	out, err := bigint.ModExp(base, exp, mod)
	if err != nil {
		return nil, false
	}
	return op.Bignum{Value: new(big.Int).SetBytes(out).String()}, true
}

// GMP backs BignumCalc(Exp) with the cgo GMP binding.
type GMP struct{ module.Base }

func NewGMP() *GMP { return &GMP{} }

func (*GMP) ID() uint64   { return GMPID }
func (*GMP) Name() string { return "gmpmodexp" }

func (*GMP) OpBignumCalc(o *op.BignumCalc) (op.Result, bool) {
	base, exp, mod, ok := decodeExp(o)
	if !ok {
		return nil, false
	}
	out, err := gmp.ModExp(base, exp, mod)
	if err != nil {
		return nil, false
	}
	return op.Bignum{Value: new(big.Int).SetBytes(out).String()}, true
}

// FastExp backs BignumCalc(Exp) with common/math.FastExp, which only
// supports a non-zero modulus.
type FastExp struct{ module.Base }

func NewFastExp() *FastExp { return &FastExp{} }

func (*FastExp) ID() uint64   { return FastExpID }
func (*FastExp) Name() string { return "fastexp" }

func (*FastExp) OpBignumCalc(o *op.BignumCalc) (op.Result, bool) {
	if o.CalcOp != op.CalcExp || o.Modulo == nil {
		return nil, false
	}
	base, ok0 := new(big.Int).SetString(o.BN0, 10)
	exp, ok1 := new(big.Int).SetString(o.BN1, 10)
	mod, ok2 := new(big.Int).SetString(*o.Modulo, 10)
	if !ok0 || !ok1 || !ok2 || mod.Sign() == 0 {
		return nil, false
	}
	return op.Bignum{Value: bigmath.FastExp(base, exp, mod).String()}, true
}

func decodeExp(o *op.BignumCalc) (base, exp, mod []byte, ok bool) {
	if o.CalcOp != op.CalcExp || o.Modulo == nil {
		return nil, nil, nil, false
	}
	b, ok0 := new(big.Int).SetString(o.BN0, 10)
	e, ok1 := new(big.Int).SetString(o.BN1, 10)
	m, ok2 := new(big.Int).SetString(*o.Modulo, 10)
	if !ok0 || !ok1 || !ok2 {
		return nil, nil, nil, false
	}
	return b.Bytes(), e.Bytes(), m.Bytes(), true
}
