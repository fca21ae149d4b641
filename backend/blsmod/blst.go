package blsmod

import (
	"math/big"

	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
	bls12381 "github.com/kilic/bls12-381"
	blsu "github.com/protolambda/bls12-381-util"
)

const BlstID uint64 = 21

// Blst backs the BLS signature-scheme subset of the family (PrivateToPublic,
// Sign, Verify) with protolambda/bls12-381-util, a thin wrapper over
// supranational/blst's assembly-optimized curve arithmetic. Points cross the
// blst boundary in compressed form; kilic's decoder converts them to and from
// the affine coordinates the operation model carries.
type Blst struct{ module.Base }

func NewBlst() *Blst { return &Blst{} }

func (*Blst) ID() uint64   { return BlstID }
func (*Blst) Name() string { return "blst" }

func secretKeyFromDecimal(s string) (*blsu.SecretKey, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	var buf [32]byte
	v.FillBytes(buf[:])
	sk := new(blsu.SecretKey)
	if err := sk.Deserialize(&buf); err != nil {
		return nil, false
	}
	return sk, true
}

func (*Blst) OpBLSPrivateToPublic(o *op.BLSPrivateToPublic) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	sk, ok := secretKeyFromDecimal(o.PrivateKey)
	if !ok {
		return nil, false
	}
	pub, err := blsu.SkToPk(sk)
	if err != nil {
		return nil, false
	}
	raw := pub.Serialize()
	p, err := bls12381.NewG1().FromCompressed(raw[:])
	if err != nil {
		return nil, false
	}
	x, y := g1ToBig(p)
	return op.G1Point{X: x.Bytes(), Y: y.Bytes()}, true
}

func (*Blst) OpBLSSign(o *op.BLSSign) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	sk, ok := secretKeyFromDecimal(o.PrivateKey)
	if !ok {
		return nil, false
	}
	sig := blsu.Sign(sk, o.Cleartext)
	raw := sig.Serialize()
	p, err := bls12381.NewG2().FromCompressed(raw[:])
	if err != nil {
		return nil, false
	}
	x0, x1, y0, y1 := g2ToBig(p)
	return op.BLSSignature{G2Point: op.G2Point{X0: x0.Bytes(), X1: x1.Bytes(), Y0: y0.Bytes(), Y1: y1.Bytes()}}, true
}

func (*Blst) OpBLSVerify(o *op.BLSVerify) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	pubX, ok1 := new(big.Int).SetString(o.PubX, 10)
	pubY, ok2 := new(big.Int).SetString(o.PubY, 10)
	sigX0, ok3 := new(big.Int).SetString(o.SigX0, 10)
	sigX1, ok4 := new(big.Int).SetString(o.SigX1, 10)
	sigY0, ok5 := new(big.Int).SetString(o.SigY0, 10)
	sigY1, ok6 := new(big.Int).SetString(o.SigY1, 10)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return nil, false
	}

	g1 := bls12381.NewG1()
	g2 := bls12381.NewG2()
	pubPoint := bigToG1(g1, pubX, pubY)
	sigPoint := bigToG2(g2, sigX0, sigX1, sigY0, sigY1)
	if pubPoint == nil || sigPoint == nil {
		return nil, false
	}

	var pubBuf [48]byte
	copy(pubBuf[:], g1.ToCompressed(pubPoint))
	pub := new(blsu.Pubkey)
	if err := pub.Deserialize(&pubBuf); err != nil {
		return nil, false
	}

	var sigBuf [96]byte
	copy(sigBuf[:], g2.ToCompressed(sigPoint))
	sig := new(blsu.Signature)
	if err := sig.Deserialize(&sigBuf); err != nil {
		return nil, false
	}

	return op.Bool{Value: blsu.Verify(pub, o.Cleartext, sig)}, true
}
