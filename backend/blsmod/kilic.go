// Package blsmod backs the BLS12-381 operation family with two independent
// curve implementations: kilic/bls12-381 (pure Go field/curve arithmetic,
// covering the full family including pairing, hash-to-curve, on-curve
// checks, and point (de)compression) and supranational/blst via
// protolambda/bls12-381-util (the assembly-optimized signature scheme,
// covering PrivateToPublic/Sign/Verify).
package blsmod

import (
	"crypto/rand"
	"math/big"

	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
	bls12381 "github.com/kilic/bls12-381"
)

// bls12381Order is the scalar field order r of the BLS12-381 pairing groups.
var bls12381Order, _ = new(big.Int).SetString(
	"52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

const KilicID uint64 = 20

const curveBLS12381 = "BLS12_381"

// blsSigDST is the hash-to-curve domain separation tag of the
// proof-of-possession signature scheme, the tag bls12-381-util signs with.
const blsSigDST = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_"

type Kilic struct{ module.Base }

func NewKilic() *Kilic { return &Kilic{} }

func (*Kilic) ID() uint64   { return KilicID }
func (*Kilic) Name() string { return "kilic" }

func decScalar(s string) (*big.Int, bool) {
	return new(big.Int).SetString(s, 10)
}

func (*Kilic) OpBLSPrivateToPublic(o *op.BLSPrivateToPublic) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	priv, ok := decScalar(o.PrivateKey)
	if !ok {
		return nil, false
	}
	g1 := bls12381.NewG1()
	pub := g1.New()
	g1.MulScalarBig(pub, g1.One(), priv)
	x, y := g1ToBig(pub)
	return op.G1Point{X: x.Bytes(), Y: y.Bytes()}, true
}

// OpBLSGenerateKeyPair generates a fresh scalar modulo the group order.
// Always nondeterministic, per policy.DontCompare.
func (*Kilic) OpBLSGenerateKeyPair(o *op.BLSGenerateKeyPair) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	priv, err := rand.Int(rand.Reader, bls12381Order)
	if err != nil {
		return nil, false
	}
	return op.Bignum{Value: priv.String()}, true
}

func (*Kilic) OpBLSSign(o *op.BLSSign) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	priv, ok := decScalar(o.PrivateKey)
	if !ok {
		return nil, false
	}
	g2 := bls12381.NewG2()
	hash, err := g2.HashToCurve(o.Cleartext, []byte(blsSigDST))
	if err != nil {
		return nil, false
	}
	sig := g2.New()
	g2.MulScalarBig(sig, hash, priv)
	x0, x1, y0, y1 := g2ToBig(sig)
	return op.BLSSignature{G2Point: op.G2Point{X0: x0.Bytes(), X1: x1.Bytes(), Y0: y0.Bytes(), Y1: y1.Bytes()}}, true
}

func (*Kilic) OpBLSVerify(o *op.BLSVerify) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	pubX, ok1 := decScalar(o.PubX)
	pubY, ok2 := decScalar(o.PubY)
	sigX0, ok3 := decScalar(o.SigX0)
	sigX1, ok4 := decScalar(o.SigX1)
	sigY0, ok5 := decScalar(o.SigY0)
	sigY1, ok6 := decScalar(o.SigY1)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return nil, false
	}
	g1 := bls12381.NewG1()
	g2 := bls12381.NewG2()
	pub := bigToG1(g1, pubX, pubY)
	sig := bigToG2(g2, sigX0, sigX1, sigY0, sigY1)
	if pub == nil || sig == nil {
		return nil, false
	}
	hash, err := g2.HashToCurve(o.Cleartext, []byte(blsSigDST))
	if err != nil {
		return nil, false
	}
	engine := bls12381.NewEngine()
	engine.AddPair(g1.One(), sig)
	engine.AddPairInv(pub, hash)
	return op.Bool{Value: engine.Check()}, true
}

func (*Kilic) OpBLSPairing(o *op.BLSPairing) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	g1x, ok1 := decScalar(o.G1X)
	g1y, ok2 := decScalar(o.G1Y)
	g2x0, ok3 := decScalar(o.G2X0)
	g2x1, ok4 := decScalar(o.G2X1)
	g2y0, ok5 := decScalar(o.G2Y0)
	g2y1, ok6 := decScalar(o.G2Y1)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return nil, false
	}
	g1 := bls12381.NewG1()
	g2 := bls12381.NewG2()
	p1 := bigToG1(g1, g1x, g1y)
	p2 := bigToG2(g2, g2x0, g2x1, g2y0, g2y1)
	if p1 == nil || p2 == nil {
		return nil, false
	}
	engine := bls12381.NewEngine()
	engine.AddPair(p1, p2)
	result := engine.Result()
	return op.Digest{Value: bls12381.NewGT().ToBytes(result)}, true
}

func (*Kilic) OpBLSHashToG1(o *op.BLSHashToG1) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	g1 := bls12381.NewG1()
	p, err := g1.HashToCurve(o.Cleartext, o.DST)
	if err != nil {
		return nil, false
	}
	x, y := g1ToBig(p)
	return op.G1Point{X: x.Bytes(), Y: y.Bytes()}, true
}

func (*Kilic) OpBLSHashToG2(o *op.BLSHashToG2) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	g2 := bls12381.NewG2()
	p, err := g2.HashToCurve(o.Cleartext, o.DST)
	if err != nil {
		return nil, false
	}
	x0, x1, y0, y1 := g2ToBig(p)
	return op.G2Point{X0: x0.Bytes(), X1: x1.Bytes(), Y0: y0.Bytes(), Y1: y1.Bytes()}, true
}

func (*Kilic) OpBLSIsG1OnCurve(o *op.BLSIsG1OnCurve) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	x, ok1 := decScalar(o.X)
	y, ok2 := decScalar(o.Y)
	if !ok1 || !ok2 {
		return nil, false
	}
	g1 := bls12381.NewG1()
	p := bigToG1(g1, x, y)
	return op.Bool{Value: p != nil && g1.IsOnCurve(p)}, true
}

func (*Kilic) OpBLSIsG2OnCurve(o *op.BLSIsG2OnCurve) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	x0, ok1 := decScalar(o.X0)
	x1, ok2 := decScalar(o.X1)
	y0, ok3 := decScalar(o.Y0)
	y1, ok4 := decScalar(o.Y1)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, false
	}
	g2 := bls12381.NewG2()
	p := bigToG2(g2, x0, x1, y0, y1)
	return op.Bool{Value: p != nil && g2.IsOnCurve(p)}, true
}

func (*Kilic) OpBLSCompressG1(o *op.BLSCompressG1) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	x, ok1 := decScalar(o.X)
	y, ok2 := decScalar(o.Y)
	if !ok1 || !ok2 {
		return nil, false
	}
	g1 := bls12381.NewG1()
	p := bigToG1(g1, x, y)
	if p == nil {
		return nil, false
	}
	return op.Digest{Value: g1.ToCompressed(p)}, true
}

func (*Kilic) OpBLSDecompressG1(o *op.BLSDecompressG1) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	raw, ok := decScalar(o.Compressed)
	if !ok {
		return nil, false
	}
	g1 := bls12381.NewG1()
	p, err := g1.FromCompressed(raw.Bytes())
	if err != nil {
		return nil, false
	}
	x, y := g1ToBig(p)
	return op.G1Point{X: x.Bytes(), Y: y.Bytes()}, true
}

func (*Kilic) OpBLSCompressG2(o *op.BLSCompressG2) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	x0, ok1 := decScalar(o.X0)
	x1, ok2 := decScalar(o.X1)
	y0, ok3 := decScalar(o.Y0)
	y1, ok4 := decScalar(o.Y1)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, false
	}
	g2 := bls12381.NewG2()
	p := bigToG2(g2, x0, x1, y0, y1)
	if p == nil {
		return nil, false
	}
	return op.Digest{Value: g2.ToCompressed(p)}, true
}

func (*Kilic) OpBLSDecompressG2(o *op.BLSDecompressG2) (op.Result, bool) {
	if o.Curve != curveBLS12381 {
		return nil, false
	}
	raw, ok := decScalar(o.Compressed)
	if !ok {
		return nil, false
	}
	g2 := bls12381.NewG2()
	p, err := g2.FromCompressed(raw.Bytes())
	if err != nil {
		return nil, false
	}
	x0, x1, y0, y1 := g2ToBig(p)
	return op.G2Point{X0: x0.Bytes(), X1: x1.Bytes(), Y0: y0.Bytes(), Y1: y1.Bytes()}, true
}

func g1ToBig(p *bls12381.PointG1) (x, y *big.Int) {
	raw := bls12381.NewG1().ToBytes(p)
	return new(big.Int).SetBytes(raw[:48]), new(big.Int).SetBytes(raw[48:])
}

func g2ToBig(p *bls12381.PointG2) (x0, x1, y0, y1 *big.Int) {
	raw := bls12381.NewG2().ToBytes(p)
	return new(big.Int).SetBytes(raw[:48]), new(big.Int).SetBytes(raw[48:96]),
		new(big.Int).SetBytes(raw[96:144]), new(big.Int).SetBytes(raw[144:])
}

func bigToG1(g1 *bls12381.G1, x, y *big.Int) *bls12381.PointG1 {
	buf := make([]byte, 96)
	x.FillBytes(buf[:48])
	y.FillBytes(buf[48:])
	p, err := g1.FromBytes(buf)
	if err != nil {
		return nil
	}
	return p
}

func bigToG2(g2 *bls12381.G2, x0, x1, y0, y1 *big.Int) *bls12381.PointG2 {
	buf := make([]byte, 192)
	x0.FillBytes(buf[:48])
	x1.FillBytes(buf[48:96])
	y0.FillBytes(buf[96:144])
	y1.FillBytes(buf[144:])
	p, err := g2.FromBytes(buf)
	if err != nil {
		return nil
	}
	return p
}
