// Package decredmod backs secp256k1 ECDSA and key derivation with
// decred's dcrec/secp256k1/v4, an independent implementation of the same
// curve btcecmod uses — together they give the comparator a real chance at
// catching a secp256k1 divergence instead of comparing a module against
// itself.
package decredmod

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
)

const ID uint64 = 3
const curveName = "secp256k1"

type Module struct{ module.Base }

func New() *Module { return &Module{} }

func (*Module) ID() uint64   { return ID }
func (*Module) Name() string { return "decred" }

func (*Module) OpECCPrivateToPublic(o *op.ECCPrivateToPublic) (op.Result, bool) {
	if o.Curve != curveName {
		return nil, false
	}
	priv := secp256k1.PrivKeyFromBytes(o.PrivateKey)
	x, y := splitUncompressed(priv.PubKey().SerializeUncompressed())
	return op.ECCPublicKey{X: x, Y: y}, true
}

func (*Module) OpECCValidatePubkey(o *op.ECCValidatePubkey) (op.Result, bool) {
	if o.Curve != curveName {
		return nil, false
	}
	_, err := secp256k1.ParsePubKey(joinUncompressed(o.X, o.Y))
	return op.Bool{Value: err == nil}, true
}

func (*Module) OpECDSASign(o *op.ECDSASign) (op.Result, bool) {
	if o.Curve != curveName {
		return nil, false
	}
	priv := secp256k1.PrivKeyFromBytes(o.PrivateKey)
	digest := sha256.Sum256(o.Cleartext)
	sig := ecdsa.Sign(priv, digest[:])
	rVal := sig.R()
	sVal := sig.S()
	rArr := rVal.Bytes()
	sArr := sVal.Bytes()
	x, y := splitUncompressed(priv.PubKey().SerializeUncompressed())
	return op.ECDSASignature{
		R:          rArr[:],
		S:          sArr[:],
		PublicKeyX: x,
		PublicKeyY: y,
	}, true
}

func (*Module) OpECDSAVerify(o *op.ECDSAVerify) (op.Result, bool) {
	if o.Curve != curveName {
		return nil, false
	}
	pub, err := secp256k1.ParsePubKey(joinUncompressed(o.PublicX, o.PublicY))
	if err != nil {
		return nil, false
	}
	r := new(secp256k1.ModNScalar)
	s := new(secp256k1.ModNScalar)
	r.SetByteSlice(o.R)
	s.SetByteSlice(o.S)
	sig := ecdsa.NewSignature(r, s)
	digest := sha256.Sum256(o.Cleartext)
	return op.Bool{Value: sig.Verify(digest[:], pub)}, true
}

func joinUncompressed(x, y []byte) []byte {
	out := make([]byte, 65)
	out[0] = 0x04
	copy(out[1+32-len(x):33], x)
	copy(out[33+32-len(y):], y)
	return out
}

func splitUncompressed(b []byte) (x, y []byte) {
	if len(b) != 65 {
		return nil, nil
	}
	return b[1:33], b[33:65]
}
