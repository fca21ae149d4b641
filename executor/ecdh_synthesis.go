package executor

import (
	"math/rand"

	"github.com/ethereum/cryptofuzz-core/datasource"
	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
)

// NewECDHDeriveConstructor wraps base with the operation-derivation hook of
// spec §4.8: draw a boolean; if true, pick a random module, derive two
// ECC_PrivateToPublic operations from the stream on a shared curve, invoke
// the module to obtain both public keys, and construct an ECDH_Derive from
// them instead of the base-derived operation. Any failure in that chain
// falls back to base's own derivation.
func NewECDHDeriveConstructor(base NewOpFunc, registry *module.Registry) NewOpFunc {
	return func(ds datasource.Datasource, modifier []byte) (op.Operation, error) {
		synthesize, err := ds.GetBool()
		if err != nil {
			return nil, err
		}
		if !synthesize {
			return base(ds, modifier)
		}
		if synth, ok := trySynthesizeECDH(ds, registry, modifier); ok {
			return synth, nil
		}
		return base(ds, modifier)
	}
}

func trySynthesizeECDH(ds datasource.Datasource, registry *module.Registry, modifier []byte) (*op.ECDHDerive, bool) {
	modules := registry.All()
	if len(modules) == 0 {
		return nil, false
	}
	mod := modules[rand.Intn(len(modules))]

	curveBytes, err := ds.GetData(1, 64)
	if err != nil {
		return nil, false
	}
	curve := string(curveBytes)

	priv1, err := ds.GetData(1, 4096)
	if err != nil {
		return nil, false
	}
	priv2, err := ds.GetData(1, 4096)
	if err != nil {
		return nil, false
	}

	op1 := &op.ECCPrivateToPublic{Curve: curve, PrivateKey: priv1}
	op2 := &op.ECCPrivateToPublic{Curve: curve, PrivateKey: priv2}

	res1, ok1 := mod.OpECCPrivateToPublic(op1)
	if !ok1 {
		return nil, false
	}
	res2, ok2 := mod.OpECCPrivateToPublic(op2)
	if !ok2 {
		return nil, false
	}
	pub1, ok := res1.(op.ECCPublicKey)
	if !ok {
		return nil, false
	}
	pub2, ok := res2.(op.ECCPublicKey)
	if !ok {
		return nil, false
	}

	synth := &op.ECDHDerive{
		Curve:       curve,
		PublicKey1X: pub1.X,
		PublicKey1Y: pub1.Y,
		PublicKey2X: pub2.X,
		PublicKey2Y: pub2.Y,
	}
	synth.SetModifier(modifier)
	return synth, true
}
