package executor

import (
	"github.com/ethereum/cryptofuzz-core/corpus"
	"github.com/ethereum/cryptofuzz-core/datasource"
	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
	"github.com/ethereum/cryptofuzz-core/options"
)

// Moduli for the three modular-arithmetic executor specializations (spec §4.7).
const (
	ModulusBLS12381R = "52435875175126190479447740508185965837690552500527637822603658699938581184513"
	ModulusBLS12381P = "4002409555221667393417789825735904156556882819939007885332058136124031650490837864442687629129015664037894272559787"
	Modulus2Exp256   = "115792089237316195423570985008687907853269984665640564039457584007913129639936"
)

// NewBignumCalcConstructor returns a NewOpFunc wrapping base so every
// derived BignumCalc operation has its Modulo field pinned to modulus
// before dispatch. An operation sent to a backend lacking modular support
// yields absent via the guard's SupportsModularBignumCalc check.
func NewBignumCalcConstructor(base NewOpFunc, modulus string) NewOpFunc {
	return func(ds datasource.Datasource, modifier []byte) (op.Operation, error) {
		o, err := base(ds, modifier)
		if err != nil {
			return nil, err
		}
		bc, ok := o.(*op.BignumCalc)
		if !ok {
			return o, nil
		}
		return bc.WithModulo(modulus), nil
	}
}

// NewModBLS12381R constructs the Mod_BLS12_381_R executor.
func NewModBLS12381R(base NewOpFunc, registry *module.Registry, opts *options.Options, pools *corpus.Pools) *Executor {
	return New(NewBignumCalcConstructor(base, ModulusBLS12381R), registry, opts, pools)
}

// NewModBLS12381P constructs the Mod_BLS12_381_P executor.
func NewModBLS12381P(base NewOpFunc, registry *module.Registry, opts *options.Options, pools *corpus.Pools) *Executor {
	return New(NewBignumCalcConstructor(base, ModulusBLS12381P), registry, opts, pools)
}

// NewMod2Exp256 constructs the Mod_2Exp256 executor.
func NewMod2Exp256(base NewOpFunc, registry *module.Registry, opts *options.Options, pools *corpus.Pools) *Executor {
	return New(NewBignumCalcConstructor(base, Modulus2Exp256), registry, opts, pools)
}
