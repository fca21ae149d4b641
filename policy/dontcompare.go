package policy

import "github.com/ethereum/cryptofuzz-core/op"

// DontCompare is the skip-compare predicate (spec §4.4): default false,
// overridden for operations whose "present" results are legitimately
// allowed to differ across backends.
func DontCompare(o op.Operation) bool {
	switch v := o.(type) {
	case *op.DHGenerateKeyPair, *op.ECCGenerateKeyPair, *op.BLSGenerateKeyPair, *op.Misc:
		return true
	case *op.BignumCalc:
		return v.CalcOp == op.CalcRand
	case *op.ECDSASign:
		return !v.IsEdwards() && v.UseRandomNonce
	case *op.SymmetricEncrypt:
		return v.Cipher == op.DES_EDE3_WRAP
	case *op.SymmetricDecrypt:
		return v.Cipher == op.DES_EDE3_WRAP
	case *op.CMAC:
		return v.Cipher == op.DES_EDE3_WRAP
	case *op.HMAC:
		return v.Algorithm == op.DES_EDE3_WRAP
	default:
		return false
	}
}
