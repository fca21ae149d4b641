// Package policy implements the per-operation guard, postprocessor, and
// dontCompare predicate table (spec §4.4): the template-specialization
// dispatch of the original source realized as one entry per operation
// variant in a data-driven table, rather than runtime type switches sprayed
// through the executor.
package policy

import (
	"github.com/ethereum/cryptofuzz-core/corpus"
	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
	"github.com/ethereum/cryptofuzz-core/options"
)

// KMaxBignumSize mirrors corpus.KMaxBignumSize: the cap on decimal-string
// bignum input/output length enforced by the guard.
const KMaxBignumSize = corpus.KMaxBignumSize

// keyMaterialMin/Max bound PrivateToPublic / Sign style key-material
// operands, per spec §4.4.
const keyMaterialMin = 1
const keyMaterialMax = 4096

func withinKeyMaterialBound(b []byte) bool {
	return len(b) >= keyMaterialMin && len(b) <= keyMaterialMax
}

func withinBignumSize(decimal string) bool {
	return len(decimal) <= KMaxBignumSize
}

// CallModule is the guard: callModule(mod, op) from spec §4.4. It applies
// the algorithm allow-set, size-cap, and modular-support checks for the
// concrete type of o, and only on success dispatches to the matching
// Module method. A guard rejection and a module returning absent are
// indistinguishable to the caller — both come back as (nil, false).
func CallModule(mod module.Module, o op.Operation, opts *options.Options) (op.Result, bool) {
	switch v := o.(type) {
	case *op.Digest:
		if !opts.AllowsDigest(v.Algorithm) {
			return nil, false
		}
		return mod.OpDigest(v)
	case *op.HMAC:
		if !opts.AllowsDigest(v.Algorithm) {
			return nil, false
		}
		return mod.OpHMAC(v)
	case *op.CMAC:
		if !opts.AllowsCipher(v.Cipher) {
			return nil, false
		}
		return mod.OpCMAC(v)
	case *op.SymmetricEncrypt:
		if !opts.AllowsCipher(v.Cipher) {
			return nil, false
		}
		return mod.OpSymmetricEncrypt(v)
	case *op.SymmetricDecrypt:
		if !opts.AllowsCipher(v.Cipher) {
			return nil, false
		}
		return mod.OpSymmetricDecrypt(v)
	case *op.KDFPBKDF1:
		if !opts.AllowsDigest(v.Algorithm) {
			return nil, false
		}
		return mod.OpKDFPBKDF1(v)
	case *op.KDFPBKDF2:
		if !opts.AllowsDigest(v.Algorithm) {
			return nil, false
		}
		return mod.OpKDFPBKDF2(v)
	case *op.KDFScrypt:
		return mod.OpKDFScrypt(v)
	case *op.KDFHKDF:
		if !opts.AllowsDigest(v.Algorithm) {
			return nil, false
		}
		return mod.OpKDFHKDF(v)
	case *op.KDFBcrypt:
		return mod.OpKDFBcrypt(v)
	case *op.KDFArgon2:
		return mod.OpKDFArgon2(v)
	case *op.KDFTLS1PRF:
		if !opts.AllowsDigest(v.Algorithm) {
			return nil, false
		}
		return mod.OpKDFTLS1PRF(v)
	case *op.KDFPKCS12:
		if !opts.AllowsDigest(v.Algorithm) {
			return nil, false
		}
		return mod.OpKDFPKCS12(v)
	case *op.KDFSSH:
		if !opts.AllowsDigest(v.Algorithm) {
			return nil, false
		}
		return mod.OpKDFSSH(v)
	case *op.KDFX963:
		if !opts.AllowsDigest(v.Algorithm) {
			return nil, false
		}
		return mod.OpKDFX963(v)
	case *op.KDFSP80008A:
		if !opts.AllowsDigest(v.Algorithm) {
			return nil, false
		}
		return mod.OpKDFSP80008A(v)
	case *op.ECCPrivateToPublic:
		if !opts.AllowsCurve(v.Curve) || !withinKeyMaterialBound(v.PrivateKey) {
			return nil, false
		}
		return mod.OpECCPrivateToPublic(v)
	case *op.ECCValidatePubkey:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpECCValidatePubkey(v)
	case *op.ECCGenerateKeyPair:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpECCGenerateKeyPair(v)
	case *op.ECDSASign:
		if !opts.AllowsCurve(v.Curve) || !withinKeyMaterialBound(v.PrivateKey) {
			return nil, false
		}
		return mod.OpECDSASign(v)
	case *op.ECDSAVerify:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpECDSAVerify(v)
	case *op.ECDHDerive:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpECDHDerive(v)
	case *op.ECIESEncrypt:
		if !opts.AllowsCurve(v.Curve) || !opts.AllowsCipher(v.Cipher) {
			return nil, false
		}
		return mod.OpECIESEncrypt(v)
	case *op.ECIESDecrypt:
		if !opts.AllowsCurve(v.Curve) || !opts.AllowsCipher(v.Cipher) {
			return nil, false
		}
		return mod.OpECIESDecrypt(v)
	case *op.DHDerive:
		return mod.OpDHDerive(v)
	case *op.DHGenerateKeyPair:
		return mod.OpDHGenerateKeyPair(v)
	case *op.BignumCalc:
		if !opts.AllowsCalcOp(string(v.CalcOp)) {
			return nil, false
		}
		if !withinBignumSize(v.BN0) || !withinBignumSize(v.BN1) || !withinBignumSize(v.BN2) {
			return nil, false
		}
		if v.Modulo != nil && !mod.SupportsModularBignumCalc() {
			return nil, false
		}
		if cap, ok := bignumTighterCap(v); cap && !ok {
			return nil, false
		}
		return mod.OpBignumCalc(v)
	case *op.BLSPrivateToPublic:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpBLSPrivateToPublic(v)
	case *op.BLSSign:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpBLSSign(v)
	case *op.BLSVerify:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		if opts.GuardBLSVerifySize && !withinKeyMaterialBound([]byte(v.PubX)) {
			return nil, false
		}
		return mod.OpBLSVerify(v)
	case *op.BLSPairing:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpBLSPairing(v)
	case *op.BLSHashToG1:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpBLSHashToG1(v)
	case *op.BLSHashToG2:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpBLSHashToG2(v)
	case *op.BLSIsG1OnCurve:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpBLSIsG1OnCurve(v)
	case *op.BLSIsG2OnCurve:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpBLSIsG2OnCurve(v)
	case *op.BLSGenerateKeyPair:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpBLSGenerateKeyPair(v)
	case *op.BLSDecompressG1:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpBLSDecompressG1(v)
	case *op.BLSCompressG1:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpBLSCompressG1(v)
	case *op.BLSDecompressG2:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpBLSDecompressG2(v)
	case *op.BLSCompressG2:
		if !opts.AllowsCurve(v.Curve) {
			return nil, false
		}
		return mod.OpBLSCompressG2(v)
	case *op.SR25519Verify:
		return mod.OpSR25519Verify(v)
	case *op.Misc:
		return mod.OpMisc(v)
	default:
		return nil, false
	}
}

// bignumTighterCap applies the tighter BignumCalc caps of spec §4.4 (bytes
// of the decimal-string representation). The second return is only
// meaningful when the first is true, matching "no tighter cap applies" vs.
// "a tighter cap applies and rejects."
func bignumTighterCap(v *op.BignumCalc) (applies bool, ok bool) {
	switch v.CalcOp {
	case op.CalcSetBit:
		return true, len(v.BN1) <= 4
	case op.CalcExp:
		return true, len(v.BN0) <= 5 && len(v.BN1) <= 2
	case op.CalcModLShift:
		return true, len(v.BN1) <= 4
	case op.CalcExp2:
		return true, len(v.BN0) <= 4
	default:
		return false, true
	}
}
