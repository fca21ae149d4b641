package module

import "github.com/ethereum/cryptofuzz-core/op"

// Base implements every Module method as "absent." Concrete backends embed
// Base and override only the operations their underlying library actually
// supports — exactly what spec §4.2 calls "the backend cannot or chose not
// to [handle this operation]," which the core treats as a normal skip, not
// an error.
type Base struct{}

func (Base) OpDigest(*op.Digest) (op.Result, bool)                               { return nil, false }
func (Base) OpHMAC(*op.HMAC) (op.Result, bool)                                   { return nil, false }
func (Base) OpCMAC(*op.CMAC) (op.Result, bool)                                   { return nil, false }
func (Base) OpSymmetricEncrypt(*op.SymmetricEncrypt) (op.Result, bool)           { return nil, false }
func (Base) OpSymmetricDecrypt(*op.SymmetricDecrypt) (op.Result, bool)           { return nil, false }
func (Base) OpKDFPBKDF1(*op.KDFPBKDF1) (op.Result, bool)                         { return nil, false }
func (Base) OpKDFPBKDF2(*op.KDFPBKDF2) (op.Result, bool)                         { return nil, false }
func (Base) OpKDFScrypt(*op.KDFScrypt) (op.Result, bool)                         { return nil, false }
func (Base) OpKDFHKDF(*op.KDFHKDF) (op.Result, bool)                             { return nil, false }
func (Base) OpKDFBcrypt(*op.KDFBcrypt) (op.Result, bool)                         { return nil, false }
func (Base) OpKDFArgon2(*op.KDFArgon2) (op.Result, bool)                         { return nil, false }
func (Base) OpKDFTLS1PRF(*op.KDFTLS1PRF) (op.Result, bool)                       { return nil, false }
func (Base) OpKDFPKCS12(*op.KDFPKCS12) (op.Result, bool)                         { return nil, false }
func (Base) OpKDFSSH(*op.KDFSSH) (op.Result, bool)                               { return nil, false }
func (Base) OpKDFX963(*op.KDFX963) (op.Result, bool)                             { return nil, false }
func (Base) OpKDFSP80008A(*op.KDFSP80008A) (op.Result, bool)                     { return nil, false }
func (Base) OpECCPrivateToPublic(*op.ECCPrivateToPublic) (op.Result, bool)       { return nil, false }
func (Base) OpECCValidatePubkey(*op.ECCValidatePubkey) (op.Result, bool)         { return nil, false }
func (Base) OpECCGenerateKeyPair(*op.ECCGenerateKeyPair) (op.Result, bool)       { return nil, false }
func (Base) OpECDSASign(*op.ECDSASign) (op.Result, bool)                         { return nil, false }
func (Base) OpECDSAVerify(*op.ECDSAVerify) (op.Result, bool)                     { return nil, false }
func (Base) OpECDHDerive(*op.ECDHDerive) (op.Result, bool)                       { return nil, false }
func (Base) OpECIESEncrypt(*op.ECIESEncrypt) (op.Result, bool)                   { return nil, false }
func (Base) OpECIESDecrypt(*op.ECIESDecrypt) (op.Result, bool)                   { return nil, false }
func (Base) OpDHDerive(*op.DHDerive) (op.Result, bool)                           { return nil, false }
func (Base) OpDHGenerateKeyPair(*op.DHGenerateKeyPair) (op.Result, bool)         { return nil, false }
func (Base) OpBignumCalc(*op.BignumCalc) (op.Result, bool)                       { return nil, false }
func (Base) OpBLSPrivateToPublic(*op.BLSPrivateToPublic) (op.Result, bool)       { return nil, false }
func (Base) OpBLSSign(*op.BLSSign) (op.Result, bool)                             { return nil, false }
func (Base) OpBLSVerify(*op.BLSVerify) (op.Result, bool)                         { return nil, false }
func (Base) OpBLSPairing(*op.BLSPairing) (op.Result, bool)                       { return nil, false }
func (Base) OpBLSHashToG1(*op.BLSHashToG1) (op.Result, bool)                     { return nil, false }
func (Base) OpBLSHashToG2(*op.BLSHashToG2) (op.Result, bool)                     { return nil, false }
func (Base) OpBLSIsG1OnCurve(*op.BLSIsG1OnCurve) (op.Result, bool)               { return nil, false }
func (Base) OpBLSIsG2OnCurve(*op.BLSIsG2OnCurve) (op.Result, bool)               { return nil, false }
func (Base) OpBLSGenerateKeyPair(*op.BLSGenerateKeyPair) (op.Result, bool)       { return nil, false }
func (Base) OpBLSDecompressG1(*op.BLSDecompressG1) (op.Result, bool)             { return nil, false }
func (Base) OpBLSCompressG1(*op.BLSCompressG1) (op.Result, bool)                 { return nil, false }
func (Base) OpBLSDecompressG2(*op.BLSDecompressG2) (op.Result, bool)             { return nil, false }
func (Base) OpBLSCompressG2(*op.BLSCompressG2) (op.Result, bool)                 { return nil, false }
func (Base) OpSR25519Verify(*op.SR25519Verify) (op.Result, bool)                 { return nil, false }
func (Base) OpMisc(*op.Misc) (op.Result, bool)                                   { return nil, false }
func (Base) SupportsModularBignumCalc() bool                                     { return false }
