package op

import "github.com/ethereum/cryptofuzz-core/datasource"

// Constructor function values below have the same (unnamed) underlying
// function type as executor.NewOpFunc, so they can be assigned directly to
// an Executor's NewOp field without an explicit conversion.

var DigestConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewDigest(ds, modifier)
}
var HMACConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewHMAC(ds, modifier)
}
var CMACConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewCMAC(ds, modifier)
}
var SymmetricEncryptConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewSymmetricEncrypt(ds, modifier)
}
var SymmetricDecryptConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewSymmetricDecrypt(ds, modifier)
}
var ECCPrivateToPublicConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewECCPrivateToPublic(ds, modifier)
}
var ECCValidatePubkeyConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewECCValidatePubkey(ds, modifier)
}
var ECCGenerateKeyPairConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewECCGenerateKeyPair(ds, modifier)
}
var ECDSASignConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewECDSASign(ds, modifier)
}
var ECDSAVerifyConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewECDSAVerify(ds, modifier)
}
var ECDHDeriveConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewECDHDerive(ds, modifier)
}
var ECIESEncryptConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewECIESEncrypt(ds, modifier)
}
var ECIESDecryptConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewECIESDecrypt(ds, modifier)
}
var DHDeriveConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewDHDerive(ds, modifier)
}
var DHGenerateKeyPairConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewDHGenerateKeyPair(ds, modifier)
}
var BignumCalcConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBignumCalc(ds, modifier)
}
var KDFPBKDF1Constructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewKDFPBKDF1(ds, modifier)
}
var KDFPBKDF2Constructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewKDFPBKDF2(ds, modifier)
}
var KDFScryptConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewKDFScrypt(ds, modifier)
}
var KDFHKDFConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewKDFHKDF(ds, modifier)
}
var KDFBcryptConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewKDFBcrypt(ds, modifier)
}
var KDFArgon2Constructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewKDFArgon2(ds, modifier)
}
var KDFTLS1PRFConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewKDFTLS1PRF(ds, modifier)
}
var KDFPKCS12Constructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewKDFPKCS12(ds, modifier)
}
var KDFSSHConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewKDFSSH(ds, modifier)
}
var KDFX963Constructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewKDFX963(ds, modifier)
}
var KDFSP80008AConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewKDFSP80008A(ds, modifier)
}
var BLSPrivateToPublicConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBLSPrivateToPublic(ds, modifier)
}
var BLSSignConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBLSSign(ds, modifier)
}
var BLSVerifyConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBLSVerify(ds, modifier)
}
var BLSPairingConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBLSPairing(ds, modifier)
}
var BLSHashToG1Constructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBLSHashToG1(ds, modifier)
}
var BLSHashToG2Constructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBLSHashToG2(ds, modifier)
}
var BLSIsG1OnCurveConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBLSIsG1OnCurve(ds, modifier)
}
var BLSIsG2OnCurveConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBLSIsG2OnCurve(ds, modifier)
}
var BLSGenerateKeyPairConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBLSGenerateKeyPair(ds, modifier)
}
var BLSDecompressG1Constructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBLSDecompressG1(ds, modifier)
}
var BLSCompressG1Constructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBLSCompressG1(ds, modifier)
}
var BLSDecompressG2Constructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBLSDecompressG2(ds, modifier)
}
var BLSCompressG2Constructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewBLSCompressG2(ds, modifier)
}
var SR25519VerifyConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewSR25519Verify(ds, modifier)
}
var MiscConstructor = func(ds datasource.Datasource, modifier []byte) (Operation, error) {
	return NewMisc(ds, modifier)
}
