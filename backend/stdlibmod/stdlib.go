// Package stdlibmod implements the "stdlib" backend: digests, HMAC, AES
// symmetric ciphers, NIST-curve ECDSA/ECDH, generic bignum arithmetic, and
// finite-field Diffie-Hellman, all grounded directly in the standard
// library's own crypto packages plus the carried-over modexp helpers.
package stdlibmod

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/hmac"
	"crypto/md5"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"math/big"

	bigmath "github.com/ethereum/cryptofuzz-core/common/math"
	"github.com/ethereum/cryptofuzz-core/crypto/modexp"
	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
	"github.com/holiman/uint256"
)

// ID is the stable 64-bit module ID for the stdlib backend.
const ID uint64 = 1

// Module wires the Go standard library's crypto packages into the Module
// interface.
type Module struct {
	module.Base
}

func New() *Module { return &Module{} }

func (*Module) ID() uint64   { return ID }
func (*Module) Name() string { return "stdlib" }

func (*Module) SupportsModularBignumCalc() bool { return true }

func (*Module) OpDigest(o *op.Digest) (op.Result, bool) {
	switch o.Algorithm {
	case "MD5":
		sum := md5.Sum(o.Cleartext)
		return op.Digest{Value: sum[:]}, true
	case "SHA1":
		sum := sha1.Sum(o.Cleartext)
		return op.Digest{Value: sum[:]}, true
	case "SHA-256":
		sum := sha256.Sum256(o.Cleartext)
		return op.Digest{Value: sum[:]}, true
	case "SHA-384":
		sum := sha512.Sum384(o.Cleartext)
		return op.Digest{Value: sum[:]}, true
	case "SHA-512":
		sum := sha512.Sum512(o.Cleartext)
		return op.Digest{Value: sum[:]}, true
	default:
		return nil, false
	}
}

func (*Module) OpHMAC(o *op.HMAC) (op.Result, bool) {
	var mac interface {
		Write([]byte) (int, error)
		Sum([]byte) []byte
	}
	switch o.Algorithm {
	case "SHA-256":
		mac = hmac.New(sha256.New, o.Key)
	case "SHA1":
		mac = hmac.New(sha1.New, o.Key)
	case "SHA-512":
		mac = hmac.New(sha512.New, o.Key)
	case "MD5":
		mac = hmac.New(md5.New, o.Key)
	default:
		return nil, false
	}
	mac.Write(o.Cleartext)
	return op.MAC{Value: mac.Sum(nil)}, true
}

// OpCMAC implements AES-CMAC per RFC 4493. No pack example imports a CMAC
// library (see DESIGN.md), so this builds directly on crypto/aes.
func (*Module) OpCMAC(o *op.CMAC) (op.Result, bool) {
	if o.Cipher != "AES-128-CMAC" && o.Cipher != "AES-192-CMAC" && o.Cipher != "AES-256-CMAC" {
		return nil, false
	}
	block, err := aes.NewCipher(o.Key)
	if err != nil {
		return nil, false
	}
	k1, k2 := cmacSubkeys(block)
	tag := cmacSign(block, k1, k2, o.Cleartext)
	return op.MAC{Value: tag}, true
}

func cmacSubkeys(block cipher.Block) (k1, k2 [16]byte) {
	var zero, l [16]byte
	block.Encrypt(l[:], zero[:])
	k1 = cmacDouble(l)
	k2 = cmacDouble(k1)
	return k1, k2
}

func cmacDouble(in [16]byte) [16]byte {
	var out [16]byte
	var carry byte
	for i := 15; i >= 0; i-- {
		out[i] = in[i]<<1 | carry
		carry = in[i] >> 7
	}
	if in[0]>>7 == 1 {
		out[15] ^= 0x87
	}
	return out
}

func cmacSign(block cipher.Block, k1, k2 [16]byte, msg []byte) []byte {
	const blockSize = 16
	n := (len(msg) + blockSize - 1) / blockSize
	var lastBlock [16]byte
	complete := n > 0 && len(msg)%blockSize == 0
	if n == 0 {
		n = 1
		complete = false
	}
	if complete {
		copy(lastBlock[:], msg[(n-1)*blockSize:])
		for i := range lastBlock {
			lastBlock[i] ^= k1[i]
		}
	} else {
		rem := msg[(n-1)*blockSize:]
		copy(lastBlock[:], rem)
		lastBlock[len(rem)] = 0x80
		for i := range lastBlock {
			lastBlock[i] ^= k2[i]
		}
	}

	var x [16]byte
	for i := 0; i < n-1; i++ {
		var y [16]byte
		chunk := msg[i*blockSize : (i+1)*blockSize]
		for j := range y {
			y[j] = x[j] ^ chunk[j]
		}
		block.Encrypt(x[:], y[:])
	}
	var y [16]byte
	for j := range y {
		y[j] = x[j] ^ lastBlock[j]
	}
	tag := make([]byte, 16)
	block.Encrypt(tag, y[:])
	return tag
}

func (*Module) OpSymmetricEncrypt(o *op.SymmetricEncrypt) (op.Result, bool) {
	switch o.Cipher {
	case "AES-128-GCM", "AES-192-GCM", "AES-256-GCM":
		block, err := aes.NewCipher(o.Key)
		if err != nil {
			return nil, false
		}
		tagSize := 16
		if o.TagSize != nil {
			tagSize = int(*o.TagSize)
		}
		gcm, err := cipher.NewGCMWithTagSize(block, tagSize)
		if err != nil {
			return nil, false
		}
		if len(o.IV) != gcm.NonceSize() {
			return nil, false
		}
		sealed := gcm.Seal(nil, o.IV, o.Cleartext, o.AAD)
		ct := sealed[:len(sealed)-tagSize]
		tag := sealed[len(sealed)-tagSize:]
		return op.Ciphertext{CT: ct, Tag: tag}, true
	case "AES-128-CBC", "AES-192-CBC", "AES-256-CBC":
		block, err := aes.NewCipher(o.Key)
		if err != nil || len(o.IV) != aes.BlockSize || len(o.Cleartext)%aes.BlockSize != 0 {
			return nil, false
		}
		ct := make([]byte, len(o.Cleartext))
		cipher.NewCBCEncrypter(block, o.IV).CryptBlocks(ct, o.Cleartext)
		return op.Ciphertext{CT: ct}, true
	default:
		return nil, false
	}
}

func (*Module) OpSymmetricDecrypt(o *op.SymmetricDecrypt) (op.Result, bool) {
	switch o.Cipher {
	case "AES-128-GCM", "AES-192-GCM", "AES-256-GCM":
		block, err := aes.NewCipher(o.Key)
		if err != nil {
			return nil, false
		}
		tagSize := len(o.Tag)
		if tagSize == 0 {
			tagSize = 16
		}
		gcm, err := cipher.NewGCMWithTagSize(block, tagSize)
		if err != nil {
			return nil, false
		}
		if len(o.IV) != gcm.NonceSize() {
			return nil, false
		}
		sealed := append(append([]byte{}, o.Ciphertext...), o.Tag...)
		pt, err := gcm.Open(nil, o.IV, sealed, o.AAD)
		if err != nil {
			return nil, false
		}
		return op.Cleartext{Value: pt}, true
	case "AES-128-CBC", "AES-192-CBC", "AES-256-CBC":
		block, err := aes.NewCipher(o.Key)
		if err != nil || len(o.IV) != aes.BlockSize || len(o.Ciphertext)%aes.BlockSize != 0 {
			return nil, false
		}
		pt := make([]byte, len(o.Ciphertext))
		cipher.NewCBCDecrypter(block, o.IV).CryptBlocks(pt, o.Ciphertext)
		return op.Cleartext{Value: pt}, true
	default:
		return nil, false
	}
}

var curves = map[string]elliptic.Curve{
	"secp256r1": elliptic.P256(),
	"secp384r1": elliptic.P384(),
	"secp521r1": elliptic.P521(),
}

func (*Module) OpECCPrivateToPublic(o *op.ECCPrivateToPublic) (op.Result, bool) {
	curve, ok := curves[o.Curve]
	if !ok {
		return nil, false
	}
	x, y := curve.ScalarBaseMult(o.PrivateKey)
	if x == nil {
		return nil, false
	}
	return op.ECCPublicKey{X: x.Bytes(), Y: y.Bytes()}, true
}

func (*Module) OpECCValidatePubkey(o *op.ECCValidatePubkey) (op.Result, bool) {
	curve, ok := curves[o.Curve]
	if !ok {
		return nil, false
	}
	x := new(big.Int).SetBytes(o.X)
	y := new(big.Int).SetBytes(o.Y)
	return op.Bool{Value: curve.IsOnCurve(x, y)}, true
}

// OpECCGenerateKeyPair generates a fresh keypair. Always nondeterministic,
// per policy.DontCompare.
func (*Module) OpECCGenerateKeyPair(o *op.ECCGenerateKeyPair) (op.Result, bool) {
	curve, ok := curves[o.Curve]
	if !ok {
		return nil, false
	}
	priv, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		return nil, false
	}
	return op.ECCPublicKey{X: priv.PublicKey.X.Bytes(), Y: priv.PublicKey.Y.Bytes()}, true
}

func (*Module) OpECDSASign(o *op.ECDSASign) (op.Result, bool) {
	curve, ok := curves[o.Curve]
	if !ok {
		return nil, false
	}
	priv := new(ecdsa.PrivateKey)
	priv.PublicKey.Curve = curve
	priv.D = new(big.Int).SetBytes(o.PrivateKey)
	priv.PublicKey.X, priv.PublicKey.Y = curve.ScalarBaseMult(o.PrivateKey)

	r, s, err := ecdsa.Sign(rand.Reader, priv, o.Cleartext)
	if err != nil {
		return nil, false
	}
	return op.ECDSASignature{
		R: r.Bytes(), S: s.Bytes(),
		PublicKeyX: priv.PublicKey.X.Bytes(), PublicKeyY: priv.PublicKey.Y.Bytes(),
	}, true
}

func (*Module) OpECDSAVerify(o *op.ECDSAVerify) (op.Result, bool) {
	curve, ok := curves[o.Curve]
	if !ok {
		return nil, false
	}
	pub := &ecdsa.PublicKey{
		Curve: curve,
		X:     new(big.Int).SetBytes(o.PublicX),
		Y:     new(big.Int).SetBytes(o.PublicY),
	}
	r := new(big.Int).SetBytes(o.R)
	s := new(big.Int).SetBytes(o.S)
	return op.Bool{Value: ecdsa.Verify(pub, o.Cleartext, r, s)}, true
}

// OpECDHDerive treats the two supplied public points as elements of the
// curve's group and reports their sum, the only function of two bare public
// points (no private scalar is carried by ECDH_Derive) that every backend
// capable of point addition can reproduce identically.
func (*Module) OpECDHDerive(o *op.ECDHDerive) (op.Result, bool) {
	curve, ok := curves[o.Curve]
	if !ok {
		return nil, false
	}
	x1 := new(big.Int).SetBytes(o.PublicKey1X)
	y1 := new(big.Int).SetBytes(o.PublicKey1Y)
	x2 := new(big.Int).SetBytes(o.PublicKey2X)
	y2 := new(big.Int).SetBytes(o.PublicKey2Y)
	if !curve.IsOnCurve(x1, y1) || !curve.IsOnCurve(x2, y2) {
		return nil, false
	}
	sx, _ := curve.Add(x1, y1, x2, y2)
	return op.ECDHSecret{Value: sx.Bytes()}, true
}

func (*Module) OpBignumCalc(o *op.BignumCalc) (op.Result, bool) {
	bn0, ok0 := new(big.Int).SetString(o.BN0, 10)
	bn1, ok1 := new(big.Int).SetString(o.BN1, 10)
	if !ok0 || !ok1 {
		return nil, false
	}

	var modulus *big.Int
	if o.Modulo != nil {
		m, ok := new(big.Int).SetString(*o.Modulo, 10)
		if !ok {
			return nil, false
		}
		modulus = m
	}

	reduce := func(z *big.Int) *big.Int {
		if modulus != nil && modulus.Sign() != 0 {
			z.Mod(z, modulus)
		}
		return z
	}

	switch o.CalcOp {
	case op.CalcAdd:
		return op.Bignum{Value: reduce(new(big.Int).Add(bn0, bn1)).String()}, true
	case op.CalcSub:
		return op.Bignum{Value: reduce(new(big.Int).Sub(bn0, bn1)).String()}, true
	case op.CalcMul:
		return op.Bignum{Value: reduce(new(big.Int).Mul(bn0, bn1)).String()}, true
	case op.CalcDiv:
		if bn1.Sign() == 0 {
			return nil, false
		}
		return op.Bignum{Value: new(big.Int).Quo(bn0, bn1).String()}, true
	case op.CalcMod:
		if bn1.Sign() == 0 {
			return nil, false
		}
		return op.Bignum{Value: new(big.Int).Mod(bn0, bn1).String()}, true
	case op.CalcGCD:
		return op.Bignum{Value: new(big.Int).GCD(nil, nil, bn0, bn1).String()}, true
	case op.CalcExp2:
		return op.Bignum{Value: reduce(new(big.Int).Exp(big.NewInt(2), bn0, modulus)).String()}, true
	case op.CalcExp:
		return op.Bignum{Value: calcExp(bn0, bn1, modulus).String()}, true
	case op.CalcSetBit:
		if bn1.Sign() < 0 || !bn1.IsUint64() {
			return nil, false
		}
		z := new(big.Int).Set(bn0)
		z.SetBit(z, int(bn1.Uint64()), 1)
		return op.Bignum{Value: reduce(z).String()}, true
	case op.CalcModLShift:
		if modulus == nil || bn1.Sign() < 0 || !bn1.IsUint64() {
			return nil, false
		}
		z := new(big.Int).Lsh(bn0, uint(bn1.Uint64()))
		return op.Bignum{Value: reduce(z).String()}, true
	case op.CalcRand:
		z, overflow := uint256.FromBig(bn0)
		if overflow {
			return nil, false
		}
		return op.Bignum{Value: z.String()}, true
	default:
		return nil, false
	}
}

// calcExp computes base**exp, reduced modulo mod when non-nil. Positive even
// moduli go to FastExp; other moduli are tried with the gmp modexp binding
// (grounded on the carried-over crypto/modexp package), and plain
// big.Int.Exp is the fallback when that returns an error.
func calcExp(base, exp, mod *big.Int) *big.Int {
	if mod == nil {
		return new(big.Int).Exp(base, exp, nil)
	}
	if mod.Bit(0) == 0 && mod.Sign() > 0 {
		return bigmath.FastExp(base, exp, mod)
	}
	if out, err := modexp.ModExp(base.Bytes(), exp.Bytes(), mod.Bytes()); err == nil {
		return new(big.Int).SetBytes(out)
	}
	return new(big.Int).Exp(base, exp, mod)
}

func (*Module) OpDHDerive(o *op.DHDerive) (op.Result, bool) {
	p, ok := new(big.Int).SetString(o.Prime, 10)
	if !ok || p.Sign() == 0 {
		return nil, false
	}
	priv, ok := new(big.Int).SetString(o.PrivateKey, 10)
	if !ok {
		return nil, false
	}
	pub, ok := new(big.Int).SetString(o.PublicKey, 10)
	if !ok {
		return nil, false
	}
	secret := new(big.Int).Exp(pub, priv, p)
	return op.Bignum{Value: secret.String()}, true
}

// OpMisc answers the "OpName" probe with this module's own name; every
// other Operation string is unrecognized. Skipped by policy.DontCompare.
func (m *Module) OpMisc(o *op.Misc) (op.Result, bool) {
	if o.Operation != "OpName" {
		return nil, false
	}
	return op.Digest{Value: []byte(m.Name())}, true
}

func (*Module) OpDHGenerateKeyPair(o *op.DHGenerateKeyPair) (op.Result, bool) {
	p, ok := new(big.Int).SetString(o.Prime, 10)
	if !ok || p.Sign() == 0 {
		return nil, false
	}
	g, ok := new(big.Int).SetString(o.Generator, 10)
	if !ok {
		return nil, false
	}
	priv, err := rand.Int(rand.Reader, p)
	if err != nil {
		return nil, false
	}
	pub := new(big.Int).Exp(g, priv, p)
	return op.Bignum{Value: pub.String()}, true
}
