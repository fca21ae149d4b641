// Package xcryptomod backs the digest, AEAD, key-derivation, and
// Curve25519 families with golang.org/x/crypto, the extended-hash-function
// dependency the teacher already carries.
package xcryptomod

import (
	"crypto/ed25519"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"io"

	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/scrypt"
	"golang.org/x/crypto/sha3"
)

const ID uint64 = 4

type Module struct{ module.Base }

func New() *Module { return &Module{} }

func (*Module) ID() uint64   { return ID }
func (*Module) Name() string { return "xcrypto" }

func (*Module) OpDigest(o *op.Digest) (op.Result, bool) {
	switch o.Algorithm {
	case "SHA3-256":
		sum := sha3.Sum256(o.Cleartext)
		return op.Digest{Value: sum[:]}, true
	case "SHA3-512":
		sum := sha3.Sum512(o.Cleartext)
		return op.Digest{Value: sum[:]}, true
	case "KECCAK-256":
		h := sha3.NewLegacyKeccak256()
		h.Write(o.Cleartext)
		return op.Digest{Value: h.Sum(nil)}, true
	case "BLAKE2B512":
		sum := blake2b.Sum512(o.Cleartext)
		return op.Digest{Value: sum[:]}, true
	case "BLAKE2B256":
		sum := blake2b.Sum256(o.Cleartext)
		return op.Digest{Value: sum[:]}, true
	case "RIPEMD160":
		h := ripemd160.New()
		h.Write(o.Cleartext)
		return op.Digest{Value: h.Sum(nil)}, true
	case "MD4":
		h := md4.New()
		h.Write(o.Cleartext)
		return op.Digest{Value: h.Sum(nil)}, true
	default:
		return nil, false
	}
}

func newHash(algorithm string) func() hash.Hash {
	switch algorithm {
	case "SHA-256":
		return sha256.New
	case "SHA1":
		return sha1.New
	case "SHA-512":
		return sha512.New
	case "SHA3-256":
		return sha3.New256
	case "SHA3-512":
		return sha3.New512
	default:
		return nil
	}
}

func (*Module) OpKDFPBKDF2(o *op.KDFPBKDF2) (op.Result, bool) {
	h := newHash(o.Algorithm)
	if h == nil {
		return nil, false
	}
	key := pbkdf2.Key(o.Password, o.Salt, int(o.Iterations), int(o.KeySize), h)
	return op.Key{Value: key}, true
}

func (*Module) OpKDFScrypt(o *op.KDFScrypt) (op.Result, bool) {
	key, err := scrypt.Key(o.Password, o.Salt, int(o.N), int(o.R), int(o.P), int(o.KeySize))
	if err != nil {
		return nil, false
	}
	return op.Key{Value: key}, true
}

func (*Module) OpKDFHKDF(o *op.KDFHKDF) (op.Result, bool) {
	h := newHash(o.Algorithm)
	if h == nil {
		return nil, false
	}
	reader := hkdf.New(h, o.Password, o.Salt, o.Info)
	key := make([]byte, o.KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, false
	}
	return op.Key{Value: key}, true
}

func (*Module) OpKDFArgon2(o *op.KDFArgon2) (op.Result, bool) {
	switch o.Type {
	case "i":
		key := argon2.Key(o.Password, o.Salt, o.Iterations, o.Memory, uint8(o.Threads), uint32(o.KeySize))
		return op.Key{Value: key}, true
	case "id":
		key := argon2.IDKey(o.Password, o.Salt, o.Iterations, o.Memory, uint8(o.Threads), uint32(o.KeySize))
		return op.Key{Value: key}, true
	default:
		return nil, false
	}
}

const (
	chacha20Poly1305  = "CHACHA20_POLY1305"
	xchacha20Poly1305 = "XCHACHA20_POLY1305"
)

func (*Module) OpSymmetricEncrypt(o *op.SymmetricEncrypt) (op.Result, bool) {
	aead, ok := aeadFor(o.Cipher, o.Key)
	if !ok {
		return nil, false
	}
	if len(o.IV) != aead.NonceSize() {
		return nil, false
	}
	sealed := aead.Seal(nil, o.IV, o.Cleartext, o.AAD)
	tagSize := aead.Overhead()
	return op.Ciphertext{CT: sealed[:len(sealed)-tagSize], Tag: sealed[len(sealed)-tagSize:]}, true
}

func (*Module) OpSymmetricDecrypt(o *op.SymmetricDecrypt) (op.Result, bool) {
	aead, ok := aeadFor(o.Cipher, o.Key)
	if !ok {
		return nil, false
	}
	if len(o.IV) != aead.NonceSize() {
		return nil, false
	}
	sealed := append(append([]byte{}, o.Ciphertext...), o.Tag...)
	pt, err := aead.Open(nil, o.IV, sealed, o.AAD)
	if err != nil {
		return nil, false
	}
	return op.Cleartext{Value: pt}, true
}

func aeadFor(cipherName string, key []byte) (interface {
	NonceSize() int
	Overhead() int
	Seal(dst, nonce, plaintext, additionalData []byte) []byte
	Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
}, bool) {
	switch cipherName {
	case chacha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, false
		}
		return aead, true
	case xchacha20Poly1305:
		aead, err := chacha20poly1305.NewX(key)
		if err != nil {
			return nil, false
		}
		return aead, true
	default:
		return nil, false
	}
}

func (*Module) OpECCPrivateToPublic(o *op.ECCPrivateToPublic) (op.Result, bool) {
	if o.Curve != "x25519" || len(o.PrivateKey) != 32 {
		return nil, false
	}
	var priv [32]byte
	copy(priv[:], o.PrivateKey)
	pub, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return nil, false
	}
	return op.ECCPublicKey{X: pub, Y: nil}, true
}

// OpSR25519Verify stands in for sr25519 with ed25519: the module roster
// carries no real sr25519 backend (see DESIGN.md), so this only ever
// compares against itself and never participates in a differential abort.
func (*Module) OpSR25519Verify(o *op.SR25519Verify) (op.Result, bool) {
	if len(o.PublicKey) != ed25519.PublicKeySize {
		return nil, false
	}
	sig := append(append([]byte{}, o.R...), o.S...)
	if len(sig) != ed25519.SignatureSize {
		return nil, false
	}
	return op.Bool{Value: ed25519.Verify(ed25519.PublicKey(o.PublicKey), o.Cleartext, sig)}, true
}
