package xcryptomod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/ethereum/cryptofuzz-core/op"
)

func TestIdentity(t *testing.T) {
	m := New()
	assert.Equal(t, ID, m.ID())
	assert.Equal(t, "xcrypto", m.Name())
}

func TestOpDigestKeccak256(t *testing.T) {
	m := New()
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte("abc"))
	want := h.Sum(nil)

	res, ok := m.OpDigest(&op.Digest{Cleartext: []byte("abc"), Algorithm: "KECCAK-256"})
	require.True(t, ok)
	assert.Equal(t, op.Digest{Value: want}, res)
}

func TestOpDigestUnknownAlgorithmAbsent(t *testing.T) {
	m := New()
	_, ok := m.OpDigest(&op.Digest{Algorithm: "MD5"})
	assert.False(t, ok)
}

func TestOpKDFPBKDF2DerivesRequestedLength(t *testing.T) {
	m := New()
	in := &op.KDFPBKDF2{Iterations: 4096}
	in.Password = []byte("password")
	in.Salt = []byte("salt")
	in.Algorithm = "SHA-256"
	in.KeySize = 32

	res, ok := m.OpKDFPBKDF2(in)
	require.True(t, ok)
	key := res.(op.Key)
	assert.Len(t, key.Value, 32)
}

func TestOpKDFPBKDF2RejectsUnknownAlgorithm(t *testing.T) {
	m := New()
	in := &op.KDFPBKDF2{Iterations: 1000}
	in.Password = []byte("password")
	in.Salt = []byte("salt")
	in.Algorithm = "MD5"
	in.KeySize = 16

	_, ok := m.OpKDFPBKDF2(in)
	assert.False(t, ok)
}

func TestOpKDFScryptRejectsInvalidParams(t *testing.T) {
	m := New()
	in := &op.KDFScrypt{N: 0, R: 8, P: 1}
	in.Password = []byte("password")
	in.Salt = []byte("salt")
	in.KeySize = 32

	_, ok := m.OpKDFScrypt(in)
	assert.False(t, ok)
}

func TestOpKDFHKDFIsDeterministic(t *testing.T) {
	m := New()
	in := &op.KDFHKDF{Info: []byte("info")}
	in.Password = []byte("secret")
	in.Salt = []byte("salt")
	in.Algorithm = "SHA-256"
	in.KeySize = 16

	r1, ok1 := m.OpKDFHKDF(in)
	r2, ok2 := m.OpKDFHKDF(in)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.True(t, r1.Equal(r2))
}

func TestOpSymmetricEncryptDecryptChacha20Poly1305RoundTrip(t *testing.T) {
	m := New()
	key := make([]byte, 32)
	iv := make([]byte, 12)
	enc := &op.SymmetricEncrypt{Cleartext: []byte("payload"), Key: key, IV: iv, Cipher: chacha20Poly1305}
	res, ok := m.OpSymmetricEncrypt(enc)
	require.True(t, ok)
	ct := res.(op.Ciphertext)

	dec := &op.SymmetricDecrypt{Ciphertext: ct.CT, Tag: ct.Tag, Key: key, IV: iv, Cipher: chacha20Poly1305}
	res2, ok := m.OpSymmetricDecrypt(dec)
	require.True(t, ok)
	assert.Equal(t, op.Cleartext{Value: []byte("payload")}, res2)
}

func TestOpECCPrivateToPublicX25519(t *testing.T) {
	m := New()
	priv := make([]byte, 32)
	priv[0] = 1
	res, ok := m.OpECCPrivateToPublic(&op.ECCPrivateToPublic{Curve: "x25519", PrivateKey: priv})
	require.True(t, ok)
	pub := res.(op.ECCPublicKey)
	assert.Len(t, pub.X, 32)
	assert.Nil(t, pub.Y)
}

func TestOpECCPrivateToPublicRejectsShortKey(t *testing.T) {
	m := New()
	_, ok := m.OpECCPrivateToPublic(&op.ECCPrivateToPublic{Curve: "x25519", PrivateKey: []byte{1, 2, 3}})
	assert.False(t, ok)
}
