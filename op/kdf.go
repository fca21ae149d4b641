package op

import "fmt"

// kdfBase holds fields shared by every key-derivation variant: the secret
// input, the digest/cipher used internally, and the requested output size.
type kdfBase struct {
	base
	Password  []byte
	Salt      []byte
	KeySize   uint64
	Algorithm string
}

func (k *kdfBase) GetAlgorithmString() string { return k.Algorithm }
func (k *kdfBase) jsonFields(name string) ([]byte, error) {
	return marshal(struct {
		Name      string `json:"name"`
		Algorithm string `json:"algorithm"`
		Password  string `json:"password"`
		Salt      string `json:"salt"`
		KeySize   uint64 `json:"keySize"`
	}{name, k.Algorithm, hexOf(k.Password), hexOf(k.Salt), k.KeySize})
}

// KDFPBKDF1 is PBKDF1 keyed by Iterations.
type KDFPBKDF1 struct {
	kdfBase
	Iterations uint64
}

func (k *KDFPBKDF1) Name() string { return "KDF_PBKDF1" }
func (k *KDFPBKDF1) ToString() string {
	return fmt.Sprintf("KDF_PBKDF1(%s, iter=%d)", k.Algorithm, k.Iterations)
}
func (k *KDFPBKDF1) ToJSON() ([]byte, error) { return k.jsonFields(k.Name()) }

// KDFPBKDF2 is PBKDF2 keyed by Iterations.
type KDFPBKDF2 struct {
	kdfBase
	Iterations uint64
}

func (k *KDFPBKDF2) Name() string { return "KDF_PBKDF2" }
func (k *KDFPBKDF2) ToString() string {
	return fmt.Sprintf("KDF_PBKDF2(%s, iter=%d)", k.Algorithm, k.Iterations)
}
func (k *KDFPBKDF2) ToJSON() ([]byte, error) { return k.jsonFields(k.Name()) }

// KDFScrypt is scrypt keyed by N, R, P.
type KDFScrypt struct {
	kdfBase
	N, R, P uint64
}

func (k *KDFScrypt) Name() string { return "KDF_SCRYPT" }
func (k *KDFScrypt) ToString() string {
	return fmt.Sprintf("KDF_SCRYPT(n=%d, r=%d, p=%d)", k.N, k.R, k.P)
}
func (k *KDFScrypt) ToJSON() ([]byte, error) { return k.jsonFields(k.Name()) }

// KDFHKDF is HKDF keyed by an optional Info field.
type KDFHKDF struct {
	kdfBase
	Info []byte
}

func (k *KDFHKDF) Name() string { return "KDF_HKDF" }
func (k *KDFHKDF) ToString() string {
	return fmt.Sprintf("KDF_HKDF(%s, info=%s)", k.Algorithm, hexOf(k.Info))
}
func (k *KDFHKDF) ToJSON() ([]byte, error) { return k.jsonFields(k.Name()) }

// KDFBcrypt is bcrypt keyed by Cost.
type KDFBcrypt struct {
	kdfBase
	Cost uint64
}

func (k *KDFBcrypt) Name() string { return "KDF_BCRYPT" }
func (k *KDFBcrypt) ToString() string {
	return fmt.Sprintf("KDF_BCRYPT(cost=%d)", k.Cost)
}
func (k *KDFBcrypt) ToJSON() ([]byte, error) { return k.jsonFields(k.Name()) }

// KDFArgon2 is Argon2 keyed by Iterations/Memory/Threads and a Type
// discriminator ("i", "d", "id").
type KDFArgon2 struct {
	kdfBase
	Iterations, Memory, Threads uint32
	Type                        string
}

func (k *KDFArgon2) Name() string { return "KDF_ARGON2" }
func (k *KDFArgon2) ToString() string {
	return fmt.Sprintf("KDF_ARGON2%s(t=%d, m=%d, p=%d)", k.Type, k.Iterations, k.Memory, k.Threads)
}
func (k *KDFArgon2) ToJSON() ([]byte, error) { return k.jsonFields(k.Name()) }

// KDFTLS1PRF is the TLS 1.0/1.1 PRF.
type KDFTLS1PRF struct {
	kdfBase
}

func (k *KDFTLS1PRF) Name() string           { return "KDF_TLS1_PRF" }
func (k *KDFTLS1PRF) ToString() string       { return fmt.Sprintf("KDF_TLS1_PRF(%s)", k.Algorithm) }
func (k *KDFTLS1PRF) ToJSON() ([]byte, error) { return k.jsonFields(k.Name()) }

// KDFPKCS12 is the PKCS#12 key derivation function.
type KDFPKCS12 struct {
	kdfBase
	Iterations uint64
	ID         uint64
}

func (k *KDFPKCS12) Name() string { return "KDF_PKCS12" }
func (k *KDFPKCS12) ToString() string {
	return fmt.Sprintf("KDF_PKCS12(%s, iter=%d, id=%d)", k.Algorithm, k.Iterations, k.ID)
}
func (k *KDFPKCS12) ToJSON() ([]byte, error) { return k.jsonFields(k.Name()) }

// KDFSSH is the SSH transport-layer key derivation function, keyed by a
// single-byte Type discriminator (RFC 4253 section 7.2) and SharedSecret.
type KDFSSH struct {
	kdfBase
	SharedSecret []byte
	ExchangeHash []byte
	SessionID    []byte
	Type         byte
}

func (k *KDFSSH) Name() string           { return "KDF_SSH" }
func (k *KDFSSH) ToString() string       { return fmt.Sprintf("KDF_SSH(%s, type=%d)", k.Algorithm, k.Type) }
func (k *KDFSSH) ToJSON() ([]byte, error) { return k.jsonFields(k.Name()) }

// KDFX963 is the ANSI X9.63 key derivation function.
type KDFX963 struct {
	kdfBase
	Info []byte
}

func (k *KDFX963) Name() string           { return "KDF_X963_KDF" }
func (k *KDFX963) ToString() string       { return fmt.Sprintf("KDF_X963_KDF(%s)", k.Algorithm) }
func (k *KDFX963) ToJSON() ([]byte, error) { return k.jsonFields(k.Name()) }

// KDFSP80008A is NIST SP 800-108 in counter mode.
type KDFSP80008A struct {
	kdfBase
	Label   []byte
	Context []byte
}

func (k *KDFSP80008A) Name() string           { return "KDF_SP_800_108" }
func (k *KDFSP80008A) ToString() string       { return fmt.Sprintf("KDF_SP_800_108(%s)", k.Algorithm) }
func (k *KDFSP80008A) ToJSON() ([]byte, error) { return k.jsonFields(k.Name()) }
