package op

import "fmt"

// ECDHDerive derives a shared secret on Curve from two public keys. The
// executor's ECDH operation synthesis (see executor package) may replace a
// randomly-derived instance of this op with one built from two freshly
// validated ECC_PrivateToPublic public keys.
type ECDHDerive struct {
	base
	Curve        string
	PublicKey1X  []byte
	PublicKey1Y  []byte
	PublicKey2X  []byte
	PublicKey2Y  []byte
}

func (e *ECDHDerive) Name() string              { return "ECDH_Derive" }
func (e *ECDHDerive) GetAlgorithmString() string { return e.Curve }
func (e *ECDHDerive) ToString() string {
	return fmt.Sprintf("ECDH_Derive(%s, pub1=(%s,%s), pub2=(%s,%s))",
		e.Curve, hexOf(e.PublicKey1X), hexOf(e.PublicKey1Y), hexOf(e.PublicKey2X), hexOf(e.PublicKey2Y))
}
func (e *ECDHDerive) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name  string `json:"name"`
		Curve string `json:"curve"`
	}{e.Name(), e.Curve})
}

// ECIESEncrypt encrypts Cleartext under a recipient public key on Curve
// using the specified symmetric Cipher for the hybrid payload.
type ECIESEncrypt struct {
	base
	Curve      string
	Cipher     string
	PublicKeyX []byte
	PublicKeyY []byte
	Cleartext  []byte
}

func (e *ECIESEncrypt) Name() string              { return "ECIES_Encrypt" }
func (e *ECIESEncrypt) GetAlgorithmString() string { return e.Curve }
func (e *ECIESEncrypt) ToString() string {
	return fmt.Sprintf("ECIES_Encrypt(%s/%s, pt=%s)", e.Curve, e.Cipher, hexOf(e.Cleartext))
}
func (e *ECIESEncrypt) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name  string `json:"name"`
		Curve string `json:"curve"`
	}{e.Name(), e.Curve})
}

// ECIESDecrypt decrypts Ciphertext under a recipient PrivateKey on Curve.
type ECIESDecrypt struct {
	base
	Curve      string
	Cipher     string
	PrivateKey []byte
	Ciphertext []byte
}

func (e *ECIESDecrypt) Name() string              { return "ECIES_Decrypt" }
func (e *ECIESDecrypt) GetAlgorithmString() string { return e.Curve }
func (e *ECIESDecrypt) ToString() string {
	return fmt.Sprintf("ECIES_Decrypt(%s/%s, ct=%s)", e.Curve, e.Cipher, hexOf(e.Ciphertext))
}
func (e *ECIESDecrypt) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name  string `json:"name"`
		Curve string `json:"curve"`
	}{e.Name(), e.Curve})
}

// DHDerive computes g^(priv) mod p style finite-field Diffie-Hellman, given
// the group Prime, Generator, and the counterparty's PublicKey.
type DHDerive struct {
	base
	Prime      string
	Generator  string
	PrivateKey string
	PublicKey  string
}

func (d *DHDerive) Name() string              { return "DH_Derive" }
func (d *DHDerive) GetAlgorithmString() string { return "DH" }
func (d *DHDerive) ToString() string {
	return fmt.Sprintf("DH_Derive(p=%s, g=%s, pub=%s)", d.Prime, d.Generator, d.PublicKey)
}
func (d *DHDerive) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name      string `json:"name"`
		Prime     string `json:"prime"`
		Generator string `json:"generator"`
	}{d.Name(), d.Prime, d.Generator})
}

// DHGenerateKeyPair generates a fresh DH keypair for the group (Prime,
// Generator). Always nondeterministic.
type DHGenerateKeyPair struct {
	base
	Prime     string
	Generator string
}

func (d *DHGenerateKeyPair) Name() string              { return "DH_GenerateKeyPair" }
func (d *DHGenerateKeyPair) GetAlgorithmString() string { return "DH" }
func (d *DHGenerateKeyPair) ToString() string {
	return fmt.Sprintf("DH_GenerateKeyPair(p=%s, g=%s)", d.Prime, d.Generator)
}
func (d *DHGenerateKeyPair) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name      string `json:"name"`
		Prime     string `json:"prime"`
		Generator string `json:"generator"`
	}{d.Name(), d.Prime, d.Generator})
}
