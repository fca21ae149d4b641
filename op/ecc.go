package op

import "fmt"

// ECCPrivateToPublic derives the public key for PrivateKey on Curve.
type ECCPrivateToPublic struct {
	base
	Curve      string
	PrivateKey []byte
}

func (e *ECCPrivateToPublic) Name() string              { return "ECC_PrivateToPublic" }
func (e *ECCPrivateToPublic) GetAlgorithmString() string { return e.Curve }
func (e *ECCPrivateToPublic) ToString() string {
	return fmt.Sprintf("ECC_PrivateToPublic(%s, priv=%s)", e.Curve, hexOf(e.PrivateKey))
}
func (e *ECCPrivateToPublic) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name       string `json:"name"`
		Curve      string `json:"curve"`
		PrivateKey string `json:"privateKey"`
	}{e.Name(), e.Curve, hexOf(e.PrivateKey)})
}

// ECCValidatePubkey checks whether (X, Y) is a point on Curve.
type ECCValidatePubkey struct {
	base
	Curve string
	X, Y  []byte
}

func (e *ECCValidatePubkey) Name() string              { return "ECC_ValidatePubkey" }
func (e *ECCValidatePubkey) GetAlgorithmString() string { return e.Curve }
func (e *ECCValidatePubkey) ToString() string {
	return fmt.Sprintf("ECC_ValidatePubkey(%s, x=%s, y=%s)", e.Curve, hexOf(e.X), hexOf(e.Y))
}
func (e *ECCValidatePubkey) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name  string `json:"name"`
		Curve string `json:"curve"`
		X, Y  string
	}{e.Name(), e.Curve, hexOf(e.X), hexOf(e.Y)})
}

// ECCGenerateKeyPair generates a fresh keypair on Curve. Always nondeterministic.
type ECCGenerateKeyPair struct {
	base
	Curve string
}

func (e *ECCGenerateKeyPair) Name() string              { return "ECC_GenerateKeyPair" }
func (e *ECCGenerateKeyPair) GetAlgorithmString() string { return e.Curve }
func (e *ECCGenerateKeyPair) ToString() string           { return fmt.Sprintf("ECC_GenerateKeyPair(%s)", e.Curve) }
func (e *ECCGenerateKeyPair) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name  string `json:"name"`
		Curve string `json:"curve"`
	}{e.Name(), e.Curve})
}

// ECDSASign signs Cleartext on Curve using PrivateKey. UseRandomNonce
// selects the dontCompare rule for non-Edwards curves per policy.
type ECDSASign struct {
	base
	Curve          string
	PrivateKey     []byte
	Cleartext      []byte
	UseRandomNonce bool
	Nonce          []byte // used when UseRandomNonce is false
}

func (e *ECDSASign) Name() string              { return "ECDSA_Sign" }
func (e *ECDSASign) GetAlgorithmString() string { return e.Curve }
func (e *ECDSASign) ToString() string {
	return fmt.Sprintf("ECDSA_Sign(%s, priv=%s, msg=%s, randNonce=%v)",
		e.Curve, hexOf(e.PrivateKey), hexOf(e.Cleartext), e.UseRandomNonce)
}
func (e *ECDSASign) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name       string `json:"name"`
		Curve      string `json:"curve"`
		PrivateKey string `json:"privateKey"`
		Cleartext  string `json:"cleartext"`
	}{e.Name(), e.Curve, hexOf(e.PrivateKey), hexOf(e.Cleartext)})
}

// IsEdwards reports whether Curve is one of the Edwards curves exempted
// from the ECDSA_Sign random-nonce dontCompare rule.
func (e *ECDSASign) IsEdwards() bool {
	return e.Curve == "ed25519" || e.Curve == "ed448"
}

// ECDSAVerify verifies Signature over Cleartext against PublicKey on Curve.
type ECDSAVerify struct {
	base
	Curve     string
	PublicX   []byte
	PublicY   []byte
	Cleartext []byte
	R, S      []byte
}

func (e *ECDSAVerify) Name() string              { return "ECDSA_Verify" }
func (e *ECDSAVerify) GetAlgorithmString() string { return e.Curve }
func (e *ECDSAVerify) ToString() string {
	return fmt.Sprintf("ECDSA_Verify(%s, msg=%s, r=%s, s=%s)", e.Curve, hexOf(e.Cleartext), hexOf(e.R), hexOf(e.S))
}
func (e *ECDSAVerify) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name  string `json:"name"`
		Curve string `json:"curve"`
	}{e.Name(), e.Curve})
}
