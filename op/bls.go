package op

import "fmt"

// BLSPrivateToPublic derives the G1 public key for PrivateKey.
type BLSPrivateToPublic struct {
	base
	Curve      string
	PrivateKey string
}

func (o *BLSPrivateToPublic) Name() string              { return "BLS_PrivateToPublic" }
func (o *BLSPrivateToPublic) GetAlgorithmString() string { return o.Curve }
func (o *BLSPrivateToPublic) ToString() string           { return fmt.Sprintf("BLS_PrivateToPublic(%s)", o.Curve) }
func (o *BLSPrivateToPublic) ToJSON() ([]byte, error) {
	return marshal(struct{ Name, Curve string }{o.Name(), o.Curve})
}

// BLSSign signs Cleartext under PrivateKey, producing a G2 signature.
type BLSSign struct {
	base
	Curve      string
	PrivateKey string
	Cleartext  []byte
}

func (o *BLSSign) Name() string              { return "BLS_Sign" }
func (o *BLSSign) GetAlgorithmString() string { return o.Curve }
func (o *BLSSign) ToString() string           { return fmt.Sprintf("BLS_Sign(%s, msg=%s)", o.Curve, hexOf(o.Cleartext)) }
func (o *BLSSign) ToJSON() ([]byte, error) {
	return marshal(struct{ Name, Curve string }{o.Name(), o.Curve})
}

// BLSVerify verifies a G2 signature (SigX0, SigX1, SigY0, SigY1) over
// Cleartext against the G1 public key (PubX, PubY).
type BLSVerify struct {
	base
	Curve               string
	PubX, PubY          string
	SigX0, SigX1        string
	SigY0, SigY1        string
	Cleartext           []byte
}

func (o *BLSVerify) Name() string              { return "BLS_Verify" }
func (o *BLSVerify) GetAlgorithmString() string { return o.Curve }
func (o *BLSVerify) ToString() string           { return fmt.Sprintf("BLS_Verify(%s, msg=%s)", o.Curve, hexOf(o.Cleartext)) }
func (o *BLSVerify) ToJSON() ([]byte, error) {
	return marshal(struct{ Name, Curve string }{o.Name(), o.Curve})
}

// BLSPairing evaluates the optimal-ate pairing of a G1 and a G2 point.
type BLSPairing struct {
	base
	Curve    string
	G1X, G1Y string
	G2X0, G2X1, G2Y0, G2Y1 string
}

func (o *BLSPairing) Name() string              { return "BLS_Pairing" }
func (o *BLSPairing) GetAlgorithmString() string { return o.Curve }
func (o *BLSPairing) ToString() string           { return fmt.Sprintf("BLS_Pairing(%s)", o.Curve) }
func (o *BLSPairing) ToJSON() ([]byte, error) {
	return marshal(struct{ Name, Curve string }{o.Name(), o.Curve})
}

// BLSHashToG1 hashes Cleartext under the DST domain-separation tag onto a
// G1 point.
type BLSHashToG1 struct {
	base
	Curve     string
	Cleartext []byte
	DST       []byte
}

func (o *BLSHashToG1) Name() string              { return "BLS_HashToG1" }
func (o *BLSHashToG1) GetAlgorithmString() string { return o.Curve }
func (o *BLSHashToG1) ToString() string           { return fmt.Sprintf("BLS_HashToG1(%s)", o.Curve) }
func (o *BLSHashToG1) ToJSON() ([]byte, error) {
	return marshal(struct{ Name, Curve string }{o.Name(), o.Curve})
}

// BLSHashToG2 hashes Cleartext onto a G2 point.
type BLSHashToG2 struct {
	base
	Curve     string
	Cleartext []byte
	DST       []byte
}

func (o *BLSHashToG2) Name() string              { return "BLS_HashToG2" }
func (o *BLSHashToG2) GetAlgorithmString() string { return o.Curve }
func (o *BLSHashToG2) ToString() string           { return fmt.Sprintf("BLS_HashToG2(%s)", o.Curve) }
func (o *BLSHashToG2) ToJSON() ([]byte, error) {
	return marshal(struct{ Name, Curve string }{o.Name(), o.Curve})
}

// BLSIsG1OnCurve checks (X, Y) against the G1 curve equation.
type BLSIsG1OnCurve struct {
	base
	Curve string
	X, Y  string
}

func (o *BLSIsG1OnCurve) Name() string              { return "BLS_IsG1OnCurve" }
func (o *BLSIsG1OnCurve) GetAlgorithmString() string { return o.Curve }
func (o *BLSIsG1OnCurve) ToString() string           { return fmt.Sprintf("BLS_IsG1OnCurve(%s)", o.Curve) }
func (o *BLSIsG1OnCurve) ToJSON() ([]byte, error) {
	return marshal(struct{ Name, Curve string }{o.Name(), o.Curve})
}

// BLSIsG2OnCurve checks (X0, X1, Y0, Y1) against the G2 curve equation.
type BLSIsG2OnCurve struct {
	base
	Curve                  string
	X0, X1, Y0, Y1 string
}

func (o *BLSIsG2OnCurve) Name() string              { return "BLS_IsG2OnCurve" }
func (o *BLSIsG2OnCurve) GetAlgorithmString() string { return o.Curve }
func (o *BLSIsG2OnCurve) ToString() string           { return fmt.Sprintf("BLS_IsG2OnCurve(%s)", o.Curve) }
func (o *BLSIsG2OnCurve) ToJSON() ([]byte, error) {
	return marshal(struct{ Name, Curve string }{o.Name(), o.Curve})
}

// BLSGenerateKeyPair generates a fresh BLS keypair. Always nondeterministic.
type BLSGenerateKeyPair struct {
	base
	Curve string
}

func (o *BLSGenerateKeyPair) Name() string              { return "BLS_GenerateKeyPair" }
func (o *BLSGenerateKeyPair) GetAlgorithmString() string { return o.Curve }
func (o *BLSGenerateKeyPair) ToString() string           { return fmt.Sprintf("BLS_GenerateKeyPair(%s)", o.Curve) }
func (o *BLSGenerateKeyPair) ToJSON() ([]byte, error) {
	return marshal(struct{ Name, Curve string }{o.Name(), o.Curve})
}

// BLSDecompressG1 decompresses a compressed G1 point encoding.
type BLSDecompressG1 struct {
	base
	Curve      string
	Compressed string
}

func (o *BLSDecompressG1) Name() string              { return "BLS_Decompress_G1" }
func (o *BLSDecompressG1) GetAlgorithmString() string { return o.Curve }
func (o *BLSDecompressG1) ToString() string           { return fmt.Sprintf("BLS_Decompress_G1(%s)", o.Curve) }
func (o *BLSDecompressG1) ToJSON() ([]byte, error) {
	return marshal(struct{ Name, Curve string }{o.Name(), o.Curve})
}

// BLSCompressG1 compresses an uncompressed G1 point.
type BLSCompressG1 struct {
	base
	Curve string
	X, Y  string
}

func (o *BLSCompressG1) Name() string              { return "BLS_Compress_G1" }
func (o *BLSCompressG1) GetAlgorithmString() string { return o.Curve }
func (o *BLSCompressG1) ToString() string           { return fmt.Sprintf("BLS_Compress_G1(%s)", o.Curve) }
func (o *BLSCompressG1) ToJSON() ([]byte, error) {
	return marshal(struct{ Name, Curve string }{o.Name(), o.Curve})
}

// BLSDecompressG2 decompresses a compressed G2 point encoding.
type BLSDecompressG2 struct {
	base
	Curve      string
	Compressed string
}

func (o *BLSDecompressG2) Name() string              { return "BLS_Decompress_G2" }
func (o *BLSDecompressG2) GetAlgorithmString() string { return o.Curve }
func (o *BLSDecompressG2) ToString() string           { return fmt.Sprintf("BLS_Decompress_G2(%s)", o.Curve) }
func (o *BLSDecompressG2) ToJSON() ([]byte, error) {
	return marshal(struct{ Name, Curve string }{o.Name(), o.Curve})
}

// BLSCompressG2 compresses an uncompressed G2 point.
type BLSCompressG2 struct {
	base
	Curve                  string
	X0, X1, Y0, Y1 string
}

func (o *BLSCompressG2) Name() string              { return "BLS_Compress_G2" }
func (o *BLSCompressG2) GetAlgorithmString() string { return o.Curve }
func (o *BLSCompressG2) ToString() string           { return fmt.Sprintf("BLS_Compress_G2(%s)", o.Curve) }
func (o *BLSCompressG2) ToJSON() ([]byte, error) {
	return marshal(struct{ Name, Curve string }{o.Name(), o.Curve})
}
