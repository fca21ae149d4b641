package op

import "fmt"

// SymmetricEncrypt encrypts Cleartext under Cipher with Key, IV, and
// optional AAD. CiphertextSize bounds the output buffer a backend is asked
// to produce; TagSize, when non-nil, requests an authenticated mode tag of
// that length.
type SymmetricEncrypt struct {
	base
	Cleartext      []byte
	Key            []byte
	IV             []byte
	AAD            []byte
	Cipher         string
	CiphertextSize uint64
	TagSize        *uint64
}

func (s *SymmetricEncrypt) Name() string              { return "SymmetricEncrypt" }
func (s *SymmetricEncrypt) GetAlgorithmString() string { return s.Cipher }
func (s *SymmetricEncrypt) ToString() string {
	return fmt.Sprintf("SymmetricEncrypt(%s, key=%s, iv=%s, pt=%s)",
		s.Cipher, hexOf(s.Key), hexOf(s.IV), hexOf(s.Cleartext))
}
func (s *SymmetricEncrypt) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name      string `json:"name"`
		Cipher    string `json:"cipher"`
		Key       string `json:"key"`
		IV        string `json:"iv"`
		AAD       string `json:"aad"`
		Cleartext string `json:"cleartext"`
	}{s.Name(), s.Cipher, hexOf(s.Key), hexOf(s.IV), hexOf(s.AAD), hexOf(s.Cleartext)})
}

// HasTag reports whether the caller requested an authentication tag.
func (s *SymmetricEncrypt) HasTag() bool { return s.TagSize != nil }

// SymmetricDecrypt decrypts Ciphertext (plus optional Tag) under Cipher
// with Key, IV, and AAD, requesting an output buffer of CleartextSize.
type SymmetricDecrypt struct {
	base
	Ciphertext    []byte
	Tag           []byte
	Key           []byte
	IV            []byte
	AAD           []byte
	Cipher        string
	CleartextSize uint64
}

func (s *SymmetricDecrypt) Name() string              { return "SymmetricDecrypt" }
func (s *SymmetricDecrypt) GetAlgorithmString() string { return s.Cipher }
func (s *SymmetricDecrypt) ToString() string {
	return fmt.Sprintf("SymmetricDecrypt(%s, key=%s, iv=%s, ct=%s)",
		s.Cipher, hexOf(s.Key), hexOf(s.IV), hexOf(s.Ciphertext))
}
func (s *SymmetricDecrypt) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name       string `json:"name"`
		Cipher     string `json:"cipher"`
		Key        string `json:"key"`
		IV         string `json:"iv"`
		AAD        string `json:"aad"`
		Ciphertext string `json:"ciphertext"`
		Tag        string `json:"tag"`
	}{s.Name(), s.Cipher, hexOf(s.Key), hexOf(s.IV), hexOf(s.AAD), hexOf(s.Ciphertext), hexOf(s.Tag)})
}

// FromEncryptResult builds the matching SymmetricDecrypt operation for a
// SymmetricEncrypt op and its produced ciphertext, per the postprocessor's
// round-trip check (output buffer size = |cleartext| + 32, same AAD, empty
// modifier).
func FromEncryptResult(enc *SymmetricEncrypt, ct Ciphertext) *SymmetricDecrypt {
	return &SymmetricDecrypt{
		base:          base{ModifierBytes: nil},
		Ciphertext:    ct.CT,
		Tag:           ct.Tag,
		Key:           enc.Key,
		IV:            enc.IV,
		AAD:           enc.AAD,
		Cipher:        enc.Cipher,
		CleartextSize: uint64(len(enc.Cleartext)) + 32,
	}
}

// DES_EDE3_WRAP is the cipher name policy checks against for the
// randomized-IV dontCompare rule.
const DES_EDE3_WRAP = "DES_EDE3_WRAP"
