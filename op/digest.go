package op

import "fmt"

// Digest hashes Cleartext under Algorithm (e.g. "SHA-256", "SHA3-256",
// "BLAKE2B512", "RIPEMD160"). Digest also serves as its own paired result
// type (a byte-string result), populated via the Value field.
type Digest struct {
	base
	Cleartext []byte
	Algorithm string
	Value     []byte
}

func (d *Digest) Name() string              { return "Digest" }
func (d *Digest) GetAlgorithmString() string { return d.Algorithm }
func (d *Digest) ToString() string {
	return fmt.Sprintf("Digest(%s, cleartext=%s)", d.Algorithm, hexOf(d.Cleartext))
}
func (d *Digest) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name      string `json:"name"`
		Algorithm string `json:"algorithm"`
		Cleartext string `json:"cleartext"`
	}{d.Name(), d.Algorithm, hexOf(d.Cleartext)})
}

func (d Digest) Bytes() []byte { return d.Value }
func (d Digest) Equal(other Result) bool {
	o, ok := other.(Digest)
	if !ok {
		return false
	}
	return bytesEqual(d.Value, o.Value)
}

// HMAC computes a keyed hash of Cleartext under Algorithm and Key.
type HMAC struct {
	base
	Cleartext []byte
	Key       []byte
	Algorithm string
}

func (h *HMAC) Name() string              { return "HMAC" }
func (h *HMAC) GetAlgorithmString() string { return h.Algorithm }
func (h *HMAC) ToString() string {
	return fmt.Sprintf("HMAC(%s, cleartext=%s, key=%s)", h.Algorithm, hexOf(h.Cleartext), hexOf(h.Key))
}
func (h *HMAC) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name      string `json:"name"`
		Algorithm string `json:"algorithm"`
		Cleartext string `json:"cleartext"`
		Key       string `json:"key"`
	}{h.Name(), h.Algorithm, hexOf(h.Cleartext), hexOf(h.Key)})
}

// CMAC computes a cipher-based MAC of Cleartext under Cipher and Key.
type CMAC struct {
	base
	Cleartext []byte
	Key       []byte
	Cipher    string
}

func (c *CMAC) Name() string              { return "CMAC" }
func (c *CMAC) GetAlgorithmString() string { return c.Cipher }
func (c *CMAC) ToString() string {
	return fmt.Sprintf("CMAC(%s, cleartext=%s, key=%s)", c.Cipher, hexOf(c.Cleartext), hexOf(c.Key))
}
func (c *CMAC) ToJSON() ([]byte, error) {
	return marshal(struct {
		Name      string `json:"name"`
		Cipher    string `json:"cipher"`
		Cleartext string `json:"cleartext"`
		Key       string `json:"key"`
	}{c.Name(), c.Cipher, hexOf(c.Cleartext), hexOf(c.Key)})
}
