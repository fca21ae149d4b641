package op

// Result is the common interface satisfied by every operation's paired
// result type. The executor never holds a typed result directly; it only
// ever needs equality for the differential comparator.
type Result interface {
	Equal(other Result) bool
}

// ByteResult is implemented by result types whose payload is a flat byte
// buffer (digests, ciphertexts, signatures encoded as raw bytes, ...). The
// postprocessor's memory-safety probe touches every byte of any result that
// implements it.
type ByteResult interface {
	Result
	Bytes() []byte
}

// MAC is the paired result of HMAC and CMAC.
type MAC struct{ Value []byte }

func (m MAC) Bytes() []byte { return m.Value }
func (m MAC) Equal(other Result) bool {
	o, ok := other.(MAC)
	if !ok {
		return false
	}
	return bytesEqual(m.Value, o.Value)
}

// Ciphertext is the paired result of SymmetricEncrypt.
type Ciphertext struct {
	CT  []byte
	Tag []byte // absent (nil) when the cipher produces no tag
}

func (c Ciphertext) Bytes() []byte { return append(append([]byte{}, c.CT...), c.Tag...) }
func (c Ciphertext) Equal(other Result) bool {
	o, ok := other.(Ciphertext)
	if !ok {
		return false
	}
	return bytesEqual(c.CT, o.CT) && bytesEqual(c.Tag, o.Tag)
}

// Cleartext is the paired result of SymmetricDecrypt.
type Cleartext struct{ Value []byte }

func (c Cleartext) Bytes() []byte { return c.Value }
func (c Cleartext) Equal(other Result) bool {
	o, ok := other.(Cleartext)
	if !ok {
		return false
	}
	return bytesEqual(c.Value, o.Value)
}

// Key is a generic byte-string result shared by the KDF family.
type Key struct{ Value []byte }

func (k Key) Bytes() []byte { return k.Value }
func (k Key) Equal(other Result) bool {
	o, ok := other.(Key)
	if !ok {
		return false
	}
	return bytesEqual(k.Value, o.Value)
}

// ECCPublicKey is the paired result of ECC_PrivateToPublic.
type ECCPublicKey struct{ X, Y []byte }

func (p ECCPublicKey) Bytes() []byte { return append(append([]byte{}, p.X...), p.Y...) }
func (p ECCPublicKey) Equal(other Result) bool {
	o, ok := other.(ECCPublicKey)
	if !ok {
		return false
	}
	return bytesEqual(p.X, o.X) && bytesEqual(p.Y, o.Y)
}

// Bool is a boolean result shared by verify/validate style operations.
type Bool struct{ Value bool }

func (b Bool) Equal(other Result) bool {
	o, ok := other.(Bool)
	if !ok {
		return false
	}
	return b.Value == o.Value
}

// ECDSASignature is the paired result of ECDSA_Sign.
type ECDSASignature struct {
	R, S      []byte
	PublicKeyX, PublicKeyY []byte
}

func (s ECDSASignature) Bytes() []byte {
	out := append([]byte{}, s.R...)
	out = append(out, s.S...)
	out = append(out, s.PublicKeyX...)
	out = append(out, s.PublicKeyY...)
	return out
}
func (s ECDSASignature) Equal(other Result) bool {
	o, ok := other.(ECDSASignature)
	if !ok {
		return false
	}
	return bytesEqual(s.R, o.R) && bytesEqual(s.S, o.S) &&
		bytesEqual(s.PublicKeyX, o.PublicKeyX) && bytesEqual(s.PublicKeyY, o.PublicKeyY)
}

// ECDHSecret is the paired result of ECDH_Derive.
type ECDHSecret struct{ Value []byte }

func (e ECDHSecret) Bytes() []byte { return e.Value }
func (e ECDHSecret) Equal(other Result) bool {
	o, ok := other.(ECDHSecret)
	if !ok {
		return false
	}
	return bytesEqual(e.Value, o.Value)
}

// Bignum is a canonical decimal-string bignum result.
type Bignum struct{ Value string }

func (b Bignum) Equal(other Result) bool {
	o, ok := other.(Bignum)
	if !ok {
		return false
	}
	return b.Value == o.Value
}

// G1Point and G2Point are BLS curve-point results.
type G1Point struct{ X, Y []byte }

func (p G1Point) Bytes() []byte { return append(append([]byte{}, p.X...), p.Y...) }
func (p G1Point) Equal(other Result) bool {
	o, ok := other.(G1Point)
	if !ok {
		return false
	}
	return bytesEqual(p.X, o.X) && bytesEqual(p.Y, o.Y)
}

type G2Point struct{ X0, X1, Y0, Y1 []byte }

func (p G2Point) Bytes() []byte {
	out := append([]byte{}, p.X0...)
	out = append(out, p.X1...)
	out = append(out, p.Y0...)
	out = append(out, p.Y1...)
	return out
}
func (p G2Point) Equal(other Result) bool {
	o, ok := other.(G2Point)
	if !ok {
		return false
	}
	return bytesEqual(p.X0, o.X0) && bytesEqual(p.X1, o.X1) &&
		bytesEqual(p.Y0, o.Y0) && bytesEqual(p.Y1, o.Y1)
}

// BLSSignature is the paired result of BLS_Sign, expressed as a G2 point.
type BLSSignature struct{ G2Point }

// Equal is defined explicitly (rather than relying on the promoted
// G2Point.Equal) because that promoted method asserts other to G2Point,
// which a BLSSignature argument never satisfies.
func (s BLSSignature) Equal(other Result) bool {
	o, ok := other.(BLSSignature)
	if !ok {
		return false
	}
	return s.G2Point.Equal(o.G2Point)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
