package op

import "github.com/ethereum/cryptofuzz-core/datasource"

// Each New<Variant> function is the constructor referenced by spec §4.1:
// (Datasource, modifier) -> Self, consuming a deterministic prefix of the
// byte stream. All data fields are read via GetData; scalars via the
// matching sized accessor.

func getString(ds datasource.Datasource, max uint64) (string, error) {
	b, err := ds.GetData(0, max)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func NewDigest(ds datasource.Datasource, modifier []byte) (*Digest, error) {
	cleartext, err := ds.GetData(0, 0)
	if err != nil {
		return nil, err
	}
	algorithm, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	return &Digest{base: base{modifier}, Cleartext: cleartext, Algorithm: algorithm}, nil
}

func NewHMAC(ds datasource.Datasource, modifier []byte) (*HMAC, error) {
	cleartext, err := ds.GetData(0, 0)
	if err != nil {
		return nil, err
	}
	key, err := ds.GetData(0, 0)
	if err != nil {
		return nil, err
	}
	algorithm, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	return &HMAC{base{modifier}, cleartext, key, algorithm}, nil
}

func NewCMAC(ds datasource.Datasource, modifier []byte) (*CMAC, error) {
	cleartext, err := ds.GetData(0, 0)
	if err != nil {
		return nil, err
	}
	key, err := ds.GetData(0, 0)
	if err != nil {
		return nil, err
	}
	cipher, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	return &CMAC{base{modifier}, cleartext, key, cipher}, nil
}

func NewSymmetricEncrypt(ds datasource.Datasource, modifier []byte) (*SymmetricEncrypt, error) {
	cleartext, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	key, err := ds.GetData(0, 64)
	if err != nil {
		return nil, err
	}
	iv, err := ds.GetData(0, 64)
	if err != nil {
		return nil, err
	}
	aad, err := ds.GetData(0, 64)
	if err != nil {
		return nil, err
	}
	cipher, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	ctSize, err := ds.GetUint32()
	if err != nil {
		return nil, err
	}
	hasTag, err := ds.GetBool()
	if err != nil {
		return nil, err
	}
	var tagSize *uint64
	if hasTag {
		ts, err := ds.GetUint32()
		if err != nil {
			return nil, err
		}
		v := uint64(ts)
		tagSize = &v
	}
	return &SymmetricEncrypt{base{modifier}, cleartext, key, iv, aad, cipher, uint64(ctSize), tagSize}, nil
}

func NewSymmetricDecrypt(ds datasource.Datasource, modifier []byte) (*SymmetricDecrypt, error) {
	ciphertext, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	tag, err := ds.GetData(0, 64)
	if err != nil {
		return nil, err
	}
	key, err := ds.GetData(0, 64)
	if err != nil {
		return nil, err
	}
	iv, err := ds.GetData(0, 64)
	if err != nil {
		return nil, err
	}
	aad, err := ds.GetData(0, 64)
	if err != nil {
		return nil, err
	}
	cipher, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	ctSize, err := ds.GetUint32()
	if err != nil {
		return nil, err
	}
	return &SymmetricDecrypt{base{modifier}, ciphertext, tag, key, iv, aad, cipher, uint64(ctSize)}, nil
}

func NewECCPrivateToPublic(ds datasource.Datasource, modifier []byte) (*ECCPrivateToPublic, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	priv, err := ds.GetData(1, 4096)
	if err != nil {
		return nil, err
	}
	return &ECCPrivateToPublic{base{modifier}, curve, priv}, nil
}

func NewECCValidatePubkey(ds datasource.Datasource, modifier []byte) (*ECCValidatePubkey, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	x, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	y, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	return &ECCValidatePubkey{base{modifier}, curve, x, y}, nil
}

func NewECCGenerateKeyPair(ds datasource.Datasource, modifier []byte) (*ECCGenerateKeyPair, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	return &ECCGenerateKeyPair{base{modifier}, curve}, nil
}

func NewECDSASign(ds datasource.Datasource, modifier []byte) (*ECDSASign, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	priv, err := ds.GetData(1, 4096)
	if err != nil {
		return nil, err
	}
	cleartext, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	useRandom, err := ds.GetBool()
	if err != nil {
		return nil, err
	}
	var nonce []byte
	if !useRandom {
		nonce, err = ds.GetData(0, 64)
		if err != nil {
			return nil, err
		}
	}
	return &ECDSASign{base{modifier}, curve, priv, cleartext, useRandom, nonce}, nil
}

func NewECDSAVerify(ds datasource.Datasource, modifier []byte) (*ECDSAVerify, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	pubX, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	pubY, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	cleartext, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	r, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	s, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	return &ECDSAVerify{base{modifier}, curve, pubX, pubY, cleartext, r, s}, nil
}

func NewECDHDerive(ds datasource.Datasource, modifier []byte) (*ECDHDerive, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	pub1x, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	pub1y, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	pub2x, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	pub2y, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	return &ECDHDerive{base{modifier}, curve, pub1x, pub1y, pub2x, pub2y}, nil
}

func NewECIESEncrypt(ds datasource.Datasource, modifier []byte) (*ECIESEncrypt, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	cipher, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	pubX, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	pubY, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	cleartext, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	return &ECIESEncrypt{base{modifier}, curve, cipher, pubX, pubY, cleartext}, nil
}

func NewECIESDecrypt(ds datasource.Datasource, modifier []byte) (*ECIESDecrypt, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	cipher, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	priv, err := ds.GetData(1, 4096)
	if err != nil {
		return nil, err
	}
	ciphertext, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	return &ECIESDecrypt{base{modifier}, curve, cipher, priv, ciphertext}, nil
}

func NewDHDerive(ds datasource.Datasource, modifier []byte) (*DHDerive, error) {
	prime, err := getString(ds, 4096)
	if err != nil {
		return nil, err
	}
	gen, err := getString(ds, 4096)
	if err != nil {
		return nil, err
	}
	priv, err := getString(ds, 4096)
	if err != nil {
		return nil, err
	}
	pub, err := getString(ds, 4096)
	if err != nil {
		return nil, err
	}
	return &DHDerive{base{modifier}, prime, gen, priv, pub}, nil
}

func NewDHGenerateKeyPair(ds datasource.Datasource, modifier []byte) (*DHGenerateKeyPair, error) {
	prime, err := getString(ds, 4096)
	if err != nil {
		return nil, err
	}
	gen, err := getString(ds, 4096)
	if err != nil {
		return nil, err
	}
	return &DHGenerateKeyPair{base{modifier}, prime, gen}, nil
}

func NewBignumCalc(ds datasource.Datasource, modifier []byte) (*BignumCalc, error) {
	calcOp, err := getString(ds, 32)
	if err != nil {
		return nil, err
	}
	bn0, err := getString(ds, KMaxBignumSizeConstruct)
	if err != nil {
		return nil, err
	}
	bn1, err := getString(ds, KMaxBignumSizeConstruct)
	if err != nil {
		return nil, err
	}
	bn2, err := getString(ds, KMaxBignumSizeConstruct)
	if err != nil {
		return nil, err
	}
	return &BignumCalc{base{modifier}, CalcOp(calcOp), bn0, bn1, bn2, nil}, nil
}

// KMaxBignumSizeConstruct bounds the decimal-string length read by the
// BignumCalc constructor; the guard's own kMaxBignumSize cap (spec §4.4) is
// enforced separately and may be tighter per-operand.
const KMaxBignumSizeConstruct = 2048

func NewSR25519Verify(ds datasource.Datasource, modifier []byte) (*SR25519Verify, error) {
	pub, err := ds.GetData(0, 64)
	if err != nil {
		return nil, err
	}
	cleartext, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	r, err := ds.GetData(0, 64)
	if err != nil {
		return nil, err
	}
	s, err := ds.GetData(0, 64)
	if err != nil {
		return nil, err
	}
	return &SR25519Verify{base{modifier}, pub, cleartext, r, s}, nil
}

func NewMisc(ds datasource.Datasource, modifier []byte) (*Misc, error) {
	operation, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	return &Misc{base{modifier}, operation}, nil
}
