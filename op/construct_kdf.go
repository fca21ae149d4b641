package op

import "github.com/ethereum/cryptofuzz-core/datasource"

func newKDFBase(ds datasource.Datasource, modifier []byte) (kdfBase, error) {
	password, err := ds.GetData(0, 4096)
	if err != nil {
		return kdfBase{}, err
	}
	salt, err := ds.GetData(0, 4096)
	if err != nil {
		return kdfBase{}, err
	}
	keySize, err := ds.GetUint32()
	if err != nil {
		return kdfBase{}, err
	}
	algorithm, err := getString(ds, 64)
	if err != nil {
		return kdfBase{}, err
	}
	return kdfBase{base{modifier}, password, salt, uint64(keySize), algorithm}, nil
}

func NewKDFPBKDF1(ds datasource.Datasource, modifier []byte) (*KDFPBKDF1, error) {
	kb, err := newKDFBase(ds, modifier)
	if err != nil {
		return nil, err
	}
	iter, err := ds.GetUint32()
	if err != nil {
		return nil, err
	}
	return &KDFPBKDF1{kb, uint64(iter)}, nil
}

func NewKDFPBKDF2(ds datasource.Datasource, modifier []byte) (*KDFPBKDF2, error) {
	kb, err := newKDFBase(ds, modifier)
	if err != nil {
		return nil, err
	}
	iter, err := ds.GetUint32()
	if err != nil {
		return nil, err
	}
	return &KDFPBKDF2{kb, uint64(iter)}, nil
}

func NewKDFScrypt(ds datasource.Datasource, modifier []byte) (*KDFScrypt, error) {
	kb, err := newKDFBase(ds, modifier)
	if err != nil {
		return nil, err
	}
	n, err := ds.GetUint32()
	if err != nil {
		return nil, err
	}
	r, err := ds.GetUint32()
	if err != nil {
		return nil, err
	}
	p, err := ds.GetUint32()
	if err != nil {
		return nil, err
	}
	return &KDFScrypt{kb, uint64(n), uint64(r), uint64(p)}, nil
}

func NewKDFHKDF(ds datasource.Datasource, modifier []byte) (*KDFHKDF, error) {
	kb, err := newKDFBase(ds, modifier)
	if err != nil {
		return nil, err
	}
	info, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	return &KDFHKDF{kb, info}, nil
}

func NewKDFBcrypt(ds datasource.Datasource, modifier []byte) (*KDFBcrypt, error) {
	kb, err := newKDFBase(ds, modifier)
	if err != nil {
		return nil, err
	}
	cost, err := ds.GetUint32()
	if err != nil {
		return nil, err
	}
	return &KDFBcrypt{kb, uint64(cost)}, nil
}

func NewKDFArgon2(ds datasource.Datasource, modifier []byte) (*KDFArgon2, error) {
	kb, err := newKDFBase(ds, modifier)
	if err != nil {
		return nil, err
	}
	iterations, err := ds.GetUint32()
	if err != nil {
		return nil, err
	}
	memory, err := ds.GetUint32()
	if err != nil {
		return nil, err
	}
	threads, err := ds.GetUint32()
	if err != nil {
		return nil, err
	}
	typ, err := getString(ds, 4)
	if err != nil {
		return nil, err
	}
	return &KDFArgon2{kb, iterations, memory, threads, typ}, nil
}

func NewKDFTLS1PRF(ds datasource.Datasource, modifier []byte) (*KDFTLS1PRF, error) {
	kb, err := newKDFBase(ds, modifier)
	if err != nil {
		return nil, err
	}
	return &KDFTLS1PRF{kb}, nil
}

func NewKDFPKCS12(ds datasource.Datasource, modifier []byte) (*KDFPKCS12, error) {
	kb, err := newKDFBase(ds, modifier)
	if err != nil {
		return nil, err
	}
	iter, err := ds.GetUint32()
	if err != nil {
		return nil, err
	}
	id, err := ds.GetUint32()
	if err != nil {
		return nil, err
	}
	return &KDFPKCS12{kb, uint64(iter), uint64(id)}, nil
}

func NewKDFSSH(ds datasource.Datasource, modifier []byte) (*KDFSSH, error) {
	kb, err := newKDFBase(ds, modifier)
	if err != nil {
		return nil, err
	}
	shared, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	exchangeHash, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	sessionID, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	typ, err := ds.GetByte()
	if err != nil {
		return nil, err
	}
	return &KDFSSH{kb, shared, exchangeHash, sessionID, typ}, nil
}

func NewKDFX963(ds datasource.Datasource, modifier []byte) (*KDFX963, error) {
	kb, err := newKDFBase(ds, modifier)
	if err != nil {
		return nil, err
	}
	info, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	return &KDFX963{kb, info}, nil
}

func NewKDFSP80008A(ds datasource.Datasource, modifier []byte) (*KDFSP80008A, error) {
	kb, err := newKDFBase(ds, modifier)
	if err != nil {
		return nil, err
	}
	label, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	context, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	return &KDFSP80008A{kb, label, context}, nil
}
