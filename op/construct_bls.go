package op

import "github.com/ethereum/cryptofuzz-core/datasource"

func NewBLSPrivateToPublic(ds datasource.Datasource, modifier []byte) (*BLSPrivateToPublic, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	priv, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	return &BLSPrivateToPublic{base{modifier}, curve, priv}, nil
}

func NewBLSSign(ds datasource.Datasource, modifier []byte) (*BLSSign, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	priv, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	cleartext, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	return &BLSSign{base{modifier}, curve, priv, cleartext}, nil
}

func NewBLSVerify(ds datasource.Datasource, modifier []byte) (*BLSVerify, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	pubX, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	pubY, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	sigX0, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	sigX1, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	sigY0, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	sigY1, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	cleartext, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	return &BLSVerify{base{modifier}, curve, pubX, pubY, sigX0, sigX1, sigY0, sigY1, cleartext}, nil
}

func NewBLSPairing(ds datasource.Datasource, modifier []byte) (*BLSPairing, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	g1x, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	g1y, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	g2x0, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	g2x1, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	g2y0, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	g2y1, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	return &BLSPairing{base{modifier}, curve, g1x, g1y, g2x0, g2x1, g2y0, g2y1}, nil
}

func NewBLSHashToG1(ds datasource.Datasource, modifier []byte) (*BLSHashToG1, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	cleartext, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	dst, err := ds.GetData(0, 255)
	if err != nil {
		return nil, err
	}
	return &BLSHashToG1{base{modifier}, curve, cleartext, dst}, nil
}

func NewBLSHashToG2(ds datasource.Datasource, modifier []byte) (*BLSHashToG2, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	cleartext, err := ds.GetData(0, 4096)
	if err != nil {
		return nil, err
	}
	dst, err := ds.GetData(0, 255)
	if err != nil {
		return nil, err
	}
	return &BLSHashToG2{base{modifier}, curve, cleartext, dst}, nil
}

func NewBLSIsG1OnCurve(ds datasource.Datasource, modifier []byte) (*BLSIsG1OnCurve, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	x, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	y, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	return &BLSIsG1OnCurve{base{modifier}, curve, x, y}, nil
}

func NewBLSIsG2OnCurve(ds datasource.Datasource, modifier []byte) (*BLSIsG2OnCurve, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	x0, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	x1, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	y0, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	y1, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	return &BLSIsG2OnCurve{base{modifier}, curve, x0, x1, y0, y1}, nil
}

func NewBLSGenerateKeyPair(ds datasource.Datasource, modifier []byte) (*BLSGenerateKeyPair, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	return &BLSGenerateKeyPair{base{modifier}, curve}, nil
}

func NewBLSDecompressG1(ds datasource.Datasource, modifier []byte) (*BLSDecompressG1, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	compressed, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	return &BLSDecompressG1{base{modifier}, curve, compressed}, nil
}

func NewBLSCompressG1(ds datasource.Datasource, modifier []byte) (*BLSCompressG1, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	x, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	y, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	return &BLSCompressG1{base{modifier}, curve, x, y}, nil
}

func NewBLSDecompressG2(ds datasource.Datasource, modifier []byte) (*BLSDecompressG2, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	compressed, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	return &BLSDecompressG2{base{modifier}, curve, compressed}, nil
}

func NewBLSCompressG2(ds datasource.Datasource, modifier []byte) (*BLSCompressG2, error) {
	curve, err := getString(ds, 64)
	if err != nil {
		return nil, err
	}
	x0, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	x1, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	y0, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	y1, err := getString(ds, 2048)
	if err != nil {
		return nil, err
	}
	return &BLSCompressG2{base{modifier}, curve, x0, x1, y0, y1}, nil
}
