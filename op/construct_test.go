package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/cryptofuzz-core/datasource"
)

func lenPrefixed(b []byte) []byte {
	n := uint32(len(b))
	prefix := []byte{byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	return append(prefix, b...)
}

func TestNewDigestReadsCleartextThenAlgorithm(t *testing.T) {
	buf := append([]byte{}, lenPrefixed([]byte("hello"))...)
	buf = append(buf, lenPrefixed([]byte("SHA-256"))...)
	ds := datasource.NewByteStream(buf)

	d, err := NewDigest(ds, []byte{0x42})
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), d.Cleartext)
	assert.Equal(t, "SHA-256", d.Algorithm)
	assert.Equal(t, []byte{0x42}, d.Modifier())
}

func TestNewDigestPropagatesInsufficientData(t *testing.T) {
	ds := datasource.NewByteStream([]byte{0x01})
	_, err := NewDigest(ds, nil)
	assert.ErrorIs(t, err, datasource.ErrInsufficientData)
}

func TestNewBignumCalcReadsFourFields(t *testing.T) {
	buf := append([]byte{}, lenPrefixed([]byte("Add"))...)
	buf = append(buf, lenPrefixed([]byte("1"))...)
	buf = append(buf, lenPrefixed([]byte("2"))...)
	buf = append(buf, lenPrefixed([]byte("0"))...)
	ds := datasource.NewByteStream(buf)

	b, err := NewBignumCalc(ds, nil)
	require.NoError(t, err)
	assert.Equal(t, CalcAdd, b.CalcOp)
	assert.Equal(t, "1", b.BN0)
	assert.Equal(t, "2", b.BN1)
	assert.Nil(t, b.Modulo)
}

func TestNewMiscReadsOperation(t *testing.T) {
	ds := datasource.NewByteStream(lenPrefixed([]byte("OpName")))
	m, err := NewMisc(ds, nil)
	require.NoError(t, err)
	assert.Equal(t, "OpName", m.Operation)
}
