package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/cryptofuzz-core/datasource"
)

func TestDigestConstructorReturnsOperationInterface(t *testing.T) {
	buf := append([]byte{}, lenPrefixed([]byte("hi"))...)
	buf = append(buf, lenPrefixed([]byte("SHA-256"))...)
	ds := datasource.NewByteStream(buf)

	o, err := DigestConstructor(ds, nil)
	require.NoError(t, err)
	d, ok := o.(*Digest)
	require.True(t, ok)
	assert.Equal(t, "SHA-256", d.Algorithm)
}

func TestMiscConstructorReturnsOperationInterface(t *testing.T) {
	ds := datasource.NewByteStream(lenPrefixed([]byte("OpName")))
	o, err := MiscConstructor(ds, nil)
	require.NoError(t, err)
	_, ok := o.(*Misc)
	assert.True(t, ok)
}
