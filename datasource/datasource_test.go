package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteStreamSequentialReads(t *testing.T) {
	buf := []byte{0x01, 0x2a, 0x00, 0x00, 0x00, 0x04, 0xde, 0xad, 0xbe, 0xef}
	s := NewByteStream(buf)

	b, err := s.GetBool()
	require.NoError(t, err)
	assert.True(t, b)

	n, err := s.GetByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x2a), n)

	data, err := s.GetData(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, data)
}

func TestByteStreamInsufficientData(t *testing.T) {
	s := NewByteStream([]byte{0x01})
	_, err := s.GetUint64()
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestGetDataClampsToMax(t *testing.T) {
	buf := append([]byte{0x10, 0x00, 0x00, 0x00}, make([]byte, 16)...)
	s := NewByteStream(buf)
	data, err := s.GetData(0, 4)
	require.NoError(t, err)
	assert.Len(t, data, 4)
}

func TestGetDataEnforcesMin(t *testing.T) {
	buf := []byte{0x01, 0x00, 0x00, 0x00, 0xff}
	s := NewByteStream(buf)
	_, err := s.GetData(2, 0)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestGetDataClampsLengthToRemaining(t *testing.T) {
	buf := []byte{0xff, 0xff, 0xff, 0xff, 0x01, 0x02}
	s := NewByteStream(buf)
	data, err := s.GetData(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, data)
}

func TestGetUint32LittleEndian(t *testing.T) {
	s := NewByteStream([]byte{0x01, 0x00, 0x00, 0x00})
	n, err := s.GetUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), n)
}
