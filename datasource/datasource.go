// Package datasource defines the byte-stream-to-typed-field interface
// consumed by the executor and operation constructors, plus a concrete
// implementation used by tests and by the ECDH operation-synthesis hook.
package datasource

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInsufficientData is returned when the stream is asked for more bytes
// than remain. The executor's batch-assembly loop treats this as "no more
// operations this run," not as a bug (spec error category 3: input
// violation).
var ErrInsufficientData = errors.New("datasource: insufficient data")

// Datasource is the consumed interface: deterministic accessors that derive
// typed fields from a byte stream. Same bytes always yield the same values.
type Datasource interface {
	GetBool() (bool, error)
	GetUint64() (uint64, error)
	GetUint32() (uint32, error)
	GetByte() (byte, error)
	// GetData returns a length-prefixed byte string. min/max optionally
	// bound the accepted length; pass 0 for both to accept any length up to
	// what remains in the stream.
	GetData(min, max uint64) ([]byte, error)
}

// ByteStream is a Datasource reading sequentially off a fixed []byte
// cursor, grounded in the teacher's rlp.Stream reading style: sequential
// reads, returning a distinguished error on under-run instead of panicking.
type ByteStream struct {
	buf []byte
	pos int
}

// NewByteStream constructs a ByteStream over buf. The stream does not copy
// buf; callers must not mutate it concurrently with reads.
func NewByteStream(buf []byte) *ByteStream {
	return &ByteStream{buf: buf}
}

func (s *ByteStream) remaining() int { return len(s.buf) - s.pos }

func (s *ByteStream) readN(n int) ([]byte, error) {
	if s.remaining() < n {
		return nil, ErrInsufficientData
	}
	out := s.buf[s.pos : s.pos+n]
	s.pos += n
	return out, nil
}

func (s *ByteStream) GetBool() (bool, error) {
	b, err := s.GetByte()
	if err != nil {
		return false, err
	}
	return b&1 == 1, nil
}

func (s *ByteStream) GetByte() (byte, error) {
	b, err := s.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *ByteStream) GetUint32() (uint32, error) {
	b, err := s.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (s *ByteStream) GetUint64() (uint64, error) {
	b, err := s.readN(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// GetData reads a uint32 length prefix (clamped to remaining stream length)
// followed by that many bytes, enforcing [min, max] when either is nonzero.
func (s *ByteStream) GetData(min, max uint64) ([]byte, error) {
	n, err := s.GetUint32()
	if err != nil {
		return nil, err
	}
	length := uint64(n)
	if uint64(s.remaining()) < length {
		length = uint64(s.remaining())
	}
	if max > 0 && length > max {
		length = max
	}
	data, err := s.readN(int(length))
	if err != nil {
		return nil, err
	}
	if min > 0 && uint64(len(data)) < min {
		return nil, fmt.Errorf("datasource: %w: wanted at least %d bytes, got %d", ErrInsufficientData, min, len(data))
	}
	return data, nil
}
