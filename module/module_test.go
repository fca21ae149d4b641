package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stub struct {
	Base
	id   uint64
	name string
}

func (s stub) ID() uint64   { return s.id }
func (s stub) Name() string { return s.name }

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(stub{id: 3, name: "c"})
	r.Register(stub{id: 1, name: "a"})
	r.Register(stub{id: 2, name: "b"})

	assert.Equal(t, []uint64{3, 1, 2}, r.IDs())

	names := make([]string, 0, 3)
	for _, m := range r.All() {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

func TestRegistryReplaceKeepsPosition(t *testing.T) {
	r := NewRegistry()
	r.Register(stub{id: 1, name: "a"})
	r.Register(stub{id: 2, name: "b"})
	r.Register(stub{id: 1, name: "a2"})

	assert.Equal(t, []uint64{1, 2}, r.IDs())
	m, ok := r.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "a2", m.Name())
}

func TestRegistryGetMissing(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Get(99)
	assert.False(t, ok)
}

func TestBaseStubsAreAbsent(t *testing.T) {
	var b Base
	_, ok := b.OpDigest(nil)
	assert.False(t, ok)
	assert.False(t, b.SupportsModularBignumCalc())
}

func TestStubEmbedsBaseForUnimplementedOps(t *testing.T) {
	s := stub{id: 1, name: "a"}
	_, ok := s.OpBLSVerify(nil)
	assert.False(t, ok)
}
