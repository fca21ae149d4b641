package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/cryptofuzz-core/corpus"
	"github.com/ethereum/cryptofuzz-core/datasource"
	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
	"github.com/ethereum/cryptofuzz-core/options"
)

// echoModule returns the digest's own cleartext, optionally flipped so two
// registered instances can disagree on purpose.
type echoModule struct {
	module.Base
	id    uint64
	name  string
	flip  bool
}

func (m *echoModule) ID() uint64   { return m.id }
func (m *echoModule) Name() string { return m.name }

func (m *echoModule) OpDigest(o *op.Digest) (op.Result, bool) {
	out := append([]byte{}, o.Cleartext...)
	if m.flip && len(out) > 0 {
		out[0] ^= 0xff
	}
	return op.Digest{Value: out}, true
}

// scriptedDigest builds a single Digest op from a fixed cleartext,
// ignoring the datasource, so tests can drive the pipeline without hand
// -encoding a byte stream.
func scriptedDigest(cleartext []byte) NewOpFunc {
	first := true
	return func(ds datasource.Datasource, modifier []byte) (op.Operation, error) {
		if !first {
			return nil, datasource.ErrInsufficientData
		}
		first = false
		return &op.Digest{Algorithm: "SHA-256", Cleartext: cleartext}, nil
	}
}

func newScriptedStream(t *testing.T, moduleIDs []uint64) datasource.Datasource {
	t.Helper()
	buf := []byte{}
	for i, id := range moduleIDs {
		var idBytes [8]byte
		for j := 0; j < 8; j++ {
			idBytes[j] = byte(id >> (8 * j))
		}
		buf = append(buf, idBytes[:]...)
		if i == len(moduleIDs)-1 {
			buf = append(buf, 0x00) // stop
		} else {
			buf = append(buf, 0x01) // continue
		}
	}
	return datasource.NewByteStream(buf)
}

func TestRunDispatchesToRegisteredModule(t *testing.T) {
	registry := module.NewRegistry()
	mod := &echoModule{id: 1, name: "echo"}
	registry.Register(mod)

	ex := New(scriptedDigest([]byte("hi")), registry, options.New(), corpus.NewPools())
	aborted := false
	ex.AbortFunc = func() { aborted = true }

	ds := newScriptedStream(t, []uint64{1})
	ex.Run(ds)

	assert.False(t, aborted)
}

func TestRunAbortsOnDifferentialMismatch(t *testing.T) {
	registry := module.NewRegistry()
	registry.Register(&echoModule{id: 1, name: "a"})
	registry.Register(&echoModule{id: 2, name: "b", flip: true})

	ex := New(scriptedDigest([]byte("hi")), registry, options.New(), corpus.NewPools())
	aborted := false
	ex.AbortFunc = func() { aborted = true }

	ds := newScriptedStream(t, []uint64{1})
	ex.Run(ds)

	assert.True(t, aborted, "broadcast fill should have handed the op to module b too, and its flipped digest should mismatch")
}

func TestRunSkipsCompareWhenNoCompareSet(t *testing.T) {
	registry := module.NewRegistry()
	registry.Register(&echoModule{id: 1, name: "a"})
	registry.Register(&echoModule{id: 2, name: "b", flip: true})

	opts := options.New()
	opts.NoCompare = true
	ex := New(scriptedDigest([]byte("hi")), registry, opts, corpus.NewPools())
	aborted := false
	ex.AbortFunc = func() { aborted = true }

	ds := newScriptedStream(t, []uint64{1})
	ex.Run(ds)

	assert.False(t, aborted)
}

func TestRunSkipsWhenBelowMinModules(t *testing.T) {
	registry := module.NewRegistry()
	registry.Register(&echoModule{id: 1, name: "a"})

	opts := options.New()
	opts.MinModules = 5
	ex := New(scriptedDigest([]byte("hi")), registry, opts, corpus.NewPools())
	aborted := false
	ex.AbortFunc = func() { aborted = true }

	ds := newScriptedStream(t, []uint64{1})
	ex.Run(ds)

	assert.False(t, aborted)
}

func TestPerturbModifierEmptyBecomes512Ones(t *testing.T) {
	out := perturbModifier(nil)
	require.Len(t, out, 512)
	for _, b := range out {
		assert.Equal(t, byte(1), b)
	}
}

func TestPerturbModifierWrapsAround(t *testing.T) {
	out := perturbModifier([]byte{0xff, 0x01})
	assert.Equal(t, []byte{0x00, 0x02}, out)
}
