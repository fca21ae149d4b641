// Package op defines the tagged-union operation model dispatched by the
// executor: one struct per supported primitive, each carrying its own typed
// fields plus the common modifier seed used to perturb backend-internal
// nondeterminism.
package op

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/cryptofuzz-core/common/hexutil"
)

// Operation is implemented by every operation variant.
type Operation interface {
	// Name returns the variant tag, e.g. "Digest".
	Name() string
	// GetAlgorithmString returns the primary algorithm identifier for this
	// operation, e.g. "SHA-256".
	GetAlgorithmString() string
	// ToString renders a human-readable diagnostic line.
	ToString() string
	// ToJSON renders the operation for the optional append-only result log.
	ToJSON() ([]byte, error)
	// Modifier returns the opaque perturbation seed.
	Modifier() []byte
	// SetModifier replaces the perturbation seed (used by modifier
	// perturbation in the executor's per-entry dispatch step).
	SetModifier([]byte)
}

// base is embedded by every concrete operation and carries the common
// modifier field plus its accessors.
type base struct {
	ModifierBytes []byte
}

func (b *base) Modifier() []byte { return b.ModifierBytes }

func (b *base) SetModifier(m []byte) { b.ModifierBytes = m }

func hexOf(b []byte) string { return hexutil.Encode(b) }

func marshal(v interface{}) ([]byte, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("op: marshal: %w", err)
	}
	return out, nil
}

// MaxOperationsDefault bounds the per-invocation repetition count for
// variants that do not declare a tighter cap, guarding against
// quadratic-time backend calls dominating a single fuzzer iteration.
const MaxOperationsDefault = 10000

// MaxOperations returns the per-invocation repetition bound for op. Most
// variants use MaxOperationsDefault; a handful of expensive primitives
// declare a tighter constant below.
func MaxOperations(o Operation) uint64 {
	switch o.(type) {
	case *BLSPairing, *BLSHashToG1, *BLSHashToG2:
		return 100
	case *ECCGenerateKeyPair, *DHGenerateKeyPair:
		return 1000
	default:
		return MaxOperationsDefault
	}
}
