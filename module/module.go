// Package module defines the uniform backend contract: one method per
// operation variant, each returning an optional result, plus a registry of
// loaded backends addressed by 64-bit ID.
package module

import "github.com/ethereum/cryptofuzz-core/op"

// Module is a concrete cryptographic backend. Implementations must be
// stateless with respect to core correctness (internal caching is fine);
// the core never observes a module's internal state, only its per-call
// results.
type Module interface {
	ID() uint64
	Name() string
	// SupportsModularBignumCalc reports whether OpBignumCalc honors a
	// non-nil Modulo field.
	SupportsModularBignumCalc() bool

	OpDigest(*op.Digest) (op.Result, bool)
	OpHMAC(*op.HMAC) (op.Result, bool)
	OpCMAC(*op.CMAC) (op.Result, bool)
	OpSymmetricEncrypt(*op.SymmetricEncrypt) (op.Result, bool)
	OpSymmetricDecrypt(*op.SymmetricDecrypt) (op.Result, bool)
	OpKDFPBKDF1(*op.KDFPBKDF1) (op.Result, bool)
	OpKDFPBKDF2(*op.KDFPBKDF2) (op.Result, bool)
	OpKDFScrypt(*op.KDFScrypt) (op.Result, bool)
	OpKDFHKDF(*op.KDFHKDF) (op.Result, bool)
	OpKDFBcrypt(*op.KDFBcrypt) (op.Result, bool)
	OpKDFArgon2(*op.KDFArgon2) (op.Result, bool)
	OpKDFTLS1PRF(*op.KDFTLS1PRF) (op.Result, bool)
	OpKDFPKCS12(*op.KDFPKCS12) (op.Result, bool)
	OpKDFSSH(*op.KDFSSH) (op.Result, bool)
	OpKDFX963(*op.KDFX963) (op.Result, bool)
	OpKDFSP80008A(*op.KDFSP80008A) (op.Result, bool)
	OpECCPrivateToPublic(*op.ECCPrivateToPublic) (op.Result, bool)
	OpECCValidatePubkey(*op.ECCValidatePubkey) (op.Result, bool)
	OpECCGenerateKeyPair(*op.ECCGenerateKeyPair) (op.Result, bool)
	OpECDSASign(*op.ECDSASign) (op.Result, bool)
	OpECDSAVerify(*op.ECDSAVerify) (op.Result, bool)
	OpECDHDerive(*op.ECDHDerive) (op.Result, bool)
	OpECIESEncrypt(*op.ECIESEncrypt) (op.Result, bool)
	OpECIESDecrypt(*op.ECIESDecrypt) (op.Result, bool)
	OpDHDerive(*op.DHDerive) (op.Result, bool)
	OpDHGenerateKeyPair(*op.DHGenerateKeyPair) (op.Result, bool)
	OpBignumCalc(*op.BignumCalc) (op.Result, bool)
	OpBLSPrivateToPublic(*op.BLSPrivateToPublic) (op.Result, bool)
	OpBLSSign(*op.BLSSign) (op.Result, bool)
	OpBLSVerify(*op.BLSVerify) (op.Result, bool)
	OpBLSPairing(*op.BLSPairing) (op.Result, bool)
	OpBLSHashToG1(*op.BLSHashToG1) (op.Result, bool)
	OpBLSHashToG2(*op.BLSHashToG2) (op.Result, bool)
	OpBLSIsG1OnCurve(*op.BLSIsG1OnCurve) (op.Result, bool)
	OpBLSIsG2OnCurve(*op.BLSIsG2OnCurve) (op.Result, bool)
	OpBLSGenerateKeyPair(*op.BLSGenerateKeyPair) (op.Result, bool)
	OpBLSDecompressG1(*op.BLSDecompressG1) (op.Result, bool)
	OpBLSCompressG1(*op.BLSCompressG1) (op.Result, bool)
	OpBLSDecompressG2(*op.BLSDecompressG2) (op.Result, bool)
	OpBLSCompressG2(*op.BLSCompressG2) (op.Result, bool)
	OpSR25519Verify(*op.SR25519Verify) (op.Result, bool)
	OpMisc(*op.Misc) (op.Result, bool)
}

// Registry is the process-wide, read-only collection of loaded modules,
// addressed by ID. The core only ever holds borrowed references into it;
// modules are never mutated once registered.
type Registry struct {
	byID map[uint64]Module
	// order preserves registration order for deterministic broadcast fill.
	order []uint64
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[uint64]Module)}
}

// Register adds m to the registry. Registering the same ID twice replaces
// the prior entry but preserves its position in iteration order.
func (r *Registry) Register(m Module) {
	id := m.ID()
	if _, exists := r.byID[id]; !exists {
		r.order = append(r.order, id)
	}
	r.byID[id] = m
}

// Get returns the module for id, or (nil, false) if none is loaded.
func (r *Registry) Get(id uint64) (Module, bool) {
	m, ok := r.byID[id]
	return m, ok
}

// All returns every loaded module in registration order.
func (r *Registry) All() []Module {
	out := make([]Module, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// IDs returns every loaded module's ID in registration order.
func (r *Registry) IDs() []uint64 {
	return append([]uint64{}, r.order...)
}
