// Package testoracle defines the opaque per-operation semantic test hook
// (tests::test in the original source). The core treats it as a plug-in:
// it may itself abort, but otherwise its internals are out of scope here.
package testoracle

import "github.com/ethereum/cryptofuzz-core/op"

// Oracle is invoked once per present-or-absent result when Options.DisableTests
// is false. An error return is surfaced to the caller for logging; the
// oracle itself decides whether a given violation warrants a hard abort by
// calling into the executor's abort path (outside this package's concern).
type Oracle interface {
	Test(o op.Operation, result op.Result, present bool) error
}

// NoOp is the default Oracle: it never rejects a result. Matches "plug-in
// hook, out of scope" — a real fuzzer harness supplies its own.
type NoOp struct{}

func (NoOp) Test(op.Operation, op.Result, bool) error { return nil }
