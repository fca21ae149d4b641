// Package executor implements the per-invocation dispatch/compare/
// postprocess pipeline (spec §4.5): batch assembly, broadcast fill, the
// minModules gate, per-entry dispatch with modifier perturbation, and the
// differential comparator.
package executor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/cryptofuzz-core/corpus"
	"github.com/ethereum/cryptofuzz-core/datasource"
	"github.com/ethereum/cryptofuzz-core/log"
	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
	"github.com/ethereum/cryptofuzz-core/options"
	"github.com/ethereum/cryptofuzz-core/policy"
	"github.com/ethereum/cryptofuzz-core/testoracle"
)

// NewOpFunc derives one operation instance from ds, seeded with the given
// modifier. It returns datasource.ErrInsufficientData (or a wrapped form of
// it) when the stream is exhausted — the executor treats that as "no more
// operations this run," not a bug.
type NewOpFunc func(ds datasource.Datasource, modifier []byte) (op.Operation, error)

// batchEntry pairs a derived operation with the module it will be
// dispatched to.
type batchEntry struct {
	ModuleID uint64
	Op       op.Operation
}

// resultEntry pairs a module's outcome for one batch entry, retained for
// the post-dispatch comparator.
type resultEntry struct {
	ModuleName string
	Result     op.Result
	Present    bool
}

// Executor runs the pipeline for a single operation variant (mirroring the
// original source's one-executor-per-template-instantiation design: an
// Executor is constructed once per operation type, e.g. one for Digest, one
// for BignumCalc, and reused across fuzzer invocations).
type Executor struct {
	NewOp    NewOpFunc
	Registry *module.Registry
	Options  *options.Options
	Pools    *corpus.Pools
	Oracle   testoracle.Oracle

	// AbortFunc terminates the process on a differential fault or a failed
	// decrypt round-trip. Defaults to an os.Exit(134) (SIGABRT's
	// conventional shell exit code) after the assertion line is printed and
	// flushed; tests substitute a non-terminating stub.
	AbortFunc func()

	log log.Logger
}

// New constructs an Executor for the given operation constructor.
func New(newOp NewOpFunc, registry *module.Registry, opts *options.Options, pools *corpus.Pools) *Executor {
	if opts == nil {
		opts = options.New()
	}
	return &Executor{
		NewOp:     newOp,
		Registry:  registry,
		Options:   opts,
		Pools:     pools,
		Oracle:    testoracle.NoOp{},
		AbortFunc: func() { os.Exit(134) },
		log:       log.New("component", "executor"),
	}
}

// Run executes one full invocation of the pipeline against ds.
func (e *Executor) Run(ds datasource.Datasource) {
	batch := e.assembleBatch(ds)
	batch = e.broadcastFill(batch)

	if len(batch) == 0 || len(batch) < e.Options.MinModules {
		return
	}

	results := make([]resultEntry, 0, len(batch))
	var prevModuleID uint64
	var prevModifier []byte
	havePrev := false

	for _, entry := range batch {
		if havePrev && entry.ModuleID == prevModuleID && bytesEqual(entry.Op.Modifier(), prevModifier) {
			entry.Op.SetModifier(perturbModifier(entry.Op.Modifier()))
		}
		prevModuleID = entry.ModuleID
		prevModifier = entry.Op.Modifier()
		havePrev = true

		mod, ok := e.Registry.Get(entry.ModuleID)
		if !ok {
			continue
		}

		if e.Options.Debug {
			e.log.Debug("dispatch", "module", mod.Name(), "op", entry.Op.Name(), "algorithm", entry.Op.GetAlgorithmString())
		}

		result, present := policy.CallModule(mod, entry.Op, e.Options)

		if present && e.Options.JSONDumpWriter != nil {
			e.dumpJSON(entry.Op, result)
		}

		if !e.Options.DisableTests {
			if err := e.Oracle.Test(entry.Op, result, present); err != nil {
				e.log.Error("test oracle rejected result", "err", err)
			}
		}

		if err := policy.Postprocess(mod, entry.Op, result, present, e.Options, e.Pools); err != nil {
			if abortErr, ok := err.(*policy.AbortError); ok {
				e.abort(abortErr.ModuleNames, abortErr.OpName, abortErr.Algorithm, abortErr.Reason)
				return
			}
			e.log.Error("postprocess error", "err", err)
		}

		results = append(results, resultEntry{ModuleName: mod.Name(), Result: result, Present: present})
	}

	if !e.Options.NoCompare {
		e.compare(batch[0].Op, results)
	}
}

// assembleBatch implements spec §4.5 step 1.
func (e *Executor) assembleBatch(ds datasource.Datasource) []batchEntry {
	var batch []batchEntry
	for uint64(len(batch)) < op.MaxOperationsDefault {
		o, err := e.NewOp(ds, nil)
		if err != nil {
			break
		}
		moduleID, err := ds.GetUint64()
		if err != nil {
			break
		}
		if e.Options.ForceModule != nil {
			moduleID = *e.Options.ForceModule
		}
		if uint64(len(batch)) >= op.MaxOperations(o) {
			break
		}
		if mod, ok := e.Registry.Get(moduleID); ok && !e.Options.IsModuleDisabled(moduleID) {
			batch = append(batch, batchEntry{ModuleID: mod.ID(), Op: o})
		}

		cont, err := ds.GetBool()
		if err != nil || !cont {
			break
		}
	}
	return batch
}

// broadcastFill implements spec §4.5 step 2: every loaded, non-disabled
// module not yet represented in the batch processes batch[0].Op.
func (e *Executor) broadcastFill(batch []batchEntry) []batchEntry {
	if len(batch) == 0 {
		return batch
	}
	present := make(map[uint64]bool, len(batch))
	for _, entry := range batch {
		present[entry.ModuleID] = true
	}
	for _, id := range e.Registry.IDs() {
		if present[id] || e.Options.IsModuleDisabled(id) {
			continue
		}
		batch = append(batch, batchEntry{ModuleID: id, Op: batch[0].Op})
	}
	return batch
}

// perturbModifier implements the modifier-perturbation rule of spec §4.5
// step 4: empty becomes 512 bytes of value 1; otherwise every byte is
// incremented by 1 with wraparound.
func perturbModifier(modifier []byte) []byte {
	if len(modifier) == 0 {
		out := make([]byte, 512)
		for i := range out {
			out[i] = 1
		}
		return out
	}
	out := make([]byte, len(modifier))
	for i, b := range modifier {
		out[i] = b + 1
	}
	return out
}

func (e *Executor) dumpJSON(o op.Operation, result op.Result) {
	opJSON, err := o.ToJSON()
	if err != nil {
		e.log.Error("failed to marshal operation for json dump", "err", err)
		return
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		e.log.Error("failed to marshal result for json dump", "err", err)
		return
	}
	line, err := json.Marshal(struct {
		Operation json.RawMessage `json:"operation"`
		Result    json.RawMessage `json:"result"`
	}{opJSON, resultJSON})
	if err != nil {
		e.log.Error("failed to marshal json dump line", "err", err)
		return
	}
	fmt.Fprintln(e.Options.JSONDumpWriter, string(line))
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// flushStdout matches the source's explicit stdout flush before abort.
func flushStdout() {
	_ = os.Stdout.Sync()
}
