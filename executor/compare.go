package executor

import (
	"fmt"
	"sort"

	"github.com/ethereum/cryptofuzz-core/op"
	"github.com/ethereum/cryptofuzz-core/policy"
)

// compare implements the differential comparator (spec §4.6).
func (e *Executor) compare(firstOp op.Operation, results []resultEntry) {
	present := make([]resultEntry, 0, len(results))
	for _, r := range results {
		if r.Present {
			present = append(present, r)
		}
	}
	if len(present) < 2 {
		return
	}
	if policy.DontCompare(firstOp) {
		return
	}

	for i := 1; i < len(present); i++ {
		a, b := present[i-1], present[i]
		if a.Result.Equal(b.Result) {
			continue
		}
		e.log.Error("differential mismatch",
			"op", firstOp.Name(), "algorithm", firstOp.GetAlgorithmString(),
			"module1", a.ModuleName, "module2", b.ModuleName)
		fmt.Printf("operation: %s\n", firstOp.ToString())
		fmt.Printf("result 1 (%s): %+v\n", a.ModuleName, a.Result)
		fmt.Printf("result 2 (%s): %+v\n", b.ModuleName, b.Result)
		e.abort([]string{a.ModuleName, b.ModuleName}, firstOp.Name(), firstOp.GetAlgorithmString(), "difference")
		return
	}
}

// abort prints the canonical assertion-failure line, flushes stdout, and
// terminates the process. Module names are sorted lexicographically and
// deduplicated before joining, per spec §4.6 / §5.1.
func (e *Executor) abort(moduleNames []string, opName, algorithm, reason string) {
	names := dedupSorted(moduleNames)
	line := fmt.Sprintf("Assertion failure: %s-%s-%s-%s", joinDash(names), opName, algorithm, reason)
	fmt.Println(line)
	flushStdout()
	e.AbortFunc()
}

func dedupSorted(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

func joinDash(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "-"
		}
		out += n
	}
	return out
}
