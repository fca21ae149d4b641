package options

import (
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

// Flags is the urfave/cli/v2 flag set recognized by FromContext. Embedding
// applications (outside the scope of this module) register these on their
// own *cli.App; this package only turns a populated *cli.Context into an
// Options value.
var Flags = []cli.Flag{
	&cli.StringSliceFlag{Name: "digests", Usage: "allow-set of digest algorithm names"},
	&cli.StringSliceFlag{Name: "ciphers", Usage: "allow-set of cipher names"},
	&cli.StringSliceFlag{Name: "curves", Usage: "allow-set of curve names"},
	&cli.StringSliceFlag{Name: "calc-ops", Usage: "allow-set of BignumCalc operator names"},
	&cli.StringSliceFlag{Name: "disable-modules", Usage: "module IDs to exclude from dispatch"},
	&cli.Uint64Flag{Name: "force-module", Usage: "override the module ID decoded from the byte stream"},
	&cli.IntFlag{Name: "min-modules", Usage: "skip the invocation if fewer than N modules are in play"},
	&cli.BoolFlag{Name: "no-compare", Usage: "disable the differential comparator"},
	&cli.BoolFlag{Name: "no-decrypt", Usage: "disable the SymmetricEncrypt round-trip check"},
	&cli.BoolFlag{Name: "disable-tests", Usage: "disable the external test-oracle hook"},
	&cli.BoolFlag{Name: "debug", Usage: "log per-call diagnostics"},
	&cli.BoolFlag{Name: "guard-bls-verify-size", Usage: "apply the generic key-material size bound to BLS_Verify"},
}

// FromContext builds an Options value from a populated *cli.Context,
// per the teacher's own cmd/geth-style flag-to-config wiring.
func FromContext(c *cli.Context) *Options {
	o := New()

	if set := toSet(c.StringSlice("digests")); set != nil {
		o.Digests = set
	}
	if set := toSet(c.StringSlice("ciphers")); set != nil {
		o.Ciphers = set
	}
	if set := toSet(c.StringSlice("curves")); set != nil {
		o.Curves = set
	}
	if set := toSet(c.StringSlice("calc-ops")); set != nil {
		o.CalcOps = set
	}

	if ids := c.StringSlice("disable-modules"); len(ids) > 0 {
		o.DisableModules = make(map[uint64]bool, len(ids))
		for _, s := range ids {
			if id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64); err == nil {
				o.DisableModules[id] = true
			}
		}
	}

	if c.IsSet("force-module") {
		id := c.Uint64("force-module")
		o.ForceModule = &id
	}

	o.MinModules = c.Int("min-modules")
	o.NoCompare = c.Bool("no-compare")
	o.NoDecrypt = c.Bool("no-decrypt")
	o.DisableTests = c.Bool("disable-tests")
	o.Debug = c.Bool("debug")
	o.GuardBLSVerifySize = c.Bool("guard-bls-verify-size")

	return o
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.TrimSpace(v)] = true
	}
	return set
}
