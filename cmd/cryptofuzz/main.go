// Command cryptofuzz drives the dispatch/compare/postprocess execution
// engine over a single input file. A leading length-prefixed field selects
// which operation variant's executor processes the remaining byte stream,
// mirroring the original source's one-binary-per-operation-type build in a
// single process.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/cryptofuzz-core/backend/blsmod"
	"github.com/ethereum/cryptofuzz-core/backend/btcecmod"
	"github.com/ethereum/cryptofuzz-core/backend/decredmod"
	"github.com/ethereum/cryptofuzz-core/backend/modexpmod"
	"github.com/ethereum/cryptofuzz-core/backend/stdlibmod"
	"github.com/ethereum/cryptofuzz-core/backend/xcryptomod"
	"github.com/ethereum/cryptofuzz-core/corpus"
	"github.com/ethereum/cryptofuzz-core/datasource"
	"github.com/ethereum/cryptofuzz-core/executor"
	"github.com/ethereum/cryptofuzz-core/log"
	"github.com/ethereum/cryptofuzz-core/module"
	"github.com/ethereum/cryptofuzz-core/op"
	"github.com/ethereum/cryptofuzz-core/options"
	"github.com/urfave/cli/v2"
)

func buildRegistry() *module.Registry {
	r := module.NewRegistry()
	r.Register(stdlibmod.New())
	r.Register(btcecmod.New())
	r.Register(decredmod.New())
	r.Register(xcryptomod.New())
	r.Register(modexpmod.NewBigInt())
	r.Register(modexpmod.NewGMP())
	r.Register(modexpmod.NewFastExp())
	r.Register(blsmod.NewKilic())
	r.Register(blsmod.NewBlst())
	return r
}

// buildExecutors maps every operation name the byte stream can select to
// the executor variant that runs it, per spec §4.7 (the three BignumCalc
// modular specializations) and §4.8 (ECDH operation synthesis).
func buildExecutors(registry *module.Registry, opts *options.Options, pools *corpus.Pools) map[string]*executor.Executor {
	return map[string]*executor.Executor{
		"Digest":                     executor.New(op.DigestConstructor, registry, opts, pools),
		"HMAC":                       executor.New(op.HMACConstructor, registry, opts, pools),
		"CMAC":                       executor.New(op.CMACConstructor, registry, opts, pools),
		"SymmetricEncrypt":           executor.New(op.SymmetricEncryptConstructor, registry, opts, pools),
		"SymmetricDecrypt":           executor.New(op.SymmetricDecryptConstructor, registry, opts, pools),
		"KDF_PBKDF1":                 executor.New(op.KDFPBKDF1Constructor, registry, opts, pools),
		"KDF_PBKDF2":                 executor.New(op.KDFPBKDF2Constructor, registry, opts, pools),
		"KDF_SCRYPT":                 executor.New(op.KDFScryptConstructor, registry, opts, pools),
		"KDF_HKDF":                   executor.New(op.KDFHKDFConstructor, registry, opts, pools),
		"KDF_BCRYPT":                 executor.New(op.KDFBcryptConstructor, registry, opts, pools),
		"KDF_ARGON2":                 executor.New(op.KDFArgon2Constructor, registry, opts, pools),
		"KDF_TLS1_PRF":               executor.New(op.KDFTLS1PRFConstructor, registry, opts, pools),
		"KDF_PKCS12":                 executor.New(op.KDFPKCS12Constructor, registry, opts, pools),
		"KDF_SSH":                    executor.New(op.KDFSSHConstructor, registry, opts, pools),
		"KDF_X963_KDF":               executor.New(op.KDFX963Constructor, registry, opts, pools),
		"KDF_SP_800_108":             executor.New(op.KDFSP80008AConstructor, registry, opts, pools),
		"ECC_PrivateToPublic":        executor.New(op.ECCPrivateToPublicConstructor, registry, opts, pools),
		"ECC_ValidatePubkey":         executor.New(op.ECCValidatePubkeyConstructor, registry, opts, pools),
		"ECC_GenerateKeyPair":        executor.New(op.ECCGenerateKeyPairConstructor, registry, opts, pools),
		"ECDSA_Sign":                 executor.New(op.ECDSASignConstructor, registry, opts, pools),
		"ECDSA_Verify":               executor.New(op.ECDSAVerifyConstructor, registry, opts, pools),
		"ECDH_Derive":                executor.New(executor.NewECDHDeriveConstructor(op.ECDHDeriveConstructor, registry), registry, opts, pools),
		"ECIES_Encrypt":              executor.New(op.ECIESEncryptConstructor, registry, opts, pools),
		"ECIES_Decrypt":              executor.New(op.ECIESDecryptConstructor, registry, opts, pools),
		"DH_Derive":                  executor.New(op.DHDeriveConstructor, registry, opts, pools),
		"DH_GenerateKeyPair":         executor.New(op.DHGenerateKeyPairConstructor, registry, opts, pools),
		"BignumCalc":                 executor.New(op.BignumCalcConstructor, registry, opts, pools),
		"BignumCalc_Mod_BLS12_381_R": executor.NewModBLS12381R(op.BignumCalcConstructor, registry, opts, pools),
		"BignumCalc_Mod_BLS12_381_P": executor.NewModBLS12381P(op.BignumCalcConstructor, registry, opts, pools),
		"BignumCalc_Mod_2Exp256":     executor.NewMod2Exp256(op.BignumCalcConstructor, registry, opts, pools),
		"BLS_PrivateToPublic":        executor.New(op.BLSPrivateToPublicConstructor, registry, opts, pools),
		"BLS_Sign":                   executor.New(op.BLSSignConstructor, registry, opts, pools),
		"BLS_Verify":                 executor.New(op.BLSVerifyConstructor, registry, opts, pools),
		"BLS_Pairing":                executor.New(op.BLSPairingConstructor, registry, opts, pools),
		"BLS_HashToG1":               executor.New(op.BLSHashToG1Constructor, registry, opts, pools),
		"BLS_HashToG2":               executor.New(op.BLSHashToG2Constructor, registry, opts, pools),
		"BLS_IsG1OnCurve":            executor.New(op.BLSIsG1OnCurveConstructor, registry, opts, pools),
		"BLS_IsG2OnCurve":            executor.New(op.BLSIsG2OnCurveConstructor, registry, opts, pools),
		"BLS_GenerateKeyPair":        executor.New(op.BLSGenerateKeyPairConstructor, registry, opts, pools),
		"BLS_Decompress_G1":          executor.New(op.BLSDecompressG1Constructor, registry, opts, pools),
		"BLS_Compress_G1":            executor.New(op.BLSCompressG1Constructor, registry, opts, pools),
		"BLS_Decompress_G2":          executor.New(op.BLSDecompressG2Constructor, registry, opts, pools),
		"BLS_Compress_G2":            executor.New(op.BLSCompressG2Constructor, registry, opts, pools),
		"SR25519_Verify":             executor.New(op.SR25519VerifyConstructor, registry, opts, pools),
		"Misc":                       executor.New(op.MiscConstructor, registry, opts, pools),
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("usage: cryptofuzz run <input-file>")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	registry := buildRegistry()
	opts := options.FromContext(c)
	if opts.Debug {
		log.Debug("debug mode enabled", "path", path)
	}
	pools := corpus.NewPools()
	executors := buildExecutors(registry, opts, pools)

	ds := datasource.NewByteStream(data)
	name, err := ds.GetData(1, 64)
	if err != nil {
		return fmt.Errorf("reading operation selector: %w", err)
	}
	ex, ok := executors[string(name)]
	if !ok {
		return fmt.Errorf("unknown operation selector %q", name)
	}
	ex.Run(ds)
	return nil
}

func main() {
	app := &cli.App{
		Name:  "cryptofuzz",
		Usage: "run the differential cryptographic execution engine over one input",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "execute a single input file",
				Flags:  options.Flags,
				Action: run,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
