package op

import "fmt"

// CalcOp identifies the bignum operator requested by a BignumCalc op.
type CalcOp string

const (
	CalcAdd       CalcOp = "Add"
	CalcSub       CalcOp = "Sub"
	CalcMul       CalcOp = "Mul"
	CalcDiv       CalcOp = "Div"
	CalcMod       CalcOp = "Mod"
	CalcExp       CalcOp = "Exp"
	CalcExp2      CalcOp = "Exp2"
	CalcSetBit    CalcOp = "SetBit"
	CalcModLShift CalcOp = "ModLShift"
	CalcGCD       CalcOp = "GCD"
	CalcRand      CalcOp = "Rand"
)

// BignumCalc evaluates CalcOp over decimal-string operands BN0, BN1, BN2,
// optionally reduced modulo Modulo (set by the modular-arithmetic executor
// variants rather than derived from the byte stream).
type BignumCalc struct {
	base
	CalcOp       CalcOp
	BN0, BN1, BN2 string
	Modulo       *string
}

func (b *BignumCalc) Name() string              { return "BignumCalc" }
func (b *BignumCalc) GetAlgorithmString() string { return string(b.CalcOp) }
func (b *BignumCalc) ToString() string {
	return fmt.Sprintf("BignumCalc(%s, bn0=%s, bn1=%s, bn2=%s, mod=%v)", b.CalcOp, b.BN0, b.BN1, b.BN2, b.Modulo)
}
func (b *BignumCalc) ToJSON() ([]byte, error) {
	mod := ""
	if b.Modulo != nil {
		mod = *b.Modulo
	}
	return marshal(struct {
		Name   string `json:"name"`
		CalcOp string `json:"calcOp"`
		BN0    string `json:"bn0"`
		BN1    string `json:"bn1"`
		BN2    string `json:"bn2"`
		Modulo string `json:"modulo"`
	}{b.Name(), string(b.CalcOp), b.BN0, b.BN1, b.BN2, mod})
}

// WithModulo returns a copy of b with Modulo pinned to mod, used by the
// modular-arithmetic executor variants before dispatch.
func (b *BignumCalc) WithModulo(mod string) *BignumCalc {
	c := *b
	c.Modulo = &mod
	return &c
}
