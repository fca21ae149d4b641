package op

import (
	"math/big"
	"strings"
)

// ToTrimmedStringBignum renders a decimal-string bignum in normalized form:
// no leading zeros, "0" for the zero value, a leading "-" preserved for
// negative values. Used for pool keys and diagnostic output.
func ToTrimmedStringBignum(decimal string) string {
	n, ok := new(big.Int).SetString(strings.TrimSpace(decimal), 10)
	if !ok {
		return decimal
	}
	return n.String()
}

// ToTrimmedStringBytes renders a byte string as canonical lowercase hex.
func ToTrimmedStringBytes(b []byte) string {
	return hexOf(b)
}

// BytesToDecimalString interprets b as a big-endian unsigned integer and
// renders it in normalized decimal form, used when feeding curve
// coordinates and scalars into the bignum pool.
func BytesToDecimalString(b []byte) string {
	return new(big.Int).SetBytes(b).String()
}
