package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToTrimmedStringBignumStripsLeadingZeros(t *testing.T) {
	assert.Equal(t, "7", ToTrimmedStringBignum("007"))
	assert.Equal(t, "0", ToTrimmedStringBignum("000"))
	assert.Equal(t, "-5", ToTrimmedStringBignum("-05"))
}

func TestToTrimmedStringBignumPassesThroughUnparseable(t *testing.T) {
	assert.Equal(t, "not-a-number", ToTrimmedStringBignum("not-a-number"))
}

func TestBytesToDecimalString(t *testing.T) {
	assert.Equal(t, "256", BytesToDecimalString([]byte{0x01, 0x00}))
	assert.Equal(t, "0", BytesToDecimalString(nil))
}
