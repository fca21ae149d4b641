package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifierRoundTrip(t *testing.T) {
	d := &Digest{Algorithm: "SHA-256"}
	assert.Nil(t, d.Modifier())
	d.SetModifier([]byte{1, 2, 3})
	assert.Equal(t, []byte{1, 2, 3}, d.Modifier())
}

func TestMaxOperationsDefaultsAndOverrides(t *testing.T) {
	assert.Equal(t, uint64(MaxOperationsDefault), MaxOperations(&Digest{}))
	assert.Equal(t, uint64(100), MaxOperations(&BLSPairing{}))
	assert.Equal(t, uint64(1000), MaxOperations(&ECCGenerateKeyPair{}))
}

func TestDigestToStringIncludesAlgorithm(t *testing.T) {
	d := &Digest{Algorithm: "SHA-256", Cleartext: []byte("hi")}
	assert.Contains(t, d.ToString(), "SHA-256")
}

func TestDigestToJSONRoundTripsAlgorithm(t *testing.T) {
	d := &Digest{Algorithm: "SHA-256", Cleartext: []byte("hi")}
	raw, err := d.ToJSON()
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "SHA-256")
	assert.Contains(t, string(raw), "Digest")
}
