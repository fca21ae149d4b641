package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethereum/cryptofuzz-core/datasource"
	"github.com/ethereum/cryptofuzz-core/op"
)

func TestNewBignumCalcConstructorPinsModulo(t *testing.T) {
	base := func(ds datasource.Datasource, modifier []byte) (op.Operation, error) {
		return &op.BignumCalc{CalcOp: op.CalcAdd, BN0: "1", BN1: "2"}, nil
	}
	wrapped := NewBignumCalcConstructor(base, ModulusBLS12381R)

	o, err := wrapped(nil, nil)
	require.NoError(t, err)
	bc, ok := o.(*op.BignumCalc)
	require.True(t, ok)
	require.NotNil(t, bc.Modulo)
	assert.Equal(t, ModulusBLS12381R, *bc.Modulo)
}

func TestNewBignumCalcConstructorPassesThroughOtherOps(t *testing.T) {
	base := func(ds datasource.Datasource, modifier []byte) (op.Operation, error) {
		return &op.Digest{Algorithm: "SHA-256"}, nil
	}
	wrapped := NewBignumCalcConstructor(base, ModulusBLS12381R)

	o, err := wrapped(nil, nil)
	require.NoError(t, err)
	_, ok := o.(*op.Digest)
	assert.True(t, ok)
}

func TestNewBignumCalcConstructorPropagatesError(t *testing.T) {
	base := func(ds datasource.Datasource, modifier []byte) (op.Operation, error) {
		return nil, datasource.ErrInsufficientData
	}
	wrapped := NewBignumCalcConstructor(base, ModulusBLS12381R)

	_, err := wrapped(nil, nil)
	assert.ErrorIs(t, err, datasource.ErrInsufficientData)
}
