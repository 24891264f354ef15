package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSymbol(t *testing.T) {
	assert.True(t, ValidateSymbol("005930"))
	assert.False(t, ValidateSymbol("05930"))
	assert.False(t, ValidateSymbol("00593A"))
	assert.False(t, ValidateSymbol(""))
}

func TestCorpusFilter_Normalize(t *testing.T) {
	t.Run("nil market", func(t *testing.T) {
		f := CorpusFilter{}
		assert.NoError(t, f.Normalize())
		assert.Nil(t, f.Market)
	})

	t.Run("lower-case market is upper-cased", func(t *testing.T) {
		m := " kosdaq "
		f := CorpusFilter{Market: &m}
		require.NoError(t, f.Normalize())
		assert.Equal(t, "KOSDAQ", *f.Market)
	})

	t.Run("unknown market", func(t *testing.T) {
		m := "NYSE"
		f := CorpusFilter{Market: &m}
		assert.ErrorIs(t, f.Normalize(), ErrInvalidMarket)
	})
}
