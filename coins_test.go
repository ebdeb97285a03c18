package macrocosm_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/macrocosm"
)

func TestNewCoins(t *testing.T) {
	coins, err := macrocosm.NewCoins(
		macrocosm.Coin{Denom: "uosmo", Amount: 5},
		macrocosm.Coin{Denom: "uatom", Amount: 10},
		macrocosm.Coin{Denom: "ujuno", Amount: 0},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, coins.Len())
	assert.Equal(t, uint64(10), coins.AmountOf("uatom"))
	assert.Zero(t, coins.AmountOf("ujuno"))
	assert.Equal(t, []macrocosm.Coin{{Denom: "uatom", Amount: 10}, {Denom: "uosmo", Amount: 5}}, coins.Slice())

	_, err = macrocosm.NewCoins(macrocosm.Coin{Denom: "uatom", Amount: 1}, macrocosm.Coin{Denom: "uatom", Amount: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, macrocosm.ErrDuplicateDenom))
	var coinsErr *macrocosm.CoinsError
	require.True(t, errors.As(err, &coinsErr))
	assert.Equal(t, "uatom", coinsErr.Denom)
	assert.Equal(t, "Duplicate denom uatom", err.Error())
}

func TestCoinsArithmetic(t *testing.T) {
	var coins macrocosm.Coins
	require.NoError(t, coins.Add(macrocosm.Coin{Denom: "uatom", Amount: 7}))
	require.NoError(t, coins.Add(macrocosm.Coin{Denom: "uatom", Amount: 3}))
	assert.Equal(t, uint64(10), coins.AmountOf("uatom"))

	err := coins.Add(macrocosm.Coin{Denom: "uatom", Amount: math.MaxUint64})
	assert.ErrorIs(t, err, macrocosm.ErrOverflow)

	err = coins.Sub(macrocosm.Coin{Denom: "uatom", Amount: 11})
	assert.ErrorIs(t, err, macrocosm.ErrOverflow)

	require.NoError(t, coins.Sub(macrocosm.Coin{Denom: "uatom", Amount: 10}))
	assert.Zero(t, coins.Len())
}
