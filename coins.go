package macrocosm

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrDuplicateDenom is matched by CoinsError values.
var ErrDuplicateDenom = errors.New("macrocosm: duplicate denom")

// Coin is an amount of a single denomination.
type Coin struct {
	Denom  string `json:"denom"`
	Amount uint64 `json:"amount"`
}

// CoinsError reports a coin list that cannot form a Coins set.
type CoinsError struct {
	Denom string
}

// Error returns the error string.
func (e *CoinsError) Error() string {
	return fmt.Sprintf("Duplicate denom %s", e.Denom)
}

// Is reports whether target is ErrDuplicateDenom.
func (e *CoinsError) Is(target error) bool {
	return target == ErrDuplicateDenom
}

// StdError converts the error into a generic standard error.
func (e *CoinsError) StdError() *StdError {
	return GenericErr(e.Error())
}

// Coins is a set of coins with distinct denominations and non-zero
// amounts, kept sorted by denomination.
type Coins struct {
	coins map[string]uint64
}

// NewCoins builds a coin set. Zero amounts are dropped, a repeated
// denomination is a *CoinsError.
func NewCoins(coins ...Coin) (Coins, error) {
	set := Coins{coins: make(map[string]uint64, len(coins))}
	for _, c := range coins {
		if _, ok := set.coins[c.Denom]; ok {
			return Coins{}, &CoinsError{Denom: c.Denom}
		}
		if c.Amount > 0 {
			set.coins[c.Denom] = c.Amount
		}
	}
	return set, nil
}

// AmountOf returns the amount held of denom.
func (c Coins) AmountOf(denom string) uint64 {
	return c.coins[denom]
}

// Len returns the number of denominations held.
func (c Coins) Len() int {
	return len(c.coins)
}

// Add adds coin to the set.
func (c *Coins) Add(coin Coin) error {
	if c.coins == nil {
		c.coins = make(map[string]uint64)
	}
	cur := c.coins[coin.Denom]
	if coin.Amount > math.MaxUint64-cur {
		return OverflowErr(fmt.Sprintf("cannot add %d to %d%s", coin.Amount, cur, coin.Denom))
	}
	if sum := cur + coin.Amount; sum > 0 {
		c.coins[coin.Denom] = sum
	}
	return nil
}

// Sub removes coin from the set.
func (c *Coins) Sub(coin Coin) error {
	cur := c.coins[coin.Denom]
	if coin.Amount > cur {
		return OverflowErr(fmt.Sprintf("cannot subtract %d from %d%s", coin.Amount, cur, coin.Denom))
	}
	if cur == coin.Amount {
		delete(c.coins, coin.Denom)
		return nil
	}
	c.coins[coin.Denom] = cur - coin.Amount
	return nil
}

// Slice returns the coins sorted by denomination.
func (c Coins) Slice() []Coin {
	out := make([]Coin, 0, len(c.coins))
	for denom, amount := range c.coins {
		out = append(out, Coin{Denom: denom, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Denom < out[j].Denom })
	return out
}
