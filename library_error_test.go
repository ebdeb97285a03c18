package macrocosm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/macrocosm"
)

func TestLibraryErrorDisplay(t *testing.T) {
	tests := []struct {
		err  macrocosm.LibraryError
		want string
	}{
		{macrocosm.LibraryErrorGeneric{V0: "oops"}, "Internal error: oops"},
		{macrocosm.LibraryErrorStd{V0: macrocosm.NotFoundErr("Config")}, "Config not found"},
		{macrocosm.LibraryErrorUnauthorized{}, "Unauthorized to perform this action"},
		{macrocosm.LibraryErrorDisabled{}, "Disabled action"},
		{macrocosm.LibraryErrorExpired{V0: "claim"}, "Expired claim"},
		{macrocosm.LibraryErrorInsufficientFunds{}, "Insufficient funds provided"},
		{macrocosm.LibraryErrorFundsNotAccepted{}, "Funds not accepted for this action"},
		{macrocosm.LibraryErrorInput{}, "Input provided was invalid"},
		{macrocosm.LibraryErrorNotFound{V0: "Owner"}, "Owner not found"},
		{macrocosm.LibraryErrorParse{}, "Failed to parse value"},
		{macrocosm.LibraryErrorUnexpected{}, "Unexpected error"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestLibraryErrorConversions(t *testing.T) {
	t.Run("ToStd keeps the standard error", func(t *testing.T) {
		std := macrocosm.ParseErr("Coin", "bad")
		assert.Same(t, std, macrocosm.LibraryErrorToStd(macrocosm.LibraryErrorFromStd(std)))
	})

	t.Run("ToStd wraps other variants", func(t *testing.T) {
		got := macrocosm.LibraryErrorToStd(macrocosm.LibraryErrorDisabled{})
		assert.Equal(t, macrocosm.KindGeneric, got.Kind)
		assert.Equal(t, "Disabled action", got.Msg)
	})

	t.Run("FromCoinsError", func(t *testing.T) {
		err := macrocosm.LibraryErrorFromCoinsError(&macrocosm.CoinsError{Denom: "uatom"})
		std, ok := err.(macrocosm.LibraryErrorStd)
		require.True(t, ok)
		assert.Equal(t, "Generic error: Duplicate denom uatom", std.Error())
	})

	t.Run("Wrap", func(t *testing.T) {
		err := macrocosm.WrapLibraryError(42)
		assert.Equal(t, macrocosm.LibraryErrorGeneric{V0: "42"}, err)
	})

	t.Run("Unwrap", func(t *testing.T) {
		err := macrocosm.LibraryErrorFromStd(macrocosm.DivideByZeroErr("1 / 0"))
		assert.True(t, errors.Is(err, macrocosm.ErrDivideByZero))
	})
}
