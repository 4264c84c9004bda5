package commands_test

import (
	"testing"

	"avpayments/internal/core/application/usecases/commands"
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreditWalletCommand(t *testing.T) {
	authority := kernel.NewIdentity()

	t.Run("should create valid command", func(t *testing.T) {
		holder := kernel.NewIdentity()

		cmd, err := commands.NewCreditWalletCommand(authority, authority, holder, 1_000_000)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.Holder().IsEqual(holder))
		assert.Equal(t, uint64(1_000_000), cmd.Amount())
	})

	t.Run("should reject zero amount", func(t *testing.T) {
		_, err := commands.NewCreditWalletCommand(authority, authority, kernel.NewIdentity(), 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty holder", func(t *testing.T) {
		var empty kernel.Identity

		_, err := commands.NewCreditWalletCommand(authority, authority, empty, 100)

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.CreditWalletCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreditWalletCommandIsNotConstructed)
	})
}
