package errs_test

import (
	"errors"
	"testing"

	"avpayments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressAlreadyInUseError(t *testing.T) {
	t.Run("NewAddressAlreadyInUseError", func(t *testing.T) {
		err := errs.NewAddressAlreadyInUseError("vehicle", "ab12cd")

		assert.Equal(t, "vehicle", err.Kind)
		assert.Equal(t, "ab12cd", err.Address)
		require.NoError(t, err.Cause)
		assert.Equal(t, "address already in use: kind is: vehicle, address is: ab12cd", err.Error())
		assert.Equal(t, errs.ErrAddressAlreadyInUse, err.Unwrap())
	})

	t.Run("NewAddressAlreadyInUseErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicated key not allowed")
		err := errs.NewAddressAlreadyInUseErrorWithCause("delivery", "ff00", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"address already in use: kind is: delivery, address is: ff00 (cause: duplicated key not allowed)",
			err.Error())
		assert.Equal(t, errs.ErrAddressAlreadyInUse, err.Unwrap())
	})
}

func TestAccountNotFoundError(t *testing.T) {
	t.Run("NewAccountNotFoundError", func(t *testing.T) {
		err := errs.NewAccountNotFoundError("config", "0011")

		assert.Equal(t, "config", err.Kind)
		assert.Equal(t, "0011", err.Address)
		require.NoError(t, err.Cause)
		assert.Equal(t, "account not found: kind is: config, address is: 0011", err.Error())
		assert.Equal(t, errs.ErrAccountNotFound, err.Unwrap())
	})

	t.Run("NewAccountNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewAccountNotFoundErrorWithCause("wallet", "beef", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "account not found: kind is: wallet, address is: beef (cause: record not found)", err.Error())
	})
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("completeDelivery", "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed")

		assert.Equal(t, "completeDelivery", err.Operation)
		assert.Equal(t,
			"unauthorized: operation is: completeDelivery, signer is: 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed",
			err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("delivery is not pending")

		assert.Equal(t, "delivery is not pending", err.Details)
		assert.Equal(t, "invalid state: delivery is not pending", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("version conflict")
		err := errs.NewInvalidStateErrorWithCause("delivery changed concurrently", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "invalid state: delivery changed concurrently (cause: version conflict)", err.Error())
	})
}

func TestInsufficientFundsError(t *testing.T) {
	err := errs.NewInsufficientFundsError("c0ffee", 1_000_000_000, 250)

	assert.Equal(t, "c0ffee", err.Address)
	assert.Equal(t, uint64(1_000_000_000), err.Requested)
	assert.Equal(t, uint64(250), err.Available)
	assert.Equal(t, "insufficient funds: address is: c0ffee, requested is: 1000000000, available is: 250", err.Error())
	assert.Equal(t, errs.ErrInsufficientFunds, err.Unwrap())
}

func TestArithmeticOverflowError(t *testing.T) {
	err := errs.NewArithmeticOverflowError("fee multiplication")

	assert.Equal(t, "fee multiplication", err.Operation)
	assert.Equal(t, "arithmetic overflow: operation is: fee multiplication", err.Error())
	assert.Equal(t, errs.ErrArithmeticOverflow, err.Unwrap())
}

func TestValueErrors(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("vehicleId")

		assert.Equal(t, "vehicleId", err.ParamName)
		assert.Equal(t, "value is required: vehicleId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("treasury", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: treasury (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("feeBps", 10001, 0, 10000)

		assert.Equal(t, "feeBps", err.ParamName)
		assert.Equal(t, 10001, err.Value)
		assert.Equal(t, "value is invalid: 10001 is feeBps, min value is 0, max value is 10000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with taxonomy errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewAddressAlreadyInUseError("vehicle", "ab"), errs.ErrAddressAlreadyInUse)
		require.ErrorIs(t, errs.NewAccountNotFoundError("config", "cd"), errs.ErrAccountNotFound)
		require.ErrorIs(t, errs.NewUnauthorizedError("acceptDelivery", "ef"), errs.ErrUnauthorized)
		require.ErrorIs(t, errs.NewInvalidStateError("not pending"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewInsufficientFundsError("aa", 2, 1), errs.ErrInsufficientFunds)
		require.ErrorIs(t, errs.NewArithmeticOverflowError("mul"), errs.ErrArithmeticOverflow)
		require.ErrorIs(t, errs.NewValueIsRequiredError("x"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewValueIsInvalidError("x"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("x", 1, 2, 3), errs.ErrValueIsOutOfRange)
	})
}
