package services

import (
	"math/bits"

	"avpayments/internal/core/domain/model/account"
	"avpayments/internal/core/domain/model/platform"
	"avpayments/internal/pkg/errs"
)

// feeBpsDenominator converts basis points to a fraction: 10000 bps = 100%.
const feeBpsDenominator = 10_000

// SettlementEngine is the domain service that splits an escrowed payment
// between the vehicle operator and the platform treasury and drains the
// escrow account on delivery completion.
//
// Business rules:
//   - fee = paymentAmount * feeBps / 10000, integer division truncating
//     toward zero
//   - operatorShare = paymentAmount - fee, so fee + operatorShare ==
//     paymentAmount exactly and the truncation remainder accrues to the
//     operator; no value is created or destroyed
//   - all arithmetic is overflow-checked; an overflow fails the whole
//     completion with ArithmeticOverflow instead of wrapping
//   - both payout legs succeed or neither does
type SettlementEngine struct{}

// NewSettlementEngine creates a new SettlementEngine instance.
func NewSettlementEngine() SettlementEngine {
	return SettlementEngine{}
}

// Split computes the fee and operator share for a payment at the given fee
// rate. The fee is computed first and subtracted, never split
// independently, so the two parts always reconcile to the payment amount.
//
// Returns:
//   - fee and operatorShare with fee + operatorShare == paymentAmount
//   - ValueIsOutOfRange when feeBps exceeds the maximum
//   - ArithmeticOverflow when the fee multiplication cannot be represented
func (SettlementEngine) Split(paymentAmount uint64, feeBps uint16) (fee uint64, operatorShare uint64, err error) {
	if feeBps > platform.MaxFeeBps {
		return 0, 0, errs.NewValueIsOutOfRangeError("feeBps", feeBps, 0, platform.MaxFeeBps)
	}

	hi, lo := bits.Mul64(paymentAmount, uint64(feeBps))
	if hi != 0 {
		return 0, 0, errs.NewArithmeticOverflowError("fee multiplication")
	}

	fee = lo / feeBpsDenominator
	operatorShare = paymentAmount - fee
	return fee, operatorShare, nil
}

// Settle splits the payment at the given fee rate and moves the escrowed
// value: the operator share to the operator wallet, the fee to the
// treasury wallet. Every account is pre-checked before any balance is
// touched, so a failing settlement leaves all three accounts byte-identical
// to their pre-call state.
//
// Returns the applied fee and operator share on success.
func (e SettlementEngine) Settle(
	escrow *account.Account,
	operatorWallet *account.Account,
	treasuryWallet *account.Account,
	paymentAmount uint64,
	feeBps uint16,
) (fee uint64, operatorShare uint64, err error) {
	if err = escrow.Validate(); err != nil {
		return 0, 0, err
	}
	if err = operatorWallet.Validate(); err != nil {
		return 0, 0, err
	}
	if err = treasuryWallet.Validate(); err != nil {
		return 0, 0, err
	}

	fee, operatorShare, err = e.Split(paymentAmount, feeBps)
	if err != nil {
		return 0, 0, err
	}

	// Pre-check both legs so no account mutates unless all transfers fit.
	// When the operator wallet is also the treasury wallet both legs land on
	// the same balance, so the check must cover their sum.
	if escrow.Balance() < paymentAmount {
		return 0, 0, errs.NewInsufficientFundsError(escrow.Address().String(), paymentAmount, escrow.Balance())
	}
	if operatorWallet == treasuryWallet {
		if err = operatorWallet.CanDeposit(paymentAmount); err != nil {
			return 0, 0, err
		}
	} else {
		if err = operatorWallet.CanDeposit(operatorShare); err != nil {
			return 0, 0, err
		}
		if err = treasuryWallet.CanDeposit(fee); err != nil {
			return 0, 0, err
		}
	}

	if err = escrow.Withdraw(operatorShare); err != nil {
		return 0, 0, err
	}
	if err = operatorWallet.Deposit(operatorShare); err != nil {
		return 0, 0, err
	}
	if err = escrow.Withdraw(fee); err != nil {
		return 0, 0, err
	}
	if err = treasuryWallet.Deposit(fee); err != nil {
		return 0, 0, err
	}

	return fee, operatorShare, nil
}
