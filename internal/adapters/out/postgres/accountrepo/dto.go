// Package accountrepo provides data transfer objects and mapping functions
// for settlement account persistence. This package implements the
// repository pattern for wallet and escrow records, handling the conversion
// between the domain aggregate and its database representation.
package accountrepo

import (
	"math"

	"avpayments/internal/core/domain/model/account"
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting wallet and
// escrow records. The derived address is the primary key; escrows have no
// holder.
type AccountDTO struct {
	Address string     `gorm:"type:varchar(64);primaryKey"`
	Kind    int        `gorm:"not null"`
	Holder  *uuid.UUID `gorm:"type:uuid;index"`
	Balance uint64     `gorm:"type:bigint;not null"`
	Version int64      `gorm:"not null"`
}

// TableName specifies the database table name for account records.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account aggregate to its database representation.
// The balance column is a signed bigint, so balances above MaxInt64 are
// rejected here rather than surfacing as an opaque driver error.
func fromDomain(aggregate *account.Account) (AccountDTO, error) {
	if aggregate.Balance() > math.MaxInt64 {
		return AccountDTO{}, errs.NewValueIsOutOfRangeError(
			"balance", aggregate.Balance(), 0, uint64(math.MaxInt64))
	}

	var holder *uuid.UUID
	if h := aggregate.Holder(); h != nil {
		raw := h.Bytes()
		holder = &raw
	}

	return AccountDTO{
		Address: aggregate.Address().String(),
		Kind:    int(aggregate.Kind()),
		Holder:  holder,
		Balance: aggregate.Balance(),
		Version: aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO back to the account aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	address, err := kernel.AddressFromString(dto.Address)
	if err != nil {
		return nil, err
	}

	var holder *kernel.Identity
	if dto.Holder != nil {
		identity, idErr := kernel.IdentityFromBytes((*dto.Holder)[:])
		if idErr != nil {
			return nil, idErr
		}
		holder = &identity
	}

	return account.RestoreAccount(address, account.Kind(dto.Kind), holder, dto.Balance, dto.Version)
}
