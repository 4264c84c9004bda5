package commands_test

import (
	"testing"

	"avpayments/internal/core/application/usecases/commands"
	"avpayments/internal/core/domain/model/account"
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/core/domain/model/platform"
	"avpayments/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreditWalletCommandHandler_Handle_CreatesWalletOnFirstCredit(t *testing.T) {
	ctx := t.Context()
	authority := kernel.NewIdentity()
	holder := kernel.NewIdentity()
	config, _ := platform.NewConfig(authority, kernel.NewIdentity(), 250)
	cmd, _ := commands.NewCreditWalletCommand(authority, authority, holder, 1_000)

	walletAddress := account.WalletAddress(holder)
	notFound := errs.NewAccountNotFoundError("wallet", walletAddress.String())

	configRepo := new(MockConfigRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConfigRepository").Return(configRepo).Once(),
		configRepo.On("Get", mock.Anything, platform.ConfigAddress(authority)).Return(config, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, walletAddress).Return(nil, notFound).Once(),
		accountRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWalletUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreditWalletCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	added := accountRepo.Calls[1].Arguments.Get(1).(*account.Account)
	assert.Equal(t, uint64(1_000), added.Balance())
	assert.True(t, added.Address().IsEqual(walletAddress))
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreditWalletCommandHandler_Handle_TopsUpExistingWallet(t *testing.T) {
	ctx := t.Context()
	authority := kernel.NewIdentity()
	holder := kernel.NewIdentity()
	config, _ := platform.NewConfig(authority, kernel.NewIdentity(), 250)
	wallet, _ := account.NewWallet(holder)
	require.NoError(t, wallet.Deposit(500))
	cmd, _ := commands.NewCreditWalletCommand(authority, authority, holder, 1_000)

	configRepo := new(MockConfigRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConfigRepository").Return(configRepo).Once(),
		configRepo.On("Get", mock.Anything, platform.ConfigAddress(authority)).Return(config, nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Get", mock.Anything, account.WalletAddress(holder)).Return(wallet, nil).Once(),
		accountRepo.On("Update", mock.Anything, wallet).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWalletUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreditWalletCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_500), wallet.Balance())
	accountRepo.AssertExpectations(t)
}

func TestCreditWalletCommandHandler_Handle_Unauthorized(t *testing.T) {
	ctx := t.Context()
	authority := kernel.NewIdentity()
	intruder := kernel.NewIdentity()
	config, _ := platform.NewConfig(authority, kernel.NewIdentity(), 250)
	cmd, _ := commands.NewCreditWalletCommand(authority, intruder, kernel.NewIdentity(), 1_000)

	configRepo := new(MockConfigRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConfigRepository").Return(configRepo).Once(),
		configRepo.On("Get", mock.Anything, platform.ConfigAddress(authority)).Return(config, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWalletUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreditWalletCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
	uow.AssertExpectations(t)
}
