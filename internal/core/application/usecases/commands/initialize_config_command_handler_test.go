package commands_test

import (
	"errors"
	"testing"

	"avpayments/internal/core/application/usecases/commands"
	"avpayments/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewInitializeConfigCommand(kernel.NewIdentity(), kernel.NewIdentity(), 250)

	repo := new(MockConfigRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConfigRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*platform.Config")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConfigUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewInitializeConfigCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestInitializeConfigCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.InitializeConfigCommand{} // not constructed properly
	factory := new(MockConfigUoWFactory)
	h := commands.NewInitializeConfigCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestInitializeConfigCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewInitializeConfigCommand(kernel.NewIdentity(), kernel.NewIdentity(), 250)

	repo := new(MockConfigRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConfigRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("duplicate key")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockConfigUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewInitializeConfigCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
