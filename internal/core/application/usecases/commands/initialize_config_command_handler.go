package commands

import (
	"context"

	"avpayments/internal/core/domain/model/platform"
)

// InitializeConfigCommandHandler handles platform bootstrap. Creates the
// configuration record in active, unpaused state. Initialization fails with
// AddressAlreadyInUse when the authority already initialized the platform.
type InitializeConfigCommandHandler struct {
	uowFactory ConfigUoWFactory
}

// NewInitializeConfigCommandHandler creates a handler for platform initialization.
// Requires a ConfigUoWFactory for transactional persistence.
func NewInitializeConfigCommandHandler(uowFactory ConfigUoWFactory) InitializeConfigCommandHandler {
	return InitializeConfigCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the initialization command. The authority signed the
// command by construction, so no separate signer check is needed here.
func (h InitializeConfigCommandHandler) Handle(ctx context.Context, cmd InitializeConfigCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	config, err := platform.NewConfig(cmd.Authority(), cmd.Treasury(), cmd.FeeBps())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ConfigRepository().Add(ctx, config); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
