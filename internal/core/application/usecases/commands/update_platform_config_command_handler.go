package commands

import (
	"context"

	"avpayments/internal/core/domain/model/platform"
	"avpayments/internal/core/domain/services"
)

// UpdatePlatformConfigCommandHandler handles configuration changes.
// Authorizes the signer against the stored authority before applying the
// new fee rate and operational flags.
type UpdatePlatformConfigCommandHandler struct {
	uowFactory ConfigUoWFactory
	authorizer services.Authorizer
}

// NewUpdatePlatformConfigCommandHandler creates a handler for configuration updates.
func NewUpdatePlatformConfigCommandHandler(uowFactory ConfigUoWFactory) UpdatePlatformConfigCommandHandler {
	return UpdatePlatformConfigCommandHandler{
		uowFactory: uowFactory,
		authorizer: services.NewAuthorizer(),
	}
}

// Handle processes the configuration update command. Loads the
// configuration, rejects signers other than the stored authority with
// Unauthorized, then persists the new fee rate and flags.
func (h UpdatePlatformConfigCommandHandler) Handle(ctx context.Context, cmd UpdatePlatformConfigCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	configRepo := uow.ConfigRepository()
	config, err := configRepo.Get(ctx, platform.ConfigAddress(cmd.Authority()))
	if err != nil {
		return err
	}

	if err = h.authorizer.RequireSigner("updatePlatformConfig", config.Authority(), cmd.Signer()); err != nil {
		return err
	}

	if err = config.UpdateFee(cmd.FeeBps()); err != nil {
		return err
	}
	config.SetOperationalFlags(cmd.IsActive(), cmd.IsPaused())

	if err = configRepo.Update(ctx, config); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
