package commands

import (
	"errors"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/guard"
)

var ErrRegisterVehicleCommandIsNotConstructed = errors.New(
	"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
)

// RegisterVehicleCommand represents a request to add an autonomous vehicle
// to the fleet registry. Registration is an admin operation: the platform
// authority signs on behalf of the operator onboarding the vehicle.
//
// Example:
//
//	cmd, err := NewRegisterVehicleCommand(authority, signer, "AV-042", operator, "37.7749,-122.4194")
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewRegisterVehicleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register vehicle: %w", err)
//	}
type RegisterVehicleCommand struct { //nolint:recvcheck //using for validation
	authority kernel.Identity
	signer    kernel.Identity
	vehicleID string
	operator  kernel.Identity
	location  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterVehicleCommand creates a command to register a vehicle.
// The vehicle identifier length and the location format are validated by
// their domain types; identifier uniqueness is enforced at persistence.
func NewRegisterVehicleCommand(
	authority kernel.Identity,
	signer kernel.Identity,
	vehicleID string,
	operator kernel.Identity,
	location string,
) (RegisterVehicleCommand, error) {
	cmd := RegisterVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAuthority(authority),
		cmd.setSigner(signer),
		cmd.setOperator(operator),
		cmd.setLocation(location),
	); err != nil {
		return RegisterVehicleCommand{}, err
	}

	cmd.vehicleID = vehicleID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterVehicleCommandIsNotConstructed if validation fails.
func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

// Authority returns the identity the configuration address is derived from.
func (c RegisterVehicleCommand) Authority() kernel.Identity {
	return c.authority
}

// Signer returns the identity presenting the request.
func (c RegisterVehicleCommand) Signer() kernel.Identity {
	return c.signer
}

// VehicleID returns the fleet identifier of the vehicle.
func (c RegisterVehicleCommand) VehicleID() string {
	return c.vehicleID
}

// Operator returns the identity that controls the vehicle and collects
// its earnings.
func (c RegisterVehicleCommand) Operator() kernel.Identity {
	return c.operator
}

// Location returns the initial location of the vehicle.
func (c RegisterVehicleCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *RegisterVehicleCommand) setAuthority(authority kernel.Identity) error {
	if err := authority.Validate(); err != nil {
		return err
	}

	c.authority = authority
	return nil
}

func (c *RegisterVehicleCommand) setSigner(signer kernel.Identity) error {
	if err := signer.Validate(); err != nil {
		return err
	}

	c.signer = signer
	return nil
}

func (c *RegisterVehicleCommand) setOperator(operator kernel.Identity) error {
	if err := operator.Validate(); err != nil {
		return err
	}

	c.operator = operator
	return nil
}

func (c *RegisterVehicleCommand) setLocation(location string) error {
	geoPoint, err := kernel.NewGeoPoint(location)
	if err != nil {
		return err
	}

	c.location = geoPoint
	return nil
}
