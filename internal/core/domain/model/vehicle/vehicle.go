// Package vehicle contains the Vehicle aggregate of the fleet registry.
// A vehicle is registered once by the platform authority under a
// platform-unique vehicle id; the id is part of the derived storage address,
// so a registration against a taken id fails on the address collision and
// no separate uniqueness index exists.
package vehicle

import (
	"errors"
	"math"
	"time"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"
	"avpayments/internal/pkg/guard"
)

// IDMaxLength is the maximum length of a vehicle id, e.g. "AV-001".
const IDMaxLength = 32

// Domain errors for vehicle operations.
var (
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Address derives the storage address of the vehicle registered under the
// given vehicle id.
func Address(vehicleID string) kernel.Address {
	return kernel.DeriveAddress("vehicle", []byte(vehicleID))
}

// Vehicle represents an autonomous vehicle registered on the platform.
//
// Vehicle follows these invariants:
//   - vehicleID is non-empty, at most IDMaxLength characters, fixed at registration
//   - operator is the only identity authorized to accept and complete
//     deliveries assigned to this vehicle
//   - isBusy is true exactly while the vehicle is the assigned vehicle of a
//     non-terminal delivery
//   - totalDeliveries increases monotonically, only on successful completion
type Vehicle struct {
	// vehicleID is the platform-unique string key of the vehicle
	vehicleID string
	// operator is the identity controlling the vehicle
	operator kernel.Identity
	// location is the last known position
	location kernel.GeoPoint
	// isActive reports whether the vehicle may take new deliveries
	isActive bool
	// isBusy reports whether the vehicle is on a delivery right now
	isBusy bool
	// totalDeliveries counts successfully completed deliveries
	totalDeliveries uint64
	// registeredAt is the registration timestamp
	registeredAt time.Time
	// version is the optimistic concurrency token of the persisted record
	version int64

	guard guard.ConstructorGuard
}

// NewVehicle registers a new vehicle. The vehicle starts active, not busy,
// with zero completed deliveries.
func NewVehicle(vehicleID string, operator kernel.Identity, location kernel.GeoPoint) (*Vehicle, error) {
	vehicle := &Vehicle{
		isActive:     true,
		isBusy:       false,
		registeredAt: time.Now().UTC(),
		version:      1,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setVehicleID(vehicleID),
		vehicle.setOperator(operator),
		vehicle.setLocation(location),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage,
// including its availability flags, delivery counter and concurrency version.
func RestoreVehicle(
	vehicleID string,
	operator kernel.Identity,
	location kernel.GeoPoint,
	isActive bool,
	isBusy bool,
	totalDeliveries uint64,
	registeredAt time.Time,
	version int64,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		isActive:        isActive,
		isBusy:          isBusy,
		totalDeliveries: totalDeliveries,
		registeredAt:    registeredAt,
		version:         version,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setVehicleID(vehicleID),
		vehicle.setOperator(operator),
		vehicle.setLocation(location),
	); err != nil {
		return nil, err
	}
	if version <= 0 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	return vehicle, nil
}

// Validate ensures the Vehicle instance was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// Address returns the derived storage address of the vehicle record.
func (v *Vehicle) Address() kernel.Address {
	return Address(v.vehicleID)
}

// VehicleID returns the platform-unique vehicle id.
func (v *Vehicle) VehicleID() string {
	return v.vehicleID
}

// Operator returns the identity authorized to operate the vehicle.
func (v *Vehicle) Operator() kernel.Identity {
	return v.operator
}

// Location returns the last known position of the vehicle.
func (v *Vehicle) Location() kernel.GeoPoint {
	return v.location
}

// IsActive reports whether the vehicle may take new deliveries.
func (v *Vehicle) IsActive() bool {
	return v.isActive
}

// IsBusy reports whether the vehicle is currently on a delivery.
func (v *Vehicle) IsBusy() bool {
	return v.isBusy
}

// TotalDeliveries returns the number of successfully completed deliveries.
func (v *Vehicle) TotalDeliveries() uint64 {
	return v.totalDeliveries
}

// RegisteredAt returns the registration timestamp.
func (v *Vehicle) RegisteredAt() time.Time {
	return v.registeredAt
}

// Version returns the optimistic concurrency token of the persisted record.
func (v *Vehicle) Version() int64 {
	return v.version
}

// MarkBusy claims the vehicle for a delivery. Fails with InvalidState when
// the vehicle is inactive or already busy; the delivery lifecycle calls this
// only while accepting a pending delivery.
func (v *Vehicle) MarkBusy() error {
	if !v.isActive {
		return errs.NewInvalidStateError("vehicle is inactive")
	}
	if v.isBusy {
		return errs.NewInvalidStateError("vehicle is busy")
	}
	v.isBusy = true
	return nil
}

// RecordCompletion releases the vehicle and increments its delivery counter.
// Fails with InvalidState when the vehicle is not busy and with
// ArithmeticOverflow when the counter cannot be incremented.
func (v *Vehicle) RecordCompletion() error {
	if !v.isBusy {
		return errs.NewInvalidStateError("vehicle is not busy")
	}
	if v.totalDeliveries == math.MaxUint64 {
		return errs.NewArithmeticOverflowError("total deliveries increment")
	}
	v.isBusy = false
	v.totalDeliveries++
	return nil
}

func (v *Vehicle) setVehicleID(vehicleID string) error {
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleId")
	}
	if len(vehicleID) > IDMaxLength {
		return errs.NewValueIsOutOfRangeError("vehicleId length", len(vehicleID), 1, IDMaxLength)
	}
	v.vehicleID = vehicleID
	return nil
}

func (v *Vehicle) setOperator(operator kernel.Identity) error {
	if err := operator.Validate(); err != nil {
		return err
	}
	v.operator = operator
	return nil
}

func (v *Vehicle) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	v.location = location
	return nil
}
