// Package delivery contains the Delivery aggregate and its lifecycle state
// machine. A delivery is created by a customer with its payment escrowed up
// front, accepted by exactly one vehicle operator, and completed through the
// settlement engine. The derived storage address binds a delivery to its
// (customer, deliveryId) pair; creating the same pair twice collides on the
// address, which is the dedup mechanism.
package delivery

import (
	"errors"
	"time"

	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"
	"avpayments/internal/pkg/guard"
)

// Domain errors for delivery operations.
var (
	// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Address derives the storage address of the delivery created by the given
// customer under the caller-chosen delivery id.
func Address(customer kernel.Identity, deliveryID uint64) kernel.Address {
	raw := customer.Bytes()
	return kernel.DeriveAddress("delivery", raw[:], kernel.Uint64Seed(deliveryID))
}

// Delivery is the aggregate root of the delivery lifecycle.
//
// Delivery follows these invariants:
//   - paymentAmount is positive and fixed at creation; the matching escrow
//     account holds exactly this amount until settlement
//   - status transitions strictly Pending -> InProgress -> Completed
//   - assignedVehicle is set exactly when the delivery leaves Pending and
//     is immutable afterwards
//   - a delivery is never reused or reopened
type Delivery struct {
	// deliveryID is the caller-chosen integer, unique per customer
	deliveryID uint64
	// customer is the identity that created and funded the delivery
	customer kernel.Identity
	// paymentAmount is the escrowed payment in base units
	paymentAmount uint64
	// pickupLocation is where the shipment is picked up
	pickupLocation kernel.GeoPoint
	// deliveryLocation is where the shipment is dropped off
	deliveryLocation kernel.GeoPoint
	// status is the current lifecycle state
	status Status
	// assignedVehicle is the address of the accepting vehicle (nil while Pending)
	assignedVehicle *kernel.Address
	// createdAt, acceptedAt, completedAt are the lifecycle timestamps
	createdAt   time.Time
	acceptedAt  *time.Time
	completedAt *time.Time
	// version is the optimistic concurrency token of the persisted record
	version int64

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery order in Pending status with no assigned
// vehicle. The payment amount must be positive; escrow funding is performed
// by the caller in the same atomic unit that persists the delivery.
func NewDelivery(
	deliveryID uint64,
	customer kernel.Identity,
	paymentAmount uint64,
	pickupLocation kernel.GeoPoint,
	deliveryLocation kernel.GeoPoint,
) (*Delivery, error) {
	delivery := &Delivery{
		deliveryID: deliveryID,
		status:     Pending,
		createdAt:  time.Now().UTC(),
		version:    1,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setCustomer(customer),
		delivery.setPaymentAmount(paymentAmount),
		delivery.setPickupLocation(pickupLocation),
		delivery.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage,
// including its lifecycle state, vehicle assignment, timestamps and
// concurrency version. The status/assignment pairing is re-validated so a
// corrupted record cannot re-enter the domain.
func RestoreDelivery(
	deliveryID uint64,
	customer kernel.Identity,
	paymentAmount uint64,
	pickupLocation kernel.GeoPoint,
	deliveryLocation kernel.GeoPoint,
	status Status,
	assignedVehicle *kernel.Address,
	createdAt time.Time,
	acceptedAt *time.Time,
	completedAt *time.Time,
	version int64,
) (*Delivery, error) {
	delivery := &Delivery{
		deliveryID:  deliveryID,
		createdAt:   createdAt,
		acceptedAt:  acceptedAt,
		completedAt: completedAt,
		version:     version,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setCustomer(customer),
		delivery.setPaymentAmount(paymentAmount),
		delivery.setPickupLocation(pickupLocation),
		delivery.setDeliveryLocation(deliveryLocation),
		status.Validate(),
		status.ValidateCanHaveVehicle(assignedVehicle != nil),
	); err != nil {
		return nil, err
	}
	if assignedVehicle != nil {
		if err := assignedVehicle.Validate(); err != nil {
			return nil, err
		}
		vehicleAddress := *assignedVehicle
		delivery.assignedVehicle = &vehicleAddress
	}
	if version <= 0 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	delivery.status = status
	return delivery, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// Address returns the derived storage address of the delivery record.
func (d *Delivery) Address() kernel.Address {
	return Address(d.customer, d.deliveryID)
}

// DeliveryID returns the caller-chosen delivery id.
func (d *Delivery) DeliveryID() uint64 {
	return d.deliveryID
}

// Customer returns the identity that created and funded the delivery.
func (d *Delivery) Customer() kernel.Identity {
	return d.customer
}

// PaymentAmount returns the escrowed payment in base units.
func (d *Delivery) PaymentAmount() uint64 {
	return d.paymentAmount
}

// PickupLocation returns the pickup position.
func (d *Delivery) PickupLocation() kernel.GeoPoint {
	return d.pickupLocation
}

// DeliveryLocation returns the dropoff position.
func (d *Delivery) DeliveryLocation() kernel.GeoPoint {
	return d.deliveryLocation
}

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// AssignedVehicle returns the address of the accepting vehicle.
// Returns nil exactly while the delivery is Pending.
func (d *Delivery) AssignedVehicle() *kernel.Address {
	return d.assignedVehicle
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// AcceptedAt returns the acceptance timestamp, nil while Pending.
func (d *Delivery) AcceptedAt() *time.Time {
	return d.acceptedAt
}

// CompletedAt returns the completion timestamp, nil until Completed.
func (d *Delivery) CompletedAt() *time.Time {
	return d.completedAt
}

// Version returns the optimistic concurrency token of the persisted record.
func (d *Delivery) Version() int64 {
	return d.version
}

// Accept transitions the delivery to InProgress and binds it to the
// accepting vehicle. Only a Pending delivery can be accepted; the losing
// side of an acceptance race fails here with InvalidState and the
// assignment is never overwritten.
func (d *Delivery) Accept(vehicleAddress kernel.Address) error {
	if err := vehicleAddress.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Accept()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	d.status = newStatus
	d.assignedVehicle = &vehicleAddress
	d.acceptedAt = &now
	return nil
}

// Complete transitions the delivery to its terminal Completed state.
// Only an InProgress delivery can be completed; settlement of the escrowed
// payment happens in the same atomic unit as this transition.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	d.status = newStatus
	d.completedAt = &now
	return nil
}

func (d *Delivery) setCustomer(customer kernel.Identity) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	d.customer = customer
	return nil
}

func (d *Delivery) setPaymentAmount(paymentAmount uint64) error {
	if paymentAmount == 0 {
		return errs.NewValueIsRequiredError("paymentAmount")
	}
	d.paymentAmount = paymentAmount
	return nil
}

func (d *Delivery) setPickupLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.pickupLocation = location
	return nil
}

func (d *Delivery) setDeliveryLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.deliveryLocation = location
	return nil
}
