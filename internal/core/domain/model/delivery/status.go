package delivery

import (
	"fmt"

	"avpayments/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions:
//
//	Pending ──> InProgress ──> Completed
//
// Completed is terminal; a delivery is never reused or reopened, and no
// cancellation path exists. Status is a value object that validates state
// transitions and provides string representations for persistence and
// display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created delivery whose
	// payment is escrowed and which awaits acceptance by an operator.
	Pending

	// InProgress indicates the delivery has been accepted by a vehicle
	// operator and the vehicle is assigned.
	InProgress

	// Completed indicates the delivery has been fulfilled and settled.
	// This is a terminal state with no further transitions allowed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
		Completed:  "Completed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, InProgress and Completed; Unknown (0) and any
// other values are invalid. Used to vet Status values coming from
// persistence or external callers before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// ValidateCanHaveVehicle validates the consistency between the delivery
// status and its vehicle assignment: a delivery has an assigned vehicle
// exactly when it has left the Pending state.
func (s Status) ValidateCanHaveVehicle(hasVehicle bool) error {
	if hasVehicle && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have an assigned vehicle", s.String()),
		)
	}

	if !hasVehicle && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no assigned vehicle", s.String()),
		)
	}

	return nil
}

// Accept transitions the status to InProgress.
//
// The only valid transition is Pending -> InProgress. Any other source
// state fails with InvalidState: this is the guard that makes two operators
// racing for the same pending delivery resolve to exactly one winner, since
// the loser no longer observes Pending.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError(
			fmt.Sprintf("delivery is %s, not Pending", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// The only valid transition is InProgress -> Completed. Completing a
// Pending or already Completed delivery fails with InvalidState.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidStateError(
			fmt.Sprintf("delivery is %s, not InProgress", s.String()),
		)
	}

	return Completed, nil
}
