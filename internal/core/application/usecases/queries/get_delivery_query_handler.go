package queries

import (
	"context"
	"database/sql"
	"errors"

	"avpayments/internal/core/domain/model/delivery"
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryQueryHandler retrieves one delivery order from the database.
// Reads the row at the derived address directly, without going through the
// aggregate or a transaction.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single delivery queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the query. Fails with AccountNotFound when no delivery
// exists for the customer and identifier.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	address := delivery.Address(query.Customer(), query.DeliveryID())

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			address,
			delivery_id,
			customer,
			payment_amount,
			pickup_location,
			delivery_location,
			status,
			assigned_vehicle,
			created_at,
			accepted_at,
			completed_at
		FROM deliveries
		WHERE address = ?
	`, address.String()).Row()

	var (
		resp            GetDeliveryQueryResponse
		rawAddress      string
		customer        uuid.UUID
		status          int
		assignedVehicle sql.NullString
		acceptedAt      sql.NullTime
		completedAt     sql.NullTime
	)

	err := row.Scan(
		&rawAddress,
		&resp.DeliveryID,
		&customer,
		&resp.PaymentAmount,
		&resp.PickupLocation,
		&resp.DeliveryLocation,
		&status,
		&assignedVehicle,
		&resp.CreatedAt,
		&acceptedAt,
		&completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryQueryResponse{}, errs.NewAccountNotFoundError("delivery", address.String())
	}
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	if resp.Address, err = kernel.AddressFromString(rawAddress); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if resp.Customer, err = kernel.IdentityFromBytes(customer[:]); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	resp.Status = delivery.Status(status)

	if assignedVehicle.Valid {
		vehicleAddress, addrErr := kernel.AddressFromString(assignedVehicle.String)
		if addrErr != nil {
			return GetDeliveryQueryResponse{}, addrErr
		}
		resp.AssignedVehicle = &vehicleAddress
	}
	if acceptedAt.Valid {
		at := acceptedAt.Time.UTC()
		resp.AcceptedAt = &at
	}
	if completedAt.Valid {
		at := completedAt.Time.UTC()
		resp.CompletedAt = &at
	}
	resp.CreatedAt = resp.CreatedAt.UTC()

	return resp, nil
}
