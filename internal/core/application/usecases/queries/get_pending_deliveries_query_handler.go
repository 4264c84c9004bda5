package queries

import (
	"context"

	"avpayments/internal/core/domain/model/delivery"
	"avpayments/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingDeliveriesQueryHandler retrieves deliveries awaiting a vehicle
// from the database. Results are sorted by creation time so the oldest
// orders surface first.
type GetPendingDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingDeliveriesQueryHandler creates a handler for pending delivery queries.
// Requires a GORM database connection for query execution.
func NewGetPendingDeliveriesQueryHandler(db *gorm.DB) GetPendingDeliveriesQueryHandler {
	return GetPendingDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending deliveries.
func (h GetPendingDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingDeliveriesQuery,
) ([]GetPendingDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending := make([]GetPendingDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			address,
			delivery_id,
			customer,
			payment_amount,
			pickup_location,
			delivery_location,
			created_at
		FROM deliveries
		WHERE status = ?
		ORDER BY created_at, address
	`, delivery.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp       GetPendingDeliveriesQueryResponse
			rawAddress string
			customer   uuid.UUID
		)

		if err = rows.Scan(
			&rawAddress,
			&resp.DeliveryID,
			&customer,
			&resp.PaymentAmount,
			&resp.PickupLocation,
			&resp.DeliveryLocation,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if resp.Address, err = kernel.AddressFromString(rawAddress); err != nil {
			return nil, err
		}
		if resp.Customer, err = kernel.IdentityFromBytes(customer[:]); err != nil {
			return nil, err
		}
		resp.CreatedAt = resp.CreatedAt.UTC()

		pending = append(pending, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
