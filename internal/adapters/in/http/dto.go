package http

import "time"

// Error is the JSON error envelope returned by every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// InitializePlatformRequest is the payload for POST /api/v1/platform.
type InitializePlatformRequest struct {
	Authority string `json:"authority"`
	Treasury  string `json:"treasury"`
	FeeBps    uint16 `json:"feeBps"`
}

// UpdatePlatformRequest is the payload for PUT /api/v1/platform.
type UpdatePlatformRequest struct {
	Authority string `json:"authority"`
	Signer    string `json:"signer"`
	FeeBps    uint16 `json:"feeBps"`
	IsActive  bool   `json:"isActive"`
	IsPaused  bool   `json:"isPaused"`
}

// RegisterVehicleRequest is the payload for POST /api/v1/vehicles.
type RegisterVehicleRequest struct {
	Authority string `json:"authority"`
	Signer    string `json:"signer"`
	VehicleID string `json:"vehicleId"`
	Operator  string `json:"operator"`
	Location  string `json:"location"`
}

// CreditWalletRequest is the payload for POST /api/v1/wallets/credit.
type CreditWalletRequest struct {
	Authority string `json:"authority"`
	Signer    string `json:"signer"`
	Holder    string `json:"holder"`
	Amount    uint64 `json:"amount"`
}

// CreateDeliveryRequest is the payload for POST /api/v1/deliveries.
type CreateDeliveryRequest struct {
	Authority        string `json:"authority"`
	Customer         string `json:"customer"`
	DeliveryID       uint64 `json:"deliveryId"`
	PaymentAmount    uint64 `json:"paymentAmount"`
	PickupLocation   string `json:"pickupLocation"`
	DeliveryLocation string `json:"deliveryLocation"`
}

// AcceptDeliveryRequest is the payload for POST /api/v1/deliveries/accept.
type AcceptDeliveryRequest struct {
	Authority  string `json:"authority"`
	Signer     string `json:"signer"`
	Customer   string `json:"customer"`
	DeliveryID uint64 `json:"deliveryId"`
	VehicleID  string `json:"vehicleId"`
}

// CompleteDeliveryRequest is the payload for POST /api/v1/deliveries/complete.
type CompleteDeliveryRequest struct {
	Authority  string `json:"authority"`
	Signer     string `json:"signer"`
	Customer   string `json:"customer"`
	DeliveryID uint64 `json:"deliveryId"`
}

// Delivery is the JSON representation of one delivery order.
type Delivery struct {
	Address          string     `json:"address"`
	DeliveryID       uint64     `json:"deliveryId"`
	Customer         string     `json:"customer"`
	PaymentAmount    uint64     `json:"paymentAmount"`
	PickupLocation   string     `json:"pickupLocation"`
	DeliveryLocation string     `json:"deliveryLocation"`
	Status           string     `json:"status"`
	AssignedVehicle  *string    `json:"assignedVehicle,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	AcceptedAt       *time.Time `json:"acceptedAt,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

// PendingDelivery is the JSON representation of a delivery awaiting a vehicle.
type PendingDelivery struct {
	Address          string    `json:"address"`
	DeliveryID       uint64    `json:"deliveryId"`
	Customer         string    `json:"customer"`
	PaymentAmount    uint64    `json:"paymentAmount"`
	PickupLocation   string    `json:"pickupLocation"`
	DeliveryLocation string    `json:"deliveryLocation"`
	CreatedAt        time.Time `json:"createdAt"`
}
