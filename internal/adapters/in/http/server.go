// Package http exposes the settlement operations over a JSON API.
// It coordinates between HTTP handlers and application use cases and maps
// the domain error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"avpayments/internal/core/application/usecases/commands"
	"avpayments/internal/core/application/usecases/queries"
	"avpayments/internal/core/domain/model/kernel"
	"avpayments/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the settlement API.
type Server struct {
	// Command handlers
	initializeConfigHandler     commands.InitializeConfigCommandHandler
	updatePlatformConfigHandler commands.UpdatePlatformConfigCommandHandler
	registerVehicleHandler      commands.RegisterVehicleCommandHandler
	creditWalletHandler         commands.CreditWalletCommandHandler
	createDeliveryOrderHandler  commands.CreateDeliveryOrderCommandHandler
	acceptDeliveryHandler       commands.AcceptDeliveryCommandHandler
	completeDeliveryHandler     commands.CompleteDeliveryCommandHandler

	// Query handlers
	getDeliveryHandler          queries.GetDeliveryQueryHandler
	getPendingDeliveriesHandler queries.GetPendingDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	initializeConfigHandler commands.InitializeConfigCommandHandler,
	updatePlatformConfigHandler commands.UpdatePlatformConfigCommandHandler,
	registerVehicleHandler commands.RegisterVehicleCommandHandler,
	creditWalletHandler commands.CreditWalletCommandHandler,
	createDeliveryOrderHandler commands.CreateDeliveryOrderCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	getPendingDeliveriesHandler queries.GetPendingDeliveriesQueryHandler,
) *Server {
	return &Server{
		initializeConfigHandler:     initializeConfigHandler,
		updatePlatformConfigHandler: updatePlatformConfigHandler,
		registerVehicleHandler:      registerVehicleHandler,
		creditWalletHandler:         creditWalletHandler,
		createDeliveryOrderHandler:  createDeliveryOrderHandler,
		acceptDeliveryHandler:       acceptDeliveryHandler,
		completeDeliveryHandler:     completeDeliveryHandler,
		getDeliveryHandler:          getDeliveryHandler,
		getPendingDeliveriesHandler: getPendingDeliveriesHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/platform", s.InitializePlatform)
	api.PUT("/platform", s.UpdatePlatform)
	api.POST("/vehicles", s.RegisterVehicle)
	api.POST("/wallets/credit", s.CreditWallet)
	api.POST("/deliveries", s.CreateDelivery)
	api.POST("/deliveries/accept", s.AcceptDelivery)
	api.POST("/deliveries/complete", s.CompleteDelivery)
	api.GET("/deliveries/pending", s.GetPendingDeliveries)
	api.GET("/deliveries/:customer/:deliveryId", s.GetDelivery)
}

// InitializePlatform handles POST /api/v1/platform.
func (s *Server) InitializePlatform(ctx echo.Context) error {
	var req InitializePlatformRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	authority, err := kernel.IdentityFromString(req.Authority)
	if err != nil {
		return badRequest(ctx, "Invalid authority: "+err.Error())
	}
	treasury, err := kernel.IdentityFromString(req.Treasury)
	if err != nil {
		return badRequest(ctx, "Invalid treasury: "+err.Error())
	}

	cmd, err := commands.NewInitializeConfigCommand(authority, treasury, req.FeeBps)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.initializeConfigHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdatePlatform handles PUT /api/v1/platform.
func (s *Server) UpdatePlatform(ctx echo.Context) error {
	var req UpdatePlatformRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	authority, err := kernel.IdentityFromString(req.Authority)
	if err != nil {
		return badRequest(ctx, "Invalid authority: "+err.Error())
	}
	signer, err := kernel.IdentityFromString(req.Signer)
	if err != nil {
		return badRequest(ctx, "Invalid signer: "+err.Error())
	}

	cmd, err := commands.NewUpdatePlatformConfigCommand(authority, signer, req.FeeBps, req.IsActive, req.IsPaused)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.updatePlatformConfigHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterVehicle handles POST /api/v1/vehicles.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var req RegisterVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	authority, err := kernel.IdentityFromString(req.Authority)
	if err != nil {
		return badRequest(ctx, "Invalid authority: "+err.Error())
	}
	signer, err := kernel.IdentityFromString(req.Signer)
	if err != nil {
		return badRequest(ctx, "Invalid signer: "+err.Error())
	}
	operator, err := kernel.IdentityFromString(req.Operator)
	if err != nil {
		return badRequest(ctx, "Invalid operator: "+err.Error())
	}

	cmd, err := commands.NewRegisterVehicleCommand(authority, signer, req.VehicleID, operator, req.Location)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.registerVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreditWallet handles POST /api/v1/wallets/credit.
func (s *Server) CreditWallet(ctx echo.Context) error {
	var req CreditWalletRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	authority, err := kernel.IdentityFromString(req.Authority)
	if err != nil {
		return badRequest(ctx, "Invalid authority: "+err.Error())
	}
	signer, err := kernel.IdentityFromString(req.Signer)
	if err != nil {
		return badRequest(ctx, "Invalid signer: "+err.Error())
	}
	holder, err := kernel.IdentityFromString(req.Holder)
	if err != nil {
		return badRequest(ctx, "Invalid holder: "+err.Error())
	}

	cmd, err := commands.NewCreditWalletCommand(authority, signer, holder, req.Amount)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.creditWalletHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	authority, err := kernel.IdentityFromString(req.Authority)
	if err != nil {
		return badRequest(ctx, "Invalid authority: "+err.Error())
	}
	customer, err := kernel.IdentityFromString(req.Customer)
	if err != nil {
		return badRequest(ctx, "Invalid customer: "+err.Error())
	}

	cmd, err := commands.NewCreateDeliveryOrderCommand(
		authority, customer, req.DeliveryID, req.PaymentAmount, req.PickupLocation, req.DeliveryLocation)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.createDeliveryOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AcceptDelivery handles POST /api/v1/deliveries/accept.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	var req AcceptDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	authority, err := kernel.IdentityFromString(req.Authority)
	if err != nil {
		return badRequest(ctx, "Invalid authority: "+err.Error())
	}
	signer, err := kernel.IdentityFromString(req.Signer)
	if err != nil {
		return badRequest(ctx, "Invalid signer: "+err.Error())
	}
	customer, err := kernel.IdentityFromString(req.Customer)
	if err != nil {
		return badRequest(ctx, "Invalid customer: "+err.Error())
	}

	cmd, err := commands.NewAcceptDeliveryCommand(authority, signer, customer, req.DeliveryID, req.VehicleID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/deliveries/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	var req CompleteDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	authority, err := kernel.IdentityFromString(req.Authority)
	if err != nil {
		return badRequest(ctx, "Invalid authority: "+err.Error())
	}
	signer, err := kernel.IdentityFromString(req.Signer)
	if err != nil {
		return badRequest(ctx, "Invalid signer: "+err.Error())
	}
	customer, err := kernel.IdentityFromString(req.Customer)
	if err != nil {
		return badRequest(ctx, "Invalid customer: "+err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(authority, signer, customer, req.DeliveryID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDelivery handles GET /api/v1/deliveries/:customer/:deliveryId.
func (s *Server) GetDelivery(ctx echo.Context) error {
	customer, err := kernel.IdentityFromString(ctx.Param("customer"))
	if err != nil {
		return badRequest(ctx, "Invalid customer: "+err.Error())
	}

	var deliveryID uint64
	if err := echo.PathParamsBinder(ctx).Uint64("deliveryId", &deliveryID).BindError(); err != nil {
		return badRequest(ctx, "Invalid delivery id")
	}

	query, err := queries.NewGetDeliveryQuery(customer, deliveryID)
	if err != nil {
		return domainError(ctx, err)
	}

	resp, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	var assignedVehicle *string
	if resp.AssignedVehicle != nil {
		raw := resp.AssignedVehicle.String()
		assignedVehicle = &raw
	}

	return ctx.JSON(http.StatusOK, Delivery{
		Address:          resp.Address.String(),
		DeliveryID:       resp.DeliveryID,
		Customer:         resp.Customer.String(),
		PaymentAmount:    resp.PaymentAmount,
		PickupLocation:   resp.PickupLocation,
		DeliveryLocation: resp.DeliveryLocation,
		Status:           resp.Status.String(),
		AssignedVehicle:  assignedVehicle,
		CreatedAt:        resp.CreatedAt,
		AcceptedAt:       resp.AcceptedAt,
		CompletedAt:      resp.CompletedAt,
	})
}

// GetPendingDeliveries handles GET /api/v1/deliveries/pending.
func (s *Server) GetPendingDeliveries(ctx echo.Context) error {
	query := queries.NewGetPendingDeliveriesQuery()

	pending, err := s.getPendingDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]PendingDelivery, len(pending))
	for i, p := range pending {
		response[i] = PendingDelivery{
			Address:          p.Address.String(),
			DeliveryID:       p.DeliveryID,
			Customer:         p.Customer.String(),
			PaymentAmount:    p.PaymentAmount,
			PickupLocation:   p.PickupLocation,
			DeliveryLocation: p.DeliveryLocation,
			CreatedAt:        p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps the domain error taxonomy onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrAccountNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrAddressAlreadyInUse),
		errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrArithmeticOverflow):
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
