// Package http exposes the ordering API over HTTP using Echo.
package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressRequest carries the delivery address of a new order.
type AddressRequest struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// OrderItemRequest carries one order line of a new order.
type OrderItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	SubTotal  decimal.Decimal `json:"subTotal"`
}

// CreateOrderRequest is the JSON body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customerId"`
	RestaurantID string             `json:"restaurantId"`
	Address      AddressRequest     `json:"address"`
	Price        decimal.Decimal    `json:"price"`
	Items        []OrderItemRequest `json:"items"`
}

// CreateOrderResponse is the JSON body returned for a created order.
type CreateOrderResponse struct {
	OrderTrackingID string `json:"orderTrackingId"`
	OrderStatus     string `json:"orderStatus"`
	Message         string `json:"message"`
}

// TrackOrderResponse is the JSON body of GET /api/v1/orders/:trackingId.
type TrackOrderResponse struct {
	OrderTrackingID string   `json:"orderTrackingId"`
	OrderStatus     string   `json:"orderStatus"`
	FailureMessages []string `json:"failureMessages"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler

	// Query handlers
	trackOrderHandler queries.TrackOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		trackOrderHandler:  trackOrderHandler,
	}
}

// RegisterRoutes attaches the ordering API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders/:trackingId", s.TrackOrder)
}

// CreateOrder handles POST /api/v1/orders - creates a new order and starts the saga.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := toCreateOrderCommand(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	response, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CreateOrderResponse{
		OrderTrackingID: response.OrderTrackingID.String(),
		OrderStatus:     response.OrderStatus.String(),
		Message:         response.Message,
	})
}

// TrackOrder handles GET /api/v1/orders/:trackingId - returns the public order state.
func (s *Server) TrackOrder(ctx echo.Context) error {
	trackingID, err := kernel.UUIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking id",
		})
	}

	query, err := queries.NewTrackOrderQuery(trackingID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking id",
		})
	}

	result, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackOrderResponse{
		OrderTrackingID: result.OrderTrackingID.String(),
		OrderStatus:     result.OrderStatus.String(),
		FailureMessages: result.FailureMessages,
	})
}

// errorResponse maps application errors onto HTTP status codes: domain rule
// and value errors are client faults, missing objects are 404, everything
// else is a 500 with the details kept out of the response body.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrDomainRuleViolated),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

// toCreateOrderCommand maps the request body to the application command,
// parsing identifiers and money values.
func toCreateOrderCommand(request CreateOrderRequest) (commands.CreateOrderCommand, error) {
	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	address, err := kernel.NewAddress(
		request.Address.Street,
		request.Address.PostalCode,
		request.Address.City,
	)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]commands.CreateOrderItem, 0, len(request.Items))
	for _, itemRequest := range request.Items {
		productID, productErr := kernel.UUIDFromString(itemRequest.ProductID)
		if productErr != nil {
			return commands.CreateOrderCommand{}, productErr
		}

		item, itemErr := commands.NewCreateOrderItem(
			productID,
			itemRequest.Quantity,
			kernel.NewMoney(itemRequest.Price),
			kernel.NewMoney(itemRequest.SubTotal),
		)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}
		items = append(items, item)
	}

	return commands.NewCreateOrderCommand(
		customerID,
		restaurantID,
		address,
		kernel.NewMoney(request.Price),
		items,
	)
}
