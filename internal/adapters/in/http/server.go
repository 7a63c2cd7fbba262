package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	createOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	updateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error
	}
	changeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}
	cancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	listMyOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListMyOrdersQuery) ([]queries.OrderSummary, error)
	}
	listOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
	}
	getOrderDetailHandler interface {
		Handle(ctx context.Context, query queries.GetOrderDetailQuery) (queries.OrderDetail, error)
	}
)

// Handlers are the use cases the API exposes.
type Handlers struct {
	CreateOrder       createOrderHandler
	UpdateOrder       updateOrderHandler
	ChangeOrderStatus changeOrderStatusHandler
	CancelOrder       cancelOrderHandler
	ListMyOrders      listMyOrdersHandler
	ListOrders        listOrdersHandler
	GetOrderDetail    getOrderDetailHandler
}

// Server translates HTTP requests into commands and queries. Commands return
// nothing, so every write answers with the order read back through
// GetOrderDetail.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// CreateOrder godoc
//
//	@Summary	Place an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateOrderRequest	true	"Order"
//	@Success	201		{object}	OrderDetailResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	menuID, err := kernel.UUIDFromString(req.MenuID)
	if err != nil {
		return err
	}
	details, err := req.details()
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actor, menuID, details)
	if err != nil {
		return err
	}
	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(c, http.StatusCreated, actor, orderID)
}

// ListMyOrders godoc
//
//	@Summary	List the caller's orders, newest first
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	OrderResponse
//	@Router		/orders/me [get]
func (s *Server) ListMyOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListMyOrdersQuery(actor)
	if err != nil {
		return err
	}
	summaries, err := s.handlers.ListMyOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderListResponse(summaries))
}

// ListOrders godoc
//
//	@Summary	List every order (staff only)
//	@Tags		orders
//	@Produce	json
//	@Param		status		query		string	false	"Status"
//	@Param		from		query		string	false	"First event date, YYYY-MM-DD"
//	@Param		to			query		string	false	"Last event date, YYYY-MM-DD"
//	@Param		city		query		string	false	"City"
//	@Param		customer	query		string	false	"Part of the customer name"
//	@Success	200			{array}		OrderResponse
//	@Failure	403			{object}	ErrorResponse
//	@Router		/orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	filter, err := parseOrderFilter(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListOrdersQuery(actor, filter)
	if err != nil {
		return err
	}
	summaries, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderListResponse(summaries))
}

// GetOrder godoc
//
//	@Summary	Get an order with its status history
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order id"
//	@Success	200	{object}	OrderDetailResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return err
	}

	return s.respondWithOrder(c, http.StatusOK, actor, orderID)
}

// UpdateOrder godoc
//
//	@Summary	Revise a PLACED order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Order id"
//	@Param		order	body		UpdateOrderRequest	true	"Changed fields"
//	@Success	200		{object}	OrderDetailResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	403		{object}	ErrorResponse
//	@Router		/orders/{id} [put]
func (s *Server) UpdateOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return err
	}

	var req UpdateOrderRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	patch, err := req.patch()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, actor, patch)
	if err != nil {
		return err
	}
	if err = s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(c, http.StatusOK, actor, orderID)
}

// ChangeOrderStatus godoc
//
//	@Summary		Move an order along its lifecycle (staff only)
//	@Description	CANCELLED is rejected here; use POST /orders/{id}/cancel.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Order id"
//	@Param			status	body		ChangeStatusRequest	true	"Target status"
//	@Success		200		{object}	OrderDetailResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Router			/orders/{id}/status [patch]
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return err
	}

	var req ChangeStatusRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actor, status, req.Note)
	if err != nil {
		return err
	}
	if err = s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(c, http.StatusOK, actor, orderID)
}

// CancelOrder godoc
//
//	@Summary	Cancel an order (staff only)
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id				path		string				true	"Order id"
//	@Param		cancellation	body		CancelOrderRequest	true	"Contact mode and reason"
//	@Success	200				{object}	OrderDetailResponse
//	@Failure	400				{object}	ErrorResponse
//	@Failure	403				{object}	ErrorResponse
//	@Failure	409				{object}	ErrorResponse
//	@Router		/orders/{id}/cancel [post]
func (s *Server) CancelOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return err
	}

	var req CancelOrderRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor, req.ContactMode, req.Reason)
	if err != nil {
		return err
	}
	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithOrder(c, http.StatusOK, actor, orderID)
}

func (s *Server) respondWithOrder(c echo.Context, status int, actor kernel.Actor, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderDetailQuery(actor, orderID)
	if err != nil {
		return err
	}
	detail, err := s.handlers.GetOrderDetail.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(status, orderDetailResponse(detail))
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	return c.Validate(req)
}

func parseOrderFilter(c echo.Context) (queries.OrderFilter, error) {
	filter := queries.OrderFilter{
		City:         c.QueryParam("city"),
		CustomerName: c.QueryParam("customer"),
	}

	if raw := c.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return queries.OrderFilter{}, err
		}
		filter.Status = status
	}

	for _, p := range []struct {
		name string
		dst  *time.Time
	}{
		{"from", &filter.EventFrom},
		{"to", &filter.EventTo},
	} {
		raw := c.QueryParam(p.name)
		if raw == "" {
			continue
		}
		day, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return queries.OrderFilter{}, errs.NewValueIsInvalidErrorWithCause(p.name, err)
		}
		*p.dst = day
	}

	return filter, nil
}
