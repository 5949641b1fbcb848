// Package http exposes the ordering engine as a JSON API on echo.
//
// The adapter is thin: it turns requests into commands and queries, resolves the
// acting user from gateway headers and applies one role gate per view group.
// Customer routes need no role, staff routes need staff or admin, admin routes
// need admin.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/actor"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CommandHandler is satisfied by every handler in the commands package.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// QueryHandler is satisfied by every handler in the queries package.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers lists the use cases the API exposes.
type Handlers struct {
	CreateOrder           CommandHandler[commands.CreateOrderCommand]
	ChangeOrderStatus     CommandHandler[commands.ChangeOrderStatusCommand]
	RequestAssistance     CommandHandler[commands.RequestAssistanceCommand]
	AcknowledgeAssistance CommandHandler[commands.AcknowledgeAssistanceCommand]
	AddTable              CommandHandler[commands.AddTableCommand]
	DeleteTable           CommandHandler[commands.DeleteTableCommand]
	AddMenuItem           CommandHandler[commands.AddMenuItemCommand]
	UpdateMenuItem        CommandHandler[commands.UpdateMenuItemCommand]
	DeleteMenuItem        CommandHandler[commands.DeleteMenuItemCommand]

	GetTableMenu            QueryHandler[queries.GetTableMenuQuery, queries.GetTableMenuQueryResponse]
	GetActiveOrdersForTable QueryHandler[queries.GetActiveOrdersForTableQuery, []queries.OrderView]
	GetTableOrderSummary    QueryHandler[queries.GetTableOrderSummaryQuery, queries.GetTableOrderSummaryQueryResponse]
	GetOpenOrders           QueryHandler[queries.GetOpenOrdersQuery, []queries.OrderView]
	GetOrder                QueryHandler[queries.GetOrderQuery, queries.OrderView]
	GetRecentOrders         QueryHandler[queries.GetRecentOrdersQuery, []queries.OrderView]
	GetSalesSummary         QueryHandler[queries.GetSalesSummaryQuery, queries.GetSalesSummaryQueryResponse]
	GetTableBoard           QueryHandler[queries.GetTableBoardQuery, []queries.GetTableBoardQueryResponse]
	ListTables              QueryHandler[queries.ListTablesQuery, []queries.TableView]
	ListMenuItems           QueryHandler[queries.ListMenuItemsQuery, []queries.MenuItemView]
}

// Server coordinates between HTTP requests and application use cases.
type Server struct {
	handlers Handlers
	clock    ports.Clock
	location *time.Location
	logger   *slog.Logger
}

// NewServer creates the API server. location decides which calendar day counts as
// "today" on the dashboard.
func NewServer(handlers Handlers, clock ports.Clock, location *time.Location, logger *slog.Logger) *Server {
	if location == nil {
		location = time.UTC
	}
	return &Server{
		handlers: handlers,
		clock:    clock,
		location: location,
		logger:   logger.With("component", "http"),
	}
}

// RegisterHandlers mounts every route on e.
func (s *Server) RegisterHandlers(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/openapi.yaml", s.OpenAPIDocument)

	customer := e.Group("/tables", s.ActorMiddleware)
	customer.GET("/:code/menu", s.GetTableMenu)
	customer.GET("/:code/orders", s.GetActiveOrdersForTable)
	customer.POST("/:code/orders", s.PlaceTableOrder)
	customer.GET("/:code/orders/:orderId", s.GetTableOrderSummary)
	customer.POST("/:code/orders/:orderId/assistance", s.RequestAssistance)

	staff := e.Group("/staff", s.ActorMiddleware, s.RequireRole(actor.RoleStaff, actor.RoleAdmin))
	staff.GET("/orders", s.GetOpenOrders)
	staff.POST("/orders", s.PlaceStaffOrder)
	staff.GET("/orders/:orderId", s.GetOrder)
	staff.POST("/orders/:orderId/status", s.ChangeOrderStatus)
	staff.POST("/orders/:orderId/acknowledge", s.AcknowledgeAssistance)
	staff.GET("/tables", s.GetTableBoard)
	staff.GET("/menu", s.GetOrderableMenu)

	admin := e.Group("/admin", s.ActorMiddleware, s.RequireRole(actor.RoleAdmin))
	admin.GET("/dashboard", s.GetDashboard)
	admin.GET("/orders", s.GetRecentOrders)
	admin.GET("/menu", s.ListMenuItems)
	admin.POST("/menu", s.AddMenuItem)
	admin.PUT("/menu/:itemId", s.UpdateMenuItem)
	admin.DELETE("/menu/:itemId", s.DeleteMenuItem)
	admin.GET("/tables", s.ListTables)
	admin.POST("/tables", s.AddTable)
	admin.DELETE("/tables/:tableId", s.DeleteTable)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// OpenAPIDocument handles GET /openapi.yaml.
func (s *Server) OpenAPIDocument(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/yaml", openAPIDocument)
}

// GetTableMenu handles GET /tables/{code}/menu.
func (s *Server) GetTableMenu(c echo.Context) error {
	query, err := queries.NewGetTableMenuQuery(c.Param("code"))
	if err != nil {
		return writeError(c, s.logger, err)
	}

	menu, err := s.handlers.GetTableMenu.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, toTableMenu(menu))
}

// GetActiveOrdersForTable handles GET /tables/{code}/orders.
func (s *Server) GetActiveOrdersForTable(c echo.Context) error {
	query, err := queries.NewGetActiveOrdersForTableQuery(c.Param("code"))
	if err != nil {
		return writeError(c, s.logger, err)
	}

	orders, err := s.handlers.GetActiveOrdersForTable.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, toOrders(orders))
}

// PlaceTableOrder handles POST /tables/{code}/orders.
func (s *Server) PlaceTableOrder(c echo.Context) error {
	var body NewTableOrder
	if err := c.Bind(&body); err != nil {
		return s.invalidBody(c)
	}

	return s.placeOrder(c, c.Param("code"), body.Quantities)
}

// GetTableOrderSummary handles GET /tables/{code}/orders/{orderId}.
func (s *Server) GetTableOrderSummary(c echo.Context) error {
	orderID, err := bindPathUUID(c, "orderId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	query, err := queries.NewGetTableOrderSummaryQuery(c.Param("code"), orderID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	summary, err := s.handlers.GetTableOrderSummary.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, OrderSummary{
		Table:    toTable(summary.Table),
		Order:    toOrder(summary.Order),
		Pipeline: summary.Pipeline,
	})
}

// RequestAssistance handles POST /tables/{code}/orders/{orderId}/assistance.
func (s *Server) RequestAssistance(c echo.Context) error {
	orderID, err := bindPathUUID(c, "orderId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	cmd, err := commands.NewRequestAssistanceCommand(c.Param("code"), orderID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return s.execute(c, s.handlers.RequestAssistance.Handle(c.Request().Context(), cmd))
}

// GetOpenOrders handles GET /staff/orders.
func (s *Server) GetOpenOrders(c echo.Context) error {
	orders, err := s.handlers.GetOpenOrders.Handle(c.Request().Context(), queries.NewGetOpenOrdersQuery())
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, toOrders(orders))
}

// PlaceStaffOrder handles POST /staff/orders.
func (s *Server) PlaceStaffOrder(c echo.Context) error {
	var body NewStaffOrder
	if err := c.Bind(&body); err != nil {
		return s.invalidBody(c)
	}

	return s.placeOrder(c, body.TableCode, body.Quantities)
}

// GetOrder handles GET /staff/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := bindPathUUID(c, "orderId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, toOrder(view))
}

// ChangeOrderStatus handles POST /staff/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	orderID, err := bindPathUUID(c, "orderId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	var body StatusChange
	if err = c.Bind(&body); err != nil {
		return s.invalidBody(c)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, body.Status, body.PaymentMethod)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return s.execute(c, s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd))
}

// AcknowledgeAssistance handles POST /staff/orders/{orderId}/acknowledge.
func (s *Server) AcknowledgeAssistance(c echo.Context) error {
	orderID, err := bindPathUUID(c, "orderId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	cmd, err := commands.NewAcknowledgeAssistanceCommand(orderID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return s.execute(c, s.handlers.AcknowledgeAssistance.Handle(c.Request().Context(), cmd))
}

// GetTableBoard handles GET /staff/tables.
func (s *Server) GetTableBoard(c echo.Context) error {
	board, err := s.handlers.GetTableBoard.Handle(c.Request().Context(), queries.NewGetTableBoardQuery())
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, toTableBoard(board))
}

// GetOrderableMenu handles GET /staff/menu.
func (s *Server) GetOrderableMenu(c echo.Context) error {
	return s.listMenuItems(c, queries.AvailableByName)
}

// GetDashboard handles GET /admin/dashboard.
func (s *Server) GetDashboard(c echo.Context) error {
	query, err := queries.NewGetSalesSummaryQuery(s.clock.Now().In(s.location))
	if err != nil {
		return writeError(c, s.logger, err)
	}

	summary, err := s.handlers.GetSalesSummary.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, SalesSummary{
		TotalRevenue: summary.TotalRevenue.String(),
		TodayRevenue: summary.TodayRevenue.String(),
		RecentOrders: toOrders(summary.RecentOrders),
	})
}

// GetRecentOrders handles GET /admin/orders.
func (s *Server) GetRecentOrders(c echo.Context) error {
	var limit int
	err := runtime.BindQueryParameter("form", true, false, "limit", c.QueryParams(), &limit)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid limit"})
	}

	orders, err := s.handlers.GetRecentOrders.Handle(c.Request().Context(), queries.NewGetRecentOrdersQuery(limit))
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, toOrders(orders))
}

// ListMenuItems handles GET /admin/menu.
func (s *Server) ListMenuItems(c echo.Context) error {
	return s.listMenuItems(c, queries.AllByCategory)
}

// AddMenuItem handles POST /admin/menu.
func (s *Server) AddMenuItem(c echo.Context) error {
	var body MenuItemInput
	if err := c.Bind(&body); err != nil {
		return s.invalidBody(c)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewAddMenuItemCommand(
		id, body.Name, body.Description, body.Price, body.Category, isAvailable(body.Available),
	)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.handlers.AddMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// UpdateMenuItem handles PUT /admin/menu/{itemId}.
func (s *Server) UpdateMenuItem(c echo.Context) error {
	itemID, err := bindPathUUID(c, "itemId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	var body MenuItemInput
	if err = c.Bind(&body); err != nil {
		return s.invalidBody(c)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		itemID, body.Name, body.Description, body.Price, body.Category, isAvailable(body.Available),
	)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return s.execute(c, s.handlers.UpdateMenuItem.Handle(c.Request().Context(), cmd))
}

// DeleteMenuItem handles DELETE /admin/menu/{itemId}.
func (s *Server) DeleteMenuItem(c echo.Context) error {
	itemID, err := bindPathUUID(c, "itemId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(itemID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return s.execute(c, s.handlers.DeleteMenuItem.Handle(c.Request().Context(), cmd))
}

// ListTables handles GET /admin/tables.
func (s *Server) ListTables(c echo.Context) error {
	tables, err := s.handlers.ListTables.Handle(c.Request().Context(), queries.NewListTablesQuery())
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, toTables(tables))
}

// AddTable handles POST /admin/tables.
func (s *Server) AddTable(c echo.Context) error {
	var body NewTable
	if err := c.Bind(&body); err != nil {
		return s.invalidBody(c)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewAddTableCommand(id, body.Code, body.Name)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.handlers.AddTable.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// DeleteTable handles DELETE /admin/tables/{tableId}.
func (s *Server) DeleteTable(c echo.Context) error {
	tableID, err := bindPathUUID(c, "tableId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	cmd, err := commands.NewDeleteTableCommand(tableID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return s.execute(c, s.handlers.DeleteTable.Handle(c.Request().Context(), cmd))
}

func (s *Server) placeOrder(c echo.Context, tableCode string, quantities map[string]string) error {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, tableCode, quantities, currentActor(c))
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

func (s *Server) listMenuItems(c echo.Context, order queries.MenuItemOrder) error {
	items, err := s.handlers.ListMenuItems.Handle(c.Request().Context(), queries.NewListMenuItemsQuery(order))
	if err != nil {
		return writeError(c, s.logger, err)
	}

	return c.JSON(http.StatusOK, toMenuItems(items))
}

// execute answers a command: 204 on success, the mapped error otherwise.
func (s *Server) execute(c echo.Context, err error) error {
	if err != nil {
		return writeError(c, s.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "Invalid request body"})
}

func bindPathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(raw[:])
}

func isAvailable(available *bool) bool {
	return available == nil || *available
}
