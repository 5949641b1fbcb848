package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "tableside/internal/adapters/in/http"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	staffID = kernel.MustUUIDFromString("8c1d4a4e-7c0e-4d58-9b8e-2f0c5b6f7a11")
	orderID = kernel.MustUUIDFromString("1f6f0a2b-3c4d-4e5f-8a9b-0c1d2e3f4a5b")
	now     = time.Date(2024, 5, 1, 17, 30, 0, 0, time.UTC)
)

type commandFunc[C any] func(ctx context.Context, cmd C) error

func (f commandFunc[C]) Handle(ctx context.Context, cmd C) error {
	return f(ctx, cmd)
}

type queryFunc[Q, R any] func(ctx context.Context, query Q) (R, error)

func (f queryFunc[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	return f(ctx, query)
}

func newTestEcho(t *testing.T, handlers httpadapter.Handlers, validate bool) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := httpadapter.NewServer(handlers, ports.ClockFunc(func() time.Time { return now }), time.UTC, logger)

	e := echo.New()
	if validate {
		doc, err := httpadapter.LoadOpenAPI(context.Background())
		require.NoError(t, err)
		validator, err := httpadapter.RequestValidator(doc)
		require.NoError(t, err)
		e.Use(validator)
	}
	server.RegisterHandlers(e)
	return e
}

func serve(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func staffHeaders() map[string]string {
	return map[string]string{
		httpadapter.HeaderActorRole: "staff",
		httpadapter.HeaderActorID:   staffID.String(),
	}
}

func adminHeaders() map[string]string {
	return map[string]string{
		httpadapter.HeaderActorRole: "admin",
		httpadapter.HeaderActorID:   staffID.String(),
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.Error {
	t.Helper()
	var body httpadapter.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	e := newTestEcho(t, httpadapter.Handlers{}, true)

	rec := serve(e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestOpenAPIDocument_IsServed(t *testing.T) {
	e := newTestEcho(t, httpadapter.Handlers{}, false)

	rec := serve(e, http.MethodGet, "/openapi.yaml", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")
}

func TestPlaceTableOrder_AnonymousCustomer(t *testing.T) {
	var captured commands.CreateOrderCommand
	e := newTestEcho(t, httpadapter.Handlers{
		CreateOrder: commandFunc[commands.CreateOrderCommand](func(_ context.Context, cmd commands.CreateOrderCommand) error {
			captured = cmd
			return nil
		}),
	}, true)

	rec := serve(e, http.MethodPost, "/tables/t1/orders", `{"quantities":{"a":"2","b":"x"}}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created httpadapter.Created
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, captured.OrderID().Bytes(), created.ID)
	assert.Equal(t, "T1", captured.TableCode())
	assert.Equal(t, map[string]string{"a": "2", "b": "x"}, captured.Quantities())
	assert.Nil(t, captured.CreatedBy())
}

func TestPlaceStaffOrder_RecordsCreator(t *testing.T) {
	var captured commands.CreateOrderCommand
	e := newTestEcho(t, httpadapter.Handlers{
		CreateOrder: commandFunc[commands.CreateOrderCommand](func(_ context.Context, cmd commands.CreateOrderCommand) error {
			captured = cmd
			return nil
		}),
	}, true)

	rec := serve(e, http.MethodPost, "/staff/orders", `{"tableCode":"b2","quantities":{"a":"1"}}`, staffHeaders())

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "B2", captured.TableCode())
	require.NotNil(t, captured.CreatedBy())
	assert.Equal(t, staffID, *captured.CreatedBy())
}

func TestPlaceTableOrder_NothingSelected_ReturnsBadRequest(t *testing.T) {
	e := newTestEcho(t, httpadapter.Handlers{
		CreateOrder: commandFunc[commands.CreateOrderCommand](func(context.Context, commands.CreateOrderCommand) error {
			return order.ErrNoItemsSelected
		}),
	}, true)

	rec := serve(e, http.MethodPost, "/tables/T1/orders", `{"quantities":{}}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoleGates(t *testing.T) {
	openOrders := queryFunc[queries.GetOpenOrdersQuery, []queries.OrderView](
		func(context.Context, queries.GetOpenOrdersQuery) ([]queries.OrderView, error) {
			return []queries.OrderView{}, nil
		},
	)
	tables := queryFunc[queries.ListTablesQuery, []queries.TableView](
		func(context.Context, queries.ListTablesQuery) ([]queries.TableView, error) {
			return []queries.TableView{}, nil
		},
	)
	e := newTestEcho(t, httpadapter.Handlers{GetOpenOrders: openOrders, ListTables: tables}, true)

	tests := []struct {
		name     string
		target   string
		headers  map[string]string
		expected int
	}{
		{"anonymous on staff view", "/staff/orders", nil, http.StatusForbidden},
		{"customer on staff view", "/staff/orders", map[string]string{httpadapter.HeaderActorRole: "customer"}, http.StatusForbidden},
		{"staff on staff view", "/staff/orders", staffHeaders(), http.StatusOK},
		{"admin on staff view", "/staff/orders", adminHeaders(), http.StatusOK},
		{"staff on admin view", "/admin/tables", staffHeaders(), http.StatusForbidden},
		{"admin on admin view", "/admin/tables", adminHeaders(), http.StatusOK},
		{"staff without id", "/staff/orders", map[string]string{httpadapter.HeaderActorRole: "staff"}, http.StatusBadRequest},
		{"unknown role", "/staff/orders", map[string]string{httpadapter.HeaderActorRole: "chef"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, http.MethodGet, tt.target, "", tt.headers)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestChangeOrderStatus_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"success", nil, http.StatusNoContent},
		{"invalid status", order.NewInvalidStatusError("bogus"), http.StatusUnprocessableEntity},
		{"not found", errs.NewObjectNotFoundError("order", orderID.String()), http.StatusNotFound},
		{"validation", errs.NewValueIsRequiredError("status"), http.StatusBadRequest},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured commands.ChangeOrderStatusCommand
			e := newTestEcho(t, httpadapter.Handlers{
				ChangeOrderStatus: commandFunc[commands.ChangeOrderStatusCommand](
					func(_ context.Context, cmd commands.ChangeOrderStatusCommand) error {
						captured = cmd
						return tt.err
					},
				),
			}, true)

			rec := serve(e, http.MethodPost, "/staff/orders/"+orderID.String()+"/status",
				`{"status":"paid","paymentMethod":"cash"}`, staffHeaders())

			assert.Equal(t, tt.expected, rec.Code)
			assert.Equal(t, orderID, captured.OrderID())
			assert.Equal(t, "paid", captured.Status())
			assert.Equal(t, "cash", captured.PaymentMethod())
		})
	}
}

func TestInternalError_HidesDetails(t *testing.T) {
	e := newTestEcho(t, httpadapter.Handlers{
		GetOpenOrders: queryFunc[queries.GetOpenOrdersQuery, []queries.OrderView](
			func(context.Context, queries.GetOpenOrdersQuery) ([]queries.OrderView, error) {
				return nil, errors.New("password authentication failed")
			},
		),
	}, true)

	rec := serve(e, http.MethodGet, "/staff/orders", "", staffHeaders())

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rec).Message)
}

func TestGetTableOrderSummary_RendersOrder(t *testing.T) {
	paidAt := now
	method := "card"
	e := newTestEcho(t, httpadapter.Handlers{
		GetTableOrderSummary: queryFunc[queries.GetTableOrderSummaryQuery, queries.GetTableOrderSummaryQueryResponse](
			func(_ context.Context, query queries.GetTableOrderSummaryQuery) (queries.GetTableOrderSummaryQueryResponse, error) {
				assert.Equal(t, "T9", query.TableCode())
				assert.Equal(t, orderID, query.OrderID())
				return queries.GetTableOrderSummaryQueryResponse{
					Table: queries.TableView{ID: staffID, Code: "T9", Name: "Terrace"},
					Order: queries.OrderView{
						ID:          orderID,
						Status:      "paid",
						StatusIndex: 4,
						Items: []queries.OrderItemView{{
							ID:           orderID,
							MenuItemName: "Pad Thai",
							Quantity:     2,
							Price:        kernel.MoneyFromCents(8000),
							Subtotal:     kernel.MoneyFromCents(16000),
						}},
						TotalAmount:   kernel.MoneyFromCents(16000),
						PaidAt:        &paidAt,
						PaymentMethod: &method,
					},
					Pipeline: []string{"pending", "preparing", "served", "completed", "paid"},
				}, nil
			},
		),
	}, true)

	rec := serve(e, http.MethodGet, "/tables/t9/orders/"+orderID.String(), "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body httpadapter.OrderSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Terrace", body.Table.Name)
	assert.Equal(t, "160.00", body.Order.TotalAmount)
	assert.Equal(t, "80.00", body.Order.Items[0].Price)
	assert.Equal(t, 4, body.Order.StatusIndex)
	assert.Equal(t, "card", *body.Order.PaymentMethod)
	assert.Len(t, body.Pipeline, 5)
}

func TestMalformedOrderID_ReturnsBadRequest(t *testing.T) {
	for _, validate := range []bool{true, false} {
		e := newTestEcho(t, httpadapter.Handlers{}, validate)

		rec := serve(e, http.MethodGet, "/staff/orders/not-a-uuid", "", staffHeaders())

		assert.Equal(t, http.StatusBadRequest, rec.Code, "validate=%v", validate)
	}
}

func TestRequestValidator_RejectsBodyMissingRequiredFields(t *testing.T) {
	called := false
	e := newTestEcho(t, httpadapter.Handlers{
		AddTable: commandFunc[commands.AddTableCommand](func(context.Context, commands.AddTableCommand) error {
			called = true
			return nil
		}),
	}, true)

	rec := serve(e, http.MethodPost, "/admin/tables", `{"code":"T1"}`, adminHeaders())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestRequestValidator_UnknownPathFallsThrough(t *testing.T) {
	e := newTestEcho(t, httpadapter.Handlers{}, true)

	rec := serve(e, http.MethodGet, "/kitchen", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddMenuItem_DefaultsToAvailable(t *testing.T) {
	var captured commands.AddMenuItemCommand
	e := newTestEcho(t, httpadapter.Handlers{
		AddMenuItem: commandFunc[commands.AddMenuItemCommand](func(_ context.Context, cmd commands.AddMenuItemCommand) error {
			captured = cmd
			return nil
		}),
	}, true)

	rec := serve(e, http.MethodPost, "/admin/menu", `{"name":"Som Tam","price":"45.5","category":"salads"}`, adminHeaders())

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Som Tam", captured.Name())
	assert.Equal(t, "45.50", captured.Price().String())
	assert.True(t, captured.Available())
}

func TestAddMenuItem_UnparsablePrice_ReturnsBadRequest(t *testing.T) {
	e := newTestEcho(t, httpadapter.Handlers{}, true)

	rec := serve(e, http.MethodPost, "/admin/menu", `{"name":"Som Tam","price":"cheap"}`, adminHeaders())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTable_WithOrders_ReturnsBadRequest(t *testing.T) {
	e := newTestEcho(t, httpadapter.Handlers{
		DeleteTable: commandFunc[commands.DeleteTableCommand](func(context.Context, commands.DeleteTableCommand) error {
			return commands.ErrTableHasOrders
		}),
	}, true)

	rec := serve(e, http.MethodDelete, "/admin/tables/"+orderID.String(), "", adminHeaders())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDashboard_UsesConfiguredDay(t *testing.T) {
	var captured queries.GetSalesSummaryQuery
	e := newTestEcho(t, httpadapter.Handlers{
		GetSalesSummary: queryFunc[queries.GetSalesSummaryQuery, queries.GetSalesSummaryQueryResponse](
			func(_ context.Context, query queries.GetSalesSummaryQuery) (queries.GetSalesSummaryQueryResponse, error) {
				captured = query
				return queries.GetSalesSummaryQueryResponse{
					TotalRevenue: kernel.MoneyFromCents(20000),
					TodayRevenue: kernel.MoneyFromCents(17000),
					RecentOrders: []queries.OrderView{},
				}, nil
			},
		),
	}, true)

	rec := serve(e, http.MethodGet, "/admin/dashboard", "", adminHeaders())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, now.Equal(captured.Today()))

	var body httpadapter.SalesSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "200.00", body.TotalRevenue)
	assert.Equal(t, "170.00", body.TodayRevenue)
	assert.Empty(t, body.RecentOrders)
}

func TestGetRecentOrders_BindsLimit(t *testing.T) {
	var captured queries.GetRecentOrdersQuery
	e := newTestEcho(t, httpadapter.Handlers{
		GetRecentOrders: queryFunc[queries.GetRecentOrdersQuery, []queries.OrderView](
			func(_ context.Context, query queries.GetRecentOrdersQuery) ([]queries.OrderView, error) {
				captured = query
				return nil, nil
			},
		),
	}, true)

	rec := serve(e, http.MethodGet, "/admin/orders?limit=5", "", adminHeaders())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, captured.Limit())
	assert.JSONEq(t, `[]`, rec.Body.String())
}
