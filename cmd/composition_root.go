package cmd

import (
	"log/slog"
	"time"

	httpadapter "tableside/internal/adapters/in/http"
	"tableside/internal/adapters/out/postgres"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/ports"
	"tableside/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	location   *time.Location
	reportCron string
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, location *time.Location, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      ports.SystemClock,
		location:   location,
		reportCron: configs.ReportCron,
		logger:     logger,
	}
}

// readUoW returns a unit of work that is never begun. Its repositories read
// straight from the pool.
func (c *CompositionRoot) readUoW() ports.UnitOfWork {
	return c.uowFactory.Create()
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoW() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoW(), c.clock)
}

func (c *CompositionRoot) CreateRequestAssistanceCommandHandler() commands.RequestAssistanceCommandHandler {
	return commands.NewRequestAssistanceCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateAcknowledgeAssistanceCommandHandler() commands.AcknowledgeAssistanceCommandHandler {
	return commands.NewAcknowledgeAssistanceCommandHandler(c.orderUoW(), c.clock)
}

func (c *CompositionRoot) CreateAddTableCommandHandler() commands.AddTableCommandHandler {
	return commands.NewAddTableCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateDeleteTableCommandHandler() commands.DeleteTableCommandHandler {
	return commands.NewDeleteTableCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.menuUoW())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuUoW())
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.menuUoW())
}

func (c *CompositionRoot) CreateGetTableMenuQueryHandler() queries.GetTableMenuQueryHandler {
	uow := c.readUoW()
	return queries.NewGetTableMenuQueryHandler(uow.TableRepository(), uow.MenuItemRepository(), uow.OrderRepository())
}

func (c *CompositionRoot) CreateGetActiveOrdersForTableQueryHandler() queries.GetActiveOrdersForTableQueryHandler {
	uow := c.readUoW()
	return queries.NewGetActiveOrdersForTableQueryHandler(uow.TableRepository(), uow.OrderRepository())
}

func (c *CompositionRoot) CreateGetTableOrderSummaryQueryHandler() queries.GetTableOrderSummaryQueryHandler {
	uow := c.readUoW()
	return queries.NewGetTableOrderSummaryQueryHandler(uow.TableRepository(), uow.OrderRepository())
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.readUoW().OrderRepository())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readUoW().OrderRepository())
}

func (c *CompositionRoot) CreateGetRecentOrdersQueryHandler() queries.GetRecentOrdersQueryHandler {
	return queries.NewGetRecentOrdersQueryHandler(c.readUoW().OrderRepository())
}

func (c *CompositionRoot) CreateGetSalesSummaryQueryHandler() queries.GetSalesSummaryQueryHandler {
	return queries.NewGetSalesSummaryQueryHandler(c.readUoW().OrderRepository())
}

func (c *CompositionRoot) CreateGetTableBoardQueryHandler() queries.GetTableBoardQueryHandler {
	return queries.NewGetTableBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTablesQueryHandler() queries.ListTablesQueryHandler {
	return queries.NewListTablesQueryHandler(c.readUoW().TableRepository())
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.readUoW().MenuItemRepository())
}

// CreateHTTPServer wires every use case into the JSON API.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:     c.CreateChangeOrderStatusCommandHandler(),
		RequestAssistance:     c.CreateRequestAssistanceCommandHandler(),
		AcknowledgeAssistance: c.CreateAcknowledgeAssistanceCommandHandler(),
		AddTable:              c.CreateAddTableCommandHandler(),
		DeleteTable:           c.CreateDeleteTableCommandHandler(),
		AddMenuItem:           c.CreateAddMenuItemCommandHandler(),
		UpdateMenuItem:        c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:        c.CreateDeleteMenuItemCommandHandler(),

		GetTableMenu:            c.CreateGetTableMenuQueryHandler(),
		GetActiveOrdersForTable: c.CreateGetActiveOrdersForTableQueryHandler(),
		GetTableOrderSummary:    c.CreateGetTableOrderSummaryQueryHandler(),
		GetOpenOrders:           c.CreateGetOpenOrdersQueryHandler(),
		GetOrder:                c.CreateGetOrderQueryHandler(),
		GetRecentOrders:         c.CreateGetRecentOrdersQueryHandler(),
		GetSalesSummary:         c.CreateGetSalesSummaryQueryHandler(),
		GetTableBoard:           c.CreateGetTableBoardQueryHandler(),
		ListTables:              c.CreateListTablesQueryHandler(),
		ListMenuItems:           c.CreateListMenuItemsQueryHandler(),
	}, c.clock, c.location, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	report := jobs.NewDailySalesReportJob(c.CreateGetSalesSummaryQueryHandler(), c.clock, c.location, c.reportCron, c.logger)
	return jobs.NewJobManager(report)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
