package cmd

import (
	httpin "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/session"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/jobs"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *logrus.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *logrus.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateOrderCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() *commands.AddLineItemCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewAddLineItemCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateValidateOrderCommandHandler() *commands.ValidateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	h := commands.NewValidateOrderCommandHandler(f, services.NewStockPoster())
	return &h
}

func (c *CompositionRoot) CreateRefreshAvailabilityCommandHandler() *commands.RefreshAvailabilityCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewRefreshAvailabilityCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() *commands.CreateWarehouseCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateWarehouseCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateAddLocationCommandHandler() *commands.AddLocationCommandHandler {
	var f commands.WarehouseUoWFactory = FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewAddLocationCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateSetReorderPointCommandHandler() *commands.SetReorderPointCommandHandler {
	var f commands.ReorderUoWFactory = FuncReorderUoWFactory(func() commands.ReorderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewSetReorderPointCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockLedgerQueryHandler() queries.GetStockLedgerQueryHandler {
	return queries.NewGetStockLedgerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWarehousesQueryHandler() queries.GetWarehousesQueryHandler {
	return queries.NewGetWarehousesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockQueryHandler() queries.GetStockQueryHandler {
	return queries.NewGetStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() (*httpin.Server, error) {
	sessions, err := session.NewManager(c.config.Credentials(), c.config.SessionTTL)
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAddLineItemCommandHandler(),
		c.CreateValidateOrderCommandHandler(),
		c.CreateRefreshAvailabilityCommandHandler(),
		c.CreateCreateWarehouseCommandHandler(),
		c.CreateAddLocationCommandHandler(),
		c.CreateSetReorderPointCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetStockLedgerQueryHandler(),
		c.CreateGetWarehousesQueryHandler(),
		c.CreateGetStockQueryHandler(),
		c.CreateGetDashboardQueryHandler(),
		sessions,
		c.logger,
	), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshAvailabilityCommandHandler(),
		c.config.AvailabilityRefreshSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) CreateSeeder() *Seeder {
	return NewSeeder(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAddLineItemCommandHandler(),
		c.CreateValidateOrderCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateCreateWarehouseCommandHandler(),
		c.CreateAddLocationCommandHandler(),
		c.CreateSetReorderPointCommandHandler(),
		c.CreateGetWarehousesQueryHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncReorderUoWFactory func() commands.ReorderUoW

func (f FuncReorderUoWFactory) Create() commands.ReorderUoW {
	return f()
}
