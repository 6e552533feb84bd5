package cmd

import (
	"context"
	"fmt"
	"time"

	"warehouse/internal/core/application/session"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/sirupsen/logrus"
)

type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int, error)
}

type OrderLister interface {
	Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.GetOrdersQueryResponse, error)
}

type WarehouseCreator interface {
	Handle(ctx context.Context, cmd commands.CreateWarehouseCommand) error
}

type LocationAdder interface {
	Handle(ctx context.Context, cmd commands.AddLocationCommand) (kernel.Location, error)
}

type ReorderPointSetter interface {
	Handle(ctx context.Context, cmd commands.SetReorderPointCommand) error
}

type WarehouseLister interface {
	Handle(ctx context.Context) ([]queries.GetWarehousesQueryResponse, error)
}

const (
	demoWarehouseCode = "WH"
	demoWarehouseName = "Main Warehouse"
)

// demoLocations are the locations used by demoOrders, by code.
var demoLocations = [][2]string{
	{"Stock1", "Storage Room A"},
	{"Stock2", "Storage Room B"},
	{"Stock3", "Storage Room C"},
}

var demoReorderPoints = map[string]int{
	"DESK001":  10,
	"CHAIR001": 15,
}

type demoLine struct {
	code     string
	name     string
	quantity int
}

type demoOrder struct {
	kind        order.Kind
	partner     string
	location    string
	scheduledAt time.Time
	lines       []demoLine

	// validations is how many times Validate is applied after the lines are added
	validations int
}

func day(d int) time.Time {
	return time.Date(2025, time.December, d, 0, 0, 0, 0, time.UTC)
}

func desk(qty int) demoLine {
	return demoLine{code: "DESK001", name: "Desk", quantity: qty}
}

func chair(qty int) demoLine {
	return demoLine{code: "CHAIR001", name: "Office Chair", quantity: qty}
}

// demoOrders are created in order, so ids match the references of the demo data.
// Receipts are validated first to put stock on hand before the deliveries check it.
var demoOrders = []demoOrder{
	{order.Receipt, "Azure Interior", "WH/Stock1", day(20), []demoLine{desk(6), chair(12)}, 0},
	{order.Receipt, "Modern Supplies Co", "WH/Stock2", day(22), []demoLine{desk(10)}, 1},
	{order.Receipt, "Office Depot", "WH/Stock1", day(18), []demoLine{desk(25), chair(5)}, 2},
	{order.Receipt, "Azure Interior", "WH/Stock3", day(25), []demoLine{chair(20)}, 0},
	{order.Delivery, "Azure Interior", "WH/Stock1", day(21), []demoLine{desk(6)}, 1},
	{order.Delivery, "Modern Supplies Co", "WH/Stock1", day(23), []demoLine{desk(4)}, 1},
	{order.Delivery, "Office Depot", "WH/Stock2", day(19), []demoLine{desk(10)}, 2},
	{order.Delivery, "Azure Interior", "WH/Stock3", day(26), []demoLine{desk(6), chair(12)}, 1},
	{order.Delivery, "Tech Solutions Inc", "WH/Stock1", day(24), []demoLine{chair(2)}, 0},
}

// Seeder fills an empty database with the demo warehouse, reorder points, receipts
// and deliveries through the regular command handlers.
type Seeder struct {
	createOrderHandler     OrderCreator
	addLineHandler         session.LineAdder
	validateHandler        session.OrderValidator
	getOrdersHandler       OrderLister
	createWarehouseHandler WarehouseCreator
	addLocationHandler     LocationAdder
	setReorderPointHandler ReorderPointSetter
	getWarehousesHandler   WarehouseLister
	logger                 *logrus.Entry
}

func NewSeeder(
	createOrderHandler OrderCreator,
	addLineHandler session.LineAdder,
	validateHandler session.OrderValidator,
	getOrdersHandler OrderLister,
	createWarehouseHandler WarehouseCreator,
	addLocationHandler LocationAdder,
	setReorderPointHandler ReorderPointSetter,
	getWarehousesHandler WarehouseLister,
	logger *logrus.Logger,
) *Seeder {
	return &Seeder{
		createOrderHandler:     createOrderHandler,
		addLineHandler:         addLineHandler,
		validateHandler:        validateHandler,
		getOrdersHandler:       getOrdersHandler,
		createWarehouseHandler: createWarehouseHandler,
		addLocationHandler:     addLocationHandler,
		setReorderPointHandler: setReorderPointHandler,
		getWarehousesHandler:   getWarehousesHandler,
		logger:                 logger.WithField("component", "seeder"),
	}
}

// Seed does nothing when any receipt or delivery exists.
func (s *Seeder) Seed(ctx context.Context) error {
	empty, err := s.isEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		s.logger.Info("Orders exist, demo data skipped")
		return nil
	}

	if err = s.seedRegistry(ctx); err != nil {
		return err
	}

	ids := make([]int, len(demoOrders))
	for i, demo := range demoOrders {
		if ids[i], err = s.create(ctx, demo); err != nil {
			return err
		}
	}

	// receipts come first in demoOrders
	for i, demo := range demoOrders {
		if err = s.fill(ctx, demo, ids[i]); err != nil {
			return err
		}
	}

	s.logger.WithField("orders", len(demoOrders)).Info("Demo data seeded")
	return nil
}

// seedRegistry registers the demo warehouse unless one exists, then sets the demo
// reorder points.
func (s *Seeder) seedRegistry(ctx context.Context) error {
	warehouses, err := s.getWarehousesHandler.Handle(ctx)
	if err != nil {
		return err
	}

	if len(warehouses) == 0 {
		if err = s.seedWarehouse(ctx); err != nil {
			return err
		}
	}

	for sku, point := range demoReorderPoints {
		cmd, err := commands.NewSetReorderPointCommand(sku, point)
		if err != nil {
			return err
		}
		if err = s.setReorderPointHandler.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed reorder point of %s: %w", sku, err)
		}
	}
	return nil
}

func (s *Seeder) seedWarehouse(ctx context.Context) error {
	cmd, err := commands.NewCreateWarehouseCommand(demoWarehouseCode, demoWarehouseName, "")
	if err != nil {
		return err
	}
	if err = s.createWarehouseHandler.Handle(ctx, cmd); err != nil {
		return fmt.Errorf("seed warehouse %s: %w", demoWarehouseCode, err)
	}

	for _, loc := range demoLocations {
		cmd, err := commands.NewAddLocationCommand(demoWarehouseCode, loc[0], loc[1])
		if err != nil {
			return err
		}
		if _, err = s.addLocationHandler.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed location %s/%s: %w", demoWarehouseCode, loc[0], err)
		}
	}

	s.logger.WithField("warehouse", demoWarehouseCode).Info("Demo warehouse registered")
	return nil
}

func (s *Seeder) isEmpty(ctx context.Context) (bool, error) {
	for _, kind := range []order.Kind{order.Receipt, order.Delivery} {
		query, err := queries.NewGetOrdersQuery(kind)
		if err != nil {
			return false, err
		}
		orders, err := s.getOrdersHandler.Handle(ctx, query)
		if err != nil {
			return false, err
		}
		if len(orders) > 0 {
			return false, nil
		}
	}
	return true, nil
}

func (s *Seeder) create(ctx context.Context, demo demoOrder) (int, error) {
	location, err := kernel.LocationFromString(demo.location)
	if err != nil {
		return 0, err
	}

	cmd, err := commands.NewCreateOrderCommand(demo.kind, demo.partner, location, demo.scheduledAt)
	if err != nil {
		return 0, err
	}

	id, err := s.createOrderHandler.Handle(ctx, cmd)
	if err != nil {
		return 0, fmt.Errorf("seed %s order for %s: %w", demo.kind, demo.partner, err)
	}
	return id, nil
}

func (s *Seeder) fill(ctx context.Context, demo demoOrder, id int) error {
	for _, line := range demo.lines {
		cmd, err := commands.NewAddLineItemCommand(demo.kind, id, line.code, line.name, line.quantity)
		if err != nil {
			return err
		}
		if _, err = s.addLineHandler.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed line of %s: %w", order.FormatReference(demo.kind, id), err)
		}
	}

	for range demo.validations {
		cmd, err := commands.NewValidateOrderCommand(demo.kind, id)
		if err != nil {
			return err
		}
		if _, err = s.validateHandler.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("seed validate of %s: %w", order.FormatReference(demo.kind, id), err)
		}
	}
	return nil
}
