package http

import (
	"strings"
	"time"

	"warehouse/internal/core/application/session"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newError(code int, message string) Error {
	return Error{Code: code, Message: message}
}

type NewOrder struct {
	Partner     string    `json:"partner"     validate:"required,max=255"`
	Location    string    `json:"location"    validate:"required"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
}

type CreatedOrder struct {
	ID        int    `json:"id"`
	Reference string `json:"reference"`
}

type NewLine struct {
	Code     string `json:"code"     validate:"required,max=64"`
	Name     string `json:"name"     validate:"required,max=255"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

type CreatedLine struct {
	ID string `json:"id"`
}

type OrderSummary struct {
	ID           int       `json:"id"`
	Reference    string    `json:"reference"`
	Partner      string    `json:"partner"`
	Location     string    `json:"location"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	Status       string    `json:"status"`
	Lines        int       `json:"lines"`
	HasShortfall bool      `json:"hasShortfall"`
}

type Line struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	InStock  bool   `json:"inStock"`
}

type OrderDetails struct {
	ID           int       `json:"id"`
	Reference    string    `json:"reference"`
	Partner      string    `json:"partner"`
	Location     string    `json:"location"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	Status       string    `json:"status"`
	Version      int       `json:"version"`
	Lines        []Line    `json:"lines"`
	AllInStock   bool      `json:"allInStock"`
	HasShortfall bool      `json:"hasShortfall"`
}

type ValidateResult struct {
	Reference string `json:"reference"`
	Previous  string `json:"previous"`
	Status    string `json:"status"`
	Changed   bool   `json:"changed"`
	Posted    int    `json:"posted"`
}

type RefreshResult struct {
	Checked int `json:"checked"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

type LedgerEntry struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	SKU          string    `json:"sku"`
	Product      string    `json:"product"`
	Quantity     int       `json:"quantity"`
	Location     string    `json:"location"`
	Reference    string    `json:"reference"`
	PostedAt     time.Time `json:"postedAt"`
	RunningStock int       `json:"runningStock"`
}

type NewWarehouse struct {
	Code    string `json:"code"    validate:"required,max=5"`
	Name    string `json:"name"    validate:"required,max=255"`
	Address string `json:"address" validate:"max=500"`
}

type NewLocation struct {
	Code string `json:"code" validate:"required,max=255"`
	Name string `json:"name" validate:"required,max=255"`
}

type CreatedLocation struct {
	Location string `json:"location"`
}

type Warehouse struct {
	Code      string            `json:"code"`
	Name      string            `json:"name"`
	Address   string            `json:"address"`
	Locations []StorageLocation `json:"locations"`
}

type StorageLocation struct {
	Location string `json:"location"`
	Name     string `json:"name"`
}

type ReorderPoint struct {
	Point int `json:"point" validate:"gte=0"`
}

type StockItem struct {
	SKU          string     `json:"sku"`
	Product      string     `json:"product"`
	OnHand       int        `json:"onHand"`
	ReorderPoint int        `json:"reorderPoint"`
	Status       string     `json:"status"`
	LastMovedAt  *time.Time `json:"lastMovedAt,omitempty"`
}

type OrderCounters struct {
	Total   int `json:"total"`
	Open    int `json:"open"`
	Late    int `json:"late"`
	Waiting int `json:"waiting"`
}

type Dashboard struct {
	TotalStock     int           `json:"totalStock"`
	ReceivedToday  int           `json:"receivedToday"`
	DeliveredToday int           `json:"deliveredToday"`
	LowStockItems  int           `json:"lowStockItems"`
	Receipts       OrderCounters `json:"receipts"`
	Deliveries     OrderCounters `json:"deliveries"`
}

type Login struct {
	LoginID  string `json:"loginId"  validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SessionCreated struct {
	Token   string       `json:"token"`
	Session SessionState `json:"session"`
}

type SessionState struct {
	User  string `json:"user"`
	Page  string `json:"page"`
	Order string `json:"order,omitempty"`
}

type Navigate struct {
	Page string `json:"page" validate:"required"`
}

type OpenOrder struct {
	Kind string `json:"kind" validate:"oneof=receipts deliveries"`
	ID   int    `json:"id"   validate:"gt=0"`
}

func toOrderSummary(o queries.GetOrdersQueryResponse) OrderSummary {
	return OrderSummary{
		ID:           o.ID,
		Reference:    o.Reference,
		Partner:      o.Partner,
		Location:     o.Location,
		ScheduledAt:  o.ScheduledAt,
		Status:       strings.ToLower(o.Status.String()),
		Lines:        o.Lines,
		HasShortfall: o.HasShortfall,
	}
}

func toOrderDetails(o queries.GetOrderQueryResponse) OrderDetails {
	lines := make([]Line, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = Line{
			ID:       l.ID.String(),
			Code:     l.Code,
			Name:     l.Name,
			Quantity: l.Quantity,
			InStock:  l.InStock,
		}
	}

	return OrderDetails{
		ID:           o.ID,
		Reference:    o.Reference,
		Partner:      o.Partner,
		Location:     o.Location,
		ScheduledAt:  o.ScheduledAt,
		Status:       strings.ToLower(o.Status.String()),
		Version:      o.Version,
		Lines:        lines,
		AllInStock:   o.Availability.AllInStock,
		HasShortfall: o.Availability.HasShortfall,
	}
}

func toValidateResult(r commands.ValidateOrderResult) ValidateResult {
	return ValidateResult{
		Reference: r.Reference,
		Previous:  strings.ToLower(r.Previous.String()),
		Status:    strings.ToLower(r.Status.String()),
		Changed:   r.Changed,
		Posted:    r.Posted,
	}
}

func toLedgerEntry(e queries.GetStockLedgerQueryResponse) LedgerEntry {
	return LedgerEntry{
		ID:           e.ID.String(),
		Type:         strings.ToLower(e.Type.String()),
		SKU:          e.SKU,
		Product:      e.Product,
		Quantity:     e.Quantity,
		Location:     e.Location,
		Reference:    e.Reference,
		PostedAt:     e.PostedAt,
		RunningStock: e.RunningStock,
	}
}

func toWarehouse(w queries.GetWarehousesQueryResponse) Warehouse {
	locations := make([]StorageLocation, len(w.Locations))
	for i, l := range w.Locations {
		locations[i] = StorageLocation{Location: l.Location, Name: l.Name}
	}
	return Warehouse{
		Code:      w.Code,
		Name:      w.Name,
		Address:   w.Address,
		Locations: locations,
	}
}

func toStockItem(r queries.GetStockQueryResponse) StockItem {
	return StockItem{
		SKU:          r.SKU,
		Product:      r.Product,
		OnHand:       r.OnHand,
		ReorderPoint: r.ReorderPoint,
		Status:       r.Status.String(),
		LastMovedAt:  r.LastMovedAt,
	}
}

func toDashboard(d queries.GetDashboardQueryResponse) Dashboard {
	return Dashboard{
		TotalStock:     d.TotalStock,
		ReceivedToday:  d.ReceivedToday,
		DeliveredToday: d.DeliveredToday,
		LowStockItems:  d.LowStockItems,
		Receipts:       OrderCounters(d.Receipts),
		Deliveries:     OrderCounters(d.Deliveries),
	}
}

func toSessionState(s *session.Session) SessionState {
	state := SessionState{
		User: s.User(),
		Page: s.Current().String(),
	}
	if ref, ok := s.OpenOrder(); ok {
		state.Order = ref.Reference()
	}
	return state
}
