package ports

import (
	"context"

	"taxcloud-connector/internal/features/tax/domain"

	"github.com/shopspring/decimal"
)

// PlatformItem is an order line as reported by the host e-commerce platform.
type PlatformItem struct {
	// ItemID is the platform's line item identifier.
	ItemID string
	// ProductID is the underlying product, when the line is a product line.
	ProductID string
	// Quantity is the number of units.
	Quantity int
	// LineTotal is the extended cost of the line.
	LineTotal decimal.Decimal
	// Type is cart for product lines and fee for fee lines.
	Type domain.ItemType
	// TIC is the taxability code configured on the product, zero when unset.
	TIC int
	// OriginLocationID is the configured shipping origin for the product,
	// empty when the default origin applies.
	OriginLocationID string
}

// PlatformOrder is the subset of a host platform order needed to drive the
// tax lifecycle.
type PlatformOrder struct {
	// ID is the platform order identifier.
	ID string
	// CustomerID is the purchasing customer, empty for guests.
	CustomerID string
	// Items are the product and fee lines.
	Items []PlatformItem
	// ShippingCost is the order's total shipping charge.
	ShippingCost decimal.Decimal
	// Destination is the shipping address as entered by the customer.
	Destination domain.Address
}

// TaxRow is a tax total line on a platform order, used to strip duplicated
// recurring-tax rows from subscription renewals.
type TaxRow struct {
	// RowID is the platform identifier of the tax row.
	RowID string
	// RateID identifies the tax rate the row was booked under.
	RateID string
	// Amount is the tax amount of the row.
	Amount decimal.Decimal
}

// OrderPlatform defines the secondary port for the host e-commerce platform.
// The platform's own storage and UI stay out of scope; this narrow interface
// is all the tax lifecycle consumes.
type OrderPlatform interface {
	// GetOrder fetches an order with its lines, shipping cost and destination.
	GetOrder(ctx context.Context, orderID string) (*PlatformOrder, error)

	// GetRefundItems returns the item quantities covered by a refund. An
	// empty result means the refund covers the whole order.
	GetRefundItems(ctx context.Context, orderID, refundID string) ([]ReturnItem, error)

	// GetOrderMeta reads a metadata value stored on the order, returning an
	// empty string when the key is unset.
	GetOrderMeta(ctx context.Context, orderID, key string) (string, error)

	// SetOrderMeta writes a metadata value on the order.
	SetOrderMeta(ctx context.Context, orderID, key, value string) error

	// UpdateOrderStatus moves the order to the given platform status.
	UpdateOrderStatus(ctx context.Context, orderID, status string) error

	// GetOrderTaxRows lists the order's tax total rows.
	GetOrderTaxRows(ctx context.Context, orderID string) ([]TaxRow, error)

	// RemoveOrderTaxRow deletes a tax total row from the order.
	RemoveOrderTaxRow(ctx context.Context, orderID, rowID string) error
}

// EventDispatcher is the small registration surface through which platform
// lifecycle events reach the coordinator. Handlers are plain functions; the
// dispatcher implementation decides how events arrive (webhooks here).
type EventDispatcher interface {
	OnOrderCompleted(handler func(ctx context.Context, orderID string) error)
	OnPaymentComplete(handler func(ctx context.Context, orderID string) error)
	OnRefundCreated(handler func(ctx context.Context, orderID, refundID string) error)
	OnRenewalOrder(handler func(ctx context.Context, orderID, parentOrderID string) error)
}
