package domain

import "github.com/shopspring/decimal"

// ItemType classifies a line item submitted for tax lookup.
type ItemType string

const (
	// ItemTypeCart is a regular product line.
	ItemTypeCart ItemType = "cart"
	// ItemTypeShipping is the synthetic shipping charge line.
	ItemTypeShipping ItemType = "shipping"
	// ItemTypeFee is an order fee line.
	ItemTypeFee ItemType = "fee"
)

// TaxBasis selects how item prices are submitted to the tax provider.
type TaxBasis string

const (
	// TaxBasisItemPrice submits the unit price with the quantity preserved.
	TaxBasisItemPrice TaxBasis = "item-price"
	// TaxBasisLinePrice submits the extended line cost with quantity forced to 1.
	TaxBasisLinePrice TaxBasis = "line-price"
)

// Well-known taxability codes assigned to synthetic lines.
const (
	// TICUncategorized is the provider default for items with no code set.
	TICUncategorized = 0
	// TICShipping classifies transportation, shipping and postage charges.
	TICShipping = 11010
	// TICFee classifies seller service charges needed to complete the sale.
	TICFee = 10010
)

// LineItem is a single order or cart line prepared for a tax lookup.
// Index must be stable across repeated lookups for the same cart: the
// provider's response line items are matched back by position, not by ID.
type LineItem struct {
	// Index is the zero-based position of the item within the cart.
	Index int `json:"index"`
	// ItemID is the host platform's identifier for the line.
	ItemID string `json:"item_id"`
	// Quantity is the number of units.
	Quantity int `json:"quantity"`
	// UnitPrice is the per-unit price.
	UnitPrice decimal.Decimal `json:"unit_price"`
	// TIC is the taxability information code classifying the item.
	TIC int `json:"tic"`
	// Type classifies the line (cart, shipping, fee).
	Type ItemType `json:"type"`
}

// ExtendedPrice returns quantity times unit price.
func (li LineItem) ExtendedPrice() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// IsZeroCost reports whether the line has no cost. Zero-cost lines are never
// submitted to the provider and implicitly carry zero tax.
func (li LineItem) IsZeroCost() bool {
	return li.ExtendedPrice().IsZero()
}

// ForBasis returns a copy of the line adjusted for the configured tax basis:
// item-price keeps unit price and quantity, line-price collapses the line to
// a single unit priced at the extended cost. Total tax is invariant under
// this choice for a fixed extended price.
func (li LineItem) ForBasis(basis TaxBasis) LineItem {
	if basis == TaxBasisLinePrice {
		adjusted := li
		adjusted.UnitPrice = li.ExtendedPrice()
		adjusted.Quantity = 1
		return adjusted
	}
	return li
}
