package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the lifecycle state of an order's tax
// transaction against the provider.
type TransactionStatus string

const (
	// StatusNone means no lookup has been performed for the order yet.
	StatusNone TransactionStatus = "NONE"
	// StatusQuoted means a lookup succeeded and per-item tax amounts are recorded.
	StatusQuoted TransactionStatus = "QUOTED"
	// StatusCaptured means the quoted amounts were finalized with the provider.
	StatusCaptured TransactionStatus = "CAPTURED"
	// StatusReturned means a captured transaction was partially or fully refunded.
	StatusReturned TransactionStatus = "RETURNED"
	// StatusErrored is an absorbing failure state reachable from QUOTED or a
	// capture attempt. The failure reason is kept for the merchant.
	StatusErrored TransactionStatus = "ERRORED"
)

// TaxTransaction is the per-order ledger entity. One instance exists per host
// order; it is never deleted, only superseded by a fresh quote when the
// underlying cart is recalculated before capture.
type TaxTransaction struct {
	// OrderID is the host platform order identifier.
	OrderID string `json:"order_id"`
	// CartID identifies the cart submitted for the lookup that produced this
	// transaction. Stable per lookup so response items match by position.
	CartID string `json:"cart_id"`
	// Status is the current lifecycle state.
	Status TransactionStatus `json:"status"`
	// LineItemTaxAmounts maps item IDs to the tax quoted for each line. Once
	// captured these amounts are retained unchanged for audit, including
	// through a return.
	LineItemTaxAmounts map[string]decimal.Decimal `json:"line_item_tax_amounts"`
	// ReturnedItemTaxAmounts records the refunded subset after a return. It
	// references the original amounts and never mutates them.
	ReturnedItemTaxAmounts map[string]decimal.Decimal `json:"returned_item_tax_amounts,omitempty"`
	// ProviderOrderID is the identifier reported to the provider at capture,
	// needed for later return calls.
	ProviderOrderID string `json:"provider_order_id,omitempty"`
	// CapturedAt is when the capture was recorded.
	CapturedAt time.Time `json:"captured_at,omitempty"`
	// CertificateID is the applied exemption certificate, if any.
	CertificateID string `json:"certificate_id,omitempty"`
	// Destination is the validated destination address snapshot.
	Destination Address `json:"destination"`
	// ErrorReason holds the failure message when Status is ERRORED.
	ErrorReason string `json:"error_reason,omitempty"`
}

// NewTaxTransaction returns a fresh transaction in the NONE state.
func NewTaxTransaction(orderID string) *TaxTransaction {
	return &TaxTransaction{
		OrderID:            orderID,
		Status:             StatusNone,
		LineItemTaxAmounts: map[string]decimal.Decimal{},
	}
}

// TotalTax returns the sum of all quoted line item tax amounts.
func (t *TaxTransaction) TotalTax() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range t.LineItemTaxAmounts {
		total = total.Add(amount)
	}
	return total
}

// Quote transitions the transaction to QUOTED, replacing any prior quote
// wholesale. Allowed from NONE, ERRORED and QUOTED (a cart recalculation
// invalidates the previous pending quote entirely). A captured or returned
// transaction can no longer be re-quoted.
func (t *TaxTransaction) Quote(cartID string, destination Address, amounts map[string]decimal.Decimal) error {
	switch t.Status {
	case StatusNone, StatusErrored, StatusQuoted:
	default:
		return &InvalidStateError{OrderID: t.OrderID, From: t.Status, Op: "quote"}
	}

	t.CartID = cartID
	t.Destination = destination
	t.LineItemTaxAmounts = amounts
	t.ReturnedItemTaxAmounts = nil
	t.ProviderOrderID = ""
	t.CapturedAt = time.Time{}
	t.ErrorReason = ""
	t.Status = StatusQuoted
	return nil
}

// Capture transitions QUOTED to CAPTURED. Any other starting state is
// rejected: a second capture attempt on an already captured order must fail
// rather than double-count.
func (t *TaxTransaction) Capture(providerOrderID string, at time.Time) error {
	if t.Status != StatusQuoted {
		return &InvalidStateError{OrderID: t.OrderID, From: t.Status, Op: "capture"}
	}

	t.ProviderOrderID = providerOrderID
	t.CapturedAt = at
	t.Status = StatusCaptured
	return nil
}

// Return transitions CAPTURED to RETURNED. The original quoted amounts are
// retained alongside the returned subset for audit.
func (t *TaxTransaction) Return(returnedAmounts map[string]decimal.Decimal) error {
	if t.Status != StatusCaptured {
		return &InvalidStateError{OrderID: t.OrderID, From: t.Status, Op: "return"}
	}

	t.ReturnedItemTaxAmounts = returnedAmounts
	t.Status = StatusReturned
	return nil
}

// MarkErrored moves the transaction into the ERRORED absorbing state.
// Only a pending quote or an in-flight capture attempt can error; captured
// and returned transactions are final.
func (t *TaxTransaction) MarkErrored(reason string) error {
	switch t.Status {
	case StatusNone, StatusQuoted, StatusErrored:
	default:
		return &InvalidStateError{OrderID: t.OrderID, From: t.Status, Op: "mark errored"}
	}

	t.ErrorReason = reason
	t.Status = StatusErrored
	return nil
}
