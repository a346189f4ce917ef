package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taxcloud-connector/internal/core/logger"
	"taxcloud-connector/internal/features/tax/domain"
	"taxcloud-connector/internal/features/tax/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Order metadata keys mirrored onto the platform so store staff can see the
// tax state without reaching into the ledger.
const (
	MetaKeyStatus        = "_taxcloud_status"
	MetaKeyCartID        = "_taxcloud_cart_id"
	MetaKeyTaxTotal      = "_taxcloud_tax_total"
	MetaKeyCertificate   = "_taxcloud_exempt_cert"
	MetaKeyProviderOrder = "_taxcloud_order_id"
)

// shippingItemID identifies the synthetic shipping line in lookups.
const shippingItemID = "shipping"

// errorOrderStatus is the platform status an order moves to when a capture
// fails and needs operator attention.
const errorOrderStatus = "tax-error"

// TaxCoordinator drives the order tax lifecycle: quoting at checkout,
// capturing on completion, returning on refund and requoting renewals.
type TaxCoordinator struct {
	// provider is the tax calculation provider.
	provider ports.TaxProvider
	// platform is the host e-commerce platform.
	platform ports.OrderPlatform
	// ledger records lifecycle state per order.
	ledger *TransactionLedger
	// validator normalizes destination addresses.
	validator *AddressValidator
	// origin is the default shipping origin.
	origin domain.Address
	// captureImmediately captures on payment completion instead of waiting
	// for the order to complete.
	captureImmediately bool
}

// NewTaxCoordinator creates a new instance of TaxCoordinator.
func NewTaxCoordinator(provider ports.TaxProvider, platform ports.OrderPlatform, ledger *TransactionLedger, validator *AddressValidator, origin domain.Address, captureImmediately bool) *TaxCoordinator {
	return &TaxCoordinator{
		provider:           provider,
		platform:           platform,
		ledger:             ledger,
		validator:          validator,
		origin:             origin,
		captureImmediately: captureImmediately,
	}
}

// RegisterHandlers wires the coordinator to the platform lifecycle events.
func (c *TaxCoordinator) RegisterHandlers(dispatcher ports.EventDispatcher) {
	dispatcher.OnOrderCompleted(func(ctx context.Context, orderID string) error {
		_, err := c.CaptureOrder(ctx, orderID)
		return err
	})
	dispatcher.OnPaymentComplete(func(ctx context.Context, orderID string) error {
		if !c.captureImmediately {
			return nil
		}
		_, err := c.CaptureOrder(ctx, orderID)
		return err
	})
	dispatcher.OnRefundCreated(func(ctx context.Context, orderID, refundID string) error {
		_, err := c.RefundOrder(ctx, orderID, refundID)
		return err
	})
	dispatcher.OnRenewalOrder(func(ctx context.Context, orderID, parentOrderID string) error {
		_, err := c.RenewalOrder(ctx, orderID, parentOrderID)
		return err
	})
}

// QuoteOrder calculates tax for an order and records the quote. A non-zero
// asOf prices the cart as of that date. Provider failures do not propagate:
// the order is flagged and checkout proceeds without tax rather than
// blocking the customer.
func (c *TaxCoordinator) QuoteOrder(ctx context.Context, orderID string, asOf time.Time) (*domain.TaxTransaction, error) {
	order, err := c.platform.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}
	return c.quote(ctx, order, order.Destination, asOf)
}

// quote runs one lookup for the given order against the given destination.
func (c *TaxCoordinator) quote(ctx context.Context, order *ports.PlatformOrder, destination domain.Address, asOf time.Time) (*domain.TaxTransaction, error) {
	destination = c.validator.Validate(ctx, "order:"+order.ID, destination)

	if !destination.IsValidDestination() {
		return c.failQuote(ctx, order.ID, "destination is not a taxable US address")
	}

	cartID, err := c.cartID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	certificateID, err := c.platform.GetOrderMeta(ctx, order.ID, MetaKeyCertificate)
	if err != nil {
		logger.Get().Warn("Failed to read certificate from order meta",
			zap.String("order_id", order.ID),
			zap.Error(err))
		certificateID = ""
	}

	items := c.buildLineItems(order)

	amounts := map[string]decimal.Decimal{}
	if len(items) > 0 {
		amounts, err = c.provider.Lookup(ctx, ports.LookupRequest{
			CartID:        cartID,
			CustomerID:    order.CustomerID,
			Origin:        c.resolveOrigin(ctx, order),
			Destination:   destination,
			Items:         items,
			CertificateID: certificateID,
			AsOfDate:      asOf,
		})
		if err != nil {
			logger.Get().Warn("Tax lookup failed, order flagged",
				zap.String("order_id", order.ID),
				zap.Error(err))
			return c.failQuote(ctx, order.ID, err.Error())
		}
	}

	tx, err := c.ledger.RecordQuote(ctx, order.ID, cartID, certificateID, destination, amounts)
	if err != nil {
		return nil, err
	}

	c.mirrorMeta(ctx, tx)
	return tx, nil
}

// failQuote records a quote failure and mirrors it, keeping checkout alive.
func (c *TaxCoordinator) failQuote(ctx context.Context, orderID, reason string) (*domain.TaxTransaction, error) {
	tx, err := c.ledger.RecordError(ctx, orderID, reason)
	if err != nil {
		return nil, err
	}
	c.mirrorMeta(ctx, tx)
	return tx, nil
}

// resolveOrigin returns the shipping origin for an order. Products can carry
// a configured origin location id; the first one found wins and is resolved
// against the provider's location list. Orders without one ship from the
// configured default origin.
func (c *TaxCoordinator) resolveOrigin(ctx context.Context, order *ports.PlatformOrder) domain.Address {
	var locationID string
	for _, item := range order.Items {
		if item.OriginLocationID != "" {
			locationID = item.OriginLocationID
			break
		}
	}
	if locationID == "" {
		return c.origin
	}

	locations, err := c.provider.GetLocations(ctx)
	if err != nil {
		logger.Get().Warn("Failed to fetch locations, using default origin",
			zap.String("order_id", order.ID),
			zap.Error(err))
		return c.origin
	}
	for _, loc := range locations {
		if loc.LocationID == locationID {
			return loc.Address
		}
	}

	logger.Get().Warn("Origin location not found, using default origin",
		zap.String("order_id", order.ID),
		zap.String("location_id", locationID))
	return c.origin
}

// cartID returns the order's existing provider cart id, minting one on the
// first quote. Requotes reuse the id so the provider sees one cart per order.
func (c *TaxCoordinator) cartID(ctx context.Context, orderID string) (string, error) {
	tx, err := c.ledger.Get(ctx, orderID)
	if err == nil && tx.CartID != "" {
		return tx.CartID, nil
	}
	if err != nil && !errors.Is(err, domain.ErrTransactionNotFound) {
		return "", err
	}
	return uuid.NewString(), nil
}

// buildLineItems assembles the provider line items for an order: product and
// fee lines plus a synthetic shipping line when shipping is charged.
// Zero-cost lines are dropped since the provider rejects free items.
func (c *TaxCoordinator) buildLineItems(order *ports.PlatformOrder) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(order.Items)+1)

	for _, platformItem := range order.Items {
		if platformItem.LineTotal.IsZero() {
			continue
		}

		quantity := platformItem.Quantity
		if quantity < 1 {
			quantity = 1
		}

		item := domain.LineItem{
			Index:     len(items),
			ItemID:    platformItem.ItemID,
			Quantity:  quantity,
			UnitPrice: platformItem.LineTotal.Div(decimal.NewFromInt(int64(quantity))),
			TIC:       platformItem.TIC,
			Type:      platformItem.Type,
		}
		if item.Type == domain.ItemTypeFee && item.TIC == domain.TICUncategorized {
			item.TIC = domain.TICFee
		}

		items = append(items, item)
	}

	if order.ShippingCost.IsPositive() {
		items = append(items, domain.LineItem{
			Index:     len(items),
			ItemID:    shippingItemID,
			Quantity:  1,
			UnitPrice: order.ShippingCost,
			TIC:       domain.TICShipping,
			Type:      domain.ItemTypeShipping,
		})
	}

	return items
}

// CaptureOrder finalizes an order's quoted tax with the provider. Repeated
// lifecycle events are idempotent: an already captured or returned order is
// a no-op. Capture failures propagate without advancing the ledger and the
// order is flagged for operator attention.
func (c *TaxCoordinator) CaptureOrder(ctx context.Context, orderID string) (*domain.TaxTransaction, error) {
	tx, err := c.ledger.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch tx.Status {
	case domain.StatusCaptured, domain.StatusReturned:
		return tx, nil
	case domain.StatusQuoted:
	default:
		return nil, &domain.InvalidStateError{OrderID: orderID, From: tx.Status, Op: "capture"}
	}

	if err := c.provider.AuthorizeWithCapture(ctx, tx.CartID, orderID); err != nil {
		if statusErr := c.platform.UpdateOrderStatus(ctx, orderID, errorOrderStatus); statusErr != nil {
			logger.Get().Warn("Failed to flag order after capture failure",
				zap.String("order_id", orderID),
				zap.Error(statusErr))
		}
		return nil, err
	}

	tx, err = c.ledger.RecordCapture(ctx, orderID, orderID)
	if err != nil {
		return nil, err
	}

	c.mirrorMeta(ctx, tx)
	return tx, nil
}

// RefundOrder returns refunded items with the provider. An order must be
// captured first; failures propagate so the platform can surface them on the
// refund.
func (c *TaxCoordinator) RefundOrder(ctx context.Context, orderID, refundID string) (*domain.TaxTransaction, error) {
	tx, err := c.ledger.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if tx.Status != domain.StatusCaptured {
		return nil, &domain.InvalidStateError{OrderID: orderID, From: tx.Status, Op: "return"}
	}

	items, err := c.platform.GetRefundItems(ctx, orderID, refundID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch refund %s for order %s: %w", refundID, orderID, err)
	}

	if err := c.provider.ReturnTransaction(ctx, orderID, items); err != nil {
		return nil, err
	}

	returned := make(map[string]decimal.Decimal)
	if len(items) == 0 {
		// Full return: every captured amount comes back.
		for itemID, amount := range tx.LineItemTaxAmounts {
			returned[itemID] = amount
		}
	} else {
		for _, item := range items {
			if amount, ok := tx.LineItemTaxAmounts[item.ItemID]; ok {
				returned[item.ItemID] = amount
			}
		}
	}

	tx, err = c.ledger.RecordReturn(ctx, orderID, returned)
	if err != nil {
		return nil, err
	}

	c.mirrorMeta(ctx, tx)
	return tx, nil
}

// RenewalOrder quotes and captures a subscription renewal. The destination is
// inherited from the parent order and duplicated recurring tax rows left on
// the renewal by the platform's subscription machinery are stripped.
func (c *TaxCoordinator) RenewalOrder(ctx context.Context, orderID, parentOrderID string) (*domain.TaxTransaction, error) {
	order, err := c.platform.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch renewal order %s: %w", orderID, err)
	}

	parent, err := c.platform.GetOrder(ctx, parentOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parent order %s: %w", parentOrderID, err)
	}

	tx, err := c.quote(ctx, order, parent.Destination, time.Time{})
	if err != nil {
		return nil, err
	}
	if tx.Status != domain.StatusQuoted {
		return tx, nil
	}

	tx, err = c.CaptureOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	c.removeDuplicateTaxRows(ctx, orderID, parentOrderID)
	return tx, nil
}

// removeDuplicateTaxRows strips the parent order's recurring tax rows copied
// onto a renewal by the subscription machinery. A renewal row is a duplicate
// when the parent has a row with the same rate id and amount; each parent
// row cancels at most one renewal row, so the renewal's own fresh tax
// survives even when it matches a parent row exactly.
func (c *TaxCoordinator) removeDuplicateTaxRows(ctx context.Context, orderID, parentOrderID string) {
	rows, err := c.platform.GetOrderTaxRows(ctx, orderID)
	if err != nil {
		logger.Get().Warn("Failed to list tax rows on renewal",
			zap.String("order_id", orderID),
			zap.Error(err))
		return
	}

	parentRows, err := c.platform.GetOrderTaxRows(ctx, parentOrderID)
	if err != nil {
		logger.Get().Warn("Failed to list tax rows on parent order",
			zap.String("order_id", parentOrderID),
			zap.Error(err))
		return
	}

	remaining := make(map[string]int, len(parentRows))
	for _, row := range parentRows {
		remaining[row.RateID+"|"+row.Amount.String()]++
	}

	for _, row := range rows {
		key := row.RateID + "|" + row.Amount.String()
		if remaining[key] == 0 {
			continue
		}
		remaining[key]--

		if err := c.platform.RemoveOrderTaxRow(ctx, orderID, row.RowID); err != nil {
			logger.Get().Warn("Failed to remove duplicate tax row",
				zap.String("order_id", orderID),
				zap.String("row_id", row.RowID),
				zap.Error(err))
		}
	}
}

// mirrorMeta copies the transaction state onto the platform order. Mirror
// failures are logged, not propagated; the ledger stays authoritative.
func (c *TaxCoordinator) mirrorMeta(ctx context.Context, tx *domain.TaxTransaction) {
	meta := map[string]string{
		MetaKeyStatus:      string(tx.Status),
		MetaKeyCartID:      tx.CartID,
		MetaKeyTaxTotal:    tx.TotalTax().StringFixed(2),
		MetaKeyCertificate: tx.CertificateID,
	}
	if tx.ProviderOrderID != "" {
		meta[MetaKeyProviderOrder] = tx.ProviderOrderID
	}

	for key, value := range meta {
		if err := c.platform.SetOrderMeta(ctx, tx.OrderID, key, value); err != nil {
			logger.Get().Warn("Failed to mirror tax state to order meta",
				zap.String("order_id", tx.OrderID),
				zap.String("key", key),
				zap.Error(err))
		}
	}
}

// GetTransaction reads an order's tax transaction.
func (c *TaxCoordinator) GetTransaction(ctx context.Context, orderID string) (*domain.TaxTransaction, error) {
	return c.ledger.Get(ctx, orderID)
}

// AddCertificate registers an exemption certificate with the provider.
func (c *TaxCoordinator) AddCertificate(ctx context.Context, cert domain.ExemptionCertificate) (string, error) {
	return c.provider.AddExemptionCertificate(ctx, cert)
}

// DeleteCertificate removes an exemption certificate at the provider.
func (c *TaxCoordinator) DeleteCertificate(ctx context.Context, certificateID string) error {
	return c.provider.DeleteExemptionCertificate(ctx, certificateID)
}

// ListCertificates lists a customer's exemption certificates.
func (c *TaxCoordinator) ListCertificates(ctx context.Context, customerID string) ([]domain.ExemptionCertificate, error) {
	return c.provider.GetExemptionCertificates(ctx, customerID)
}

// TaxabilityCodes returns the TIC catalog.
func (c *TaxCoordinator) TaxabilityCodes(ctx context.Context) map[int]string {
	return c.provider.GetTaxabilityCodes(ctx)
}

// Locations lists the provider account's business locations.
func (c *TaxCoordinator) Locations(ctx context.Context) ([]domain.Location, error) {
	return c.provider.GetLocations(ctx)
}

// ImportTransactions uploads offline transactions, chunked to the provider's
// batch limit. The first failing chunk aborts the import; the caller retries
// with the remainder.
func (c *TaxCoordinator) ImportTransactions(ctx context.Context, batch []domain.OfflineTransaction) error {
	for len(batch) > 0 {
		size := len(batch)
		if size > domain.MaxOfflineBatchSize {
			size = domain.MaxOfflineBatchSize
		}

		if err := c.provider.AddOfflineTransactions(ctx, batch[:size]); err != nil {
			return err
		}
		batch = batch[size:]
	}
	return nil
}

// Ping verifies provider reachability and credentials.
func (c *TaxCoordinator) Ping(ctx context.Context) error {
	return c.provider.Ping(ctx)
}

// compile-time interface check
var _ ports.TaxService = (*TaxCoordinator)(nil)
