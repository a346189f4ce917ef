package service

import (
	"context"
	"testing"
	"time"

	"taxcloud-connector/internal/features/tax/domain"
	"taxcloud-connector/internal/features/tax/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOrigin = domain.Address{Line1: "123 Commerce St", City: "Norwalk", State: "CT", Zip5: "06851", Country: "US"}

var testDestination = domain.Address{Line1: "1 Rodeo Dr", City: "Beverly Hills", State: "CA", Zip5: "90210", Country: "US"}

func testOrder() *ports.PlatformOrder {
	return &ports.PlatformOrder{
		ID:         "order-1",
		CustomerID: "cust-7",
		Items: []ports.PlatformItem{
			{ItemID: "11", ProductID: "501", Quantity: 2, LineTotal: decimal.NewFromFloat(21.00), Type: domain.ItemTypeCart, TIC: 20010},
			{ItemID: "12", ProductID: "502", Quantity: 1, LineTotal: decimal.Zero, Type: domain.ItemTypeCart},
			{ItemID: "13", Quantity: 1, LineTotal: decimal.NewFromFloat(3.00), Type: domain.ItemTypeFee},
		},
		ShippingCost: decimal.NewFromFloat(4.99),
		Destination:  testDestination,
	}
}

func newTestCoordinator(provider *mockProvider, platform *mockPlatform, captureImmediately bool) (*TaxCoordinator, *mockRepository) {
	repo := newMockRepository()
	ledger := NewTransactionLedger(repo)
	validator := NewAddressValidator(provider, newMockAddressCache())
	return NewTaxCoordinator(provider, platform, ledger, validator, testOrigin, captureImmediately), repo
}

// TestTaxCoordinator_QuoteOrder_Success verifies line item assembly and quote
// recording.
func TestTaxCoordinator_QuoteOrder_Success(t *testing.T) {
	provider := &mockProvider{
		verifyResult: testDestination,
		lookupAmounts: map[string]decimal.Decimal{
			"11":       decimal.NewFromFloat(1.36),
			"13":       decimal.NewFromFloat(0.19),
			"shipping": decimal.NewFromFloat(0.32),
		},
	}
	platform := newMockPlatform()
	platform.orders["order-1"] = testOrder()

	coordinator, _ := newTestCoordinator(provider, platform, false)
	tx, err := coordinator.QuoteOrder(context.Background(), "order-1", time.Time{})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusQuoted, tx.Status)
	assert.NotEmpty(t, tx.CartID)
	assert.True(t, decimal.NewFromFloat(1.87).Equal(tx.TotalTax()))

	require.Len(t, provider.lookupCalls, 1)
	req := provider.lookupCalls[0]
	assert.Equal(t, "cust-7", req.CustomerID)
	assert.Equal(t, testOrigin, req.Origin)

	// Zero-cost line dropped, fee and synthetic shipping lines present.
	require.Len(t, req.Items, 3)
	assert.Equal(t, "11", req.Items[0].ItemID)
	assert.Equal(t, 20010, req.Items[0].TIC)
	assert.True(t, decimal.NewFromFloat(10.50).Equal(req.Items[0].UnitPrice))

	assert.Equal(t, "13", req.Items[1].ItemID)
	assert.Equal(t, domain.TICFee, req.Items[1].TIC)

	assert.Equal(t, "shipping", req.Items[2].ItemID)
	assert.Equal(t, domain.TICShipping, req.Items[2].TIC)
	assert.Equal(t, 1, req.Items[2].Quantity)

	// Tax state mirrored onto the order.
	assert.Equal(t, "QUOTED", platform.meta["order-1"][MetaKeyStatus])
	assert.Equal(t, "1.87", platform.meta["order-1"][MetaKeyTaxTotal])
	assert.Equal(t, tx.CartID, platform.meta["order-1"][MetaKeyCartID])
}

// TestTaxCoordinator_QuoteOrder_AsOfDate verifies a dated quote reaches the
// provider lookup.
func TestTaxCoordinator_QuoteOrder_AsOfDate(t *testing.T) {
	provider := &mockProvider{
		verifyResult:  testDestination,
		lookupAmounts: map[string]decimal.Decimal{"11": decimal.NewFromFloat(1.36)},
	}
	platform := newMockPlatform()
	platform.orders["order-1"] = testOrder()

	asOf := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	coordinator, _ := newTestCoordinator(provider, platform, false)
	_, err := coordinator.QuoteOrder(context.Background(), "order-1", asOf)

	require.NoError(t, err)
	require.Len(t, provider.lookupCalls, 1)
	assert.Equal(t, asOf, provider.lookupCalls[0].AsOfDate)
}

// TestTaxCoordinator_QuoteOrder_ResolvesItemOrigin verifies a product's
// configured origin location overrides the default origin.
func TestTaxCoordinator_QuoteOrder_ResolvesItemOrigin(t *testing.T) {
	warehouse := domain.Address{Line1: "9 Depot Rd", City: "Reno", State: "NV", Zip5: "89501", Country: "US"}
	provider := &mockProvider{
		verifyResult:  testDestination,
		lookupAmounts: map[string]decimal.Decimal{"11": decimal.NewFromFloat(1.36)},
		locations:     []domain.Location{{LocationID: "loc-2", Address: warehouse}},
	}
	platform := newMockPlatform()

	order := testOrder()
	order.Items[0].OriginLocationID = "loc-2"
	platform.orders["order-1"] = order

	coordinator, _ := newTestCoordinator(provider, platform, false)
	_, err := coordinator.QuoteOrder(context.Background(), "order-1", time.Time{})

	require.NoError(t, err)
	require.Len(t, provider.lookupCalls, 1)
	assert.Equal(t, warehouse, provider.lookupCalls[0].Origin)
}

// TestTaxCoordinator_QuoteOrder_UnknownOriginLocation verifies the default
// origin is used when the location id cannot be resolved.
func TestTaxCoordinator_QuoteOrder_UnknownOriginLocation(t *testing.T) {
	provider := &mockProvider{
		verifyResult:  testDestination,
		lookupAmounts: map[string]decimal.Decimal{"11": decimal.NewFromFloat(1.36)},
	}
	platform := newMockPlatform()

	order := testOrder()
	order.Items[0].OriginLocationID = "loc-gone"
	platform.orders["order-1"] = order

	coordinator, _ := newTestCoordinator(provider, platform, false)
	_, err := coordinator.QuoteOrder(context.Background(), "order-1", time.Time{})

	require.NoError(t, err)
	require.Len(t, provider.lookupCalls, 1)
	assert.Equal(t, testOrigin, provider.lookupCalls[0].Origin)
}

// TestTaxCoordinator_QuoteOrder_LookupFailure verifies checkout is not
// blocked when the provider is down.
func TestTaxCoordinator_QuoteOrder_LookupFailure(t *testing.T) {
	provider := &mockProvider{
		verifyResult: testDestination,
		lookupErr:    &domain.TransportError{Op: "lookup", Err: assert.AnError},
	}
	platform := newMockPlatform()
	platform.orders["order-1"] = testOrder()

	coordinator, _ := newTestCoordinator(provider, platform, false)
	tx, err := coordinator.QuoteOrder(context.Background(), "order-1", time.Time{})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusErrored, tx.Status)
	assert.NotEmpty(t, tx.ErrorReason)
	assert.Equal(t, "ERRORED", platform.meta["order-1"][MetaKeyStatus])
}

// TestTaxCoordinator_QuoteOrder_InvalidDestination verifies non-taxable
// destinations flag the order instead of calling the provider.
func TestTaxCoordinator_QuoteOrder_InvalidDestination(t *testing.T) {
	provider := &mockProvider{verifyResult: domain.Address{City: "Toronto", State: "ON", Country: "CA"}}
	platform := newMockPlatform()

	order := testOrder()
	order.Destination = domain.Address{City: "Toronto", State: "ON", Country: "CA"}
	platform.orders["order-1"] = order

	coordinator, _ := newTestCoordinator(provider, platform, false)
	tx, err := coordinator.QuoteOrder(context.Background(), "order-1", time.Time{})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusErrored, tx.Status)
	assert.Empty(t, provider.lookupCalls)
}

// TestTaxCoordinator_QuoteOrder_ReusesCartID verifies requotes keep one
// provider cart per order.
func TestTaxCoordinator_QuoteOrder_ReusesCartID(t *testing.T) {
	provider := &mockProvider{
		verifyResult:  testDestination,
		lookupAmounts: map[string]decimal.Decimal{"11": decimal.NewFromFloat(1.36), "13": decimal.NewFromFloat(0.19), "shipping": decimal.NewFromFloat(0.32)},
	}
	platform := newMockPlatform()
	platform.orders["order-1"] = testOrder()

	coordinator, _ := newTestCoordinator(provider, platform, false)
	ctx := context.Background()

	first, err := coordinator.QuoteOrder(ctx, "order-1", time.Time{})
	require.NoError(t, err)

	second, err := coordinator.QuoteOrder(ctx, "order-1", time.Time{})
	require.NoError(t, err)

	assert.Equal(t, first.CartID, second.CartID)
}

// TestTaxCoordinator_QuoteOrder_AppliesCertificate verifies the certificate
// reference from order meta travels with the lookup.
func TestTaxCoordinator_QuoteOrder_AppliesCertificate(t *testing.T) {
	provider := &mockProvider{
		verifyResult:  testDestination,
		lookupAmounts: map[string]decimal.Decimal{"11": decimal.Zero, "13": decimal.Zero, "shipping": decimal.Zero},
	}
	platform := newMockPlatform()
	platform.orders["order-1"] = testOrder()
	platform.meta["order-1"] = map[string]string{MetaKeyCertificate: "cert-123"}

	coordinator, _ := newTestCoordinator(provider, platform, false)
	tx, err := coordinator.QuoteOrder(context.Background(), "order-1", time.Time{})

	require.NoError(t, err)
	assert.Equal(t, "cert-123", tx.CertificateID)
	require.Len(t, provider.lookupCalls, 1)
	assert.Equal(t, "cert-123", provider.lookupCalls[0].CertificateID)
}

func quotedCoordinator(t *testing.T, provider *mockProvider, platform *mockPlatform) *TaxCoordinator {
	t.Helper()

	platform.orders["order-1"] = testOrder()
	coordinator, _ := newTestCoordinator(provider, platform, false)

	tx, err := coordinator.QuoteOrder(context.Background(), "order-1", time.Time{})
	require.NoError(t, err)
	require.Equal(t, domain.StatusQuoted, tx.Status)

	return coordinator
}

// TestTaxCoordinator_CaptureOrder_Success verifies capture and idempotent
// replay of lifecycle events.
func TestTaxCoordinator_CaptureOrder_Success(t *testing.T) {
	provider := &mockProvider{
		verifyResult:  testDestination,
		lookupAmounts: map[string]decimal.Decimal{"11": decimal.NewFromFloat(1.36), "13": decimal.NewFromFloat(0.19), "shipping": decimal.NewFromFloat(0.32)},
	}
	platform := newMockPlatform()
	coordinator := quotedCoordinator(t, provider, platform)
	ctx := context.Background()

	tx, err := coordinator.CaptureOrder(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCaptured, tx.Status)
	assert.Equal(t, "order-1", tx.ProviderOrderID)
	assert.Equal(t, "CAPTURED", platform.meta["order-1"][MetaKeyStatus])
	assert.Equal(t, "order-1", platform.meta["order-1"][MetaKeyProviderOrder])
	require.Len(t, provider.captureCalls, 1)

	// Replayed event is a no-op, not a provider call.
	tx, err = coordinator.CaptureOrder(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCaptured, tx.Status)
	assert.Len(t, provider.captureCalls, 1)
}

// TestTaxCoordinator_CaptureOrder_NotQuoted verifies capture rejects orders
// without a live quote.
func TestTaxCoordinator_CaptureOrder_NotQuoted(t *testing.T) {
	provider := &mockProvider{verifyResult: testDestination, lookupErr: assert.AnError}
	platform := newMockPlatform()
	platform.orders["order-1"] = testOrder()

	coordinator, _ := newTestCoordinator(provider, platform, false)
	ctx := context.Background()

	_, err := coordinator.QuoteOrder(ctx, "order-1", time.Time{})
	require.NoError(t, err)

	_, err = coordinator.CaptureOrder(ctx, "order-1")

	var stateErr *domain.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, domain.StatusErrored, stateErr.From)
}

// TestTaxCoordinator_CaptureOrder_ProviderFailure verifies the ledger stays
// on QUOTED and the order gets flagged when the provider rejects the capture.
func TestTaxCoordinator_CaptureOrder_ProviderFailure(t *testing.T) {
	provider := &mockProvider{
		verifyResult:  testDestination,
		lookupAmounts: map[string]decimal.Decimal{"11": decimal.NewFromFloat(1.36), "13": decimal.NewFromFloat(0.19), "shipping": decimal.NewFromFloat(0.32)},
		captureErr:    &domain.BusinessError{Op: "capture", Message: "cart expired"},
	}
	platform := newMockPlatform()
	coordinator := quotedCoordinator(t, provider, platform)

	_, err := coordinator.CaptureOrder(context.Background(), "order-1")

	require.Error(t, err)
	assert.Equal(t, errorOrderStatus, platform.statusUpdates["order-1"])

	tx, err := coordinator.GetTransaction(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusQuoted, tx.Status)
}

// TestTaxCoordinator_RefundOrder_Partial verifies partial returns keep only
// the refunded items' amounts.
func TestTaxCoordinator_RefundOrder_Partial(t *testing.T) {
	provider := &mockProvider{
		verifyResult:  testDestination,
		lookupAmounts: map[string]decimal.Decimal{"11": decimal.NewFromFloat(1.36), "13": decimal.NewFromFloat(0.19), "shipping": decimal.NewFromFloat(0.32)},
	}
	platform := newMockPlatform()
	platform.refundItems = []ports.ReturnItem{{ItemID: "11", Quantity: 1}}

	coordinator := quotedCoordinator(t, provider, platform)
	ctx := context.Background()

	_, err := coordinator.CaptureOrder(ctx, "order-1")
	require.NoError(t, err)

	tx, err := coordinator.RefundOrder(ctx, "order-1", "refund-55")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusReturned, tx.Status)
	require.Len(t, tx.ReturnedItemTaxAmounts, 1)
	assert.True(t, decimal.NewFromFloat(1.36).Equal(tx.ReturnedItemTaxAmounts["11"]))
	// Captured amounts stay on the record.
	assert.Len(t, tx.LineItemTaxAmounts, 3)

	require.Len(t, provider.returnItems, 1)
	assert.Equal(t, []ports.ReturnItem{{ItemID: "11", Quantity: 1}}, provider.returnItems[0])
}

// TestTaxCoordinator_RefundOrder_Full verifies an empty refund line set is a
// full-order return.
func TestTaxCoordinator_RefundOrder_Full(t *testing.T) {
	provider := &mockProvider{
		verifyResult:  testDestination,
		lookupAmounts: map[string]decimal.Decimal{"11": decimal.NewFromFloat(1.36), "13": decimal.NewFromFloat(0.19), "shipping": decimal.NewFromFloat(0.32)},
	}
	platform := newMockPlatform()
	coordinator := quotedCoordinator(t, provider, platform)
	ctx := context.Background()

	_, err := coordinator.CaptureOrder(ctx, "order-1")
	require.NoError(t, err)

	tx, err := coordinator.RefundOrder(ctx, "order-1", "refund-55")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusReturned, tx.Status)
	assert.Len(t, tx.ReturnedItemTaxAmounts, 3)
	require.Len(t, provider.returnItems, 1)
	assert.Empty(t, provider.returnItems[0])
}

// TestTaxCoordinator_RefundOrder_NotCaptured verifies returns require a
// captured order.
func TestTaxCoordinator_RefundOrder_NotCaptured(t *testing.T) {
	provider := &mockProvider{
		verifyResult:  testDestination,
		lookupAmounts: map[string]decimal.Decimal{"11": decimal.NewFromFloat(1.36), "13": decimal.NewFromFloat(0.19), "shipping": decimal.NewFromFloat(0.32)},
	}
	platform := newMockPlatform()
	coordinator := quotedCoordinator(t, provider, platform)

	_, err := coordinator.RefundOrder(context.Background(), "order-1", "refund-55")

	var stateErr *domain.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, domain.StatusQuoted, stateErr.From)
	assert.Empty(t, provider.returnItems)
}

// TestTaxCoordinator_RenewalOrder verifies renewals inherit the parent
// destination, capture immediately and strip duplicated tax rows.
func TestTaxCoordinator_RenewalOrder(t *testing.T) {
	provider := &mockProvider{
		verifyResult:  testDestination,
		lookupAmounts: map[string]decimal.Decimal{"11": decimal.NewFromFloat(1.36), "13": decimal.NewFromFloat(0.19), "shipping": decimal.NewFromFloat(0.32)},
	}
	platform := newMockPlatform()

	renewal := testOrder()
	renewal.ID = "order-2"
	renewal.Destination = domain.Address{}
	platform.orders["order-2"] = renewal
	platform.orders["order-1"] = testOrder()

	platform.taxRows["order-1"] = []ports.TaxRow{
		{RowID: "21", RateID: "5", Amount: decimal.NewFromFloat(1.87)},
	}
	platform.taxRows["order-2"] = []ports.TaxRow{
		{RowID: "41", RateID: "5", Amount: decimal.NewFromFloat(1.87)},
		{RowID: "42", RateID: "5", Amount: decimal.NewFromFloat(2.00)},
		{RowID: "43", RateID: "6", Amount: decimal.NewFromFloat(1.87)},
	}

	coordinator, _ := newTestCoordinator(provider, platform, false)
	tx, err := coordinator.RenewalOrder(context.Background(), "order-2", "order-1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCaptured, tx.Status)

	require.Len(t, provider.lookupCalls, 1)
	assert.Equal(t, testDestination, provider.lookupCalls[0].Destination)

	// Only the row matching a parent row on both rate id and amount goes.
	// The renewal's fresh tax (same rate, different amount) and the row
	// under a different rate id both survive.
	assert.Equal(t, []string{"41"}, platform.removedRows)
}

// TestTaxCoordinator_RenewalOrder_KeepsMatchingFreshRow verifies a parent
// row cancels at most one renewal row even when the renewal's own fresh tax
// matches it exactly.
func TestTaxCoordinator_RenewalOrder_KeepsMatchingFreshRow(t *testing.T) {
	provider := &mockProvider{
		verifyResult:  testDestination,
		lookupAmounts: map[string]decimal.Decimal{"11": decimal.NewFromFloat(1.36), "13": decimal.NewFromFloat(0.19), "shipping": decimal.NewFromFloat(0.32)},
	}
	platform := newMockPlatform()

	renewal := testOrder()
	renewal.ID = "order-2"
	platform.orders["order-2"] = renewal
	platform.orders["order-1"] = testOrder()

	platform.taxRows["order-1"] = []ports.TaxRow{
		{RowID: "21", RateID: "5", Amount: decimal.NewFromFloat(1.87)},
	}
	platform.taxRows["order-2"] = []ports.TaxRow{
		{RowID: "41", RateID: "5", Amount: decimal.NewFromFloat(1.87)},
		{RowID: "42", RateID: "5", Amount: decimal.NewFromFloat(1.87)},
	}

	coordinator, _ := newTestCoordinator(provider, platform, false)
	_, err := coordinator.RenewalOrder(context.Background(), "order-2", "order-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"41"}, platform.removedRows)
}

// TestTaxCoordinator_ImportTransactions_Chunks verifies batches are split to
// the provider limit.
func TestTaxCoordinator_ImportTransactions_Chunks(t *testing.T) {
	provider := &mockProvider{}
	coordinator, _ := newTestCoordinator(provider, newMockPlatform(), false)

	batch := make([]domain.OfflineTransaction, domain.MaxOfflineBatchSize+5)
	require.NoError(t, coordinator.ImportTransactions(context.Background(), batch))

	require.Len(t, provider.offlineBatches, 2)
	assert.Len(t, provider.offlineBatches[0], domain.MaxOfflineBatchSize)
	assert.Len(t, provider.offlineBatches[1], 5)
}

// dispatcherRecorder records handler registrations for event wiring tests.
type dispatcherRecorder struct {
	orderCompleted  func(ctx context.Context, orderID string) error
	paymentComplete func(ctx context.Context, orderID string) error
	refundCreated   func(ctx context.Context, orderID, refundID string) error
	renewalOrder    func(ctx context.Context, orderID, parentOrderID string) error
}

func (d *dispatcherRecorder) OnOrderCompleted(handler func(ctx context.Context, orderID string) error) {
	d.orderCompleted = handler
}

func (d *dispatcherRecorder) OnPaymentComplete(handler func(ctx context.Context, orderID string) error) {
	d.paymentComplete = handler
}

func (d *dispatcherRecorder) OnRefundCreated(handler func(ctx context.Context, orderID, refundID string) error) {
	d.refundCreated = handler
}

func (d *dispatcherRecorder) OnRenewalOrder(handler func(ctx context.Context, orderID, parentOrderID string) error) {
	d.renewalOrder = handler
}

// TestTaxCoordinator_PaymentComplete_CaptureImmediately verifies the payment
// event only captures when the option is on.
func TestTaxCoordinator_PaymentComplete_CaptureImmediately(t *testing.T) {
	provider := &mockProvider{
		verifyResult:  testDestination,
		lookupAmounts: map[string]decimal.Decimal{"11": decimal.NewFromFloat(1.36), "13": decimal.NewFromFloat(0.19), "shipping": decimal.NewFromFloat(0.32)},
	}
	platform := newMockPlatform()
	platform.orders["order-1"] = testOrder()

	coordinator, _ := newTestCoordinator(provider, platform, false)
	dispatcher := &dispatcherRecorder{}
	coordinator.RegisterHandlers(dispatcher)

	ctx := context.Background()
	_, err := coordinator.QuoteOrder(ctx, "order-1", time.Time{})
	require.NoError(t, err)

	// Option off: payment completion does not capture.
	require.NoError(t, dispatcher.paymentComplete(ctx, "order-1"))
	assert.Empty(t, provider.captureCalls)

	immediate, _ := newTestCoordinator(provider, platform, true)
	immediate.RegisterHandlers(dispatcher)

	_, err = immediate.QuoteOrder(ctx, "order-1", time.Time{})
	require.NoError(t, err)

	require.NoError(t, dispatcher.paymentComplete(ctx, "order-1"))
	assert.Len(t, provider.captureCalls, 1)
}
