package service

import (
	"context"

	"taxcloud-connector/internal/features/tax/domain"
	"taxcloud-connector/internal/features/tax/ports"

	"github.com/shopspring/decimal"
)

// mockProvider is a mock implementation of TaxProvider for testing.
type mockProvider struct {
	lookupAmounts map[string]decimal.Decimal
	lookupErr     error
	lookupCalls   []ports.LookupRequest

	verifyResult domain.Address
	verifyErr    error
	verifyCalls  []domain.Address

	captureErr   error
	captureCalls []string

	returnErr   error
	returnItems [][]ports.ReturnItem

	offlineErr     error
	offlineBatches [][]domain.OfflineTransaction

	locations    []domain.Location
	locationsErr error
}

func (m *mockProvider) Ping(ctx context.Context) error { return nil }

func (m *mockProvider) VerifyAddress(ctx context.Context, address domain.Address) (domain.Address, error) {
	m.verifyCalls = append(m.verifyCalls, address)
	if m.verifyErr != nil {
		return domain.Address{}, m.verifyErr
	}
	return m.verifyResult, nil
}

func (m *mockProvider) Lookup(ctx context.Context, req ports.LookupRequest) (map[string]decimal.Decimal, error) {
	m.lookupCalls = append(m.lookupCalls, req)
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	return m.lookupAmounts, nil
}

func (m *mockProvider) Authorize(ctx context.Context, cartID, orderID string) error { return nil }

func (m *mockProvider) AuthorizeWithCapture(ctx context.Context, cartID, orderID string) error {
	m.captureCalls = append(m.captureCalls, orderID)
	return m.captureErr
}

func (m *mockProvider) Capture(ctx context.Context, cartID, orderID string) error { return nil }

func (m *mockProvider) ReturnTransaction(ctx context.Context, orderID string, items []ports.ReturnItem) error {
	m.returnItems = append(m.returnItems, items)
	return m.returnErr
}

func (m *mockProvider) AddExemptionCertificate(ctx context.Context, cert domain.ExemptionCertificate) (string, error) {
	return "cert-new", nil
}

func (m *mockProvider) DeleteExemptionCertificate(ctx context.Context, certificateID string) error {
	return nil
}

func (m *mockProvider) GetExemptionCertificates(ctx context.Context, customerID string) ([]domain.ExemptionCertificate, error) {
	return nil, nil
}

func (m *mockProvider) GetTaxabilityCodes(ctx context.Context) map[int]string {
	return map[int]string{domain.TICUncategorized: "Uncategorized"}
}

func (m *mockProvider) GetLocations(ctx context.Context) ([]domain.Location, error) {
	return m.locations, m.locationsErr
}

func (m *mockProvider) AddOfflineTransactions(ctx context.Context, batch []domain.OfflineTransaction) error {
	m.offlineBatches = append(m.offlineBatches, batch)
	return m.offlineErr
}

// mockPlatform is a mock implementation of OrderPlatform for testing.
type mockPlatform struct {
	orders      map[string]*ports.PlatformOrder
	meta        map[string]map[string]string
	refundItems []ports.ReturnItem
	taxRows     map[string][]ports.TaxRow

	removedRows   []string
	statusUpdates map[string]string
}

func newMockPlatform() *mockPlatform {
	return &mockPlatform{
		orders:        make(map[string]*ports.PlatformOrder),
		meta:          make(map[string]map[string]string),
		taxRows:       make(map[string][]ports.TaxRow),
		statusUpdates: make(map[string]string),
	}
}

func (m *mockPlatform) GetOrder(ctx context.Context, orderID string) (*ports.PlatformOrder, error) {
	order, ok := m.orders[orderID]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return order, nil
}

func (m *mockPlatform) GetRefundItems(ctx context.Context, orderID, refundID string) ([]ports.ReturnItem, error) {
	return m.refundItems, nil
}

func (m *mockPlatform) GetOrderMeta(ctx context.Context, orderID, key string) (string, error) {
	return m.meta[orderID][key], nil
}

func (m *mockPlatform) SetOrderMeta(ctx context.Context, orderID, key, value string) error {
	if m.meta[orderID] == nil {
		m.meta[orderID] = make(map[string]string)
	}
	m.meta[orderID][key] = value
	return nil
}

func (m *mockPlatform) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	m.statusUpdates[orderID] = status
	return nil
}

func (m *mockPlatform) GetOrderTaxRows(ctx context.Context, orderID string) ([]ports.TaxRow, error) {
	return m.taxRows[orderID], nil
}

func (m *mockPlatform) RemoveOrderTaxRow(ctx context.Context, orderID, rowID string) error {
	m.removedRows = append(m.removedRows, rowID)
	return nil
}

// mockRepository is an in-memory TransactionRepository for testing.
type mockRepository struct {
	transactions map[string]*domain.TaxTransaction
	saveErr      error
}

func newMockRepository() *mockRepository {
	return &mockRepository{transactions: make(map[string]*domain.TaxTransaction)}
}

func (m *mockRepository) Get(ctx context.Context, orderID string) (*domain.TaxTransaction, error) {
	tx, ok := m.transactions[orderID]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	copied := *tx
	return &copied, nil
}

func (m *mockRepository) Save(ctx context.Context, tx *domain.TaxTransaction) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := *tx
	m.transactions[tx.OrderID] = &copied
	return nil
}

// mockAddressCache is an in-memory AddressCache for testing.
type mockAddressCache struct {
	entries map[string]domain.Address
	puts    int
}

func newMockAddressCache() *mockAddressCache {
	return &mockAddressCache{entries: make(map[string]domain.Address)}
}

func (m *mockAddressCache) Get(ctx context.Context, contextKey, hash string) (domain.Address, bool, error) {
	address, ok := m.entries[contextKey+":"+hash]
	return address, ok, nil
}

func (m *mockAddressCache) Put(ctx context.Context, contextKey, hash string, address domain.Address) error {
	m.entries[contextKey+":"+hash] = address
	m.puts++
	return nil
}
