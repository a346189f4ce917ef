package ports

import (
	"context"
	"time"

	"taxcloud-connector/internal/features/tax/domain"

	"github.com/shopspring/decimal"
)

// LookupRequest carries everything needed for a single cart tax lookup.
type LookupRequest struct {
	// CartID identifies the cart; response line items are matched back to
	// Items strictly by position, so CartID must stay stable across repeated
	// lookups for the same cart.
	CartID string
	// CustomerID is the purchasing customer. Empty means a guest checkout.
	CustomerID string
	// Origin is the shipping origin address.
	Origin domain.Address
	// Destination is the shipping destination address.
	Destination domain.Address
	// Items are the nonzero-cost lines to price. Indexes must be contiguous
	// from zero in slice order.
	Items []domain.LineItem
	// CertificateID is an optional applied exemption certificate.
	CertificateID string
	// AsOfDate, when non-zero, prices the cart as of the given date. The
	// provider resolves effective-date semantics server side.
	AsOfDate time.Time
}

// ReturnItem identifies a quantity of one line item being refunded.
type ReturnItem struct {
	// ItemID is the host platform line identifier.
	ItemID string
	// Quantity is the number of units returned.
	Quantity int
}

// TaxProvider defines the secondary port for the external tax calculation
// service. Implementations are stateless request/response mappers: all
// operations are pure network calls with no local mutation, and every
// operation distinguishes transport failures (*domain.TransportError,
// potentially retryable) from provider-reported business errors
// (*domain.BusinessError, propagated verbatim).
type TaxProvider interface {
	// Ping verifies API credentials and reachability.
	Ping(ctx context.Context) error

	// VerifyAddress normalizes an address through the provider. On success
	// the combined ZIP is split into its 5- and 4-digit parts. The provider
	// does not handle the country field; callers merge it back.
	VerifyAddress(ctx context.Context, address domain.Address) (domain.Address, error)

	// Lookup prices the cart and returns tax amounts keyed by item ID.
	// Only nonzero-cost items may be submitted.
	Lookup(ctx context.Context, req LookupRequest) (map[string]decimal.Decimal, error)

	// Authorize marks a previously quoted cart as pending capture.
	Authorize(ctx context.Context, cartID, orderID string) error

	// AuthorizeWithCapture authorizes and captures in a single step. The
	// provider upserts by orderID, so repeating the call for the same order
	// does not double-count.
	AuthorizeWithCapture(ctx context.Context, cartID, orderID string) error

	// Capture finalizes a previously authorized cart.
	Capture(ctx context.Context, cartID, orderID string) error

	// ReturnTransaction refunds items of a captured order. An empty items
	// slice is an explicit full-order return.
	ReturnTransaction(ctx context.Context, orderID string, items []ReturnItem) error

	// AddExemptionCertificate registers a certificate and returns its
	// provider-assigned ID.
	AddExemptionCertificate(ctx context.Context, cert domain.ExemptionCertificate) (string, error)

	// DeleteExemptionCertificate removes a certificate at the provider.
	DeleteExemptionCertificate(ctx context.Context, certificateID string) error

	// GetExemptionCertificates lists a customer's certificates.
	GetExemptionCertificates(ctx context.Context, customerID string) ([]domain.ExemptionCertificate, error)

	// GetTaxabilityCodes returns the TIC catalog. It never fails: a bundled
	// catalog backs the call when the remote is unavailable.
	GetTaxabilityCodes(ctx context.Context) map[int]string

	// GetLocations lists the business locations configured on the account.
	GetLocations(ctx context.Context) ([]domain.Location, error)

	// AddOfflineTransactions imports completed transactions recorded outside
	// the provider. Batches larger than domain.MaxOfflineBatchSize fail fast.
	AddOfflineTransactions(ctx context.Context, batch []domain.OfflineTransaction) error
}
