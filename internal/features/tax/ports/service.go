package ports

import (
	"context"
	"time"

	"taxcloud-connector/internal/features/tax/domain"
)

// TaxService is the primary port exposed to the HTTP layer. Implemented by
// the coordinator.
type TaxService interface {
	// QuoteOrder calculates and records tax for an order. A non-zero asOf
	// prices the cart as of that date instead of today.
	QuoteOrder(ctx context.Context, orderID string, asOf time.Time) (*domain.TaxTransaction, error)

	// CaptureOrder finalizes an order's quoted tax with the provider.
	CaptureOrder(ctx context.Context, orderID string) (*domain.TaxTransaction, error)

	// RefundOrder returns refunded items with the provider.
	RefundOrder(ctx context.Context, orderID, refundID string) (*domain.TaxTransaction, error)

	// RenewalOrder quotes and captures a subscription renewal.
	RenewalOrder(ctx context.Context, orderID, parentOrderID string) (*domain.TaxTransaction, error)

	// GetTransaction reads an order's tax transaction.
	GetTransaction(ctx context.Context, orderID string) (*domain.TaxTransaction, error)

	// AddCertificate registers an exemption certificate.
	AddCertificate(ctx context.Context, cert domain.ExemptionCertificate) (string, error)

	// DeleteCertificate removes an exemption certificate.
	DeleteCertificate(ctx context.Context, certificateID string) error

	// ListCertificates lists a customer's exemption certificates.
	ListCertificates(ctx context.Context, customerID string) ([]domain.ExemptionCertificate, error)

	// TaxabilityCodes returns the TIC catalog.
	TaxabilityCodes(ctx context.Context) map[int]string

	// Locations lists the provider account's business locations.
	Locations(ctx context.Context) ([]domain.Location, error)

	// ImportTransactions uploads offline transactions in provider-sized chunks.
	ImportTransactions(ctx context.Context, batch []domain.OfflineTransaction) error

	// Ping verifies provider reachability.
	Ping(ctx context.Context) error
}
