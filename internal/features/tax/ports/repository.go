package ports

import (
	"context"

	"taxcloud-connector/internal/features/tax/domain"
)

// TransactionRepository defines the secondary port for tax transaction
// storage. Get returns domain.ErrTransactionNotFound when no transaction
// exists for the order.
type TransactionRepository interface {
	Get(ctx context.Context, orderID string) (*domain.TaxTransaction, error)
	Save(ctx context.Context, tx *domain.TaxTransaction) error
}

// AddressCache defines the secondary port for validated-address storage.
// Entries are scoped by a context key: a checkout session pre-order, the
// order ID afterwards.
type AddressCache interface {
	// Get returns the validated address stored for (contextKey, hash), or
	// false when none exists.
	Get(ctx context.Context, contextKey, hash string) (domain.Address, bool, error)
	// Put stores a validated address under (contextKey, hash).
	Put(ctx context.Context, contextKey, hash string, address domain.Address) error
}
