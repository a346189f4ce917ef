package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taxcloud-connector/internal/features/tax/domain"
	"taxcloud-connector/internal/features/tax/ports"

	"github.com/shopspring/decimal"
)

// TransactionLedger records the tax lifecycle of orders. All state changes go
// through the domain transition rules; the ledger only loads, applies and
// persists.
type TransactionLedger struct {
	// repository is the persistence port for tax transactions.
	repository ports.TransactionRepository
}

// NewTransactionLedger creates a new instance of TransactionLedger.
func NewTransactionLedger(repository ports.TransactionRepository) *TransactionLedger {
	return &TransactionLedger{
		repository: repository,
	}
}

// Get retrieves the transaction of an order.
// Returns domain.ErrTransactionNotFound when the order has no tax record.
func (l *TransactionLedger) Get(ctx context.Context, orderID string) (*domain.TaxTransaction, error) {
	return l.repository.Get(ctx, orderID)
}

// getOrCreate loads an order's transaction, starting a fresh one when none
// exists yet.
func (l *TransactionLedger) getOrCreate(ctx context.Context, orderID string) (*domain.TaxTransaction, error) {
	tx, err := l.repository.Get(ctx, orderID)
	if errors.Is(err, domain.ErrTransactionNotFound) {
		return domain.NewTaxTransaction(orderID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction for order %s: %w", orderID, err)
	}
	return tx, nil
}

// RecordQuote stores a fresh quote for an order. Requoting replaces the
// previous quote wholesale, including the applied certificate reference.
func (l *TransactionLedger) RecordQuote(ctx context.Context, orderID, cartID, certificateID string, destination domain.Address, amounts map[string]decimal.Decimal) (*domain.TaxTransaction, error) {
	tx, err := l.getOrCreate(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := tx.Quote(cartID, destination, amounts); err != nil {
		return nil, err
	}
	tx.CertificateID = certificateID

	if err := l.repository.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to save quote for order %s: %w", orderID, err)
	}

	return tx, nil
}

// RecordCapture marks an order's quote as captured.
func (l *TransactionLedger) RecordCapture(ctx context.Context, orderID, providerOrderID string) (*domain.TaxTransaction, error) {
	tx, err := l.repository.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := tx.Capture(providerOrderID, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := l.repository.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to save capture for order %s: %w", orderID, err)
	}

	return tx, nil
}

// RecordReturn marks a captured order as returned. The captured amounts stay
// on the transaction; the returned portion is stored alongside them.
func (l *TransactionLedger) RecordReturn(ctx context.Context, orderID string, returnedAmounts map[string]decimal.Decimal) (*domain.TaxTransaction, error) {
	tx, err := l.repository.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := tx.Return(returnedAmounts); err != nil {
		return nil, err
	}

	if err := l.repository.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to save return for order %s: %w", orderID, err)
	}

	return tx, nil
}

// RecordError moves an order's transaction into the error state with the
// given reason.
func (l *TransactionLedger) RecordError(ctx context.Context, orderID, reason string) (*domain.TaxTransaction, error) {
	tx, err := l.getOrCreate(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := tx.MarkErrored(reason); err != nil {
		return nil, err
	}

	if err := l.repository.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to save error for order %s: %w", orderID, err)
	}

	return tx, nil
}
