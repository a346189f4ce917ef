package service

import (
	"context"
	"testing"

	"taxcloud-connector/internal/features/tax/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransactionLedger_RecordQuote verifies quoting starts a fresh record
// and requoting replaces it wholesale.
func TestTransactionLedger_RecordQuote(t *testing.T) {
	repo := newMockRepository()
	ledger := NewTransactionLedger(repo)
	ctx := context.Background()

	tx, err := ledger.RecordQuote(ctx, "order-1", "cart-1", "cert-1", testDestination, map[string]decimal.Decimal{
		"11": decimal.NewFromFloat(1.36),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusQuoted, tx.Status)
	assert.Equal(t, "cert-1", tx.CertificateID)

	tx, err = ledger.RecordQuote(ctx, "order-1", "cart-1", "", testDestination, map[string]decimal.Decimal{
		"12": decimal.NewFromFloat(0.50),
	})
	require.NoError(t, err)
	assert.Empty(t, tx.CertificateID)
	assert.Len(t, tx.LineItemTaxAmounts, 1)
	assert.True(t, decimal.NewFromFloat(0.50).Equal(tx.LineItemTaxAmounts["12"]))
}

// TestTransactionLedger_RecordCapture verifies the quoted-to-captured
// transition and its guard.
func TestTransactionLedger_RecordCapture(t *testing.T) {
	repo := newMockRepository()
	ledger := NewTransactionLedger(repo)
	ctx := context.Background()

	_, err := ledger.RecordCapture(ctx, "order-1", "order-1")
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)

	_, err = ledger.RecordQuote(ctx, "order-1", "cart-1", "", testDestination, nil)
	require.NoError(t, err)

	tx, err := ledger.RecordCapture(ctx, "order-1", "order-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCaptured, tx.Status)
	assert.False(t, tx.CapturedAt.IsZero())

	// Capturing twice violates the transition rules.
	_, err = ledger.RecordCapture(ctx, "order-1", "order-1")
	var stateErr *domain.InvalidStateError
	assert.ErrorAs(t, err, &stateErr)
}

// TestTransactionLedger_RecordError verifies errors can be recorded before
// any quote exists.
func TestTransactionLedger_RecordError(t *testing.T) {
	ledger := NewTransactionLedger(newMockRepository())

	tx, err := ledger.RecordError(context.Background(), "order-1", "provider unreachable")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusErrored, tx.Status)
	assert.Equal(t, "provider unreachable", tx.ErrorReason)
}

// TestTransactionLedger_RecordReturn verifies returns keep the captured
// amounts alongside the returned subset.
func TestTransactionLedger_RecordReturn(t *testing.T) {
	repo := newMockRepository()
	ledger := NewTransactionLedger(repo)
	ctx := context.Background()

	amounts := map[string]decimal.Decimal{
		"11": decimal.NewFromFloat(1.36),
		"12": decimal.NewFromFloat(0.50),
	}
	_, err := ledger.RecordQuote(ctx, "order-1", "cart-1", "", testDestination, amounts)
	require.NoError(t, err)
	_, err = ledger.RecordCapture(ctx, "order-1", "order-1")
	require.NoError(t, err)

	tx, err := ledger.RecordReturn(ctx, "order-1", map[string]decimal.Decimal{
		"11": decimal.NewFromFloat(1.36),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusReturned, tx.Status)
	assert.Len(t, tx.LineItemTaxAmounts, 2)
	assert.Len(t, tx.ReturnedItemTaxAmounts, 1)
}
