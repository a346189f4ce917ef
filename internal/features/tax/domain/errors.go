package domain

import (
	"errors"
	"fmt"
)

// ErrTransactionNotFound is returned when no tax transaction exists for an order.
var ErrTransactionNotFound = errors.New("tax transaction not found")

// TransportError wraps a network-level failure talking to the tax provider.
// Transport failures are potentially retryable; checkout proceeds with stale
// or zero tax when one occurs during a lookup.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("taxcloud %s: transport failure: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BusinessError is a failure reported by the tax provider itself (invalid
// address, invalid certificate, rejected business rule). The provider's
// message is kept verbatim for merchant-facing diagnostics and the error is
// never retried automatically.
type BusinessError struct {
	Op      string
	Message string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("taxcloud %s: %s", e.Op, e.Message)
}

// InvalidStateError signals an attempted ledger transition that violates the
// transaction state machine. It indicates an integration defect; the
// offending operation is aborted without partial mutation.
type InvalidStateError struct {
	OrderID string
	From    TransactionStatus
	Op      string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("order %s: cannot %s from state %s", e.OrderID, e.Op, e.From)
}
