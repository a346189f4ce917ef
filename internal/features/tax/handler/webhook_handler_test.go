package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taxcloud-connector/internal/features/tax/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupWebhookApp(h *WebhookHandler) *fiber.App {
	app := fiber.New()
	app.Post("/webhooks/order-completed", h.OrderCompleted)
	app.Post("/webhooks/payment-complete", h.PaymentComplete)
	app.Post("/webhooks/refund-created", h.RefundCreated)
	app.Post("/webhooks/renewal-order", h.RenewalOrder)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

// TestWebhookHandler_OrderCompleted verifies the event reaches the registered
// handler and failures map to HTTP statuses.
func TestWebhookHandler_OrderCompleted(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := NewWebhookHandler()

		var captured []string
		h.OnOrderCompleted(func(ctx context.Context, orderID string) error {
			captured = append(captured, orderID)
			return nil
		})

		app := setupWebhookApp(h)
		resp := postJSON(t, app, "/webhooks/order-completed", OrderEventRequest{OrderID: "order-1"})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"order-1"}, captured)
	})

	t.Run("MissingOrderID", func(t *testing.T) {
		app := setupWebhookApp(NewWebhookHandler())
		resp := postJSON(t, app, "/webhooks/order-completed", OrderEventRequest{})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("InvalidState", func(t *testing.T) {
		h := NewWebhookHandler()
		h.OnOrderCompleted(func(ctx context.Context, orderID string) error {
			return &domain.InvalidStateError{OrderID: orderID, From: domain.StatusErrored, Op: "capture"}
		})

		app := setupWebhookApp(h)
		resp := postJSON(t, app, "/webhooks/order-completed", OrderEventRequest{OrderID: "order-1"})

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

// TestWebhookHandler_RefundCreated verifies both identifiers are required and
// forwarded.
func TestWebhookHandler_RefundCreated(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := NewWebhookHandler()

		var gotOrder, gotRefund string
		h.OnRefundCreated(func(ctx context.Context, orderID, refundID string) error {
			gotOrder, gotRefund = orderID, refundID
			return nil
		})

		app := setupWebhookApp(h)
		resp := postJSON(t, app, "/webhooks/refund-created", RefundEventRequest{OrderID: "order-1", RefundID: "refund-55"})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "order-1", gotOrder)
		assert.Equal(t, "refund-55", gotRefund)
	})

	t.Run("MissingRefundID", func(t *testing.T) {
		app := setupWebhookApp(NewWebhookHandler())
		resp := postJSON(t, app, "/webhooks/refund-created", RefundEventRequest{OrderID: "order-1"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

// TestWebhookHandler_RenewalOrder verifies the renewal event wiring.
func TestWebhookHandler_RenewalOrder(t *testing.T) {
	h := NewWebhookHandler()

	var gotOrder, gotParent string
	h.OnRenewalOrder(func(ctx context.Context, orderID, parentOrderID string) error {
		gotOrder, gotParent = orderID, parentOrderID
		return nil
	})

	app := setupWebhookApp(h)
	resp := postJSON(t, app, "/webhooks/renewal-order", RenewalEventRequest{OrderID: "order-2", ParentOrderID: "order-1"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "order-2", gotOrder)
	assert.Equal(t, "order-1", gotParent)
}

// TestWebhookHandler_UnregisteredHandlerIsNoop verifies events before
// registration are acknowledged without effect.
func TestWebhookHandler_UnregisteredHandlerIsNoop(t *testing.T) {
	app := setupWebhookApp(NewWebhookHandler())
	resp := postJSON(t, app, "/webhooks/payment-complete", OrderEventRequest{OrderID: "order-1"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
