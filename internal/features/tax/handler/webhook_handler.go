package handler

import (
	"context"
	"net/http"

	"taxcloud-connector/internal/features/tax/ports"

	"github.com/gofiber/fiber/v2"
)

// WebhookHandler receives platform lifecycle events over HTTP and feeds them
// to the handlers the coordinator registered. It implements
// ports.EventDispatcher so the coordinator never learns about fiber.
type WebhookHandler struct {
	orderCompleted  func(ctx context.Context, orderID string) error
	paymentComplete func(ctx context.Context, orderID string) error
	refundCreated   func(ctx context.Context, orderID, refundID string) error
	renewalOrder    func(ctx context.Context, orderID, parentOrderID string) error
}

// NewWebhookHandler creates a new WebhookHandler with no-op handlers until
// registration.
func NewWebhookHandler() *WebhookHandler {
	nop := func(ctx context.Context, orderID string) error { return nil }
	return &WebhookHandler{
		orderCompleted:  nop,
		paymentComplete: nop,
		refundCreated:   func(ctx context.Context, orderID, refundID string) error { return nil },
		renewalOrder:    func(ctx context.Context, orderID, parentOrderID string) error { return nil },
	}
}

// OnOrderCompleted implements ports.EventDispatcher.
func (h *WebhookHandler) OnOrderCompleted(handler func(ctx context.Context, orderID string) error) {
	h.orderCompleted = handler
}

// OnPaymentComplete implements ports.EventDispatcher.
func (h *WebhookHandler) OnPaymentComplete(handler func(ctx context.Context, orderID string) error) {
	h.paymentComplete = handler
}

// OnRefundCreated implements ports.EventDispatcher.
func (h *WebhookHandler) OnRefundCreated(handler func(ctx context.Context, orderID, refundID string) error) {
	h.refundCreated = handler
}

// OnRenewalOrder implements ports.EventDispatcher.
func (h *WebhookHandler) OnRenewalOrder(handler func(ctx context.Context, orderID, parentOrderID string) error) {
	h.renewalOrder = handler
}

// OrderEventRequest is the body of single-order webhook events.
type OrderEventRequest struct {
	OrderID string `json:"order_id"`
}

// RefundEventRequest is the body of the refund-created event.
type RefundEventRequest struct {
	OrderID  string `json:"order_id"`
	RefundID string `json:"refund_id"`
}

// RenewalEventRequest is the body of the renewal-order event.
type RenewalEventRequest struct {
	OrderID       string `json:"order_id"`
	ParentOrderID string `json:"parent_order_id"`
}

// parseEvent decodes a webhook body. When decoding fails the 400 response is
// written here and ok is false.
func parseEvent(c *fiber.Ctx, req interface{}) (ok bool, err error) {
	if parseErr := c.BodyParser(req); parseErr != nil {
		return false, c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}
	return true, nil
}

func acknowledge(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Event processed"})
}

// OrderCompleted handles the order-completed webhook.
// @Summary Order completed event
// @Description Captures the order's quoted tax with TaxCloud.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param event body OrderEventRequest true "Event payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /webhooks/order-completed [post]
func (h *WebhookHandler) OrderCompleted(c *fiber.Ctx) error {
	var req OrderEventRequest
	if ok, err := parseEvent(c, &req); !ok {
		return err
	}
	if req.OrderID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order ID is required",
			RayID:   rayID(c),
		})
	}

	if err := h.orderCompleted(c.Context(), req.OrderID); err != nil {
		return respondError(c, err, req.OrderID)
	}
	return acknowledge(c)
}

// PaymentComplete handles the payment-complete webhook.
// @Summary Payment complete event
// @Description Captures immediately when the connector is configured to do so.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param event body OrderEventRequest true "Event payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /webhooks/payment-complete [post]
func (h *WebhookHandler) PaymentComplete(c *fiber.Ctx) error {
	var req OrderEventRequest
	if ok, err := parseEvent(c, &req); !ok {
		return err
	}
	if req.OrderID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order ID is required",
			RayID:   rayID(c),
		})
	}

	if err := h.paymentComplete(c.Context(), req.OrderID); err != nil {
		return respondError(c, err, req.OrderID)
	}
	return acknowledge(c)
}

// RefundCreated handles the refund-created webhook.
// @Summary Refund created event
// @Description Returns the refunded items with TaxCloud.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param event body RefundEventRequest true "Event payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /webhooks/refund-created [post]
func (h *WebhookHandler) RefundCreated(c *fiber.Ctx) error {
	var req RefundEventRequest
	if ok, err := parseEvent(c, &req); !ok {
		return err
	}
	if req.OrderID == "" || req.RefundID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order ID and Refund ID are required",
			RayID:   rayID(c),
		})
	}

	if err := h.refundCreated(c.Context(), req.OrderID, req.RefundID); err != nil {
		return respondError(c, err, req.OrderID)
	}
	return acknowledge(c)
}

// RenewalOrder handles the renewal-order webhook.
// @Summary Renewal order event
// @Description Quotes and captures a subscription renewal order.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param event body RenewalEventRequest true "Event payload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /webhooks/renewal-order [post]
func (h *WebhookHandler) RenewalOrder(c *fiber.Ctx) error {
	var req RenewalEventRequest
	if ok, err := parseEvent(c, &req); !ok {
		return err
	}
	if req.OrderID == "" || req.ParentOrderID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order ID and Parent Order ID are required",
			RayID:   rayID(c),
		})
	}

	if err := h.renewalOrder(c.Context(), req.OrderID, req.ParentOrderID); err != nil {
		return respondError(c, err, req.OrderID)
	}
	return acknowledge(c)
}

// compile-time interface check
var _ ports.EventDispatcher = (*WebhookHandler)(nil)
