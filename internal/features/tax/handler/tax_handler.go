package handler

import (
	"errors"
	"net/http"
	"time"

	"taxcloud-connector/internal/core/cache"
	"taxcloud-connector/internal/core/logger"
	"taxcloud-connector/internal/features/tax/domain"
	"taxcloud-connector/internal/features/tax/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TaxHandler handles HTTP requests for the tax lifecycle.
type TaxHandler struct {
	service ports.TaxService
	cache   cache.Cache
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(service ports.TaxService, c cache.Cache) *TaxHandler {
	return &TaxHandler{
		service: service,
		cache:   c,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// rayID extracts the request id injected by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// respondError maps domain errors onto HTTP statuses. Provider outages map
// to 502 so callers can tell them apart from our own failures.
func respondError(c *fiber.Ctx, err error, orderID string) error {
	logger.Get().Error("Tax operation failed",
		zap.String("order_id", orderID),
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)

	status := http.StatusInternalServerError

	var stateErr *domain.InvalidStateError
	var bizErr *domain.BusinessError
	var transportErr *domain.TransportError

	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		status = http.StatusNotFound
	case errors.As(err, &stateErr):
		status = http.StatusConflict
	case errors.As(err, &bizErr):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &transportErr):
		status = http.StatusBadGateway
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   rayID(c),
	})
}

// QuoteOrder handles the request to quote tax for an order.
// @Summary Quote tax for an order
// @Description Calculates tax through TaxCloud and records the quote. Provider outages flag the order instead of failing.
// @Tags Tax
// @Produce json
// @Param id path string true "Order ID"
// @Param as_of query string false "Price the cart as of this date (YYYY-MM-DD)"
// @Success 200 {object} domain.TaxTransaction
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders/{id}/quote [post]
func (h *TaxHandler) QuoteOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")
	if orderID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Order ID is required",
			RayID:   rayID(c),
		})
	}

	var asOf time.Time
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "as_of must be a YYYY-MM-DD date",
				RayID:   rayID(c),
			})
		}
		asOf = parsed
	}

	tx, err := h.service.QuoteOrder(c.Context(), orderID, asOf)
	if err != nil {
		return respondError(c, err, orderID)
	}

	return c.Status(http.StatusOK).JSON(tx)
}

// GetTransaction handles the request to read an order's tax transaction.
// @Summary Get tax transaction
// @Description Reads the recorded tax lifecycle state of an order.
// @Tags Tax
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.TaxTransaction
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [get]
func (h *TaxHandler) GetTransaction(c *fiber.Ctx) error {
	orderID := c.Params("id")

	tx, err := h.service.GetTransaction(c.Context(), orderID)
	if err != nil {
		return respondError(c, err, orderID)
	}

	return c.Status(http.StatusOK).JSON(tx)
}

// AddCertificateResponse carries the provider-assigned certificate id.
type AddCertificateResponse struct {
	CertificateID string `json:"certificate_id"`
}

// AddCertificate handles the request to register an exemption certificate.
// @Summary Add exemption certificate
// @Description Registers a customer's tax exemption certificate with TaxCloud.
// @Tags Certificates
// @Accept json
// @Produce json
// @Param certificate body domain.ExemptionCertificate true "Certificate details"
// @Success 201 {object} AddCertificateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /certificates [post]
func (h *TaxHandler) AddCertificate(c *fiber.Ctx) error {
	var cert domain.ExemptionCertificate
	if err := c.BodyParser(&cert); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	certificateID, err := h.service.AddCertificate(c.Context(), cert)
	if err != nil {
		return respondError(c, err, "")
	}

	return c.Status(http.StatusCreated).JSON(AddCertificateResponse{CertificateID: certificateID})
}

// ListCertificates handles the request to list a customer's certificates.
// @Summary List exemption certificates
// @Description Lists the exemption certificates saved for a customer.
// @Tags Certificates
// @Produce json
// @Param customer_id query string true "Customer ID"
// @Success 200 {array} domain.ExemptionCertificate
// @Failure 400 {object} ErrorResponse
// @Router /certificates [get]
func (h *TaxHandler) ListCertificates(c *fiber.Ctx) error {
	customerID := c.Query("customer_id")
	if customerID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Customer ID is required",
			RayID:   rayID(c),
		})
	}

	certificates, err := h.service.ListCertificates(c.Context(), customerID)
	if err != nil {
		return respondError(c, err, "")
	}

	return c.Status(http.StatusOK).JSON(certificates)
}

// DeleteCertificate handles the request to remove a certificate.
// @Summary Delete exemption certificate
// @Description Removes an exemption certificate at TaxCloud.
// @Tags Certificates
// @Produce json
// @Param id path string true "Certificate ID"
// @Success 200 {object} map[string]string
// @Failure 422 {object} ErrorResponse
// @Router /certificates/{id} [delete]
func (h *TaxHandler) DeleteCertificate(c *fiber.Ctx) error {
	certificateID := c.Params("id")

	if err := h.service.DeleteCertificate(c.Context(), certificateID); err != nil {
		return respondError(c, err, "")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Certificate deleted successfully",
	})
}

// GetTICs handles the request for the taxability code catalog.
// @Summary List taxability codes
// @Description Returns the TIC catalog used to classify products.
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[int]string
// @Router /tics [get]
func (h *TaxHandler) GetTICs(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.TaxabilityCodes(c.Context()))
}

// GetLocations handles the request for the account's business locations.
// @Summary List business locations
// @Description Lists the business locations configured on the TaxCloud account.
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Location
// @Failure 422 {object} ErrorResponse
// @Router /locations [get]
func (h *TaxHandler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.service.Locations(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}

	return c.Status(http.StatusOK).JSON(locations)
}

// ImportRequest is the body of a batch transaction import.
type ImportRequest struct {
	Transactions []domain.OfflineTransaction `json:"transactions"`
}

// ImportTransactions handles the request to import offline transactions.
// @Summary Import offline transactions
// @Description Uploads completed transactions recorded outside TaxCloud. Batches beyond the provider limit are chunked.
// @Tags Tax
// @Accept json
// @Produce json
// @Param batch body ImportRequest true "Transactions to import"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /transactions/import [post]
func (h *TaxHandler) ImportTransactions(c *fiber.Ctx) error {
	var req ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	if len(req.Transactions) == 0 {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "No transactions to import",
			RayID:   rayID(c),
		})
	}

	if err := h.service.ImportTransactions(c.Context(), req.Transactions); err != nil {
		return respondError(c, err, "")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message":  "Transactions imported successfully",
		"imported": len(req.Transactions),
	})
}

// Health handles the readiness probe: provider credentials and redis.
// @Summary Health check
// @Description Verifies TaxCloud credentials and cache reachability.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *TaxHandler) Health(c *fiber.Ctx) error {
	checks := fiber.Map{"taxcloud": "ok", "cache": "ok"}
	healthy := true

	if err := h.service.Ping(c.Context()); err != nil {
		checks["taxcloud"] = err.Error()
		healthy = false
	}
	if err := h.cache.Ping(c.Context()); err != nil {
		checks["cache"] = err.Error()
		healthy = false
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	return c.Status(status).JSON(checks)
}
