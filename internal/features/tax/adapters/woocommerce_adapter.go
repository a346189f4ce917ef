package adapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"taxcloud-connector/internal/core/config"
	"taxcloud-connector/internal/core/httpclient"
	"taxcloud-connector/internal/features/tax/domain"
	"taxcloud-connector/internal/features/tax/ports"

	"github.com/shopspring/decimal"
)

// WooCommerceAdapter implements the OrderPlatform interface using the
// WooCommerce REST API.
type WooCommerceAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the WooCommerce connection details.
	config config.WooCommerceConfig
}

// NewWooCommerceAdapter creates a new instance of WooCommerceAdapter.
func NewWooCommerceAdapter(cfg config.WooCommerceConfig) *WooCommerceAdapter {
	return &WooCommerceAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// doJSON executes one WooCommerce REST call and decodes the response into out.
func (a *WooCommerceAdapter) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	url := fmt.Sprintf("%s/wp-json/wc/v3/%s", a.config.URL, path)

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Basic Auth using optimized string building
	authVal := make([]byte, 0, len(a.config.ConsumerKey)+len(a.config.ConsumerSecret)+1)
	authVal = fmt.Appendf(authVal, "%s:%s", a.config.ConsumerKey, a.config.ConsumerSecret)

	encoded := base64.StdEncoding.EncodeToString(authVal)
	req.Header.Add("Authorization", "Basic "+encoded)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("resource not found: %s", path)
		}
		return fmt.Errorf("woocommerce API returned status: %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// GetOrder fetches an order and maps it to the platform entity consumed by
// the tax lifecycle.
func (a *WooCommerceAdapter) GetOrder(ctx context.Context, orderID string) (*ports.PlatformOrder, error) {
	var wcOrder woocommerceOrder
	if err := a.doJSON(ctx, http.MethodGet, "orders/"+orderID, nil, &wcOrder); err != nil {
		return nil, err
	}

	return mapToPlatformOrder(wcOrder), nil
}

// mapToPlatformOrder converts a raw WooCommerce order response.
func mapToPlatformOrder(wcOrder woocommerceOrder) *ports.PlatformOrder {
	order := &ports.PlatformOrder{
		ID:           strconv.Itoa(wcOrder.ID),
		ShippingCost: parseAmount(wcOrder.ShippingTotal),
		Destination:  mapShippingAddress(wcOrder.Shipping),
	}
	if wcOrder.CustomerID > 0 {
		order.CustomerID = strconv.Itoa(wcOrder.CustomerID)
	}

	for _, item := range wcOrder.LineItems {
		order.Items = append(order.Items, ports.PlatformItem{
			ItemID:           strconv.Itoa(item.ID),
			ProductID:        strconv.Itoa(item.ProductID),
			Quantity:         item.Quantity,
			LineTotal:        parseAmount(item.Total),
			Type:             domain.ItemTypeCart,
			TIC:              extractTIC(item.MetaData),
			OriginLocationID: extractMetaString(item.MetaData, "_origin_location"),
		})
	}

	for _, fee := range wcOrder.FeeLines {
		order.Items = append(order.Items, ports.PlatformItem{
			ItemID:    strconv.Itoa(fee.ID),
			Quantity:  1,
			LineTotal: parseAmount(fee.Total),
			Type:      domain.ItemTypeFee,
			TIC:       extractTIC(fee.MetaData),
		})
	}

	return order
}

// mapShippingAddress converts the WooCommerce shipping block. The postcode is
// split into its ZIP components.
func mapShippingAddress(shipping wcShipping) domain.Address {
	address := domain.Address{
		Line1:   shipping.Address1,
		Line2:   shipping.Address2,
		City:    shipping.City,
		State:   shipping.State,
		Country: shipping.Country,
	}
	address.Zip5, address.Zip4 = domain.ParseZip(shipping.Postcode)
	return address
}

// parseAmount converts a WooCommerce money string. Malformed values count as
// zero rather than failing the whole order.
func parseAmount(raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// extractTIC reads the taxability code from line metadata, zero when unset.
func extractTIC(meta []wcMetaData) int {
	raw := extractMetaString(meta, "_tic")
	if raw == "" {
		return domain.TICUncategorized
	}
	tic, err := strconv.Atoi(raw)
	if err != nil {
		return domain.TICUncategorized
	}
	return tic
}

// extractMetaString finds a string metadata value by key.
func extractMetaString(meta []wcMetaData, key string) string {
	for _, entry := range meta {
		if entry.Key == key {
			if val, ok := entry.Value.(string); ok {
				return val
			}
			if val, ok := entry.Value.(float64); ok {
				return strconv.Itoa(int(val))
			}
		}
	}
	return ""
}

// GetRefundItems returns the item quantities a refund covers. WooCommerce
// reports refunded quantities as negative numbers; they are flipped here. An
// empty result means the refund covers the whole order.
func (a *WooCommerceAdapter) GetRefundItems(ctx context.Context, orderID, refundID string) ([]ports.ReturnItem, error) {
	var refund wcRefund
	path := fmt.Sprintf("orders/%s/refunds/%s", orderID, refundID)
	if err := a.doJSON(ctx, http.MethodGet, path, nil, &refund); err != nil {
		return nil, err
	}

	var items []ports.ReturnItem
	for _, line := range refund.LineItems {
		quantity := line.Quantity
		if quantity < 0 {
			quantity = -quantity
		}
		if quantity == 0 {
			continue
		}

		itemID := strconv.Itoa(line.ID)
		for _, meta := range line.MetaData {
			// Refund lines reference the refunded order line through metadata.
			if meta.Key == "_refunded_item_id" {
				itemID = extractMetaString(line.MetaData, "_refunded_item_id")
				break
			}
		}

		items = append(items, ports.ReturnItem{ItemID: itemID, Quantity: quantity})
	}

	return items, nil
}

// GetOrderMeta reads a metadata value from the order, empty when unset.
func (a *WooCommerceAdapter) GetOrderMeta(ctx context.Context, orderID, key string) (string, error) {
	var wcOrder woocommerceOrder
	if err := a.doJSON(ctx, http.MethodGet, "orders/"+orderID, nil, &wcOrder); err != nil {
		return "", err
	}
	return extractMetaString(wcOrder.MetaData, key), nil
}

// SetOrderMeta writes a metadata value on the order.
func (a *WooCommerceAdapter) SetOrderMeta(ctx context.Context, orderID, key, value string) error {
	payload := map[string]interface{}{
		"meta_data": []map[string]string{
			{"key": key, "value": value},
		},
	}
	return a.doJSON(ctx, http.MethodPut, "orders/"+orderID, payload, nil)
}

// UpdateOrderStatus moves the order to the given status.
func (a *WooCommerceAdapter) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	payload := map[string]string{"status": status}
	return a.doJSON(ctx, http.MethodPut, "orders/"+orderID, payload, nil)
}

// GetOrderTaxRows lists the tax total rows booked on the order.
func (a *WooCommerceAdapter) GetOrderTaxRows(ctx context.Context, orderID string) ([]ports.TaxRow, error) {
	var wcOrder woocommerceOrder
	if err := a.doJSON(ctx, http.MethodGet, "orders/"+orderID, nil, &wcOrder); err != nil {
		return nil, err
	}

	rows := make([]ports.TaxRow, 0, len(wcOrder.TaxLines))
	for _, line := range wcOrder.TaxLines {
		rows = append(rows, ports.TaxRow{
			RowID:  strconv.Itoa(line.ID),
			RateID: strconv.Itoa(line.RateID),
			Amount: parseAmount(line.TaxTotal),
		})
	}

	return rows, nil
}

// RemoveOrderTaxRow zeroes out a tax total row. The REST API cannot delete
// tax lines outright; zeroing removes the amount from the order totals.
func (a *WooCommerceAdapter) RemoveOrderTaxRow(ctx context.Context, orderID, rowID string) error {
	id, err := strconv.Atoi(rowID)
	if err != nil {
		return fmt.Errorf("invalid tax row id %q: %w", rowID, err)
	}

	payload := map[string]interface{}{
		"tax_lines": []map[string]interface{}{
			{"id": id, "tax_total": "0", "shipping_tax_total": "0"},
		},
	}
	return a.doJSON(ctx, http.MethodPut, "orders/"+orderID, payload, nil)
}

// HealthCheck verifies that the WooCommerce API is reachable and credentials
// are valid.
func (a *WooCommerceAdapter) HealthCheck(ctx context.Context) error {
	var out []woocommerceOrder
	if err := a.doJSON(ctx, http.MethodGet, "orders?per_page=1", nil, &out); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// internal structs for mapping

// woocommerceOrder represents the JSON structure of an order from WooCommerce API.
type woocommerceOrder struct {
	// ID is the unique order ID.
	ID int `json:"id"`
	// CustomerID is the purchasing customer, 0 for guests.
	CustomerID int `json:"customer_id"`
	// Status is the order status (e.g., pending, processing, completed).
	Status string `json:"status"`
	// ShippingTotal is the order's total shipping charge.
	ShippingTotal string `json:"shipping_total"`
	// Shipping holds the shipping address details.
	Shipping wcShipping `json:"shipping"`
	// LineItems contains the products ordered.
	LineItems []wcLineItem `json:"line_items"`
	// FeeLines contains additional fees added to the order.
	FeeLines []wcFeeLine `json:"fee_lines"`
	// TaxLines contains the tax total rows booked on the order.
	TaxLines []wcTaxLine `json:"tax_lines"`
	// MetaData contains extra fields.
	MetaData []wcMetaData `json:"meta_data"`
}

// wcMetaData represents a key-value pair in WooCommerce metadata.
type wcMetaData struct {
	// Key is the metadata key name.
	Key string `json:"key"`
	// Value is the metadata value, which can be of various types.
	Value interface{} `json:"value"`
}

// wcShipping holds shipping address information.
type wcShipping struct {
	// Address1 is the primary address line.
	Address1 string `json:"address_1"`
	// Address2 is the secondary address line.
	Address2 string `json:"address_2"`
	// City is the shipping city.
	City string `json:"city"`
	// State is the shipping state or province.
	State string `json:"state"`
	// Postcode is the shipping postal code.
	Postcode string `json:"postcode"`
	// Country is the shipping country code.
	Country string `json:"country"`
}

// wcLineItem represents a product in the WooCommerce order.
type wcLineItem struct {
	// ID is the unique identifier for the line item.
	ID int `json:"id"`
	// ProductID is the purchased product.
	ProductID int `json:"product_id"`
	// Quantity is the number of units ordered.
	Quantity int `json:"quantity"`
	// Total is the extended line cost after discounts.
	Total string `json:"total"`
	// MetaData contains per-line extra fields.
	MetaData []wcMetaData `json:"meta_data"`
}

// wcFeeLine represents a fee line item.
type wcFeeLine struct {
	// ID is the unique identifier for the fee line.
	ID int `json:"id"`
	// Name is the fee name.
	Name string `json:"name"`
	// Total is the fee amount.
	Total string `json:"total"`
	// MetaData contains per-line extra fields.
	MetaData []wcMetaData `json:"meta_data"`
}

// wcTaxLine represents a tax total row on the order.
type wcTaxLine struct {
	// ID is the unique identifier of the tax row.
	ID int `json:"id"`
	// RateID identifies the tax rate the row was booked under.
	RateID int `json:"rate_id"`
	// TaxTotal is the tax amount of the row.
	TaxTotal string `json:"tax_total"`
}

// wcRefund represents a refund from the WooCommerce refunds endpoint.
type wcRefund struct {
	// ID is the unique refund ID.
	ID int `json:"id"`
	// LineItems contains the refunded lines with negative quantities.
	LineItems []wcLineItem `json:"line_items"`
}

// compile-time interface check
var _ ports.OrderPlatform = (*WooCommerceAdapter)(nil)
