package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"taxcloud-connector/internal/core/config"
	"taxcloud-connector/internal/core/httpclient"
	"taxcloud-connector/internal/features/tax/domain"
	"taxcloud-connector/internal/features/tax/ports"

	"github.com/shopspring/decimal"
)

// TaxCloudAdapter implements the TaxProvider interface against the TaxCloud
// v3 API, falling back to the legacy v1 API for the endpoints that were
// never migrated (locations, offline transaction import).
type TaxCloudAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the TaxCloud connection details.
	config config.TaxCloudConfig
	// basis selects unit-price vs extended-price submission for lookups.
	basis domain.TaxBasis
}

// NewTaxCloudAdapter creates a new instance of TaxCloudAdapter.
func NewTaxCloudAdapter(cfg config.TaxCloudConfig, basis domain.TaxBasis) *TaxCloudAdapter {
	return &TaxCloudAdapter{
		client: httpclient.NewClient(time.Duration(cfg.TimeoutSeconds) * time.Second),
		config: cfg,
		basis:  basis,
	}
}

// connURL builds a v3 URL scoped to the configured connection.
func (a *TaxCloudAdapter) connURL(path string) string {
	return fmt.Sprintf("%s/connections/%s/%s", strings.TrimSuffix(a.config.APIURL, "/"), a.config.ConnectionID, path)
}

// rootURL builds a v3 URL outside the connection scope.
func (a *TaxCloudAdapter) rootURL(path string) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(a.config.APIURL, "/"), path)
}

// do executes one provider call and returns the raw response body.
// Network-level failures surface as *domain.TransportError; payloads that
// carry the provider's error envelope surface as *domain.BusinessError with
// the provider's message kept verbatim.
func (a *TaxCloudAdapter) do(ctx context.Context, op, method, reqURL string, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", op, err)
	}

	req.Header.Set("Accept", "application/json, application/problem+json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", a.config.APIKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}

	if bizErr := parseBusinessError(op, resp.StatusCode, respBody); bizErr != nil {
		return nil, bizErr
	}

	return respBody, nil
}

// errorEnvelope matches the provider's business-failure payloads: either a
// status/errors pair or a non-200 code with a message.
type errorEnvelope struct {
	Status  json.RawMessage `json:"status"`
	Errors  json.RawMessage `json:"errors"`
	Code    int             `json:"code"`
	Message json.RawMessage `json:"message"`
	Detail  string          `json:"detail"`
}

// parseBusinessError inspects a response body for the provider's error
// envelope. Returns nil when the response denotes success.
func parseBusinessError(op string, statusCode int, body []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Status != nil && envelope.Errors != nil {
			return &domain.BusinessError{Op: op, Message: rawMessage(envelope.Errors)}
		}
		if envelope.Code != 0 && envelope.Code != http.StatusOK {
			return &domain.BusinessError{Op: op, Message: rawMessage(envelope.Message)}
		}
	}

	if statusCode >= http.StatusBadRequest {
		return &domain.BusinessError{Op: op, Message: strings.TrimSpace(string(body))}
	}

	return nil
}

// rawMessage renders a raw JSON fragment as a plain string when possible.
func rawMessage(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// wire types

// wireAddress is the v3 representation of a postal address.
type wireAddress struct {
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
}

// toWireAddress converts a domain address. The provider only serves US
// addresses; the country field is always submitted as "US".
func toWireAddress(addr domain.Address) wireAddress {
	return wireAddress{
		City:        addr.City,
		CountryCode: "US",
		Line1:       addr.Line1,
		Line2:       addr.Line2,
		State:       addr.State,
		Zip:         addr.CombinedZip(),
	}
}

// wireLineItem is one priced line within a lookup cart.
type wireLineItem struct {
	Index    int     `json:"index"`
	ItemID   string  `json:"itemId"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	TIC      int     `json:"tic"`
}

// wireCurrency pins the cart currency.
type wireCurrency struct {
	CurrencyCode string `json:"currencyCode"`
}

// wireCart is one cart in a lookup request.
type wireCart struct {
	CartID            string         `json:"cartId"`
	Currency          wireCurrency   `json:"currency"`
	CustomerID        string         `json:"customerId"`
	DeliveredBySeller bool           `json:"deliveredBySeller"`
	Destination       wireAddress    `json:"destination"`
	Origin            wireAddress    `json:"origin"`
	LineItems         []wireLineItem `json:"lineItems"`
	CertificateID     string         `json:"certificateId,omitempty"`
	UseDate           string         `json:"useDate,omitempty"`
}

// wireCartsRequest is the body of a POST carts call.
type wireCartsRequest struct {
	Items []wireCart `json:"items"`
}

// wireCartsResponse is the successful response of a POST carts call.
type wireCartsResponse struct {
	Items []struct {
		CartID    string `json:"cartId"`
		LineItems []struct {
			ItemID string `json:"itemId"`
			Tax    struct {
				Amount float64 `json:"amount"`
			} `json:"tax"`
		} `json:"lineItems"`
	} `json:"items"`
}

// wireOrderRequest is the body of a POST carts/orders call. The completed
// flag distinguishes authorize-only from authorize-with-capture.
type wireOrderRequest struct {
	CartID    string `json:"cartId"`
	Completed bool   `json:"completed"`
	OrderID   string `json:"orderId"`
}

// wireReturnRequest is the body of a refund call. An empty items slice is an
// explicit full-order return.
type wireReturnRequest struct {
	Items []wireReturnItem `json:"items"`
}

// wireReturnItem identifies a returned quantity of one line.
type wireReturnItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// Ping verifies that credentials are valid and the API is reachable.
func (a *TaxCloudAdapter) Ping(ctx context.Context) error {
	_, err := a.do(ctx, "ping", http.MethodGet, a.connURL("ping"), nil)
	return err
}

// VerifyAddress normalizes an address through the provider. The combined ZIP
// returned by the provider is split back into its 5- and 4-digit parts.
func (a *TaxCloudAdapter) VerifyAddress(ctx context.Context, address domain.Address) (domain.Address, error) {
	body, err := a.do(ctx, "verify-address", http.MethodPost, a.rootURL("verify-address"), toWireAddress(address))
	if err != nil {
		return domain.Address{}, err
	}

	var resp struct {
		Line1 string `json:"line1"`
		Line2 string `json:"line2"`
		City  string `json:"city"`
		State string `json:"state"`
		Zip   string `json:"zip"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Address{}, &domain.BusinessError{Op: "verify-address", Message: fmt.Sprintf("unexpected response: %v", err)}
	}

	verified := domain.Address{
		Line1: resp.Line1,
		Line2: resp.Line2,
		City:  resp.City,
		State: resp.State,
		Zip5:  resp.Zip,
	}
	if idx := strings.Index(resp.Zip, "-"); idx >= 0 {
		verified.Zip5 = resp.Zip[:idx]
		verified.Zip4 = resp.Zip[idx+1:]
	}

	return verified, nil
}

// Lookup prices a cart and returns tax amounts keyed by item ID. Zero-cost
// items are excluded from the request; the provider's response line items
// are matched back to the submitted items strictly by position.
func (a *TaxCloudAdapter) Lookup(ctx context.Context, req ports.LookupRequest) (map[string]decimal.Decimal, error) {
	customerID := req.CustomerID
	if customerID == "" {
		// Guest checkouts still need a customer id on the provider side.
		customerID = "customer-0"
	}

	submitted := make([]domain.LineItem, 0, len(req.Items))
	lineItems := make([]wireLineItem, 0, len(req.Items))

	for _, item := range req.Items {
		if item.IsZeroCost() {
			continue
		}

		adjusted := item.ForBasis(a.basis)
		lineItems = append(lineItems, wireLineItem{
			Index:    len(lineItems),
			ItemID:   adjusted.ItemID,
			Price:    adjusted.UnitPrice.InexactFloat64(),
			Quantity: adjusted.Quantity,
			TIC:      adjusted.TIC,
		})
		submitted = append(submitted, adjusted)
	}

	cart := wireCart{
		CartID:            req.CartID,
		Currency:          wireCurrency{CurrencyCode: "USD"},
		CustomerID:        customerID,
		DeliveredBySeller: false,
		Destination:       toWireAddress(req.Destination),
		Origin:            toWireAddress(req.Origin),
		LineItems:         lineItems,
		CertificateID:     req.CertificateID,
	}
	if !req.AsOfDate.IsZero() {
		cart.UseDate = req.AsOfDate.Format("2006-01-02")
	}

	body, err := a.do(ctx, "lookup", http.MethodPost, a.connURL("carts"), wireCartsRequest{Items: []wireCart{cart}})
	if err != nil {
		return nil, err
	}

	var resp wireCartsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.BusinessError{Op: "lookup", Message: fmt.Sprintf("unexpected response: %v", err)}
	}
	if len(resp.Items) == 0 {
		return nil, &domain.BusinessError{Op: "lookup", Message: "response contained no cart"}
	}
	if len(resp.Items[0].LineItems) != len(submitted) {
		return nil, &domain.BusinessError{
			Op:      "lookup",
			Message: fmt.Sprintf("response line item count %d does not match request %d", len(resp.Items[0].LineItems), len(submitted)),
		}
	}

	amounts := make(map[string]decimal.Decimal, len(submitted))
	for i, line := range resp.Items[0].LineItems {
		// Positional matching: the provider echoes lines in request order.
		amounts[submitted[i].ItemID] = decimal.NewFromFloat(line.Tax.Amount)
	}

	return amounts, nil
}

// Authorize marks a quoted cart as pending capture.
func (a *TaxCloudAdapter) Authorize(ctx context.Context, cartID, orderID string) error {
	_, err := a.do(ctx, "authorize", http.MethodPost, a.connURL("carts/orders"), wireOrderRequest{
		CartID:    cartID,
		Completed: false,
		OrderID:   orderID,
	})
	return err
}

// AuthorizeWithCapture authorizes and captures in a single step.
func (a *TaxCloudAdapter) AuthorizeWithCapture(ctx context.Context, cartID, orderID string) error {
	_, err := a.do(ctx, "authorize-with-capture", http.MethodPost, a.connURL("carts/orders"), wireOrderRequest{
		CartID:    cartID,
		Completed: true,
		OrderID:   orderID,
	})
	return err
}

// Capture finalizes a previously authorized cart.
func (a *TaxCloudAdapter) Capture(ctx context.Context, cartID, orderID string) error {
	_, err := a.do(ctx, "capture", http.MethodPost, a.connURL("carts/orders"), wireOrderRequest{
		CartID:    cartID,
		Completed: true,
		OrderID:   orderID,
	})
	return err
}

// ReturnTransaction refunds items of a captured order. An empty items slice
// is submitted as-is and the provider treats it as a full-order return.
func (a *TaxCloudAdapter) ReturnTransaction(ctx context.Context, orderID string, items []ports.ReturnItem) error {
	wireItems := make([]wireReturnItem, 0, len(items))
	for _, item := range items {
		wireItems = append(wireItems, wireReturnItem{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	url := a.connURL("orders/refunds/" + orderID)
	_, err := a.do(ctx, "return", http.MethodPost, url, wireReturnRequest{Items: wireItems})
	return err
}

// wireCertificateRequest is the body of an exemption certificate creation call.
type wireCertificateRequest struct {
	CustomerID                  string      `json:"customerId"`
	Address                     wireAddress `json:"address"`
	CustomerBusinessDescription string      `json:"customerBusinessDescription"`
	CustomerBusinessType        string      `json:"customerBusinessType"`
	CustomerName                string      `json:"customerName"`
	Reason                      string      `json:"reason"`
	ReasonDescription           string      `json:"reasonDescription"`
	States                      []wireState `json:"states"`
}

// wireState is a state abbreviation entry in certificate payloads.
type wireState struct {
	Abbreviation string `json:"abbreviation"`
}

// wireCertificate is one certificate in a certificate listing.
type wireCertificate struct {
	CertificateID        string      `json:"certificateId"`
	CustomerID           string      `json:"customerId"`
	CustomerName         string      `json:"customerName"`
	CustomerBusinessType string      `json:"customerBusinessType"`
	Reason               string      `json:"reason"`
	ReasonDescription    string      `json:"reasonDescription"`
	Address              wireAddress `json:"address"`
	States               []wireState `json:"states"`
	CreatedDate          string      `json:"createdDate"`
}

// AddExemptionCertificate registers a certificate with the provider and
// returns the provider-assigned certificate ID.
func (a *TaxCloudAdapter) AddExemptionCertificate(ctx context.Context, cert domain.ExemptionCertificate) (string, error) {
	states := make([]wireState, 0, len(cert.ExemptStates))
	for _, abbr := range cert.ExemptStates {
		states = append(states, wireState{Abbreviation: abbr})
	}

	payload := wireCertificateRequest{
		CustomerID:                  cert.CustomerID,
		Address:                     toWireAddress(cert.PurchaserAddress),
		CustomerBusinessDescription: cert.BusinessTypeOther,
		CustomerBusinessType:        cert.BusinessType,
		CustomerName:                strings.TrimSpace(cert.PurchaserFirstName + " " + cert.PurchaserLastName),
		Reason:                      string(cert.Reason),
		ReasonDescription:           cert.ReasonDescription,
		States:                      states,
	}

	body, err := a.do(ctx, "add-exemption", http.MethodPost, a.connURL("exemption-certificates"), payload)
	if err != nil {
		return "", err
	}

	var resp struct {
		CertificateID string `json:"certificateId"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.CertificateID == "" {
		return "", &domain.BusinessError{Op: "add-exemption", Message: "response contained no certificate id"}
	}

	return resp.CertificateID, nil
}

// DeleteExemptionCertificate removes a certificate at the provider.
func (a *TaxCloudAdapter) DeleteExemptionCertificate(ctx context.Context, certificateID string) error {
	reqURL := a.connURL("exemption-certificates/" + certificateID)
	_, err := a.do(ctx, "delete-exemption", http.MethodDelete, reqURL, nil)
	return err
}

// GetExemptionCertificates lists a customer's saved certificates.
func (a *TaxCloudAdapter) GetExemptionCertificates(ctx context.Context, customerID string) ([]domain.ExemptionCertificate, error) {
	query := url.Values{}
	query.Set("customerId", customerID)
	query.Set("limit", "100")
	query.Set("connectionId", a.config.ConnectionID)
	reqURL := a.rootURL("exemption-certificates") + "?" + query.Encode()

	body, err := a.do(ctx, "get-exemptions", http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Items []wireCertificate `json:"items"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.BusinessError{Op: "get-exemptions", Message: fmt.Sprintf("unexpected response: %v", err)}
	}

	certificates := make([]domain.ExemptionCertificate, 0, len(resp.Items))
	for _, item := range resp.Items {
		cert := domain.ExemptionCertificate{
			CertificateID: item.CertificateID,
			CustomerID:    item.CustomerID,
			BusinessType:  item.CustomerBusinessType,
			Reason:        domain.ExemptionReason(item.Reason),
			PurchaserAddress: domain.Address{
				Line1:   item.Address.Line1,
				Line2:   item.Address.Line2,
				City:    item.Address.City,
				State:   item.Address.State,
				Country: "US",
			},
			ReasonDescription: item.ReasonDescription,
		}
		cert.PurchaserAddress.Zip5, cert.PurchaserAddress.Zip4 = domain.ParseZip(item.Address.Zip)

		names := strings.SplitN(item.CustomerName, " ", 2)
		cert.PurchaserFirstName = names[0]
		if len(names) > 1 {
			cert.PurchaserLastName = names[1]
		}

		for _, state := range item.States {
			cert.ExemptStates = append(cert.ExemptStates, state.Abbreviation)
		}

		if item.CreatedDate != "" {
			if created, err := time.Parse(time.RFC3339, item.CreatedDate); err == nil {
				cert.CreatedDate = created
			}
		}

		certificates = append(certificates, cert)
	}

	return certificates, nil
}

// GetTaxabilityCodes returns the TIC catalog. The bundled catalog backs the
// call so it never fails.
func (a *TaxCloudAdapter) GetTaxabilityCodes(ctx context.Context) map[int]string {
	catalog := make(map[int]string, len(bundledTICs))
	for id, description := range bundledTICs {
		catalog[id] = description
	}
	return catalog
}

// legacy v1 wire format

// wireLegacyCredentials is the credential pair every v1 payload carries.
type wireLegacyCredentials struct {
	APILoginID string `json:"apiLoginID"`
	APIKey     string `json:"apiKey"`
}

// wireLegacyTransaction is one completed transaction in a v1 AddTransactions
// call. The v1 API uses PascalCase keys.
type wireLegacyTransaction struct {
	OrderID                string         `json:"OrderID"`
	CartID                 string         `json:"CartID"`
	CustomerID             string         `json:"CustomerID"`
	Origin                 wireAddress    `json:"Origin"`
	Destination            wireAddress    `json:"Destination"`
	CartItems              []wireLineItem `json:"CartItems"`
	DateTransactionCreated string         `json:"DateTransactionCreated"`
}

// wireLegacyTransactionsRequest is the body of a v1 AddTransactions call.
type wireLegacyTransactionsRequest struct {
	wireLegacyCredentials
	Transactions []wireLegacyTransaction `json:"transactions"`
}

// wireLegacyResponse is the ResponseType/Messages envelope of the v1 API.
type wireLegacyResponse struct {
	ResponseType string `json:"ResponseType"`
	Messages     []struct {
		ResponseType string `json:"ResponseType"`
		Message      string `json:"Message"`
	} `json:"Messages"`
	Locations []struct {
		LocationID string `json:"LocationID"`
		Address1   string `json:"Address1"`
		Address2   string `json:"Address2"`
		City       string `json:"City"`
		State      string `json:"State"`
		Zip5       string `json:"Zip5"`
		Zip4       string `json:"Zip4"`
	} `json:"Locations"`
}

// legacyCredentials returns the v1 credential pair for request payloads.
func (a *TaxCloudAdapter) legacyCredentials() wireLegacyCredentials {
	return wireLegacyCredentials{APILoginID: a.config.APILoginID, APIKey: a.config.APIKey}
}

// doLegacy executes a v1 API call and unwraps its response envelope.
func (a *TaxCloudAdapter) doLegacy(ctx context.Context, op, endpoint string, payload interface{}) (*wireLegacyResponse, error) {
	reqURL := fmt.Sprintf("%s/%s", strings.TrimSuffix(a.config.LegacyAPIURL, "/"), endpoint)
	body, err := a.do(ctx, op, http.MethodPost, reqURL, payload)
	if err != nil {
		return nil, err
	}

	var resp wireLegacyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.BusinessError{Op: op, Message: fmt.Sprintf("unexpected response: %v", err)}
	}

	if resp.ResponseType != "OK" {
		messages := make([]string, 0, len(resp.Messages))
		for _, msg := range resp.Messages {
			messages = append(messages, msg.Message)
		}
		return nil, &domain.BusinessError{Op: op, Message: strings.Join(messages, "; ")}
	}

	return &resp, nil
}

// GetLocations lists the business locations configured on the provider account.
func (a *TaxCloudAdapter) GetLocations(ctx context.Context) ([]domain.Location, error) {
	resp, err := a.doLegacy(ctx, "get-locations", "GetLocations", a.legacyCredentials())
	if err != nil {
		return nil, err
	}

	locations := make([]domain.Location, 0, len(resp.Locations))
	for _, loc := range resp.Locations {
		locations = append(locations, domain.Location{
			LocationID: loc.LocationID,
			Address: domain.Address{
				Line1:   loc.Address1,
				Line2:   loc.Address2,
				City:    loc.City,
				State:   loc.State,
				Zip5:    loc.Zip5,
				Zip4:    loc.Zip4,
				Country: "US",
			},
		})
	}

	return locations, nil
}

// AddOfflineTransactions imports completed transactions recorded outside the
// provider. The provider caps batches at 25; larger batches fail fast before
// any network call.
func (a *TaxCloudAdapter) AddOfflineTransactions(ctx context.Context, batch []domain.OfflineTransaction) error {
	if len(batch) > domain.MaxOfflineBatchSize {
		return &domain.BusinessError{
			Op:      "add-transactions",
			Message: fmt.Sprintf("batch size %d exceeds maximum of %d", len(batch), domain.MaxOfflineBatchSize),
		}
	}

	transactions := make([]wireLegacyTransaction, 0, len(batch))
	for _, tx := range batch {
		items := make([]wireLineItem, 0, len(tx.Items))
		for _, item := range tx.Items {
			if item.IsZeroCost() {
				continue
			}
			adjusted := item.ForBasis(a.basis)
			items = append(items, wireLineItem{
				Index:    len(items),
				ItemID:   adjusted.ItemID,
				Price:    adjusted.UnitPrice.InexactFloat64(),
				Quantity: adjusted.Quantity,
				TIC:      adjusted.TIC,
			})
		}

		transactions = append(transactions, wireLegacyTransaction{
			OrderID:                tx.OrderID,
			CartID:                 tx.CartID,
			CustomerID:             tx.CustomerID,
			Origin:                 toWireAddress(tx.Origin),
			Destination:            toWireAddress(tx.Destination),
			CartItems:              items,
			DateTransactionCreated: tx.CompletedAt.Format(time.RFC3339),
		})
	}

	_, err := a.doLegacy(ctx, "add-transactions", "AddTransactions", wireLegacyTransactionsRequest{
		wireLegacyCredentials: a.legacyCredentials(),
		Transactions:          transactions,
	})
	return err
}

// compile-time interface check
var _ ports.TaxProvider = (*TaxCloudAdapter)(nil)
