package domain

import "time"

// ExemptionReason enumerates the provider-recognized grounds for a tax
// exemption certificate.
type ExemptionReason string

const (
	ReasonFederalGovernment    ExemptionReason = "FederalGovernment"
	ReasonStateLocalGovernment ExemptionReason = "StateOrLocalGovernment"
	ReasonTribalGovernment     ExemptionReason = "TribalGovernment"
	ReasonForeignDiplomat      ExemptionReason = "ForeignDiplomat"
	ReasonCharitableOrg        ExemptionReason = "CharitableOrganization"
	ReasonEducationalOrg       ExemptionReason = "EducationalOrganization"
	ReasonResale               ExemptionReason = "Resale"
	ReasonAgricultural         ExemptionReason = "AgriculturalProduction"
	ReasonIndustrialProduction ExemptionReason = "IndustrialProductionOrManufacturing"
	ReasonDirectPayPermit      ExemptionReason = "DirectPayPermit"
	ReasonDirectMail           ExemptionReason = "DirectMail"
	ReasonOther                ExemptionReason = "Other"
)

// ExemptionCertificate asserts a customer's tax-exempt status for a set of
// jurisdictions. Certificates are immutable once created at the provider;
// deletion is a provider-side operation mirrored locally by removing the
// reference from the order.
type ExemptionCertificate struct {
	// CertificateID is the provider-assigned identifier.
	CertificateID string `json:"certificate_id"`
	// CustomerID is the merchant's customer identifier that owns the certificate.
	CustomerID string `json:"customer_id"`
	// ExemptStates lists the two-letter state abbreviations the exemption covers.
	ExemptStates []string `json:"exempt_states"`
	// BusinessType is the purchaser's business classification.
	BusinessType string `json:"business_type"`
	// BusinessTypeOther describes the business when BusinessType is "Other".
	BusinessTypeOther string `json:"business_type_other,omitempty"`
	// Reason is the exemption ground.
	Reason ExemptionReason `json:"reason"`
	// ReasonDescription elaborates on the reason when required.
	ReasonDescription string `json:"reason_description,omitempty"`
	// PurchaserFirstName is the purchaser's first name.
	PurchaserFirstName string `json:"purchaser_first_name"`
	// PurchaserLastName is the purchaser's last name.
	PurchaserLastName string `json:"purchaser_last_name"`
	// PurchaserAddress is the purchaser's address.
	PurchaserAddress Address `json:"purchaser_address"`
	// CreatedDate is when the certificate was created.
	CreatedDate time.Time `json:"created_date,omitempty"`
}

// Location is a business location associated with the merchant's provider
// account, used as a per-item shipping origin.
type Location struct {
	// LocationID identifies the location within the provider account.
	LocationID string `json:"location_id"`
	// Address is the location's postal address.
	Address Address `json:"address"`
}

// OfflineTransaction is a completed order recorded outside the provider,
// submitted after the fact through the batch import endpoint.
type OfflineTransaction struct {
	// OrderID is the host platform order identifier.
	OrderID string `json:"order_id"`
	// CartID is the cart identifier used for the original lookup.
	CartID string `json:"cart_id"`
	// CustomerID is the purchasing customer.
	CustomerID string `json:"customer_id"`
	// Origin is the shipping origin address.
	Origin Address `json:"origin"`
	// Destination is the shipping destination address.
	Destination Address `json:"destination"`
	// Items are the order lines with their charged amounts.
	Items []LineItem `json:"items"`
	// CompletedAt is when the order was completed.
	CompletedAt time.Time `json:"completed_at"`
}

// MaxOfflineBatchSize is the provider's hard cap on transactions per batch
// import call. Larger sets must be chunked by the caller.
const MaxOfflineBatchSize = 25
