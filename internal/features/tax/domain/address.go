package domain

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"
)

// zip5Pattern matches a well-formed 5-digit US ZIP code.
var zip5Pattern = regexp.MustCompile(`^\d{5}$`)

// Address represents a postal address used as a tax lookup origin or destination.
type Address struct {
	// Line1 is the primary street address line.
	Line1 string `json:"line1"`
	// Line2 is the secondary street address line (apartment, suite, etc.).
	Line2 string `json:"line2,omitempty"`
	// City is the city name.
	City string `json:"city"`
	// State is the two-letter state abbreviation.
	State string `json:"state"`
	// Zip5 is the 5-digit part of the ZIP code.
	Zip5 string `json:"zip5"`
	// Zip4 is the optional 4-digit ZIP extension.
	Zip4 string `json:"zip4,omitempty"`
	// Country is the country name or ISO code. The tax provider only handles
	// US addresses, so this field is stripped before verification and merged
	// back into the verified result.
	Country string `json:"country"`
}

// ParseZip splits a raw postal code into its 5-digit and 4-digit parts.
// Postcodes that do not fit the US format are kept verbatim in the zip5 slot
// so international addresses round-trip unchanged.
func ParseZip(raw string) (zip5, zip4 string) {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(raw)

	switch len(cleaned) {
	case 0:
		return "", ""
	case 5:
		return cleaned, ""
	case 4:
		return "", cleaned
	case 9:
		return cleaned[:5], cleaned[5:]
	default:
		return raw, ""
	}
}

// IsUS reports whether the address is a United States address.
func (a Address) IsUS() bool {
	country := strings.ToLower(strings.TrimSpace(a.Country))
	return country == "us" || country == "usa" || country == "united states"
}

// IsValidDestination reports whether the address carries the fields required
// for a tax lookup: country, city, state and a well-formed 5-digit ZIP, and
// the destination country must be the US.
func (a Address) IsValidDestination() bool {
	if a.City == "" || a.State == "" || a.Country == "" {
		return false
	}
	if !a.IsUS() {
		return false
	}
	return zip5Pattern.MatchString(a.Zip5)
}

// CombinedZip returns the ZIP in "12345-6789" form, or just the 5-digit part
// when no extension is present.
func (a Address) CombinedZip() string {
	if a.Zip4 == "" {
		return a.Zip5
	}
	return a.Zip5 + "-" + a.Zip4
}

// Hash returns a stable content hash of the address, used as the cache key
// for validated addresses. Field values are lowercased first so formatting
// differences do not defeat the cache.
func (a Address) Hash() string {
	normalized := Address{
		Line1:   strings.ToLower(strings.TrimSpace(a.Line1)),
		Line2:   strings.ToLower(strings.TrimSpace(a.Line2)),
		City:    strings.ToLower(strings.TrimSpace(a.City)),
		State:   strings.ToLower(strings.TrimSpace(a.State)),
		Zip5:    strings.TrimSpace(a.Zip5),
		Zip4:    strings.TrimSpace(a.Zip4),
		Country: strings.ToLower(strings.TrimSpace(a.Country)),
	}

	data, _ := json.Marshal(normalized)
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
