// internal/domain/address/entity.go
package address

import (
	"regexp"
	"strings"
)

// Address types offered by the address form
const (
	TypeHome  = "Home"
	TypeWork  = "Work"
	TypeOther = "Other"
)

// Address represents a saved delivery address
type Address struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	AddressType  string `json:"addressType"`
	IsDefault    bool   `json:"isDefault"`
}

// ValidationErrors maps field names to inline error messages
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for field, msg := range v {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var (
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

// Validate applies the address form's field-level checks. A non-nil
// result blocks the write; each entry is an inline message for one
// field.
func (a Address) Validate() ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(a.Name) == "" {
		errs["name"] = "Name is required"
	}

	if strings.TrimSpace(a.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !phonePattern.MatchString(a.Phone) {
		errs["phone"] = "Phone number must be 10 digits"
	}

	if strings.TrimSpace(a.AddressLine1) == "" {
		errs["addressLine1"] = "Address is required"
	}

	if strings.TrimSpace(a.City) == "" {
		errs["city"] = "City is required"
	}

	if strings.TrimSpace(a.State) == "" {
		errs["state"] = "State is required"
	}

	if strings.TrimSpace(a.Pincode) == "" {
		errs["pincode"] = "Pincode is required"
	} else if !pincodePattern.MatchString(a.Pincode) {
		errs["pincode"] = "Pincode must be 6 digits"
	}

	switch a.AddressType {
	case TypeHome, TypeWork, TypeOther:
	default:
		errs["addressType"] = "Address type must be Home, Work or Other"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
