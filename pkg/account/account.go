// Package account holds the sender profile that feeds letter signatures.
package account

import "fmt"

// Profile is the single per-user account record. Every field is
// optional for in-memory edits; Validate gates persistence only.
type Profile struct {
	FullName     string `json:"fullName"`
	Title        string `json:"title"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`

	// Signature, when set, replaces the synthesized signature block
	// verbatim.
	Signature string `json:"signature"`
}

// Validate is the save gate: a profile may only be persisted with at
// least a name and an email.
func (p Profile) Validate() error {
	if p.FullName == "" || p.Email == "" {
		return fmt.Errorf("full name and email are required")
	}
	return nil
}
