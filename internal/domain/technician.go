package domain

import "time"

// Technician identifies the visiting person. A fresh snapshot is embedded in
// every entry record; there is no separate technician lifecycle.
type Technician struct {
	ID             string    `json:"id"`
	GivenName      string    `json:"given_name"`
	FamilyName     string    `json:"family_name"`
	RUT            string    `json:"rut"`
	Company        string    `json:"company"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Certifications []string  `json:"certifications"`
	Active         bool      `json:"active"`
	RegisteredAt   time.Time `json:"registered_at"`
}

// FullName returns "given family" as used for display and text search.
func (t Technician) FullName() string {
	return t.GivenName + " " + t.FamilyName
}
