package entity

import "time"

// InvoiceTemplate is the owner's configured bill layout: rendered HTML plus
// the field mapping produced by the vision analysis. Mapping is stored as raw
// JSON; older rows may hold a double-encoded JSON string.
type InvoiceTemplate struct {
	ID        string
	OwnerID   string
	HTML      string
	Mapping   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
