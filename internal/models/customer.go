package models

// Customer is read-mostly reference data. The engine seeds the collection
// once and never mutates it.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}

// Product is a static catalog entry used only to pre-fill a line item's
// unit price when its description matches the product name.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
}
