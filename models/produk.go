package models

// Produk is a sellable item with a code, a name and an integer price.
type Produk struct {
	// ID is the store-generated identifier of the product.
	ID int64 `json:"id"`

	// KodeProduk is the product code.
	KodeProduk string `json:"kode_produk"`

	// NamaProduk is the product name.
	NamaProduk string `json:"nama_produk"`

	// Harga is the non-negative price.
	Harga int64 `json:"harga"`
}

// TableName returns the name of the database table
// associated with the Produk model.
func (p Produk) TableName() string {
	return "produk"
}

// CreateProdukRequest is the body of POST /produk.
// Harga accepts either a JSON number or a numeric string.
type CreateProdukRequest struct {
	KodeProduk string `json:"kode_produk"`
	NamaProduk string `json:"nama_produk"`
	Harga      *Harga `json:"harga"`
}

// UpdateProdukRequest is the body of PUT /produk/{id}/update.
// Only non-nil fields will be updated (partial update support).
// A JSON null is treated the same as an absent field.
type UpdateProdukRequest struct {
	// KodeProduk is the new product code.
	// If nil, the field will not be updated.
	KodeProduk *string `json:"kode_produk,omitempty"`

	// NamaProduk is the new product name.
	// If nil, the field will not be updated.
	NamaProduk *string `json:"nama_produk,omitempty"`

	// Harga is the new price as a number or a numeric string.
	// If nil, the field will not be updated.
	Harga *Harga `json:"harga,omitempty"`
}

// IsEmpty reports whether the request carries no field to update.
func (r UpdateProdukRequest) IsEmpty() bool {
	return r.KodeProduk == nil && r.NamaProduk == nil && r.Harga == nil
}

// ProdukUpdate is a coerced partial update handed to the store.
// Only non-nil fields are written.
type ProdukUpdate struct {
	KodeProduk *string
	NamaProduk *string
	Harga      *int64
}

// IsEmpty reports whether the update carries no column to write.
func (u ProdukUpdate) IsEmpty() bool {
	return u.KodeProduk == nil && u.NamaProduk == nil && u.Harga == nil
}
