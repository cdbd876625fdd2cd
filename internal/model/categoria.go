package model

// Categoria classifies products. Master data, independent lifecycle.
type Categoria struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}
