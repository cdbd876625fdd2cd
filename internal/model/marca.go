package model

// CategoriaOtros is the catch-all category the backend assigns to brands
// created without associations. Brands linked to it bypass category-scoped
// selection filtering (see store.MarcasParaCategoria).
const CategoriaOtros = "Otros"

// Marca is a product brand with a many-to-many link to categories.
// A brand with no associated categories is valid.
type Marca struct {
	ID         int64       `json:"id"`
	Nombre     string      `json:"nombre"`
	Categorias []Categoria `json:"categorias"`
}

// TieneCategoria reports whether the brand is associated with the given category.
func (m *Marca) TieneCategoria(categoriaID int64) bool {
	for _, c := range m.Categorias {
		if c.ID == categoriaID {
			return true
		}
	}
	return false
}

// EsComodin reports whether the brand carries the "Otros" association,
// which makes it visible in every category-scoped selection list.
func (m *Marca) EsComodin() bool {
	for _, c := range m.Categorias {
		if c.Nombre == CategoriaOtros {
			return true
		}
	}
	return false
}
