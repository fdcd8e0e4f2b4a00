package domain

// Bike es un artículo del catálogo.
type Bike struct {
	ID          string    `json:"id"`
	Name        Localized `json:"name"`
	Description Localized `json:"description"`
	CategoryID  string    `json:"categoryId"`
	Price       int64     `json:"price"` // céntimos
	Currency    string    `json:"currency"`
	Images      []string  `json:"images,omitempty"`
	Stock       int       `json:"stock"`
	Enabled     bool      `json:"enabled"`
	SortOrder   int       `json:"sortOrder"`
}

// Category agrupa bikes en el catálogo.
type Category struct {
	ID        string    `json:"id"`
	Name      Localized `json:"name"`
	Image     string    `json:"image,omitempty"`
	Enabled   bool      `json:"enabled"`
	SortOrder int       `json:"sortOrder"`
}
