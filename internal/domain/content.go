package domain

import "time"

// Setting es una entrada de configuración del tenant (temas, textos, etc.).
type Setting struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Value     Localized `json:"value"`
	Enabled   bool      `json:"enabled"`
	SortOrder int       `json:"sortOrder"`
}

// Module es una funcionalidad activable por tenant (galería, comentarios…).
type Module struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Name      Localized `json:"name"`
	Enabled   bool      `json:"enabled"`
	SortOrder int       `json:"sortOrder"`
}

// CompanyInfo son los datos de la empresa del tenant.
type CompanyInfo struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	About   Localized `json:"about"`
	Address string    `json:"address,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Email   string    `json:"email,omitempty"`
}

// GalleryImage es una imagen de la galería del tenant.
type GalleryImage struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Caption   Localized `json:"caption"`
	Enabled   bool      `json:"enabled"`
	SortOrder int       `json:"sortOrder"`
}

// Comment es un comentario de usuario sobre una bike.
type Comment struct {
	ID        string    `json:"id"`
	BikeID    string    `json:"bikeId"`
	ProfileID string    `json:"profileId"`
	Body      string    `json:"body"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}
