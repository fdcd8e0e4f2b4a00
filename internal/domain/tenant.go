package domain

// Tenant es un scope aislado de cliente/organización. Exactamente un tenant
// está "seleccionado" a la vez en el proceso; todo dato tenant-scoped se
// filtra server-side por el tenant seleccionado.
type Tenant struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}
