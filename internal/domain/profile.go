package domain

// Role es el rol del perfil autenticado.
type Role string

const (
	RoleGuest      Role = "guest"
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// rank define el orden de privilegio entre roles.
var rank = map[Role]int{
	RoleGuest:      0,
	RoleUser:       1,
	RoleAdmin:      2,
	RoleSuperadmin: 3,
}

// Satisfies verifica si el rol cumple el requisito required.
// Un rol desconocido nunca satisface nada.
func (r Role) Satisfies(required Role) bool {
	rr, ok := rank[r]
	if !ok {
		return false
	}
	qr, ok := rank[required]
	if !ok {
		return false
	}
	return rr >= qr
}

// Valid verifica que el rol sea uno de los enumerados.
func (r Role) Valid() bool {
	_, ok := rank[r]
	return ok
}

// NotificationPrefs son las preferencias de notificación del perfil.
type NotificationPrefs struct {
	Email     bool `json:"email"`
	Marketing bool `json:"marketing"`
	OrderNews bool `json:"orderNews"`
}

// SocialLinks son los enlaces sociales del perfil.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	X         string `json:"x,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Profile es la identidad del usuario autenticado.
// Se crea en login/verificación OTP, se muta vía account-update y se
// limpia en logout o al expirar la sesión (401).
type Profile struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Role          Role              `json:"role"`
	Image         string            `json:"image,omitempty"`
	EmailVerified bool              `json:"emailVerified"`
	Notifications NotificationPrefs `json:"notifications"`
	Social        SocialLinks       `json:"social"`
}
