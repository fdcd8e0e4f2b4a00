package auth

import (
	"net/http"

	httpx "github.com/dropDatabas3/bicihub/internal/http"
	"github.com/dropDatabas3/bicihub/internal/http/middlewares"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/auth"
	"github.com/dropDatabas3/bicihub/internal/session"
)

// LogoutController revoca la sesión y limpia la cookie.
type LogoutController struct {
	service  *svc.Service
	sessions *session.Store
}

func NewLogoutController(service *svc.Service, sessions *session.Store) *LogoutController {
	return &LogoutController{service: service, sessions: sessions}
}

// Logout maneja POST /logout. Siempre responde 200: revocar una sesión que
// ya no existe no es un error para el caller.
func (c *LogoutController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rec := middlewares.GetSession(ctx)
	if rec == nil {
		rec, _ = c.sessions.FromRequest(r)
	}
	c.service.Logout(ctx, rec)

	http.SetCookie(w, c.sessions.ClearCookie())
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "sesión cerrada"})
}
