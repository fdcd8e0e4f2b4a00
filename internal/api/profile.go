package api

import (
	"context"
	"net/http"

	"github.com/dropDatabas3/bicihub/internal/domain"
)

// profilePath es el probe de "usuario actual" del upstream.
const profilePath = "/auth/me"

// CurrentProfile consulta el perfil autenticado. Un 401 aquí significa
// "no hay sesión", no un error: resuelve a (nil, nil). La distinción se hace
// por el kind del error normalizado, no comparando la URL.
func (c *Client) CurrentProfile(ctx context.Context) (*domain.Profile, error) {
	var p domain.Profile
	if _, err := c.Call(ctx, http.MethodGet, profilePath, nil, &p); err != nil {
		if IsUnauthenticated(err) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
