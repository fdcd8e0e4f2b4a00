package account

import (
	"net/http"

	httpx "github.com/dropDatabas3/bicihub/internal/http"
	dto "github.com/dropDatabas3/bicihub/internal/http/dto/account"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	"github.com/dropDatabas3/bicihub/internal/http/middlewares"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/account"
	"github.com/dropDatabas3/bicihub/internal/observability/logger"
)

const maxImageSize = 8 << 20 // 8MB

// ProfileController maneja el perfil del usuario autenticado.
type ProfileController struct {
	service *svc.Service
}

func NewProfileController(service *svc.Service) *ProfileController {
	return &ProfileController{service: service}
}

// Get maneja GET /account. El guard ya dejó el perfil en el contexto.
func (c *ProfileController) Get(w http.ResponseWriter, r *http.Request) {
	p := middlewares.GetProfile(r.Context())
	if p == nil {
		httperrors.WriteError(w, httperrors.ErrUnauthorized)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// Update maneja PUT /account
func (c *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.UpdateRequest
	if !httpx.ReadJSON(w, r, &req) {
		return
	}

	p, err := c.service.Update(ctx, req)
	if err != nil {
		logger.From(ctx).Debug("profile update failed", logger.Err(err))
		httperrors.WriteUpstreamError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

// UpdateImage maneja PUT /account/image. Body multipart con campo "image";
// el content type del upstream lo arma el form, no se fija JSON.
func (c *ProfileController) UpdateImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("multipart inválido"))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("campo image es obligatorio"))
		return
	}
	defer file.Close()

	p, err := c.service.UpdateImage(ctx, header.Filename, file)
	if err != nil {
		logger.From(ctx).Debug("image update failed", logger.Err(err))
		httperrors.WriteUpstreamError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}
