package admin

import (
	"net/http"
	"strings"

	"github.com/dropDatabas3/bicihub/internal/domain"
	httpx "github.com/dropDatabas3/bicihub/internal/http"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	svc "github.com/dropDatabas3/bicihub/internal/http/services/admin"
	"github.com/dropDatabas3/bicihub/internal/observability/logger"
)

const maxGalleryUpload = 16 << 20 // 16MB

// GalleryController extiende el CRUD de galería con la subida multipart.
type GalleryController struct {
	*ResourceController[domain.GalleryImage]
	service *svc.GalleryService
}

func NewGalleryController(service *svc.GalleryService) *GalleryController {
	return &GalleryController{
		ResourceController: NewResourceController(service.Resource),
		service:            service,
	}
}

// Upload maneja POST /admin/gallery/upload. Form multipart: campo "image"
// más captions por locale (caption[de], caption[en], …).
func (c *GalleryController) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, maxGalleryUpload)
	if err := r.ParseMultipartForm(maxGalleryUpload); err != nil {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("multipart inválido"))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("campo image es obligatorio"))
		return
	}
	defer file.Close()

	caption := make(map[string]string)
	for key, vals := range r.MultipartForm.Value {
		if locale, ok := captionLocale(key); ok && len(vals) > 0 {
			caption[locale] = vals[0]
		}
	}

	msg, err := c.service.Upload(ctx, caption, header.Filename, file)
	if err != nil {
		logger.From(ctx).Debug("gallery upload failed", logger.Err(err))
		httperrors.WriteUpstreamError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"message": msg})
}

func captionLocale(key string) (string, bool) {
	if !strings.HasPrefix(key, "caption[") || !strings.HasSuffix(key, "]") {
		return "", false
	}
	return key[len("caption[") : len(key)-1], true
}
