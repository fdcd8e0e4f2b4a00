package admin

import (
	"context"
	"io"
	"net/url"

	"github.com/dropDatabas3/bicihub/internal/api"
	"github.com/dropDatabas3/bicihub/internal/cache"
	"github.com/dropDatabas3/bicihub/internal/domain"
	"github.com/dropDatabas3/bicihub/internal/state"
)

// ─── Company (entidad única, no CRUD de lista) ───

// CompanyService opera la company info del tenant.
type CompanyService struct {
	client  *api.Client
	company *state.Value[domain.CompanyInfo]
}

func NewCompanyService(client *api.Client, company *state.Value[domain.CompanyInfo]) *CompanyService {
	return &CompanyService{client: client, company: company}
}

// Get retorna la company info, fetcheando on-demand.
func (s *CompanyService) Get(ctx context.Context) (*domain.CompanyInfo, error) {
	item, st := s.company.Get()
	if st.Synced {
		return item, nil
	}
	if err := s.company.Fetch(ctx, st.Epoch); err != nil {
		return nil, err
	}
	item, _ = s.company.Get()
	return item, nil
}

// Update reemplaza la company info.
func (s *CompanyService) Update(ctx context.Context, info domain.CompanyInfo) (*domain.CompanyInfo, error) {
	var updated domain.CompanyInfo
	if _, err := s.client.Put(ctx, "/company", api.JSON(info), &updated); err != nil {
		s.company.SetError(err)
		return nil, err
	}
	s.company.Set(&updated)
	return &updated, nil
}

// ─── Gallery (CRUD + upload multipart) ───

// GalleryService maneja la galería, incluida la subida de imágenes.
type GalleryService struct {
	*Resource[domain.GalleryImage]
}

func NewGalleryService(client *api.Client, slice *state.Slice[domain.GalleryImage]) *GalleryService {
	return &GalleryService{
		Resource: NewResource("gallery", "/gallery", client, slice, nil),
	}
}

// Upload sube una imagen nueva con su caption. El body es multipart: el
// content type lo fija el transporte, nunca el header JSON explícito.
func (s *GalleryService) Upload(ctx context.Context, caption map[string]string, filename string, content io.Reader) (string, error) {
	form := api.NewForm().AddFile("image", filename, content)
	for locale, text := range caption {
		form.Set("caption["+locale+"]", text)
	}
	res, err := s.client.Post(ctx, "/gallery", form, nil)
	if err != nil {
		s.slice.SetError(err)
		return "", err
	}
	s.applied(ctx, res.Message)
	return res.Message, nil
}

// ─── Orders ───

// OrderService lista órdenes y transiciona su estado.
type OrderService struct {
	*Resource[domain.Order]
}

func NewOrderService(client *api.Client, slice *state.Slice[domain.Order]) *OrderService {
	return &OrderService{
		Resource: NewResource("orders", "/order", client, slice, nil),
	}
}

// UpdateStatus cambia el estado de una orden.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (string, error) {
	body := map[string]any{"status": status}
	res, err := s.client.Patch(ctx, "/order/"+url.PathEscape(id), api.JSON(body), nil)
	if err != nil {
		s.slice.SetError(err)
		return "", err
	}
	s.applied(ctx, res.Message)
	return res.Message, nil
}

// ─── Comments ───

// CommentService lista, aprueba y elimina comentarios.
type CommentService struct {
	*Resource[domain.Comment]
}

func NewCommentService(client *api.Client, slice *state.Slice[domain.Comment]) *CommentService {
	return &CommentService{
		Resource: NewResource("comments", "/comment", client, slice, nil),
	}
}

// Approve marca un comentario como aprobado.
func (s *CommentService) Approve(ctx context.Context, id string) (string, error) {
	res, err := s.client.Patch(ctx, "/comment/"+url.PathEscape(id), api.JSON(map[string]any{"approved": true}), nil)
	if err != nil {
		s.slice.SetError(err)
		return "", err
	}
	s.applied(ctx, res.Message)
	return res.Message, nil
}

// ─── Stats ───

// StatsService expone el estado operativo del gateway para el backoffice.
type StatsService struct {
	cache  cache.Client
	stores *state.Stores
}

func NewStatsService(c cache.Client, stores *state.Stores) *StatsService {
	return &StatsService{cache: c, stores: stores}
}

// Stats es el snapshot operativo.
type Stats struct {
	Cache  cache.Stats            `json:"cache"`
	Slices map[string]SliceStatus `json:"slices"`
}

// SliceStatus resume los flags de un slice.
type SliceStatus struct {
	Synced  bool   `json:"synced"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Epoch   uint64 `json:"epoch"`
}

// Snapshot arma el estado actual.
func (s *StatsService) Snapshot(ctx context.Context) Stats {
	out := Stats{Slices: make(map[string]SliceStatus)}
	if cs, err := s.cache.Stats(ctx); err == nil {
		out.Cache = cs
	}
	add := func(name string, st state.Status) {
		ss := SliceStatus{Synced: st.Synced, Loading: st.Loading, Epoch: st.Epoch}
		if st.Err != nil {
			ss.Error = st.Err.Message
		}
		out.Slices[name] = ss
	}
	add("settings", s.stores.Settings.Status())
	add("modules", s.stores.Modules.Status())
	add("bikes", s.stores.Bikes.Status())
	add("categories", s.stores.Categories.Status())
	add("cart", s.stores.Cart.Status())
	add("orders", s.stores.Orders.Status())
	add("payments", s.stores.Payments.Status())
	add("gallery", s.stores.Gallery.Status())
	add("comments", s.stores.Comments.Status())
	add("tenants", s.stores.Tenants.Status())
	return out
}
