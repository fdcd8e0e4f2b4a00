package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/dropDatabas3/bicihub/internal/api"
	"github.com/dropDatabas3/bicihub/internal/domain"
	httperrors "github.com/dropDatabas3/bicihub/internal/http/errors"
	"github.com/dropDatabas3/bicihub/internal/i18n"
	"github.com/dropDatabas3/bicihub/internal/state"
)

func newSettingsResource(t *testing.T, handler http.HandlerFunc) (*Resource[domain.Setting], *atomic.Int32) {
	t.Helper()
	var posts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts.Add(1)
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := api.New(api.Config{
		BaseURL:      srv.URL,
		Locales:      i18n.NewResolver("en", []string{"en"}),
		StoredLocale: func() string { return "" },
		HTTPClient:   srv.Client(),
	})
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}

	slice := state.NewSlice("settings", func(ctx context.Context) ([]domain.Setting, error) {
		var out []domain.Setting
		if _, err := client.Get(ctx, "/setting", nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	res := NewResource("settings", "/setting", client, slice,
		func(s domain.Setting) string { return s.Name })
	return res, &posts
}

func TestResource_ListFetchesOnDemand(t *testing.T) {
	res, _ := newSettingsResource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"s1","name":"theme"}]}`))
	})

	items, err := res.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0].Name != "theme" {
		t.Errorf("items = %+v", items)
	}
}

func TestResource_CreateDuplicateNameFailsClientSide(t *testing.T) {
	res, posts := newSettingsResource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"s1","name":"Theme"}]}`))
	})

	// poblar el slice primero
	if _, err := res.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}

	// mismo nombre, distinta capitalización
	_, err := res.Create(context.Background(), json.RawMessage(`{"name":"theme"}`))
	if err != httperrors.ErrDuplicateName {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
	if posts.Load() != 0 {
		t.Error("el pre-check de duplicados no debe llamar al upstream")
	}

	_, st := res.slice.Snapshot()
	if st.Err == nil {
		t.Error("el error debe quedar registrado en el slice")
	}
}

func TestResource_CreateSuccessRefetches(t *testing.T) {
	var gets atomic.Int32
	res, posts := newSettingsResource(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			gets.Add(1)
			w.Write([]byte(`{"data":[{"id":"s1","name":"theme"}]}`))
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"message":"setting creado"}`))
		}
	})

	msg, err := res.Create(context.Background(), json.RawMessage(`{"name":"banner"}`))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if msg != "setting creado" {
		t.Errorf("msg = %q", msg)
	}
	if posts.Load() != 1 {
		t.Errorf("posts = %d", posts.Load())
	}
	if gets.Load() == 0 {
		t.Error("tras crear debe refetchearse el slice")
	}
	_, st := res.slice.Snapshot()
	if st.Success != "setting creado" {
		t.Errorf("Success = %q", st.Success)
	}
}

func TestResource_UpdateErrorRecordedInSlice(t *testing.T) {
	res, _ := newSettingsResource(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"errors":{"name":{"message":"nombre inválido"}}}`))
	})

	_, err := res.Update(context.Background(), "s1", json.RawMessage(`{"name":""}`))
	if err == nil {
		t.Fatal("want error")
	}
	apiErr, ok := api.AsError(err)
	if !ok || apiErr.Message != "nombre inválido" {
		t.Errorf("err = %v", err)
	}
	_, st := res.slice.Snapshot()
	if st.Err == nil || st.Err.Kind != api.KindValidation {
		t.Errorf("slice.Err = %+v", st.Err)
	}
}
