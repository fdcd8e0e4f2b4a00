package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dropDatabas3/bicihub/internal/i18n"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, storedLocale string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{
		BaseURL:      srv.URL,
		APIKey:       "test-key",
		Locales:      i18n.NewResolver("de", []string{"de", "en", "tr"}),
		StoredLocale: func() string { return storedLocale },
		HTTPClient:   srv.Client(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, srv
}

func TestCall_InjectsAPIKeyAndDefaultLocale(t *testing.T) {
	var gotKey, gotLang string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotLang = r.Header.Get("Accept-Language")
		w.Write([]byte(`{"data":[]}`))
	}, "")

	if _, err := c.Get(context.Background(), "/bike", nil, nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("x-api-key = %q, want test-key", gotKey)
	}
	// Sin preferencia ni header entrante: el default fijo
	if gotLang != "de" {
		t.Errorf("Accept-Language = %q, want de", gotLang)
	}
}

func TestCall_StoredLocaleWins(t *testing.T) {
	var gotLang string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.Header.Get("Accept-Language")
		w.Write([]byte(`{}`))
	}, "tr")

	ctx := i18n.WithRequestLanguage(context.Background(), "fr-FR,fr;q=0.9")
	if _, err := c.Get(ctx, "/bike", nil, nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotLang != "tr" {
		t.Errorf("Accept-Language = %q, want tr (preferencia persistida gana)", gotLang)
	}
}

func TestCall_BrowserLanguagePassesThrough(t *testing.T) {
	var gotLang string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.Header.Get("Accept-Language")
		w.Write([]byte(`{}`))
	}, "")

	ctx := i18n.WithRequestLanguage(context.Background(), "fr-FR,fr;q=0.9,en;q=0.8")
	if _, err := c.Get(ctx, "/bike", nil, nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	// Sin preferencia persistida se reenvía el idioma del navegador, aunque
	// la UI no lo soporte: el upstream decide su propio fallback.
	if gotLang != "fr" {
		t.Errorf("Accept-Language = %q, want fr", gotLang)
	}
}

func TestCall_QueryBodyTravelsAsParams(t *testing.T) {
	var gotQuery url.Values
	var gotBody []byte
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}, "")

	vals := url.Values{}
	vals.Set("category", "mtb")
	vals.Set("enabled", "true")
	if _, err := c.Get(context.Background(), "/bike", vals, nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotQuery.Get("category") != "mtb" || gotQuery.Get("enabled") != "true" {
		t.Errorf("query = %v", gotQuery)
	}
	if len(gotBody) != 0 {
		t.Errorf("body no vacío en GET con query: %q", gotBody)
	}
}

func TestCall_MultipartOmitsJSONContentType(t *testing.T) {
	var gotCT string
	var gotFile string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			if f, h, err := r.FormFile("image"); err == nil {
				defer f.Close()
				gotFile = h.Filename
			}
		}
		w.Write([]byte(`{}`))
	}, "")

	form := NewForm().
		Set("caption[de]", "Rad").
		AddFile("image", "bike.png", strings.NewReader("png-bytes"))
	if _, err := c.Post(context.Background(), "/gallery", form, nil); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if !strings.HasPrefix(gotCT, "multipart/form-data; boundary=") {
		t.Errorf("Content-Type = %q, want multipart con boundary", gotCT)
	}
	if gotFile != "bike.png" {
		t.Errorf("filename = %q", gotFile)
	}
}

func TestCall_JSONBodySetsContentType(t *testing.T) {
	var gotCT string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}, "")

	if _, err := c.Post(context.Background(), "/bike", JSON(map[string]string{"a": "b"}), nil); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if !strings.HasPrefix(gotCT, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", gotCT)
	}
}

func TestCall_UnwrapsSuccessEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":"b1"},"message":"ok"}`))
	}, "")

	var out struct {
		ID string `json:"id"`
	}
	res, err := c.Get(context.Background(), "/bike/b1", nil, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.ID != "b1" {
		t.Errorf("out.ID = %q", out.ID)
	}
	if res.Message != "ok" {
		t.Errorf("res.Message = %q", res.Message)
	}
}

func TestCall_RawBodyWithoutEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"s1","name":"theme"}]`))
	}, "")

	var out []struct {
		ID string `json:"id"`
	}
	if _, err := c.Get(context.Background(), "/setting", nil, &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(out) != 1 || out[0].ID != "s1" {
		t.Errorf("out = %+v", out)
	}
}

// Escenario completo: el upstream responde 404 con body vacío a GET /setting.
// El caller recibe el envelope normalizado con el fallback por locale, y el
// slice de settings queda presentable como lista vacía.
func TestCall_NotFoundEmptyBodyFallsBackToLocaleMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, "")

	var out []struct{}
	_, err := c.Get(context.Background(), "/setting", nil, &out)
	if err == nil {
		t.Fatal("want error")
	}
	apiErr, ok := AsError(err)
	if !ok {
		t.Fatalf("error no normalizado: %T", err)
	}
	if apiErr.Status != 404 {
		t.Errorf("Status = %d", apiErr.Status)
	}
	if apiErr.StatusLabel() != "404" {
		t.Errorf("StatusLabel = %q", apiErr.StatusLabel())
	}
	// default "de": mensaje fijo del catálogo
	if apiErr.Message != i18n.Message("de", "request_failed") {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if len(out) != 0 {
		t.Errorf("out debería quedar vacío, got %v", out)
	}
}

func TestCall_TransportErrorHasUnknownStatus(t *testing.T) {
	c, err := New(Config{
		BaseURL:      "http://127.0.0.1:1", // nada escucha acá
		Locales:      i18n.NewResolver("en", []string{"en"}),
		StoredLocale: func() string { return "" },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, callErr := c.Get(context.Background(), "/bike", nil, nil)
	apiErr, ok := AsError(callErr)
	if !ok {
		t.Fatalf("error no normalizado: %T", callErr)
	}
	if apiErr.Kind != KindTransport {
		t.Errorf("Kind = %v, want KindTransport", apiErr.Kind)
	}
	if apiErr.StatusLabel() != "Unknown" {
		t.Errorf("StatusLabel = %q, want Unknown", apiErr.StatusLabel())
	}
	if apiErr.Message == "" {
		t.Error("Message vacío: debería llevar el texto del error de transporte")
	}
}

func TestCurrentProfile_UnauthenticatedIsNotAnError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/me" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{}`))
	}, "")

	p, err := c.CurrentProfile(context.Background())
	if err != nil {
		t.Fatalf("401 en el probe no debe ser error, got %v", err)
	}
	if p != nil {
		t.Errorf("profile = %+v, want nil", p)
	}
}

func TestCurrentProfile_ServerErrorIsAnError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"db down"}`))
	}, "")

	p, err := c.CurrentProfile(context.Background())
	if err == nil {
		t.Fatal("want error")
	}
	if p != nil {
		t.Errorf("profile = %+v", p)
	}
	if IsUnauthenticated(err) {
		t.Error("500 no debe clasificar como no-autenticado")
	}
}
