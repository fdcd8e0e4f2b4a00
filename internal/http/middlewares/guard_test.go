package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/dropDatabas3/bicihub/internal/api"
	"github.com/dropDatabas3/bicihub/internal/domain"
	"github.com/dropDatabas3/bicihub/internal/state"
)

func newGuard(fetch func(ctx context.Context) (*domain.Profile, error)) (*Guard, *state.Value[domain.Profile]) {
	profile := state.NewValue("profile", fetch)
	return &Guard{
		Profile:   profile,
		LoginPath: "/login",
		HomePath:  "/",
	}, profile
}

func serveGuarded(g *Guard, required domain.Role, target string) *httptest.ResponseRecorder {
	h := g.Require(required)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGuard_NoProfileRedirectsToLoginWithNext(t *testing.T) {
	g, _ := newGuard(func(ctx context.Context) (*domain.Profile, error) {
		return nil, nil // probe resuelto: no autenticado
	})

	rec := serveGuarded(g, domain.RoleUser, "/account?tab=orders")

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	loc := rec.Header().Get("Location")
	u, err := url.Parse(loc)
	if err != nil || u.Path != "/login" {
		t.Fatalf("Location = %q", loc)
	}
	if next := u.Query().Get("next"); next != "/account?tab=orders" {
		t.Errorf("next = %q, el destino original debe preservarse", next)
	}
}

func TestGuard_FetchErrorBlocksWithoutRedirect(t *testing.T) {
	g, _ := newGuard(func(ctx context.Context) (*domain.Profile, error) {
		return nil, &api.Error{Kind: api.KindUpstream, Status: 503, Message: "upstream caído"}
	})

	rec := serveGuarded(g, domain.RoleUser, "/account")

	if rec.Code == http.StatusFound {
		t.Fatal("un error de probe no debe redirigir a login")
	}
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestGuard_InsufficientRoleRedirectsHome(t *testing.T) {
	g, _ := newGuard(func(ctx context.Context) (*domain.Profile, error) {
		return &domain.Profile{ID: "p1", Role: domain.RoleUser}, nil
	})

	rec := serveGuarded(g, domain.RoleAdmin, "/admin/bikes")

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}

func TestGuard_SatisfiedRolePassesWithProfileInContext(t *testing.T) {
	g, _ := newGuard(func(ctx context.Context) (*domain.Profile, error) {
		return &domain.Profile{ID: "p1", Role: domain.RoleAdmin}, nil
	})

	var got *domain.Profile
	h := g.Require(domain.RoleUser)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetProfile(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/account", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got == nil || got.ID != "p1" {
		t.Errorf("profile en contexto = %+v", got)
	}
}

func TestGuard_InFlightFetchAnswersLoading(t *testing.T) {
	release := make(chan struct{})
	g, profile := newGuard(func(ctx context.Context) (*domain.Profile, error) {
		<-release
		return &domain.Profile{ID: "p1", Role: domain.RoleUser}, nil
	})

	first := make(chan struct{})
	go func() {
		defer close(first)
		serveGuarded(g, domain.RoleUser, "/account")
	}()

	// Esperar a que el probe del primer request esté en vuelo
	for {
		if _, st := profile.Get(); st.Loading {
			break
		}
	}

	rec := serveGuarded(g, domain.RoleUser, "/cart")
	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want 202 mientras el probe está en vuelo", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("falta Retry-After en la respuesta de loading")
	}

	close(release)
	<-first
}

func TestGuard_ProbeRunsOnceThenReusesResult(t *testing.T) {
	calls := 0
	g, _ := newGuard(func(ctx context.Context) (*domain.Profile, error) {
		calls++
		return &domain.Profile{ID: "p1", Role: domain.RoleUser}, nil
	})

	serveGuarded(g, domain.RoleUser, "/account")
	serveGuarded(g, domain.RoleUser, "/cart")
	serveGuarded(g, domain.RoleUser, "/account")

	if calls != 1 {
		t.Errorf("probe ejecutado %d veces, want 1", calls)
	}
}
