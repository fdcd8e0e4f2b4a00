package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/bicihub/internal/api"
	"github.com/dropDatabas3/bicihub/internal/i18n"
	"github.com/dropDatabas3/bicihub/internal/state"
)

// upstream simula la plataforma con respuestas por path.
func newTestService(t *testing.T, responses map[string]string) (*Service, *state.Stores) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if body, ok := responses[r.URL.Path]; ok {
			w.Write([]byte(body))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	client, err := api.New(api.Config{
		BaseURL:      srv.URL,
		Locales:      i18n.NewResolver("en", []string{"en"}),
		StoredLocale: func() string { return "" },
		HTTPClient:   srv.Client(),
	})
	require.NoError(t, err)

	stores := state.New(client)
	return NewService(client, stores), stores
}

func TestBikes_FiltersDisabledAndByCategory(t *testing.T) {
	s, _ := newTestService(t, map[string]string{
		"/bike": `{"data":[
			{"id":"b1","categoryId":"mtb","enabled":true},
			{"id":"b2","categoryId":"mtb","enabled":false},
			{"id":"b3","categoryId":"road","enabled":true}
		]}`,
	})

	all, err := s.Bikes(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2, "las deshabilitadas no se listan")

	mtb, err := s.Bikes(context.Background(), "mtb")
	require.NoError(t, err)
	require.Len(t, mtb, 1)
	assert.Equal(t, "b1", mtb[0].ID)
}

func TestBikeByID_FallsBackToDirectGet(t *testing.T) {
	s, _ := newTestService(t, map[string]string{
		"/bike/b9": `{"data":{"id":"b9","enabled":true}}`,
	})

	// slice sin sincronizar: deep-link va directo al upstream
	bike, err := s.BikeByID(context.Background(), "b9")
	require.NoError(t, err)
	require.NotNil(t, bike)
	assert.Equal(t, "b9", bike.ID)
}

func TestBikeByID_DisabledBikeHiddenOnDeepLink(t *testing.T) {
	s, stores := newTestService(t, map[string]string{
		"/bike":    `{"data":[{"id":"b2","enabled":false}]}`,
		"/bike/b2": `{"data":{"id":"b2","enabled":false}}`,
	})

	// slice sincronizado: la bike existe pero está deshabilitada
	require.NoError(t, stores.Bikes.Fetch(context.Background(), 0))
	bike, err := s.BikeByID(context.Background(), "b2")
	require.NoError(t, err)
	assert.Nil(t, bike, "una bike oculta del listado no se sirve por deep-link")
}

func TestBikes_RecoversAfterUpstreamFailure(t *testing.T) {
	// el primer fetch falla con 502; el siguiente request debe reintentar
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"data":[{"id":"b1","enabled":true}]}`))
	}))
	t.Cleanup(srv.Close)

	client, err := api.New(api.Config{
		BaseURL:      srv.URL,
		Locales:      i18n.NewResolver("en", []string{"en"}),
		StoredLocale: func() string { return "" },
		HTTPClient:   srv.Client(),
	})
	require.NoError(t, err)
	s := NewService(client, state.New(client))

	_, err = s.Bikes(context.Background(), "")
	require.Error(t, err, "el primer request refleja el fallo")

	bikes, err := s.Bikes(context.Background(), "")
	require.NoError(t, err, "un fallo transitorio no deja el slice roto")
	require.Len(t, bikes, 1)
	assert.Equal(t, 2, calls, "el segundo request volvió al upstream")
}

func TestComments_OnlyApprovedForBike(t *testing.T) {
	s, _ := newTestService(t, map[string]string{
		"/comment": `{"data":[
			{"id":"c1","bikeId":"b1","approved":true},
			{"id":"c2","bikeId":"b1","approved":false},
			{"id":"c3","bikeId":"b2","approved":true}
		]}`,
	})

	comments, err := s.Comments(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "c1", comments[0].ID)
}

func TestHome_PartialFailureStillServes(t *testing.T) {
	// company y gallery fallan (404), modules responde
	s, stores := newTestService(t, map[string]string{
		"/module": `{"data":[
			{"id":"m1","key":"gallery","enabled":true},
			{"id":"m2","key":"comments","enabled":false}
		]}`,
	})

	h := s.Home(context.Background())

	require.Len(t, h.Modules, 1, "solo módulos habilitados")
	assert.Nil(t, h.Company)
	assert.Empty(t, h.Gallery)

	// el fallo quedó en el estado del slice, no se perdió
	_, st := stores.Gallery.Snapshot()
	assert.NotNil(t, st.Err)
}

func TestSettings_EmptyListWhenUpstreamHasNone(t *testing.T) {
	s, _ := newTestService(t, map[string]string{
		"/setting": `{"data":[]}`,
	})

	settings, err := s.Settings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, settings)
}
