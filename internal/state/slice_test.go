package state

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dropDatabas3/bicihub/internal/api"
)

func TestSlice_FetchPopulates(t *testing.T) {
	s := NewSlice("bikes", func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})

	if err := s.Fetch(context.Background(), 0); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	items, st := s.Snapshot()
	if len(items) != 2 {
		t.Errorf("items = %v", items)
	}
	if !st.Synced || st.Loading || st.Err != nil {
		t.Errorf("status = %+v", st)
	}
}

func TestSlice_ClearWipesEverything(t *testing.T) {
	s := NewSlice("bikes", func(ctx context.Context) ([]string, error) {
		return []string{"a"}, nil
	})
	_ = s.Fetch(context.Background(), 0)
	s.SetSuccess("creado")

	s.Clear(1)

	items, st := s.Snapshot()
	if len(items) != 0 {
		t.Errorf("items = %v tras Clear", items)
	}
	if st.Synced || st.Loading || st.Err != nil || st.Success != "" {
		t.Errorf("status = %+v tras Clear", st)
	}
	if st.Epoch != 1 {
		t.Errorf("Epoch = %d", st.Epoch)
	}
}

func TestSlice_ClearWithOldEpochIsNoop(t *testing.T) {
	s := NewSlice("bikes", func(ctx context.Context) ([]string, error) {
		return []string{"a"}, nil
	})
	_ = s.Fetch(context.Background(), 5)

	s.Clear(3) // época vieja

	items, st := s.Snapshot()
	if len(items) != 1 || !st.Synced {
		t.Errorf("un Clear viejo no debe pisar estado: items=%v st=%+v", items, st)
	}
}

func TestSlice_StaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	var mu sync.Mutex

	s := NewSlice("bikes", func(ctx context.Context) ([]string, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-release // el fetch del tenant viejo queda colgado
			return []string{"viejo"}, nil
		}
		return []string{"nuevo"}, nil
	})

	done := make(chan struct{})
	go func() {
		_ = s.Fetch(context.Background(), 1)
		close(done)
	}()

	// El tenant cambia mientras el primer fetch está en vuelo
	for {
		if st := s.Status(); st.Loading {
			break
		}
	}
	s.Clear(2)
	if err := s.Fetch(context.Background(), 2); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	close(release)
	<-done

	items, st := s.Snapshot()
	if len(items) != 1 || items[0] != "nuevo" {
		t.Errorf("la respuesta vieja pisó el estado: %v", items)
	}
	if st.Epoch != 2 {
		t.Errorf("Epoch = %d", st.Epoch)
	}
}

func TestSlice_FetchErrorRecorded(t *testing.T) {
	s := NewSlice("bikes", func(ctx context.Context) ([]string, error) {
		return nil, &api.Error{Kind: api.KindUpstream, Status: 500, Message: "boom"}
	})

	if err := s.Fetch(context.Background(), 0); err == nil {
		t.Fatal("want error")
	}
	_, st := s.Snapshot()
	if st.Err == nil || st.Err.Message != "boom" {
		t.Errorf("Err = %+v", st.Err)
	}
	if st.Synced {
		t.Error("Synced debería seguir en false tras un fetch fallido")
	}
}

func TestSlice_PlainErrorNormalized(t *testing.T) {
	s := NewSlice("bikes", func(ctx context.Context) ([]string, error) {
		return nil, errors.New("conexión caída")
	})
	_ = s.Fetch(context.Background(), 0)

	_, st := s.Snapshot()
	if st.Err == nil || st.Err.Kind != api.KindTransport {
		t.Errorf("Err = %+v, want envelope transport", st.Err)
	}
	if st.Err.StatusLabel() != "Unknown" {
		t.Errorf("StatusLabel = %q", st.Err.StatusLabel())
	}
}

func TestSlice_MutateAppliesLocally(t *testing.T) {
	s := NewSlice("cart", func(ctx context.Context) ([]string, error) {
		return []string{"a"}, nil
	})
	_ = s.Fetch(context.Background(), 0)

	s.Mutate(func(items []string) []string { return append(items, "b") })

	if items := s.Items(); len(items) != 2 || items[1] != "b" {
		t.Errorf("items = %v", items)
	}
}

func TestValue_NilItemIsSyncedNotError(t *testing.T) {
	v := NewValue("profile", func(ctx context.Context) (*string, error) {
		return nil, nil // probe resuelto: no hay sesión
	})

	if err := v.Fetch(context.Background(), 0); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	item, st := v.Get()
	if item != nil {
		t.Errorf("item = %v", item)
	}
	if !st.Synced || st.Err != nil {
		t.Errorf("status = %+v: nil sin error debe quedar synced", st)
	}
}

func TestValue_ClearErrorRecovers(t *testing.T) {
	v := NewValue("profile", func(ctx context.Context) (*string, error) {
		return nil, errors.New("upstream caído")
	})
	_ = v.Fetch(context.Background(), 0)

	if _, st := v.Get(); st.Err == nil {
		t.Fatal("want error registrado")
	}
	v.ClearError()
	if _, st := v.Get(); st.Err != nil {
		t.Errorf("Err = %+v tras ClearError", st.Err)
	}
}
