// Package session implementa las sesiones del gateway: un session ID opaco
// sellado en una cookie, con el registro (bearer token del upstream +
// perfil asociado) guardado en el backend de cache.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dropDatabas3/bicihub/internal/cache"
	"github.com/dropDatabas3/bicihub/internal/security/cookiebox"
)

// Record es lo que se guarda por sesión.
type Record struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profileId"`
	Token     string    `json:"token"` // bearer token emitido por el upstream
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Config del store de sesiones.
type Config struct {
	CookieName string
	Domain     string
	SameSite   string // "Lax" | "Strict" | "None"
	Secure     bool
	TTL        time.Duration
}

// Store crea, busca y revoca sesiones.
type Store struct {
	cache cache.Client
	cfg   Config
}

// NewStore crea un store sobre el cache dado.
func NewStore(c cache.Client, cfg Config) *Store {
	if cfg.CookieName == "" {
		cfg.CookieName = "bh_sid"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 12 * time.Hour
	}
	return &Store{cache: c, cfg: cfg}
}

func sessionKey(id string) string { return "session:" + id }

// Create registra una sesión nueva. El TTL efectivo es el menor entre el
// configurado y la expiración del token del upstream (si se conoce).
func (s *Store) Create(ctx context.Context, profileID, token string) (*Record, error) {
	ttl := s.cfg.TTL
	if exp, ok := TokenExpiry(token); ok {
		if d := time.Until(exp); d > 0 && d < ttl {
			ttl = d
		}
	}
	rec := &Record{
		ID:        uuid.NewString(),
		ProfileID: profileID,
		Token:     token,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, sessionKey(rec.ID), string(b), ttl); err != nil {
		return nil, fmt.Errorf("session: store: %w", err)
	}
	return rec, nil
}

// Get busca la sesión por ID. Retorna (nil, nil) si no existe o expiró.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	v, err := s.cache.Get(ctx, sessionKey(id))
	if cache.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal([]byte(v), &rec); err != nil {
		return nil, err
	}
	if time.Now().After(rec.ExpiresAt) {
		_ = s.cache.Delete(ctx, sessionKey(id))
		return nil, nil
	}
	return &rec, nil
}

// Delete revoca la sesión.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, sessionKey(id))
}

// ─── Cookie ───

// Cookie construye la cookie de sesión, con el ID sellado.
func (s *Store) Cookie(rec *Record) (*http.Cookie, error) {
	sealed, err := cookiebox.Seal(rec.ID)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    sealed,
		Path:     "/",
		Domain:   s.cfg.Domain,
		Expires:  rec.ExpiresAt,
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: parseSameSite(s.cfg.SameSite),
	}, nil
}

// ClearCookie construye la cookie de borrado.
func (s *Store) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   s.cfg.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.Secure,
		SameSite: parseSameSite(s.cfg.SameSite),
	}
}

// FromRequest extrae y valida la sesión del request. Retorna (nil, nil) si
// no hay cookie, está sellada mal o la sesión no existe.
func (s *Store) FromRequest(r *http.Request) (*Record, error) {
	c, err := r.Cookie(s.cfg.CookieName)
	if err != nil || c.Value == "" {
		return nil, nil
	}
	id, err := cookiebox.Open(c.Value)
	if err != nil {
		return nil, nil // cookie ajena o corrupta: tratar como sin sesión
	}
	return s.Get(r.Context(), id)
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
