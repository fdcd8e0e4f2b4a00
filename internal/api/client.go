// Package api implementa el call wrapper genérico contra el API REST de la
// plataforma: toda llamada de red del gateway pasa por aquí. Centraliza la
// inyección de headers (x-api-key, Accept-Language), el manejo de cookies y
// la normalización de errores al envelope {status, message, data}.
package api

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/dropDatabas3/bicihub/internal/i18n"
)

// Config configura el cliente.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// Locales resuelve el Accept-Language saliente.
	Locales *i18n.Resolver

	// StoredLocale retorna la preferencia de locale persistida ("" si no hay).
	StoredLocale func() string

	// HTTPClient permite inyectar un transporte en tests. Opcional.
	HTTPClient *http.Client
}

// Client es el cliente HTTP configurado contra el upstream.
type Client struct {
	baseURL      string
	apiKey       string
	http         *http.Client
	locales      *i18n.Resolver
	storedLocale func() string
}

// New crea un cliente. Las cookies del upstream se conservan en un jar
// propio (equivalente a withCredentials).
func New(cfg Config) (*Client, error) {
	hc := cfg.HTTPClient
	if hc == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		hc = &http.Client{Jar: jar, Timeout: timeout}
	}
	locales := cfg.Locales
	if locales == nil {
		locales = i18n.NewResolver("en", nil)
	}
	stored := cfg.StoredLocale
	if stored == nil {
		stored = func() string { return "" }
	}
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		http:         hc,
		locales:      locales,
		storedLocale: stored,
	}, nil
}
