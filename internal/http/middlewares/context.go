package middlewares

import (
	"context"

	"github.com/dropDatabas3/bicihub/internal/domain"
	"github.com/dropDatabas3/bicihub/internal/session"
)

type (
	requestIDKey struct{}
	profileKey   struct{}
	sessionKey   struct{}
)

func setRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// GetRequestID extrae el request ID del contexto ("" si no hay).
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// WithProfile inyecta el perfil autenticado en el contexto.
func WithProfile(ctx context.Context, p *domain.Profile) context.Context {
	return context.WithValue(ctx, profileKey{}, p)
}

// GetProfile extrae el perfil del contexto (nil si no hay).
func GetProfile(ctx context.Context) *domain.Profile {
	if v, ok := ctx.Value(profileKey{}).(*domain.Profile); ok {
		return v
	}
	return nil
}

// WithSession inyecta la sesión del request en el contexto.
func WithSession(ctx context.Context, rec *session.Record) context.Context {
	return context.WithValue(ctx, sessionKey{}, rec)
}

// GetSession extrae la sesión del contexto (nil si no hay).
func GetSession(ctx context.Context) *session.Record {
	if v, ok := ctx.Value(sessionKey{}).(*session.Record); ok {
		return v
	}
	return nil
}
