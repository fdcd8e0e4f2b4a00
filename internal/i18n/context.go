package i18n

import "context"

type langKey struct{}

// WithRequestLanguage guarda el Accept-Language crudo del request entrante
// en el contexto, para que el call wrapper lo propague al upstream.
func WithRequestLanguage(ctx context.Context, header string) context.Context {
	return context.WithValue(ctx, langKey{}, header)
}

// RequestLanguage extrae el Accept-Language del contexto ("" si no hay).
func RequestLanguage(ctx context.Context) string {
	if v, ok := ctx.Value(langKey{}).(string); ok {
		return v
	}
	return ""
}
