// Package i18n resuelve el locale efectivo de cada request y provee
// los mensajes de fallback por locale.
//
// Prioridad de resolución:
//  1. preferencia guardada (persistida localmente)
//  2. subtag primario del Accept-Language entrante
//  3. locale de fallback configurado
package i18n

import "strings"

// Resolver decide el locale efectivo según la cadena de prioridad.
type Resolver struct {
	def       string
	supported map[string]bool
}

// NewResolver crea un resolver. def es el fallback fijo (p.ej. "de" o "en").
func NewResolver(def string, supported []string) *Resolver {
	m := make(map[string]bool, len(supported))
	for _, s := range supported {
		m[Primary(s)] = true
	}
	// el default siempre está soportado
	m[Primary(def)] = true
	return &Resolver{def: Primary(def), supported: m}
}

// Default retorna el locale de fallback fijo.
func (r *Resolver) Default() string { return r.def }

// Supported verifica si un locale (o su subtag primario) está soportado.
func (r *Resolver) Supported(locale string) bool {
	return r.supported[Primary(locale)]
}

// Resolve aplica la cadena de prioridad: stored → acceptLanguage → default.
// stored es la preferencia persistida (puede ser vacía). acceptLanguage es
// el header crudo del request entrante (puede incluir q-values y regiones).
// No se filtra por soportados: el upstream decide qué hacer con un idioma
// que no conoce; aquí solo se normaliza al subtag primario.
func (r *Resolver) Resolve(stored, acceptLanguage string) string {
	if s := Primary(stored); s != "" {
		return s
	}
	if a := Primary(firstLanguage(acceptLanguage)); a != "" {
		return a
	}
	return r.def
}

// ResolveSupported es como Resolve pero restringido a los locales soportados;
// se usa para elegir el locale de los textos localizados del UI.
func (r *Resolver) ResolveSupported(stored, acceptLanguage string) string {
	if s := Primary(stored); s != "" && r.supported[s] {
		return s
	}
	if a := Primary(firstLanguage(acceptLanguage)); a != "" && r.supported[a] {
		return a
	}
	return r.def
}

// Primary extrae el subtag primario en minúsculas: "fr-FR" → "fr".
func Primary(tag string) string {
	tag = strings.TrimSpace(strings.ToLower(tag))
	if tag == "" {
		return ""
	}
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

// firstLanguage toma el primer idioma de un header Accept-Language,
// ignorando q-values: "fr-FR,fr;q=0.9,en;q=0.8" → "fr-FR".
func firstLanguage(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if i := strings.IndexByte(header, ','); i >= 0 {
		header = header[:i]
	}
	if i := strings.IndexByte(header, ';'); i >= 0 {
		header = header[:i]
	}
	return strings.TrimSpace(header)
}
