// Package domain define las entidades de negocio del storefront tal como
// las expone el API de la plataforma. El gateway no es dueño de estos datos:
// los consume, los cachea por tenant y los invalida al cambiar de tenant.
package domain

// Localized es un campo de texto localizado, indexado por subtag de locale.
// Ej: {"de": "Rennrad", "en": "Road bike"}.
type Localized map[string]string

// Resolve retorna el texto para locale; si no existe cae a fallback y
// luego a cualquier valor disponible (orden no determinístico, solo como
// último recurso para no renderizar vacío).
func (l Localized) Resolve(locale, fallback string) string {
	if l == nil {
		return ""
	}
	if v, ok := l[locale]; ok && v != "" {
		return v
	}
	if v, ok := l[fallback]; ok && v != "" {
		return v
	}
	for _, v := range l {
		if v != "" {
			return v
		}
	}
	return ""
}
