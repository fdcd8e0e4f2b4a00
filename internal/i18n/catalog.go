package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

var (
	catalogOnce sync.Once
	catalogs    map[string]map[string]string // locale -> key -> mensaje
)

func loadCatalogs() {
	catalogOnce.Do(func() {
		catalogs = make(map[string]map[string]string)
		entries, err := fs.ReadDir(catalogFS, "catalogs")
		if err != nil {
			return
		}
		for _, e := range entries {
			name := e.Name()
			if !strings.HasSuffix(name, ".yaml") {
				continue
			}
			locale := strings.TrimSuffix(name, ".yaml")
			b, err := catalogFS.ReadFile("catalogs/" + name)
			if err != nil {
				continue
			}
			m := make(map[string]string)
			if err := yaml.Unmarshal(b, &m); err != nil {
				continue
			}
			catalogs[locale] = m
		}
	})
}

// Message busca un mensaje por key en el catálogo del locale dado.
// Si el locale o la key no existen, cae al catálogo "en"; si tampoco
// existe ahí, retorna la key entre corchetes para que el hueco sea visible.
func Message(locale, key string) string {
	loadCatalogs()
	if m, ok := catalogs[Primary(locale)]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := catalogs["en"]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return fmt.Sprintf("[%s]", key)
}
