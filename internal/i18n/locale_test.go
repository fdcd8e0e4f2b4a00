package i18n

import "testing"

func TestResolve_PriorityChain(t *testing.T) {
	r := NewResolver("de", []string{"de", "en", "tr"})

	cases := []struct {
		name   string
		stored string
		accept string
		want   string
	}{
		{"stored gana sobre todo", "tr", "en-US,en;q=0.9", "tr"},
		{"accept-language si no hay stored", "", "en-US,en;q=0.9", "en"},
		{"idioma no soportado pasa igual", "", "fr-FR,fr;q=0.9,en;q=0.8", "fr"},
		{"default si no hay nada", "", "", "de"},
		{"stored con región se normaliza", "de-AT", "", "de"},
		{"header con espacios", "", " tr , de;q=0.5", "tr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Resolve(tc.stored, tc.accept); got != tc.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tc.stored, tc.accept, got, tc.want)
			}
		})
	}
}

func TestResolveSupported_FiltersUnknown(t *testing.T) {
	r := NewResolver("de", []string{"de", "en", "tr"})

	if got := r.ResolveSupported("", "fr-FR,fr;q=0.9"); got != "de" {
		t.Errorf("ResolveSupported = %q, want default para idioma no soportado", got)
	}
	if got := r.ResolveSupported("fr", "tr"); got != "tr" {
		t.Errorf("ResolveSupported = %q, stored no soportado debe ceder al header", got)
	}
}

func TestPrimary(t *testing.T) {
	cases := map[string]string{
		"fr-FR": "fr",
		"de_AT": "de",
		"EN":    "en",
		"  tr ": "tr",
		"":      "",
	}
	for in, want := range cases {
		if got := Primary(in); got != want {
			t.Errorf("Primary(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMessage_LocaleThenEnglishThenKey(t *testing.T) {
	if got := Message("de", "request_failed"); got == "" || got[0] == '[' {
		t.Errorf("Message(de) = %q, want texto del catálogo", got)
	}
	if Message("de", "request_failed") == Message("en", "request_failed") {
		t.Error("de y en no deberían compartir el mismo texto de fallback")
	}
	// locale sin catálogo cae a en
	if got, want := Message("pt", "request_failed"), Message("en", "request_failed"); got != want {
		t.Errorf("Message(pt) = %q, want fallback inglés %q", got, want)
	}
	if got := Message("en", "no_such_key"); got != "[no_such_key]" {
		t.Errorf("Message key inexistente = %q", got)
	}
}
