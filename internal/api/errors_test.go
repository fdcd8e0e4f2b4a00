package api

import (
	"errors"
	"testing"
)

func TestNormalizeError_ServerMessageWins(t *testing.T) {
	raw := []byte(`{"message":"bike no encontrada","errors":{"name":{"message":"requerido"}}}`)
	e := normalizeError(404, raw, nil, "fallback")
	if e.Message != "bike no encontrada" {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestNormalizeError_FirstFieldMessageInStableOrder(t *testing.T) {
	raw := []byte(`{"errors":{"zeta":{"message":"z inválido"},"alpha":{"message":"a inválido"}}}`)
	e := normalizeError(422, raw, nil, "fallback")
	// Orden estable por nombre de campo, no orden de mapa
	if e.Message != "a inválido" {
		t.Errorf("Message = %q, want el del primer campo ordenado", e.Message)
	}
	if e.Kind != KindValidation {
		t.Errorf("Kind = %v, want KindValidation", e.Kind)
	}
	if e.Fields["zeta"] != "z inválido" {
		t.Errorf("Fields = %v", e.Fields)
	}
}

func TestNormalizeError_TransportTextWhenNoBody(t *testing.T) {
	e := normalizeError(0, nil, errors.New("dial tcp: connection refused"), "fallback")
	if e.Message != "dial tcp: connection refused" {
		t.Errorf("Message = %q", e.Message)
	}
	if e.Kind != KindTransport {
		t.Errorf("Kind = %v", e.Kind)
	}
}

func TestNormalizeError_FallbackWhenNothingElse(t *testing.T) {
	e := normalizeError(500, []byte(`{}`), nil, "etwas ist schiefgelaufen")
	if e.Message != "etwas ist schiefgelaufen" {
		t.Errorf("Message = %q", e.Message)
	}
}

func TestNormalizeError_401IsNamedKind(t *testing.T) {
	e := normalizeError(401, nil, nil, "fallback")
	if e.Kind != KindUnauthenticated {
		t.Errorf("Kind = %v", e.Kind)
	}
	if !IsUnauthenticated(e) {
		t.Error("IsUnauthenticated = false")
	}
}

func TestNormalizeError_MalformedBodyIgnored(t *testing.T) {
	e := normalizeError(502, []byte(`<html>bad gateway</html>`), nil, "fallback")
	if e.Message != "fallback" {
		t.Errorf("Message = %q", e.Message)
	}
	if string(e.Data) != "<html>bad gateway</html>" {
		t.Errorf("Data = %q", e.Data)
	}
}
