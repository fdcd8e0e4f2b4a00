package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Kind clasifica la causa de un fallo del call wrapper.
type Kind int

const (
	// KindUpstream: el upstream respondió con status de error genérico.
	KindUpstream Kind = iota
	// KindTransport: no hubo respuesta (red, timeout, DNS).
	KindTransport
	// KindUnauthenticated: 401 del upstream. Es un kind con nombre propio
	// para que el caso especial del probe de perfil no dependa de comparar
	// strings de URL.
	KindUnauthenticated
	// KindValidation: el upstream devolvió errores de campo estructurados.
	KindValidation
)

// Error es el envelope normalizado {status, message, data} que producen
// todas las llamadas al upstream, sea cual sea la causa del fallo.
type Error struct {
	Kind    Kind
	Status  int // 0 cuando no hubo respuesta de transporte
	Message string
	// Fields conserva el detalle por campo para componentes que lo quieran.
	Fields map[string]string
	// Data es el body crudo del error, si lo hubo.
	Data json.RawMessage
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s: %s", e.StatusLabel(), e.Message)
}

// StatusLabel retorna el código como string, o "Unknown" si no hubo respuesta.
func (e *Error) StatusLabel() string {
	if e.Status == 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%d", e.Status)
}

// IsUnauthenticated verifica si err es un 401 normalizado.
func IsUnauthenticated(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == KindUnauthenticated
}

// AsError extrae el *Error normalizado de err, si lo es.
func AsError(err error) (*Error, bool) {
	var ae *Error
	ok := errors.As(err, &ae)
	return ae, ok
}

// errorBody es la convención de error del upstream:
// status HTTP + message opcional + errors{campo:{message}} opcional.
type errorBody struct {
	Message string `json:"message"`
	Errors  map[string]struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// normalizeError construye el envelope normalizado a partir de la respuesta
// de error del upstream. Prioridad del mensaje:
//
//	message del servidor → primer mensaje de campo → texto del error de
//	transporte → fallback fijo por locale.
func normalizeError(status int, raw []byte, transportErr error, fallback string) *Error {
	e := &Error{Status: status, Data: raw}

	switch {
	case status == 401:
		e.Kind = KindUnauthenticated
	case status == 0:
		e.Kind = KindTransport
	default:
		e.Kind = KindUpstream
	}

	var body errorBody
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	if len(body.Errors) > 0 {
		e.Fields = make(map[string]string, len(body.Errors))
		for f, v := range body.Errors {
			e.Fields[f] = v.Message
		}
		if e.Kind == KindUpstream {
			e.Kind = KindValidation
		}
	}

	switch {
	case body.Message != "":
		e.Message = body.Message
	case len(e.Fields) > 0:
		e.Message = firstFieldMessage(e.Fields)
	case transportErr != nil:
		e.Message = transportErr.Error()
	default:
		e.Message = fallback
	}
	return e
}

// firstFieldMessage retorna el mensaje del primer campo en orden estable.
func firstFieldMessage(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if fields[k] != "" {
			return fields[k]
		}
	}
	return ""
}
