package errors

import (
	"encoding/json"
	"net/http"

	"github.com/dropDatabas3/bicihub/internal/api"
)

// errorResponse es la forma JSON que ve el cliente.
type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Detail  string            `json:"detail,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// WriteError escribe la respuesta HTTP para err. Maneja *AppError y errores
// genéricos (que se colapsan a error interno).
func WriteError(w http.ResponseWriter, err error) {
	appErr := FromError(err)
	writeJSON(w, appErr.HTTPStatus, errorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Detail:  appErr.Detail,
	})
}

// WriteUpstreamError traduce un error normalizado del call wrapper a la
// respuesta del gateway, conservando el mensaje ya normalizado y el detalle
// por campo para quien lo quiera.
func WriteUpstreamError(w http.ResponseWriter, err error) {
	ae, ok := api.AsError(err)
	if !ok {
		WriteError(w, err)
		return
	}

	resp := errorResponse{Message: ae.Message, Fields: ae.Fields}
	status := http.StatusBadGateway
	switch ae.Kind {
	case api.KindUnauthenticated:
		resp.Code = ErrUnauthorized.Code
		status = http.StatusUnauthorized
	case api.KindValidation:
		resp.Code = "VALIDATION_ERROR"
		status = http.StatusUnprocessableEntity
	case api.KindTransport:
		resp.Code = ErrUpstreamUnavailable.Code
	default:
		resp.Code = ErrUpstream.Code
		// los 4xx del upstream se reflejan tal cual
		if ae.Status >= 400 && ae.Status < 500 {
			status = ae.Status
		}
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
