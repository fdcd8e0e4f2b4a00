package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/dropDatabas3/bicihub/internal/i18n"
	"github.com/dropDatabas3/bicihub/internal/observability/logger"
)

// maxResponseBody limita lo que leemos de una respuesta del upstream.
const maxResponseBody = 4 << 20 // 4MB

// Result es el resultado de una llamada exitosa, ya desenvuelto del
// transporte: status, message opcional del servidor y el data crudo.
type Result struct {
	Status  int
	Message string
	Data    json.RawMessage
}

// successBody es la convención de éxito del upstream: {data, message?}.
type successBody struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Call ejecuta una llamada contra el upstream y normaliza el resultado.
//
// method ∈ GET/POST/PUT/PATCH/DELETE. path es relativo al base URL. body es
// la unión discriminada (JSON, Query, FormData) o nil; un payload Query viaja
// como query parameters, el resto como body del request. out, si no es nil,
// recibe el campo data decodificado (o el body entero si no hay envelope).
//
// En fallo retorna un *Error normalizado {status, message, data}; el error
// nunca es de otro tipo. El logging es best-effort y no afecta el flujo.
func (c *Client) Call(ctx context.Context, method, path string, body Body, out any) (*Result, error) {
	log := logger.From(ctx).With(logger.Component("api"), logger.Method(method), logger.Path(path))

	locale := c.locales.Resolve(c.storedLocale(), i18n.RequestLanguage(ctx))
	fallback := i18n.Message(locale, "request_failed")

	var (
		reader      io.Reader
		contentType string
		vals        url.Values
	)
	if body != nil {
		var err error
		reader, contentType, vals, err = body.encode()
		if err != nil {
			log.Warn("request encode failed", logger.Err(err))
			return nil, &Error{Kind: KindTransport, Message: err.Error()}
		}
	}

	u := c.baseURL + path
	if len(vals) > 0 {
		sep := "?"
		if parsed, err := url.Parse(u); err == nil && parsed.RawQuery != "" {
			sep = "&"
		}
		u += sep + vals.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error()}
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept-Language", locale)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	log.Debug("upstream request", logger.Locale(locale))

	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := normalizeError(0, nil, err, fallback)
		log.Warn("upstream transport error", logger.Err(err))
		return nil, apiErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		apiErr := normalizeError(0, nil, err, fallback)
		log.Warn("upstream read error", logger.Err(err))
		return nil, apiErr
	}

	if resp.StatusCode >= 400 {
		apiErr := normalizeError(resp.StatusCode, raw, nil, fallback)
		log.Warn("upstream error response",
			logger.Status(resp.StatusCode),
			logger.String("normalized", apiErr.Message),
		)
		return nil, apiErr
	}

	res := &Result{Status: resp.StatusCode}
	if len(raw) > 0 {
		var env successBody
		if err := json.Unmarshal(raw, &env); err == nil && (env.Data != nil || env.Message != "") {
			res.Data = env.Data
			res.Message = env.Message
		} else {
			// Sin envelope: el body entero es el payload
			res.Data = raw
		}
	}
	if out != nil && len(res.Data) > 0 {
		if err := json.Unmarshal(res.Data, out); err != nil {
			return nil, &Error{
				Kind:    KindUpstream,
				Status:  resp.StatusCode,
				Message: fallback,
				Data:    raw,
			}
		}
	}
	return res, nil
}

// ─── Atajos por verbo ───

// Get ejecuta un GET; vals viaja como query parameters.
func (c *Client) Get(ctx context.Context, path string, vals url.Values, out any) (*Result, error) {
	var b Body
	if len(vals) > 0 {
		b = Query(vals)
	}
	return c.Call(ctx, http.MethodGet, path, b, out)
}

// Post ejecuta un POST con el body dado.
func (c *Client) Post(ctx context.Context, path string, body Body, out any) (*Result, error) {
	return c.Call(ctx, http.MethodPost, path, body, out)
}

// Put ejecuta un PUT con el body dado.
func (c *Client) Put(ctx context.Context, path string, body Body, out any) (*Result, error) {
	return c.Call(ctx, http.MethodPut, path, body, out)
}

// Patch ejecuta un PATCH con el body dado.
func (c *Client) Patch(ctx context.Context, path string, body Body, out any) (*Result, error) {
	return c.Call(ctx, http.MethodPatch, path, body, out)
}

// Delete ejecuta un DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any) (*Result, error) {
	return c.Call(ctx, http.MethodDelete, path, nil, out)
}
