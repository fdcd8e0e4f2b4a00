package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
)

// Body es el payload de un request, como unión discriminada: el tipo decide
// el Content-Type en el call site, nunca por introspección en runtime.
type Body interface {
	// encode serializa el payload. Para GET retorna los query params en
	// values; para el resto retorna reader + content type ("" = sin header
	// explícito, el transporte decide).
	encode() (reader io.Reader, contentType string, values url.Values, err error)
}

// ─── JSON ───

type jsonBody struct{ v any }

// JSON crea un body application/json.
func JSON(v any) Body { return jsonBody{v: v} }

func (b jsonBody) encode() (io.Reader, string, url.Values, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(b.v); err != nil {
		return nil, "", nil, fmt.Errorf("api: encode json body: %w", err)
	}
	return buf, "application/json", nil, nil
}

// ─── Query (GET) ───

type queryBody struct{ vals url.Values }

// Query crea un payload que viaja como query parameters (para GET).
func Query(vals url.Values) Body { return queryBody{vals: vals} }

func (b queryBody) encode() (io.Reader, string, url.Values, error) {
	return nil, "", b.vals, nil
}

// ─── Multipart (uploads) ───

// FormFile es un archivo a subir en un body multipart.
type FormFile struct {
	Field    string
	Filename string
	Content  io.Reader
}

// FormData acumula campos y archivos para un request multipart/form-data.
// El Content-Type lo fija el writer multipart (incluye el boundary); el
// header JSON explícito se omite siempre.
type FormData struct {
	fields map[string]string
	files  []FormFile
}

// NewForm crea un FormData vacío.
func NewForm() *FormData {
	return &FormData{fields: make(map[string]string)}
}

// Set agrega un campo de texto.
func (f *FormData) Set(key, value string) *FormData {
	f.fields[key] = value
	return f
}

// AddFile agrega un archivo.
func (f *FormData) AddFile(field, filename string, content io.Reader) *FormData {
	f.files = append(f.files, FormFile{Field: field, Filename: filename, Content: content})
	return f
}

func (f *FormData) encode() (io.Reader, string, url.Values, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	for k, v := range f.fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", nil, fmt.Errorf("api: form field %q: %w", k, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return nil, "", nil, fmt.Errorf("api: form file %q: %w", file.Field, err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", nil, fmt.Errorf("api: form file %q: %w", file.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", nil, err
	}
	return buf, w.FormDataContentType(), nil, nil
}
