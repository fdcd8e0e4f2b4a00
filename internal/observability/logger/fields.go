package logger

import (
	"time"

	"go.uber.org/zap"
)

// ─── Campos HTTP ───

// RequestID crea un campo para el ID del request.
func RequestID(v string) zap.Field { return zap.String("request_id", v) }

// Method crea un campo para el método HTTP.
func Method(v string) zap.Field { return zap.String("method", v) }

// Path crea un campo para el path del request.
func Path(v string) zap.Field { return zap.String("path", v) }

// Status crea un campo para el status code HTTP.
func Status(v int) zap.Field { return zap.Int("status", v) }

// Duration crea un campo para la duración del request.
func Duration(v time.Duration) zap.Field { return zap.Duration("duration", v) }

// Bytes crea un campo para los bytes de respuesta.
func Bytes(v int) zap.Field { return zap.Int("bytes", v) }

// ─── Campos de negocio ───

// TenantID crea un campo para el ID del tenant seleccionado.
func TenantID(v string) zap.Field { return zap.String("tenant_id", v) }

// TenantSlug crea un campo para el slug del tenant.
func TenantSlug(v string) zap.Field { return zap.String("tenant_slug", v) }

// ProfileID crea un campo para el ID del perfil autenticado.
func ProfileID(v string) zap.Field { return zap.String("profile_id", v) }

// Slice crea un campo para el nombre de un slice de estado.
func Slice(v string) zap.Field { return zap.String("slice", v) }

// Epoch crea un campo para la época de tenant-switch de un fetch.
func Epoch(v uint64) zap.Field { return zap.Uint64("epoch", v) }

// Locale crea un campo para el locale resuelto.
func Locale(v string) zap.Field { return zap.String("locale", v) }

// ─── Campos de sistema ───

// Component crea un campo para el componente/módulo.
func Component(v string) zap.Field { return zap.String("component", v) }

// Op crea un campo para la operación actual.
func Op(v string) zap.Field { return zap.String("op", v) }

// Layer crea un campo para la capa (controller, service, state).
func Layer(v string) zap.Field { return zap.String("layer", v) }

// Err crea un campo para un error.
func Err(err error) zap.Field { return zap.Error(err) }

// Count crea un campo para un conteo.
func Count(v int) zap.Field { return zap.Int("count", v) }

// ID crea un campo genérico para un ID.
func ID(v string) zap.Field { return zap.String("id", v) }

// String crea un campo string genérico.
func String(key, v string) zap.Field { return zap.String(key, v) }

// Int crea un campo int genérico.
func Int(key string, v int) zap.Field { return zap.Int(key, v) }

// Any crea un campo genérico para cualquier tipo.
func Any(key string, v any) zap.Field { return zap.Any(key, v) }
