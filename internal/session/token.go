package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry lee el claim exp de un access token del upstream SIN
// verificar la firma: el upstream es quien firma y valida; aquí solo se usa
// para acotar el TTL de la sesión local.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
