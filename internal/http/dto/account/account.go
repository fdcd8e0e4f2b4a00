// Package account define los request de actualización de perfil.
package account

import "github.com/dropDatabas3/bicihub/internal/domain"

type UpdateRequest struct {
	Name          string                    `json:"name,omitempty"`
	Notifications *domain.NotificationPrefs `json:"notifications,omitempty"`
	Social        *domain.SocialLinks       `json:"social,omitempty"`
}
