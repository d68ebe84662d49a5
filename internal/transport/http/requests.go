package http

import (
	"github.com/YusovID/review-dashboard/internal/domain"
	"github.com/YusovID/review-dashboard/pkg/api"
)

// notificationSettings converts a settings request. The level and the webhook
// fields are passed through as given.
func notificationSettings(req api.NotificationSettingsRequest) domain.NotificationSettings {
	return domain.NotificationSettings{
		NotifyLevel: int(req.NotifyLevel),
		Email:       req.Email,
		Webhook:     req.Webhook,
	}
}
