package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rentadmin/internal/client/api"
	"github.com/dmitrijs2005/rentadmin/internal/client/models"
)

// NotificationsService manages messages sent to individual users.
type NotificationsService interface {
	List(ctx context.Context) ([]models.Notification, error)
	Create(ctx context.Context, draft models.NotificationDraft) (models.Notification, error)
	Update(ctx context.Context, id string, draft models.NotificationDraft) (models.Notification, error)
	Delete(ctx context.Context, id string) error
}

type notificationsService struct {
	api *api.Client
}

func NewNotificationsService(api *api.Client) NotificationsService {
	return &notificationsService{api: api}
}

func (s *notificationsService) List(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.api.Get(ctx, "/notification", &notifications); err != nil {
		return nil, fmt.Errorf("fetching notifications: %w", err)
	}
	return notifications, nil
}

type notificationRequest struct {
	ReceiverID string `json:"id_user"`
	Message    string `json:"message"`
}

func (s *notificationsService) Create(ctx context.Context, draft models.NotificationDraft) (models.Notification, error) {
	req := notificationRequest{ReceiverID: draft.ReceiverID, Message: draft.Message}
	var created models.Notification
	if err := s.api.PostJSON(ctx, "/notification/create", req, &created); err != nil {
		return models.Notification{}, fmt.Errorf("creating notification: %w", err)
	}
	return created, nil
}

func (s *notificationsService) Update(ctx context.Context, id string, draft models.NotificationDraft) (models.Notification, error) {
	req := notificationRequest{ReceiverID: draft.ReceiverID, Message: draft.Message}
	var updated models.Notification
	if err := s.api.PutJSON(ctx, "/notification/"+id, req, &updated); err != nil {
		return models.Notification{}, fmt.Errorf("updating notification %s: %w", id, err)
	}
	return updated, nil
}

func (s *notificationsService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/notification/"+id); err != nil {
		return fmt.Errorf("deleting notification %s: %w", id, err)
	}
	return nil
}
