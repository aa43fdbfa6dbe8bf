package api

import (
	"context"
	"fmt"

	"github.com/jobboardhq/backoffice/internal/client/models"
)

// NotificationsService reads and acknowledges platform notifications.
type NotificationsService struct {
	client *Client
}

func NewNotificationsService(client *Client) *NotificationsService {
	return &NotificationsService{client: client}
}

func (s *NotificationsService) List(ctx context.Context, page, size int) (models.Paginated[models.Notification], error) {
	var all []models.Notification
	if err := s.client.get(ctx, "/notifications", nil, &all); err != nil {
		return models.Paginated[models.Notification]{}, err
	}
	return models.PaginateSlice(all, page, size), nil
}

func (s *NotificationsService) MarkRead(ctx context.Context, id int64) error {
	return s.client.patch(ctx, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
}

func (s *NotificationsService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/notifications/%d", id))
}
