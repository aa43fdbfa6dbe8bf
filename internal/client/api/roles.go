package api

import (
	"context"
	"fmt"

	"github.com/jobboardhq/backoffice/internal/client/models"
)

// RolesService manages configurable role definitions.
type RolesService struct {
	client *Client
}

func NewRolesService(client *Client) *RolesService {
	return &RolesService{client: client}
}

func (s *RolesService) List(ctx context.Context, page, size int) (models.Paginated[models.RoleDefinition], error) {
	var all []models.RoleDefinition
	if err := s.client.get(ctx, "/roles", nil, &all); err != nil {
		return models.Paginated[models.RoleDefinition]{}, err
	}
	return models.PaginateSlice(all, page, size), nil
}

func (s *RolesService) Create(ctx context.Context, r *models.RoleDefinition) (*models.RoleDefinition, error) {
	var created models.RoleDefinition
	if err := s.client.post(ctx, "/roles", r, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *RolesService) Update(ctx context.Context, id int64, r *models.RoleDefinition) (*models.RoleDefinition, error) {
	var updated models.RoleDefinition
	if err := s.client.put(ctx, fmt.Sprintf("/roles/%d", id), r, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *RolesService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/roles/%d", id))
}
