package api

import (
	"context"
	"fmt"

	"github.com/jobboardhq/backoffice/internal/client/models"
)

// SkillTypesService manages the skill taxonomy.
type SkillTypesService struct {
	client *Client
}

func NewSkillTypesService(client *Client) *SkillTypesService {
	return &SkillTypesService{client: client}
}

func (s *SkillTypesService) List(ctx context.Context, page, size int) (models.Paginated[models.SkillType], error) {
	var all []models.SkillType
	if err := s.client.get(ctx, "/skill-types", nil, &all); err != nil {
		return models.Paginated[models.SkillType]{}, err
	}
	return models.PaginateSlice(all, page, size), nil
}

func (s *SkillTypesService) Create(ctx context.Context, st *models.SkillType) (*models.SkillType, error) {
	var created models.SkillType
	if err := s.client.post(ctx, "/skill-types", st, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *SkillTypesService) Update(ctx context.Context, id int64, st *models.SkillType) (*models.SkillType, error) {
	var updated models.SkillType
	if err := s.client.put(ctx, fmt.Sprintf("/skill-types/%d", id), st, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *SkillTypesService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/skill-types/%d", id))
}
