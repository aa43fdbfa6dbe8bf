package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jobboardhq/backoffice/internal/client/models"
)

// UsersService manages platform accounts. The backend returns plain arrays
// for these endpoints; listings are paginated client-side so every screen
// renders the same envelope.
type UsersService struct {
	client *Client
}

func NewUsersService(client *Client) *UsersService {
	return &UsersService{client: client}
}

func (s *UsersService) List(ctx context.Context, page, size int) (models.Paginated[models.User], error) {
	var all []models.User
	if err := s.client.get(ctx, "/users", nil, &all); err != nil {
		return models.Paginated[models.User]{}, err
	}
	return models.PaginateSlice(all, page, size), nil
}

func (s *UsersService) ListRecruiters(ctx context.Context, page, size int) (models.Paginated[models.User], error) {
	var all []models.User
	if err := s.client.get(ctx, "/users/recruiters", nil, &all); err != nil {
		return models.Paginated[models.User]{}, err
	}
	return models.PaginateSlice(all, page, size), nil
}

func (s *UsersService) ListJobSeekers(ctx context.Context, page, size int) (models.Paginated[models.User], error) {
	var all []models.User
	if err := s.client.get(ctx, "/users/job-seekers", nil, &all); err != nil {
		return models.Paginated[models.User]{}, err
	}
	return models.PaginateSlice(all, page, size), nil
}

func (s *UsersService) Get(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := s.client.get(ctx, fmt.Sprintf("/users/%d", id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UsersService) Update(ctx context.Context, id int64, u *models.User) (*models.User, error) {
	var updated models.User
	if err := s.client.put(ctx, fmt.Sprintf("/users/%d", id), u, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ToggleStatus flips the account's active flag and returns the new state.
func (s *UsersService) ToggleStatus(ctx context.Context, id int64, active bool) (*models.User, error) {
	q := url.Values{"active": {strconv.FormatBool(active)}}
	var u models.User
	if err := s.client.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/users/%d/status", id), q, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UsersService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/users/%d", id))
}
