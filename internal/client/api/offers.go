package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jobboardhq/backoffice/internal/client/models"
)

// OffersService manages job offers. The offers endpoints paginate server
// side.
type OffersService struct {
	client *Client
}

func NewOffersService(client *Client) *OffersService {
	return &OffersService{client: client}
}

func pageQuery(page, size int) url.Values {
	return url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}
}

func (s *OffersService) List(ctx context.Context, page, size int) (models.Paginated[models.Offer], error) {
	var out models.Paginated[models.Offer]
	if err := s.client.get(ctx, "/offers", pageQuery(page, size), &out); err != nil {
		return models.Paginated[models.Offer]{}, err
	}
	return out, nil
}

func (s *OffersService) Get(ctx context.Context, id int64) (*models.Offer, error) {
	var o models.Offer
	if err := s.client.get(ctx, fmt.Sprintf("/offers/%d", id), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *OffersService) Create(ctx context.Context, o *models.Offer) (*models.Offer, error) {
	var created models.Offer
	if err := s.client.post(ctx, "/offers", o, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *OffersService) Update(ctx context.Context, id int64, o *models.Offer) (*models.Offer, error) {
	var updated models.Offer
	if err := s.client.put(ctx, fmt.Sprintf("/offers/%d", id), o, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *OffersService) Delete(ctx context.Context, id int64) error {
	return s.client.delete(ctx, fmt.Sprintf("/offers/%d", id))
}
