package app

import (
	"context"

	"github.com/pingvi095/wifi/internal/domain"
)

// CatalogService serves the read side of the place catalog. Listings are
// never cached: every call re-issues a fresh query so the result reflects
// the latest committed writes, including rating recomputations.
type CatalogService struct {
	places  domain.PlaceRepository
	reviews domain.ReviewRepository
}

func NewCatalogService(p domain.PlaceRepository, r domain.ReviewRepository) *CatalogService {
	return &CatalogService{places: p, reviews: r}
}

func (s *CatalogService) ListPlaces(ctx context.Context, c domain.FilterCriteria) ([]domain.Place, error) {
	return s.places.ListPlaces(ctx, c)
}

func (s *CatalogService) GetPlace(ctx context.Context, id int64) (domain.Place, error) {
	return s.places.GetPlace(ctx, id)
}

func (s *CatalogService) ListReviews(ctx context.Context, placeID int64) ([]domain.Review, error) {
	return s.reviews.ListReviews(ctx, placeID)
}
