package domain

import (
	"context"
	"time"
)

type PlaceRepository interface {
	ListPlaces(ctx context.Context, c FilterCriteria) ([]Place, error)
	GetPlace(ctx context.Context, id int64) (Place, error)
	CreatePlace(ctx context.Context, p Place) (int64, error)
	UpdatePlace(ctx context.Context, p Place) error
	DeletePlace(ctx context.Context, id int64) error

	// UpdateRating writes the derived mean back onto the place row.
	UpdateRating(ctx context.Context, placeID int64, rating float64) error
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, r Review) (int64, error)
	ListReviews(ctx context.Context, placeID int64) ([]Review, error)

	// AverageStars returns the mean of stars over all reviews for the
	// place, 0.0 when the place has none.
	AverageStars(ctx context.Context, placeID int64) (float64, error)
}

type AdminRepository interface {
	CreateAdmin(ctx context.Context, username, passwordHash string) error
	GetAdminHash(ctx context.Context, username string) (string, error)
}

// SessionStore keeps issued admin tokens until they expire.
type SessionStore interface {
	Set(ctx context.Context, token, username string, ttl time.Duration) error
	Get(ctx context.Context, token string) (username string, ok bool, err error)
	Del(ctx context.Context, token string) error
}
