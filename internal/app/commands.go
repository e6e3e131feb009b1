package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pingvi095/wifi/internal/domain"
)

// ReviewService appends reviews and keeps the denormalized place rating in
// step with them.
type ReviewService struct {
	reviews domain.ReviewRepository
	places  domain.PlaceRepository
}

func NewReviewService(r domain.ReviewRepository, p domain.PlaceRepository) *ReviewService {
	return &ReviewService{reviews: r, places: p}
}

// Submit inserts the review, then synchronously recomputes the mean of stars
// over every stored review for the place and writes it back. The insert and
// the write-back are two separate commands; a failed write-back propagates
// while the review stays inserted, leaving the displayed rating stale until
// the next successful recomputation.
func (s *ReviewService) Submit(ctx context.Context, placeID int64, author string, stars int, comment string) (domain.Review, error) {
	if !domain.ValidStars(stars) {
		return domain.Review{}, fmt.Errorf("%w: stars must be between 1 and 5", domain.ErrInvalidInput)
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = domain.AnonymousAuthor
	}

	rv := domain.Review{
		PlaceID: placeID,
		Author:  author,
		Stars:   stars,
		Comment: strings.TrimSpace(comment),
	}
	id, err := s.reviews.CreateReview(ctx, rv)
	if err != nil {
		return domain.Review{}, err
	}
	rv.ID = id

	avg, err := s.reviews.AverageStars(ctx, placeID)
	if err != nil {
		return rv, fmt.Errorf("recompute rating for place %d: %w", placeID, err)
	}
	if err := s.places.UpdateRating(ctx, placeID, avg); err != nil {
		return rv, fmt.Errorf("write back rating for place %d: %w", placeID, err)
	}
	return rv, nil
}

// AdminService owns the maintenance side of the catalog: admin credentials,
// session tokens and place create/update/delete.
type AdminService struct {
	admins   domain.AdminRepository
	places   domain.PlaceRepository
	sessions domain.SessionStore

	bootUser string
	bootPass string
	ttl      time.Duration
}

func NewAdminService(a domain.AdminRepository, p domain.PlaceRepository, s domain.SessionStore, bootUser, bootPass string, ttl time.Duration) *AdminService {
	return &AdminService{admins: a, places: p, sessions: s, bootUser: bootUser, bootPass: bootPass, ttl: ttl}
}

// hashPassword is the stored credential form: lowercase hex SHA-256.
func hashPassword(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Login checks the bootstrap pair first, then the admins table, and on
// success issues a session token with the configured TTL.
func (s *AdminService) Login(ctx context.Context, username, password string) (string, error) {
	ok := username == s.bootUser && password == s.bootPass
	if !ok {
		hash, err := s.admins.GetAdminHash(ctx, username)
		if err == domain.ErrNotFound {
			return "", domain.ErrBadCredentials
		}
		if err != nil {
			return "", err
		}
		ok = hash == hashPassword(password)
	}
	if !ok {
		return "", domain.ErrBadCredentials
	}

	token := uuid.NewString()
	if err := s.sessions.Set(ctx, token, username, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

func (s *AdminService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}
	if _, err := s.admins.GetAdminHash(ctx, username); err == nil {
		return domain.ErrAdminExists
	} else if err != domain.ErrNotFound {
		return err
	}
	return s.admins.CreateAdmin(ctx, username, hashPassword(password))
}

// Authenticate resolves a bearer token to the admin it was issued to.
func (s *AdminService) Authenticate(ctx context.Context, token string) (string, bool, error) {
	if token == "" {
		return "", false, nil
	}
	return s.sessions.Get(ctx, token)
}

func (s *AdminService) Logout(ctx context.Context, token string) error {
	return s.sessions.Del(ctx, token)
}

// CreatePlace validates fields the way the editing forms always have: all
// contact fields must be present, and the work-hours text must normalize.
func (s *AdminService) CreatePlace(ctx context.Context, p domain.Place) (domain.Place, error) {
	np, err := validatePlace(p)
	if err != nil {
		return domain.Place{}, err
	}
	id, err := s.places.CreatePlace(ctx, np)
	if err != nil {
		return domain.Place{}, err
	}
	np.ID = id
	return np, nil
}

func (s *AdminService) UpdatePlace(ctx context.Context, p domain.Place) (domain.Place, error) {
	np, err := validatePlace(p)
	if err != nil {
		return domain.Place{}, err
	}
	if _, err := s.places.GetPlace(ctx, np.ID); err != nil {
		return domain.Place{}, err
	}
	if err := s.places.UpdatePlace(ctx, np); err != nil {
		return domain.Place{}, err
	}
	return np, nil
}

func (s *AdminService) DeletePlace(ctx context.Context, id int64) error {
	return s.places.DeletePlace(ctx, id)
}

func validatePlace(p domain.Place) (domain.Place, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Type = strings.TrimSpace(p.Type)
	p.Address = strings.TrimSpace(p.Address)
	p.WifiQuality = strings.TrimSpace(p.WifiQuality)
	p.Contact = strings.TrimSpace(p.Contact)
	p.Description = strings.TrimSpace(p.Description)

	if p.Name == "" || p.Type == "" || p.Address == "" || p.WifiQuality == "" || p.Contact == "" {
		return domain.Place{}, fmt.Errorf("%w: name, type, address, wifi quality and contact are required", domain.ErrInvalidInput)
	}
	hours, err := domain.NormalizeWorkHours(p.WorkHours)
	if err != nil {
		return domain.Place{}, err
	}
	p.WorkHours = hours
	return p, nil
}
