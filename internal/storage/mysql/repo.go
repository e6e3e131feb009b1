package mysql

import (
	"context"
	"database/sql"

	"github.com/pingvi095/wifi/internal/domain"
)

// Repo implements the place, review and admin repositories over a single
// *sql.DB. Driver errors surface unwrapped; sql.ErrNoRows maps to
// domain.ErrNotFound.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) ListPlaces(ctx context.Context, c domain.FilterCriteria) ([]domain.Place, error) {
	query, args := buildPlacesQuery(c)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) GetPlace(ctx context.Context, id int64) (domain.Place, error) {
	p, err := scanPlace(r.db.QueryRowContext(ctx, getPlaceSQL, id))
	if err == sql.ErrNoRows {
		return domain.Place{}, domain.ErrNotFound
	}
	return p, err
}

type rowScanner interface{ Scan(dest ...any) error }

func scanPlace(row rowScanner) (domain.Place, error) {
	var (
		p      domain.Place
		rating sql.NullFloat64
	)
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Type,
		&p.Address,
		&p.WifiQuality,
		&p.WorkHours,
		&p.Description,
		&p.PhotoPath,
		&p.Contact,
		&rating,
	)
	if err != nil {
		return domain.Place{}, err
	}
	if rating.Valid {
		p.Rating = rating.Float64
	}
	return p, nil
}

func (r *Repo) CreatePlace(ctx context.Context, p domain.Place) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertPlaceSQL,
		p.Name, p.Type, p.Address, p.WifiQuality, p.WorkHours,
		p.Description, p.PhotoPath, p.Contact,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) UpdatePlace(ctx context.Context, p domain.Place) error {
	_, err := r.db.ExecContext(ctx, updatePlaceSQL,
		p.Name, p.Type, p.Address, p.WifiQuality, p.WorkHours,
		p.Description, p.PhotoPath, p.Contact,
		p.ID,
	)
	return err
}

func (r *Repo) DeletePlace(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deletePlaceSQL, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) UpdateRating(ctx context.Context, placeID int64, rating float64) error {
	_, err := r.db.ExecContext(ctx, updateRatingSQL, rating, placeID)
	return err
}

func (r *Repo) CreateReview(ctx context.Context, rv domain.Review) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertReviewSQL,
		rv.PlaceID, rv.Author, rv.Stars, rv.Comment,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) ListReviews(ctx context.Context, placeID int64) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, placeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var (
			rv        domain.Review
			author    sql.NullString
			comment   sql.NullString
			createdAt sql.NullTime
		)
		if err := rows.Scan(&rv.ID, &rv.PlaceID, &author, &rv.Stars, &comment, &createdAt); err != nil {
			return nil, err
		}
		rv.Author = author.String
		rv.Comment = comment.String
		if createdAt.Valid {
			rv.CreatedAt = createdAt.Time
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) AverageStars(ctx context.Context, placeID int64) (float64, error) {
	var avg sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, avgStarsSQL, placeID).Scan(&avg); err != nil {
		return 0, err
	}
	if !avg.Valid {
		// no reviews left for the place; the derived rating falls back to zero
		return 0, nil
	}
	return avg.Float64, nil
}

func (r *Repo) CreateAdmin(ctx context.Context, username, passwordHash string) error {
	_, err := r.db.ExecContext(ctx, insertAdminSQL, username, passwordHash)
	return err
}

func (r *Repo) GetAdminHash(ctx context.Context, username string) (string, error) {
	var hash string
	err := r.db.QueryRowContext(ctx, getAdminHashSQL, username).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", domain.ErrNotFound
	}
	return hash, err
}
