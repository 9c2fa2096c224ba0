package postgres

import (
	"context"
	"database/sql"
	"time"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `INSERT INTO reviews (user_id, author, rating, comment, approved, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, review.UserID, review.Author, review.Rating, review.Comment, review.Approved, time.Now()).Scan(&review.ID)
}

func (r *reviewRepository) ListApproved(ctx context.Context, limit int32) ([]domain.Review, error) {
	query := `SELECT id, user_id, author, rating, comment, approved, created_on FROM reviews
	          WHERE approved = true ORDER BY created_on DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReviews(rows)
}

func (r *reviewRepository) ListAll(ctx context.Context, page, pageSize int32) ([]domain.Review, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM reviews`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT id, user_id, author, rating, comment, approved, created_on FROM reviews
	          ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	reviews, err := collectReviews(rows)
	if err != nil {
		return nil, 0, err
	}
	return reviews, count, nil
}

func (r *reviewRepository) SetApproved(ctx context.Context, id int32, approved bool) error {
	_, err := r.db.ExecContext(ctx, `UPDATE reviews SET approved = $1 WHERE id = $2`, approved, id)
	return err
}

func (r *reviewRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return err
}

func collectReviews(rows *sql.Rows) ([]domain.Review, error) {
	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.UserID, &review.Author, &review.Rating, &review.Comment, &review.Approved, &review.CreatedOn); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
