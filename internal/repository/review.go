package repository

import (
	"context"
	"strconv"

	"github.com/bookreview/review-server-go/internal/database"
	"github.com/bookreview/review-server-go/internal/model"
)

type ReviewRepository interface {
	Find(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error)
	FindAllWithBookTitle(ctx context.Context) ([]model.AdminReview, error)
	Create(ctx context.Context, params model.CreateReviewParams) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status model.ReviewStatus) error
}

type reviewRepo struct {
	db database.DBTX
}

func NewReviewRepository(db database.DBTX) ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Find(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error) {
	query := `
		SELECT id, type, book_id, author_name, rating, content, status, created_at, updated_at
		FROM reviews WHERE 1=1`
	args := []interface{}{}
	argIndex := 1

	if filter.Status != "" {
		query += ` AND status = $` + strconv.Itoa(argIndex)
		args = append(args, filter.Status)
		argIndex++
	}

	if filter.Type != "" {
		query += ` AND type = $` + strconv.Itoa(argIndex)
		args = append(args, filter.Type)
		argIndex++
	}

	if filter.BookID != nil {
		query += ` AND book_id = $` + strconv.Itoa(argIndex)
		args = append(args, *filter.BookID)
	}

	query += ` ORDER BY created_at DESC`

	reviews := []model.Review{}
	if err := r.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepo) FindAllWithBookTitle(ctx context.Context) ([]model.AdminReview, error) {
	reviews := []model.AdminReview{}
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT r.id, r.type, r.book_id, r.author_name, r.rating, r.content, r.status,
			r.created_at, r.updated_at, b.title AS book_title
		FROM reviews r
		LEFT JOIN books b ON r.book_id = b.id
		ORDER BY r.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Create always stores the review as pending.
func (r *reviewRepo) Create(ctx context.Context, params model.CreateReviewParams) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO reviews (type, book_id, author_name, rating, content, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, params.Type, params.BookID, params.AuthorName, params.Rating, params.Content, model.ReviewStatusPending)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *reviewRepo) UpdateStatus(ctx context.Context, id int64, status model.ReviewStatus) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE reviews SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, id)
	return err
}
