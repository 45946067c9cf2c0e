package repository

import (
	"context"

	"github.com/bookreview/review-server-go/internal/database"
	"github.com/bookreview/review-server-go/internal/model"
)

const bookColumns = `id, title, author, genre, year, description, content, cover_url, created_at, deleted_at`

type BookRepository interface {
	FindAllActive(ctx context.Context) ([]model.BookSummary, error)
	FindAll(ctx context.Context) ([]model.Book, error)
	FindByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, params model.CreateBookParams) (int64, error)
	SoftDelete(ctx context.Context, id int64) error
}

type bookRepo struct {
	db database.DBTX
}

func NewBookRepository(db database.DBTX) BookRepository {
	return &bookRepo{db: db}
}

func (r *bookRepo) FindAllActive(ctx context.Context) ([]model.BookSummary, error) {
	books := []model.BookSummary{}
	err := r.db.SelectContext(ctx, &books, `
		SELECT id, title, author, genre, year, description, cover_url
		FROM books
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepo) FindAll(ctx context.Context) ([]model.Book, error) {
	books := []model.Book{}
	err := r.db.SelectContext(ctx, &books, `
		SELECT `+bookColumns+`
		FROM books
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return books, nil
}

// FindByID returns the book whether or not it has been soft-deleted.
func (r *bookRepo) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	var book model.Book
	err := r.db.GetContext(ctx, &book, `
		SELECT `+bookColumns+`
		FROM books
		WHERE id = $1
	`, id)
	return HandleNotFound(&book, err)
}

func (r *bookRepo) Create(ctx context.Context, params model.CreateBookParams) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, `
		INSERT INTO books (title, author, genre, year, description, content, cover_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, params.Title, params.Author, params.Genre, params.Year, params.Description, params.Content, params.CoverURL)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *bookRepo) SoftDelete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE books SET deleted_at = NOW() WHERE id = $1`, id)
	return err
}
