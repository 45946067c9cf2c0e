package service

import (
	"context"
	"strings"

	"github.com/bookreview/review-server-go/internal/config"
	apperrors "github.com/bookreview/review-server-go/internal/errors"
	"github.com/bookreview/review-server-go/internal/model"
	"github.com/bookreview/review-server-go/internal/repository"
)

type BookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) *BookService {
	return &BookService{bookRepo: bookRepo}
}

type CreateBookInput struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Year        *int   `json:"year"`
	Description string `json:"description"`
	Content     string `json:"content"`
	CoverURL    string `json:"cover_url"`
}

func (s *BookService) List(ctx context.Context) ([]model.BookSummary, error) {
	return s.bookRepo.FindAllActive(ctx)
}

func (s *BookService) Get(ctx context.Context, id int64) (*model.Book, error) {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperrors.NotFound("Book")
	}
	return book, nil
}

// Create validates input before touching the store and returns the new id.
func (s *BookService) Create(ctx context.Context, in CreateBookInput) (int64, error) {
	params := model.CreateBookParams{
		Title:       strings.TrimSpace(in.Title),
		Author:      strings.TrimSpace(in.Author),
		Genre:       strings.TrimSpace(in.Genre),
		Year:        in.Year,
		Description: strings.TrimSpace(in.Description),
		Content:     strings.TrimSpace(in.Content),
		CoverURL:    strings.TrimSpace(in.CoverURL),
	}

	if params.Title == "" || params.Author == "" || params.Content == "" {
		return 0, apperrors.ValidationError("Title, author and content are required")
	}

	if params.Genre == "" {
		params.Genre = config.DefaultGenre
	}

	return s.bookRepo.Create(ctx, params)
}
