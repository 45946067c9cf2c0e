package service

import (
	"context"
	"math"
	"strings"

	apperrors "github.com/bookreview/review-server-go/internal/errors"
	"github.com/bookreview/review-server-go/internal/model"
	"github.com/bookreview/review-server-go/internal/repository"
)

type ReviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

// CreateReviewInput has no status field: new reviews always start pending.
// Type takes any JSON value so a non-string type is a validation failure
// rather than a decode error.
type CreateReviewInput struct {
	Type       any      `json:"type"`
	BookID     *int64   `json:"book_id"`
	AuthorName string   `json:"author_name"`
	Rating     *float64 `json:"rating"`
	Content    string   `json:"content"`
}

type UpdateReviewStatusInput struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// List applies the public visibility rule: without an explicit status only
// approved reviews are returned.
func (s *ReviewService) List(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error) {
	if filter.Status == "" {
		filter.Status = model.ReviewStatusApproved
	}
	return s.reviewRepo.Find(ctx, filter)
}

// Create does not require book_id for book reviews.
func (s *ReviewService) Create(ctx context.Context, in CreateReviewInput) (int64, error) {
	rawType, isString := in.Type.(string)
	authorName := strings.TrimSpace(in.AuthorName)
	content := strings.TrimSpace(in.Content)

	if in.Type == nil || (isString && rawType == "") || authorName == "" || content == "" {
		return 0, apperrors.ValidationError("Review type, author name and text are required")
	}

	reviewType := model.ReviewType(rawType)
	if !isString || !reviewType.Valid() {
		return 0, apperrors.ValidationError("Invalid review type")
	}

	return s.reviewRepo.Create(ctx, model.CreateReviewParams{
		Type:       reviewType,
		BookID:     in.BookID,
		AuthorName: authorName,
		Rating:     roundRating(in.Rating),
		Content:    content,
	})
}

// roundRating stores fractional ratings the way an integer column would
// coerce them.
func roundRating(rating *float64) *int {
	if rating == nil {
		return nil
	}
	rounded := int(math.Round(*rating))
	return &rounded
}

// UpdateStatus stores whatever status the caller sends.
func (s *ReviewService) UpdateStatus(ctx context.Context, in UpdateReviewStatusInput) error {
	if in.ID == 0 || in.Status == "" {
		return apperrors.ValidationError("Review id and new status are required")
	}
	return s.reviewRepo.UpdateStatus(ctx, in.ID, model.ReviewStatus(in.Status))
}
