package service

import (
	"context"
	"time"

	"github.com/bookreview/review-server-go/internal/config"
	apperrors "github.com/bookreview/review-server-go/internal/errors"
	"github.com/bookreview/review-server-go/internal/model"
	"github.com/bookreview/review-server-go/internal/repository"
	"github.com/bookreview/review-server-go/internal/util"
)

type AdminService struct {
	sessionRepo   repository.AdminSessionRepository
	reviewRepo    repository.ReviewRepository
	bookRepo      repository.BookRepository
	adminPassword string
	sessionSecret string
	now           func() time.Time
}

func NewAdminService(
	sessionRepo repository.AdminSessionRepository,
	reviewRepo repository.ReviewRepository,
	bookRepo repository.BookRepository,
	adminPassword, sessionSecret string,
) *AdminService {
	return &AdminService{
		sessionRepo:   sessionRepo,
		reviewRepo:    reviewRepo,
		bookRepo:      bookRepo,
		adminPassword: adminPassword,
		sessionSecret: sessionSecret,
		now:           time.Now,
	}
}

// DeleteItemInput accepts any JSON value for Type; anything that is not
// "review" or "book" is rejected as an invalid item type.
type DeleteItemInput struct {
	Type any   `json:"type"`
	ID   int64 `json:"id"`
}

// Login returns a fresh session token, or an Unauthorized error when the
// password does not match. No session row is written on failure.
func (s *AdminService) Login(ctx context.Context, password string) (string, error) {
	if password == "" || !util.ConstantTimeEqual(password, s.adminPassword) {
		return "", apperrors.Unauthorized("Invalid password")
	}

	token, err := util.GenerateToken()
	if err != nil {
		return "", err
	}

	_, err = s.sessionRepo.Create(ctx, model.CreateAdminSessionParams{
		TokenHash: s.hashToken(token),
		ExpiresAt: s.now().Add(config.AdminSessionTTL),
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// ValidateSession resolves a bearer token to a live session.
func (s *AdminService) ValidateSession(ctx context.Context, token string) (*model.AdminSession, error) {
	if token == "" {
		return nil, apperrors.Unauthorized("Authorization required")
	}

	session, err := s.sessionRepo.FindByTokenHash(ctx, s.hashToken(token))
	if err != nil {
		return nil, err
	}
	if session == nil || session.Expired(s.now()) {
		return nil, apperrors.SessionExpired()
	}
	return session, nil
}

func (s *AdminService) ListReviews(ctx context.Context) ([]model.AdminReview, error) {
	return s.reviewRepo.FindAllWithBookTitle(ctx)
}

func (s *AdminService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.bookRepo.FindAll(ctx)
}

// DeleteItem rejects a review or soft-deletes a book. Nothing is removed.
func (s *AdminService) DeleteItem(ctx context.Context, in DeleteItemInput) (model.ModerationTarget, error) {
	rawType, isString := in.Type.(string)
	if in.Type == nil || (isString && rawType == "") || in.ID == 0 {
		return "", apperrors.ValidationError("Item type and id are required")
	}

	target := model.ModerationTarget(rawType)
	switch target {
	case model.ModerationTargetReview:
		return target, s.reviewRepo.UpdateStatus(ctx, in.ID, model.ReviewStatusRejected)
	case model.ModerationTargetBook:
		return target, s.bookRepo.SoftDelete(ctx, in.ID)
	default:
		return "", apperrors.ValidationError("Invalid item type")
	}
}

func (s *AdminService) hashToken(token string) string {
	return util.HmacSHA256(s.sessionSecret, token)
}
