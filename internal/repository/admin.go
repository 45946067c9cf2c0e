package repository

import (
	"context"

	"github.com/bookreview/review-server-go/internal/database"
	"github.com/bookreview/review-server-go/internal/model"
)

type AdminSessionRepository interface {
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.AdminSession, error)
	Create(ctx context.Context, params model.CreateAdminSessionParams) (*model.AdminSession, error)
	DeleteExpired(ctx context.Context) (int64, error)
}

type adminSessionRepo struct {
	db database.DBTX
}

func NewAdminSessionRepository(db database.DBTX) AdminSessionRepository {
	return &adminSessionRepo{db: db}
}

// FindByTokenHash returns the session regardless of expiry; callers decide
// whether it is still usable.
func (r *adminSessionRepo) FindByTokenHash(ctx context.Context, tokenHash string) (*model.AdminSession, error) {
	var session model.AdminSession
	err := r.db.GetContext(ctx, &session, `
		SELECT id, session_token, expires_at, created_at
		FROM admin_sessions
		WHERE session_token = $1
	`, tokenHash)
	return HandleNotFound(&session, err)
}

func (r *adminSessionRepo) Create(ctx context.Context, params model.CreateAdminSessionParams) (*model.AdminSession, error) {
	var session model.AdminSession
	err := r.db.GetContext(ctx, &session, `
		INSERT INTO admin_sessions (session_token, expires_at)
		VALUES ($1, $2)
		RETURNING id, session_token, expires_at, created_at
	`, params.TokenHash, params.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *adminSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
