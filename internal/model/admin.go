package model

import (
	"time"
)

type AdminSession struct {
	ID           int64     `db:"id" json:"id"`
	SessionToken string    `db:"session_token" json:"-"`
	ExpiresAt    time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

func (s *AdminSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

type CreateAdminSessionParams struct {
	TokenHash string
	ExpiresAt time.Time
}
