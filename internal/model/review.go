package model

import "time"

type Review struct {
	ID         int64        `db:"id" json:"id"`
	Type       ReviewType   `db:"type" json:"type"`
	BookID     *int64       `db:"book_id" json:"book_id"`
	AuthorName string       `db:"author_name" json:"author_name"`
	Rating     *int         `db:"rating" json:"rating"`
	Content    string       `db:"content" json:"content"`
	Status     ReviewStatus `db:"status" json:"status"`
	CreatedAt  time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at" json:"updated_at"`
}

// AdminReview is a review joined with the title of the book it targets.
type AdminReview struct {
	Review
	BookTitle *string `db:"book_title" json:"book_title"`
}

type CreateReviewParams struct {
	Type       ReviewType
	BookID     *int64
	AuthorName string
	Rating     *int
	Content    string
}

// ReviewFilter narrows a review listing. Empty fields are not applied.
type ReviewFilter struct {
	Status ReviewStatus
	Type   ReviewType
	BookID *int64
}
