package model

import "time"

type Book struct {
	ID          int64      `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Author      string     `db:"author" json:"author"`
	Genre       string     `db:"genre" json:"genre"`
	Year        *int       `db:"year" json:"year"`
	Description *string    `db:"description" json:"description"`
	Content     string     `db:"content" json:"content"`
	CoverURL    *string    `db:"cover_url" json:"cover_url"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	DeletedAt   *time.Time `db:"deleted_at" json:"deleted_at"`
}

// BookSummary is the public listing view of a book, without its text.
type BookSummary struct {
	ID          int64   `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Author      string  `db:"author" json:"author"`
	Genre       string  `db:"genre" json:"genre"`
	Year        *int    `db:"year" json:"year"`
	Description *string `db:"description" json:"description"`
	CoverURL    *string `db:"cover_url" json:"cover_url"`
}

type CreateBookParams struct {
	Title       string
	Author      string
	Genre       string
	Year        *int
	Description string
	Content     string
	CoverURL    string
}
