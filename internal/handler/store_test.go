package handler

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bookreview/review-server-go/internal/middleware"
	"github.com/bookreview/review-server-go/internal/model"
	"github.com/bookreview/review-server-go/internal/service"
)

const testAdminPassword = "open-sesame"

// memoryStore backs all three repositories with maps so handler tests can
// observe what a request actually changed.
type memoryStore struct {
	mu       sync.Mutex
	clock    time.Time
	nextID   int64
	books    map[int64]*model.Book
	reviews  map[int64]*model.Review
	sessions map[string]*model.AdminSession
	failWith error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		books:    map[int64]*model.Book{},
		reviews:  map[int64]*model.Review{},
		sessions: map[string]*model.AdminSession{},
	}
}

func (s *memoryStore) tick() (int64, time.Time) {
	s.nextID++
	s.clock = s.clock.Add(time.Second)
	return s.nextID, s.clock
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func (s *memoryStore) expireSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, session := range s.sessions {
		session.ExpiresAt = time.Now().Add(-time.Minute)
	}
}

type bookStore struct{ *memoryStore }

func (s bookStore) sortedBooks() []*model.Book {
	books := make([]*model.Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].CreatedAt.After(books[j].CreatedAt) })
	return books
}

func (s bookStore) FindAllActive(ctx context.Context) ([]model.BookSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	result := []model.BookSummary{}
	for _, b := range s.sortedBooks() {
		if b.DeletedAt != nil {
			continue
		}
		result = append(result, model.BookSummary{
			ID: b.ID, Title: b.Title, Author: b.Author, Genre: b.Genre,
			Year: b.Year, Description: b.Description, CoverURL: b.CoverURL,
		})
	}
	return result, nil
}

func (s bookStore) FindAll(ctx context.Context) ([]model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []model.Book{}
	for _, b := range s.sortedBooks() {
		result = append(result, *b)
	}
	return result, nil
}

func (s bookStore) FindByID(ctx context.Context, id int64) (*model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books[id]
	if !ok {
		return nil, nil
	}
	book := *b
	return &book, nil
}

func (s bookStore) Create(ctx context.Context, params model.CreateBookParams) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, now := s.tick()
	s.books[id] = &model.Book{
		ID:          id,
		Title:       params.Title,
		Author:      params.Author,
		Genre:       params.Genre,
		Year:        params.Year,
		Description: optionalString(params.Description),
		Content:     params.Content,
		CoverURL:    optionalString(params.CoverURL),
		CreatedAt:   now,
	}
	return id, nil
}

func (s bookStore) SoftDelete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.books[id]; ok {
		now := s.clock
		b.DeletedAt = &now
	}
	return nil
}

type reviewStore struct{ *memoryStore }

func (s reviewStore) sortedReviews() []*model.Review {
	reviews := make([]*model.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		reviews = append(reviews, r)
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	return reviews
}

func (s reviewStore) Find(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []model.Review{}
	for _, r := range s.sortedReviews() {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.Type != "" && r.Type != filter.Type {
			continue
		}
		if filter.BookID != nil && (r.BookID == nil || *r.BookID != *filter.BookID) {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (s reviewStore) FindAllWithBookTitle(ctx context.Context) ([]model.AdminReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []model.AdminReview{}
	for _, r := range s.sortedReviews() {
		row := model.AdminReview{Review: *r}
		if r.BookID != nil {
			if b, ok := s.books[*r.BookID]; ok {
				title := b.Title
				row.BookTitle = &title
			}
		}
		result = append(result, row)
	}
	return result, nil
}

func (s reviewStore) Create(ctx context.Context, params model.CreateReviewParams) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, now := s.tick()
	s.reviews[id] = &model.Review{
		ID:         id,
		Type:       params.Type,
		BookID:     params.BookID,
		AuthorName: params.AuthorName,
		Rating:     params.Rating,
		Content:    params.Content,
		Status:     model.ReviewStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return id, nil
}

func (s reviewStore) UpdateStatus(ctx context.Context, id int64, status model.ReviewStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.reviews[id]; ok {
		r.Status = status
		r.UpdatedAt = s.clock
	}
	return nil
}

type sessionStore struct{ *memoryStore }

func (s sessionStore) FindByTokenHash(ctx context.Context, tokenHash string) (*model.AdminSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[tokenHash]
	if !ok {
		return nil, nil
	}
	found := *session
	return &found, nil
}

func (s sessionStore) Create(ctx context.Context, params model.CreateAdminSessionParams) (*model.AdminSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, now := s.tick()
	session := &model.AdminSession{
		ID:           id,
		SessionToken: params.TokenHash,
		ExpiresAt:    params.ExpiresAt,
		CreatedAt:    now,
	}
	s.sessions[params.TokenHash] = session
	return session, nil
}

func (s sessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for hash, session := range s.sessions {
		if session.Expired(time.Now()) {
			delete(s.sessions, hash)
			n++
		}
	}
	return n, nil
}

// newTestRouter mounts the handlers the same way the server does.
func newTestRouter(store *memoryStore) http.Handler {
	books := bookStore{store}
	reviews := reviewStore{store}
	sessions := sessionStore{store}

	adminService := service.NewAdminService(sessions, reviews, books, testAdminPassword, "test-secret")
	sessionMiddleware := middleware.NewAdminSessionMiddleware(adminService)

	r := chi.NewRouter()
	r.Mount("/books", NewBookHandler(service.NewBookService(books)).Routes())
	r.Mount("/reviews", NewReviewHandler(service.NewReviewService(reviews)).Routes())
	r.Mount("/admin", NewAdminHandler(adminService, sessionMiddleware.Handler).Routes())
	return r
}
