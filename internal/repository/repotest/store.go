// Package repotest provides in-memory repositories for handler and service
// tests. They enforce the same unique and foreign-key rules as the Postgres
// schema and return the same repository errors.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/baharkarakas/qa-backend/internal/models"
	"github.com/baharkarakas/qa-backend/internal/repository"
)

type Store struct {
	mu        sync.Mutex
	seq       int64
	users     map[int64]models.User
	questions map[int64]models.Question
	answers   map[int64]models.Answer
}

func NewStore() *Store {
	return &Store{
		users:     map[int64]models.User{},
		questions: map[int64]models.Question{},
		answers:   map[int64]models.Answer{},
	}
}

func (s *Store) Users() repository.Users         { return usersRepo{s} }
func (s *Store) Questions() repository.Questions { return questionsRepo{s} }
func (s *Store) Answers() repository.Answers     { return answersRepo{s} }

func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// uniqueUser reports the first unique field u collides on, ignoring itself.
func (s *Store) uniqueUser(u models.User) error {
	for id, other := range s.users {
		if id == u.ID {
			continue
		}
		if other.Email == u.Email {
			return &repository.DuplicateError{Field: "email"}
		}
		if other.Username == u.Username {
			return &repository.DuplicateError{Field: "username"}
		}
	}
	return nil
}

type usersRepo struct{ s *Store }

func (r usersRepo) Create(_ context.Context, email, username, hash string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u := models.User{Email: email, Username: username, PasswordHash: hash, CreatedAt: time.Now()}
	if err := r.s.uniqueUser(u); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	u.ID = r.s.nextID()
	r.s.users[u.ID] = u
	return u, nil
}

func (r usersRepo) List(context.Context) ([]models.UserSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.UserSummary{}
	for _, id := range sortedKeys(r.s.users) {
		u := r.s.users[id]
		out = append(out, models.UserSummary{ID: u.ID, Email: u.Email})
	}
	return out, nil
}

func (r usersRepo) GetByID(_ context.Context, id int64) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("get user: %w", repository.ErrNotFound)
	}
	return u, nil
}

func (r usersRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("get user by email: %w", repository.ErrNotFound)
}

func (r usersRepo) Update(_ context.Context, u models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.users[u.ID]
	if !ok {
		return nil
	}
	if err := r.s.uniqueUser(u); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	u.CreatedAt = cur.CreatedAt
	r.s.users[u.ID] = u
	return nil
}

func (r usersRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return fmt.Errorf("delete user: %w", repository.ErrNotFound)
	}
	for _, q := range r.s.questions {
		if q.UserID == id {
			return fmt.Errorf("delete user: %w", &repository.MissingRelationError{Field: "userId"})
		}
	}
	for _, a := range r.s.answers {
		if a.UserID == id {
			return fmt.Errorf("delete user: %w", &repository.MissingRelationError{Field: "userId"})
		}
	}
	delete(r.s.users, id)
	return nil
}

type questionsRepo struct{ s *Store }

func (r questionsRepo) Create(_ context.Context, q models.Question) (models.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[q.UserID]; !ok {
		return models.Question{}, fmt.Errorf("create question: %w", &repository.MissingRelationError{Field: "userId"})
	}
	q.ID = r.s.nextID()
	q.CreatedAt = time.Now()
	r.s.questions[q.ID] = q
	return q, nil
}

func (r questionsRepo) List(context.Context) ([]models.QuestionSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.QuestionSummary{}
	for _, id := range sortedKeys(r.s.questions) {
		q := r.s.questions[id]
		out = append(out, models.QuestionSummary{ID: q.ID, Title: q.Title, Description: q.Description})
	}
	return out, nil
}

func (r questionsRepo) GetByID(_ context.Context, id int64) (models.Question, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q, ok := r.s.questions[id]
	if !ok {
		return models.Question{}, fmt.Errorf("get question: %w", repository.ErrNotFound)
	}
	return q, nil
}

func (r questionsRepo) Update(_ context.Context, q models.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.questions[q.ID]
	if !ok {
		return nil
	}
	cur.Title, cur.Description = q.Title, q.Description
	r.s.questions[q.ID] = cur
	return nil
}

func (r questionsRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.questions[id]; !ok {
		return fmt.Errorf("delete question: %w", repository.ErrNotFound)
	}
	for _, a := range r.s.answers {
		if a.QuestionID == id {
			return fmt.Errorf("delete question: %w", &repository.MissingRelationError{Field: "questionId"})
		}
	}
	delete(r.s.questions, id)
	return nil
}

type answersRepo struct{ s *Store }

func (r answersRepo) Create(_ context.Context, a models.Answer) (models.Answer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.questions[a.QuestionID]; !ok {
		return models.Answer{}, fmt.Errorf("create answer: %w", &repository.MissingRelationError{Field: "questionId"})
	}
	if _, ok := r.s.users[a.UserID]; !ok {
		return models.Answer{}, fmt.Errorf("create answer: %w", &repository.MissingRelationError{Field: "userId"})
	}
	a.ID = r.s.nextID()
	a.CreatedAt = time.Now()
	r.s.answers[a.ID] = a
	return a, nil
}

func (r answersRepo) ListByQuestion(_ context.Context, questionID int64) ([]models.AnswerSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []models.AnswerSummary{}
	for _, id := range sortedKeys(r.s.answers) {
		a := r.s.answers[id]
		if a.QuestionID == questionID {
			out = append(out, models.AnswerSummary{ID: a.ID, Description: a.Description})
		}
	}
	return out, nil
}

func (r answersRepo) GetByID(_ context.Context, questionID, id int64) (models.Answer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.answers[id]
	if !ok || a.QuestionID != questionID {
		return models.Answer{}, fmt.Errorf("get answer: %w", repository.ErrNotFound)
	}
	return a, nil
}

func (r answersRepo) Update(_ context.Context, a models.Answer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.answers[a.ID]
	if !ok || cur.QuestionID != a.QuestionID {
		return nil
	}
	cur.Description = a.Description
	r.s.answers[a.ID] = cur
	return nil
}

func (r answersRepo) Delete(_ context.Context, questionID, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.answers[id]
	if !ok || a.QuestionID != questionID {
		return fmt.Errorf("delete answer: %w", repository.ErrNotFound)
	}
	delete(r.s.answers, id)
	return nil
}
