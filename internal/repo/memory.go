package repo

import (
	"context"
	"sync"
	"time"

	dom "github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory implementations of UserRepo and TodoRepo backing the test suites.
// They mirror the Postgres error surface: misses return pgx.ErrNoRows and a
// duplicate email returns a pgconn.PgError with code 23505, so the service
// layer is exercised against the same error values in both environments.

type MemoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]dom.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{nextID: 1, users: make(map[int64]dom.User)}
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *MemoryUserRepo) Create(_ context.Context, email, passwordHash string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	u := dom.User{
		ID:           r.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.users[u.ID] = u
	r.nextID++
	return u, nil
}

type MemoryTodoRepo struct {
	mu     sync.Mutex
	nextID int64
	todos  map[int64]dom.Todo
}

func NewMemoryTodoRepo() *MemoryTodoRepo {
	return &MemoryTodoRepo{nextID: 1, todos: make(map[int64]dom.Todo)}
}

func (r *MemoryTodoRepo) Create(_ context.Context, userID int64, title string) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := dom.Todo{ID: r.nextID, Title: title, Done: false, UserID: userID}
	r.todos[t.ID] = t
	r.nextID++
	return t, nil
}

func (r *MemoryTodoRepo) List(_ context.Context, userID int64) ([]dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []dom.Todo
	// IDs are assigned in creation order, so an ascending scan preserves it.
	for id := int64(1); id < r.nextID; id++ {
		if t, ok := r.todos[id]; ok && t.UserID == userID {
			list = append(list, t)
		}
	}
	return list, nil
}

// Toggle flips the done flag under the repo lock, matching the atomicity of
// the single-statement Postgres UPDATE.
func (r *MemoryTodoRepo) Toggle(_ context.Context, userID, id int64) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok || t.UserID != userID {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t.Done = !t.Done
	r.todos[id] = t
	return t, nil
}

func (r *MemoryTodoRepo) Delete(_ context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok || t.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(r.todos, id)
	return nil
}
