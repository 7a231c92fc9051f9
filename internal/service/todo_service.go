package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/cache"
	dom "github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/domain"
	"github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

// TodoService owns the task-item collection. Every operation is scoped to a
// verified owner id; an id belonging to another user is indistinguishable
// from a missing one.
type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

// Create sanitizes the title (trim, HTML-escape, length check on the escaped
// text) and persists a new item with done=false.
func (s *TodoService) Create(ctx context.Context, userID int64, rawTitle string) (dom.Todo, error) {
	title, err := sanitizeTitle(rawTitle)
	if err != nil {
		return dom.Todo{}, err
	}
	t, err := s.repo.Create(ctx, userID, title)
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// List returns the owner's items ascending by id.
func (s *TodoService) List(ctx context.Context, userID int64) ([]dom.Todo, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.repo.List(ctx, userID)
}

// Toggle flips the item's done flag. The repo does the flip atomically, so
// two concurrent toggles serialize instead of losing an update.
func (s *TodoService) Toggle(ctx context.Context, userID, id int64) (dom.Todo, error) {
	t, err := s.repo.Toggle(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// Delete removes the item permanently.
func (s *TodoService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *TodoService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
