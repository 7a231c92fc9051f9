package repo

import (
	"context"

	dom "github.com/Georgy29/TodoFlow-portfolio-upgraded/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepo provides todo persistence. Every method is scoped to an owner:
// an id that exists but belongs to another user behaves exactly like a
// missing row (pgx.ErrNoRows), so existence never leaks across owners.
type TodoRepo interface {
	Create(ctx context.Context, userID int64, title string) (dom.Todo, error)
	List(ctx context.Context, userID int64) ([]dom.Todo, error)
	Toggle(ctx context.Context, userID, id int64) (dom.Todo, error)
	Delete(ctx context.Context, userID, id int64) error
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, userID int64, title string) (dom.Todo, error) {
	query := `
		INSERT INTO todos (title, done, user_id)
		VALUES ($1, FALSE, $2)
		RETURNING id, title, done, user_id`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, title, userID).Scan(&t.ID, &t.Title, &t.Done, &t.UserID)
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context, userID int64) ([]dom.Todo, error) {
	query := `
		SELECT id, title, done, user_id
		FROM todos WHERE user_id = $1 ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Done, &t.UserID); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Toggle flips the done flag in a single UPDATE, so the read-modify-write is
// atomic: concurrent toggles on the same row serialize on the row lock and
// each applies exactly one flip.
func (r *PGTodoRepo) Toggle(ctx context.Context, userID, id int64) (dom.Todo, error) {
	query := `
		UPDATE todos SET done = NOT done
		WHERE id = $1 AND user_id = $2
		RETURNING id, title, done, user_id`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, userID).Scan(&t.ID, &t.Title, &t.Done, &t.UserID)
	return t, err
}

func (r *PGTodoRepo) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
