package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"golden_traff/internal/domain"
	"golden_traff/internal/domain/entity"
	"golden_traff/pkg/errcodes"
)

type TaskRepository struct {
	db *sqlx.DB
}

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *entity.Task) error {
	schema, err := fromTask(task)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to marshal completed_by")
	}

	query := `
		INSERT INTO tasks (id, title, description, reward, created_at, completed_by)
		VALUES (:id, :title, :description, :reward, :created_at, :completed_by)`

	if _, err := r.db.NamedExecContext(ctx, query, schema); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert task")
	}

	return nil
}

func (r *TaskRepository) List(ctx context.Context) ([]entity.Task, error) {
	query := `
		SELECT id, title, description, reward, created_at, completed_by
		FROM tasks
		ORDER BY created_at DESC`

	var schemas []taskSchema
	if err := r.db.SelectContext(ctx, &schemas, query); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list tasks")
	}

	tasks := make([]entity.Task, 0, len(schemas))
	for _, s := range schemas {
		task, err := s.toDomain()
		if err != nil {
			return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to convert task")
		}
		tasks = append(tasks, *task)
	}

	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	query := `
		SELECT id, title, description, reward, created_at, completed_by
		FROM tasks
		WHERE id = $1`

	var schema taskSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.TaskNotFound, "task not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get task")
	}

	return schema.toDomain()
}

// Update перезаписывает задание целиком, побеждает последний писатель.
func (r *TaskRepository) Update(ctx context.Context, task *entity.Task) error {
	schema, err := fromTask(task)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to marshal completed_by")
	}

	query := `
		UPDATE tasks SET
			title = :title,
			description = :description,
			reward = :reward,
			completed_by = :completed_by
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, schema)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to update task")
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.NewError(errcodes.TaskNotFound, "task not found")
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to delete task")
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return domain.NewError(errcodes.TaskNotFound, "task not found")
	}

	return nil
}
