package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"task-manager-api/internal/entity"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) Create(ctx context.Context, title string, status entity.TaskStatus) (*entity.Task, error) {

	query := `
	INSERT INTO tasks (task_title, task_status, created_at)
	VALUES (?, ?, ?)
	`

	createdAt := time.Now().Format(time.RFC3339)

	result, err := r.db.ExecContext(ctx, query, title, status, createdAt)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	// Read the row back so the caller gets exactly what was stored
	createdTask, err := r.GetByTaskId(ctx, id)
	if err != nil {
		return nil, err
	}
	if createdTask == nil {
		return nil, entity.ErrTaskReadBack
	}

	return createdTask, nil
}

func (r *TaskRepository) GetByTaskId(ctx context.Context, taskId int64) (*entity.Task, error) {

	query := `
	SELECT task_id, task_title, task_status, created_at
	FROM tasks
	WHERE task_id = ?
	`
	var task entity.Task

	err := r.db.QueryRowContext(ctx, query, taskId).Scan(
		&task.ID,
		&task.Title,
		&task.Status,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

// Update applies the given column values and returns the refreshed row.
func (r *TaskRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (*entity.Task, error) {
	// Build the SET clause dynamically from the provided fields
	setClause := ""
	args := []interface{}{}

	for field, value := range updates {
		if field != "task_title" && field != "task_status" {
			continue // task_id and created_at are immutable
		}
		if len(args) > 0 {
			setClause += ", "
		}
		setClause += field + " = ?"
		args = append(args, value)
	}

	if len(args) == 0 {
		return nil, entity.ErrNoFieldsToUpdate
	}

	query := `UPDATE tasks SET ` + setClause + ` WHERE task_id = ?`
	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}

	updatedTask, err := r.GetByTaskId(ctx, id)
	if err != nil {
		return nil, err
	}
	if updatedTask == nil {
		return nil, entity.ErrTaskReadBack
	}

	return updatedTask, nil
}

// Delete removes the task row if it exists.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE task_id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// List returns every task in creation order.
func (r *TaskRepository) List(ctx context.Context) ([]entity.Task, error) {
	query := `
	SELECT task_id, task_title, task_status, created_at
	FROM tasks
	ORDER BY task_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Non-nil so an empty store still serializes as []
	tasks := make([]entity.Task, 0)
	for rows.Next() {
		var task entity.Task
		err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Status,
			&task.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
