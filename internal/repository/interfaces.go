package repository

import (
	"context"

	"task-manager-api/internal/entity"
)

// ITaskRepository - interface for TaskRepository
type ITaskRepository interface {
	Create(ctx context.Context, title string, status entity.TaskStatus) (*entity.Task, error)
	GetByTaskId(ctx context.Context, taskId int64) (*entity.Task, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (*entity.Task, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]entity.Task, error)
}
