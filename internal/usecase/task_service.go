package usecase

import (
	"context"
	"strings"

	"task-manager-api/internal/entity"
	"task-manager-api/internal/repository"
)

type TaskService struct {
	taskRepo repository.ITaskRepository
}

func NewTaskService(taskRepo repository.ITaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, req *entity.CreateTaskRequest) (*entity.Task, error) {
	// 1. Title is required and must survive trimming
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, entity.ErrInvalidTitle
	}

	// 2. Status defaults to pending when omitted
	status := entity.StatusPending
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, entity.ErrInvalidStatus
		}
		status = *req.Status
	}

	// 3. Create the task
	return s.taskRepo.Create(ctx, title, status)
}

func (s *TaskService) GetTask(ctx context.Context, taskID int64) (*entity.Task, error) {
	task, err := s.taskRepo.GetByTaskId(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, entity.ErrTaskNotFound
	}

	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID int64, req *entity.UpdateTaskRequest) (*entity.Task, error) {
	// 1. Keep only recognized, usable fields; invalid values are
	// dropped rather than rejected
	updates := make(map[string]interface{})

	if req.Title != nil {
		if title := strings.TrimSpace(*req.Title); title != "" {
			updates["task_title"] = title
		}
	}

	if req.Status != nil && req.Status.IsValid() {
		updates["task_status"] = *req.Status
	}

	// 2. Nothing valid to apply, reject before touching the store
	if len(updates) == 0 {
		return nil, entity.ErrNoFieldsToUpdate
	}

	// 3. The task must exist
	task, err := s.taskRepo.GetByTaskId(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, entity.ErrTaskNotFound
	}

	// 4. Apply and return the refreshed row
	return s.taskRepo.Update(ctx, taskID, updates)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID int64) error {
	// 1. The task must exist
	task, err := s.taskRepo.GetByTaskId(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return entity.ErrTaskNotFound
	}

	// 2. Delete the task
	return s.taskRepo.Delete(ctx, taskID)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]entity.Task, error) {
	return s.taskRepo.List(ctx)
}
