package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/xid"

	"golden_traff/internal/domain"
	"golden_traff/internal/domain/entity"
	"golden_traff/pkg/errcodes"
)

type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	List(ctx context.Context) ([]entity.Task, error)
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id string) error
}

// TaskService — задания командного варианта. Блокировок нет, побеждает
// последний писатель.
type TaskService struct {
	taskRepo TaskRepository
}

func NewTaskService(taskRepo TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

type CreateTaskParams struct {
	Title       string
	Description string
	Reward      int64
	IsAdmin     bool
}

func (s *TaskService) Create(ctx context.Context, params CreateTaskParams) (*entity.Task, error) {
	if !params.IsAdmin {
		return nil, domain.NewError(errcodes.Forbidden, "only admin can create tasks")
	}

	if strings.TrimSpace(params.Title) == "" ||
		strings.TrimSpace(params.Description) == "" ||
		params.Reward <= 0 {
		return nil, domain.NewError(errcodes.InvalidTaskPayload, "title, description and reward are required")
	}

	task := entity.Task{
		ID:          xid.New().String(),
		Title:       params.Title,
		Description: params.Description,
		Reward:      params.Reward,
		CreatedAt:   time.Now(),
		CompletedBy: []string{},
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, fmt.Errorf("taskRepo.Create: %w", err)
	}

	return &task, nil
}

func (s *TaskService) List(ctx context.Context) ([]entity.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("taskRepo.List: %w", err)
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	return tasks, nil
}

// ToggleCompletion идемпотентно отмечает или снимает выполнение задания
// пользователем.
func (s *TaskService) ToggleCompletion(ctx context.Context, id, userID string) (*entity.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("taskRepo.GetByID: %w", err)
	}

	task.ToggleCompletion(userID)

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("taskRepo.Update: %w", err)
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string, isAdmin bool) error {
	if !isAdmin {
		return domain.NewError(errcodes.Forbidden, "only admin can delete tasks")
	}

	if _, err := s.taskRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("taskRepo.GetByID: %w", err)
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("taskRepo.Delete: %w", err)
	}

	return nil
}
