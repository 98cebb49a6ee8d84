package server

import (
	"context"
	"fmt"
	"net/http"

	"golden_traff/internal/domain/entity"
	service "golden_traff/internal/domain/service/task"
	"golden_traff/pkg/httpx/reply"
	"golden_traff/pkg/httpx/req"
	"golden_traff/pkg/logx"
	"golden_traff/pkg/rest"
)

type taskService interface {
	Create(ctx context.Context, params service.CreateTaskParams) (*entity.Task, error)
	List(ctx context.Context) ([]entity.Task, error)
	ToggleCompletion(ctx context.Context, id, userID string) (*entity.Task, error)
	Delete(ctx context.Context, id string, isAdmin bool) error
}

type TaskServer struct {
	taskService taskService
}

func NewTaskServer(taskService taskService) TaskServer {
	return TaskServer{
		taskService: taskService,
	}
}

func (s TaskServer) getTasks(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	tasks, err := s.taskService.List(ctx)
	if err != nil {
		logger(ctx).Error("taskService.List", logx.Error(err))
		reply.JSON(ctx, w, http.StatusOK, []rest.Task{})

		return nil
	}

	restTasks := make([]rest.Task, 0, len(tasks))
	for _, task := range tasks {
		restTasks = append(restTasks, newRESTTask(task))
	}

	reply.JSON(ctx, w, http.StatusOK, restTasks)

	return nil
}

func (s TaskServer) postTask(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateTaskRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	task, err := s.taskService.Create(ctx, service.CreateTaskParams{
		Title:       request.Title,
		Description: request.Description,
		Reward:      request.Reward,
		IsAdmin:     request.IsAdmin,
	})
	if err != nil {
		return fmt.Errorf("taskService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTTask(*task))

	return nil
}

func (s TaskServer) patchTask(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ToggleTaskRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	task, err := s.taskService.ToggleCompletion(ctx, r.PathValue("id"), request.UserID)
	if err != nil {
		return fmt.Errorf("taskService.ToggleCompletion: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTTask(*task))

	return nil
}

func (s TaskServer) deleteTask(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	isAdmin := r.URL.Query().Get("isAdmin") == "true"

	if err := s.taskService.Delete(ctx, r.PathValue("id"), isAdmin); err != nil {
		return fmt.Errorf("taskService.Delete: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.DeleteDealResponse{OK: true})

	return nil
}
