package persistence

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"golden_traff/internal/domain"
	"golden_traff/internal/domain/entity"
	"golden_traff/pkg/errcodes"
)

// FileTaskStore — файловый вариант хранилища заданий, тот же цикл
// читай-меняй-пиши, что и у FileDealStore.
type FileTaskStore struct {
	path string
	mu   sync.Mutex
}

func NewFileTaskStore(path string) *FileTaskStore {
	return &FileTaskStore{path: path}
}

func (s *FileTaskStore) Create(_ context.Context, task *entity.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.read()
	if err != nil {
		return err
	}

	return s.write(append(tasks, *task))
}

func (s *FileTaskStore) List(_ context.Context) ([]entity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

func (s *FileTaskStore) GetByID(_ context.Context, id string) (*entity.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.read()
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}

	return nil, domain.NewError(errcodes.TaskNotFound, "task not found")
}

func (s *FileTaskStore) Update(_ context.Context, task *entity.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.read()
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID != task.ID {
			continue
		}

		tasks[i] = *task

		return s.write(tasks)
	}

	return domain.NewError(errcodes.TaskNotFound, "task not found")
}

func (s *FileTaskStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.read()
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}

		return s.write(append(tasks[:i], tasks[i+1:]...))
	}

	return domain.NewError(errcodes.TaskNotFound, "task not found")
}

func (s *FileTaskStore) read() ([]entity.Task, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []entity.Task{}, nil
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to read tasks file")
	}

	if len(raw) == 0 {
		return []entity.Task{}, nil
	}

	var tasks []entity.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to parse tasks file")
	}

	return tasks, nil
}

func (s *FileTaskStore) write(tasks []entity.Task) error {
	raw, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to marshal tasks")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to create data dir")
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to write tasks file")
	}

	return nil
}
