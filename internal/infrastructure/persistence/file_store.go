package persistence

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"golden_traff/internal/domain"
	"golden_traff/internal/domain/entity"
	"golden_traff/internal/domain/value"
	"golden_traff/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// FileDealStore — файловый вариант хранилища: pretty-printed JSON-массив
// сделок по фиксированному пути. Каждая операция — полный цикл
// читай-меняй-пиши; межпроцессных блокировок нет, внутри процесса доступ
// сериализует мьютекс.
type FileDealStore struct {
	path string
	mu   sync.Mutex
}

func NewFileDealStore(path string) *FileDealStore {
	return &FileDealStore{path: path}
}

func (s *FileDealStore) Create(_ context.Context, deal *entity.Deal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deals, err := s.read()
	if err != nil {
		return err
	}

	deals = append(deals, *deal)

	return s.write(deals)
}

func (s *FileDealStore) List(_ context.Context) ([]entity.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

func (s *FileDealStore) GetByID(_ context.Context, id string) (*entity.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deals, err := s.read()
	if err != nil {
		return nil, err
	}

	for i := range deals {
		if deals[i].ID == id {
			return &deals[i], nil
		}
	}

	return nil, domain.NewError(errcodes.DealNotFound, "deal not found")
}

func (s *FileDealStore) UpdateStatus(_ context.Context, id string, status value.DealStatus) (*entity.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deals, err := s.read()
	if err != nil {
		return nil, err
	}

	for i := range deals {
		if deals[i].ID != id {
			continue
		}

		deals[i].Status = status

		if err := s.write(deals); err != nil {
			return nil, err
		}

		return &deals[i], nil
	}

	return nil, domain.NewError(errcodes.DealNotFound, "deal not found")
}

func (s *FileDealStore) UpdateMirrorMessageID(_ context.Context, id string, messageID *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deals, err := s.read()
	if err != nil {
		return err
	}

	for i := range deals {
		if deals[i].ID != id {
			continue
		}

		deals[i].MirrorMessageID = messageID

		return s.write(deals)
	}

	return domain.NewError(errcodes.DealNotFound, "deal not found")
}

func (s *FileDealStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deals, err := s.read()
	if err != nil {
		return err
	}

	for i := range deals {
		if deals[i].ID != id {
			continue
		}

		return s.write(append(deals[:i], deals[i+1:]...))
	}

	return domain.NewError(errcodes.DealNotFound, "deal not found")
}

func (s *FileDealStore) read() ([]entity.Deal, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []entity.Deal{}, nil
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to read deals file")
	}

	if len(raw) == 0 {
		return []entity.Deal{}, nil
	}

	var deals []entity.Deal
	if err := json.Unmarshal(raw, &deals); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to parse deals file")
	}

	return deals, nil
}

func (s *FileDealStore) write(deals []entity.Deal) error {
	raw, err := json.MarshalIndent(deals, "", "  ")
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to marshal deals")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to create data dir")
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to write deals file")
	}

	return nil
}
