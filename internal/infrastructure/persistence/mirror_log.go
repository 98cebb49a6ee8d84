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

// FileMirrorLog — боковой журнал отправленных зеркальных сообщений.
// Bot API не отдаёт подтверждённые обновления повторно, поэтому именно этот
// файл служит авторитетным источником для восстановления.
type FileMirrorLog struct {
	path string
	mu   sync.Mutex
}

func NewFileMirrorLog(path string) *FileMirrorLog {
	return &FileMirrorLog{path: path}
}

func (l *FileMirrorLog) Append(_ context.Context, record entity.MirrorRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.read()
	if err != nil {
		return err
	}

	records = append(records, record)

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to marshal mirror log")
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to create data dir")
	}

	if err := os.WriteFile(l.path, raw, 0o644); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to write mirror log")
	}

	return nil
}

func (l *FileMirrorLog) List(_ context.Context) ([]entity.MirrorRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.read()
}

func (l *FileMirrorLog) read() ([]entity.MirrorRecord, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []entity.MirrorRecord{}, nil
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to read mirror log")
	}

	if len(raw) == 0 {
		return []entity.MirrorRecord{}, nil
	}

	var records []entity.MirrorRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to parse mirror log")
	}

	return records, nil
}
