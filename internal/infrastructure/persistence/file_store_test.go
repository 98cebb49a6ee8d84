package persistence_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"golden_traff/internal/domain"
	"golden_traff/internal/domain/entity"
	"golden_traff/internal/domain/value"
	"golden_traff/internal/infrastructure/persistence"
	"golden_traff/pkg/errcodes"
)

func TestFileDealStore(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := persistence.NewFileDealStore(filepath.Join(t.TempDir(), "deals.json"))

	// Отсутствующий файл — пустой список, не ошибка.
	deals, err := store.List(ctx)
	rq.NoError(err)
	rq.Empty(deals)

	deal := entity.Deal{
		ID:       "d1",
		Username: "@seller",
		Amount:   9500,
		Date:     time.Now().Truncate(time.Second),
		Status:   value.DealStatusPending,
	}
	rq.NoError(store.Create(ctx, &deal))

	got, err := store.GetByID(ctx, "d1")
	rq.NoError(err)
	rq.Equal(deal.Username, got.Username)

	updated, err := store.UpdateStatus(ctx, "d1", value.DealStatusSuccess)
	rq.NoError(err)
	rq.Equal(value.DealStatusSuccess, updated.Status)

	messageID := 42
	rq.NoError(store.UpdateMirrorMessageID(ctx, "d1", &messageID))

	got, err = store.GetByID(ctx, "d1")
	rq.NoError(err)
	rq.NotNil(got.MirrorMessageID)
	rq.Equal(42, *got.MirrorMessageID)

	rq.NoError(store.Delete(ctx, "d1"))

	deals, err = store.List(ctx)
	rq.NoError(err)
	rq.Empty(deals)
}

func TestFileDealStoreNotFound(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := persistence.NewFileDealStore(filepath.Join(t.TempDir(), "deals.json"))

	_, err := store.GetByID(ctx, "missing")
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.DealNotFound, code)

	rq.Error(store.Delete(ctx, "missing"))

	_, err = store.UpdateStatus(ctx, "missing", value.DealStatusFailed)
	rq.Error(err)
}

func TestFileTaskStore(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := persistence.NewFileTaskStore(filepath.Join(t.TempDir(), "tasks.json"))

	task := entity.Task{
		ID:          "t1",
		Title:       "invite",
		Description: "invite a friend",
		Reward:      300,
		CreatedAt:   time.Now().Truncate(time.Second),
		CompletedBy: []string{},
	}
	rq.NoError(store.Create(ctx, &task))

	got, err := store.GetByID(ctx, "t1")
	rq.NoError(err)
	rq.Equal("invite", got.Title)

	got.ToggleCompletion("u1")
	rq.NoError(store.Update(ctx, got))

	got, err = store.GetByID(ctx, "t1")
	rq.NoError(err)
	rq.Equal([]string{"u1"}, got.CompletedBy)

	rq.NoError(store.Delete(ctx, "t1"))

	tasks, err := store.List(ctx)
	rq.NoError(err)
	rq.Empty(tasks)
}

func TestFileMirrorLog(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	log := persistence.NewFileMirrorLog(filepath.Join(t.TempDir(), "mirror_log.json"))

	records, err := log.List(ctx)
	rq.NoError(err)
	rq.Empty(records)

	rq.NoError(log.Append(ctx, entity.MirrorRecord{MessageID: 1, Text: "first", SentAt: time.Now()}))
	rq.NoError(log.Append(ctx, entity.MirrorRecord{MessageID: 2, Text: "second", SentAt: time.Now()}))

	records, err = log.List(ctx)
	rq.NoError(err)
	rq.Len(records, 2)
	rq.Equal("first", records[0].Text)
	rq.Equal(2, records[1].MessageID)
}
