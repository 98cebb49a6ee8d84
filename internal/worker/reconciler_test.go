package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"golden_traff/internal/domain/entity"
	"golden_traff/internal/domain/value"
	"golden_traff/internal/infrastructure/mirror"
	"golden_traff/internal/worker"
)

type memDealRepo struct {
	deals []entity.Deal
}

func (r *memDealRepo) List(context.Context) ([]entity.Deal, error) {
	return append([]entity.Deal(nil), r.deals...), nil
}

func (r *memDealRepo) Create(_ context.Context, deal *entity.Deal) error {
	r.deals = append(r.deals, *deal)
	return nil
}

type memMirrorLog struct {
	records []entity.MirrorRecord
}

func (l *memMirrorLog) List(context.Context) ([]entity.MirrorRecord, error) {
	return append([]entity.MirrorRecord(nil), l.records...), nil
}

func TestReconcilerRestoresDeals(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	now := time.Now()

	log := &memMirrorLog{records: []entity.MirrorRecord{
		{MessageID: 1, Text: mirror.CreatedText("@alice"), SentAt: now.Add(-time.Hour)},
		{MessageID: 2, Text: mirror.StatusText("@alice", value.DealStatusSuccess), SentAt: now.Add(-30 * time.Minute)},
		{MessageID: 1, Text: mirror.CreatedText("@alice"), SentAt: now.Add(-time.Hour)}, // дубль сообщения
		{MessageID: 3, Text: "обычное сообщение в чате", SentAt: now},
	}}

	repo := &memDealRepo{}
	rec := worker.NewReconciler(repo, log, nil, 9500)

	report, err := rec.Run(ctx)
	rq.NoError(err)

	rq.Equal(4, report.Scanned)
	rq.Equal(2, report.Matched)
	rq.Equal(2, report.Restored)
	rq.Equal(1, report.Duplicates)

	rq.Len(repo.deals, 2)

	for _, deal := range repo.deals {
		rq.True(deal.Restored)
		rq.EqualValues(9500, deal.Amount)
		rq.Equal(value.Username("@alice"), deal.Username)
		rq.NotEmpty(deal.ID)
	}
}

func TestReconcilerIdempotent(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	log := &memMirrorLog{records: []entity.MirrorRecord{
		{MessageID: 1, Text: mirror.CreatedText("@bob"), SentAt: time.Now()},
	}}

	repo := &memDealRepo{}
	rec := worker.NewReconciler(repo, log, nil, 9500)

	first, err := rec.Run(ctx)
	rq.NoError(err)
	rq.Equal(1, first.Restored)

	second, err := rec.Run(ctx)
	rq.NoError(err)
	rq.Equal(0, second.Restored)
	rq.Equal(1, second.Duplicates)

	rq.Len(repo.deals, 1)
}

func TestReconcilerSkipsKnownDeals(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	log := &memMirrorLog{records: []entity.MirrorRecord{
		{MessageID: 1, Text: mirror.CreatedText("@bob"), SentAt: time.Now()},
	}}

	repo := &memDealRepo{deals: []entity.Deal{
		{ID: "existing", Username: "@bob", Status: value.DealStatusPending},
	}}

	rec := worker.NewReconciler(repo, log, nil, 9500)

	report, err := rec.Run(ctx)
	rq.NoError(err)
	rq.Equal(1, report.Matched)
	rq.Equal(0, report.Restored)
	rq.Len(repo.deals, 1)
}

func TestReconcilerLastReport(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	rec := worker.NewReconciler(&memDealRepo{}, &memMirrorLog{}, nil, 9500)

	_, ok := rec.LastReport()
	rq.False(ok)

	_, err := rec.Run(ctx)
	rq.NoError(err)

	report, ok := rec.LastReport()
	rq.True(ok)
	rq.Equal(0, report.Scanned)
	rq.False(report.RanAt.IsZero())
}
