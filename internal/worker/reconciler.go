package worker

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"golden_traff/internal/domain/entity"
	"golden_traff/internal/domain/value"
	"golden_traff/internal/infrastructure/mirror"
	"golden_traff/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type DealRepository interface {
	List(ctx context.Context) ([]entity.Deal, error)
	Create(ctx context.Context, deal *entity.Deal) error
}

type MirrorLog interface {
	List(ctx context.Context) ([]entity.MirrorRecord, error)
}

type UpdatesSource interface {
	PendingUpdates(ctx context.Context) ([]entity.MirrorRecord, error)
}

// Report — итог одного прогона восстановления.
type Report struct {
	Scanned    int
	Matched    int
	Restored   int
	Duplicates int
	RanAt      time.Time
}

// Reconciler восстанавливает сделки из истории зеркальных сообщений.
// Это эвристический ремонт по текстовым шаблонам: он может спутать
// одновременные события одного хэндла и не имеет транзакционной связи с
// хранилищем. Его выводу нельзя доверять как первичному состоянию.
type Reconciler struct {
	dealRepo DealRepository
	log      MirrorLog
	updates  UpdatesSource
	amount   int64

	mu         sync.Mutex
	lastReport *Report
}

func NewReconciler(
	dealRepo DealRepository,
	log MirrorLog,
	updates UpdatesSource,
	amount int64,
) *Reconciler {
	return &Reconciler{
		dealRepo: dealRepo,
		log:      log,
		updates:  updates,
		amount:   amount,
	}
}

// Run выполняет один прогон: сливает боковой журнал со свежими обновлениями
// чата, распознаёт события и досоздаёт отсутствующие сделки с restored=true.
// Повторный прогон по тому же журналу ничего не дублирует.
func (r *Reconciler) Run(ctx context.Context) (Report, error) {
	records, err := r.log.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("mirrorLog.List: %w", err)
	}

	if r.updates != nil {
		pending, err := r.updates.PendingUpdates(ctx)
		if err != nil {
			// Bot API — необязательный источник, журнал авторитетен.
			logger(ctx).Error("failed to fetch pending updates", "error", err)
		} else {
			records = append(records, pending...)
		}
	}

	report := Report{Scanned: len(records), RanAt: time.Now()}

	deals, err := r.dealRepo.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("dealRepo.List: %w", err)
	}

	known := make(map[eventKey]bool, len(deals))
	for _, deal := range deals {
		known[eventKey{handle: deal.Username.Key(), status: deal.Status}] = true
	}

	seenMessages := make(map[int]bool, len(records))
	seenEvents := make(map[eventKey]bool)

	for _, record := range records {
		if record.MessageID != 0 && seenMessages[record.MessageID] {
			report.Duplicates++
			continue
		}

		seenMessages[record.MessageID] = true

		event, ok := mirror.ParseEvent(record.Text)
		if !ok {
			continue
		}

		report.Matched++

		key := eventKey{handle: event.Username.Key(), status: event.Status}

		if seenEvents[key] || known[key] {
			report.Duplicates++
			continue
		}

		seenEvents[key] = true

		deal := entity.Deal{
			ID:       restoredDealID(),
			Username: event.Username,
			Amount:   r.amount,
			Date:     record.SentAt,
			Status:   event.Status,
			Restored: true,
		}

		if err := r.dealRepo.Create(ctx, &deal); err != nil {
			logger(ctx).Error("failed to restore deal", "username", event.Username, "error", err)
			continue
		}

		known[key] = true
		report.Restored++

		logger(ctx).Info("deal restored from mirror history",
			"deal_id", deal.ID,
			"username", deal.Username,
			"status", deal.Status,
		)
	}

	r.mu.Lock()
	r.lastReport = &report
	r.mu.Unlock()

	return report, nil
}

// LastReport возвращает итог последнего прогона, если он был.
func (r *Reconciler) LastReport() (Report, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastReport == nil {
		return Report{}, false
	}

	return *r.lastReport, true
}

type eventKey struct {
	handle string
	status value.DealStatus
}

func restoredDealID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) +
		strconv.FormatInt(rand.Int63(), 36) //nolint:gosec // не криптография
}
