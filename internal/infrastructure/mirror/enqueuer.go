package mirror

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"golden_traff/internal/domain/entity"
)

// Enqueuer ставит зеркальные уведомления в asynq. Ответ HTTP-клиенту никогда
// не ждёт доставки: очередь работает со своими ретраями и своим логом.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueueCreated(ctx context.Context, deal entity.Deal) error {
	task, err := newTask(TypeDealCreated, DealCreatedPayload{
		DealID:   deal.ID,
		Username: deal.Username.String(),
	})
	if err != nil {
		return err
	}

	return e.enqueue(ctx, task)
}

func (e *Enqueuer) EnqueueStatusChanged(ctx context.Context, deal entity.Deal, prevMessageID *int) error {
	task, err := newTask(TypeDealStatusChanged, DealStatusChangedPayload{
		DealID:        deal.ID,
		Username:      deal.Username.String(),
		Status:        deal.Status.String(),
		PrevMessageID: prevMessageID,
	})
	if err != nil {
		return err
	}

	return e.enqueue(ctx, task)
}

func (e *Enqueuer) EnqueueDeleted(ctx context.Context, deal entity.Deal) error {
	task, err := newTask(TypeDealDeleted, DealDeletedPayload{
		DealID:        deal.ID,
		Username:      deal.Username.String(),
		PrevMessageID: deal.MirrorMessageID,
	})
	if err != nil {
		return err
	}

	return e.enqueue(ctx, task)
}

func (e *Enqueuer) enqueue(ctx context.Context, task *asynq.Task) error {
	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("asynq.Enqueue: %w", err)
	}

	return nil
}

// NopEnqueuer используется при выключенном зеркалировании (нет токена бота).
type NopEnqueuer struct{}

func (NopEnqueuer) EnqueueCreated(context.Context, entity.Deal) error { return nil }

func (NopEnqueuer) EnqueueStatusChanged(context.Context, entity.Deal, *int) error { return nil }

func (NopEnqueuer) EnqueueDeleted(context.Context, entity.Deal) error { return nil }
