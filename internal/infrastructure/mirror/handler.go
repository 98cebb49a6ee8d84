package mirror

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"golden_traff/internal/domain/entity"
	"golden_traff/internal/domain/value"
	"golden_traff/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type messenger interface {
	SendText(ctx context.Context, text string) (int, error)
	DeleteMessage(ctx context.Context, messageID int) error
}

type mirrorLog interface {
	Append(ctx context.Context, record entity.MirrorRecord) error
}

type dealRepository interface {
	UpdateMirrorMessageID(ctx context.Context, id string, messageID *int) error
}

// Handler обрабатывает задачи очереди зеркалирования: шлёт сообщение в чат,
// дописывает его в боковой журнал и привязывает идентификатор к сделке.
type Handler struct {
	messenger messenger
	log       mirrorLog
	dealRepo  dealRepository
}

func NewHandler(messenger messenger, log mirrorLog, dealRepo dealRepository) *Handler {
	return &Handler{
		messenger: messenger,
		log:       log,
		dealRepo:  dealRepo,
	}
}

func (h *Handler) HandleDealCreated(ctx context.Context, task *asynq.Task) error {
	var payload DealCreatedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	messageID, err := h.send(ctx, CreatedText(value.Username(payload.Username)))
	if err != nil {
		return err
	}

	if err := h.dealRepo.UpdateMirrorMessageID(ctx, payload.DealID, &messageID); err != nil {
		// Сделку могли успеть удалить; сообщение уже висит в чате, не страшно.
		logger(ctx).Error("failed to link mirror message", "deal_id", payload.DealID, "error", err)
	}

	return nil
}

func (h *Handler) HandleDealStatusChanged(ctx context.Context, task *asynq.Task) error {
	var payload DealStatusChangedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	h.deletePrev(ctx, payload.PrevMessageID)

	text := StatusText(value.Username(payload.Username), value.DealStatus(payload.Status))

	messageID, err := h.send(ctx, text)
	if err != nil {
		return err
	}

	if err := h.dealRepo.UpdateMirrorMessageID(ctx, payload.DealID, &messageID); err != nil {
		logger(ctx).Error("failed to link mirror message", "deal_id", payload.DealID, "error", err)
	}

	return nil
}

func (h *Handler) HandleDealDeleted(ctx context.Context, task *asynq.Task) error {
	var payload DealDeletedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	h.deletePrev(ctx, payload.PrevMessageID)

	_, err := h.send(ctx, DeletedText(value.Username(payload.Username)))

	return err
}

// send отправляет текст и дописывает запись в журнал. Журнал пишется даже
// если привязка к сделке потом не удастся: восстановление опирается на него.
func (h *Handler) send(ctx context.Context, text string) (int, error) {
	messageID, err := h.messenger.SendText(ctx, text)
	if err != nil {
		return 0, fmt.Errorf("messenger.SendText: %w", err)
	}

	err = h.log.Append(ctx, entity.MirrorRecord{
		MessageID: messageID,
		Text:      text,
		SentAt:    time.Now(),
	})
	if err != nil {
		logger(ctx).Error("failed to append mirror log", "message_id", messageID, "error", err)
	}

	return messageID, nil
}

func (h *Handler) deletePrev(ctx context.Context, messageID *int) {
	if messageID == nil {
		return
	}

	if err := h.messenger.DeleteMessage(ctx, *messageID); err != nil {
		logger(ctx).Error("failed to delete mirror message", "message_id", *messageID, "error", err)
	}
}
