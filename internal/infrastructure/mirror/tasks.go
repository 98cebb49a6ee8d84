package mirror

import (
	"fmt"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Типы задач исходящей очереди зеркалирования.
const (
	TypeDealCreated       = "mirror:deal_created"
	TypeDealStatusChanged = "mirror:deal_status_changed"
	TypeDealDeleted       = "mirror:deal_deleted"
)

// QueueName — выделенная очередь зеркалирования: отстаёт — и пусть,
// основной API от неё не зависит.
const QueueName = "mirror"

type DealCreatedPayload struct {
	DealID   string `json:"dealId"`
	Username string `json:"username"`
}

type DealStatusChangedPayload struct {
	DealID        string `json:"dealId"`
	Username      string `json:"username"`
	Status        string `json:"status"`
	PrevMessageID *int   `json:"prevMessageId,omitempty"`
}

type DealDeletedPayload struct {
	DealID        string `json:"dealId"`
	Username      string `json:"username"`
	PrevMessageID *int   `json:"prevMessageId,omitempty"`
}

func newTask(taskType string, payload any) (*asynq.Task, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(taskType, raw, asynq.Queue(QueueName)), nil
}
