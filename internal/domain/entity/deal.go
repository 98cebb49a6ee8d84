package entity

import (
	"time"

	"golden_traff/internal/domain/value"
)

// Deal — зафиксированная продажа. Сумма никогда не приходит от клиента,
// она задаётся конфигурацией сервера по варианту приложения.
type Deal struct {
	ID       string           `json:"id" db:"id"`
	Username value.Username   `json:"username" db:"username"`
	Amount   int64            `json:"amount" db:"amount"`
	Date     time.Time        `json:"date" db:"date"`
	Status   value.DealStatus `json:"status" db:"status"`

	// MirrorMessageID — идентификатор зеркального сообщения в чате.
	// nil, если зеркалирование выключено или не удалось.
	MirrorMessageID *int `json:"mirrorMessageId,omitempty" db:"mirror_message_id"`

	// Restored выставляет только джоба восстановления из истории чата.
	Restored bool `json:"restored,omitempty" db:"restored"`

	AppType   value.AppType `json:"appType,omitempty" db:"app_type"`
	UserID    string        `json:"userId,omitempty" db:"user_id"`
	Avatar    string        `json:"avatar,omitempty" db:"avatar"`
	CreatedBy string        `json:"createdBy,omitempty" db:"created_by"`
}

// OwnedBy отвечает, может ли вызывающий менять сделку. Админские сделки
// владельцем не защищены — так вела себя исходная админка.
func (d Deal) OwnedBy(userID string) bool {
	if d.AppType != value.AppTypeTeam {
		return true
	}

	return d.UserID == "" || d.UserID == userID
}
