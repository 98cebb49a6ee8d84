package entity

import "time"

// MirrorRecord — запись журнала отправленных зеркальных сообщений.
// Журнал ведётся в боковом файле и служит единственным надёжным источником
// для восстановления: Bot API не отдаёт подтверждённые обновления повторно.
type MirrorRecord struct {
	MessageID int       `json:"messageId"`
	Text      string    `json:"text"`
	SentAt    time.Time `json:"sentAt"`
}

// LeaderboardRow — строка рейтинга по продавцам командного варианта.
type LeaderboardRow struct {
	UserID   string
	Username string
	Avatar   string
	Deals    int
	Sum      int64
}
