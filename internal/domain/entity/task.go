package entity

import (
	"slices"
	"time"
)

// Task — поощряемое задание командного варианта. CompletedBy хранит
// множество отметившихся пользователей, членство идемпотентно.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Reward      int64     `json:"reward"`
	CreatedAt   time.Time `json:"createdAt"`
	CompletedBy []string  `json:"completedBy"`
}

// ToggleCompletion добавляет или убирает пользователя из CompletedBy.
// Возвращает true, если пользователь теперь отмечен.
func (t *Task) ToggleCompletion(userID string) bool {
	if i := slices.Index(t.CompletedBy, userID); i >= 0 {
		t.CompletedBy = slices.Delete(t.CompletedBy, i, i+1)
		return false
	}

	t.CompletedBy = append(t.CompletedBy, userID)

	return true
}
