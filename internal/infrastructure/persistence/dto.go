package persistence

import (
	"database/sql"
	"time"

	"golden_traff/internal/domain/entity"
	"golden_traff/internal/domain/value"
)

// dealSchema — внутренняя структура для маппинга строки БД.
type dealSchema struct {
	ID              string        `db:"id"`
	Username        string        `db:"username"`
	Amount          int64         `db:"amount"`
	Date            time.Time     `db:"date"`
	Status          string        `db:"status"`
	MirrorMessageID sql.NullInt64 `db:"mirror_message_id"`
	Restored        bool          `db:"restored"`
	AppType         string        `db:"app_type"`
	UserID          string        `db:"user_id"`
	Avatar          string        `db:"avatar"`
	CreatedBy       string        `db:"created_by"`
}

func fromDeal(e *entity.Deal) *dealSchema {
	s := &dealSchema{
		ID:        e.ID,
		Username:  e.Username.String(),
		Amount:    e.Amount,
		Date:      e.Date,
		Status:    e.Status.String(),
		Restored:  e.Restored,
		AppType:   e.AppType.String(),
		UserID:    e.UserID,
		Avatar:    e.Avatar,
		CreatedBy: e.CreatedBy,
	}

	if e.MirrorMessageID != nil {
		s.MirrorMessageID = sql.NullInt64{Int64: int64(*e.MirrorMessageID), Valid: true}
	}

	return s
}

func (s *dealSchema) toDomain() *entity.Deal {
	deal := &entity.Deal{
		ID:        s.ID,
		Username:  value.Username(s.Username),
		Amount:    s.Amount,
		Date:      s.Date,
		Status:    value.DealStatus(s.Status),
		Restored:  s.Restored,
		AppType:   value.AppType(s.AppType),
		UserID:    s.UserID,
		Avatar:    s.Avatar,
		CreatedBy: s.CreatedBy,
	}

	if s.MirrorMessageID.Valid {
		messageID := int(s.MirrorMessageID.Int64)
		deal.MirrorMessageID = &messageID
	}

	return deal
}

// taskSchema — представление таблицы tasks в БД. CompletedBy лежит в JSONB.
type taskSchema struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Reward      int64     `db:"reward"`
	CreatedAt   time.Time `db:"created_at"`
	CompletedBy []byte    `db:"completed_by"`
}

func fromTask(e *entity.Task) (*taskSchema, error) {
	completedBy, err := json.Marshal(e.CompletedBy)
	if err != nil {
		return nil, err
	}

	return &taskSchema{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Reward:      e.Reward,
		CreatedAt:   e.CreatedAt,
		CompletedBy: completedBy,
	}, nil
}

func (s *taskSchema) toDomain() (*entity.Task, error) {
	completedBy := []string{}
	if len(s.CompletedBy) > 0 {
		if err := json.Unmarshal(s.CompletedBy, &completedBy); err != nil {
			return nil, err
		}
	}

	return &entity.Task{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Reward:      s.Reward,
		CreatedAt:   s.CreatedAt,
		CompletedBy: completedBy,
	}, nil
}
