// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

type Deal struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Amount          int64  `json:"amount"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	MirrorMessageID *int   `json:"mirrorMessageId,omitempty"`
	Restored        bool   `json:"restored,omitempty"`
	AppType         string `json:"appType,omitempty"`
	UserID          string `json:"userId,omitempty"`
	Avatar          string `json:"avatar,omitempty"`
	CreatedBy       string `json:"createdBy,omitempty"`
}

type CreateDealRequest struct {
	Username string `json:"username"`
	// Amount принимается для обратной совместимости с фронтом, но игнорируется:
	// сумма сделки фиксируется конфигурацией сервера.
	Amount  int64  `json:"amount,omitempty"`
	AppType string `json:"appType,omitempty"`
	UserID  string `json:"userId,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
}

type CreateDealResponse struct {
	OK    bool   `json:"ok"`
	Deals []Deal `json:"deals"`
}

type UpdateDealStatusRequest struct {
	Status string `json:"status" validate:"required"`
	UserID string `json:"userId,omitempty"`
}

type UpdateDealStatusResponse struct {
	OK   bool `json:"ok"`
	Deal Deal `json:"deal"`
}

type DeleteDealResponse struct {
	OK bool `json:"ok"`
}

// Summary повторяет плоскую форму ответа /api/sum исходной админки.
type Summary struct {
	Total          int64 `json:"total"`
	Month          int64 `json:"month"`
	Day            int64 `json:"day"`
	TotalTax       int64 `json:"totalTax"`
	TotalLeads     int64 `json:"totalLeads"`
	TotalEmployees int64 `json:"totalEmployees"`
	TotalFinal     int64 `json:"totalFinal"`
	MonthTax       int64 `json:"monthTax"`
	MonthLeads     int64 `json:"monthLeads"`
	MonthEmployees int64 `json:"monthEmployees"`
	MonthFinal     int64 `json:"monthFinal"`
	DayTax         int64 `json:"dayTax"`
	DayLeads       int64 `json:"dayLeads"`
	DayEmployees   int64 `json:"dayEmployees"`
	DayFinal       int64 `json:"dayFinal"`
}

type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Reward      int64    `json:"reward"`
	CreatedAt   string   `json:"createdAt"`
	CompletedBy []string `json:"completedBy"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Reward      int64  `json:"reward" validate:"required,gt=0"`
	UserID      string `json:"userId,omitempty"`
	IsAdmin     bool   `json:"isAdmin,omitempty"`
}

type ToggleTaskRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type LeaderboardEntry struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	Deals    int    `json:"deals"`
	Sum      int64  `json:"sum"`
}

type Ping struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

type SyncReport struct {
	OK         bool   `json:"ok"`
	Scanned    int    `json:"scanned"`
	Matched    int    `json:"matched"`
	Restored   int    `json:"restored"`
	Duplicates int    `json:"duplicates"`
	RanAt      string `json:"ranAt,omitempty"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// Duplicate Флаг повторной отправки (для фронта админки)
	Duplicate bool `json:"duplicate,omitempty"`
}

// ErrorCode Код ошибки
type ErrorCode string
