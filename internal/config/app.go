package config

import "time"

// App — прикладные настройки ведомости сделок. Суммы фиксируются сервером и
// никогда не берутся из запроса.
type App struct {
	Name    string `env:"APP_NAME" envDefault:"golden_traff"`
	Version string `env:"APP_VERSION" envDefault:"dev"`

	AmountAdmin int64 `env:"DEAL_AMOUNT_ADMIN" envDefault:"9500"`
	AmountTeam  int64 `env:"DEAL_AMOUNT_TEAM" envDefault:"2000"`

	// DuplicateWindow — окно подавления повторной отправки одного хэндла.
	DuplicateWindow time.Duration `env:"DEAL_DUPLICATE_WINDOW" envDefault:"5s"`

	// StorageDriver: postgres (основной) или file (JSON-файл админки).
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	DealsFilePath string `env:"DEALS_FILE_PATH" envDefault:"deals.json"`
	TasksFilePath string `env:"TASKS_FILE_PATH" envDefault:"tasks.json"`
	MirrorLogPath string `env:"MIRROR_LOG_PATH" envDefault:"mirror_log.json"`
}
