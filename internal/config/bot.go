package config

// Bot — зеркальный Telegram-бот. Пустой токен выключает зеркалирование:
// сервис работает, очередь подменяется заглушкой.
type Bot struct {
	Token  string `env:"BOT_TOKEN" json:"-"`
	ChatID int64  `env:"BOT_CHAT_ID"`
}
