package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"golden_traff/internal/domain/entity"
)

// TelegramBot — клиент Bot API для зеркальных сообщений: отправка, удаление
// и выборка непрочитанных обновлений чата.
type TelegramBot struct {
	bot    *telego.Bot
	chatID int64

	// offset подтверждённых обновлений. Подтверждённое обновление Bot API
	// повторно не отдаёт, поэтому PendingUpdates — выборка не-более-одного-раза.
	mu     sync.Mutex
	offset int
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// SendText отправляет сообщение в зеркальный чат и возвращает его идентификатор.
func (b *TelegramBot) SendText(ctx context.Context, text string) (int, error) {
	msg := tu.Message(tu.ID(b.chatID), text)

	sent, err := b.bot.SendMessage(ctx, msg)
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}

	return sent.MessageID, nil
}

// DeleteMessage удаляет зеркальное сообщение по идентификатору.
func (b *TelegramBot) DeleteMessage(ctx context.Context, messageID int) error {
	err := b.bot.DeleteMessage(ctx, &telego.DeleteMessageParams{
		ChatID:    tu.ID(b.chatID),
		MessageID: messageID,
	})
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	return nil
}

// PendingUpdates забирает накопившиеся обновления зеркального чата.
// Каждое обновление приходит не более одного раза: полную историю через
// Bot API восстановить нельзя, авторитетен боковой журнал.
func (b *TelegramBot) PendingUpdates(ctx context.Context) ([]entity.MirrorRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	updates, err := b.bot.GetUpdates(ctx, &telego.GetUpdatesParams{
		Offset: b.offset,
	})
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", err)
	}

	records := make([]entity.MirrorRecord, 0, len(updates))

	for _, update := range updates {
		if update.UpdateID >= b.offset {
			b.offset = update.UpdateID + 1
		}

		msg := update.Message
		if msg == nil {
			msg = update.ChannelPost
		}

		if msg == nil || msg.Chat.ID != b.chatID || msg.Text == "" {
			continue
		}

		records = append(records, entity.MirrorRecord{
			MessageID: msg.MessageID,
			Text:      msg.Text,
			SentAt:    time.Unix(msg.Date, 0),
		})
	}

	return records, nil
}
