package mirror

import (
	"fmt"
	"regexp"

	"golden_traff/internal/domain/value"
)

// Шаблоны зеркальных сообщений. Парсер восстановления завязан на эти же
// строки, поэтому менять их можно только вместе с eventPattern.
const (
	createdTemplate   = "🤝 Deal created %s"
	succeededTemplate = "✅ Deal succeeded %s"
	failedTemplate    = "❌ Deal failed %s"
	deletedTemplate   = "🗑 Deal deleted %s"
)

var eventPattern = regexp.MustCompile(`Deal (created|succeeded|failed) (@\S+)`) //nolint:gochecknoglobals

func CreatedText(username value.Username) string {
	return fmt.Sprintf(createdTemplate, username)
}

func StatusText(username value.Username, status value.DealStatus) string {
	if status == value.DealStatusFailed {
		return fmt.Sprintf(failedTemplate, username)
	}

	return fmt.Sprintf(succeededTemplate, username)
}

func DeletedText(username value.Username) string {
	return fmt.Sprintf(deletedTemplate, username)
}

// Event — распознанное событие жизненного цикла из текста сообщения.
type Event struct {
	Username value.Username
	Status   value.DealStatus
}

// ParseEvent пытается распознать событие сделки в тексте зеркального
// сообщения. Сообщения об удалении намеренно не распознаются: по ним нечего
// восстанавливать.
func ParseEvent(text string) (Event, bool) {
	m := eventPattern.FindStringSubmatch(text)
	if m == nil {
		return Event{}, false
	}

	event := Event{Username: value.Username(m[2])}

	switch m[1] {
	case "created":
		event.Status = value.DealStatusPending
	case "succeeded":
		event.Status = value.DealStatusSuccess
	case "failed":
		event.Status = value.DealStatusFailed
	}

	return event, true
}
