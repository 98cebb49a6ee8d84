package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Коды для модуля сделок
	DealNotFound      failure.ErrorCode = "DealNotFound"      // Когда ID есть, но в базе нет
	InvalidDealStatus failure.ErrorCode = "InvalidDealStatus" // Статус вне pending/success/failed
	InvalidDealID     failure.ErrorCode = "InvalidDealID"     // Когда пришел мусор вместо ID
	DuplicateDeal     failure.ErrorCode = "DuplicateDeal"     // Повторная отправка в окне подавления
	NotDealOwner      failure.ErrorCode = "NotDealOwner"      // Чужая сделка

	// Коды для модуля задач
	TaskNotFound       failure.ErrorCode = "TaskNotFound"
	InvalidTaskPayload failure.ErrorCode = "InvalidTaskPayload"

	// Коды зеркалирования в Telegram
	MirrorUnavailable failure.ErrorCode = "MirrorUnavailable" // Bot API недоступен
)
