package server

import (
	"errors"

	"git.appkode.ru/pub/go/failure"

	"golden_traff/internal/domain"
	"golden_traff/pkg/errcodes"
)

// asFailure переводит доменную ошибку в таксономию failure, по которой
// reply.Error выбирает HTTP-статус. Неизвестные ошибки уходят как есть (500).
func asFailure(err error) error {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	switch appErr.Code {
	case errcodes.DealNotFound, errcodes.TaskNotFound, errcodes.NotFound:
		return failure.NewNotFoundError(
			appErr.Error(),
			failure.WithCode(appErr.Code),
			failure.WithDescription(appErr.Message),
		)
	case errcodes.Forbidden, errcodes.NotDealOwner:
		return failure.NewForbiddenError(
			appErr.Error(),
			failure.WithCode(appErr.Code),
			failure.WithDescription(appErr.Message),
		)
	case errcodes.ValidationError, errcodes.InvalidDealStatus, errcodes.InvalidDealID,
		errcodes.DuplicateDeal, errcodes.InvalidTaskPayload:
		return failure.NewInvalidArgumentError(
			appErr.Error(),
			failure.WithCode(appErr.Code),
			failure.WithDescription(appErr.Message),
		)
	default:
		return err
	}
}
