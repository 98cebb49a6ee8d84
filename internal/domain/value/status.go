package value

import (
	"golden_traff/internal/domain"
	"golden_traff/pkg/errcodes"
)

// DealStatus — статус сделки. Меняется ровно один раз в нормальном потоке:
// pending -> success|failed. Сам тип переходы не ограничивает, это решает API.
type DealStatus string

const (
	DealStatusPending DealStatus = "pending"
	DealStatusSuccess DealStatus = "success"
	DealStatusFailed  DealStatus = "failed"
)

func (s DealStatus) String() string {
	return string(s)
}

func ParseDealStatus(raw string) (DealStatus, error) {
	switch DealStatus(raw) {
	case DealStatusPending, DealStatusSuccess, DealStatusFailed:
		return DealStatus(raw), nil
	default:
		return "", domain.NewError(errcodes.InvalidDealStatus, "invalid status: "+raw)
	}
}
