package service

import (
	"context"
	"fmt"
	"time"

	"golden_traff/internal/domain/entity"
)

// Summarize строит свёртки за всё время, календарный месяц и текущий день
// (локальное время, час обнуляется). Ошибка чтения хранилища отдаётся
// вызывающему: деградировать до нулевой сводки или нет, решает он.
func (s *DealService) Summarize(ctx context.Context, now time.Time) (entity.Summary, error) {
	deals, err := s.dealRepo.List(ctx)
	if err != nil {
		return entity.Summary{}, fmt.Errorf("dealRepo.List: %w", err)
	}

	return SummarizeDeals(deals, now), nil
}

// SummarizeForUser — та же свёртка, но только по личным командным сделкам.
func (s *DealService) SummarizeForUser(ctx context.Context, userID string, now time.Time) (entity.Summary, error) {
	deals, err := s.ListForUser(ctx, userID, "personal")
	if err != nil {
		return entity.Summary{}, err
	}

	return SummarizeDeals(deals, now), nil
}

// SummarizeDeals — чистая свёртка по готовому набору сделок.
func SummarizeDeals(deals []entity.Deal, now time.Time) entity.Summary {
	dayStart := startOfDay(now)
	monthStart := startOfMonth(now)

	var summary entity.Summary

	for _, deal := range deals {
		d := CalculateDeductions(deal.Amount)

		addToWindow(&summary.Total, deal.Amount, d)

		if !deal.Date.Before(monthStart) {
			addToWindow(&summary.Month, deal.Amount, d)
		}

		if !deal.Date.Before(dayStart) {
			addToWindow(&summary.Day, deal.Amount, d)
		}
	}

	return summary
}

func addToWindow(w *entity.SummaryWindow, amount int64, d entity.Deductions) {
	w.Sum += amount
	w.Tax += d.Tax
	w.Leads += d.Leads
	w.Employees += d.Employees
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
