package server

import (
	"time"

	"golden_traff/internal/domain/entity"
	"golden_traff/pkg/lox"
	"golden_traff/pkg/rest"
)

func newRESTDeal(deal entity.Deal) rest.Deal {
	return rest.Deal{
		ID:              deal.ID,
		Username:        deal.Username.String(),
		Amount:          deal.Amount,
		Date:            deal.Date.Format(time.RFC3339),
		Status:          deal.Status.String(),
		MirrorMessageID: deal.MirrorMessageID,
		Restored:        deal.Restored,
		AppType:         deal.AppType.String(),
		UserID:          deal.UserID,
		Avatar:          deal.Avatar,
		CreatedBy:       deal.CreatedBy,
	}
}

func newRESTDeals(deals []entity.Deal) []rest.Deal {
	return lox.Map(deals, newRESTDeal)
}

func newRESTSummary(summary entity.Summary) rest.Summary {
	return rest.Summary{
		Total:          summary.Total.Sum,
		Month:          summary.Month.Sum,
		Day:            summary.Day.Sum,
		TotalTax:       summary.Total.Tax,
		TotalLeads:     summary.Total.Leads,
		TotalEmployees: summary.Total.Employees,
		TotalFinal:     summary.Total.Final(),
		MonthTax:       summary.Month.Tax,
		MonthLeads:     summary.Month.Leads,
		MonthEmployees: summary.Month.Employees,
		MonthFinal:     summary.Month.Final(),
		DayTax:         summary.Day.Tax,
		DayLeads:       summary.Day.Leads,
		DayEmployees:   summary.Day.Employees,
		DayFinal:       summary.Day.Final(),
	}
}

func newRESTTask(task entity.Task) rest.Task {
	completedBy := task.CompletedBy
	if completedBy == nil {
		completedBy = []string{}
	}

	return rest.Task{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Reward:      task.Reward,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		CompletedBy: completedBy,
	}
}

func newRESTLeaderboard(rows []entity.LeaderboardRow) []rest.LeaderboardEntry {
	return lox.Map(rows, func(row entity.LeaderboardRow) rest.LeaderboardEntry {
		return rest.LeaderboardEntry{
			UserID:   row.UserID,
			Username: row.Username,
			Avatar:   row.Avatar,
			Deals:    row.Deals,
			Sum:      row.Sum,
		}
	})
}
