package server

import (
	"context"
	"net/http"
	"time"

	"golden_traff/internal/domain/entity"
	"golden_traff/pkg/httpx/reply"
	"golden_traff/pkg/logx"
)

type summaryService interface {
	Summarize(ctx context.Context, now time.Time) (entity.Summary, error)
	SummarizeForUser(ctx context.Context, userID string, now time.Time) (entity.Summary, error)
}

type SummaryServer struct {
	summaryService summaryService
}

func NewSummaryServer(summaryService summaryService) SummaryServer {
	return SummaryServer{
		summaryService: summaryService,
	}
}

// getSum деградирует до нулевой сводки при ошибке хранилища: фронт показывает
// нули вместо экрана ошибки.
func (s SummaryServer) getSum(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	summary, err := s.summaryService.Summarize(ctx, time.Now())
	if err != nil {
		logger(ctx).Error("summaryService.Summarize", logx.Error(err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSummary(summary))

	return nil
}

func (s SummaryServer) getTeamSum(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	summary, err := s.summaryService.SummarizeForUser(ctx, r.URL.Query().Get("userId"), time.Now())
	if err != nil {
		logger(ctx).Error("summaryService.SummarizeForUser", logx.Error(err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSummary(summary))

	return nil
}
