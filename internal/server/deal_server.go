package server

import (
	"context"
	"fmt"
	"net/http"

	"golden_traff/internal/domain/entity"
	service "golden_traff/internal/domain/service/deal"
	"golden_traff/internal/domain/value"
	"golden_traff/pkg/httpx/reply"
	"golden_traff/pkg/httpx/req"
	"golden_traff/pkg/logx"
	"golden_traff/pkg/rest"
)

type dealService interface {
	Create(ctx context.Context, params service.CreateParams) ([]entity.Deal, error)
	List(ctx context.Context) ([]entity.Deal, error)
	ListForUser(ctx context.Context, userID, filter string) ([]entity.Deal, error)
	UpdateStatus(ctx context.Context, id, rawStatus, callerID string) (*entity.Deal, error)
	Delete(ctx context.Context, id, callerID string) error
	Leaderboard(ctx context.Context) ([]entity.LeaderboardRow, error)
}

type DealServer struct {
	dealService dealService
}

func NewDealServer(dealService dealService) DealServer {
	return DealServer{
		dealService: dealService,
	}
}

// getDeals никогда не отдаёт ошибку: при недоступном хранилище фронт админки
// получает пустой список и продолжает работать.
func (s DealServer) getDeals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	deals, err := s.dealService.List(ctx)
	if err != nil {
		logger(ctx).Error("dealService.List", logx.Error(err))
		reply.JSON(ctx, w, http.StatusOK, []rest.Deal{})

		return nil
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeals(deals))

	return nil
}

func (s DealServer) postDeal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateDealRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	deals, err := s.dealService.Create(ctx, service.CreateParams{
		Username: request.Username,
		AppType:  value.ParseAppType(request.AppType),
		UserID:   request.UserID,
		Avatar:   request.Avatar,
	})
	if err != nil {
		return fmt.Errorf("dealService.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CreateDealResponse{
		OK:    true,
		Deals: newRESTDeals(deals),
	})

	return nil
}

func (s DealServer) patchDeal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.UpdateDealStatusRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	deal, err := s.dealService.UpdateStatus(ctx, r.PathValue("id"), request.Status, request.UserID)
	if err != nil {
		return fmt.Errorf("dealService.UpdateStatus: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.UpdateDealStatusResponse{
		OK:   true,
		Deal: newRESTDeal(*deal),
	})

	return nil
}

func (s DealServer) deleteDeal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if err := s.dealService.Delete(ctx, r.PathValue("id"), r.URL.Query().Get("userId")); err != nil {
		return fmt.Errorf("dealService.Delete: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.DeleteDealResponse{OK: true})

	return nil
}

func (s DealServer) getTeamDeals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	query := r.URL.Query()

	filter := query.Get("filter")
	if filter == "" {
		filter = "all"
	}

	deals, err := s.dealService.ListForUser(ctx, query.Get("userId"), filter)
	if err != nil {
		logger(ctx).Error("dealService.ListForUser", logx.Error(err))
		reply.JSON(ctx, w, http.StatusOK, []rest.Deal{})

		return nil
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeals(deals))

	return nil
}

func (s DealServer) getLeaderboard(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	rows, err := s.dealService.Leaderboard(ctx)
	if err != nil {
		logger(ctx).Error("dealService.Leaderboard", logx.Error(err))
		reply.JSON(ctx, w, http.StatusOK, []rest.LeaderboardEntry{})

		return nil
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTLeaderboard(rows))

	return nil
}
