package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"golden_traff/internal/domain"
	"golden_traff/internal/domain/entity"
	"golden_traff/internal/domain/value"
	"golden_traff/pkg/errcodes"
)

const defaultDuplicateWindow = 5 * time.Second

type DealRepository interface {
	Create(ctx context.Context, deal *entity.Deal) error
	List(ctx context.Context) ([]entity.Deal, error)
	GetByID(ctx context.Context, id string) (*entity.Deal, error)
	UpdateStatus(ctx context.Context, id string, status value.DealStatus) (*entity.Deal, error)
	UpdateMirrorMessageID(ctx context.Context, id string, messageID *int) error
	Delete(ctx context.Context, id string) error
}

// MirrorEnqueuer ставит зеркальные уведомления в исходящую очередь.
// Все ошибки очереди сервис глотает: зеркало никогда не валит основной запрос.
type MirrorEnqueuer interface {
	EnqueueCreated(ctx context.Context, deal entity.Deal) error
	EnqueueStatusChanged(ctx context.Context, deal entity.Deal, prevMessageID *int) error
	EnqueueDeleted(ctx context.Context, deal entity.Deal) error
}

// Amounts — фиксированные суммы сделок по вариантам приложения.
type Amounts struct {
	Admin int64
	Team  int64
}

func (a Amounts) For(appType value.AppType) int64 {
	if appType == value.AppTypeTeam {
		return a.Team
	}

	return a.Admin
}

type DealService struct {
	dealRepo DealRepository
	mirror   MirrorEnqueuer
	amounts  Amounts

	// dedupe подавляет повторную отправку одного хэндла в коротком окне.
	dedupe *cache.Cache
}

func NewDealService(
	dealRepo DealRepository,
	mirror MirrorEnqueuer,
	amounts Amounts,
) *DealService {
	return &DealService{
		dealRepo: dealRepo,
		mirror:   mirror,
		amounts:  amounts,
		dedupe:   cache.New(defaultDuplicateWindow, time.Minute),
	}
}

func (s *DealService) WithDuplicateWindow(window time.Duration) *DealService {
	if window > 0 {
		s.dedupe = cache.New(window, time.Minute)
	}

	return s
}

type CreateParams struct {
	Username string
	AppType  value.AppType
	UserID   string
	Avatar   string
}

// Create регистрирует сделку и возвращает полный список по убыванию даты.
func (s *DealService) Create(ctx context.Context, params CreateParams) ([]entity.Deal, error) {
	username := value.NormalizeUsername(params.Username)

	if _, found := s.dedupe.Get(username.Key()); found {
		return nil, domain.NewError(errcodes.DuplicateDeal, "deal already submitted for "+username.String())
	}

	deal := entity.Deal{
		ID:       newDealID(),
		Username: username,
		Amount:   s.amounts.For(params.AppType),
		Date:     time.Now(),
		Status:   value.DealStatusPending,
		AppType:  params.AppType,
		UserID:   params.UserID,
		Avatar:   params.Avatar,
	}

	if err := s.dealRepo.Create(ctx, &deal); err != nil {
		return nil, fmt.Errorf("dealRepo.Create: %w", err)
	}

	s.dedupe.SetDefault(username.Key(), struct{}{})
	dealsCreated.Inc()

	if err := s.mirror.EnqueueCreated(ctx, deal); err != nil {
		logger(ctx).Error("mirror enqueue failed", "deal_id", deal.ID, "error", err)
	}

	return s.List(ctx)
}

// List возвращает все сделки по убыванию даты.
func (s *DealService) List(ctx context.Context) ([]entity.Deal, error) {
	deals, err := s.dealRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dealRepo.List: %w", err)
	}

	sortDealsByDateDesc(deals)

	return deals, nil
}

// ListForUser фильтрует сделки командного варианта: all — все командные,
// personal — только свои.
func (s *DealService) ListForUser(ctx context.Context, userID, filter string) ([]entity.Deal, error) {
	deals, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]entity.Deal, 0, len(deals))

	for _, deal := range deals {
		if deal.AppType != value.AppTypeTeam {
			continue
		}

		if filter == "personal" && deal.UserID != userID {
			continue
		}

		filtered = append(filtered, deal)
	}

	return filtered, nil
}

// UpdateStatus переводит сделку в новый статус и перевешивает зеркальное
// сообщение. callerID участвует только в проверке владельца командных сделок.
func (s *DealService) UpdateStatus(ctx context.Context, id, rawStatus, callerID string) (*entity.Deal, error) {
	status, err := value.ParseDealStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("dealRepo.GetByID: %w", err)
	}

	if !deal.OwnedBy(callerID) {
		return nil, domain.NewError(errcodes.NotDealOwner, "deal belongs to another user")
	}

	prevMessageID := deal.MirrorMessageID

	updated, err := s.dealRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("dealRepo.UpdateStatus: %w", err)
	}

	if status == value.DealStatusSuccess || status == value.DealStatusFailed {
		if err := s.mirror.EnqueueStatusChanged(ctx, *updated, prevMessageID); err != nil {
			logger(ctx).Error("mirror enqueue failed", "deal_id", id, "error", err)
		}
	}

	return updated, nil
}

// Delete удаляет сделку с той же проверкой владельца, что и UpdateStatus.
func (s *DealService) Delete(ctx context.Context, id, callerID string) error {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("dealRepo.GetByID: %w", err)
	}

	if !deal.OwnedBy(callerID) {
		return domain.NewError(errcodes.NotDealOwner, "deal belongs to another user")
	}

	if err := s.dealRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("dealRepo.Delete: %w", err)
	}

	if err := s.mirror.EnqueueDeleted(ctx, *deal); err != nil {
		logger(ctx).Error("mirror enqueue failed", "deal_id", id, "error", err)
	}

	return nil
}

// Leaderboard агрегирует командные сделки по владельцам, сортировка по
// количеству сделок, затем по сумме.
func (s *DealService) Leaderboard(ctx context.Context) ([]entity.LeaderboardRow, error) {
	deals, err := s.dealRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dealRepo.List: %w", err)
	}

	byUser := make(map[string]*entity.LeaderboardRow)

	for _, deal := range deals {
		if deal.AppType != value.AppTypeTeam || deal.UserID == "" {
			continue
		}

		row, ok := byUser[deal.UserID]
		if !ok {
			row = &entity.LeaderboardRow{
				UserID:   deal.UserID,
				Username: deal.Username.String(),
				Avatar:   deal.Avatar,
			}
			byUser[deal.UserID] = row
		}

		row.Deals++
		row.Sum += deal.Amount
	}

	rows := make([]entity.LeaderboardRow, 0, len(byUser))
	for _, row := range byUser {
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Deals != rows[j].Deals {
			return rows[i].Deals > rows[j].Deals
		}

		return rows[i].Sum > rows[j].Sum
	})

	return rows, nil
}

func sortDealsByDateDesc(deals []entity.Deal) {
	sort.Slice(deals, func(i, j int) bool {
		return deals[i].Date.After(deals[j].Date)
	})
}

// newDealID повторяет схему исходной админки: base36-метка времени плюс
// случайный base36-суффикс. Коллизии считаем пренебрежимо маловероятными.
func newDealID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) +
		strconv.FormatInt(rand.Int63(), 36) //nolint:gosec // не криптография
}
