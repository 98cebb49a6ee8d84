package application

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"golden_traff/internal/config"
	dealsvc "golden_traff/internal/domain/service/deal"
	tasksvc "golden_traff/internal/domain/service/task"
	"golden_traff/internal/infrastructure/mirror"
	"golden_traff/internal/infrastructure/notifier"
	"golden_traff/internal/infrastructure/persistence"
	"golden_traff/internal/server"
	"golden_traff/internal/worker"
	"golden_traff/pkg/application/connectors"
	"golden_traff/pkg/application/modules"
	"golden_traff/pkg/contextx"
	"golden_traff/pkg/logx"
	"golden_traff/pkg/middlewarex"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	httpReadHeaderTimeout = 5 * time.Second
	logFieldMaxLen        = 2048
)

func Run(ctx context.Context) error { //nolint:funlen
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	// Хранилище: Postgres по умолчанию, файловый вариант для админки.
	var (
		dealStore dealsvc.DealRepository
		taskStore tasksvc.TaskRepository
	)

	if cfg.App.StorageDriver == "file" {
		dealStore = persistence.NewFileDealStore(cfg.App.DealsFilePath)
		taskStore = persistence.NewFileTaskStore(cfg.App.TasksFilePath)
	} else {
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}

		db := pg.Client(ctx)
		defer pg.Close(ctx)

		// Недоступная база — фатально: без хранилища сервис бессмысленен.
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres ping: %w", err)
		}

		if err := persistence.EnsureSchema(ctx, db); err != nil {
			return fmt.Errorf("persistence.EnsureSchema: %w", err)
		}

		dealStore = persistence.NewDealRepository(db)
		taskStore = persistence.NewTaskRepository(db)
	}

	mirrorLog := persistence.NewFileMirrorLog(cfg.App.MirrorLogPath)

	// Зеркало: без токена бота очередь подменяется заглушкой, API работает
	// как обычно.
	var (
		enqueuer dealsvc.MirrorEnqueuer = mirror.NopEnqueuer{}
		updates  worker.UpdatesSource
	)

	if cfg.Bot.Token != "" {
		bot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
		if err != nil {
			return fmt.Errorf("notifier.NewTelegramBot: %w", err)
		}

		updates = bot

		redisConnector := &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		_ = redisConnector.Client(ctx)
		defer redisConnector.Close(ctx)

		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Address,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DatabaseNumber,
		})
		defer asynqClient.Close()

		enqueuer = mirror.NewEnqueuer(asynqClient)

		mirrorHandler := mirror.NewHandler(bot, mirrorLog, dealStore)

		modules.AsynqServer{
			RedisUsername: cfg.Redis.Username,
			RedisPassword: cfg.Redis.Password,
			RedisAddress:  cfg.Redis.Address,
			RedisDB:       cfg.Redis.DatabaseNumber,
		}.Run(ctx, g,
			modules.AsynqQueues{mirror.QueueName: 1},
			modules.AsynqHandler{Pattern: mirror.TypeDealCreated, Handle: mirrorHandler.HandleDealCreated},
			modules.AsynqHandler{Pattern: mirror.TypeDealStatusChanged, Handle: mirrorHandler.HandleDealStatusChanged},
			modules.AsynqHandler{Pattern: mirror.TypeDealDeleted, Handle: mirrorHandler.HandleDealDeleted},
		)
	} else {
		logger(ctx).Info("mirror bot disabled: BOT_TOKEN is empty")
	}

	dealService := dealsvc.NewDealService(dealStore, enqueuer, dealsvc.Amounts{
		Admin: cfg.App.AmountAdmin,
		Team:  cfg.App.AmountTeam,
	}).WithDuplicateWindow(cfg.App.DuplicateWindow)

	taskService := tasksvc.NewTaskService(taskStore)

	reconciler := worker.NewReconciler(dealStore, mirrorLog, updates, cfg.App.AmountAdmin)

	srv := server.NewServer(
		server.NewDealServer(dealService),
		server.NewSummaryServer(dealService),
		server.NewTaskServer(taskService),
		server.NewSyncServer(reconciler),
	)

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)
	srv.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpReadHeaderTimeout,
	}

	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: cfg.HTTP.MetricsListenAddress}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}
