package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"golden_traff/internal/domain/entity"
	dealsvc "golden_traff/internal/domain/service/deal"
	tasksvc "golden_traff/internal/domain/service/task"
	"golden_traff/internal/infrastructure/mirror"
	"golden_traff/internal/infrastructure/persistence"
	"golden_traff/internal/server"
	"golden_traff/internal/worker"
	"golden_traff/pkg/rest"
	"golden_traff/pkg/tests"
)

type testEnv struct {
	client    tests.APIClient
	mirrorLog *persistence.FileMirrorLog
}

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Error     string `json:"error"`
	Duplicate bool   `json:"duplicate"`
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	dir := t.TempDir()

	dealStore := persistence.NewFileDealStore(filepath.Join(dir, "deals.json"))
	taskStore := persistence.NewFileTaskStore(filepath.Join(dir, "tasks.json"))
	mirrorLog := persistence.NewFileMirrorLog(filepath.Join(dir, "mirror_log.json"))

	dealService := dealsvc.NewDealService(dealStore, mirror.NopEnqueuer{}, dealsvc.Amounts{
		Admin: 9500,
		Team:  2000,
	})

	srv := server.NewServer(
		server.NewDealServer(dealService),
		server.NewSummaryServer(dealService),
		server.NewTaskServer(tasksvc.NewTaskService(taskStore)),
		server.NewSyncServer(worker.NewReconciler(dealStore, mirrorLog, nil, 9500)),
	)

	router := chi.NewRouter()
	srv.RegisterRoutes(router)

	testServer := httptest.NewServer(router)
	t.Cleanup(testServer.Close)

	return testEnv{
		client:    tests.NewAPIClient(testServer.URL, testServer.Client()),
		mirrorLog: mirrorLog,
	}
}

func TestPing(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)

	var ping rest.Ping

	resp, err := env.client.Get(ctx, "/ping", nil, &ping, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("ok", ping.Status)
	rq.NotEmpty(ping.Timestamp)

	resp, err = env.client.Get(ctx, "/api/ping", nil, &ping, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
}

func TestDealLifecycle(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)

	var created rest.CreateDealResponse

	resp, err := env.client.Post(ctx, "/api/deals", nil,
		rest.CreateDealRequest{Username: "seller"}, &created, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(created.OK)
	rq.Len(created.Deals, 1)
	rq.Equal("@seller", created.Deals[0].Username)
	rq.EqualValues(9500, created.Deals[0].Amount)
	rq.Equal("pending", created.Deals[0].Status)

	// Повторная отправка того же хэндла в окне дедупликации.
	var dupErr errorBody

	resp, err = env.client.Post(ctx, "/api/deals", nil,
		rest.CreateDealRequest{Username: "@SELLER"}, nil, &dupErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.True(dupErr.Duplicate)
	rq.NotEmpty(dupErr.Error)

	dealID := created.Deals[0].ID

	var updated rest.UpdateDealStatusResponse

	resp, err = env.client.Patch(ctx, "/api/deals/"+dealID, nil,
		rest.UpdateDealStatusRequest{Status: "success"}, &updated, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(updated.OK)
	rq.Equal("success", updated.Deal.Status)

	var badStatus errorBody

	resp, err = env.client.Patch(ctx, "/api/deals/"+dealID, nil,
		rest.UpdateDealStatusRequest{Status: "done"}, nil, &badStatus)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)

	var notFound errorBody

	resp, err = env.client.Patch(ctx, "/api/deals/missing", nil,
		rest.UpdateDealStatusRequest{Status: "success"}, nil, &notFound)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)

	var deleted rest.DeleteDealResponse

	resp, err = env.client.Delete(ctx, "/api/deals/"+dealID, nil, &deleted, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(deleted.OK)

	var deals []rest.Deal

	resp, err = env.client.Get(ctx, "/api/deals", nil, &deals, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Empty(deals)
}

func TestSum(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)

	_, err := env.client.Post(ctx, "/api/deals", nil,
		rest.CreateDealRequest{Username: "first"}, nil, nil)
	rq.NoError(err)

	var summary rest.Summary

	resp, err := env.client.Get(ctx, "/api/sum", nil, &summary, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.EqualValues(9500, summary.Total)
	rq.EqualValues(9500, summary.Month)
	rq.EqualValues(9500, summary.Day)
	rq.EqualValues(570, summary.TotalTax)
	rq.EqualValues(500, summary.TotalLeads)
	rq.EqualValues(2000, summary.TotalEmployees)
	rq.EqualValues(6430, summary.TotalFinal)
	rq.EqualValues(6430, summary.DayFinal)
}

func TestTeamEndpoints(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)

	_, err := env.client.Post(ctx, "/api/deals", nil,
		rest.CreateDealRequest{Username: "alpha", AppType: "team", UserID: "u1"}, nil, nil)
	rq.NoError(err)

	_, err = env.client.Post(ctx, "/api/deals", nil,
		rest.CreateDealRequest{Username: "beta", AppType: "team", UserID: "u2"}, nil, nil)
	rq.NoError(err)

	_, err = env.client.Post(ctx, "/api/deals", nil,
		rest.CreateDealRequest{Username: "admin-side"}, nil, nil)
	rq.NoError(err)

	var all []rest.Deal

	_, err = env.client.Get(ctx, "/api/team/deals", nil, &all, nil)
	rq.NoError(err)
	rq.Len(all, 2) // админская сделка не попадает

	var personal []rest.Deal

	_, err = env.client.Get(ctx, "/api/team/deals?userId=u1&filter=personal", nil, &personal, nil)
	rq.NoError(err)
	rq.Len(personal, 1)
	rq.Equal("@alpha", personal[0].Username)

	var summary rest.Summary

	_, err = env.client.Get(ctx, "/api/team/sum?userId=u1", nil, &summary, nil)
	rq.NoError(err)
	rq.EqualValues(2000, summary.Total)

	var board []rest.LeaderboardEntry

	_, err = env.client.Get(ctx, "/api/leaderboard", nil, &board, nil)
	rq.NoError(err)
	rq.Len(board, 2)
	rq.Equal(1, board[0].Deals)
}

func TestTasks(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)

	var forbidden errorBody

	resp, err := env.client.Post(ctx, "/api/tasks", nil,
		rest.CreateTaskRequest{Title: "invite", Description: "invite a friend", Reward: 300}, nil, &forbidden)
	rq.NoError(err)
	rq.Equal(http.StatusForbidden, resp.StatusCode)

	var task rest.Task

	resp, err = env.client.Post(ctx, "/api/tasks", nil,
		rest.CreateTaskRequest{Title: "invite", Description: "invite a friend", Reward: 300, IsAdmin: true}, &task, nil)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.NotEmpty(task.ID)
	rq.Empty(task.CompletedBy)

	var toggled rest.Task

	resp, err = env.client.Patch(ctx, "/api/tasks/"+task.ID, nil,
		rest.ToggleTaskRequest{UserID: "u1"}, &toggled, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal([]string{"u1"}, toggled.CompletedBy)

	var listed []rest.Task

	_, err = env.client.Get(ctx, "/api/tasks", nil, &listed, nil)
	rq.NoError(err)
	rq.Len(listed, 1)

	resp, err = env.client.Delete(ctx, "/api/tasks/"+task.ID+"?isAdmin=true", nil, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
}

func TestTelegramSync(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t)

	rq.NoError(env.mirrorLog.Append(ctx, entity.MirrorRecord{
		MessageID: 1,
		Text:      mirror.CreatedText("@ghost"),
		SentAt:    time.Now().Add(-time.Hour),
	}))

	var report rest.SyncReport

	resp, err := env.client.Post(ctx, "/api/telegram/sync", nil, struct{}{}, &report, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(report.OK)
	rq.Equal(1, report.Scanned)
	rq.Equal(1, report.Restored)

	var deals []rest.Deal

	_, err = env.client.Get(ctx, "/api/deals", nil, &deals, nil)
	rq.NoError(err)
	rq.Len(deals, 1)
	rq.Equal("@ghost", deals[0].Username)
	rq.True(deals[0].Restored)

	var last rest.SyncReport

	_, err = env.client.Get(ctx, "/api/telegram/sync", nil, &last, nil)
	rq.NoError(err)
	rq.Equal(report.Restored, last.Restored)

	// Повторный прогон ничего не дублирует.
	var again rest.SyncReport

	_, err = env.client.Post(ctx, "/api/telegram/sync", nil, struct{}{}, &again, nil)
	rq.NoError(err)
	rq.Equal(0, again.Restored)
}
