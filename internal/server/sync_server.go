package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golden_traff/internal/worker"
	"golden_traff/pkg/httpx/reply"
	"golden_traff/pkg/rest"
)

type reconciler interface {
	Run(ctx context.Context) (worker.Report, error)
	LastReport() (worker.Report, bool)
}

// SyncServer запускает восстановление сделок из истории зеркала по запросу.
type SyncServer struct {
	reconciler reconciler
}

func NewSyncServer(reconciler reconciler) SyncServer {
	return SyncServer{
		reconciler: reconciler,
	}
}

func (s SyncServer) postTelegramSync(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	report, err := s.reconciler.Run(ctx)
	if err != nil {
		return fmt.Errorf("reconciler.Run: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSyncReport(report))

	return nil
}

func (s SyncServer) getTelegramSync(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	report, ok := s.reconciler.LastReport()
	if !ok {
		reply.JSON(ctx, w, http.StatusOK, rest.SyncReport{OK: true})

		return nil
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSyncReport(report))

	return nil
}

func newRESTSyncReport(report worker.Report) rest.SyncReport {
	return rest.SyncReport{
		OK:         true,
		Scanned:    report.Scanned,
		Matched:    report.Matched,
		Restored:   report.Restored,
		Duplicates: report.Duplicates,
		RanAt:      report.RanAt.Format(time.RFC3339),
	}
}
