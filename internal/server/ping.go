package server

import (
	"net/http"
	"time"

	"golden_traff/pkg/httpx/reply"
	"golden_traff/pkg/rest"
)

func (s Server) getPing(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, rest.Ping{
		Status:    "ok",
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   "pong",
	})

	return nil
}
