package server

import (
	"net/http"

	"aura/gen/go/aura/v1/aurav1connect"
	"aura/internal/gateway/handler"
	"aura/internal/gateway/handler/rpc"
	"aura/internal/gateway/middleware"
)

func NewMux(
	dispatchHandler *rpc.DispatchHandler,
	stateFeedHandler *rpc.StateFeedHandler,
	healthHandler *handler.HealthHandler,
) http.Handler {
	mux := http.NewServeMux()

	// RPC handlers
	mux.Handle(aurav1connect.NewDispatchServiceHandler(dispatchHandler))

	// Live-state subscription channel
	mux.HandleFunc("/ws/state", stateFeedHandler.HandleStateWS)

	// Health
	mux.HandleFunc("/healthz", healthHandler.HandleHealth)

	return middleware.CORS(mux)
}
