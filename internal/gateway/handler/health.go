// Package handler holds the plain HTTP handlers that live next to the RPC
// surface: health checking and anything else that does not need connect.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"aura/internal/gateway/repository/object"
)

// HealthHandler reports per-dependency status so operators can tell which
// collaborator is down.
type HealthHandler struct {
	store object.Store
}

func NewHealthHandler(store object.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := map[string]string{}
	healthy := true

	if err := h.store.Ping(ctx); err != nil {
		status["object_store"] = "FAIL: " + err.Error()
		healthy = false
	} else {
		status["object_store"] = "OK"
	}

	w.Header().Set("Content-Type", "application/json")
	if !healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(status)
}
