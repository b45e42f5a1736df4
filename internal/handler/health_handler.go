package handler

import (
	"context"
	"encoding/json"
	"net/http"
)

// Version はサービスのバージョン。ルートエンドポイントで返す。
const Version = "1.0.0"

// DBPinger はヘルスチェックでのDB疎通確認のためのインターフェース。
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler はサービス情報とヘルスチェックのHTTPハンドラー。
type HealthHandler struct {
	db DBPinger
}

// NewHealthHandler はHealthHandlerを生成する。
func NewHealthHandler(db DBPinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root はサービス情報を返す。
// GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Shift Management API",
		"version": Version,
	})
}

// Health はDB疎通を確認してヘルス状態を返す。
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
	}

	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
