package handler

import (
	"context"
	"encoding/json"
	"net/http"
)

// TimezoneServiceInterface はタイムゾーンハンドラーが必要とするサービスインターフェース。
type TimezoneServiceInterface interface {
	// Get は設定済みタイムゾーンを返す。未設定・取得失敗時は"UTC"を返す。
	Get(ctx context.Context) string
	// Set はIANAゾーン名を検証してから保存する。
	Set(ctx context.Context, zone string) (string, error)
}

// TimezoneHandler は表示タイムゾーン設定のHTTPハンドラー。
type TimezoneHandler struct {
	service TimezoneServiceInterface
}

// NewTimezoneHandler はTimezoneHandlerを生成する。
func NewTimezoneHandler(service TimezoneServiceInterface) *TimezoneHandler {
	return &TimezoneHandler{service: service}
}

// timezoneRequest はタイムゾーン設定リクエストのボディ。
type timezoneRequest struct {
	Timezone string `json:"timezone"`
}

// timezoneResponse はタイムゾーン設定のAPIレスポンス。
type timezoneResponse struct {
	Timezone string `json:"timezone"`
}

// GetTimezone は現在の表示タイムゾーンを返す。
// GET /api/timezone
func (h *TimezoneHandler) GetTimezone(w http.ResponseWriter, r *http.Request) {
	zone := h.service.Get(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(timezoneResponse{Timezone: zone})
}

// SetTimezone は表示タイムゾーンを設定する。
// POST /api/timezone
func (h *TimezoneHandler) SetTimezone(w http.ResponseWriter, r *http.Request) {
	var req timezoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	zone, err := h.service.Set(r.Context(), req.Timezone)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(timezoneResponse{Timezone: zone})
}
