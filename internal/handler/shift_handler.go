package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/shiftman/internal/model"
	"github.com/hitoshi/shiftman/internal/shift"
	"github.com/hitoshi/shiftman/internal/timeutil"
)

// ShiftServiceInterface はシフトハンドラーが必要とするサービスインターフェース。
type ShiftServiceInterface interface {
	// Create はバリデーションと重複チェックを経てシフトを登録する。
	Create(ctx context.Context, workerID, startISO, endISO string) (*model.Shift, error)
	// Update は指定フィールドのみを差し替えてシフトを更新する。
	Update(ctx context.Context, shiftID string, input shift.UpdateInput) (*model.Shift, error)
	// Get はシフトを取得する。見つからない場合はSHIFT_NOT_FOUNDを返す。
	Get(ctx context.Context, shiftID string) (*model.Shift, error)
	// List はシフト一覧を開始時刻順で返す。workerIDが空なら全件。
	List(ctx context.Context, workerID string) ([]*model.Shift, error)
	// Delete はシフトを削除する。
	Delete(ctx context.Context, shiftID string) error
}

// TimezoneProvider は読み取り時の表示タイムゾーンを解決するインターフェース。
type TimezoneProvider interface {
	// Get は設定済みタイムゾーンを返す。未設定・取得失敗時は"UTC"を返す。
	Get(ctx context.Context) string
}

// ShiftMetricsRecorder はシフト操作のメトリクス記録のインターフェース。
type ShiftMetricsRecorder interface {
	RecordShiftCreated()
	RecordShiftUpdated()
	RecordShiftRejected(reason string)
}

// ShiftHandler はシフト管理のHTTPハンドラー。
type ShiftHandler struct {
	service  ShiftServiceInterface
	timezone TimezoneProvider
	metrics  ShiftMetricsRecorder
}

// NewShiftHandler はShiftHandlerを生成する。metricsはnil可。
func NewShiftHandler(service ShiftServiceInterface, timezone TimezoneProvider, metrics ShiftMetricsRecorder) *ShiftHandler {
	return &ShiftHandler{
		service:  service,
		timezone: timezone,
		metrics:  metrics,
	}
}

// recordRejection はバリデーション起因のエラーをメトリクスに記録する。
func (h *ShiftHandler) recordRejection(err error) {
	if h.metrics == nil {
		return
	}
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		return
	}
	switch apiErr.Code {
	case model.ErrCodeInvalidTimestamp,
		model.ErrCodeEndBeforeStart,
		model.ErrCodeDurationExceeded,
		model.ErrCodeShiftOverlap:
		h.metrics.RecordShiftRejected(apiErr.Code)
	}
}

// createShiftRequest はシフト作成リクエストのボディ。
type createShiftRequest struct {
	WorkerID string `json:"worker_id"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// updateShiftRequest はシフト部分更新リクエストのボディ。
// 指定されなかったフィールドは既存値を維持する。
type updateShiftRequest struct {
	WorkerID *string `json:"worker_id"`
	Start    *string `json:"start"`
	End      *string `json:"end"`
}

// shiftResponse はシフト情報のAPIレスポンス。
// 読み取り系（GET）ではstartとendを設定済みタイムゾーンに変換して返し、
// 書き込み系（POST/PUT）では保存値どおりUTCのまま返す。
type shiftResponse struct {
	ID            string  `json:"id"`
	WorkerID      string  `json:"worker_id"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	DurationHours float64 `json:"duration_hours"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// renderZone は表示タイムゾーンを解決する。
// 変換不能なゾーンが保存されていた場合はレスポンス全体をUTCで統一する。
func (h *ShiftHandler) renderZone(ctx context.Context) string {
	zone := h.timezone.Get(ctx)
	if _, err := timeutil.Convert(time.Unix(0, 0), zone); err != nil {
		return model.DefaultTimezone
	}
	return zone
}

// toShiftResponse はmodel.Shiftから指定ゾーンのAPIレスポンスに変換する。
// zoneはrenderZoneで解決済みであることを前提とする。
func toShiftResponse(s *model.Shift, zone string) shiftResponse {
	start, err := timeutil.Convert(s.Start, zone)
	if err != nil {
		start = s.Start.UTC().Format(time.RFC3339)
	}
	end, err := timeutil.Convert(s.End, zone)
	if err != nil {
		end = s.End.UTC().Format(time.RFC3339)
	}

	return shiftResponse{
		ID:            s.ID,
		WorkerID:      s.WorkerID,
		Start:         start,
		End:           end,
		DurationHours: s.DurationHours(),
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// CreateShift はシフト登録を処理する。
// POST /api/shifts
func (h *ShiftHandler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req createShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	created, err := h.service.Create(r.Context(), req.WorkerID, req.Start, req.End)
	if err != nil {
		h.recordRejection(err)
		handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordShiftCreated()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	// 書き込みレスポンスはタイムゾーン変換せずUTCで返す
	json.NewEncoder(w).Encode(toShiftResponse(created, model.DefaultTimezone))
}

// GetShift はシフト詳細を取得する。
// GET /api/shifts/:id
func (h *ShiftHandler) GetShift(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "id")

	found, err := h.service.Get(r.Context(), shiftID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toShiftResponse(found, h.renderZone(r.Context())))
}

// ListShifts はシフト一覧を開始時刻順で返す。
// GET /api/shifts?worker_id=xxx
func (h *ShiftHandler) ListShifts(w http.ResponseWriter, r *http.Request) {
	workerID := r.URL.Query().Get("worker_id")

	shifts, err := h.service.List(r.Context(), workerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	zone := h.renderZone(r.Context())
	resp := make([]shiftResponse, 0, len(shifts))
	for _, s := range shifts {
		resp = append(resp, toShiftResponse(s, zone))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// UpdateShift はシフトを部分更新する。
// PUT /api/shifts/:id
func (h *ShiftHandler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "id")

	var req updateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	updated, err := h.service.Update(r.Context(), shiftID, shift.UpdateInput{
		WorkerID: req.WorkerID,
		Start:    req.Start,
		End:      req.End,
	})
	if err != nil {
		h.recordRejection(err)
		handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordShiftUpdated()
	}

	w.Header().Set("Content-Type", "application/json")
	// 書き込みレスポンスはタイムゾーン変換せずUTCで返す
	json.NewEncoder(w).Encode(toShiftResponse(updated, model.DefaultTimezone))
}

// DeleteShift はシフトを削除する。
// DELETE /api/shifts/:id
func (h *ShiftHandler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shiftID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), shiftID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
