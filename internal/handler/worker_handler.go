package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/shiftman/internal/model"
)

// WorkerServiceInterface は従業員ハンドラーが必要とするサービスインターフェース。
type WorkerServiceInterface interface {
	// Create は名前を正規化して従業員を登録する。
	Create(ctx context.Context, name string) (*model.Worker, error)
	// Get は従業員を取得する。見つからない場合はWORKER_NOT_FOUNDを返す。
	Get(ctx context.Context, workerID string) (*model.Worker, error)
	// List は全従業員を名前順で返す。
	List(ctx context.Context) ([]*model.Worker, error)
	// Update は従業員名を変更する。
	Update(ctx context.Context, workerID, name string) (*model.Worker, error)
	// Delete は従業員を削除する。
	Delete(ctx context.Context, workerID string) error
}

// WorkerMetricsRecorder は従業員操作のメトリクス記録のインターフェース。
type WorkerMetricsRecorder interface {
	RecordWorkerCreated()
}

// WorkerHandler は従業員管理のHTTPハンドラー。
type WorkerHandler struct {
	service WorkerServiceInterface
	metrics WorkerMetricsRecorder
}

// NewWorkerHandler はWorkerHandlerを生成する。metricsはnil可。
func NewWorkerHandler(service WorkerServiceInterface, metrics WorkerMetricsRecorder) *WorkerHandler {
	return &WorkerHandler{
		service: service,
		metrics: metrics,
	}
}

// workerRequest は従業員作成・更新リクエストのボディ。
type workerRequest struct {
	Name string `json:"name"`
}

// workerResponse は従業員情報のAPIレスポンス。
type workerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// toWorkerResponse はmodel.WorkerからAPIレスポンスに変換する。
func toWorkerResponse(worker *model.Worker) workerResponse {
	return workerResponse{
		ID:        worker.ID,
		Name:      worker.Name,
		CreatedAt: worker.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: worker.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// CreateWorker は従業員登録を処理する。
// POST /api/workers
func (h *WorkerHandler) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var req workerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	worker, err := h.service.Create(r.Context(), req.Name)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordWorkerCreated()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toWorkerResponse(worker))
}

// GetWorker は従業員詳細を取得する。
// GET /api/workers/:id
func (h *WorkerHandler) GetWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	worker, err := h.service.Get(r.Context(), workerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toWorkerResponse(worker))
}

// ListWorkers は従業員一覧を名前順で返す。
// GET /api/workers
func (h *WorkerHandler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]workerResponse, 0, len(workers))
	for _, worker := range workers {
		resp = append(resp, toWorkerResponse(worker))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// UpdateWorker は従業員名を更新する。
// PUT /api/workers/:id
func (h *WorkerHandler) UpdateWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	var req workerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequestBody(w)
		return
	}

	worker, err := h.service.Update(r.Context(), workerID, req.Name)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toWorkerResponse(worker))
}

// DeleteWorker は従業員を削除する。
// DELETE /api/workers/:id
func (h *WorkerHandler) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), workerID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
