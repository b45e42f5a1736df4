package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/shiftman/internal/metrics"
	"github.com/hitoshi/shiftman/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	Logger            *slog.Logger

	// サービス
	WorkerService   WorkerServiceInterface
	ShiftService    ShiftServiceInterface
	TimezoneService TimezoneServiceInterface

	// ヘルスチェック
	DB DBPinger

	// メトリクス。Metricsがnilの場合は記録せず、Gathererがnilの場合は/metricsを公開しない。
	Metrics         metrics.MetricsCollector
	MetricsGatherer prometheus.Gatherer
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	RecoveryMiddleware → CORSMiddleware → LoggingMiddleware → MetricsMiddleware → RateLimitMiddleware(GeneralMiddleware)
//
// 書き込み系のシフト・従業員・タイムゾーンエンドポイントには書き込み専用レート制限を追加する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	if deps.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	}
	if deps.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.Metrics))
	}

	workerHandler := NewWorkerHandler(deps.WorkerService, deps.Metrics)
	shiftHandler := NewShiftHandler(deps.ShiftService, deps.TimezoneService, deps.Metrics)
	timezoneHandler := NewTimezoneHandler(deps.TimezoneService)
	healthHandler := NewHealthHandler(deps.DB)

	// --- レート制限の外に置くルート ---

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)

	if deps.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	// --- APIルート ---
	// ミドルウェアスタック: RateLimit(General)、書き込みはさらにRateLimit(Write)
	r.Group(func(r chi.Router) {
		var writeLimit func(http.Handler) http.Handler
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.GeneralMiddleware())
			writeLimit = deps.RateLimiter.WriteMiddleware()
		} else {
			writeLimit = func(next http.Handler) http.Handler { return next }
		}

		// 従業員管理
		r.Route("/api/workers", func(r chi.Router) {
			r.Get("/", workerHandler.ListWorkers)
			r.With(writeLimit).Post("/", workerHandler.CreateWorker)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", workerHandler.GetWorker)
				r.With(writeLimit).Put("/", workerHandler.UpdateWorker)
				r.With(writeLimit).Delete("/", workerHandler.DeleteWorker)
			})
		})

		// シフト管理
		r.Route("/api/shifts", func(r chi.Router) {
			r.Get("/", shiftHandler.ListShifts)
			r.With(writeLimit).Post("/", shiftHandler.CreateShift)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", shiftHandler.GetShift)
				r.With(writeLimit).Put("/", shiftHandler.UpdateShift)
				r.With(writeLimit).Delete("/", shiftHandler.DeleteShift)
			})
		})

		// 表示タイムゾーン設定
		r.Route("/api/timezone", func(r chi.Router) {
			r.Get("/", timezoneHandler.GetTimezone)
			r.With(writeLimit).Post("/", timezoneHandler.SetTimezone)
		})
	})

	return r
}
