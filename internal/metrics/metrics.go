// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ハンドラーやサービス層から利用する。
type MetricsCollector interface {
	RecordShiftCreated()
	RecordShiftUpdated()
	RecordShiftRejected(reason string)
	RecordWorkerCreated()
	RecordHTTPStatus(statusCode int)
	RecordRequestDuration(duration time.Duration)
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	shiftCreated    prometheus.Counter
	shiftUpdated    prometheus.Counter
	shiftRejected   *prometheus.CounterVec
	workerCreated   prometheus.Counter
	httpStatus      *prometheus.CounterVec
	requestDuration prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		shiftCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shiftman_shift_created_total",
			Help: "シフト作成成功の合計数",
		}),
		shiftUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shiftman_shift_updated_total",
			Help: "シフト更新成功の合計数",
		}),
		shiftRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shiftman_shift_rejected_total",
			Help: "バリデーション拒否の理由別合計数",
		}, []string{"reason"}),
		workerCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shiftman_worker_created_total",
			Help: "従業員作成成功の合計数",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shiftman_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "shiftman_request_duration_seconds",
			Help:    "HTTPリクエスト処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.shiftCreated,
		c.shiftUpdated,
		c.shiftRejected,
		c.workerCreated,
		c.httpStatus,
		c.requestDuration,
	)

	return c
}

// RecordShiftCreated はシフト作成成功を記録する。
func (c *Collector) RecordShiftCreated() {
	c.shiftCreated.Inc()
}

// RecordShiftUpdated はシフト更新成功を記録する。
func (c *Collector) RecordShiftUpdated() {
	c.shiftUpdated.Inc()
}

// RecordShiftRejected はバリデーション拒否をエラーコード別に記録する。
func (c *Collector) RecordShiftRejected(reason string) {
	c.shiftRejected.WithLabelValues(reason).Inc()
}

// RecordWorkerCreated は従業員作成成功を記録する。
func (c *Collector) RecordWorkerCreated() {
	c.workerCreated.Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestDuration はリクエスト処理時間を記録する。
func (c *Collector) RecordRequestDuration(duration time.Duration) {
	c.requestDuration.Observe(duration.Seconds())
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
// ルーターが/metricsにマウントする。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
