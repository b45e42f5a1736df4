package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

// newRequestFrom は指定クライアントアドレスからのリクエストを生成する。
func newRequestFrom(method, target, remoteAddr string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     2, // 2 req/sec
		GeneralBurst:    5, // バースト5
		WriteRate:       1, // 未使用
		WriteBurst:      10,
		CleanupInterval: 1 * time.Minute,
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	mw := rl.GeneralMiddleware()

	handlerCallCount := 0
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCallCount++
		w.WriteHeader(http.StatusOK)
	}))

	// バースト内の5リクエストは全て通る
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/shifts", "10.0.0.1:51000"))

		if w.Result().StatusCode != http.StatusOK {
			t.Errorf("request %d: status = %d, want %d", i, w.Result().StatusCode, http.StatusOK)
		}
	}

	if handlerCallCount != 5 {
		t.Errorf("handler call count = %d, want 5", handlerCallCount)
	}
}

func TestRateLimitMiddleware_Returns429WhenLimitExceeded(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     1, // 1 req/sec
		GeneralBurst:    2, // バースト2
		WriteRate:       1,
		WriteBurst:      10,
		CleanupInterval: 1 * time.Minute,
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// バースト分の2リクエストは通る
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/shifts", "10.0.0.2:51000"))
		if w.Result().StatusCode != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i, w.Result().StatusCode, http.StatusOK)
		}
	}

	// 3リクエスト目は429
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/shifts", "10.0.0.2:51000"))

	resp := w.Result()
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusTooManyRequests)
	}

	// Retry-Afterヘッダーの検証
	retryAfter := resp.Header.Get("Retry-After")
	if retryAfter == "" {
		t.Error("expected Retry-After header")
	}
	if sec, err := strconv.Atoi(retryAfter); err != nil || sec < 1 {
		t.Errorf("Retry-After = %q, want integer >= 1", retryAfter)
	}

	// レスポンスボディの検証
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body["code"] != "rate_limit_exceeded" {
		t.Errorf("code = %q, want %q", body["code"], "rate_limit_exceeded")
	}
	if body["category"] != "system" {
		t.Errorf("category = %q, want %q", body["category"], "system")
	}
}

func TestRateLimitMiddleware_IsolatesClients(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     1,
		GeneralBurst:    1,
		WriteRate:       1,
		WriteBurst:      10,
		CleanupInterval: 1 * time.Minute,
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// クライアントAがバーストを使い切る
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/shifts", "10.0.0.3:51000"))
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("client A first request: status = %d, want 200", w.Result().StatusCode)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/shifts", "10.0.0.3:51000"))
	if w.Result().StatusCode != http.StatusTooManyRequests {
		t.Fatalf("client A second request: status = %d, want 429", w.Result().StatusCode)
	}

	// クライアントBは影響を受けない
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/shifts", "10.0.0.4:51000"))
	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("client B: status = %d, want 200", w.Result().StatusCode)
	}
}

func TestWriteMiddleware_IndependentFromGeneral(t *testing.T) {
	cfg := RateLimiterConfig{
		GeneralRate:     100,
		GeneralBurst:    100,
		WriteRate:       1,
		WriteBurst:      1,
		CleanupInterval: 1 * time.Minute,
	}

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	general := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	write := rl.WriteMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	// 書き込み系のバーストを使い切る
	w := httptest.NewRecorder()
	write.ServeHTTP(w, newRequestFrom(http.MethodPost, "/api/shifts", "10.0.0.5:51000"))
	if w.Result().StatusCode != http.StatusCreated {
		t.Fatalf("first write: status = %d, want 201", w.Result().StatusCode)
	}

	w = httptest.NewRecorder()
	write.ServeHTTP(w, newRequestFrom(http.MethodPost, "/api/shifts", "10.0.0.5:51000"))
	if w.Result().StatusCode != http.StatusTooManyRequests {
		t.Fatalf("second write: status = %d, want 429", w.Result().StatusCode)
	}

	// API全般のリミッターは独立しているので読み取りは通る
	w = httptest.NewRecorder()
	general.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/shifts", "10.0.0.5:51000"))
	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("read after write limit: status = %d, want 200", w.Result().StatusCode)
	}
}

func TestRateLimiter_TracksLimiterCounts(t *testing.T) {
	rl := NewRateLimiter(DefaultRateLimiterConfig())
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, addr := range []string{"10.1.0.1:1", "10.1.0.2:2", "10.1.0.3:3"} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, newRequestFrom(http.MethodGet, "/api/workers", addr))
	}

	if got := rl.GeneralLimiterCount(); got != 3 {
		t.Errorf("GeneralLimiterCount = %d, want 3", got)
	}
	if got := rl.WriteLimiterCount(); got != 0 {
		t.Errorf("WriteLimiterCount = %d, want 0", got)
	}
}

func TestClientKey_StripsPort(t *testing.T) {
	tests := []struct {
		remoteAddr string
		want       string
	}{
		{"192.168.1.10:54321", "192.168.1.10"},
		{"[::1]:8080", "::1"},
		{"192.168.1.10", "192.168.1.10"}, // port無しはそのまま
	}

	for _, tt := range tests {
		req := newRequestFrom(http.MethodGet, "/", tt.remoteAddr)
		if got := clientKey(req); got != tt.want {
			t.Errorf("clientKey(%q) = %q, want %q", tt.remoteAddr, got, tt.want)
		}
	}
}
