package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// NewRecoveryMiddleware はpanic発生時にプロセスクラッシュを防ぎ、
// 他のAPIエラーと同じJSON形式で500レスポンスを返すミドルウェアを生成する。
func NewRecoveryMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("panic recovered",
						slog.Any("panic", rec),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					)
					writePanicResponse(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// writePanicResponse はハンドラー層のエラーレスポンスと同じ
// エンベロープで500 Internal Server Errorを書き込む。
func writePanicResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)

	json.NewEncoder(w).Encode(map[string]string{
		"code":     "INTERNAL_ERROR",
		"message":  "An unexpected error occurred.",
		"category": "system",
		"action":   "Please try again later.",
	})
}
