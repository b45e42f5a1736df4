// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: validation, shift, timezone, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidTimestamp  = "INVALID_TIMESTAMP"
	ErrCodeEndBeforeStart    = "END_BEFORE_START"
	ErrCodeDurationExceeded  = "DURATION_EXCEEDED"
	ErrCodeShiftOverlap      = "SHIFT_OVERLAP"
	ErrCodeShiftNotFound     = "SHIFT_NOT_FOUND"
	ErrCodeWorkerNotFound    = "WORKER_NOT_FOUND"
	ErrCodeInvalidWorkerName = "INVALID_WORKER_NAME"
	ErrCodeUnknownTimezone   = "UNKNOWN_TIMEZONE"
)

// NewInvalidTimestampError はタイムスタンプ解析失敗エラーを生成する。
func NewInvalidTimestampError(input string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidTimestamp,
		Message:  fmt.Sprintf("日時の形式が不正です: %s", input),
		Category: "validation",
		Action:   "ISO 8601形式（例: 2024-01-01T09:00:00Z）で指定してください。",
	}
}

// NewEndBeforeStartError は終了時刻が開始時刻以前の場合のエラーを生成する。
func NewEndBeforeStartError() *APIError {
	return &APIError{
		Code:     ErrCodeEndBeforeStart,
		Message:  "終了時刻は開始時刻より後である必要があります。",
		Category: "shift",
		Action:   "開始時刻と終了時刻を確認してください。",
	}
}

// NewDurationExceededError はシフト長が上限を超えた場合のエラーを生成する。
// hoursには実際のシフト長（時間）を渡す。
func NewDurationExceededError(hours float64) *APIError {
	return &APIError{
		Code:     ErrCodeDurationExceeded,
		Message:  fmt.Sprintf("シフトの長さ（%.2f時間）が上限の12時間を超えています。", hours),
		Category: "shift",
		Action:   "シフトは12時間以内に収まるよう分割してください。",
	}
}

// NewShiftOverlapError は既存シフトとの重複エラーを生成する。
// conflictには重複が検出された既存シフトを渡す。
func NewShiftOverlapError(conflict *Shift) *APIError {
	return &APIError{
		Code: ErrCodeShiftOverlap,
		Message: fmt.Sprintf("既存のシフト（%s 〜 %s）と重複しています。",
			conflict.Start.Format("2006-01-02T15:04:05Z07:00"),
			conflict.End.Format("2006-01-02T15:04:05Z07:00")),
		Category: "shift",
		Action:   "同じ従業員の既存シフトと重ならない時間帯を指定してください。",
	}
}

// NewShiftNotFoundError はシフト未検出エラーを生成する。
func NewShiftNotFoundError(shiftID string) *APIError {
	return &APIError{
		Code:     ErrCodeShiftNotFound,
		Message:  fmt.Sprintf("指定されたシフトが見つかりません: %s", shiftID),
		Category: "shift",
		Action:   "シフトIDを確認してください。",
	}
}

// NewWorkerNotFoundError は従業員未検出エラーを生成する。
func NewWorkerNotFoundError(workerID string) *APIError {
	return &APIError{
		Code:     ErrCodeWorkerNotFound,
		Message:  fmt.Sprintf("指定された従業員が見つかりません: %s", workerID),
		Category: "validation",
		Action:   "従業員IDを確認してください。",
	}
}

// NewInvalidWorkerNameError は従業員名が不正な場合のエラーを生成する。
func NewInvalidWorkerNameError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidWorkerName,
		Message:  fmt.Sprintf("従業員名が不正です: %s", reason),
		Category: "validation",
		Action:   "名前は1〜200文字で指定してください。",
	}
}

// NewUnknownTimezoneError は解決できないIANAタイムゾーン名のエラーを生成する。
func NewUnknownTimezoneError(zone string) *APIError {
	return &APIError{
		Code:     ErrCodeUnknownTimezone,
		Message:  fmt.Sprintf("不明なタイムゾーンです: %s", zone),
		Category: "timezone",
		Action:   "IANAタイムゾーン名（例: Asia/Tokyo, America/New_York）を指定してください。",
	}
}
