// Package model はドメインモデルを定義する。
package model

import "time"

// Shift は1人のWorkerに割り当てられた勤務時間帯を表す。
// StartとEndは常にUTCで保持し、タイムゾーン変換はAPI応答時にのみ行う。
// 区間は半開区間 [Start, End) として扱い、端点が一致するシフト同士は
// 重複とみなさない。
type Shift struct {
	ID        string
	WorkerID  string
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MaxShiftDurationHours はシフト1件の最大長（時間）。
const MaxShiftDurationHours = 12.0

// DurationHours はシフトの長さを時間単位で返す。
// 保存せず読み出しごとに計算する派生値。StartとEndが乖離しないよう、
// キャッシュ・永続化してはならない。
func (s *Shift) DurationHours() float64 {
	return s.End.Sub(s.Start).Hours()
}

// Overlaps は2つの半開区間 [Start, End) が重複するかを判定する。
// 判定式: s.Start < other.End && other.Start < s.End
// End == other.Start のような接するシフトは重複ではない。
func (s *Shift) Overlaps(other *Shift) bool {
	return s.Start.Before(other.End) && other.Start.Before(s.End)
}
