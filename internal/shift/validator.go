// Package shift はシフト管理のドメインロジックを提供する。
//
// バリデーション（境界・長さ・重複）は純粋関数として実装し、I/Oを持たない。
// 永続化との突き合わせはServiceが担う。
package shift

import (
	"time"

	"github.com/hitoshi/shiftman/internal/model"
	"github.com/hitoshi/shiftman/internal/timeutil"
)

// ValidateBounds はシフトの時刻境界と長さを検証する。
//
// 検証順序は境界→長さで固定する。end <= start の場合は
// END_BEFORE_STARTを返し、長さの検証は行わない（逆転した区間の
// 長さはエラーメッセージとして意味を持たないため）。
// 長さが12時間を超える場合はDURATION_EXCEEDEDを返す。
// ちょうど12時間は許容する。
func ValidateBounds(start, end time.Time) error {
	if !end.After(start) {
		return model.NewEndBeforeStartError()
	}
	if hours := timeutil.DurationHours(start, end); hours > model.MaxShiftDurationHours {
		return model.NewDurationExceededError(hours)
	}
	return nil
}

// FindOverlap はcandidateと重複する既存シフトを探す。
//
// othersを先頭から走査し、IDがexcludeIDと一致するもの（更新対象自身）を
// 除いて最初に重複した1件を返す。重複がなければnilを返す。
// 半開区間 [Start, End) 同士の判定のため、接するシフトは重複にならない。
// othersの順序が同じであれば返す1件も常に同じ（報告の決定性）。
func FindOverlap(candidate *model.Shift, others []*model.Shift, excludeID string) *model.Shift {
	for _, other := range others {
		if excludeID != "" && other.ID == excludeID {
			continue
		}
		if candidate.Overlaps(other) {
			return other
		}
	}
	return nil
}
