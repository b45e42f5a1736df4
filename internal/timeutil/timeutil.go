// Package timeutil はISO 8601タイムスタンプの解析・変換ユーティリティを提供する。
//
// 内部表現は常にUTCのtime.Timeとし、特定タイムゾーンでの表示は
// 境界（API応答）でのみ行う。
package timeutil

import (
	"time"

	"github.com/hitoshi/shiftman/internal/model"
)

// parseLayouts はParseが受理するレイアウト。先頭から順に試行する。
// オフセットなしの表記はUTCとして解釈する（naive-as-UTC）。
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// Parse はISO 8601文字列をUTCのtime.Timeに解析する。
// 受理する形式:
//   - 数値オフセット付き（2024-01-01T09:00:00+09:00）
//   - 末尾Z（2024-01-01T09:00:00Z）
//   - オフセットなし（2024-01-01T09:00:00、UTCとみなす）
//
// 小数秒は任意。解析できない場合はINVALID_TIMESTAMPエラーを返す。
func Parse(iso string) (time.Time, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, model.NewInvalidTimestampError(iso)
}

// DurationHours はstartからendまでの経過時間を時間単位で返す。
// endがstartより前の場合は負値を返す（妥当性判定は呼び出し側が行う）。
func DurationHours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// Convert はtを指定IANAタイムゾーンで表示したISO 8601文字列を返す。
// 絶対時刻は変換しない（同一瞬間の別表記）。
// zoneが解決できない場合はUNKNOWN_TIMEZONEエラーを返す。
// このエラーを呼び出し側がそのままHTTP 500にしてはならない。
// 表示側はUTC表記へのフォールバックで応答を成立させること。
func Convert(t time.Time, zone string) (string, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return "", model.NewUnknownTimezoneError(zone)
	}
	return t.In(loc).Format(time.RFC3339), nil
}

// ValidZone はzoneが解決可能なIANAタイムゾーン名かを返す。
// time.LoadLocationは空文字列をUTCとして受理するため、ここでは不正として扱う。
func ValidZone(zone string) bool {
	if zone == "" {
		return false
	}
	_, err := time.LoadLocation(zone)
	return err == nil
}
