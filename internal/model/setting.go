// Package model はドメインモデルを定義する。
package model

// TimezoneSetting は表示用タイムゾーンのグローバル設定を表す。
// インスタンスは常に1つだけ存在し（固定キー "default"）、削除されない。
// 保存済みタイムスタンプのUTC値には一切影響せず、読み出し時の
// 表示変換にのみ使われる。
type TimezoneSetting struct {
	Timezone string
}

// DefaultTimezone は設定が存在しない場合に使用するゾーン名。
const DefaultTimezone = "UTC"

// SettingKey はTimezoneSettingの固定識別キー。
const SettingKey = "default"
