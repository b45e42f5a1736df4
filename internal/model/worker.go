// Package model はドメインモデルを定義する。
package model

import "time"

// Worker はシフトを割り当てられる従業員を表す。
// シフトとの間に所有関係はなく、WorkerのDeleteは関連シフトを削除しない
// （シフト側のworker_idが孤立参照になることを許容する）。
type Worker struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkerNameMaxLength はWorker名の最大文字数（rune単位）。
const WorkerNameMaxLength = 200
