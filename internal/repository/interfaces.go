// Package repository はデータ永続化のインターフェースを定義する。
//
// エンティティストアは種別（kind）ごとの型付きリポジトリとして抽象化する。
// get/put/delete/フィールド一致クエリに対応する操作のみを公開し、
// ストレージ固有の概念は実装側に閉じ込める。
package repository

import (
	"context"

	"github.com/hitoshi/shiftman/internal/model"
)

// WorkerRepository は従業員データの永続化インターフェース。
type WorkerRepository interface {
	// FindByID は指定IDの従業員を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Worker, error)

	// Save は従業員を保存する。同一IDが存在する場合は上書きする。
	Save(ctx context.Context, worker *model.Worker) error

	// List は全従業員を名前の昇順で返す。
	List(ctx context.Context) ([]*model.Worker, error)

	// DeleteByID は指定IDの従業員を削除する。削除した場合trueを返す。
	// 関連シフトは削除しない（参照の孤立を許容する）。
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// ShiftRepository はシフトデータの永続化インターフェース。
type ShiftRepository interface {
	// FindByID は指定IDのシフトを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Shift, error)

	// Save はシフトを保存する。同一IDが存在する場合は上書きする。
	Save(ctx context.Context, shift *model.Shift) error

	// ListByWorkerID は指定Workerのシフトを開始時刻の昇順で返す。
	// 重複検証が走査する集合であり、順序の安定が報告の決定性を支える。
	ListByWorkerID(ctx context.Context, workerID string) ([]*model.Shift, error)

	// List は全シフトを開始時刻の昇順で返す。
	List(ctx context.Context) ([]*model.Shift, error)

	// DeleteByID は指定IDのシフトを削除する。削除した場合trueを返す。
	DeleteByID(ctx context.Context, id string) (bool, error)
}

// SettingRepository はグローバル設定の永続化インターフェース。
type SettingRepository interface {
	// FindTimezone は保存済みタイムゾーン設定を取得する。
	// 未設定の場合はfound=falseを返す（エラーではない）。
	FindTimezone(ctx context.Context) (zone string, found bool, err error)

	// SaveTimezone はタイムゾーン設定を保存する。既存の値は上書きする。
	SaveTimezone(ctx context.Context, zone string) error
}
