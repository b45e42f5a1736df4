package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hitoshi/shiftman/internal/model"
)

// PostgresSettingRepo はPostgreSQLを使用したグローバル設定リポジトリ。
// タイムゾーン設定は固定キー1行のシングルトンとして保持する。
type PostgresSettingRepo struct {
	db *sql.DB
}

// NewPostgresSettingRepo はPostgresSettingRepoを生成する。
func NewPostgresSettingRepo(db *sql.DB) *PostgresSettingRepo {
	return &PostgresSettingRepo{db: db}
}

// FindTimezone は保存済みタイムゾーン設定を取得する。
// 未設定の場合はfound=falseを返す（エラーではない）。
func (r *PostgresSettingRepo) FindTimezone(ctx context.Context) (string, bool, error) {
	var zone string
	err := r.db.QueryRowContext(ctx,
		`SELECT timezone FROM settings WHERE key = $1`,
		model.SettingKey,
	).Scan(&zone)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to find timezone setting: %w", err)
	}

	return zone, true, nil
}

// SaveTimezone はタイムゾーン設定を保存する。既存の値は上書きする。
func (r *PostgresSettingRepo) SaveTimezone(ctx context.Context, zone string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, timezone, updated_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE
		 SET timezone = EXCLUDED.timezone, updated_at = EXCLUDED.updated_at`,
		model.SettingKey, zone, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save timezone setting: %w", err)
	}
	return nil
}

// compile-time interface check
var _ SettingRepository = (*PostgresSettingRepo)(nil)
