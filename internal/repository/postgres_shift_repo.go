package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/shiftman/internal/model"
)

// PostgresShiftRepo はPostgreSQLを使用したシフトリポジトリ。
// start_at/end_atはtimestamptzで保持し、読み出し時にUTCへ正規化する。
type PostgresShiftRepo struct {
	db *sql.DB
}

// NewPostgresShiftRepo はPostgresShiftRepoを生成する。
func NewPostgresShiftRepo(db *sql.DB) *PostgresShiftRepo {
	return &PostgresShiftRepo{db: db}
}

// FindByID は指定IDのシフトを取得する。見つからない場合はnilを返す。
func (r *PostgresShiftRepo) FindByID(ctx context.Context, id string) (*model.Shift, error) {
	shift := &model.Shift{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, worker_id, start_at, end_at, created_at, updated_at
		 FROM shifts WHERE id = $1`,
		id,
	).Scan(&shift.ID, &shift.WorkerID, &shift.Start, &shift.End, &shift.CreatedAt, &shift.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find shift by ID: %w", err)
	}

	normalize(shift)
	return shift, nil
}

// Save はシフトを保存する。同一IDが存在する場合は上書きする。
func (r *PostgresShiftRepo) Save(ctx context.Context, shift *model.Shift) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO shifts (id, worker_id, start_at, end_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE
		 SET worker_id = EXCLUDED.worker_id,
		     start_at = EXCLUDED.start_at,
		     end_at = EXCLUDED.end_at,
		     updated_at = EXCLUDED.updated_at`,
		shift.ID, shift.WorkerID, shift.Start, shift.End, shift.CreatedAt, shift.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save shift: %w", err)
	}
	return nil
}

// ListByWorkerID は指定Workerのシフトを開始時刻の昇順で返す。
func (r *PostgresShiftRepo) ListByWorkerID(ctx context.Context, workerID string) ([]*model.Shift, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, worker_id, start_at, end_at, created_at, updated_at
		 FROM shifts WHERE worker_id = $1 ORDER BY start_at ASC`,
		workerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts by worker: %w", err)
	}
	defer rows.Close()

	return scanShifts(rows)
}

// List は全シフトを開始時刻の昇順で返す。
func (r *PostgresShiftRepo) List(ctx context.Context) ([]*model.Shift, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, worker_id, start_at, end_at, created_at, updated_at
		 FROM shifts ORDER BY start_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return scanShifts(rows)
}

// DeleteByID は指定IDのシフトを削除する。削除した場合trueを返す。
func (r *PostgresShiftRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM shifts WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete shift: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// scanShifts は結果セットをシフトのスライスに変換する。
func scanShifts(rows *sql.Rows) ([]*model.Shift, error) {
	shifts := []*model.Shift{}
	for rows.Next() {
		shift := &model.Shift{}
		if err := rows.Scan(&shift.ID, &shift.WorkerID, &shift.Start, &shift.End, &shift.CreatedAt, &shift.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		normalize(shift)
		shifts = append(shifts, shift)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift rows: %w", err)
	}
	return shifts, nil
}

// normalize はドライバが返すタイムスタンプをUTCへ正規化する。
// lib/pqはtimestamptzをセッションのローカルオフセットで返すことがある。
func normalize(shift *model.Shift) {
	shift.Start = shift.Start.UTC()
	shift.End = shift.End.UTC()
	shift.CreatedAt = shift.CreatedAt.UTC()
	shift.UpdatedAt = shift.UpdatedAt.UTC()
}

// compile-time interface check
var _ ShiftRepository = (*PostgresShiftRepo)(nil)
