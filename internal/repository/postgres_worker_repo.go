package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/shiftman/internal/model"
)

// PostgresWorkerRepo はPostgreSQLを使用した従業員リポジトリ。
type PostgresWorkerRepo struct {
	db *sql.DB
}

// NewPostgresWorkerRepo はPostgresWorkerRepoを生成する。
func NewPostgresWorkerRepo(db *sql.DB) *PostgresWorkerRepo {
	return &PostgresWorkerRepo{db: db}
}

// FindByID は指定IDの従業員を取得する。見つからない場合はnilを返す。
func (r *PostgresWorkerRepo) FindByID(ctx context.Context, id string) (*model.Worker, error) {
	worker := &model.Worker{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM workers WHERE id = $1`,
		id,
	).Scan(&worker.ID, &worker.Name, &worker.CreatedAt, &worker.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find worker by ID: %w", err)
	}

	return worker, nil
}

// Save は従業員を保存する。同一IDが存在する場合は上書きする。
func (r *PostgresWorkerRepo) Save(ctx context.Context, worker *model.Worker) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workers (id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE
		 SET name = EXCLUDED.name, updated_at = EXCLUDED.updated_at`,
		worker.ID, worker.Name, worker.CreatedAt, worker.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save worker: %w", err)
	}
	return nil
}

// List は全従業員を名前の昇順で返す。
func (r *PostgresWorkerRepo) List(ctx context.Context) ([]*model.Worker, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM workers ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	workers := []*model.Worker{}
	for rows.Next() {
		worker := &model.Worker{}
		if err := rows.Scan(&worker.ID, &worker.Name, &worker.CreatedAt, &worker.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan worker row: %w", err)
		}
		workers = append(workers, worker)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate worker rows: %w", err)
	}

	return workers, nil
}

// DeleteByID は指定IDの従業員を削除する。削除した場合trueを返す。
func (r *PostgresWorkerRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM workers WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete worker: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// compile-time interface check
var _ WorkerRepository = (*PostgresWorkerRepo)(nil)
