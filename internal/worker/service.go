// Package worker は従業員管理のドメインロジックを提供する。
package worker

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/hitoshi/shiftman/internal/model"
	"github.com/hitoshi/shiftman/internal/repository"
)

// NameSanitizer は従業員名からマークアップを除去するインターフェース。
// 名前はフロントエンドにそのまま表示されるため、保存前に必ず通す。
type NameSanitizer interface {
	Sanitize(raw string) string
}

// Service は従業員CRUDのサービス層。
type Service struct {
	repo      repository.WorkerRepository
	sanitizer NameSanitizer
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(repo repository.WorkerRepository, sanitizer NameSanitizer) *Service {
	return &Service{repo: repo, sanitizer: sanitizer}
}

// normalizeName は名前をサニタイズ・トリムして検証する。
// 空または200文字超はINVALID_WORKER_NAME。
func (s *Service) normalizeName(name string) (string, error) {
	cleaned := strings.TrimSpace(s.sanitizer.Sanitize(name))
	if cleaned == "" {
		return "", model.NewInvalidWorkerNameError("名前が空です")
	}
	if utf8.RuneCountInString(cleaned) > model.WorkerNameMaxLength {
		return "", model.NewInvalidWorkerNameError(
			fmt.Sprintf("名前が%d文字を超えています", model.WorkerNameMaxLength))
	}
	return cleaned, nil
}

// Create は新しい従業員を作成する。IDはランダムに生成する。
func (s *Service) Create(ctx context.Context, name string) (*model.Worker, error) {
	cleaned, err := s.normalizeName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := &model.Worker{
		ID:        uuid.NewString(),
		Name:      cleaned,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, created); err != nil {
		return nil, fmt.Errorf("従業員の保存に失敗しました: %w", err)
	}

	return created, nil
}

// Get は指定IDの従業員を取得する。存在しない場合はWORKER_NOT_FOUNDを返す。
func (s *Service) Get(ctx context.Context, workerID string) (*model.Worker, error) {
	found, err := s.repo.FindByID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("従業員の取得に失敗しました: %w", err)
	}
	if found == nil {
		return nil, model.NewWorkerNotFoundError(workerID)
	}
	return found, nil
}

// List は全従業員を名前の昇順で返す。
func (s *Service) List(ctx context.Context) ([]*model.Worker, error) {
	workers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("従業員一覧の取得に失敗しました: %w", err)
	}
	return workers, nil
}

// Update は従業員の名前を更新する。存在しない場合はWORKER_NOT_FOUNDを返す。
func (s *Service) Update(ctx context.Context, workerID, name string) (*model.Worker, error) {
	cleaned, err := s.normalizeName(name)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("従業員の取得に失敗しました: %w", err)
	}
	if existing == nil {
		return nil, model.NewWorkerNotFoundError(workerID)
	}

	existing.Name = cleaned
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("従業員の保存に失敗しました: %w", err)
	}

	return existing, nil
}

// Delete は指定IDの従業員を削除する。存在しない場合はWORKER_NOT_FOUNDを返す。
// 関連シフトは削除しない（シフト側のworker_idは孤立参照として残る）。
func (s *Service) Delete(ctx context.Context, workerID string) error {
	existed, err := s.repo.DeleteByID(ctx, workerID)
	if err != nil {
		return fmt.Errorf("従業員の削除に失敗しました: %w", err)
	}
	if !existed {
		return model.NewWorkerNotFoundError(workerID)
	}
	return nil
}
