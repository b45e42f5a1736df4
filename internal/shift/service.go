package shift

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hitoshi/shiftman/internal/model"
	"github.com/hitoshi/shiftman/internal/repository"
	"github.com/hitoshi/shiftman/internal/timeutil"
)

// Service はシフトCRUDのサービス層。
// 作成・更新は永続化済みの同一Worker分シフトと突き合わせて検証し、
// 合格した場合のみ書き込む。検証から書き込みまではworker単位の
// ロック下で行い、プロセス内のcheck-then-act競合を防ぐ。
type Service struct {
	repo   repository.ShiftRepository
	locker workerLocker
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(repo repository.ShiftRepository) *Service {
	return &Service{repo: repo}
}

// UpdateInput はシフト部分更新の入力。nilのフィールドは保存済みの値を維持する。
type UpdateInput struct {
	WorkerID *string
	Start    *string
	End      *string
}

// Create は新しいシフトを検証して作成する。
// 境界・長さ・重複のいずれかに違反する場合は*model.APIErrorを返す。
func (s *Service) Create(ctx context.Context, workerID, startISO, endISO string) (*model.Shift, error) {
	start, err := timeutil.Parse(startISO)
	if err != nil {
		return nil, err
	}
	end, err := timeutil.Parse(endISO)
	if err != nil {
		return nil, err
	}

	if err := ValidateBounds(start, end); err != nil {
		return nil, err
	}

	unlock := s.locker.Lock(workerID)
	defer unlock()

	others, err := s.repo.ListByWorkerID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("既存シフトの取得に失敗しました: %w", err)
	}

	candidate := &model.Shift{WorkerID: workerID, Start: start, End: end}
	if conflict := FindOverlap(candidate, others, ""); conflict != nil {
		return nil, model.NewShiftOverlapError(conflict)
	}

	now := time.Now().UTC()
	candidate.ID = uuid.NewString()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	if err := s.repo.Save(ctx, candidate); err != nil {
		return nil, fmt.Errorf("シフトの保存に失敗しました: %w", err)
	}

	return candidate, nil
}

// Update はシフトを部分更新する。
// 指定されなかったフィールドは保存済みの値で補完した上で、
// 実効的なWorkerの既存シフト（自分自身を除く）に対して
// 作成時と同じ検証を再実行する。
// 対象が存在しない場合はSHIFT_NOT_FOUNDを返す。
func (s *Service) Update(ctx context.Context, shiftID string, input UpdateInput) (*model.Shift, error) {
	existing, err := s.repo.FindByID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("シフトの取得に失敗しました: %w", err)
	}
	if existing == nil {
		return nil, model.NewShiftNotFoundError(shiftID)
	}

	workerID := existing.WorkerID
	if input.WorkerID != nil {
		workerID = *input.WorkerID
	}

	start := existing.Start
	if input.Start != nil {
		if start, err = timeutil.Parse(*input.Start); err != nil {
			return nil, err
		}
	}

	end := existing.End
	if input.End != nil {
		if end, err = timeutil.Parse(*input.End); err != nil {
			return nil, err
		}
	}

	if err := ValidateBounds(start, end); err != nil {
		return nil, err
	}

	// 重複検証は移動先のWorkerに対して行うため、実効worker_idでロックする
	unlock := s.locker.Lock(workerID)
	defer unlock()

	others, err := s.repo.ListByWorkerID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("既存シフトの取得に失敗しました: %w", err)
	}

	updated := &model.Shift{
		ID:        existing.ID,
		WorkerID:  workerID,
		Start:     start,
		End:       end,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}

	if conflict := FindOverlap(updated, others, shiftID); conflict != nil {
		return nil, model.NewShiftOverlapError(conflict)
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("シフトの保存に失敗しました: %w", err)
	}

	return updated, nil
}

// Get は指定IDのシフトを取得する。存在しない場合はSHIFT_NOT_FOUNDを返す。
func (s *Service) Get(ctx context.Context, shiftID string) (*model.Shift, error) {
	found, err := s.repo.FindByID(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("シフトの取得に失敗しました: %w", err)
	}
	if found == nil {
		return nil, model.NewShiftNotFoundError(shiftID)
	}
	return found, nil
}

// List はシフト一覧を開始時刻の昇順で返す。
// workerIDが空でない場合はそのWorkerのシフトのみ返す。
func (s *Service) List(ctx context.Context, workerID string) ([]*model.Shift, error) {
	var (
		shifts []*model.Shift
		err    error
	)
	if workerID != "" {
		shifts, err = s.repo.ListByWorkerID(ctx, workerID)
	} else {
		shifts, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("シフト一覧の取得に失敗しました: %w", err)
	}
	return shifts, nil
}

// Delete は指定IDのシフトを削除する。検証は行わない。
// 存在しない場合はSHIFT_NOT_FOUNDを返す。
func (s *Service) Delete(ctx context.Context, shiftID string) error {
	existed, err := s.repo.DeleteByID(ctx, shiftID)
	if err != nil {
		return fmt.Errorf("シフトの削除に失敗しました: %w", err)
	}
	if !existed {
		return model.NewShiftNotFoundError(shiftID)
	}
	return nil
}
