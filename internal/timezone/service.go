// Package timezone は表示用タイムゾーンのグローバル設定を管理する。
package timezone

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/shiftman/internal/model"
	"github.com/hitoshi/shiftman/internal/repository"
	"github.com/hitoshi/shiftman/internal/timeutil"
)

// Service はタイムゾーン設定のサービス層。
// 設定はアンビエントなグローバル状態としてではなく、依存として
// 明示的に注入して使用する。
type Service struct {
	repo repository.SettingRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(repo repository.SettingRepository) *Service {
	return &Service{repo: repo}
}

// Lookup は保存済みタイムゾーン設定を型付きで取得する。
// 戻り値は「未設定（found=false, err=nil）」と「ストレージ障害（err != nil）」を
// 区別する。フォールバック値への丸めはGetが行う。
func (s *Service) Lookup(ctx context.Context) (zone string, found bool, err error) {
	zone, found, err = s.repo.FindTimezone(ctx)
	if err != nil {
		return "", false, fmt.Errorf("タイムゾーン設定の取得に失敗しました: %w", err)
	}
	return zone, found, nil
}

// Get は現在のタイムゾーン設定を返す。
// 未設定またはストレージ障害時は"UTC"にフォールバックする（fail-open）。
// 障害はログに残すのみで呼び出し側には伝播しない。
func (s *Service) Get(ctx context.Context) string {
	zone, found, err := s.Lookup(ctx)
	if err != nil {
		slog.Error("timezone lookup failed, falling back to UTC",
			slog.String("error", err.Error()),
		)
		return model.DefaultTimezone
	}
	if !found {
		return model.DefaultTimezone
	}
	return zone
}

// Set はタイムゾーン設定を保存し、保存した値を返す。
// IANAゾーン名として解決できない値はUNKNOWN_TIMEZONEで拒否する。
func (s *Service) Set(ctx context.Context, zone string) (string, error) {
	if !timeutil.ValidZone(zone) {
		return "", model.NewUnknownTimezoneError(zone)
	}
	if err := s.repo.SaveTimezone(ctx, zone); err != nil {
		return "", fmt.Errorf("タイムゾーン設定の保存に失敗しました: %w", err)
	}
	return zone, nil
}
