// Package security はアプリケーションのセキュリティ機能を提供する。
//
// NameSanitizer はユーザー入力の表示名からHTMLマークアップを除去し、
// フロントエンドでそのまま表示されてもXSSにならないプレーンテキストに
// 正規化する。bluemondayの厳格ポリシー（全タグ除去）を使用する。
package security

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// NameSanitizer は表示名のサニタイズ機能を提供する。
// bluemondayのポリシーを保持し、スレッドセーフに処理を行う。
type NameSanitizer struct {
	policy *bluemonday.Policy
}

// NewNameSanitizer はNameSanitizerの新しいインスタンスを生成する。
// StrictPolicy（許可タグなし）のため全てのタグが除去され、
// script/style要素は中身ごと破棄される。
func NewNameSanitizer() *NameSanitizer {
	return &NameSanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize は名前からマークアップを除去したプレーンテキストを返す。
// bluemondayはテキストをHTMLエスケープして返すため、& などの通常文字が
// 実体参照にならないようアンエスケープして戻す。
// 同一入力に対して常に同一出力を返す（冪等）。
func (s *NameSanitizer) Sanitize(raw string) string {
	return html.UnescapeString(s.policy.Sanitize(raw))
}
