package shift

import "sync"

// workerLocker はworker_id単位の相互排他を提供する。
//
// シフトの作成・更新は「既存シフトを読んで検証してから書く」
// check-then-actの並びであり、同一Workerへの同時書き込みは両方が
// 検証を通過して重複不変条件を破りうる。workerLockerで検証から
// 永続化までを直列化し、プロセス内ではこの競合を排除する。
// レプリカをまたぐ直列化は対象外（単一ライタ前提のデプロイ）。
type workerLocker struct {
	mu sync.Map // worker_id -> *sync.Mutex
}

// Lock は指定Workerのロックを獲得する。解放は返されたunlockを呼ぶ。
func (l *workerLocker) Lock(workerID string) (unlock func()) {
	v, _ := l.mu.LoadOrStore(workerID, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
