package media

import (
	"fmt"

	"github.com/SlpAus/game-night-vote-backend/internal/game"
	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
	"github.com/SlpAus/game-night-vote-backend/pkg/lifecycle"
)

// StartPrefetcher 在后台为目录中的所有游戏预热媒体缓存。
// 它逐个处理并在条目之间节流休眠，收到停机信号时立刻退出。
func StartPrefetcher(handle *lifecycle.Handle) {
	defer handle.Close()
	fmt.Println("媒体预取器已启动。")

	fetched, skipped, failed := 0, 0, 0
	for _, g := range game.Snapshot() {
		select {
		case <-handle.Done():
			fmt.Println("媒体预取器: 收到停机信号，提前退出。")
			return
		default:
		}

		if g.MediaRef == "" {
			continue
		}
		if !database.IsRedisHealthy() {
			fmt.Println("媒体预取器: Redis不可用，本轮预取中止。")
			return
		}
		if IsCached(g.MediaRef) {
			skipped++
			continue
		}

		if _, err := GetInfoByRef(g.MediaRef); err != nil {
			// 单个失败不影响其余条目，也绝不影响投票主流程
			failed++
		} else {
			fetched++
		}

		if err := handle.Sleep(prefetchInterval); err != nil {
			fmt.Println("媒体预取器: 收到停机信号，提前退出。")
			return
		}
	}

	fmt.Printf("媒体预取器完成: 新取 %d, 已缓存 %d, 失败 %d。\n", fetched, skipped, failed)
}
