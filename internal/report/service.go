package report

import (
	"fmt"

	"github.com/SlpAus/game-night-vote-backend/internal/game"
	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
	"github.com/SlpAus/game-night-vote-backend/internal/user"
	"github.com/SlpAus/game-night-vote-backend/internal/vote"
)

// GenerateResults 是获取结果报告的统一入口。
// Redis健康时优先使用与当前数据版本匹配的缓存；
// Redis不可用时直接从持久化存储计算，结果页始终可用。
func GenerateResults() (*ResultsReport, error) {
	if !database.IsRedisHealthy() {
		return computeFromStore()
	}

	version, err := database.GetDataVersion()
	if err != nil {
		// 读取版本失败按缓存未命中处理
		version = -1
	}

	// 1. 尝试从缓存获取
	if version >= 0 {
		cached, err := GetResultsCache(version)
		if err == nil && cached != nil {
			return cached, nil
		}
	}

	// 2. 缓存未命中，从存储计算
	report, err := computeFromStore()
	if err != nil {
		return nil, err
	}

	// 3. 异步回填缓存，不阻塞本次请求
	if version >= 0 {
		go func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Printf("严重错误: 缓存结果报告的goroutine发生panic: %v\n", r)
				}
			}()
			_ = SetResultsCache(report, version)
		}()
	}

	return report, nil
}

// computeFromStore 加载目录、用户和完整台账，执行一次聚合。
func computeFromStore() (*ResultsReport, error) {
	users, err := user.LoadAll(database.DB)
	if err != nil {
		return nil, err
	}
	events, err := vote.LoadAllEvents(database.DB)
	if err != nil {
		return nil, err
	}

	report := ComputeResults(game.Snapshot(), users, events)
	return &report, nil
}
