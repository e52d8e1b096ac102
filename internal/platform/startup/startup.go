package startup

import (
	"fmt"

	"github.com/SlpAus/game-night-vote-backend/internal/game"
	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
	"github.com/SlpAus/game-night-vote-backend/internal/report"
	"github.com/SlpAus/game-night-vote-backend/internal/user"
	"github.com/SlpAus/game-night-vote-backend/internal/vote"
)

// InitializeApplication 是应用首次启动时执行的总入口。
// 按依赖顺序初始化各模块：先迁移用户和台账，再加载组合目录。
func InitializeApplication() error {
	fmt.Println("开始应用首次初始化...")

	if err := user.PrimeDB(); err != nil {
		return err
	}
	if err := vote.PrimeDB(); err != nil {
		return err
	}
	if err := game.PrimeDB(); err != nil {
		return err
	}

	fmt.Println("应用初始化完成！")
	return nil
}

// RebuildCache 在Redis重启后重建热数据。
// 投票数据的事实来源是SQLite，这里只需要作废旧缓存并预热一次结果报告。
func RebuildCache() error {
	fmt.Println("开始缓存热重建...")

	report.InvalidateCache()

	generated, err := report.GenerateResults()
	if err != nil {
		return fmt.Errorf("无法预热结果报告: %w", err)
	}
	version, err := database.GetDataVersion()
	if err == nil {
		if err := report.SetResultsCache(generated, version); err != nil {
			fmt.Printf("警告: 预热结果报告缓存失败: %v\n", err)
		}
	}

	fmt.Println("缓存热重建完成。")
	return nil
}
