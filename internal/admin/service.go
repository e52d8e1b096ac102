package admin

import (
	"fmt"

	"github.com/SlpAus/game-night-vote-backend/internal/game"
	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
	"github.com/SlpAus/game-night-vote-backend/internal/report"
	"github.com/SlpAus/game-night-vote-backend/internal/user"
	"github.com/SlpAus/game-night-vote-backend/internal/vote"
	"gorm.io/gorm"
)

// ResetAll 清空投票台账、用户和玩家提交的游戏。
// 这是唯一会删除数据的操作；存储层的失败原样向上传播。
func ResetAll() error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// Unscoped跳过GORM的软删除，真正清空表
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&vote.VoteEvent{}).Error; err != nil {
			return fmt.Errorf("清空vote_events表失败: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&user.User{}).Error; err != nil {
			return fmt.Errorf("清空users表失败: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&game.SubmittedGame{}).Error; err != nil {
			return fmt.Errorf("清空submitted_games表失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// 数据库清空后，使内存目录和结果缓存重新一致
	if err := game.ReloadCatalog(); err != nil {
		return err
	}
	report.InvalidateCache()
	database.BumpDataVersion()

	fmt.Println("管理操作: 所有投票数据已清空。")
	return nil
}
