package vote

import (
	"fmt"

	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
)

// PrimeDB 是vote模块的初始化总入口
func PrimeDB() error {
	if err := database.DB.AutoMigrate(&VoteEvent{}); err != nil {
		return fmt.Errorf("无法迁移vote_events表: %w", err)
	}
	fmt.Println("VoteEvent数据库表迁移成功。")
	return nil
}
