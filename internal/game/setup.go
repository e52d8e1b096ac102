package game

import (
	"fmt"

	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
)

// migrateDB 负责自动迁移数据库表结构
func migrateDB() error {
	if err := database.DB.AutoMigrate(&SubmittedGame{}); err != nil {
		return fmt.Errorf("无法迁移submitted_games表: %w", err)
	}
	fmt.Println("SubmittedGame数据库表迁移成功。")
	return nil
}

// PrimeDB 是game模块的初始化总入口
func PrimeDB() error {
	if err := migrateDB(); err != nil {
		return err
	}
	if err := InitializeRepository(); err != nil {
		return err
	}
	return nil
}

// ReloadCatalog 重建内存目录，供管理接口在清空数据后调用。
func ReloadCatalog() error {
	return reloadFromDB()
}
