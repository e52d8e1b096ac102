package user

import (
	"time"

	"gorm.io/gorm"
)

// User 定义了投票者在数据库中的持久化模型。
// 用户在第一次用某个名字提交投票时被创建，之后同名提交只更新它。
type User struct {
	gorm.Model

	// Name 是投票者自报的显示名，唯一且大小写敏感（存储前已去除首尾空白）
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	// LastSeenAt 记录该用户最近一次提交投票的时间
	LastSeenAt time.Time `json:"last_seen_at"`

	// CurrentRevision 是该用户最近一次提交的修订号，从1开始
	CurrentRevision int `json:"current_revision"`
}
