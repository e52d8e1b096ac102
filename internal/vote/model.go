package vote

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Choice 定义了单个游戏的投票选项的枚举类型
type Choice string

const (
	// ChoiceInterested 表示投票者想玩这个游戏
	ChoiceInterested Choice = "interested"
	// ChoiceMaybe 表示投票者可能想玩
	ChoiceMaybe Choice = "maybe"
	// ChoiceNotInterested 表示投票者不想玩
	ChoiceNotInterested Choice = "not_interested"
)

// ParseChoice 把请求中的原始选项值解析为枚举。
// 兼容旧前端使用的 "not-interested" 写法。
func ParseChoice(raw string) (Choice, bool) {
	switch Choice(strings.ReplaceAll(strings.TrimSpace(raw), "-", "_")) {
	case ChoiceInterested:
		return ChoiceInterested, true
	case ChoiceMaybe:
		return ChoiceMaybe, true
	case ChoiceNotInterested:
		return ChoiceNotInterested, true
	}
	return "", false
}

// VoteEvent 定义了单条投票记录的数据结构。
// 台账是只追加的：记录一旦写入就不会被修改或单独删除，
// 同一用户的新一轮提交以更高的修订号追加。
type VoteEvent struct {
	gorm.Model

	// UserID 是提交者的用户ID
	UserID uint `gorm:"index;not null" json:"user_id"`

	// GameID 是被投票的游戏在组合目录中的ID
	GameID int `gorm:"index;not null" json:"game_id"`

	// Choice 是投票选项
	Choice Choice `gorm:"not null" json:"choice"`

	// Revision 是该用户提交此记录时的修订号，从1开始。
	// 修订功能上线前写入的历史数据可能为0，解析时按1处理。
	Revision int `gorm:"not null;default:0" json:"revision"`

	// SubmissionID 标识一次完整的提交，同一次提交的所有记录共享它
	SubmissionID string `gorm:"index;type:varchar(36)" json:"submission_id"`

	// SubmittedAt 是整次提交共享的时间戳
	SubmittedAt time.Time `json:"submitted_at"`
}
