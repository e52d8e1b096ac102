package game

import "gorm.io/gorm"

// GameDescriptor 是组合目录（内置 + 玩家提交）中的一条游戏记录。
// 它是目录对外的唯一数据形态，聚合与媒体模块都直接消费它。
type GameDescriptor struct {
	// ID 在组合目录中全局唯一，进程生命周期内不会变化
	ID int `json:"id"`

	// Title 是游戏名称
	Title string `json:"title"`

	// URL 是游戏的商店或官网链接
	URL string `json:"url"`

	// Price 是展示用的价格字符串，例如 "$19.99" 或 "FREE"
	Price string `json:"price"`

	// MaxPlayers 是展示用的最大玩家数字符串，例如 "8" 或 "10 / 32"
	MaxPlayers string `json:"max_players"`

	// MediaRef 是外部媒体代理使用的引用ID（YouTube视频ID），可以为空
	MediaRef string `json:"youtube_id,omitempty"`
}

// SubmittedGame 定义了玩家提交的游戏在数据库中的持久化模型。
// 内置目录不落库，只有提交的条目需要跨重启保留。
type SubmittedGame struct {
	gorm.Model

	// GameID 是该条目在组合目录中的ID
	GameID int `gorm:"uniqueIndex;not null" json:"game_id"`

	Title      string `json:"title"`
	URL        string `json:"url"`
	Price      string `json:"price"`
	MaxPlayers string `json:"max_players"`
	MediaRef   string `json:"youtube_id"`
}

// Descriptor 将持久化模型转换为目录条目。
func (s *SubmittedGame) Descriptor() GameDescriptor {
	return GameDescriptor{
		ID:         s.GameID,
		Title:      s.Title,
		URL:        s.URL,
		Price:      s.Price,
		MaxPlayers: s.MaxPlayers,
		MediaRef:   s.MediaRef,
	}
}
