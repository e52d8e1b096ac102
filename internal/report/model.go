package report

import "time"

// GameTally 是单个游戏的当前票数汇总。
// 名单里只包含每个用户最新修订的选票。
type GameTally struct {
	GameID int    `json:"game_id"`
	Title  string `json:"title"`

	// 各选项的投票者名单
	Interested    []string `json:"interested"`
	Maybe         []string `json:"maybe"`
	NotInterested []string `json:"not_interested"`

	InterestedCount    int `json:"interested_count"`
	MaybeCount         int `json:"maybe_count"`
	NotInterestedCount int `json:"not_interested_count"`

	// EngagementCount = InterestedCount + MaybeCount
	EngagementCount int `json:"engagement_count"`
}

// RankedGame 是排行榜中的一行
type RankedGame struct {
	GameID int    `json:"game_id"`
	Title  string `json:"title"`
	Count  int    `json:"count"`
}

// ResultsReport 是结果页的完整数据包
type ResultsReport struct {
	GeneratedAt time.Time `json:"generatedAt"`

	// TotalVoters 是用户记录总数，与修订无关
	TotalVoters int64 `json:"total_voters"`

	// Results 按目录顺序包含每个游戏的汇总
	Results []GameTally `json:"results"`

	// 三个排行榜，各最多10项
	TopInterested []RankedGame `json:"top_interested"`
	TopMaybe      []RankedGame `json:"top_maybe"`
	TopEngagement []RankedGame `json:"top_engagement"`
}
