package report

import (
	"sort"
	"time"

	"github.com/SlpAus/game-night-vote-backend/internal/game"
	"github.com/SlpAus/game-night-vote-backend/internal/user"
	"github.com/SlpAus/game-night-vote-backend/internal/vote"
)

// leaderboardSize 是每个排行榜的最大长度
const leaderboardSize = 10

// ComputeResults 把目录、用户和完整台账折叠成结果报告。
// 对每个用户只统计其最新修订的选票；引用了目录外游戏ID的
// 记录（例如指向已被移除游戏的旧提交）会被静默跳过。
// 对固定输入，输出是确定的：目录顺序决定汇总顺序，
// 排行榜使用稳定排序，排序键相同时保持目录顺序。
func ComputeResults(catalog []game.GameDescriptor, users []user.User, events []vote.VoteEvent) ResultsReport {
	// 1. 解析每个用户的"当前选票"边界
	liveRevisions := vote.ResolveLatestRevisions(users, events)

	nameByID := make(map[uint]string, len(users))
	for _, u := range users {
		nameByID[u.ID] = u.Name
	}

	// 2. 按目录顺序准备汇总槽位
	tallies := make([]GameTally, len(catalog))
	slotByGameID := make(map[int]int, len(catalog))
	for i, g := range catalog {
		tallies[i] = GameTally{
			GameID:        g.ID,
			Title:         g.Title,
			Interested:    []string{},
			Maybe:         []string{},
			NotInterested: []string{},
		}
		slotByGameID[g.ID] = i
	}

	// 3. 单遍折叠台账：只保留等于用户当前修订的记录
	for _, e := range events {
		slot, known := slotByGameID[e.GameID]
		if !known {
			continue
		}
		if normalizedRevision(e.Revision) != liveRevisions[e.UserID] {
			continue
		}

		name := nameByID[e.UserID]
		t := &tallies[slot]
		switch e.Choice {
		case vote.ChoiceInterested:
			t.Interested = append(t.Interested, name)
			t.InterestedCount++
		case vote.ChoiceMaybe:
			t.Maybe = append(t.Maybe, name)
			t.MaybeCount++
		case vote.ChoiceNotInterested:
			t.NotInterested = append(t.NotInterested, name)
			t.NotInterestedCount++
		default:
			// 无法归类的旧数据，跳过
		}
	}
	for i := range tallies {
		tallies[i].EngagementCount = tallies[i].InterestedCount + tallies[i].MaybeCount
	}

	// 4. 生成三个排行榜
	return ResultsReport{
		GeneratedAt: time.Now(),
		TotalVoters: int64(len(users)),
		Results:     tallies,
		TopInterested: topGames(tallies, func(a, b *GameTally) bool {
			return a.InterestedCount > b.InterestedCount
		}, func(t *GameTally) int { return t.InterestedCount }),
		TopMaybe: topGames(tallies, func(a, b *GameTally) bool {
			return a.MaybeCount > b.MaybeCount
		}, func(t *GameTally) int { return t.MaybeCount }),
		TopEngagement: topGames(tallies, func(a, b *GameTally) bool {
			if a.EngagementCount != b.EngagementCount {
				return a.EngagementCount > b.EngagementCount
			}
			// 并列时先比想玩票数，再比观望票数
			if a.InterestedCount != b.InterestedCount {
				return a.InterestedCount > b.InterestedCount
			}
			return a.MaybeCount > b.MaybeCount
		}, func(t *GameTally) int { return t.EngagementCount }),
	}
}

// normalizedRevision 与解析器对旧数据的处理保持一致：0按1计
func normalizedRevision(rev int) int {
	if rev < 1 {
		return 1
	}
	return rev
}

// topGames 用稳定排序生成一个排行榜，最多 leaderboardSize 项。
// less 决定排序，count 决定榜上显示的票数。
func topGames(tallies []GameTally, less func(a, b *GameTally) bool, count func(t *GameTally) int) []RankedGame {
	order := make([]int, len(tallies))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return less(&tallies[order[i]], &tallies[order[j]])
	})

	size := len(order)
	if size > leaderboardSize {
		size = leaderboardSize
	}
	ranked := make([]RankedGame, 0, size)
	for _, idx := range order[:size] {
		ranked = append(ranked, RankedGame{
			GameID: tallies[idx].GameID,
			Title:  tallies[idx].Title,
			Count:  count(&tallies[idx]),
		})
	}
	return ranked
}
