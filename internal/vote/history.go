package vote

import (
	"fmt"
	"sort"
	"time"

	"github.com/SlpAus/game-night-vote-backend/internal/game"
	"github.com/SlpAus/game-night-vote-backend/internal/user"
)

// HistoryEntry 是历史视图中的一行：一条投票记录及其解析后的展示信息。
type HistoryEntry struct {
	UserName  string    `json:"user_name"`
	GameID    int       `json:"game_id"`
	GameTitle string    `json:"game_title"`
	Choice    Choice    `json:"choice"`
	Revision  int       `json:"revision"`
	Timestamp time.Time `json:"timestamp"`
}

// ListHistory 把完整台账展开为历史视图。
// 它是台账的超集视图：不按“最新修订”过滤，每条投票记录都对应一行。
// 排序：时间戳降序，其次修订号降序，其次用户名升序；
// 缺失时间戳（零值）的记录排在最后。
func ListHistory(users []user.User, events []VoteEvent, catalog []game.GameDescriptor) []HistoryEntry {
	nameByID := make(map[uint]string, len(users))
	for _, u := range users {
		nameByID[u.ID] = u.Name
	}
	titleByID := make(map[int]string, len(catalog))
	for _, g := range catalog {
		titleByID[g.ID] = g.Title
	}

	entries := make([]HistoryEntry, 0, len(events))
	for _, e := range events {
		title, ok := titleByID[e.GameID]
		if !ok {
			// 游戏已不在目录中，退回到显示原始ID
			title = fmt.Sprintf("#%d", e.GameID)
		}
		entries = append(entries, HistoryEntry{
			UserName:  nameByID[e.UserID],
			GameID:    e.GameID,
			GameTitle: title,
			Choice:    e.Choice,
			Revision:  normalizeEventRevision(e.Revision),
			Timestamp: eventTimestamp(e),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ti, tj := entries[i].Timestamp, entries[j].Timestamp
		// 零值时间戳视为“无法排序”，排在所有正常记录之后
		if ti.IsZero() != tj.IsZero() {
			return tj.IsZero()
		}
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		if entries[i].Revision != entries[j].Revision {
			return entries[i].Revision > entries[j].Revision
		}
		return entries[i].UserName < entries[j].UserName
	})

	return entries
}

// eventTimestamp 返回一条投票记录的展示时间戳。
// 优先使用整次提交共享的SubmittedAt，旧数据退回到行的创建时间。
func eventTimestamp(e VoteEvent) time.Time {
	if !e.SubmittedAt.IsZero() {
		return e.SubmittedAt
	}
	return e.CreatedAt
}
