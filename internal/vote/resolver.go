package vote

import "github.com/SlpAus/game-night-vote-backend/internal/user"

// 修订号有两个数据来源：用户记录上存储的 CurrentRevision，
// 和该用户每条投票记录携带的 Revision 字段。两者可能不一致
// （例如修订功能上线前写入的旧数据），解析时总是取观察到的最大值。

// normalizeEventRevision 把单条投票记录的修订号规范化。
// 缺失修订号（0）的旧记录按修订1处理。
func normalizeEventRevision(rev int) int {
	if rev < 1 {
		return 1
	}
	return rev
}

// ResolveLatestRevisions 为每个用户计算其最高的已知修订号。
// 结果同时用于：下一次提交的修订号分配（next = resolved + 1），
// 以及聚合时的“当前选票”边界。对固定输入是纯函数。
func ResolveLatestRevisions(users []user.User, events []VoteEvent) map[uint]int {
	resolved := make(map[uint]int, len(users))

	for _, u := range users {
		resolved[u.ID] = u.CurrentRevision
	}

	for _, e := range events {
		rev := normalizeEventRevision(e.Revision)
		if rev > resolved[e.UserID] {
			resolved[e.UserID] = rev
		}
	}

	return resolved
}
