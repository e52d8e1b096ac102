package vote

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
	"github.com/SlpAus/game-night-vote-backend/internal/user"
	"github.com/SlpAus/game-night-vote-backend/pkg/validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxNameLength 限制投票者名字的长度，与游戏标题的限制保持一致
const maxNameLength = 100

// RecordSubmission 记录一次完整的投票提交。
// 提交者按名字识别：首次提交创建用户（修订1），再次提交分配下一个修订号。
// 同一次提交的所有记录共享修订号、时间戳和SubmissionID，
// 且在一个数据库事务中写入——要么全部成功，要么什么都不写。
// 返回本次提交被分配的修订号。
func RecordSubmission(name string, choices map[int]Choice) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, validation.Errorf("名字不能为空")
	}
	if len(name) > maxNameLength {
		return 0, validation.Errorf("名字过长 (最多%d字符)", maxNameLength)
	}

	now := time.Now()
	submissionID, err := uuid.NewV7()
	if err != nil {
		return 0, fmt.Errorf("无法生成SubmissionID: %w", err)
	}

	var revision int
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// 1. 按名字精确查找用户
		existing, err := user.FindByName(tx, name)
		if err != nil {
			return err
		}

		var submitter user.User
		if existing == nil {
			// 2a. 新用户：从修订1开始
			revision = 1
			submitter = user.User{
				Name:            name,
				LastSeenAt:      now,
				CurrentRevision: revision,
			}
			if err := tx.Create(&submitter).Error; err != nil {
				return fmt.Errorf("无法创建用户 %q: %w", name, err)
			}
		} else {
			// 2b. 老用户：用解析过的最高修订号 + 1
			var events []VoteEvent
			if err := tx.Where("user_id = ?", existing.ID).Find(&events).Error; err != nil {
				return fmt.Errorf("无法加载用户 %q 的投票记录: %w", name, err)
			}
			resolved := ResolveLatestRevisions([]user.User{*existing}, events)
			revision = resolved[existing.ID] + 1

			existing.LastSeenAt = now
			existing.CurrentRevision = revision
			if err := tx.Save(existing).Error; err != nil {
				return fmt.Errorf("无法更新用户 %q: %w", name, err)
			}
			submitter = *existing
		}

		// 3. 为每个非空选项追加一条投票记录。
		// 按GameID排序遍历，保证同一提交的写入顺序确定。
		gameIDs := make([]int, 0, len(choices))
		for gameID := range choices {
			gameIDs = append(gameIDs, gameID)
		}
		sort.Ints(gameIDs)

		events := make([]VoteEvent, 0, len(gameIDs))
		for _, gameID := range gameIDs {
			events = append(events, VoteEvent{
				UserID:       submitter.ID,
				GameID:       gameID,
				Choice:       choices[gameID],
				Revision:     revision,
				SubmissionID: submissionID.String(),
				SubmittedAt:  now,
			})
		}
		if len(events) > 0 {
			if err := tx.Create(&events).Error; err != nil {
				return fmt.Errorf("无法写入投票记录: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// 台账变化使已缓存的结果报告失效
	database.BumpDataVersion()
	return revision, nil
}

// LoadAllEvents 加载全部投票记录，供聚合与历史视图使用。
func LoadAllEvents(db *gorm.DB) ([]VoteEvent, error) {
	var events []VoteEvent
	if err := db.Order("id asc").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("无法加载投票记录: %w", err)
	}
	return events, nil
}
