package game

import (
	"fmt"
	"strings"

	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
	"github.com/SlpAus/game-night-vote-backend/pkg/validation"
)

const (
	maxTitleLength = 100
	maxURLLength   = 500
)

// ListGames 返回组合目录（内置 + 玩家提交），顺序稳定。
func ListGames() []GameDescriptor {
	return Snapshot()
}

// ValidateSubmission 校验一条玩家提交的游戏。
// 返回清理后的字段值；价格和人数为空时回填 "N/A"。
func ValidateSubmission(title, url, price, maxPlayers string) (string, string, string, string, error) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)

	if title == "" {
		return "", "", "", "", validation.Errorf("游戏名称不能为空")
	}
	if len(title) > maxTitleLength {
		return "", "", "", "", validation.Errorf("游戏名称过长 (最多%d字符)", maxTitleLength)
	}
	if url == "" {
		return "", "", "", "", validation.Errorf("游戏链接不能为空")
	}
	if len(url) > maxURLLength {
		return "", "", "", "", validation.Errorf("游戏链接过长 (最多%d字符)", maxURLLength)
	}

	if strings.TrimSpace(price) == "" {
		price = "N/A"
	}
	if strings.TrimSpace(maxPlayers) == "" {
		maxPlayers = "N/A"
	}
	return title, url, price, maxPlayers, nil
}

// AddGame 校验并追加一条玩家提交的游戏到组合目录。
// 新条目先写入数据库，成功后才对 ListGames 和聚合可见。
func AddGame(title, url, price, maxPlayers, mediaRef string) (GameDescriptor, error) {
	title, url, price, maxPlayers, err := ValidateSubmission(title, url, price, maxPlayers)
	if err != nil {
		return GameDescriptor{}, err
	}

	// ID分配和追加必须在同一个写锁内完成，
	// 以保证并发提交不会拿到相同的ID或部分交错。
	globalRepository.rwLock.Lock()
	defer globalRepository.rwLock.Unlock()

	descriptor := GameDescriptor{
		ID:         globalRepository.nextID,
		Title:      title,
		URL:        url,
		Price:      price,
		MaxPlayers: maxPlayers,
		MediaRef:   strings.TrimSpace(mediaRef),
	}

	record := SubmittedGame{
		GameID:     descriptor.ID,
		Title:      descriptor.Title,
		URL:        descriptor.URL,
		Price:      descriptor.Price,
		MaxPlayers: descriptor.MaxPlayers,
		MediaRef:   descriptor.MediaRef,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return GameDescriptor{}, fmt.Errorf("无法持久化玩家提交的游戏: %w", err)
	}

	globalRepository.appendLocked(descriptor)

	// 目录变化会影响结果报告，递增数据版本使旧缓存失效
	database.BumpDataVersion()
	return descriptor, nil
}
