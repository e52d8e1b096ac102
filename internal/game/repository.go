package game

import (
	"fmt"
	"sync"

	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
)

// repository 是game模块的中央数据仓库。
// 它在启动时把内置目录和数据库中的玩家提交条目合并到内存里，
// 之后 AddGame 在写锁的保护下追加新条目。
type repository struct {
	games   []GameDescriptor
	idToIdx map[int]int
	nextID  int
	rwLock  sync.RWMutex
}

// globalRepository 是我们仓库的私有单例实例
var globalRepository *repository

// InitializeRepository 从SQLite加载玩家提交的游戏，与内置目录合并后初始化内存仓库。
// 这个函数应该在应用启动时且仅调用一次。
func InitializeRepository() error {
	var submitted []SubmittedGame
	if err := database.DB.Order("game_id asc").Find(&submitted).Error; err != nil {
		return fmt.Errorf("无法从数据库加载玩家提交的游戏: %w", err)
	}

	repo := &repository{
		games:   make([]GameDescriptor, 0, len(builtinCatalog)+len(submitted)),
		idToIdx: make(map[int]int, len(builtinCatalog)+len(submitted)),
		nextID:  1,
	}

	for _, g := range builtinCatalog {
		repo.appendLocked(g)
	}
	for _, s := range submitted {
		repo.appendLocked(s.Descriptor())
	}

	globalRepository = repo
	fmt.Printf("游戏目录仓库初始化成功，内置 %d 个、玩家提交 %d 个。\n", len(builtinCatalog), len(submitted))
	return nil
}

// appendLocked 追加一个条目并维护索引和下一个可用ID。
// 调用方必须持有写锁（或处于单线程初始化阶段）。
func (r *repository) appendLocked(g GameDescriptor) {
	r.idToIdx[g.ID] = len(r.games)
	r.games = append(r.games, g)
	if g.ID >= r.nextID {
		r.nextID = g.ID + 1
	}
}

// Snapshot 返回组合目录的一份拷贝，调用方可以安全地持有它。
func Snapshot() []GameDescriptor {
	globalRepository.rwLock.RLock()
	defer globalRepository.rwLock.RUnlock()

	out := make([]GameDescriptor, len(globalRepository.games))
	copy(out, globalRepository.games)
	return out
}

// GetByID 按目录ID查找单个游戏。
func GetByID(id int) (GameDescriptor, bool) {
	globalRepository.rwLock.RLock()
	defer globalRepository.rwLock.RUnlock()

	idx, ok := globalRepository.idToIdx[id]
	if !ok {
		return GameDescriptor{}, false
	}
	return globalRepository.games[idx], true
}

// Count 返回组合目录的条目数。
func Count() int {
	globalRepository.rwLock.RLock()
	defer globalRepository.rwLock.RUnlock()
	return len(globalRepository.games)
}

// reloadFromDB 在写锁的保护下重建内存目录。
// 管理接口清空数据后调用它，使内存状态与数据库重新一致。
func reloadFromDB() error {
	var submitted []SubmittedGame
	if err := database.DB.Order("game_id asc").Find(&submitted).Error; err != nil {
		return fmt.Errorf("无法从数据库重新加载玩家提交的游戏: %w", err)
	}

	globalRepository.rwLock.Lock()
	defer globalRepository.rwLock.Unlock()

	globalRepository.games = globalRepository.games[:0]
	globalRepository.idToIdx = make(map[int]int, len(builtinCatalog)+len(submitted))
	globalRepository.nextID = 1
	for _, g := range builtinCatalog {
		globalRepository.appendLocked(g)
	}
	for _, s := range submitted {
		globalRepository.appendLocked(s.Descriptor())
	}
	return nil
}
