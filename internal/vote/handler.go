package vote

import (
	"net/http"
	"strconv"

	"github.com/SlpAus/game-night-vote-backend/internal/game"
	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
	"github.com/SlpAus/game-night-vote-backend/internal/user"
	"github.com/SlpAus/game-night-vote-backend/pkg/validation"
	"github.com/gin-gonic/gin"
)

// VoteRequestBody 定义了前端提交投票时，请求体的JSON结构。
// Choices 的键是游戏ID（字符串形式，对应表单字段名），值是选项；
// 空字符串表示该游戏未做选择，会被跳过。
type VoteRequestBody struct {
	Name    string            `json:"name" binding:"required"`
	Choices map[string]string `json:"choices"`
}

// SubmitVote 处理前端提交的一次完整投票
func SubmitVote(c *gin.Context) {
	var body VoteRequestBody

	// 1. 绑定并验证请求体
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	// 2. 解析选项：跳过空值，拒绝未知选项和非数字的游戏ID
	choices := make(map[int]Choice, len(body.Choices))
	for rawID, rawChoice := range body.Choices {
		if rawChoice == "" {
			continue
		}
		gameID, err := strconv.Atoi(rawID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的游戏ID: " + rawID})
			return
		}
		choice, ok := ParseChoice(rawChoice)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的投票选项: " + rawChoice})
			return
		}
		choices[gameID] = choice
	}

	// 3. 写入台账
	revision, err := RecordSubmission(body.Name, choices)
	if err != nil {
		if validation.IsError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "处理投票失败: " + err.Error()})
		}
		return
	}

	// 4. 成功返回
	c.JSON(http.StatusOK, gin.H{"message": "投票成功", "revision": revision})
}

// GetHistory 返回完整的投票历史视图
func GetHistory(c *gin.Context) {
	users, err := user.LoadAll(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取历史数据失败"})
		return
	}
	events, err := LoadAllEvents(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取历史数据失败"})
		return
	}

	entries := ListHistory(users, events, game.Snapshot())
	c.JSON(http.StatusOK, gin.H{"history": entries})
}
