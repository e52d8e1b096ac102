package game

import (
	"net/http"

	"github.com/SlpAus/game-night-vote-backend/pkg/validation"
	"github.com/gin-gonic/gin"
)

// AddGameRequestBody 定义了前端提交新游戏时，请求体的JSON结构
type AddGameRequestBody struct {
	Title      string `json:"title" binding:"required"`
	URL        string `json:"url" binding:"required"`
	Price      string `json:"price"`
	MaxPlayers string `json:"max_players"`
	MediaRef   string `json:"youtube_id"`
}

// GetGames 返回组合目录
func GetGames(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"games": ListGames()})
}

// SubmitGame 处理玩家提交的新游戏
func SubmitGame(c *gin.Context) {
	var body AddGameRequestBody

	// 1. 绑定并验证请求体
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	// 2. 校验并追加到目录
	descriptor, err := AddGame(body.Title, body.URL, body.Price, body.MaxPlayers, body.MediaRef)
	if err != nil {
		if validation.IsError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "保存游戏失败: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "游戏提交成功", "game": descriptor})
}
