package media

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SlpAus/game-night-vote-backend/internal/game"
	"github.com/gin-gonic/gin"
)

// GetGameMedia 返回单个游戏的媒体资料。
// 媒体代理的失败在这里独立上报，不会波及投票和结果接口。
func GetGameMedia(c *gin.Context) {
	gameID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的游戏ID: " + c.Param("id")})
		return
	}

	descriptor, ok := game.GetByID(gameID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("找不到ID为 %d 的游戏", gameID)})
		return
	}

	info, err := GetInfoByRef(descriptor.MediaRef)
	if err != nil {
		if errors.Is(err, ErrNoMedia) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusBadGateway, gin.H{"error": "获取媒体资料失败: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, info)
}
