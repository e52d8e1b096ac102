package admin

import (
	"crypto/subtle"
	"net/http"

	"github.com/SlpAus/game-night-vote-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AdminKeyHeader 是携带管理密钥的请求头
const AdminKeyHeader = "X-Admin-Key"

// RequireAdminKey 校验管理密钥的中间件。
// 配置中未设置密钥时，管理接口整体禁用。
func RequireAdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := config.Cfg.Admin.Key
		if key == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "管理接口未启用"})
			return
		}
		provided := c.GetHeader(AdminKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "管理密钥无效"})
			return
		}
		c.Next()
	}
}

// ResetVotes 处理清空所有投票数据的管理请求
func ResetVotes(c *gin.Context) {
	if err := ResetAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "清空数据失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "所有投票数据已清空"})
}
