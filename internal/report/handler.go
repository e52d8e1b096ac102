package report

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetResults 返回当前的聚合结果报告
func GetResults(c *gin.Context) {
	report, err := GenerateResults()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取结果数据失败"})
		return
	}
	c.JSON(http.StatusOK, report)
}
