package api

import (
	"github.com/SlpAus/game-night-vote-backend/internal/admin"
	"github.com/SlpAus/game-night-vote-backend/internal/game"
	"github.com/SlpAus/game-night-vote-backend/internal/media"
	"github.com/SlpAus/game-night-vote-backend/internal/report"
	"github.com/SlpAus/game-night-vote-backend/internal/vote"
	"github.com/gin-gonic/gin"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// 游戏目录相关的路由组 /api/games
		gameRoutes := api.Group("/games")
		{
			gameRoutes.GET("", game.GetGames)
			gameRoutes.POST("", game.SubmitGame)
			gameRoutes.GET("/:id/media", media.GetGameMedia)
		}

		// 投票与结果相关的路由
		api.POST("/vote", vote.SubmitVote)
		api.GET("/results", report.GetResults)
		api.GET("/history", vote.GetHistory)

		// 管理相关的路由 /api/admin
		adminRoutes := api.Group("/admin", admin.RequireAdminKey())
		{
			adminRoutes.POST("/reset", admin.ResetVotes)
		}
	}
}
