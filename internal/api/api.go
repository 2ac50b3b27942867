package api

import (
	"net/http"

	authHandler "giveaway-server/internal/auth/handler"
	entriesHandler "giveaway-server/internal/entries/handler"
	integrationsHandler "giveaway-server/internal/integrations/handler"
	"giveaway-server/internal/leaderboard"
	winnersHandler "giveaway-server/internal/winners/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router              *gin.RouterGroup
	authHandler         authHandler.Handler
	entriesHandler      entriesHandler.Handler
	winnersHandler      winnersHandler.Handler
	integrationsHandler integrationsHandler.Handler
	leaderboardHandler  leaderboard.Handler
	entryRateLimit      gin.HandlerFunc
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	entriesHandler entriesHandler.Handler,
	winnersHandler winnersHandler.Handler,
	integrationsHandler integrationsHandler.Handler,
	leaderboardHandler leaderboard.Handler,
	entryRateLimit gin.HandlerFunc,
) API {
	return API{
		router:              router,
		authHandler:         authHandler,
		entriesHandler:      entriesHandler,
		winnersHandler:      winnersHandler,
		integrationsHandler: integrationsHandler,
		leaderboardHandler:  leaderboardHandler,
		entryRateLimit:      entryRateLimit,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		apiGroup.POST("/campaigns/:campaign_id/entries", a.entryRateLimit, a.entriesHandler.HandleSubmitEntry)
		apiGroup.GET("/campaigns/:campaign_id/leaderboard", a.leaderboardHandler.HandleGetLeaderboard)
		apiGroup.GET("/campaigns/:campaign_id/leaderboard/:entry_id", a.leaderboardHandler.HandleGetRank)

		apiGroup.GET("/entries/:entry_id", a.entriesHandler.HandleGetEntry)
		apiGroup.POST("/entries/:entry_id/actions", a.entriesHandler.HandleCompleteAction)
		apiGroup.POST("/entries/:entry_id/coupon", a.entriesHandler.HandleRevealCoupon)
	}
	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	{
		campaignGroup := protectedGroup.Group("/campaigns/:campaign_id")
		campaignGroup.GET("/entries", a.entriesHandler.HandleListEntries)
		campaignGroup.GET("/entries/export", a.entriesHandler.HandleExportEntries)
		campaignGroup.GET("/stats", a.entriesHandler.HandleGetStats)

		campaignGroup.POST("/winners", a.winnersHandler.HandleSelectWinners)
		campaignGroup.GET("/winners", a.winnersHandler.HandleGetWinners)
		campaignGroup.GET("/winners/export", a.winnersHandler.HandleExportWinners)

		campaignGroup.GET("/integration", a.integrationsHandler.HandleGetIntegration)
		campaignGroup.PUT("/integration", a.integrationsHandler.HandleSaveIntegration)
		campaignGroup.POST("/integration/verify", a.integrationsHandler.HandleVerifyIntegration)
		campaignGroup.POST("/integration/test", a.integrationsHandler.HandleSendTest)
		campaignGroup.GET("/integration/info", a.integrationsHandler.HandleGetProviderInfo)
		campaignGroup.GET("/integration/lists", a.integrationsHandler.HandleGetLists)
		campaignGroup.POST("/integration/sync", a.integrationsHandler.HandleBulkSync)
		campaignGroup.POST("/integration/stats/reset", a.integrationsHandler.HandleResetStats)

		protectedGroup.GET("/email-services", a.integrationsHandler.HandleListEmailServices)
		protectedGroup.POST("/email-services", a.integrationsHandler.HandleConnectEmailService)
		protectedGroup.DELETE("/email-services/:provider", a.integrationsHandler.HandleDisconnectEmailService)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
