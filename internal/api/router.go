package api

import "github.com/gin-gonic/gin"

// RegisterRoutes wires every endpoint under the /api prefix.
func RegisterRoutes(r *gin.Engine, app App) {
	g := r.Group("/api")
	g.GET("/sleep-records", ListSleepRecords(app))
	g.GET("/sleep-records/:id", GetSleepRecord(app))
	g.POST("/sleep-records", CreateSleepRecord(app))
	g.PUT("/sleep-records/:id", UpdateSleepRecord(app))
	g.DELETE("/sleep-records/:id", DeleteSleepRecord(app))
	g.GET("/sleep-records/stats/recent/:userId", GetRecentStats(app))
	g.GET("/sleep-records/stats/monthly/:userId", GetMonthlyStats(app))
	g.GET("/sleep-records/advice/:userId", GetAdvice(app))
}
