package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourname/sleepdiary/internal/response"
	"github.com/yourname/sleepdiary/internal/service"
	"github.com/yourname/sleepdiary/internal/storage"
)

func ListSleepRecords(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")
		if userID == "" {
			userID = app.DefaultUser()
		}

		records, err := app.Records().ListByUser(c.Request.Context(), userID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch sleep records")
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

func GetSleepRecord(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := app.Records().GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				HandleError(c, app.Logger(), err, 404, "Sleep record not found")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to fetch sleep record")
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func CreateSleepRecord(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.CreateSleepRecordRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateCreateRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		rec, err := service.CreateSleepRecord(c.Request.Context(), app.Records(), &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save sleep record")
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

func UpdateSleepRecord(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body service.UpdateSleepRecordRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateUpdateRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		rec, err := service.UpdateSleepRecord(c.Request.Context(), app.Records(), c.Param("id"), &body)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				HandleError(c, app.Logger(), err, 404, "Sleep record not found")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to update sleep record")
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func DeleteSleepRecord(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		removed, err := app.Records().Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to delete sleep record")
			return
		}
		if !removed {
			HandleError(c, app.Logger(), storage.ErrNotFound, 404, "Sleep record not found")
			return
		}
		c.JSON(http.StatusOK, response.DeleteResult{Success: true})
	}
}

func GetRecentStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := service.DefaultRecentLimit
		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}

		records, err := service.RecentByUser(c.Request.Context(), app.Records(), c.Param("userId"), limit)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch recent stats")
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

func GetMonthlyStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		averages, err := service.MonthlyAverages(c.Request.Context(), app.Records(), c.Param("userId"), time.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to compute monthly averages")
			return
		}
		if averages == nil {
			HandleError(c, app.Logger(), storage.ErrNotFound, 404, "No sleep records in the last 30 days")
			return
		}
		c.JSON(http.StatusOK, averages)
	}
}

func GetAdvice(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		advice, err := service.GenerateAdvice(c.Request.Context(), app.Records(), app.Completer(), app.Logger(), c.Param("userId"), app.AdviceTimeout())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to generate advice")
			return
		}
		c.JSON(http.StatusOK, response.Advice{Advice: advice})
	}
}
