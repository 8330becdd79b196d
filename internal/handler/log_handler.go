package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/liferpg/internal/db"
	"github.com/liferpg/internal/service"
)

// GetDailyLog 返回指定日期的打卡记录；尚未打卡时返回空记录而非 404。
func (a *API) GetDailyLog(c *gin.Context) {
	date, err := parseDateParam(c, "date")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的日期")
		return
	}

	log, err := a.logs.Get(date)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取打卡记录失败")
		return
	}

	if log == nil {
		c.JSON(http.StatusOK, gin.H{"log": emptyLogPayload(date)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"log": logToPayload(*log)})
}

// ListDailyLogs 返回日期区间内的打卡记录，默认最近 30 天。
func (a *API) ListDailyLogs(c *gin.Context) {
	now := time.Now().In(time.Local)
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -29)

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.ParseInLocation(dateFormat, raw, time.Local)
		if err != nil {
			respondError(c, http.StatusBadRequest, "无效的开始日期")
			return
		}
		start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.ParseInLocation(dateFormat, raw, time.Local)
		if err != nil {
			respondError(c, http.StatusBadRequest, "无效的结束日期")
			return
		}
		end = parsed
	}

	logs, err := a.logs.ListBetween(start, end)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取打卡记录失败")
		return
	}

	items := make([]gin.H, 0, len(logs))
	for _, log := range logs {
		items = append(items, logToPayload(log))
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":  items,
		"range": gin.H{"start": start.Format(dateFormat), "end": end.Format(dateFormat)},
	})
}

// UpsertLogItem 更新某天某习惯的勾选/数量，当日记录不存在时自动创建。
func (a *API) UpsertLogItem(c *gin.Context) {
	date, err := parseDateParam(c, "date")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的日期")
		return
	}

	var payload struct {
		HabitName string `json:"habit_name"`
		Completed bool   `json:"completed"`
		Quantity  int    `json:"quantity"`
	}
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	if payload.HabitName == "" {
		respondError(c, http.StatusBadRequest, "习惯名称不能为空")
		return
	}

	log, err := a.logs.UpsertItem(date, service.LogItemInput{
		HabitName: payload.HabitName,
		Completed: payload.Completed,
		Quantity:  payload.Quantity,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "保存打卡记录失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"log": logToPayload(*log)})
}

func logToPayload(log db.DailyLog) gin.H {
	stats := make(gin.H, len(log.Items))
	for _, item := range log.Items {
		stats[item.HabitName] = gin.H{
			"completed": item.Completed,
			"quantity":  item.Quantity,
			"points":    item.Points,
		}
	}

	return gin.H{
		"date":         log.LogDate.Format(dateFormat),
		"stats":        stats,
		"total_points": log.TotalPoints,
	}
}

func emptyLogPayload(date time.Time) gin.H {
	return gin.H{
		"date":         date.Format(dateFormat),
		"stats":        gin.H{},
		"total_points": 0,
	}
}
