package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/liferpg/internal/db"
	"github.com/liferpg/internal/service"
)

type habitPayload struct {
	Name            string `json:"name"`
	Area            string `json:"area"`
	Description     string `json:"description"`
	PointsPerUnit   int    `json:"points_per_unit"`
	Unit            string `json:"unit"`
	DailyCap        int    `json:"daily_cap"`
	RecoveryTracked bool   `json:"recovery_tracked"`
}

// ListHabits 返回习惯列表 JSON
func (a *API) ListHabits(c *gin.Context) {
	filter := service.HabitFilter{
		Area:   c.Query("area"),
		Search: c.Query("search"),
	}

	habits, err := a.habits.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取习惯列表失败")
		return
	}

	items := make([]gin.H, 0, len(habits))
	for _, habit := range habits {
		items = append(items, habitToPayload(habit))
	}

	c.JSON(http.StatusOK, gin.H{"habits": items, "areas": db.Areas})
}

// GetHabit 返回单个习惯详情
func (a *API) GetHabit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的习惯ID")
		return
	}

	habit, err := a.habits.Get(id)
	if err != nil {
		handleHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": habitToPayload(*habit)})
}

// CreateHabit 创建习惯
func (a *API) CreateHabit(c *gin.Context) {
	var payload habitPayload
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	habit, err := a.habits.Create(habitInputFromPayload(payload))
	if err != nil {
		handleHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": habitToPayload(*habit)})
}

// UpdateHabit 更新习惯
func (a *API) UpdateHabit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的习惯ID")
		return
	}

	var payload habitPayload
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	habit, err := a.habits.Update(id, habitInputFromPayload(payload))
	if err != nil {
		handleHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": habitToPayload(*habit)})
}

// DeleteHabit 删除习惯，历史打卡明细保留
func (a *API) DeleteHabit(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的习惯ID")
		return
	}

	if err := a.habits.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "删除习惯失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func habitInputFromPayload(payload habitPayload) service.HabitInput {
	return service.HabitInput{
		Name:            payload.Name,
		Area:            payload.Area,
		Description:     payload.Description,
		PointsPerUnit:   payload.PointsPerUnit,
		Unit:            payload.Unit,
		DailyCap:        payload.DailyCap,
		RecoveryTracked: payload.RecoveryTracked,
	}
}

func habitToPayload(habit db.Habit) gin.H {
	return gin.H{
		"id":               habit.ID,
		"name":             habit.Name,
		"area":             habit.Area,
		"description":      habit.Description,
		"points_per_unit":  habit.PointsPerUnit,
		"unit":             habit.Unit,
		"daily_cap":        habit.DailyCap,
		"recovery_tracked": habit.RecoveryTracked,
	}
}

func handleHabitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHabitNotFound):
		respondError(c, http.StatusNotFound, "习惯不存在")
	case errors.Is(err, service.ErrHabitInvalidArea):
		respondError(c, http.StatusBadRequest, "领域配置无效")
	case errors.Is(err, service.ErrHabitInvalidPoints):
		respondError(c, http.StatusBadRequest, "积分配置无效")
	case errors.Is(err, service.ErrHabitNameTaken):
		respondError(c, http.StatusBadRequest, "习惯名称已存在")
	default:
		respondError(c, http.StatusInternalServerError, "操作失败")
	}
}
