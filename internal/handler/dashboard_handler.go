package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/liferpg/internal/rank"
)

// GetDashboard 返回仪表盘主视图数据。
func (a *API) GetDashboard(c *gin.Context) {
	overview, err := a.stats.BuildOverview(time.Now().In(time.Local))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取仪表盘数据失败")
		return
	}

	c.JSON(http.StatusOK, overview)
}

// GetRecovery 返回恢复面板数据，variant 参数用于循环切换里程碑文案。
func (a *API) GetRecovery(c *gin.Context) {
	variant := 0
	if raw := strings.TrimSpace(c.Query("variant")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(c, http.StatusBadRequest, "无效的文案序号")
			return
		}
		variant = parsed
	}

	view, err := a.stats.BuildRecovery(time.Now().In(time.Local), variant)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取恢复数据失败")
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetQuote 随机返回一条激励语录。
func (a *API) GetQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": rank.RandomQuote()})
}
