package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GetSettings 返回系统设置
func (a *API) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"site_name":      a.settings.SiteName(),
		"longest_streak": a.settings.LongestStreak(),
	})
}

// UpdateSettings 更新系统设置，目前仅支持站点名称
func (a *API) UpdateSettings(c *gin.Context) {
	var payload struct {
		SiteName string `json:"site_name"`
	}
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	if strings.TrimSpace(payload.SiteName) == "" {
		respondError(c, http.StatusBadRequest, "站点名称不能为空")
		return
	}

	if err := a.settings.SetSiteName(payload.SiteName); err != nil {
		respondError(c, http.StatusInternalServerError, "保存设置失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"site_name": a.settings.SiteName()})
}
