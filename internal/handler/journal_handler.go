package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/liferpg/internal/db"
)

// GetJournalEntry 返回指定日期的日志；尚未书写时返回空条目。
func (a *API) GetJournalEntry(c *gin.Context) {
	date, err := parseDateParam(c, "date")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的日期")
		return
	}

	entry, err := a.journal.Get(date)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取日志失败")
		return
	}

	if entry == nil {
		c.JSON(http.StatusOK, gin.H{"entry": emptyJournalPayload(date)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": journalToPayload(*entry)})
}

// SaveJournalEntry 保存某天的日志内容，供前端防抖自动保存调用。
func (a *API) SaveJournalEntry(c *gin.Context) {
	date, err := parseDateParam(c, "date")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的日期")
		return
	}

	var payload struct {
		Content string `json:"content"`
	}
	if !bindJSON(c, &payload, "请求参数不合法") {
		return
	}

	entry, err := a.journal.Save(date, payload.Content)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "保存日志失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": journalToPayload(*entry)})
}

// RenderJournalEntry 返回日志的 HTML 预览。
func (a *API) RenderJournalEntry(c *gin.Context) {
	date, err := parseDateParam(c, "date")
	if err != nil {
		respondError(c, http.StatusBadRequest, "无效的日期")
		return
	}

	entry, err := a.journal.Get(date)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取日志失败")
		return
	}

	content := ""
	if entry != nil {
		content = entry.Content
	}

	rendered, err := a.journal.RenderHTML(content)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "渲染日志失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"html": rendered})
}

func journalToPayload(entry db.JournalEntry) gin.H {
	return gin.H{
		"date":          entry.EntryDate.Format(dateFormat),
		"content":       entry.Content,
		"word_count":    entry.WordCount,
		"points_earned": entry.PointsEarned,
	}
}

func emptyJournalPayload(date time.Time) gin.H {
	return gin.H{
		"date":          date.Format(dateFormat),
		"content":       "",
		"word_count":    0,
		"points_earned": 0,
	}
}
