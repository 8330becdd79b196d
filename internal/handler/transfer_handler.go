package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/liferpg/internal/service"
)

// importBodyLimit 限制导入文档体积，防止误传超大文件。
const importBodyLimit = 16 << 20

// ExportData 导出全量备份并作为附件下载。
func (a *API) ExportData(c *gin.Context) {
	now := time.Now().In(time.Local)

	doc, err := a.transfer.Export(now)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "导出数据失败")
		return
	}

	filename := fmt.Sprintf("life-rpg-backup-%s.json", now.Format(dateFormat))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("X-Backup-ID", uuid.NewString())
	c.JSON(http.StatusOK, doc)
}

// ImportData 接收备份 JSON 并整体覆盖对应集合。
func (a *API) ImportData(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, importBodyLimit))
	if err != nil {
		respondError(c, http.StatusBadRequest, "读取导入内容失败")
		return
	}

	if err := a.transfer.Import(raw); err != nil {
		if errors.Is(err, service.ErrImportInvalid) {
			respondError(c, http.StatusBadRequest, "备份文件格式不合法")
			return
		}
		respondError(c, http.StatusInternalServerError, "导入数据失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": true})
}

// ClearData 无条件清空全部数据并恢复默认习惯。
func (a *API) ClearData(c *gin.Context) {
	if err := a.transfer.ClearAll(); err != nil {
		respondError(c, http.StatusInternalServerError, "清空数据失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
