package handler

import (
	"github.com/liferpg/internal/service"
	"gorm.io/gorm"
)

// API 聚合各 HTTP 处理器共享的服务依赖
type API struct {
	db       *gorm.DB
	habits   *service.HabitService
	logs     *service.DailyLogService
	journal  *service.JournalService
	stats    *service.StatsService
	settings *service.SettingService
	transfer *service.TransferService
}

// NewAPI 构造处理器集合
func NewAPI(gdb *gorm.DB) *API {
	return &API{
		db:       gdb,
		habits:   service.NewHabitService(gdb),
		logs:     service.NewDailyLogService(gdb),
		journal:  service.NewJournalService(gdb),
		stats:    service.NewStatsService(gdb),
		settings: service.NewSettingService(gdb),
		transfer: service.NewTransferService(gdb),
	}
}
