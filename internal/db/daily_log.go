package db

import (
	"time"

	"gorm.io/gorm"
)

// DailyLog 记录某个日历日的打卡汇总
// LogDate 唯一，首次对任意习惯打卡时创建
// TotalPoints 是明细积分之和的冗余缓存，每次变更时重算，禁止单独修改
type DailyLog struct {
	gorm.Model
	LogDate     time.Time `gorm:"uniqueIndex"`
	TotalPoints int
	Items       []DailyLogItem `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName 自定义表名以保持命名一致。
func (DailyLog) TableName() string {
	return "daily_logs"
}

// DailyLogItem 记录单个习惯在某天的完成情况
// DailyLogID + HabitName 采用唯一索引，保证幂等
// 通过名称引用习惯：习惯被删除后历史明细保留，计分时按未知习惯跳过
// Points 由 Completed/Quantity 与习惯配置推导后落库
type DailyLogItem struct {
	gorm.Model
	DailyLogID uint   `gorm:"index;index:idx_log_item_unique,unique"`
	HabitName  string `gorm:"index:idx_log_item_unique,unique"`
	Completed  bool
	Quantity   int
	Points     int
}

// TableName 重写确保唯一索引作用到 daily_log_id + habit_name
func (DailyLogItem) TableName() string {
	return "daily_log_items"
}
