package db

import (
	"time"

	"gorm.io/gorm"
)

// JournalEntry 记录某天的自由书写日志
// EntryDate 唯一，每天至多一条，由前端防抖自动保存写入
// WordCount 与 PointsEarned 均为派生字段：字数达到阈值时一次性奖励固定积分
type JournalEntry struct {
	gorm.Model
	EntryDate    time.Time `gorm:"uniqueIndex"`
	Content      string    `gorm:"type:text"`
	WordCount    int
	PointsEarned int
}

// TableName 自定义表名以保持命名一致。
func (JournalEntry) TableName() string {
	return "journal_entries"
}
