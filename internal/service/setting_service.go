package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/liferpg/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingService 提供系统级键值设置的读取与更新能力。
// 持久化的最长连胜高水位也存放在这里，只增不减。
type SettingService struct {
	db *gorm.DB
}

// NewSettingService 构造 SettingService
func NewSettingService(gdb *gorm.DB) *SettingService {
	return &SettingService{db: gdb}
}

// SiteName 读取站点名称，未设置时返回默认值。
func (s *SettingService) SiteName() string {
	value, err := s.get(db.SettingKeySiteName)
	if err != nil || strings.TrimSpace(value) == "" {
		return "Life RPG"
	}
	return value
}

// SetSiteName 保存站点名称。
func (s *SettingService) SetSiteName(name string) error {
	return s.upsert(db.SettingKeySiteName, strings.TrimSpace(name))
}

// LongestStreak 读取历史最长连胜。
// 缺失或损坏的存量值一律按"尚未记录"处理，返回 0 而非错误。
func (s *SettingService) LongestStreak() int {
	value, err := s.get(db.SettingKeyLongestStreak)
	if err != nil {
		return 0
	}

	streak, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || streak < 0 {
		return 0
	}
	return streak
}

// RaiseLongestStreak 在当前连胜超过高水位时更新并返回新值，否则保持不变。
func (s *SettingService) RaiseLongestStreak(current int) (int, error) {
	longest := s.LongestStreak()
	if current <= longest {
		return longest, nil
	}

	if err := s.upsert(db.SettingKeyLongestStreak, strconv.Itoa(current)); err != nil {
		return longest, err
	}
	return current, nil
}

// ResetLongestStreak 将高水位清零，仅供全量清空数据时调用。
func (s *SettingService) ResetLongestStreak() error {
	return s.upsert(db.SettingKeyLongestStreak, "0")
}

func (s *SettingService) get(key string) (string, error) {
	var record db.SystemSetting
	if err := s.db.Where("key = ?", key).First(&record).Error; err != nil {
		return "", err
	}
	return record.Value, nil
}

func (s *SettingService) upsert(key, value string) error {
	setting := db.SystemSetting{Key: key, Value: value}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}
