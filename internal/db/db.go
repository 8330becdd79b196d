package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Init 初始化数据库连接并执行自动迁移。
// databasePath 为空时将回退到默认值 liferpg.db。
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "liferpg.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	// 自动迁移模式，为核心模型创建表
	if err = DB.AutoMigrate(
		&User{},
		&Habit{},
		&DailyLog{},
		&DailyLogItem{},
		&JournalEntry{},
		&SystemSetting{},
	); err != nil {
		return err
	}

	return Migrate(DB)
}

// Migrate 将旧版持久化形态升级为当前的唯一规范形态，并补齐默认数据。
// 幂等，可在每次启动时执行。
func Migrate(gdb *gorm.DB) error {
	migrator := gdb.Migrator()

	// 旧形态一：分类存放在 type_tag 列，迁移到 area 后删除旧列
	if migrator.HasColumn(&Habit{}, "type_tag") {
		if err := gdb.Model(&Habit{}).
			Where("(area = '' OR area IS NULL) AND type_tag IN ?", Areas).
			Update("area", gorm.Expr("type_tag")).Error; err != nil {
			return err
		}
		if err := migrator.DropColumn(&Habit{}, "type_tag"); err != nil {
			return err
		}
	}

	// 旧形态二：晨祷上限写死在计分逻辑里，升级为习惯自身的 daily_cap 字段
	if err := gdb.Model(&Habit{}).
		Where("name = ? AND daily_cap = 0", "Morning Prayer").
		Update("daily_cap", 5).Error; err != nil {
		return err
	}

	// 旧形态三：戒断习惯靠名称模糊匹配识别，升级为显式的 recovery_tracked 标记
	var flagged int64
	if err := gdb.Model(&Habit{}).Where("recovery_tracked = ?", true).Count(&flagged).Error; err != nil {
		return err
	}
	if flagged == 0 {
		for _, pattern := range legacyRecoveryPatterns {
			if err := gdb.Model(&Habit{}).
				Where("LOWER(name) LIKE ?", "%"+pattern+"%").
				Update("recovery_tracked", true).Error; err != nil {
				return err
			}
		}
	}

	return seedDefaultHabits(gdb)
}

// legacyRecoveryPatterns 为旧版识别戒断习惯使用的名称片段。
var legacyRecoveryPatterns = []string{"weed", "sobriety", "clean", "marijuana", "thc", "smoke"}

// seedDefaultHabits 在注册表为空时写入默认习惯集合。
func seedDefaultHabits(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&Habit{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	habits := defaultHabits()
	return gdb.Create(&habits).Error
}

// defaultHabits 返回初始的 18 个习惯配置。
func defaultHabits() []Habit {
	return []Habit{
		// Physical
		{Name: "Strength", Area: AreaPhysical, PointsPerUnit: 5, Unit: "sessions", Description: "Completed Gym Day"},
		{Name: "Cardio", Area: AreaPhysical, PointsPerUnit: 3, Unit: "sessions", Description: "Hit 10k+ Steps or equivalent cardio"},
		{Name: "Protein", Area: AreaPhysical, PointsPerUnit: 2, Unit: "days", Description: "50% of bodyweight in grams"},
		{Name: "Stretching", Area: AreaPhysical, PointsPerUnit: 2, Unit: "sessions", Description: "Stretched Sore Muscles"},

		// Psyche
		{Name: "Morning Meditation", Area: AreaPsyche, PointsPerUnit: 5, Unit: "minutes", Description: "Meditating more than 5 minutes"},
		{Name: "Journaling", Area: AreaPsyche, PointsPerUnit: 4, Unit: "entries", Description: "Journaling"},
		{Name: "No Weed", Area: AreaPsyche, PointsPerUnit: 3, Unit: "days", Description: "Daily sobriety", RecoveryTracked: true},
		{Name: "Gratitude", Area: AreaPsyche, PointsPerUnit: 2, Unit: "entries", Description: "3 things daily"},

		// Intellect
		{Name: "Reading", Area: AreaIntellect, PointsPerUnit: 5, Unit: "chapters", Description: "1 chapter"},
		{Name: "New Language", Area: AreaIntellect, PointsPerUnit: 4, Unit: "lessons", Description: "1 Duolingo lesson"},
		{Name: "Podcast", Area: AreaIntellect, PointsPerUnit: 3, Unit: "episodes", Description: "1 Episode"},

		// Spiritual
		{Name: "Morning Prayer", Area: AreaSpiritual, PointsPerUnit: 1, Unit: "prayers", Description: "1 Prayer (max 5 pts)", DailyCap: 5},
		{Name: "Read Quran", Area: AreaSpiritual, PointsPerUnit: 7, Unit: "chapters", Description: "1 Chapter"},
		{Name: "Act of Kindness", Area: AreaSpiritual, PointsPerUnit: 2, Unit: "acts", Description: "Going out of my way to help someone"},

		// Core
		{Name: "Quality Conversation", Area: AreaCore, PointsPerUnit: 5, Unit: "conversations", Description: "Great conversation without phones"},
		{Name: "Cleanliness", Area: AreaCore, PointsPerUnit: 3, Unit: "sessions", Description: "Cleaned room/office desk"},
		{Name: "Planned Tomorrow", Area: AreaCore, PointsPerUnit: 2, Unit: "plans", Description: "Making tomorrows plan"},
		{Name: "Shower", Area: AreaCore, PointsPerUnit: 1, Unit: "showers", Description: "Daily shower"},
		{Name: "Brush Teeth", Area: AreaCore, PointsPerUnit: 1, Unit: "times", Description: "Brushing teeth"},
	}
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
