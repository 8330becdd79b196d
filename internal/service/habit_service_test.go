package service

import (
	"errors"
	"testing"

	"github.com/liferpg/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) func() {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.Habit{},
		&db.DailyLog{},
		&db.DailyLogItem{},
		&db.JournalEntry{},
		&db.SystemSetting{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	return func() {
		sqlDB, err := db.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestHabitServiceCreateAndList(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewHabitService(db.DB)

	habit, err := svc.Create(HabitInput{
		Name:          "Reading",
		Area:          db.AreaIntellect,
		Description:   "1 chapter",
		PointsPerUnit: 5,
		Unit:          "chapters",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if habit.ID == 0 {
		t.Fatal("expected habit to have ID")
	}

	habits, err := svc.List(HabitFilter{Area: db.AreaIntellect})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(habits))
	}

	// 不合法领域
	if _, err := svc.Create(HabitInput{Name: "Napping", Area: "Leisure", PointsPerUnit: 1}); !errors.Is(err, ErrHabitInvalidArea) {
		t.Fatalf("expected ErrHabitInvalidArea, got %v", err)
	}

	// 负积分配置
	if _, err := svc.Create(HabitInput{Name: "Bad", Area: db.AreaCore, PointsPerUnit: -1}); !errors.Is(err, ErrHabitInvalidPoints) {
		t.Fatalf("expected ErrHabitInvalidPoints, got %v", err)
	}

	// 名称唯一
	if _, err := svc.Create(HabitInput{Name: "Reading", Area: db.AreaCore, PointsPerUnit: 1}); !errors.Is(err, ErrHabitNameTaken) {
		t.Fatalf("expected ErrHabitNameTaken, got %v", err)
	}
}

func TestHabitServiceUpdate(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewHabitService(db.DB)
	habit, err := svc.Create(HabitInput{
		Name:          "Morning Prayer",
		Area:          db.AreaSpiritual,
		PointsPerUnit: 1,
		Unit:          "prayers",
	})
	if err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	updated, err := svc.Update(habit.ID, HabitInput{
		Name:          "Morning Prayer",
		Area:          db.AreaSpiritual,
		PointsPerUnit: 1,
		Unit:          "prayers",
		DailyCap:      5,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.DailyCap != 5 {
		t.Fatalf("expected daily cap 5, got %d", updated.DailyCap)
	}

	if _, err := svc.Update(9999, HabitInput{Name: "Ghost", Area: db.AreaCore}); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestFindRecoveryHabit(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewHabitService(db.DB)

	// 未配置任何戒断习惯时返回 nil 而非错误
	habit, err := svc.FindRecoveryHabit()
	if err != nil {
		t.Fatalf("FindRecoveryHabit returned error: %v", err)
	}
	if habit != nil {
		t.Fatalf("expected no recovery habit, got %s", habit.Name)
	}

	// 显式标记优先
	if _, err := svc.Create(HabitInput{Name: "Daily Reset", Area: db.AreaPsyche, PointsPerUnit: 3, RecoveryTracked: true}); err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	habit, err = svc.FindRecoveryHabit()
	if err != nil {
		t.Fatalf("FindRecoveryHabit returned error: %v", err)
	}
	if habit == nil || habit.Name != "Daily Reset" {
		t.Fatalf("expected flagged habit, got %+v", habit)
	}
}

func TestFindRecoveryHabitLegacyNameFallback(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewHabitService(db.DB)

	// 旧数据没有显式标记，按名称片段回退识别
	if _, err := svc.Create(HabitInput{Name: "No Weed", Area: db.AreaPsyche, PointsPerUnit: 3}); err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	habit, err := svc.FindRecoveryHabit()
	if err != nil {
		t.Fatalf("FindRecoveryHabit returned error: %v", err)
	}
	if habit == nil || habit.Name != "No Weed" {
		t.Fatalf("expected legacy match, got %+v", habit)
	}
}
