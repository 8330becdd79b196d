package service

import (
	"testing"

	"github.com/liferpg/internal/db"
)

func TestBuildOverview(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	createTestHabit(t, HabitInput{Name: "Workout", Area: db.AreaPhysical, PointsPerUnit: 30})
	createTestHabit(t, HabitInput{Name: "Meditation", Area: db.AreaPsyche, PointsPerUnit: 25})

	logs := NewDailyLogService(db.DB)
	journal := NewJournalService(db.DB)

	// 昨天和今天连续打卡
	if _, err := logs.UpsertItem(testDate(9), LogItemInput{HabitName: "Workout", Completed: true, Quantity: 1}); err != nil {
		t.Fatalf("UpsertItem returned error: %v", err)
	}
	if _, err := logs.UpsertItem(testDate(10), LogItemInput{HabitName: "Meditation", Completed: true, Quantity: 1}); err != nil {
		t.Fatalf("UpsertItem returned error: %v", err)
	}
	if _, err := journal.Save(testDate(10), wordsOfCount(50)); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	svc := NewStatsService(db.DB)

	overview, err := svc.BuildOverview(testDate(10))
	if err != nil {
		t.Fatalf("BuildOverview returned error: %v", err)
	}

	// 30 + 25 + 4 日志奖励
	if overview.TotalPoints != 59 {
		t.Fatalf("expected total 59, got %d", overview.TotalPoints)
	}
	if overview.AreaTotals[db.AreaPhysical] != 30 {
		t.Fatalf("expected Physical 30, got %d", overview.AreaTotals[db.AreaPhysical])
	}
	// 日志奖励计入 Psyche
	if overview.AreaTotals[db.AreaPsyche] != 29 {
		t.Fatalf("expected Psyche 29, got %d", overview.AreaTotals[db.AreaPsyche])
	}
	if overview.CurrentStreak != 2 {
		t.Fatalf("expected streak 2, got %d", overview.CurrentStreak)
	}
	if overview.LongestStreak != 2 {
		t.Fatalf("expected longest streak 2, got %d", overview.LongestStreak)
	}
	if overview.Rank.Current.Name != "Struggling Worm" {
		t.Fatalf("expected Struggling Worm at 59 points, got %s", overview.Rank.Current.Name)
	}
	if len(overview.Weekly) != 7 {
		t.Fatalf("expected 7 weekly entries, got %d", len(overview.Weekly))
	}
	// 周进度只统计打卡得分，不含日志奖励
	if overview.Weekly[6].Total != 25 {
		t.Fatalf("expected today 25, got %d", overview.Weekly[6].Total)
	}
}

func TestBuildOverviewKeepsLongestStreak(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	createTestHabit(t, HabitInput{Name: "Workout", Area: db.AreaPhysical, PointsPerUnit: 10})

	logs := NewDailyLogService(db.DB)
	settings := NewSettingService(db.DB)

	if _, err := settings.RaiseLongestStreak(9); err != nil {
		t.Fatalf("RaiseLongestStreak returned error: %v", err)
	}
	if _, err := logs.UpsertItem(testDate(10), LogItemInput{HabitName: "Workout", Completed: true, Quantity: 1}); err != nil {
		t.Fatalf("UpsertItem returned error: %v", err)
	}

	overview, err := NewStatsService(db.DB).BuildOverview(testDate(10))
	if err != nil {
		t.Fatalf("BuildOverview returned error: %v", err)
	}
	if overview.CurrentStreak != 1 {
		t.Fatalf("expected streak 1, got %d", overview.CurrentStreak)
	}
	if overview.LongestStreak != 9 {
		t.Fatalf("expected longest streak 9 to stick, got %d", overview.LongestStreak)
	}
}

func TestBuildRecoveryInactive(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	view, err := NewStatsService(db.DB).BuildRecovery(testDate(10), 0)
	if err != nil {
		t.Fatalf("BuildRecovery returned error: %v", err)
	}
	if view.Active {
		t.Fatal("expected inactive view without recovery habit")
	}
	if view.Streak != 0 || view.Insight != "" || len(view.Milestones) != 0 {
		t.Fatalf("expected zero-value view, got %+v", view)
	}
}

func TestBuildRecoveryActive(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	createTestHabit(t, HabitInput{Name: "Daily Reset", Area: db.AreaPsyche, PointsPerUnit: 3, RecoveryTracked: true})

	logs := NewDailyLogService(db.DB)
	for day := 4; day <= 10; day++ {
		if _, err := logs.UpsertItem(testDate(day), LogItemInput{HabitName: "Daily Reset", Completed: true, Quantity: 1}); err != nil {
			t.Fatalf("UpsertItem returned error: %v", err)
		}
	}

	view, err := NewStatsService(db.DB).BuildRecovery(testDate(10), 0)
	if err != nil {
		t.Fatalf("BuildRecovery returned error: %v", err)
	}
	if !view.Active {
		t.Fatal("expected active view")
	}
	if view.HabitName != "Daily Reset" {
		t.Fatalf("unexpected habit name %q", view.HabitName)
	}
	if view.Streak != 7 {
		t.Fatalf("expected streak 7, got %d", view.Streak)
	}
	if view.Insight == "" {
		t.Fatal("expected non-empty insight")
	}
	// 7 天里程碑奖励
	if view.BonusXP != 500 {
		t.Fatalf("expected bonus 500, got %d", view.BonusXP)
	}
	if len(view.Milestones) == 0 {
		t.Fatal("expected milestone list")
	}
}
