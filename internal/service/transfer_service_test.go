package service

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/liferpg/internal/db"
)

func TestExportShape(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	createTestHabit(t, HabitInput{Name: "Workout", Area: db.AreaPhysical, PointsPerUnit: 10})

	logs := NewDailyLogService(db.DB)
	journal := NewJournalService(db.DB)

	if _, err := logs.UpsertItem(testDate(1), LogItemInput{HabitName: "Workout", Completed: true, Quantity: 2}); err != nil {
		t.Fatalf("UpsertItem returned error: %v", err)
	}
	if _, err := journal.Save(testDate(1), wordsOfCount(50)); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	svc := NewTransferService(db.DB)
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	doc, err := svc.Export(now)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	if doc.ExportDate != now.Format(time.RFC3339) {
		t.Fatalf("unexpected export date %q", doc.ExportDate)
	}
	if len(doc.DailyLogs) != 1 || len(doc.JournalEntries) != 1 {
		t.Fatalf("expected 1 log and 1 journal, got %d/%d", len(doc.DailyLogs), len(doc.JournalEntries))
	}

	log := doc.DailyLogs[0]
	if log.Date != "2024-05-01" {
		t.Fatalf("unexpected log date %q", log.Date)
	}
	if log.TotalPoints != 20 {
		t.Fatalf("expected total 20, got %d", log.TotalPoints)
	}
	item, ok := log.Stats["Workout"]
	if !ok {
		t.Fatal("expected stats keyed by habit name")
	}
	if !item.Completed || item.Quantity != 2 || item.Points != 20 {
		t.Fatalf("unexpected item %+v", item)
	}

	if doc.JournalEntries[0].PointsEarned != 4 {
		t.Fatalf("expected journal bonus 4, got %d", doc.JournalEntries[0].PointsEarned)
	}
}

func TestImportRoundTrip(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	createTestHabit(t, HabitInput{Name: "Workout", Area: db.AreaPhysical, PointsPerUnit: 10})

	logs := NewDailyLogService(db.DB)
	journal := NewJournalService(db.DB)

	for _, day := range []int{1, 2, 3} {
		if _, err := logs.UpsertItem(testDate(day), LogItemInput{HabitName: "Workout", Completed: true, Quantity: 1}); err != nil {
			t.Fatalf("UpsertItem returned error: %v", err)
		}
	}
	if _, err := journal.Save(testDate(2), "short note"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	svc := NewTransferService(db.DB)
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	before, err := svc.Export(now)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	raw, err := json.Marshal(before)
	if err != nil {
		t.Fatalf("failed to marshal export: %v", err)
	}

	if err := svc.ClearAll(); err != nil {
		t.Fatalf("ClearAll returned error: %v", err)
	}

	if err := svc.Import(raw); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	after, err := svc.Export(now)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	if !reflect.DeepEqual(before.DailyLogs, after.DailyLogs) {
		t.Fatalf("daily logs changed across round trip:\nbefore %+v\nafter  %+v", before.DailyLogs, after.DailyLogs)
	}
	if !reflect.DeepEqual(before.JournalEntries, after.JournalEntries) {
		t.Fatalf("journal entries changed across round trip:\nbefore %+v\nafter  %+v", before.JournalEntries, after.JournalEntries)
	}
}

func TestImportPartialDocument(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	journal := NewJournalService(db.DB)
	if _, err := journal.Save(testDate(1), "keep me"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	svc := NewTransferService(db.DB)

	// 只包含 dailyLogs 的备份不触碰日志条目
	raw := []byte(`{"dailyLogs":[{"date":"2024-05-05","stats":{"Workout":{"completed":true,"quantity":1,"points":10}},"totalPoints":10}]}`)
	if err := svc.Import(raw); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}

	entry, err := journal.Get(testDate(1))
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if entry == nil {
		t.Fatal("expected journal entry to survive partial import")
	}

	logs, err := NewDailyLogService(db.DB).ListAll()
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(logs) != 1 || logs[0].TotalPoints != 10 {
		t.Fatalf("unexpected imported logs %+v", logs)
	}
}

func TestImportInvalidPayload(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	logs := NewDailyLogService(db.DB)
	createTestHabit(t, HabitInput{Name: "Workout", Area: db.AreaPhysical, PointsPerUnit: 10})
	if _, err := logs.UpsertItem(testDate(1), LogItemInput{HabitName: "Workout", Completed: true, Quantity: 1}); err != nil {
		t.Fatalf("UpsertItem returned error: %v", err)
	}

	svc := NewTransferService(db.DB)

	if err := svc.Import([]byte("not json at all")); !errors.Is(err, ErrImportInvalid) {
		t.Fatalf("expected ErrImportInvalid, got %v", err)
	}

	// 解析失败不应产生副作用
	existing, err := logs.ListAll()
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(existing) != 1 {
		t.Fatalf("expected existing data untouched, got %d logs", len(existing))
	}
}

func TestClearAllReseedsDefaults(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	habits := NewHabitService(db.DB)
	createTestHabit(t, HabitInput{Name: "Custom", Area: db.AreaCore, PointsPerUnit: 1})

	svc := NewTransferService(db.DB)
	if err := svc.ClearAll(); err != nil {
		t.Fatalf("ClearAll returned error: %v", err)
	}

	all, err := habits.List(HabitFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("expected default habits to be reseeded")
	}
	for _, h := range all {
		if h.Name == "Custom" {
			t.Fatal("expected custom habit to be removed")
		}
	}
}
