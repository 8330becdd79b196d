package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/liferpg/internal/db"
	"github.com/liferpg/internal/scoring"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyLogService 负责每日打卡数据的读写
// 单日记录在首次交互时创建，之后原地更新；正常使用中不会删除
// TotalPoints 缓存在每次明细变更的同一事务内重算，保证与明细之和一致
type DailyLogService struct {
	db *gorm.DB
}

// LogItemInput 定义单个习惯的打卡输入
type LogItemInput struct {
	HabitName string
	Completed bool
	Quantity  int
}

// NewDailyLogService 构造 DailyLogService
func NewDailyLogService(gdb *gorm.DB) *DailyLogService {
	return &DailyLogService{db: gdb}
}

// UpsertItem 更新某天某习惯的完成情况并重算当日总分。
// 数量在此边界钳制为非负；引用未知习惯的明细记 0 分但正常保存。
func (s *DailyLogService) UpsertItem(logDate time.Time, input LogItemInput) (*db.DailyLog, error) {
	date := normalizeToDate(logDate)

	quantity := input.Quantity
	if quantity < 0 {
		quantity = 0
	}

	var result db.DailyLog
	err := s.db.Transaction(func(tx *gorm.DB) error {
		log, err := findOrCreateLog(tx, date)
		if err != nil {
			return err
		}

		points := 0
		var habit db.Habit
		if err := tx.Where("name = ?", input.HabitName).First(&habit).Error; err == nil {
			points = scoring.PointsForItem(habit, input.Completed, quantity)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("load habit: %w", err)
		}

		item := db.DailyLogItem{
			DailyLogID: log.ID,
			HabitName:  input.HabitName,
			Completed:  input.Completed,
			Quantity:   quantity,
			Points:     points,
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "daily_log_id"}, {Name: "habit_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed", "quantity", "points", "updated_at"}),
		}).Create(&item).Error; err != nil {
			return fmt.Errorf("upsert log item: %w", err)
		}

		if err := recomputeLogTotal(tx, log.ID); err != nil {
			return err
		}

		if err := tx.Preload("Items").First(&result, log.ID).Error; err != nil {
			return fmt.Errorf("reload daily log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Get 返回指定日期的打卡记录，不存在时返回 nil。
func (s *DailyLogService) Get(logDate time.Time) (*db.DailyLog, error) {
	var log db.DailyLog
	err := s.db.Preload("Items").Where("log_date = ?", normalizeToDate(logDate)).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get daily log: %w", err)
	}
	return &log, nil
}

// ListAll 返回全部打卡记录（含明细），按日期升序。
func (s *DailyLogService) ListAll() ([]db.DailyLog, error) {
	var logs []db.DailyLog
	if err := s.db.Preload("Items").Order("log_date ASC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	return logs, nil
}

// ListBetween 返回指定区间内的打卡记录（含明细）。
func (s *DailyLogService) ListBetween(start, end time.Time) ([]db.DailyLog, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("invalid range: end before start")
	}

	var logs []db.DailyLog
	if err := s.db.Preload("Items").
		Where("log_date BETWEEN ? AND ?", normalizeToDate(start), normalizeToDate(end)).
		Order("log_date ASC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list daily logs: %w", err)
	}
	return logs, nil
}

func findOrCreateLog(tx *gorm.DB, date time.Time) (*db.DailyLog, error) {
	var log db.DailyLog
	err := tx.Where("log_date = ?", date).First(&log).Error
	if err == nil {
		return &log, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find daily log: %w", err)
	}

	log = db.DailyLog{LogDate: date}
	if err := tx.Create(&log).Error; err != nil {
		return nil, fmt.Errorf("create daily log: %w", err)
	}
	return &log, nil
}

func recomputeLogTotal(tx *gorm.DB, logID uint) error {
	var total int64
	if err := tx.Model(&db.DailyLogItem{}).
		Where("daily_log_id = ?", logID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error; err != nil {
		return fmt.Errorf("sum log items: %w", err)
	}

	if err := tx.Model(&db.DailyLog{}).
		Where("id = ?", logID).
		Update("total_points", total).Error; err != nil {
		return fmt.Errorf("update log total: %w", err)
	}
	return nil
}

func normalizeToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
