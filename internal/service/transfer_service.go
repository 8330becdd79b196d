package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/liferpg/internal/db"
	"gorm.io/gorm"
)

// ErrImportInvalid 在导入内容不是合法的备份 JSON 时返回
var ErrImportInvalid = errors.New("invalid import payload")

// TransferService 负责数据的全量导出、导入与清空。
// 导出文档的字段名与旧版浏览器端备份保持一致，保证历史备份可以直接导入。
type TransferService struct {
	db *gorm.DB
}

// NewTransferService 构造 TransferService
func NewTransferService(gdb *gorm.DB) *TransferService {
	return &TransferService{db: gdb}
}

// ExportedLogItem 为备份中的单习惯完成情况。
type ExportedLogItem struct {
	Completed bool `json:"completed"`
	Quantity  int  `json:"quantity"`
	Points    int  `json:"points"`
}

// ExportedDailyLog 为备份中的单日打卡记录，明细按习惯名称为键。
type ExportedDailyLog struct {
	Date        string                     `json:"date"`
	Stats       map[string]ExportedLogItem `json:"stats"`
	TotalPoints int                        `json:"totalPoints"`
}

// ExportedJournalEntry 为备份中的单日日志。
type ExportedJournalEntry struct {
	Date         string `json:"date"`
	Content      string `json:"content"`
	WordCount    int    `json:"wordCount"`
	PointsEarned int    `json:"pointsEarned"`
}

// ExportDocument 为全量备份文档：{dailyLogs, journalEntries, exportDate}。
type ExportDocument struct {
	DailyLogs      []ExportedDailyLog     `json:"dailyLogs"`
	JournalEntries []ExportedJournalEntry `json:"journalEntries"`
	ExportDate     string                 `json:"exportDate"`
}

// importDocument 与 ExportDocument 同形，但用指针区分"键缺失"与"空集合"。
type importDocument struct {
	DailyLogs      *[]ExportedDailyLog     `json:"dailyLogs"`
	JournalEntries *[]ExportedJournalEntry `json:"journalEntries"`
}

// Export 导出全部打卡与日志数据。
func (s *TransferService) Export(now time.Time) (*ExportDocument, error) {
	var logs []db.DailyLog
	if err := s.db.Preload("Items").Order("log_date ASC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("export daily logs: %w", err)
	}

	var journals []db.JournalEntry
	if err := s.db.Order("entry_date ASC").Find(&journals).Error; err != nil {
		return nil, fmt.Errorf("export journal entries: %w", err)
	}

	doc := &ExportDocument{
		DailyLogs:      make([]ExportedDailyLog, 0, len(logs)),
		JournalEntries: make([]ExportedJournalEntry, 0, len(journals)),
		ExportDate:     now.Format(time.RFC3339),
	}

	for _, log := range logs {
		exported := ExportedDailyLog{
			Date:        log.LogDate.Format("2006-01-02"),
			Stats:       make(map[string]ExportedLogItem, len(log.Items)),
			TotalPoints: log.TotalPoints,
		}
		for _, item := range log.Items {
			exported.Stats[item.HabitName] = ExportedLogItem{
				Completed: item.Completed,
				Quantity:  item.Quantity,
				Points:    item.Points,
			}
		}
		doc.DailyLogs = append(doc.DailyLogs, exported)
	}

	for _, entry := range journals {
		doc.JournalEntries = append(doc.JournalEntries, ExportedJournalEntry{
			Date:         entry.EntryDate.Format("2006-01-02"),
			Content:      entry.Content,
			WordCount:    entry.WordCount,
			PointsEarned: entry.PointsEarned,
		})
	}

	return doc, nil
}

// Import 解析备份 JSON 并整体覆盖对应的存储集合。
// 每个顶层键内部为全有或全无；两个键之间不保证原子性（已知缺口，与旧版一致）。
// 解析失败时返回 ErrImportInvalid，且不产生任何副作用。
func (s *TransferService) Import(raw []byte) error {
	var doc importDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrImportInvalid, err)
	}

	if doc.DailyLogs != nil {
		if err := s.replaceDailyLogs(*doc.DailyLogs); err != nil {
			return err
		}
	}

	if doc.JournalEntries != nil {
		if err := s.replaceJournalEntries(*doc.JournalEntries); err != nil {
			return err
		}
	}

	return nil
}

// ClearAll 无条件清空全部持久化数据并恢复默认习惯注册表。
func (s *TransferService) ClearAll() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&db.DailyLogItem{},
			&db.DailyLog{},
			&db.JournalEntry{},
			&db.Habit{},
			&db.SystemSetting{},
		} {
			if err := tx.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear all data: %w", err)
	}

	// 与旧版"清空后重载页面自动播种"的行为保持一致
	return db.Migrate(s.db)
}

func (s *TransferService) replaceDailyLogs(logs []ExportedDailyLog) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&db.DailyLogItem{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&db.DailyLog{}).Error; err != nil {
			return err
		}

		for _, exported := range logs {
			date, err := time.ParseInLocation("2006-01-02", exported.Date, time.Local)
			if err != nil {
				return fmt.Errorf("%w: bad log date %q", ErrImportInvalid, exported.Date)
			}

			log := db.DailyLog{LogDate: date, TotalPoints: exported.TotalPoints}
			for name, item := range exported.Stats {
				log.Items = append(log.Items, db.DailyLogItem{
					HabitName: name,
					Completed: item.Completed,
					Quantity:  item.Quantity,
					Points:    item.Points,
				})
			}

			if err := tx.Create(&log).Error; err != nil {
				return fmt.Errorf("import daily log %s: %w", exported.Date, err)
			}
		}
		return nil
	})
}

func (s *TransferService) replaceJournalEntries(entries []ExportedJournalEntry) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&db.JournalEntry{}).Error; err != nil {
			return err
		}

		for _, exported := range entries {
			date, err := time.ParseInLocation("2006-01-02", exported.Date, time.Local)
			if err != nil {
				return fmt.Errorf("%w: bad journal date %q", ErrImportInvalid, exported.Date)
			}

			entry := db.JournalEntry{
				EntryDate:    date,
				Content:      exported.Content,
				WordCount:    exported.WordCount,
				PointsEarned: exported.PointsEarned,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return fmt.Errorf("import journal entry %s: %w", exported.Date, err)
			}
		}
		return nil
	})
}
