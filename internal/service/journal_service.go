package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/liferpg/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// journalBonusThreshold 为触发奖励的最低字数。
	journalBonusThreshold = 50
	// journalBonusPoints 为达到阈值后一次性奖励的积分。
	journalBonusPoints = 4
)

var (
	journalMarkdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	journalSanitizer = bluemonday.UGCPolicy()
)

// JournalService 负责日志条目的自动保存与渲染
// 每天至多一条，前端输入防抖后调用 Save 做幂等落库
type JournalService struct {
	db *gorm.DB
}

// NewJournalService 构造 JournalService
func NewJournalService(gdb *gorm.DB) *JournalService {
	return &JournalService{db: gdb}
}

// Save 保存某天的日志内容，字数与奖励积分在此统一派生。
func (s *JournalService) Save(entryDate time.Time, content string) (*db.JournalEntry, error) {
	date := normalizeToDate(entryDate)
	wordCount := countWords(content)

	entry := db.JournalEntry{
		EntryDate:    date,
		Content:      content,
		WordCount:    wordCount,
		PointsEarned: journalBonus(wordCount),
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "word_count", "points_earned", "updated_at"}),
	}).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("save journal entry: %w", err)
	}

	if err := s.db.Where("entry_date = ?", date).First(&entry).Error; err != nil {
		return nil, fmt.Errorf("reload journal entry: %w", err)
	}

	return &entry, nil
}

// Get 返回指定日期的日志条目，不存在时返回 nil。
func (s *JournalService) Get(entryDate time.Time) (*db.JournalEntry, error) {
	var entry db.JournalEntry
	err := s.db.Where("entry_date = ?", normalizeToDate(entryDate)).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get journal entry: %w", err)
	}
	return &entry, nil
}

// ListAll 返回全部日志条目，按日期升序。
func (s *JournalService) ListAll() ([]db.JournalEntry, error) {
	var entries []db.JournalEntry
	if err := s.db.Order("entry_date ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	return entries, nil
}

// RenderHTML 将日志 Markdown 渲染为净化后的 HTML 预览。
func (s *JournalService) RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := journalMarkdown.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("render journal markdown: %w", err)
	}
	return journalSanitizer.Sanitize(buf.String()), nil
}

// countWords 统计以空白分隔的词数，与旧版的正则切分语义一致。
func countWords(content string) int {
	return len(strings.Fields(content))
}

func journalBonus(wordCount int) int {
	if wordCount >= journalBonusThreshold {
		return journalBonusPoints
	}
	return 0
}
